package controller

import (
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/bubbles/list"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

type ruleDelegate struct{}

func (d ruleDelegate) Height() int  { return 1 }
func (d ruleDelegate) Spacing() int { return 0 }
func (d ruleDelegate) Update(_ tea.Msg, _ *list.Model) tea.Cmd {
	return nil
}

func (d ruleDelegate) Render(w io.Writer, lm list.Model, index int, item list.Item) {
	rule, ok := item.(ruleItem)
	if !ok {
		return
	}

	flag := ""
	if rule.def.Configurable {
		flag = "config"
	}

	idStyle := lipgloss.NewStyle().Foreground(lipgloss.Color("14")).Width(40)
	flagStyle := lipgloss.NewStyle().Foreground(lipgloss.Color("3")).Width(8)

	if index == lm.Index() {
		selected := lipgloss.NewStyle().
			Foreground(lipgloss.Color("0")).
			Background(lipgloss.Color("6")).
			Bold(true)
		idStyle = selected.Width(40)
		flagStyle = selected.Width(8)
	}

	_, _ = fmt.Fprintf(w, "%s%s", idStyle.Render(truncateToWidth(rule.def.ID, 40)), flagStyle.Render(flag))
}

// rulesModel browses the rule catalog; the selected rule's samples are
// shown below the list.
type rulesModel struct {
	width     int
	height    int
	loaded    bool
	total     int
	rulesList list.Model
}

func newRulesModel() rulesModel {
	rulesList := list.New([]list.Item{}, ruleDelegate{}, 80, 10)
	rulesList.SetShowPagination(false)
	rulesList.SetShowFilter(true)
	rulesList.SetShowHelp(false)
	rulesList.SetShowTitle(false)
	rulesList.SetShowStatusBar(false)
	rulesList.FilterInput.Placeholder = "Filter rules…"

	return rulesModel{
		rulesList: rulesList,
		width:     80,
		height:    24,
	}
}

func (rm rulesModel) Init() tea.Cmd {
	return nil
}

func (rm rulesModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd

	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		rm.width = msg.Width
		rm.height = msg.Height

	case rulesMsg:
		items := make([]list.Item, 0, len(msg.defs))
		for _, def := range msg.defs {
			items = append(items, ruleItem{def: def})
		}

		rm.rulesList.SetItems(items)
		rm.total = len(items)
		rm.loaded = true

	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c":
			return rm, tea.Quit
		case "q", "esc":
			if rm.rulesList.FilterState() != list.Filtering {
				return rm, tea.Quit
			}
		}

		rm.rulesList, cmd = rm.rulesList.Update(msg)

	case tea.MouseMsg:
		rm.rulesList, cmd = rm.rulesList.Update(msg)
	}

	return rm, cmd
}

func (rm rulesModel) View() string {
	if !rm.loaded {
		return lipgloss.JoinVertical(lipgloss.Left,
			titleView("gorector rules"),
			footerView("Loading rules…", rm.width),
		)
	}

	boxWidth := rm.width - 4

	sample := ""
	if rule, ok := rm.rulesList.SelectedItem().(ruleItem); ok {
		sample = renderTextBox(rule.def.Title, sampleText(rule), lipgloss.Color("5"), boxWidth, rm.height/2, plainLine)
	}

	listHeight := rm.height - 8 - lipgloss.Height(sample)
	if listHeight < 3 {
		listHeight = 3
	}

	rm.rulesList.SetHeight(listHeight)
	rm.rulesList.SetWidth(boxWidth)

	listBox := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color("6")).
		Margin(0, 1, 0, 0).
		Padding(0, 1).
		Render(rm.rulesList.View())

	return lipgloss.JoinVertical(lipgloss.Left,
		titleView("gorector rules"),
		summaryView("Total rules: %s", rm.total),
		listBox,
		sample,
		footerView("↑/k up • ↓/j down • / filter • q quit", rm.width),
	)
}

func sampleText(rule ruleItem) string {
	if len(rule.def.Samples) == 0 {
		return "No samples."
	}

	s := rule.def.Samples[0]

	after := s.After
	if strings.TrimSpace(after) == "" {
		after = "(removed)"
	}

	return "Before:\n" + s.Before + "\n\nAfter:\n" + after
}
