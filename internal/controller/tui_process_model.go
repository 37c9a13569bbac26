package controller

import (
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/list"
	"github.com/charmbracelet/bubbles/progress"
	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	m "github.com/mouse-blink/gorector/internal/model"
)

var statusColors = map[string]lipgloss.Color{
	"changed": lipgloss.Color("2"),
	"pending": lipgloss.Color("3"),
	"failed":  lipgloss.Color("1"),
	"cached":  lipgloss.Color("8"),
	"clean":   lipgloss.Color("8"),
}

// resultDelegate renders one file result per line.
type resultDelegate struct {
	offset int
}

func (d resultDelegate) Height() int  { return 1 }
func (d resultDelegate) Spacing() int { return 0 }
func (d resultDelegate) Update(_ tea.Msg, _ *list.Model) tea.Cmd {
	return nil
}

func (d resultDelegate) Render(w io.Writer, lm list.Model, index int, item list.Item) {
	result, ok := item.(resultItem)
	if !ok {
		return
	}

	fileWidth := lm.Width() - 12

	statusStyle := lipgloss.NewStyle().Bold(true).Width(10).Align(lipgloss.Left)
	fileStyle := lipgloss.NewStyle().Foreground(lipgloss.Color("14"))
	displayFile := truncateToWidth(result.path, fileWidth)

	if index == lm.Index() {
		selected := lipgloss.NewStyle().
			Foreground(lipgloss.Color("0")).
			Background(lipgloss.Color("6")).
			Bold(true)
		statusStyle = selected.Width(10).Align(lipgloss.Left)
		fileStyle = selected
		displayFile = animateScroll(result.path, fileWidth, d.offset)
	} else {
		color, ok := statusColors[result.status]
		if !ok {
			color = lipgloss.Color("8")
		}

		statusStyle = statusStyle.Foreground(color)
	}

	_, _ = fmt.Fprintf(w, "%s  %s", statusStyle.Render(result.status), fileStyle.Render(displayFile))
}

// processModel shows a refactoring run: progress while files are processed,
// then a browsable list of results with their diffs.
type processModel struct {
	width        int
	height       int
	dryRun       bool
	progressBar  progress.Model
	spinner      spinner.Model
	total        int
	parallel     int
	completed    int
	lastFile     string
	finished     bool
	summary      m.Summary
	results      []resultItem
	resultsList  list.Model
	delegate     resultDelegate
	animOffset   int
	lastSelected int
	showDiff     bool
	selectedDiff string
	selectedPath string
}

func newProcessModel(dryRun bool) processModel {
	prog := progress.New(
		progress.WithDefaultGradient(),
		progress.WithWidth(40),
		progress.WithoutPercentage(),
	)

	spin := spinner.New()
	spin.Spinner = spinner.Dot
	spin.Style = lipgloss.NewStyle().Foreground(lipgloss.Color("205"))

	delegate := resultDelegate{}
	resultsList := list.New([]list.Item{}, delegate, 80, 20)
	resultsList.SetShowPagination(false)
	resultsList.SetShowFilter(true)
	resultsList.SetShowHelp(false)
	resultsList.SetShowTitle(false)
	resultsList.SetShowStatusBar(false)
	resultsList.FilterInput.Placeholder = "Filter results…"

	return processModel{
		dryRun:       dryRun,
		progressBar:  prog,
		spinner:      spin,
		resultsList:  resultsList,
		delegate:     delegate,
		lastSelected: -1,
		width:        80,
		height:       24,
	}
}

func tick(d time.Duration) tea.Cmd {
	return tea.Tick(d, func(t time.Time) tea.Msg {
		return tickMsg(t)
	})
}

func (pm processModel) Init() tea.Cmd {
	return tea.Batch(pm.spinner.Tick, tick(time.Millisecond*100))
}

func (pm processModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd

	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		pm = pm.handleWindowSize(msg)

	case tea.KeyMsg:
		pm, cmd = pm.handleKeyMsg(msg)

	case tea.MouseMsg:
		pm, cmd = pm.handleMouseMsg(msg)

	case tickMsg:
		return pm.handleTickMsg(msg)

	case spinner.TickMsg:
		if pm.finished {
			return pm, nil
		}

		pm.spinner, cmd = pm.spinner.Update(msg)

	case runInfoMsg:
		pm.total = msg.files
		pm.parallel = msg.parallel
		pm.completed = 0

	case fileResultMsg:
		pm = pm.handleFileResult(msg.result)

	case summaryMsg:
		pm.summary = msg.summary
		pm.finished = true
	}

	return pm, cmd
}

func (pm processModel) handleFileResult(r m.FileResult) processModel {
	pm.completed++
	pm.lastFile = string(r.Path)

	item := resultItem{
		path:   string(r.Path),
		status: fileStatus(r, pm.dryRun),
		rules:  strings.Join(r.Applied, ", "),
		diff:   r.Diff,
	}

	if r.Err != nil {
		item.diff = r.Err.Error()
	}

	pm.results = append(pm.results, item)

	items := make([]list.Item, 0, len(pm.results))
	for _, it := range pm.results {
		items = append(items, it)
	}

	pm.resultsList.SetItems(items)

	return pm
}

func (pm processModel) progressPercent() float64 {
	if pm.total <= 0 {
		return 0
	}

	return float64(pm.completed) / float64(pm.total)
}

func (pm processModel) View() string {
	if pm.finished {
		return pm.viewResults()
	}

	return pm.viewProgress()
}

func (pm processModel) viewProgress() string {
	title := titleView("gorector")
	summary := summaryView("Progress: %s / %s  •  Workers: %s", pm.completed, pm.total, pm.parallel)

	progressView := lipgloss.NewStyle().
		Padding(0, 2).
		Render(pm.progressBar.ViewAs(pm.progressPercent()))

	current := "waiting for files"
	if pm.lastFile != "" {
		current = truncateToWidth(pm.lastFile, pm.width-10)
	}

	currentView := lipgloss.NewStyle().
		Padding(1, 2).
		Render(pm.spinner.View() + " " + lipgloss.NewStyle().Foreground(lipgloss.Color("14")).Render(current))

	return lipgloss.JoinVertical(lipgloss.Left,
		title,
		summary,
		progressView,
		currentView,
		footerView("Press q to quit", pm.width),
	)
}

func (pm processModel) viewResults() string {
	heading := "gorector results"
	changed := "Changed"

	if pm.dryRun {
		heading = "gorector dry run"
		changed = "Would change"
	}

	summary := summaryView("Files: %s  •  "+changed+": %s  •  Cached: %s  •  Failed: %s",
		pm.summary.Files, pm.summary.Changed, pm.summary.Cached, pm.summary.Failed)

	return lipgloss.JoinVertical(lipgloss.Left,
		titleView(heading),
		summary,
		pm.renderResultsBox(lipgloss.Color("6")),
		footerView("↑/k up • ↓/j down • / filter • enter/space/click diff • q quit", pm.width),
	)
}

func (pm processModel) renderResultsBox(accentColor lipgloss.Color) string {
	listWidth := pm.width - 4

	diffBox := ""
	if pm.showDiff {
		diffBox = renderTextBox("Diff • "+pm.selectedPath, pm.selectedDiff, accentColor, listWidth, pm.diffMaxLines(), renderDiffLine)
	}

	listHeight := pm.height - 9 - lipgloss.Height(diffBox)
	if listHeight < 5 {
		listHeight = 5
	}

	pm.resultsList.SetHeight(listHeight)
	pm.resultsList.SetWidth(listWidth)

	headerStyle := lipgloss.NewStyle().
		Foreground(lipgloss.Color("8")).
		Bold(true).
		Border(lipgloss.NormalBorder(), false, false, true, false).
		BorderForeground(lipgloss.Color("8")).
		Width(listWidth)

	headers := headerStyle.Render(fmt.Sprintf("%-10s  %s", "Status", "File"))

	resultsBox := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(accentColor).
		Margin(0, 1, 0, 0).
		Padding(0, 1).
		Render(lipgloss.JoinVertical(lipgloss.Left, headers, pm.resultsList.View()))

	if diffBox == "" {
		return resultsBox
	}

	return lipgloss.JoinVertical(lipgloss.Left, resultsBox, diffBox)
}

func (pm processModel) diffMaxLines() int {
	maxLines := pm.height / 3
	if maxLines < 6 {
		maxLines = 6
	}

	if maxLines > 20 {
		maxLines = 20
	}

	return maxLines
}

func (pm processModel) handleKeyMsg(msg tea.KeyMsg) (processModel, tea.Cmd) {
	switch msg.String() {
	case "ctrl+c":
		return pm, tea.Quit
	case "q":
		if pm.resultsList.FilterState() != list.Filtering {
			return pm, tea.Quit
		}
	}

	if !pm.finished {
		return pm, nil
	}

	if msg.String() == "enter" || msg.String() == " " {
		pm.toggleSelectedDiff()

		return pm, nil
	}

	var cmd tea.Cmd

	pm.resultsList, cmd = pm.resultsList.Update(msg)
	pm = pm.trackSelection()

	return pm, cmd
}

func (pm processModel) handleMouseMsg(msg tea.MouseMsg) (processModel, tea.Cmd) {
	if !pm.finished {
		return pm, nil
	}

	var cmd tea.Cmd

	pm.resultsList, cmd = pm.resultsList.Update(msg)
	pm = pm.trackSelection()

	if msg.Button == tea.MouseButtonLeft && msg.Action == tea.MouseActionRelease && pm.resultsList.FilterState() != list.Filtering {
		pm.toggleSelectedDiff()
	}

	return pm, cmd
}

// trackSelection resets the scroll animation and the diff when the
// selection moves.
func (pm processModel) trackSelection() processModel {
	if pm.resultsList.Index() == pm.lastSelected {
		return pm
	}

	pm.lastSelected = pm.resultsList.Index()
	pm.animOffset = 0
	pm.delegate.offset = 0
	pm.resultsList.SetDelegate(pm.delegate)
	pm.showDiff = false
	pm.selectedDiff = ""
	pm.selectedPath = ""

	return pm
}

func (pm *processModel) toggleSelectedDiff() {
	result, ok := pm.resultsList.SelectedItem().(resultItem)
	if !ok {
		return
	}

	diff := strings.TrimSpace(result.diff)
	if diff == "" || (pm.showDiff && pm.selectedDiff == diff) {
		pm.showDiff = false
		pm.selectedDiff = ""
		pm.selectedPath = ""

		return
	}

	pm.showDiff = true
	pm.selectedDiff = diff
	pm.selectedPath = result.path
}

func (pm processModel) handleWindowSize(msg tea.WindowSizeMsg) processModel {
	pm.width = msg.Width
	pm.height = msg.Height

	pm.progressBar.Width = pm.width - 8
	if pm.progressBar.Width < 20 {
		pm.progressBar.Width = 20
	}

	return pm
}

func (pm processModel) handleTickMsg(_ tickMsg) (processModel, tea.Cmd) {
	if pm.finished && pm.resultsList.FilterState() != list.Filtering {
		pm.animOffset++
		pm.delegate.offset = pm.animOffset
		pm.resultsList.SetDelegate(pm.delegate)
	}

	return pm, tick(time.Millisecond * 150)
}
