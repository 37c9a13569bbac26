package rules

import (
	"strings"

	m "github.com/mouse-blink/gorector/internal/model"
	"github.com/mouse-blink/gorector/internal/syntax"
)

// GlobalVarsForbidID is the short id of GlobalVarsForbid.
const GlobalVarsForbidID = "GlobalVarsForbidRector"

const defaultForbiddenVar = "forbidden"

// GlobalVarsOptions configures GlobalVarsForbid. Vars are written with or
// without the leading $.
type GlobalVarsOptions struct {
	Vars                 []string `yaml:"vars" toml:"vars"`
	ForbiddenReplacement string   `yaml:"forbiddenReplacement" toml:"forbiddenReplacement"`
}

// GlobalVarsForbid renames superglobals such as $_SESSION and $_POST.
type GlobalVarsForbid struct {
	vars        []string
	replacement string
}

// NewGlobalVarsForbid validates opts and returns the rule.
func NewGlobalVarsForbid(opts GlobalVarsOptions) (*GlobalVarsForbid, error) {
	if len(opts.Vars) == 0 {
		return nil, missingOption(GlobalVarsForbidID, "vars")
	}

	vars := make([]string, 0, len(opts.Vars))
	for _, v := range opts.Vars {
		vars = append(vars, strings.TrimPrefix(v, "$"))
	}

	replacement := strings.TrimPrefix(opts.ForbiddenReplacement, "$")
	if replacement == "" {
		replacement = defaultForbiddenVar
	}

	return &GlobalVarsForbid{vars: vars, replacement: replacement}, nil
}

func (r *GlobalVarsForbid) ID() string { return GlobalVarsForbidID }

func (r *GlobalVarsForbid) NodeKinds() []syntax.Kind {
	return []syntax.Kind{syntax.KindVariable}
}

func (r *GlobalVarsForbid) Refactor(_ Scope, node syntax.Node) Outcome {
	v, ok := node.(*syntax.Variable)
	if !ok || v.Name == "" {
		return unchanged()
	}

	if IsSuppressed(node, GlobalVarsForbidID) {
		return unchanged()
	}

	for _, name := range r.vars {
		if strings.EqualFold(v.Name, name) {
			v.Rename(r.replacement)

			return updated(v)
		}
	}

	return unchanged()
}

func (r *GlobalVarsForbid) Definition() m.RuleDefinition {
	return m.RuleDefinition{
		ID:           GlobalVarsForbidID,
		Title:        "Forbid $_SESSION, $_POST and others",
		Configurable: true,
		Samples:      []m.CodeSample{{Before: "$_SESSION['user'];", After: "$forbidden['user'];"}},
	}
}
