package rules

import (
	"strings"

	m "github.com/mouse-blink/gorector/internal/model"
	"github.com/mouse-blink/gorector/internal/syntax"
)

// ForbiddenFunctionsID is the short id of ForbiddenFunctions.
const ForbiddenFunctionsID = "ForbiddenFunctionsRector"

const defaultForbiddenFunction = "forbiddenFunction"

// ForbiddenFunctionsOptions configures ForbiddenFunctions.
type ForbiddenFunctionsOptions struct {
	Functions            []string `yaml:"functions" toml:"functions"`
	ForbiddenReplacement string   `yaml:"forbiddenReplacement" toml:"forbiddenReplacement"`
}

// ForbiddenFunctions renames calls to forbidden functions so they fail
// loudly. print_r($x, true) only returns the dump and is allowed.
type ForbiddenFunctions struct {
	functions   []string
	replacement string
}

// NewForbiddenFunctions validates opts and returns the rule.
func NewForbiddenFunctions(opts ForbiddenFunctionsOptions) (*ForbiddenFunctions, error) {
	if len(opts.Functions) == 0 {
		return nil, missingOption(ForbiddenFunctionsID, "functions")
	}

	replacement := opts.ForbiddenReplacement
	if replacement == "" {
		replacement = defaultForbiddenFunction
	}

	return &ForbiddenFunctions{functions: opts.Functions, replacement: replacement}, nil
}

func (r *ForbiddenFunctions) ID() string { return ForbiddenFunctionsID }

func (r *ForbiddenFunctions) NodeKinds() []syntax.Kind {
	return []syntax.Kind{syntax.KindFuncCall}
}

func (r *ForbiddenFunctions) Refactor(_ Scope, node syntax.Node) Outcome {
	call, ok := node.(*syntax.FuncCall)
	if !ok {
		return unchanged()
	}

	if IsSuppressed(node, ForbiddenFunctionsID) {
		return unchanged()
	}

	name := strings.TrimPrefix(call.FuncName(), `\`)
	if name == "" || !r.forbidden(name) {
		return unchanged()
	}

	if strings.EqualFold(name, "print_r") && returnsDump(call) {
		return unchanged()
	}

	call.Func = syntax.Replace(call.Func, syntax.NewName(r.replacement))

	return updated(call)
}

func (r *ForbiddenFunctions) forbidden(name string) bool {
	for _, fn := range r.functions {
		if strings.EqualFold(strings.TrimPrefix(fn, `\`), name) {
			return true
		}
	}

	return false
}

// returnsDump reports whether the second argument is a literal true.
func returnsDump(call *syntax.FuncCall) bool {
	if len(call.Args) < 2 {
		return false
	}

	arg, ok := call.Args[1].(*syntax.Arg)
	if !ok {
		return false
	}

	lit, ok := arg.Value.(*syntax.Literal)

	return ok && lit.Type == syntax.LitBool && strings.EqualFold(lit.Raw, "true")
}

func (r *ForbiddenFunctions) Definition() m.RuleDefinition {
	return m.RuleDefinition{
		ID:           ForbiddenFunctionsID,
		Title:        "Forbid some functions",
		Configurable: true,
		Samples: []m.CodeSample{{
			Before: "setcookie('a', 'b');",
			After:  "forbiddenFunction('a', 'b');",
		}},
	}
}
