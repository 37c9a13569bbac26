package rules

import (
	"strings"

	rerr "github.com/mouse-blink/gorector/internal/errors"
	m "github.com/mouse-blink/gorector/internal/model"
	"github.com/mouse-blink/gorector/internal/syntax"
)

// ResetStateID is the short id of the reset state rule.
const ResetStateID = "ResetStateCheckerRector"

// ResetStateOptions configures ResetStateChecker.
type ResetStateOptions struct {
	// IgnoreClassNamePrefixes are matched as suffixes of the short class
	// name.
	IgnoreClassNamePrefixes []string `yaml:"ignoreClassNamePrefixes" toml:"ignoreClassNamePrefixes"`
	// IgnoreClassNames are matched against the class and all its ancestors.
	IgnoreClassNames []string `yaml:"ignoreClassNames" toml:"ignoreClassNames"`
	// IgnoreAttributes exempt classes carrying one of these attributes.
	IgnoreAttributes    []string `yaml:"ignoreAttributes" toml:"ignoreAttributes"`
	MarkerInterfaceName string   `yaml:"markerInterfaceName" toml:"markerInterfaceName"`
	ResetMethodName     string   `yaml:"resetMethodName" toml:"resetMethodName"`
}

// ResetStateChecker finds properties written outside the constructor and
// makes the class reset them in a dedicated method, implementing a marker
// interface.
type ResetStateChecker struct {
	opts ResetStateOptions
}

// NewResetStateChecker validates opts and returns the rule.
func NewResetStateChecker(opts ResetStateOptions) (*ResetStateChecker, error) {
	if strings.TrimSpace(opts.MarkerInterfaceName) == "" {
		return nil, missingOption(ResetStateID, "markerInterfaceName")
	}

	if strings.TrimSpace(opts.ResetMethodName) == "" {
		return nil, missingOption(ResetStateID, "resetMethodName")
	}

	return &ResetStateChecker{opts: opts}, nil
}

func missingOption(ruleID, option string) error {
	return rerr.Newf(rerr.CodeConfig, "option %q is required", option).
		WithContext(rerr.CtxRule, ruleID).
		WithContext(rerr.CtxOption, option)
}

func (r *ResetStateChecker) ID() string { return ResetStateID }

func (r *ResetStateChecker) NodeKinds() []syntax.Kind {
	return []syntax.Kind{syntax.KindClass}
}

func (r *ResetStateChecker) Refactor(scope Scope, node syntax.Node) Outcome {
	class, ok := node.(*syntax.ClassDecl)
	if !ok {
		return unchanged()
	}

	ancestors := ancestorsOf(scope, class)
	if r.ignored(class, ancestors) {
		return unchanged()
	}

	candidates := r.scanCandidates(class)
	if candidates.empty() {
		return unchanged()
	}

	mutated := findMutated(class, candidates)
	if mutated.empty() {
		return unchanged()
	}

	if !r.applyReset(class, ancestors, mutated) {
		return unchanged()
	}

	return updated(class)
}

func (r *ResetStateChecker) ignored(class *syntax.ClassDecl, ancestors []string) bool {
	if class.IsAnonymous() {
		return true
	}

	short := class.ShortName()
	for _, prefix := range r.opts.IgnoreClassNamePrefixes {
		if prefix != "" && strings.HasSuffix(short, prefix) {
			return true
		}
	}

	for _, name := range r.opts.IgnoreClassNames {
		if containsName(ancestors, name) {
			return true
		}
	}

	for _, attr := range class.Attributes {
		if r.ignoredAttribute(attr) {
			return true
		}
	}

	return IsSuppressed(class, ResetStateID)
}

// ignoredAttribute matches the resolved attribute name. Entries written
// without a namespace also match the attribute's short name.
func (r *ResetStateChecker) ignoredAttribute(attr *syntax.Name) bool {
	full := attr.FullName()
	short := full[strings.LastIndex(full, `\`)+1:]

	for _, want := range r.opts.IgnoreAttributes {
		if sameName(full, want) {
			return true
		}

		if !strings.Contains(want, `\`) && strings.EqualFold(short, want) {
			return true
		}
	}

	return false
}

// ancestorsOf returns the class's own name and every reachable parent. Without
// an Ancestry only the direct extends and implements clauses are known.
func ancestorsOf(scope Scope, class *syntax.ClassDecl) []string {
	if scope.Ancestry != nil {
		return scope.Ancestry.Ancestors(class)
	}

	names := []string{class.FQName()}
	for _, n := range class.Extends {
		names = append(names, n.FullName())
	}

	for _, n := range class.Implements {
		names = append(names, n.FullName())
	}

	return names
}

// sameName compares class names ignoring case and a leading backslash.
func sameName(a, b string) bool {
	return strings.EqualFold(strings.TrimPrefix(a, `\`), strings.TrimPrefix(b, `\`))
}

func containsName(names []string, want string) bool {
	for _, n := range names {
		if sameName(n, want) {
			return true
		}
	}

	return false
}

func (r *ResetStateChecker) Definition() m.RuleDefinition {
	return m.RuleDefinition{
		ID:           ResetStateID,
		Title:        "Looking for classes with writable properties without Resettable Interface implementing.",
		Configurable: true,
		Samples: []m.CodeSample{{
			Before: `final class SomeClass
{
    private array $map = [];

    public function preload()
    {
        $this->map = $this->someService->getSomeData();
    }

    public function getMap()
    {
        return $this->map;
    }
}`,
			After: `final class SomeClass implements ResettableInterface
{
    private array $map = [];

    public function reset()
    {
        $this->map = [];
    }

    public function preload()
    {
        $this->map = $this->someService->getSomeData();
    }

    public function getMap()
    {
        return $this->map;
    }
}`,
		}},
	}
}
