package rules

import (
	"strings"

	rerr "github.com/mouse-blink/gorector/internal/errors"
	m "github.com/mouse-blink/gorector/internal/model"
)

// Options carries the settings of the configurable rules. A nil entry leaves
// the rule unconfigured.
type Options struct {
	ResetState         *ResetStateOptions
	ForbiddenFunctions *ForbiddenFunctionsOptions
	GlobalVars         *GlobalVarsOptions
}

type entry struct {
	id    string
	proto Rule
	build func(Options) (Rule, bool, error)
}

func always(r Rule) func(Options) (Rule, bool, error) {
	return func(Options) (Rule, bool, error) { return r, true, nil }
}

// catalog lists every rule in application order.
var catalog = []entry{
	{
		id:    ResetStateID,
		proto: &ResetStateChecker{},
		build: func(o Options) (Rule, bool, error) {
			if o.ResetState == nil {
				return nil, false, nil
			}

			r, err := NewResetStateChecker(*o.ResetState)

			return r, true, err
		},
	},
	{id: EchoForbidID, proto: EchoForbid{}, build: always(EchoForbid{})},
	{id: ExitAndDieID, proto: ExitAndDie{}, build: always(ExitAndDie{})},
	{
		id:    ForbiddenFunctionsID,
		proto: &ForbiddenFunctions{},
		build: func(o Options) (Rule, bool, error) {
			if o.ForbiddenFunctions == nil {
				return nil, false, nil
			}

			r, err := NewForbiddenFunctions(*o.ForbiddenFunctions)

			return r, true, err
		},
	},
	{
		id:    GlobalVarsForbidID,
		proto: &GlobalVarsForbid{},
		build: func(o Options) (Rule, bool, error) {
			if o.GlobalVars == nil {
				return nil, false, nil
			}

			r, err := NewGlobalVarsForbid(*o.GlobalVars)

			return r, true, err
		},
	},
	{id: IncludeRequireID, proto: IncludeRequire{}, build: always(IncludeRequire{})},
	{id: StaticArrowID, proto: StaticArrowFunctionChecker{}, build: always(StaticArrowFunctionChecker{})},
}

// Catalog returns the definition of every known rule.
func Catalog() []m.RuleDefinition {
	defs := make([]m.RuleDefinition, 0, len(catalog))
	for _, e := range catalog {
		defs = append(defs, e.proto.Definition())
	}

	return defs
}

// Lookup returns the definition of the rule with the given id, matched
// case-insensitively.
func Lookup(id string) (m.RuleDefinition, bool) {
	for _, e := range catalog {
		if strings.EqualFold(e.id, id) {
			return e.proto.Definition(), true
		}
	}

	return m.RuleDefinition{}, false
}

// Build instantiates rules. With no ids every rule that needs no options,
// plus every configured one, is returned. Naming a configurable rule
// without its options is a configuration error.
func Build(ids []string, opts Options) ([]Rule, error) {
	if len(ids) == 0 {
		var out []Rule

		for _, e := range catalog {
			r, ok, err := e.build(opts)
			if err != nil {
				return nil, err
			}

			if ok {
				out = append(out, r)
			}
		}

		return out, nil
	}

	wanted := make(map[string]bool, len(ids))

	for _, id := range ids {
		if _, ok := Lookup(id); !ok {
			return nil, rerr.Newf(rerr.CodeConfig, "unknown rule %q", id).WithContext(rerr.CtxRule, id)
		}

		wanted[strings.ToLower(id)] = true
	}

	var out []Rule

	for _, e := range catalog {
		if !wanted[strings.ToLower(e.id)] {
			continue
		}

		r, ok, err := e.build(opts)
		if err != nil {
			return nil, err
		}

		if !ok {
			return nil, rerr.Newf(rerr.CodeConfig, "rule %s needs options", e.id).WithContext(rerr.CtxRule, e.id)
		}

		out = append(out, r)
	}

	return out, nil
}
