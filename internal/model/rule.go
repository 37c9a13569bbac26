package model

// CodeSample is a before/after pair illustrating a rule.
type CodeSample struct {
	Before string
	After  string
}

// RuleDefinition documents a rule. It has no runtime effect.
type RuleDefinition struct {
	ID           string
	Title        string
	Samples      []CodeSample
	Configurable bool
}
