package rules

import (
	"strings"

	"github.com/mouse-blink/gorector/internal/syntax"
)

// IsSuppressed reports whether the node's doc comment disables ruleID. An
// absent or empty tag suppresses nothing.
func IsSuppressed(node syntax.Node, ruleID string) bool {
	if node == nil {
		return false
	}

	value, ok := node.NodeMeta().Doc().Tag(SuppressTag)
	if !ok || value == "" {
		return false
	}

	for _, id := range strings.Split(value, " ") {
		if id == ruleID {
			return true
		}
	}

	return false
}
