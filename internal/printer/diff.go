package printer

import (
	"bytes"
	"fmt"
	"strings"

	"github.com/pmezard/go-difflib/difflib"
	"github.com/sourcegraph/go-diff/diff"
)

const contextLines = 3

// Diff returns a unified diff of before and after, or "" when they are equal.
func Diff(path string, before, after []byte) (string, error) {
	if bytes.Equal(before, after) {
		return "", nil
	}

	fd := &diff.FileDiff{
		OrigName: "a/" + path,
		NewName:  "b/" + path,
		Hunks:    Hunks(before, after),
	}

	out, err := diff.PrintFileDiff(fd)
	if err != nil {
		return "", fmt.Errorf("print diff for %s: %w", path, err)
	}

	return string(out), nil
}

// Hunks computes unified diff hunks with three lines of context. Changes
// separated by at most six unchanged lines share a hunk.
func Hunks(before, after []byte) []*diff.Hunk {
	if bytes.Equal(before, after) {
		return nil
	}

	a, b := splitLines(before), splitLines(after)

	// popular lines such as blanks and braces must still anchor matches
	matcher := difflib.NewMatcherWithJunk(a, b, false, nil)

	groups := matcher.GetGroupedOpCodes(contextLines)
	hunks := make([]*diff.Hunk, 0, len(groups))

	for _, group := range groups {
		hunks = append(hunks, buildHunk(a, b, group))
	}

	return hunks
}

func buildHunk(a, b []string, group []difflib.OpCode) *diff.Hunk {
	first, last := group[0], group[len(group)-1]

	h := &diff.Hunk{
		OrigStartLine: int32(first.I1 + 1),
		OrigLines:     int32(last.I2 - first.I1),
		NewStartLine:  int32(first.J1 + 1),
		NewLines:      int32(last.J2 - first.J1),
	}

	var body bytes.Buffer

	for _, op := range group {
		if op.Tag == 'e' {
			writeLines(h, &body, ' ', a[op.I1:op.I2])

			continue
		}

		if op.Tag == 'r' || op.Tag == 'd' {
			writeLines(h, &body, '-', a[op.I1:op.I2])
		}

		if op.Tag == 'r' || op.Tag == 'i' {
			writeLines(h, &body, '+', b[op.J1:op.J2])
		}
	}

	// an empty side starts at the line before the hunk
	if h.OrigLines == 0 {
		h.OrigStartLine--
	}

	if h.NewLines == 0 {
		h.NewStartLine--
	}

	h.Body = body.Bytes()

	return h
}

// writeLines prefixes every line. A final line without terminator follows
// go-diff's convention: an original line keeps its newline in the body and
// is marked with OrigNoNewlineAt, any other line ends the body unterminated.
func writeLines(h *diff.Hunk, body *bytes.Buffer, prefix byte, lines []string) {
	for _, line := range lines {
		body.WriteByte(prefix)
		body.WriteString(line)

		if strings.HasSuffix(line, "\n") {
			continue
		}

		if prefix == '-' {
			body.WriteByte('\n')
			h.OrigNoNewlineAt = int32(body.Len())
		}
	}
}

// splitLines keeps the line terminators.
func splitLines(src []byte) []string {
	if len(src) == 0 {
		return nil
	}

	lines := strings.SplitAfter(string(src), "\n")
	if lines[len(lines)-1] == "" {
		lines = lines[:len(lines)-1]
	}

	return lines
}
