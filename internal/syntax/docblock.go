package syntax

import "strings"

// DocBlock is a parsed /** ... */ comment. Tags are indexed by name once at
// parse time; the first occurrence of a tag wins.
type DocBlock struct {
	Text string
	tags map[string]string
}

// ParseDocBlock reads the @tags of a doc comment. A tag's value is the rest
// of its line with surrounding whitespace removed.
func ParseDocBlock(text string) *DocBlock {
	doc := &DocBlock{Text: text, tags: map[string]string{}}

	body := strings.TrimPrefix(strings.TrimSpace(text), "/**")
	body = strings.TrimSuffix(body, "*/")

	for _, line := range strings.Split(body, "\n") {
		line = strings.TrimSpace(line)
		line = strings.TrimLeft(line, "*")
		line = strings.TrimSpace(line)

		if !strings.HasPrefix(line, "@") {
			continue
		}

		name, value, _ := strings.Cut(line[1:], " ")
		name = strings.TrimSpace(name)

		if name == "" {
			continue
		}

		if _, seen := doc.tags[name]; seen {
			continue
		}

		doc.tags[name] = strings.TrimSpace(value)
	}

	return doc
}

// Tag returns the value of the named tag.
func (d *DocBlock) Tag(name string) (string, bool) {
	if d == nil {
		return "", false
	}

	v, ok := d.tags[name]

	return v, ok
}

// IsDocComment reports whether a comment uses the /** form.
func IsDocComment(text string) bool {
	return strings.HasPrefix(text, "/**") && !strings.HasPrefix(text, "/**/")
}
