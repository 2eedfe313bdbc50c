package search

import (
	"regexp"
	"strings"
)

// Query is a search request with an optional category restriction
type Query struct {
	Category string
	Text     string
	Raw      string // Original query string
}

// Parser handles the `category:<name>` prefix accepted by the CLI
type Parser struct {
	fieldPattern *regexp.Regexp
}

// NewParser creates a new query parser
func NewParser() *Parser {
	return &Parser{
		// category:Hair red, category:"Hair Color" red
		fieldPattern: regexp.MustCompile(`^(?i:category|cat):(?:"([^"]*)"|(\S+))\s*`),
	}
}

// Parse splits raw into an optional category and the substring to match.
// Text outside the field prefix is kept verbatim apart from outer whitespace.
func (p *Parser) Parse(raw string) Query {
	q := Query{Raw: raw}
	rest := strings.TrimLeft(raw, " \t")

	if m := p.fieldPattern.FindStringSubmatchIndex(rest); m != nil {
		if m[2] >= 0 {
			q.Category = rest[m[2]:m[3]]
		} else {
			q.Category = rest[m[4]:m[5]]
		}
		rest = rest[m[1]:]
	}

	q.Text = strings.TrimSpace(rest)
	return q
}
