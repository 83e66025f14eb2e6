package params

import (
	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
)

// Custom-parameter names are user-generated and may carry curly quotes
// typed in the font editor. Keys are folded to straight quotes on both
// sweep directions so that one logical name never exists under two
// spellings.
var quoteFolder = runes.Map(func(r rune) rune {
	switch r {
	case '‘', '’':
		return '\''
	case '“', '”':
		return '"'
	}
	return r
})

// NormalizeCustomParamName replaces curly single and double quotes in a
// parameter name with their straight equivalents.
func NormalizeCustomParamName(name string) string {
	out, _, err := transform.String(quoteFolder, name)
	if err != nil {
		tracer().Errorf("cannot normalize parameter name %q: %v", name, err)
		return name
	}
	return out
}
