/*
Package filters is a codec for the Glyphs filter mini-language, the
semicolon-separated expressions stored in "Filter" and "PreFilter"
custom parameters, e.g.

	Transformations;LSB:+23;RSB:-22;SlantCorrection:true;exclude:f,g

One expression becomes a dictionary with the filter name, positional
args, keyword args and optional include/exclude glyph lists, matching
the shape ufo2ft expects in its filters lib key.

# License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.
*/
package filters

import (
	"errors"
	"fmt"
	"sort"
	"strconv"
	"strings"

	"github.com/npillmayer/schuko/tracing"
)

// tracer writes to trace with key 'glyphbridge.filters'
func tracer() tracing.Trace {
	return tracing.Select("glyphbridge.filters")
}

var ErrEmptyFilter = errors.New("empty filter expression")

// Parse decodes one filter expression. pre marks the filter as a
// pre-filter (run before decomposition); it is recorded in the result
// under the "pre" key.
func Parse(text string, pre bool) (map[string]any, error) {
	elements := strings.Split(text, ";")
	name := strings.TrimSpace(elements[0])
	if name == "" {
		return nil, fmt.Errorf("%w: %q", ErrEmptyFilter, text)
	}
	filter := map[string]any{"name": name}
	if pre {
		filter["pre"] = true
	}
	var args []any
	kwargs := map[string]any{}
	for _, element := range elements[1:] {
		element = strings.TrimSpace(element)
		if element == "" {
			continue
		}
		key, value, isKeyword := strings.Cut(element, ":")
		if !isKeyword {
			args = append(args, parseValue(element))
			continue
		}
		key = strings.TrimSpace(key)
		switch key {
		case "include", "exclude":
			filter[key] = splitGlyphList(value)
		default:
			kwargs[key] = parseValue(strings.TrimSpace(value))
		}
	}
	if len(args) > 0 {
		filter["args"] = args
	}
	if len(kwargs) > 0 {
		filter["kwargs"] = kwargs
	}
	return filter, nil
}

// Write encodes a filter dictionary back into its expression form and
// reports whether it is a pre-filter.
func Write(filter map[string]any) (text string, pre bool, err error) {
	name, _ := filter["name"].(string)
	if strings.TrimSpace(name) == "" {
		return "", false, fmt.Errorf("%w: missing name", ErrEmptyFilter)
	}
	var sb strings.Builder
	sb.WriteString(name)
	if args, ok := filter["args"].([]any); ok {
		for _, arg := range args {
			sb.WriteString(";")
			sb.WriteString(formatValue(arg))
		}
	}
	if kwargs, ok := filter["kwargs"].(map[string]any); ok {
		for _, key := range sortedKeys(kwargs) {
			sb.WriteString(";")
			sb.WriteString(key)
			sb.WriteString(":")
			sb.WriteString(formatValue(kwargs[key]))
		}
	}
	for _, key := range []string{"include", "exclude"} {
		list, ok := filter[key].([]any)
		if !ok {
			continue
		}
		names := make([]string, 0, len(list))
		for _, entry := range list {
			names = append(names, formatValue(entry))
		}
		sb.WriteString(";")
		sb.WriteString(key)
		sb.WriteString(":")
		sb.WriteString(strings.Join(names, ","))
	}
	pre, _ = filter["pre"].(bool)
	return sb.String(), pre, nil
}

// parseValue reads numbers as numbers and booleans as booleans;
// everything else stays a string.
func parseValue(s string) any {
	if n, err := strconv.ParseInt(s, 10, 64); err == nil {
		return n
	}
	if f, err := strconv.ParseFloat(s, 64); err == nil {
		return f
	}
	switch s {
	case "true":
		return true
	case "false":
		return false
	}
	return s
}

func formatValue(value any) string {
	switch v := value.(type) {
	case string:
		return v
	case bool:
		if v {
			return "true"
		}
		return "false"
	case float64:
		return strconv.FormatFloat(v, 'g', -1, 64)
	case float32:
		return strconv.FormatFloat(float64(v), 'g', -1, 32)
	case int:
		return strconv.Itoa(v)
	case int64:
		return strconv.FormatInt(v, 10)
	}
	tracer().Debugf("unexpected filter value type %T, using %%v", value)
	return fmt.Sprintf("%v", value)
}

func splitGlyphList(s string) []any {
	parts := strings.Split(s, ",")
	out := make([]any, 0, len(parts))
	for _, part := range parts {
		part = strings.TrimSpace(part)
		if part != "" {
			out = append(out, part)
		}
	}
	return out
}

func sortedKeys(m map[string]any) []string {
	keys := make([]string, 0, len(m))
	for key := range m {
		keys = append(keys, key)
	}
	// Stable output: kwargs have no inherent order in the dict form.
	sort.Strings(keys)
	return keys
}
