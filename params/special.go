package params

import (
	"fmt"
	"regexp"
	"sort"
	"strconv"

	"github.com/glyphbridge/glyphbridge/codepage"
	"github.com/glyphbridge/glyphbridge/features"
	"github.com/glyphbridge/glyphbridge/filters"
	"github.com/glyphbridge/glyphbridge/internal/bits"
)

// --- OS/2 fsSelection flags -------------------------------------------

// os2SelectionHandler maps a fixed set of boolean Glyphs parameters onto
// bit positions of the UFO's openTypeOS2Selection list. It only ever ORs
// bits in; bits outside the flag set are never touched, in either
// direction.
type os2SelectionHandler struct{}

var os2SelectionFlags = []struct {
	glyphsName string
	bit        int64
}{
	{"Has WWS Names", 8},
	{"Use Typo Metrics", 7},
}

func (os2SelectionHandler) Name() string { return "OS/2 selection" }

func (os2SelectionHandler) ToGlyphs(glyphs *GlyphsProxy, ufo *UFOProxy) error {
	selection, ok := ufo.InfoField("openTypeOS2Selection").Unwrap()
	if !ok {
		return nil
	}
	set, err := selectionBits(selection)
	if err != nil {
		return err
	}
	for _, flag := range os2SelectionFlags {
		if set[flag.bit] {
			glyphs.SetSingle(flag.glyphsName, true)
		}
	}
	return nil
}

func (os2SelectionHandler) ToUFO(glyphs *GlyphsProxy, ufo *UFOProxy) error {
	for _, flag := range os2SelectionFlags {
		value, err := glyphs.Single(flag.glyphsName)
		if err != nil {
			return err
		}
		v, ok := value.Unwrap()
		if !ok || !truthy(v) {
			continue
		}
		selection, _ := ufo.InfoField("openTypeOS2Selection").Unwrap()
		list, _ := selection.([]any)
		set, err := selectionBits(list)
		if err != nil {
			return err
		}
		if !set[flag.bit] {
			list = append(list, flag.bit)
		}
		ufo.SetInfoField("openTypeOS2Selection", list)
	}
	return nil
}

func selectionBits(selection any) (map[int64]bool, error) {
	set := make(map[int64]bool)
	list, ok := selection.([]any)
	if selection != nil && !ok {
		return nil, fmt.Errorf("openTypeOS2Selection is not a list: %T", selection)
	}
	for _, entry := range list {
		bit, err := asInt(entry)
		if err != nil {
			return nil, fmt.Errorf("openTypeOS2Selection entry: %w", err)
		}
		set[bit] = true
	}
	return set, nil
}

// --- Glyph filters ----------------------------------------------------

// filterHandler moves the multivalued Filter/PreFilter parameters into
// ufo2ft's filters lib key and back, delegating the per-entry syntax to
// the filters package. Pre-filters come first, then filters, each group
// in parameter-list order; merging into an existing UFO filter list
// appends, it never replaces.
type filterHandler struct{}

func (filterHandler) Name() string { return "Filter" }

func (filterHandler) ToGlyphs(glyphs *GlyphsProxy, ufo *UFOProxy) error {
	value, ok := ufo.LibValue(UFO2FTFiltersKey).Unwrap()
	if !ok {
		return nil
	}
	entries, ok := value.([]any)
	if !ok {
		return fmt.Errorf("lib key %s is not a list: %T", UFO2FTFiltersKey, value)
	}
	for _, entry := range entries {
		filter, ok := entry.(map[string]any)
		if !ok {
			return fmt.Errorf("filter entry is not a dict: %T", entry)
		}
		text, pre, err := filters.Write(filter)
		if err != nil {
			return err
		}
		name := "Filter"
		if pre {
			name = "PreFilter"
		}
		glyphs.SetSingle(name, text)
	}
	return nil
}

func (filterHandler) ToUFO(glyphs *GlyphsProxy, ufo *UFOProxy) error {
	var parsed []any
	for _, value := range glyphs.Many("PreFilter") {
		filter, err := parseFilterValue(value, true)
		if err != nil {
			return err
		}
		parsed = append(parsed, filter)
	}
	for _, value := range glyphs.Many("Filter") {
		filter, err := parseFilterValue(value, false)
		if err != nil {
			return err
		}
		parsed = append(parsed, filter)
	}
	if len(parsed) == 0 {
		return nil
	}
	if !ufo.HasLibKey(UFO2FTFiltersKey) {
		ufo.SetLibValue(UFO2FTFiltersKey, []any{})
	}
	existing, _ := ufo.LibValue(UFO2FTFiltersKey).Unwrap()
	list, ok := existing.([]any)
	if !ok {
		return fmt.Errorf("lib key %s is not a list: %T", UFO2FTFiltersKey, existing)
	}
	ufo.SetLibValue(UFO2FTFiltersKey, append(list, parsed...))
	return nil
}

func parseFilterValue(value any, pre bool) (map[string]any, error) {
	text, ok := value.(string)
	if !ok {
		return nil, fmt.Errorf("filter parameter is not a string: %T", value)
	}
	return filters.Parse(text, pre)
}

// --- Replace Feature --------------------------------------------------

// replaceFeatureHandler patches the UFO's feature text for every
// "Replace Feature" parameter, in parameter-list order. A master or
// instance uses it to carry features diverging from the font's; there is
// no reverse translation.
type replaceFeatureHandler struct{}

var replaceFeatureSplit = regexp.MustCompile(`\s*;\s*`)

func (replaceFeatureHandler) Name() string { return "Replace Feature" }

func (replaceFeatureHandler) ToUFO(glyphs *GlyphsProxy, ufo *UFOProxy) error {
	for _, value := range glyphs.Many("Replace Feature") {
		text, ok := value.(string)
		if !ok {
			return fmt.Errorf("Replace Feature parameter is not a string: %T", value)
		}
		parts := replaceFeatureSplit.Split(text, 2)
		if len(parts) < 2 {
			return fmt.Errorf("malformed Replace Feature parameter: %q", text)
		}
		patched, err := features.Replace(parts[0], parts[1], ufo.FeatureText())
		if err != nil {
			return err
		}
		ufo.SetFeatureText(patched)
	}
	return nil
}

func (replaceFeatureHandler) ToGlyphs(glyphs *GlyphsProxy, ufo *UFOProxy) error {
	return nil
}

// --- GASP table transforms --------------------------------------------

// toUFOGaspTable converts the Glyphs "GASP Table" dictionary
// {ppem: bit-encoded behavior} into UFO gasp range records. Records must
// be sorted by ascending rangeMaxPPEM; downstream consumers rely on it.
func toUFOGaspTable(value any) (any, error) {
	table, ok := value.(map[string]any)
	if !ok {
		return nil, fmt.Errorf("GASP Table is not a dict: %T", value)
	}
	type gaspRange struct {
		maxPPEM  int64
		behavior []int64
	}
	ranges := make([]gaspRange, 0, len(table))
	for key, encoded := range table {
		maxPPEM, err := strconv.ParseInt(key, 10, 64)
		if err != nil {
			return nil, fmt.Errorf("GASP Table key %q: %w", key, err)
		}
		behavior, err := bits.ToIntList(encoded)
		if err != nil {
			return nil, fmt.Errorf("GASP Table entry %q: %w", key, err)
		}
		ranges = append(ranges, gaspRange{maxPPEM: maxPPEM, behavior: behavior})
	}
	sort.Slice(ranges, func(i, j int) bool { return ranges[i].maxPPEM < ranges[j].maxPPEM })
	records := make([]any, 0, len(ranges))
	for _, r := range ranges {
		behavior := make([]any, len(r.behavior))
		for i, bit := range r.behavior {
			behavior[i] = bit
		}
		records = append(records, map[string]any{
			"rangeMaxPPEM":      r.maxPPEM,
			"rangeGaspBehavior": behavior,
		})
	}
	return records, nil
}

// toGlyphsGaspTable is the inverse: re-encode the bit list and
// re-stringify the keys.
func toGlyphsGaspTable(value any) (any, error) {
	records, ok := value.([]any)
	if !ok {
		return nil, fmt.Errorf("openTypeGaspRangeRecords is not a list: %T", value)
	}
	table := make(map[string]any, len(records))
	for _, entry := range records {
		record, ok := entry.(map[string]any)
		if !ok {
			return nil, fmt.Errorf("gasp range record is not a dict: %T", entry)
		}
		maxPPEM, err := asInt(record["rangeMaxPPEM"])
		if err != nil {
			return nil, fmt.Errorf("rangeMaxPPEM: %w", err)
		}
		behavior, ok := record["rangeGaspBehavior"].([]any)
		if !ok {
			return nil, fmt.Errorf("rangeGaspBehavior is not a list: %T", record["rangeGaspBehavior"])
		}
		positions := make([]int64, 0, len(behavior))
		for _, bit := range behavior {
			pos, err := asInt(bit)
			if err != nil {
				return nil, fmt.Errorf("rangeGaspBehavior entry: %w", err)
			}
			positions = append(positions, pos)
		}
		table[strconv.FormatInt(maxPPEM, 10)] = bits.FromIntList(positions)
	}
	return table, nil
}

// --- Codepage ranges --------------------------------------------------

// toUFOCodePages converts Glyphs codepage numbers to OS/2
// ulCodePageRange bits. An unknown codepage is an error here; there is
// no OS/2 bit it could be stored under.
func toUFOCodePages(value any) (any, error) {
	list, ok := value.([]any)
	if !ok {
		return nil, fmt.Errorf("codePageRanges is not a list: %T", value)
	}
	out := make([]any, 0, len(list))
	for _, entry := range list {
		cp, err := asInt(entry)
		if err != nil {
			return nil, fmt.Errorf("codePageRanges entry: %w", err)
		}
		bit, ok := codepage.Bit(cp)
		if !ok {
			return nil, fmt.Errorf("no OS/2 codepage bit for codepage %d", cp)
		}
		out = append(out, bit)
	}
	return out, nil
}

// toGlyphsCodePages converts OS/2 bits back to codepage numbers. Bits
// without a codepage equivalent are dropped.
func toGlyphsCodePages(value any) (any, error) {
	list, ok := value.([]any)
	if !ok {
		return nil, fmt.Errorf("openTypeOS2CodePageRanges is not a list: %T", value)
	}
	out := make([]any, 0, len(list))
	for _, entry := range list {
		bit, err := asInt(entry)
		if err != nil {
			return nil, fmt.Errorf("openTypeOS2CodePageRanges entry: %w", err)
		}
		cp, ok := codepage.Codepage(bit)
		if !ok {
			tracer().Debugf("no codepage for OS/2 bit %d, dropping", bit)
			continue
		}
		out = append(out, cp)
	}
	return out, nil
}
