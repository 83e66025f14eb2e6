/*
Package params translates font metadata between the two source-of-truth
representations of a font project: a Glyphs-style object (GSFont,
GSFontMaster or GSInstance, each carrying a flat list of custom
parameters) and a UFO-style record (typed fontinfo attributes plus a
free-form lib dictionary).

A translation pass wraps both sides in proxies. GlyphsProxy memoizes the
custom-parameter list into a name → values lookup and records which names
have been consulted; UFOProxy records which lib keys have been read. Each
known field is owned by one Handler that knows the field's name on either
side and how to coerce its value. Handlers run in registration order; when
all of them are done, whatever neither side claimed is copied verbatim
into the other side's free-form storage, so unknown data survives a round
trip. Finally the pass reconciles the two ecosystems' diverging built-in
defaults (materializing them on the UFO side, retracting them on the
Glyphs side).

A pass mutates only the two objects passed in; the handler registry is
populated during package initialization and never changes afterwards, so
concurrent passes on distinct object pairs are safe. Passes on the same
pair must be serialized by the caller.

# License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.
*/
package params

import "github.com/npillmayer/schuko/tracing"

// Lib keys written by this package are namespaced to stay out of the way
// of other tools operating on the same UFO.
const (
	// GlyphsPrefix namespaces all Glyphs-related keys in a UFO lib.
	GlyphsPrefix = "com.schriftgestalt.glyphs."
	// PublicPrefix is the UFO standard namespace for shared lib keys.
	PublicPrefix = "public."
	// CustomParamPrefix namespaces round-tripped custom parameters. The
	// proxy's sub-key (object kind) is appended so that font-level and
	// master-level parameters of the same name do not collide in one lib.
	CustomParamPrefix = GlyphsPrefix + "customParameter."

	// UFO2FTFiltersKey is ufo2ft's lib key for glyph filters.
	UFO2FTFiltersKey = "com.github.googlei18n.ufo2ft.filters"
	// UFO2FTUseProdNamesKey is ufo2ft's equivalent of the Glyphs
	// parameter "Don't use Production Names" (with inverted polarity).
	UFO2FTUseProdNamesKey = "com.github.googlei18n.ufo2ft.useProductionNames"
)

// tracer writes to trace with key 'glyphbridge.params'
func tracer() tracing.Trace {
	return tracing.Select("glyphbridge.params")
}
