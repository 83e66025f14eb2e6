/*
Package glyphbridge translates font metadata between a Glyphs-style
object model and UFO-style fontinfo/lib records, in both directions and
without losing data either side does not understand.

The engine lives in package params; this package re-exports the two
drivers for the common case. Clients with their own object models
implement the params.GlyphsObject and params.UFO contracts and hand
their objects to the drivers.

# License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.
*/
package glyphbridge

import (
	"github.com/glyphbridge/glyphbridge/params"
	"github.com/npillmayer/schuko/tracing"
)

// tracer writes to trace with key 'glyphbridge'
func tracer() tracing.Trace {
	return tracing.Select("glyphbridge")
}

// ToUFO moves a Glyphs object's custom parameters into a UFO record:
// known fields through their registered translation rules, unknown ones
// verbatim into the lib. The UFO keeps whatever it already carried;
// translation only adds.
func ToUFO(glyphs params.GlyphsObject, ufo params.UFO) error {
	tracer().Debugf("translating %s custom parameters to UFO", glyphs.Kind())
	return params.ToUFOCustomParams(glyphs, ufo)
}

// ToGlyphs moves UFO fontinfo and lib data into a Glyphs object's
// custom-parameter list, the reverse of ToUFO.
func ToGlyphs(glyphs params.GlyphsObject, ufo params.UFO) error {
	tracer().Debugf("translating UFO data to %s custom parameters", glyphs.Kind())
	return params.ToGlyphsCustomParams(glyphs, ufo)
}
