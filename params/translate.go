package params

import "strings"

// ToUFOCustomParams translates a Glyphs object's custom parameters into
// a UFO record. Registered handlers run first, in order; parameters no
// handler claimed are then copied verbatim into the lib under the
// custom-parameter namespace and the object's kind sub-key; finally the
// Glyphs ecosystem defaults missing from the UFO side are materialized.
//
// A handler error aborts the pass. Writes issued by handlers that
// already ran remain applied; passes are not transactional.
func ToUFOCustomParams(glyphsObject GlyphsObject, ufo UFO) error {
	glyphs := NewGlyphsProxy(glyphsObject)
	proxy := NewUFOProxy(ufo)

	for _, handler := range KnownHandlers() {
		if err := handler.ToUFO(glyphs, proxy); err != nil {
			return err
		}
	}

	for param := range glyphs.Unhandled() {
		name := NormalizeCustomParamName(param.Name)
		ufo.SetLibValue(CustomParamPrefix+glyphs.SubKey()+name, param.Value)
	}

	setDefaultParams(ufo)
	return nil
}

// ToGlyphsCustomParams is the reverse direction: registered handlers run
// in order, then every unconsumed lib entry under this object's
// custom-parameter namespace is appended as a new parameter, and finally
// parameters whose value matches a known ecosystem default are retracted
// so they round-trip implicitly.
func ToGlyphsCustomParams(glyphsObject GlyphsObject, ufo UFO) error {
	glyphs := NewGlyphsProxy(glyphsObject)
	proxy := NewUFOProxy(ufo)

	for _, handler := range KnownHandlers() {
		if err := handler.ToGlyphs(glyphs, proxy); err != nil {
			return err
		}
	}

	// Every fontinfo attribute has a registered handler; unexpected data
	// can only be sitting in the lib. Entries carrying another object
	// kind's sub-key stay where they are.
	prefix := CustomParamPrefix + glyphs.SubKey()
	for key, value := range proxy.UnhandledLib() {
		name := NormalizeCustomParamName(key)
		if !strings.HasPrefix(name, prefix) {
			continue
		}
		glyphs.SetSingle(strings.TrimPrefix(name, prefix), value)
	}

	unsetDefaultParams(glyphsObject)
	return nil
}
