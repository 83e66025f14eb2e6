package params

// The two ecosystems disagree on a handful of built-in defaults. The
// table below records the divergences; translation materializes them on
// the UFO side and retracts them on the Glyphs side, so a value equal to
// the default never travels as explicit data.
type defaultParam struct {
	glyphsName string
	// longName is the alias under which older sources may carry the
	// same parameter; retraction covers it too.
	longName string
	ufoName  string
	value    any
}

var defaultParams = []defaultParam{
	// ufo2ft defaults to fsType bit 2 ("Preview & Print embedding"),
	// Glyphs.app to bit 3 ("Editable embedding").
	{"fsType", "openTypeOS2Type", "openTypeOS2Type", []any{int64(3)}},
	{"underlineThickness", "postscriptUnderlineThickness", "postscriptUnderlineThickness", int64(50)},
	{"underlinePosition", "postscriptUnderlinePosition", "postscriptUnderlinePosition", int64(-100)},
}

// setDefaultParams materializes Glyphs defaults on UFO fields that are
// still unset. Composite defaults are copied so that unrelated objects
// never share one mutable value. Running it twice is a no-op.
func setDefaultParams(ufo UFO) {
	for _, def := range defaultParams {
		if ufo.InfoField(def.ufoName).IsSome() {
			continue
		}
		ufo.SetInfoField(def.ufoName, copyValue(def.value))
	}
}

// unsetDefaultParams removes parameters whose value equals the known
// default, under the short name and under the long alias. Each alias
// found is removed once. Running it twice is a no-op.
func unsetDefaultParams(glyphs GlyphsObject) {
	for _, def := range defaultParams {
		retractDefault(glyphs, def.glyphsName, def.value)
		if def.longName != "" && def.longName != def.glyphsName {
			retractDefault(glyphs, def.longName, def.value)
		}
	}
}

func retractDefault(glyphs GlyphsObject, name string, def any) {
	for _, param := range glyphs.CustomParameters() {
		if param.Name != name {
			continue
		}
		if equalValues(param.Value, def) {
			tracer().Debugf("retracting default-valued parameter %s", name)
			glyphs.RemoveCustomParameter(name)
		}
		return
	}
}
