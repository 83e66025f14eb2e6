package params_test

import (
	"testing"

	"github.com/npillmayer/schuko/tracing/gotestingadapter"
	"github.com/stretchr/testify/suite"

	"github.com/glyphbridge/glyphbridge/internal/memfont"
	"github.com/glyphbridge/glyphbridge/params"
)

// --- Test Suite Preparation ------------------------------------------------

type TranslateTestEnviron struct {
	suite.Suite
}

// listen for 'go test' command --> run test methods
func TestTranslation(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "glyphbridge.params")
	defer teardown()
	suite.Run(t, new(TranslateTestEnviron))
}

func (env *TranslateTestEnviron) font(parameters ...params.Parameter) *memfont.Object {
	font := memfont.NewFont()
	for _, p := range parameters {
		font.AppendCustomParameter(p)
	}
	return font
}

func paramValues(object *memfont.Object, name string) []any {
	var values []any
	for _, p := range object.CustomParameters() {
		if p.Name == name {
			values = append(values, p.Value)
		}
	}
	return values
}

// --- Tests -----------------------------------------------------------------

func (env *TranslateTestEnviron) TestWeightClassCoercion() {
	font := env.font(params.Parameter{Name: "weightClass", Value: 4.0})
	ufo := memfont.NewUFO()
	env.Require().NoError(params.ToUFOCustomParams(font, ufo))

	value, ok := ufo.InfoField("openTypeOS2WeightClass").Unwrap()
	env.Require().True(ok, "expected openTypeOS2WeightClass to be set")
	env.Equal(int64(4), value, "expected float weightClass to be coerced to an integer")
}

func (env *TranslateTestEnviron) TestShortNameBeatsLongAlias() {
	font := env.font(
		params.Parameter{Name: "openTypeHheaAscender", Value: int64(750)},
		params.Parameter{Name: "hheaAscender", Value: int64(800)},
	)
	ufo := memfont.NewUFO()
	env.Require().NoError(params.ToUFOCustomParams(font, ufo))

	value, ok := ufo.InfoField("openTypeHheaAscender").Unwrap()
	env.Require().True(ok)
	env.Equal(int64(800), value, "expected the short-name value to win over the long alias")
	env.False(ufo.HasLibKey(params.CustomParamPrefix+"GSFont.openTypeHheaAscender"),
		"expected the losing alias to be consumed, not swept into the lib")
}

func (env *TranslateTestEnviron) TestLongAliasIsNormalizedToShortName() {
	font := env.font(params.Parameter{Name: "openTypeHheaAscender", Value: int64(750)})
	ufo := memfont.NewUFO()
	env.Require().NoError(params.ToUFOCustomParams(font, ufo))

	back := memfont.NewFont()
	env.Require().NoError(params.ToGlyphsCustomParams(back, ufo))

	env.Equal([]any{int64(750)}, paramValues(back, "hheaAscender"),
		"expected the value to come back under the short name")
	env.Empty(paramValues(back, "openTypeHheaAscender"),
		"expected the long alias to never be written back")
}

func (env *TranslateTestEnviron) TestUnknownParameterPassthrough() {
	font := env.font(params.Parameter{Name: "Foo Bar", Value: "baz"})
	ufo := memfont.NewUFO()
	env.Require().NoError(params.ToUFOCustomParams(font, ufo))

	key := params.CustomParamPrefix + "GSFont.Foo Bar"
	value, ok := ufo.LibValue(key).Unwrap()
	env.Require().True(ok, "expected unknown parameter to land in the lib under %s", key)
	env.Equal("baz", value)

	back := memfont.NewFont()
	env.Require().NoError(params.ToGlyphsCustomParams(back, ufo))
	env.Equal([]any{"baz"}, paramValues(back, "Foo Bar"),
		"expected unknown parameter to survive the round trip verbatim")
}

func (env *TranslateTestEnviron) TestQuoteNormalizationOnReadback() {
	ufo := memfont.NewUFO()
	ufo.SetLibValue(params.CustomParamPrefix+"GSFont.Designer’s Note", "hi")

	back := memfont.NewFont()
	env.Require().NoError(params.ToGlyphsCustomParams(back, ufo))
	env.Equal([]any{"hi"}, paramValues(back, "Designer's Note"),
		"expected the curly quote to be folded to a straight apostrophe")
}

func (env *TranslateTestEnviron) TestSubKeyKeepsKindsApart() {
	master := memfont.NewMaster()
	master.AppendCustomParameter(params.Parameter{Name: "Foo Bar", Value: "from master"})
	ufo := memfont.NewUFO()
	ufo.SetLibValue(params.CustomParamPrefix+"GSFont.Foo Bar", "from font")
	env.Require().NoError(params.ToUFOCustomParams(master, ufo))

	value, ok := ufo.LibValue(params.CustomParamPrefix + "GSFontMaster.Foo Bar").Unwrap()
	env.Require().True(ok)
	env.Equal("from master", value)

	// Reading back into a master must leave the font-level key alone.
	back := memfont.NewMaster()
	env.Require().NoError(params.ToGlyphsCustomParams(back, ufo))
	env.Equal([]any{"from master"}, paramValues(back, "Foo Bar"))
	env.True(ufo.HasLibKey(params.CustomParamPrefix+"GSFont.Foo Bar"),
		"expected the font-level key to stay in the lib")
}

func (env *TranslateTestEnviron) TestWinAscentDescentArePositive() {
	font := env.font(
		params.Parameter{Name: "winAscent", Value: int64(800)},
		params.Parameter{Name: "winDescent", Value: int64(-200)},
	)
	ufo := memfont.NewUFO()
	env.Require().NoError(params.ToUFOCustomParams(font, ufo))

	ascent, _ := ufo.InfoField("openTypeOS2WinAscent").Unwrap()
	descent, _ := ufo.InfoField("openTypeOS2WinDescent").Unwrap()
	env.Equal(int64(800), ascent)
	env.Equal(int64(200), descent, "expected winDescent to be stored positive per UFO spec")
}

func (env *TranslateTestEnviron) TestProductionNamesPolarityFlips() {
	font := env.font(params.Parameter{Name: "Don't use Production Names", Value: true})
	ufo := memfont.NewUFO()
	env.Require().NoError(params.ToUFOCustomParams(font, ufo))

	value, ok := ufo.LibValue(params.UFO2FTUseProdNamesKey).Unwrap()
	env.Require().True(ok, "expected the ufo2ft key to be set without any namespace prefix")
	env.Equal(false, value)

	back := memfont.NewFont()
	env.Require().NoError(params.ToGlyphsCustomParams(back, ufo))
	env.Equal([]any{true}, paramValues(back, "Don't use Production Names"))
}

func (env *TranslateTestEnviron) TestAttributeParametersStayOnObject() {
	font := memfont.NewFont()
	env.Require().True(font.SetAttribute("iconName", "Light"))
	ufo := memfont.NewUFO()
	env.Require().NoError(params.ToUFOCustomParams(font, ufo))

	value, ok := ufo.LibValue(params.CustomParamPrefix + "GSFont.iconName").Unwrap()
	env.Require().True(ok)
	env.Equal("Light", value)

	back := memfont.NewFont()
	env.Require().NoError(params.ToGlyphsCustomParams(back, ufo))
	attr, ok := back.Attribute("iconName").Unwrap()
	env.Require().True(ok, "expected iconName to come back as an attribute, not a parameter")
	env.Equal("Light", attr)
	env.Empty(paramValues(back, "iconName"))
}

func (env *TranslateTestEnviron) TestGlyphOrderUnderGlyphsPrefix() {
	font := env.font(params.Parameter{Name: "glyphOrder", Value: []any{"a", "b"}})
	ufo := memfont.NewUFO()
	env.Require().NoError(params.ToUFOCustomParams(font, ufo))

	value, ok := ufo.LibValue(params.GlyphsPrefix + "glyphOrder").Unwrap()
	env.Require().True(ok, "expected glyphOrder under the bare Glyphs prefix, not public.glyphOrder")
	env.Equal([]any{"a", "b"}, value)
}

func (env *TranslateTestEnviron) TestDuplicateSingleValuedParameterAbortsPass() {
	font := env.font(
		params.Parameter{Name: "vendorID", Value: "AAAA"},
		params.Parameter{Name: "vendorID", Value: "BBBB"},
	)
	ufo := memfont.NewUFO()
	err := params.ToUFOCustomParams(font, ufo)
	env.Require().Error(err, "expected a consistency error for the doubled vendorID")
	env.ErrorIs(err, params.ErrDuplicateParameter)
}

func (env *TranslateTestEnviron) TestRoundTrip() {
	font := env.font(
		params.Parameter{Name: "hheaAscender", Value: int64(812)},
		params.Parameter{Name: "trademark", Value: "TM"},
		params.Parameter{Name: "Foo Bar", Value: "baz"},
		params.Parameter{Name: "vendorID", Value: "GLYB"},
	)
	ufo := memfont.NewUFO()
	env.Require().NoError(params.ToUFOCustomParams(font, ufo))

	back := memfont.NewFont()
	env.Require().NoError(params.ToGlyphsCustomParams(back, ufo))

	env.Equal([]any{int64(812)}, paramValues(back, "hheaAscender"))
	env.Equal([]any{"TM"}, paramValues(back, "trademark"))
	env.Equal([]any{"baz"}, paramValues(back, "Foo Bar"))
	env.Equal([]any{"GLYB"}, paramValues(back, "vendorID"))
	// Materialized ecosystem defaults must not come back as data.
	env.Empty(paramValues(back, "fsType"))
	env.Empty(paramValues(back, "underlineThickness"))
	env.Empty(paramValues(back, "underlinePosition"))
}
