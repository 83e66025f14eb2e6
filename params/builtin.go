package params

// The built-in rule set. One rule per UFO fontinfo attribute with a
// Glyphs equivalent, plus rules for known custom parameters and known
// lib keys. Order matters and follows the historical registration order.

// Parameters Glyphs knows under a short name while the long UFO name has
// also been in circulation; both spellings are read, the short one is
// written.
var shortLongParams = []struct {
	glyphsName string
	ufoName    string
}{
	{"hheaAscender", "openTypeHheaAscender"},
	{"hheaDescender", "openTypeHheaDescender"},
	{"hheaLineGap", "openTypeHheaLineGap"},
	{"compatibleFullName", "openTypeNameCompatibleFullName"},
	{"description", "openTypeNameDescription"},
	{"license", "openTypeNameLicense"},
	{"licenseURL", "openTypeNameLicenseURL"},
	{"preferredFamilyName", "openTypeNamePreferredFamilyName"},
	{"preferredSubfamilyName", "openTypeNamePreferredSubfamilyName"},
	{"sampleText", "openTypeNameSampleText"},
	{"WWSFamilyName", "openTypeNameWWSFamilyName"},
	{"WWSSubfamilyName", "openTypeNameWWSSubfamilyName"},
	{"panose", "openTypeOS2Panose"},
	{"fsType", "openTypeOS2Type"},
	{"typoAscender", "openTypeOS2TypoAscender"},
	{"typoDescender", "openTypeOS2TypoDescender"},
	{"typoLineGap", "openTypeOS2TypoLineGap"},
	{"unicodeRanges", "openTypeOS2UnicodeRanges"},
	{"vendorID", "openTypeOS2VendorID"},
	{"vheaVertTypoAscender", "openTypeVheaVertTypoAscender"},
	{"vheaVertTypoDescender", "openTypeVheaVertTypoDescender"},
	{"vheaVertTypoLineGap", "openTypeVheaVertTypoLineGap"},
	// Postscript parameters
	{"blueScale", "postscriptBlueScale"},
	{"blueShift", "postscriptBlueShift"},
	{"isFixedPitch", "postscriptIsFixedPitch"},
	{"underlinePosition", "postscriptUnderlinePosition"},
	{"underlineThickness", "postscriptUnderlineThickness"},
}

// Parameters stored under their full UFO name on both sides.
var fullNameParams = []string{
	"openTypeHheaCaretSlopeRun",
	"openTypeVheaCaretSlopeRun",
	"openTypeHheaCaretSlopeRise",
	"openTypeVheaCaretSlopeRise",
	"openTypeHheaCaretOffset",
	"openTypeVheaCaretOffset",
	"openTypeHeadLowestRecPPEM",
	"openTypeHeadFlags",
	"openTypeNameVersion",
	"openTypeNameUniqueID",
	"openTypeNameRecords",
	"openTypeOS2FamilyClass",
	"openTypeOS2SubscriptXSize",
	"openTypeOS2SubscriptYSize",
	"openTypeOS2SubscriptXOffset",
	"openTypeOS2SubscriptYOffset",
	"openTypeOS2SuperscriptXSize",
	"openTypeOS2SuperscriptYSize",
	"openTypeOS2SuperscriptXOffset",
	"openTypeOS2SuperscriptYOffset",
	"openTypeOS2StrikeoutSize",
	"openTypeOS2StrikeoutPosition",
	"postscriptFontName",
	"postscriptFullName",
	"postscriptSlantAngle",
	"postscriptUniqueID",
	"postscriptBlueFuzz",
	"postscriptForceBold",
	"postscriptDefaultWidthX",
	"postscriptNominalWidthX",
	"postscriptWeightName",
	"postscriptDefaultCharacter",
	"postscriptWindowsCharacterSet",
	"macintoshFONDFamilyID",
	"macintoshFONDName",
	"trademark",
	"styleMapFamilyName",
	"styleMapStyleName",
}

func builtinHandlers() []Handler {
	var handlers []Handler
	add := func(h Handler) {
		handlers = append(handlers, h)
	}

	for _, pair := range shortLongParams {
		add(NewParamHandler(pair.glyphsName, UFOName(pair.ufoName), LongName(pair.ufoName)))
	}
	for _, name := range fullNameParams {
		add(NewParamHandler(name))
	}

	add(NewParamHandler("versionString", UFOName("openTypeNameVersion")))

	// An empty blues list is the ecosystem default, not data.
	add(NewParamHandler("postscriptFamilyBlues", EmptyListIsUnset()))
	add(NewParamHandler("postscriptFamilyOtherBlues", EmptyListIsUnset()))

	// Codepage numbers convert to OS/2 ulCodePageRange bits. When the
	// parameter is spelled out in full it already holds bit values and
	// passes through untouched.
	add(NewParamHandler("codePageRanges",
		UFOName("openTypeOS2CodePageRanges"),
		ToUFOValue(toUFOCodePages),
		ToGlyphsValue(toGlyphsCodePages),
	))
	add(NewParamHandler("openTypeOS2CodePageRanges"))

	// The UFO spec wants winAscent/winDescent positive.
	add(NewParamHandler("winAscent",
		UFOName("openTypeOS2WinAscent"), LongName("openTypeOS2WinAscent"),
		ToUFOValue(func(v any) (any, error) { return absNumber(v) }),
		ToGlyphsValue(func(v any) (any, error) { return absNumber(v) }),
	))
	add(NewParamHandler("winDescent",
		UFOName("openTypeOS2WinDescent"), LongName("openTypeOS2WinDescent"),
		ToUFOValue(func(v any) (any, error) { return absNumber(v) }),
		ToGlyphsValue(func(v any) (any, error) { return absNumber(v) }),
	))

	// Glyphs may store these as floats; UFO wants integers.
	add(NewParamHandler("weightClass", UFOName("openTypeOS2WeightClass"), ToUFOValue(toIntValue)))
	add(NewParamHandler("widthClass", UFOName("openTypeOS2WidthClass"), ToUFOValue(toIntValue)))

	add(NewParamHandler("GASP Table",
		UFOName("openTypeGaspRangeRecords"),
		ToUFOValue(toUFOGaspTable),
		ToGlyphsValue(toGlyphsGaspTable),
	))

	add(NewParamHandler("Disable Last Change", UFOName("disablesLastChange")))

	// ufo2ft's parameter has the inverted polarity.
	add(NewParamHandler("Don't use Production Names",
		UFOName(UFO2FTUseProdNamesKey),
		LibPrefix(""),
		ToUFOValue(negate),
		ToGlyphsValue(negate),
	))

	// Attributes stored directly on the object rather than in its
	// parameter list.
	add(NewParamHandler("DisplayStrings", FromAttribute()))
	add(NewParamHandler("disablesAutomaticAlignment", FromAttribute()))
	add(NewParamHandler("iconName", FromAttribute()))
	add(NewParamHandler("disablesNiceNames",
		FromAttribute(),
		UFOName("useNiceNames"),
		ToUFOValue(func(v any) (any, error) {
			if truthy(v) {
				return int64(0), nil
			}
			return int64(1), nil
		}),
		ToGlyphsValue(negate),
	))
	for _, name := range []string{"customValue", "customValue1", "customValue2", "customValue3"} {
		add(NewParamHandler(name, FromAttribute(), LibOnly()))
	}
	add(NewParamHandler("weightValue", FromAttribute(), LibOnly()))
	add(NewParamHandler("widthValue", FromAttribute(), LibOnly()))

	add(os2SelectionHandler{})

	// Deliberately not public.glyphOrder.
	add(NewParamHandler("glyphOrder", LibPrefix(GlyphsPrefix)))

	add(filterHandler{})
	add(replaceFeatureHandler{})

	return handlers
}

func toIntValue(value any) (any, error) {
	n, err := asInt(value)
	if err != nil {
		return nil, err
	}
	return n, nil
}

func negate(value any) (any, error) {
	return !truthy(value), nil
}
