package memfont

import "github.com/glyphbridge/glyphbridge/params"

// infoFields enumerates the fontinfo attributes this record understands.
// It is the subset of the UFO fontinfo version 3 contract that has a
// Glyphs-side translation; anything else belongs in the lib.
var infoFields = map[string]bool{
	"openTypeGaspRangeRecords":           true,
	"openTypeHeadFlags":                  true,
	"openTypeHeadLowestRecPPEM":          true,
	"openTypeHheaAscender":               true,
	"openTypeHheaCaretOffset":            true,
	"openTypeHheaCaretSlopeRise":         true,
	"openTypeHheaCaretSlopeRun":          true,
	"openTypeHheaDescender":              true,
	"openTypeHheaLineGap":                true,
	"openTypeNameCompatibleFullName":     true,
	"openTypeNameDescription":            true,
	"openTypeNameLicense":                true,
	"openTypeNameLicenseURL":             true,
	"openTypeNamePreferredFamilyName":    true,
	"openTypeNamePreferredSubfamilyName": true,
	"openTypeNameRecords":                true,
	"openTypeNameSampleText":             true,
	"openTypeNameUniqueID":               true,
	"openTypeNameVersion":                true,
	"openTypeNameWWSFamilyName":          true,
	"openTypeNameWWSSubfamilyName":       true,
	"openTypeOS2CodePageRanges":          true,
	"openTypeOS2FamilyClass":             true,
	"openTypeOS2Panose":                  true,
	"openTypeOS2Selection":               true,
	"openTypeOS2StrikeoutPosition":       true,
	"openTypeOS2StrikeoutSize":           true,
	"openTypeOS2SubscriptXOffset":        true,
	"openTypeOS2SubscriptXSize":          true,
	"openTypeOS2SubscriptYOffset":        true,
	"openTypeOS2SubscriptYSize":          true,
	"openTypeOS2SuperscriptXOffset":      true,
	"openTypeOS2SuperscriptXSize":        true,
	"openTypeOS2SuperscriptYOffset":      true,
	"openTypeOS2SuperscriptYSize":        true,
	"openTypeOS2Type":                    true,
	"openTypeOS2TypoAscender":            true,
	"openTypeOS2TypoDescender":           true,
	"openTypeOS2TypoLineGap":             true,
	"openTypeOS2UnicodeRanges":           true,
	"openTypeOS2VendorID":                true,
	"openTypeOS2WeightClass":             true,
	"openTypeOS2WidthClass":              true,
	"openTypeOS2WinAscent":               true,
	"openTypeOS2WinDescent":              true,
	"openTypeVheaCaretOffset":            true,
	"openTypeVheaCaretSlopeRise":         true,
	"openTypeVheaCaretSlopeRun":          true,
	"openTypeVheaVertTypoAscender":       true,
	"openTypeVheaVertTypoDescender":      true,
	"openTypeVheaVertTypoLineGap":        true,
	"macintoshFONDFamilyID":              true,
	"macintoshFONDName":                  true,
	"postscriptBlueFuzz":                 true,
	"postscriptBlueScale":                true,
	"postscriptBlueShift":                true,
	"postscriptDefaultCharacter":         true,
	"postscriptDefaultWidthX":            true,
	"postscriptFamilyBlues":              true,
	"postscriptFamilyOtherBlues":         true,
	"postscriptFontName":                 true,
	"postscriptForceBold":                true,
	"postscriptFullName":                 true,
	"postscriptIsFixedPitch":             true,
	"postscriptNominalWidthX":            true,
	"postscriptSlantAngle":               true,
	"postscriptUnderlinePosition":        true,
	"postscriptUnderlineThickness":       true,
	"postscriptUniqueID":                 true,
	"postscriptWeightName":               true,
	"postscriptWindowsCharacterSet":      true,
	"styleMapFamilyName":                 true,
	"styleMapStyleName":                  true,
	"trademark":                          true,
}

// UFO is an in-memory UFO-side record: fontinfo with an explicit unset
// state, a lib with stable (insertion) key order, and feature text.
type UFO struct {
	info     map[string]any
	lib      map[string]any
	libOrder []string
	features string
}

// NewUFO returns an empty UFO record.
func NewUFO() *UFO {
	return &UFO{
		info: make(map[string]any),
		lib:  make(map[string]any),
	}
}

// HasInfoField implements params.UFO.
func (u *UFO) HasInfoField(name string) bool {
	return infoFields[name]
}

// InfoField implements params.UFO.
func (u *UFO) InfoField(name string) params.Option[any] {
	if value, ok := u.info[name]; ok {
		return params.Some(value)
	}
	return params.None[any]()
}

// SetInfoField implements params.UFO.
func (u *UFO) SetInfoField(name string, value any) {
	u.info[name] = value
}

// InfoFields returns the names of all currently set fontinfo
// attributes, in no particular order.
func (u *UFO) InfoFields() []string {
	out := make([]string, 0, len(u.info))
	for name := range u.info {
		out = append(out, name)
	}
	return out
}

// HasLibKey implements params.UFO.
func (u *UFO) HasLibKey(key string) bool {
	_, ok := u.lib[key]
	return ok
}

// LibValue implements params.UFO.
func (u *UFO) LibValue(key string) params.Option[any] {
	if value, ok := u.lib[key]; ok {
		return params.Some(value)
	}
	return params.None[any]()
}

// SetLibValue implements params.UFO.
func (u *UFO) SetLibValue(key string, value any) {
	if _, ok := u.lib[key]; !ok {
		u.libOrder = append(u.libOrder, key)
	}
	u.lib[key] = value
}

// LibKeys implements params.UFO; keys come back in insertion order.
func (u *UFO) LibKeys() []string {
	out := make([]string, len(u.libOrder))
	copy(out, u.libOrder)
	return out
}

// FeatureText implements params.UFO.
func (u *UFO) FeatureText() string { return u.features }

// SetFeatureText implements params.UFO.
func (u *UFO) SetFeatureText(text string) { u.features = text }
