package params

// Parameter is one custom-parameter entry of a Glyphs object. Names are
// not unique; a multivalued parameter appears as several entries under
// the same name. Entries are appended or removed wholesale, never
// mutated in place.
type Parameter struct {
	Name  string
	Value any
}

// Object kinds, as reported by GlyphsObject.Kind. The kind doubles as
// the sub-namespace for round-tripped lib keys.
const (
	KindFont     = "GSFont"
	KindMaster   = "GSFontMaster"
	KindInstance = "GSInstance"
)

// GlyphsObject is the contract this package needs from a Glyphs-side
// object. The concrete object model lives outside this package; any
// type exposing an ordered custom-parameter list and a fixed set of
// named attributes can be translated.
//
// Attribute reads on a field the object kind does not have must return
// None rather than fail; attribute writes on such a field must be
// no-ops reporting false. Each kind's valid attribute set is expected
// to be enumerated by the implementation, not probed by reflection.
type GlyphsObject interface {
	// Kind returns the object's class name (KindFont, KindMaster, …).
	Kind() string
	// CustomParameters returns the parameter list in storage order.
	CustomParameters() []Parameter
	// AppendCustomParameter appends one entry to the parameter list.
	AppendCustomParameter(p Parameter)
	// RemoveCustomParameter removes the first entry registered under
	// name, leaving later entries under the same name in place.
	RemoveCustomParameter(name string)
	// Attribute returns the named directly-stored field, or None if the
	// field does not exist on this object kind or has not been set.
	Attribute(name string) Option[any]
	// SetAttribute sets a directly-stored field. It reports false, and
	// changes nothing, if the field does not exist on this object kind.
	SetAttribute(name string, value any) bool
}

// UFO is the contract this package needs from a UFO-side record: typed
// fontinfo attributes with an explicit unset state, a string-keyed lib
// with stable iteration order, and the feature text.
type UFO interface {
	// HasInfoField reports whether name is part of the fontinfo
	// contract (independently of whether a value is currently set).
	HasInfoField(name string) bool
	// InfoField returns the value of a fontinfo attribute, or None if
	// the attribute is unset.
	InfoField(name string) Option[any]
	// SetInfoField sets a fontinfo attribute.
	SetInfoField(name string, value any)

	// HasLibKey reports whether key is present in the lib.
	HasLibKey(key string) bool
	// LibValue returns the lib entry for key, or None.
	LibValue(key string) Option[any]
	// SetLibValue writes one lib entry.
	SetLibValue(key string, value any)
	// LibKeys returns all lib keys in a stable order.
	LibKeys() []string

	// FeatureText returns the feature file source attached to the UFO.
	FeatureText() string
	// SetFeatureText replaces the feature file source.
	SetFeatureText(text string)
}
