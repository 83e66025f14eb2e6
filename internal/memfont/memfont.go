// Package memfont carries lightweight in-memory implementations of the
// params object contracts: a Glyphs-side object with a custom-parameter
// list and a UFO-side record with fontinfo, lib and feature text. The
// real object models live in the applications embedding this module;
// these stand-ins back the tests, fixtures and command-line tools.
package memfont

import "github.com/glyphbridge/glyphbridge/params"

// Attribute sets per object kind. The params contract wants capability
// checks against an enumerated field set, not reflection probing.
var kindAttributes = map[string]map[string]bool{
	params.KindFont: {
		"DisplayStrings":             true,
		"disablesAutomaticAlignment": true,
		"iconName":                   true,
		"disablesNiceNames":          true,
	},
	params.KindMaster: {
		"customValue":  true,
		"customValue1": true,
		"customValue2": true,
		"customValue3": true,
		"weightValue":  true,
		"widthValue":   true,
	},
	params.KindInstance: {
		"customValue":  true,
		"customValue1": true,
		"customValue2": true,
		"customValue3": true,
		"weightValue":  true,
		"widthValue":   true,
	},
}

// Object is a Glyphs-side font, master or instance.
type Object struct {
	kind       string
	attributes map[string]any
	parameters []params.Parameter
}

// NewFont returns an empty GSFont-kind object.
func NewFont() *Object { return newObject(params.KindFont) }

// NewMaster returns an empty GSFontMaster-kind object.
func NewMaster() *Object { return newObject(params.KindMaster) }

// NewInstance returns an empty GSInstance-kind object.
func NewInstance() *Object { return newObject(params.KindInstance) }

// NewObject returns an empty object of the given kind. Unknown kinds
// get an empty attribute contract.
func NewObject(kind string) *Object { return newObject(kind) }

func newObject(kind string) *Object {
	return &Object{
		kind:       kind,
		attributes: make(map[string]any),
	}
}

// Kind implements params.GlyphsObject.
func (o *Object) Kind() string { return o.kind }

// CustomParameters implements params.GlyphsObject.
func (o *Object) CustomParameters() []params.Parameter {
	out := make([]params.Parameter, len(o.parameters))
	copy(out, o.parameters)
	return out
}

// AppendCustomParameter implements params.GlyphsObject.
func (o *Object) AppendCustomParameter(p params.Parameter) {
	o.parameters = append(o.parameters, p)
}

// RemoveCustomParameter implements params.GlyphsObject; only the first
// entry under name is removed.
func (o *Object) RemoveCustomParameter(name string) {
	for i, p := range o.parameters {
		if p.Name == name {
			o.parameters = append(o.parameters[:i], o.parameters[i+1:]...)
			return
		}
	}
}

// Attribute implements params.GlyphsObject.
func (o *Object) Attribute(name string) params.Option[any] {
	if !kindAttributes[o.kind][name] {
		return params.None[any]()
	}
	if value, ok := o.attributes[name]; ok {
		return params.Some(value)
	}
	return params.None[any]()
}

// SetAttribute implements params.GlyphsObject.
func (o *Object) SetAttribute(name string, value any) bool {
	if !kindAttributes[o.kind][name] {
		return false
	}
	o.attributes[name] = value
	return true
}
