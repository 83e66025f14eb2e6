package params

import "fmt"

// Handler is one translation rule. Handlers run in registration order in
// both directions; a handler that finds nothing on its input side does
// nothing, it never clears the output side.
type Handler interface {
	// Name identifies the rule, by convention the Glyphs-side name of
	// the field it owns.
	Name() string
	// ToUFO moves the handler's field from the Glyphs side to the UFO.
	ToUFO(glyphs *GlyphsProxy, ufo *UFOProxy) error
	// ToGlyphs moves the handler's field from the UFO to the Glyphs side.
	ToGlyphs(glyphs *GlyphsProxy, ufo *UFOProxy) error
}

// Transform converts one field value between the two representations.
type Transform func(value any) (any, error)

func identity(value any) (any, error) {
	return value, nil
}

// ParamHandler is the generic two-way rule: a Glyphs custom-parameter
// name (optionally with a long-form alias kept readable for backward
// compatibility), a UFO field name with its storage location, and a
// value transform per direction.
//
// Reading from Glyphs consumes both the short name and the long alias,
// with the short name winning; writing to Glyphs always uses the short
// name, normalizing historical long-name spellings away. On the UFO side, a field goes into fontinfo
// if the contract has a matching attribute and into the lib otherwise.
type ParamHandler struct {
	glyphsName     string
	glyphsLongName string
	multivalued    bool
	ufoName        string
	libPrefix      string
	infoFirst      bool
	ufoDefault     Option[any]
	emptyListUnset bool
	fromAttribute  bool
	toUFOValue     Transform
	toGlyphsValue  Transform
}

// HandlerOption configures a ParamHandler.
type HandlerOption func(*ParamHandler)

// UFOName sets the UFO-side field name. Without it the Glyphs name is
// used on both sides.
func UFOName(name string) HandlerOption {
	return func(h *ParamHandler) { h.ufoName = name }
}

// LongName registers a long-form alias under which older Glyphs sources
// may have stored the parameter. The alias is read, never written.
func LongName(name string) HandlerOption {
	return func(h *ParamHandler) { h.glyphsLongName = name }
}

// Multivalued marks the parameter as carrying one entry per value.
func Multivalued() HandlerOption {
	return func(h *ParamHandler) { h.multivalued = true }
}

// LibPrefix overrides the namespace prepended to the UFO lib key. The
// default namespace additionally carries the object-kind sub-key; a
// custom prefix (including the empty one) is used as given.
func LibPrefix(prefix string) HandlerOption {
	return func(h *ParamHandler) { h.libPrefix = prefix }
}

// LibOnly stores the field in the lib even when a fontinfo attribute of
// the same name exists.
func LibOnly() HandlerOption {
	return func(h *ParamHandler) { h.infoFirst = false }
}

// UFODefault suppresses the UFO-side write when the transformed value
// equals def, keeping ecosystem defaults implicit.
func UFODefault(def any) HandlerOption {
	return func(h *ParamHandler) { h.ufoDefault = Some(def) }
}

// EmptyListIsUnset treats an empty list read from the UFO side like an
// absent value, distinguishing "unset" from "set to the default empty
// collection".
func EmptyListIsUnset() HandlerOption {
	return func(h *ParamHandler) { h.emptyListUnset = true }
}

// FromAttribute reads and writes the Glyphs side as a directly-stored
// object attribute instead of a custom parameter.
func FromAttribute() HandlerOption {
	return func(h *ParamHandler) { h.fromAttribute = true }
}

// ToUFOValue sets the Glyphs → UFO value transform.
func ToUFOValue(fn Transform) HandlerOption {
	return func(h *ParamHandler) { h.toUFOValue = fn }
}

// ToGlyphsValue sets the UFO → Glyphs value transform.
func ToGlyphsValue(fn Transform) HandlerOption {
	return func(h *ParamHandler) { h.toGlyphsValue = fn }
}

// NewParamHandler builds a generic rule for one field.
func NewParamHandler(glyphsName string, opts ...HandlerOption) *ParamHandler {
	h := &ParamHandler{
		glyphsName:    glyphsName,
		ufoName:       glyphsName,
		libPrefix:     CustomParamPrefix,
		infoFirst:     true,
		ufoDefault:    None[any](),
		toUFOValue:    identity,
		toGlyphsValue: identity,
	}
	for _, opt := range opts {
		opt(h)
	}
	return h
}

// Name returns the Glyphs-side field name.
func (h *ParamHandler) Name() string {
	return h.glyphsName
}

// ToUFO implements Handler.
func (h *ParamHandler) ToUFO(glyphs *GlyphsProxy, ufo *UFOProxy) error {
	value, err := h.readGlyphs(glyphs)
	if err != nil {
		return err
	}
	v, ok := value.Unwrap()
	if !ok {
		return nil
	}
	out, err := h.toUFOValue(v)
	if err != nil {
		return fmt.Errorf("parameter %s: %w", h.glyphsName, err)
	}
	h.writeUFO(glyphs, ufo, out)
	return nil
}

// ToGlyphs implements Handler.
func (h *ParamHandler) ToGlyphs(glyphs *GlyphsProxy, ufo *UFOProxy) error {
	value := h.readUFO(glyphs, ufo)
	v, ok := value.Unwrap()
	if !ok {
		return nil
	}
	if h.emptyListUnset {
		if list, isList := v.([]any); isList && len(list) == 0 {
			return nil
		}
	}
	out, err := h.toGlyphsValue(v)
	if err != nil {
		return fmt.Errorf("field %s: %w", h.ufoName, err)
	}
	h.writeGlyphs(glyphs, out)
	return nil
}

// readGlyphs consumes both spellings; the short name wins. Consuming the
// losing alias too keeps it out of the leftover sweep.
func (h *ParamHandler) readGlyphs(glyphs *GlyphsProxy) (Option[any], error) {
	if h.fromAttribute {
		return glyphs.Attribute(h.glyphsName), nil
	}
	if h.multivalued {
		// An empty list means "not there".
		var fallback []any
		if h.glyphsLongName != "" {
			fallback = glyphs.Many(h.glyphsLongName)
		}
		if values := glyphs.Many(h.glyphsName); len(values) > 0 {
			return Some[any](values), nil
		}
		if len(fallback) > 0 {
			return Some[any](fallback), nil
		}
		return None[any](), nil
	}
	fallback := None[any]()
	if h.glyphsLongName != "" {
		var err error
		if fallback, err = glyphs.Single(h.glyphsLongName); err != nil {
			return None[any](), err
		}
	}
	value, err := glyphs.Single(h.glyphsName)
	if err != nil || value.IsSome() {
		return value, err
	}
	return fallback, nil
}

func (h *ParamHandler) writeGlyphs(glyphs *GlyphsProxy, value any) {
	if h.fromAttribute {
		glyphs.SetAttribute(h.glyphsName, value)
		return
	}
	if h.multivalued {
		if values, ok := value.([]any); ok {
			glyphs.SetMany(h.glyphsName, values)
			return
		}
	}
	glyphs.SetSingle(h.glyphsName, value)
}

func (h *ParamHandler) readUFO(glyphs *GlyphsProxy, ufo *UFOProxy) Option[any] {
	if h.infoFirst && ufo.HasInfoField(h.ufoName) {
		return ufo.InfoField(h.ufoName)
	}
	return ufo.LibValue(h.libKey(glyphs))
}

func (h *ParamHandler) writeUFO(glyphs *GlyphsProxy, ufo *UFOProxy, value any) {
	if def, ok := h.ufoDefault.Unwrap(); ok && equalValues(value, def) {
		return
	}
	if h.infoFirst && ufo.HasInfoField(h.ufoName) {
		// most OpenType table entries go into fontinfo
		ufo.SetInfoField(h.ufoName, value)
		return
	}
	// everything else ends up in the lib
	ufo.SetLibValue(h.libKey(glyphs), value)
}

func (h *ParamHandler) libKey(glyphs *GlyphsProxy) string {
	prefix := h.libPrefix
	if prefix == CustomParamPrefix {
		prefix += glyphs.SubKey()
	}
	return prefix + h.ufoName
}
