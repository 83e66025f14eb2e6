package params

import (
	"errors"
	"fmt"
	"iter"
	"strings"
)

// ErrDuplicateParameter signals that a nominally single-valued custom
// parameter is registered with more than one value. This points at a
// malformed or unexpectedly edited source object and aborts the pass.
var ErrDuplicateParameter = errors.New("more than one value for custom parameter")

// GlyphsProxy accelerates and records access to a Glyphs object's custom
// parameters during one translation pass. The lookup table is built once
// from the parameter list at construction time and is not kept live;
// proxies are throwaway, one per pass.
type GlyphsProxy struct {
	owner   GlyphsObject
	subKey  string
	lookup  map[string][]any
	order   []Parameter
	handled map[string]bool
}

// NewGlyphsProxy wraps a Glyphs object for one translation pass.
func NewGlyphsProxy(g GlyphsObject) *GlyphsProxy {
	p := &GlyphsProxy{
		owner:   g,
		subKey:  g.Kind() + ".",
		lookup:  make(map[string][]any),
		handled: make(map[string]bool),
	}
	p.order = g.CustomParameters()
	for _, param := range p.order {
		p.lookup[param.Name] = append(p.lookup[param.Name], param.Value)
	}
	return p
}

// SubKey returns the object-kind part of round-tripped lib keys,
// e.g. "GSFont.". It keeps font and master parameters of the same name
// apart when both end up in one UFO lib.
func (p *GlyphsProxy) SubKey() string {
	return p.subKey
}

// Attribute reads a field stored directly on the object (not in its
// parameter list). Missing fields read as None, never as an error.
func (p *GlyphsProxy) Attribute(key string) Option[any] {
	return p.owner.Attribute(key)
}

// SetAttribute writes a field stored directly on the object. Writes to
// fields the object kind does not have are dropped.
func (p *GlyphsProxy) SetAttribute(key string, value any) {
	if !p.owner.SetAttribute(key, value) {
		tracer().Debugf("object kind %s has no attribute %s, dropping write", p.owner.Kind(), key)
	}
}

// Single returns the one value registered under name, or None. The name
// is marked as handled whether or not a value was found. Finding more
// than one value is a consistency error.
func (p *GlyphsProxy) Single(name string) (Option[any], error) {
	p.handled[name] = true
	values := p.lookup[name]
	if len(values) > 1 {
		return None[any](), fmt.Errorf("%w: %s", ErrDuplicateParameter, name)
	}
	if len(values) == 1 {
		return Some(values[0]), nil
	}
	return None[any](), nil
}

// Many returns all values registered under name, in parameter-list
// order. The name is marked as handled even when the result is empty.
func (p *GlyphsProxy) Many(name string) []any {
	p.handled[name] = true
	return p.lookup[name]
}

// SetSingle appends one new parameter entry. Existing entries under the
// same name are left alone; handlers are expected to write each name at
// most once per pass.
func (p *GlyphsProxy) SetSingle(name string, value any) {
	p.owner.AppendCustomParameter(Parameter{Name: name, Value: value})
}

// SetMany appends one parameter entry per value.
func (p *GlyphsProxy) SetMany(name string, values []any) {
	for _, value := range values {
		p.SetSingle(name, value)
	}
}

// Unhandled yields every parameter whose name was never consulted during
// this pass, in original list order.
func (p *GlyphsProxy) Unhandled() iter.Seq[Parameter] {
	return func(yield func(Parameter) bool) {
		for _, param := range p.order {
			if p.handled[param.Name] {
				continue
			}
			if !yield(param) {
				return
			}
		}
	}
}

// UFOProxy records access to a UFO's lib during one translation pass.
// Only reads are tracked: the handled set exists to detect unconsumed
// input, not to log writes.
type UFOProxy struct {
	owner   UFO
	handled map[string]bool
}

// NewUFOProxy wraps a UFO record for one translation pass.
func NewUFOProxy(u UFO) *UFOProxy {
	return &UFOProxy{
		owner:   u,
		handled: make(map[string]bool),
	}
}

// HasInfoField reports whether the fontinfo contract has an attribute of
// this name.
func (p *UFOProxy) HasInfoField(name string) bool {
	return p.owner.HasInfoField(name)
}

// InfoField returns a fontinfo attribute value, or None if unset.
func (p *UFOProxy) InfoField(name string) Option[any] {
	return p.owner.InfoField(name)
}

// SetInfoField sets a fontinfo attribute.
func (p *UFOProxy) SetInfoField(name string, value any) {
	p.owner.SetInfoField(name, value)
}

// HasLibKey reports key presence without marking it handled.
func (p *UFOProxy) HasLibKey(key string) bool {
	return p.owner.HasLibKey(key)
}

// LibValue returns the lib entry for key, or None if missing. A present
// key is marked as handled.
func (p *UFOProxy) LibValue(key string) Option[any] {
	v := p.owner.LibValue(key)
	if v.IsSome() {
		p.handled[key] = true
	}
	return v
}

// SetLibValue writes one lib entry.
func (p *UFOProxy) SetLibValue(key string, value any) {
	p.owner.SetLibValue(key, value)
}

// FeatureText returns the UFO's feature file source.
func (p *UFOProxy) FeatureText() string {
	return p.owner.FeatureText()
}

// SetFeatureText replaces the UFO's feature file source.
func (p *UFOProxy) SetFeatureText(text string) {
	p.owner.SetFeatureText(text)
}

// UnhandledLib yields every lib entry inside the custom-parameter
// namespace whose key was never read during this pass, in the lib's
// stable key order.
func (p *UFOProxy) UnhandledLib() iter.Seq2[string, any] {
	return func(yield func(string, any) bool) {
		for _, key := range p.owner.LibKeys() {
			if !strings.HasPrefix(key, CustomParamPrefix) || p.handled[key] {
				continue
			}
			value, ok := p.owner.LibValue(key).Unwrap()
			if !ok {
				continue
			}
			if !yield(key, value) {
				return
			}
		}
	}
}
