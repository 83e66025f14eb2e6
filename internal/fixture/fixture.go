// Package fixture loads test and demo inputs for the translation engine
// from YAML files: one Glyphs-side object plus, optionally, a UFO-side
// record to translate into or out of.
package fixture

import (
	"fmt"
	"os"
	"sort"

	"gopkg.in/yaml.v3"

	"github.com/glyphbridge/glyphbridge/internal/memfont"
	"github.com/glyphbridge/glyphbridge/params"
)

// Document is the on-disk fixture layout.
type Document struct {
	Kind       string         `yaml:"kind"`
	Attributes map[string]any `yaml:"attributes,omitempty"`
	Parameters []ParameterDoc `yaml:"parameters,omitempty"`
	UFO        *UFODoc        `yaml:"ufo,omitempty"`
}

// ParameterDoc is one custom-parameter entry.
type ParameterDoc struct {
	Name  string `yaml:"name"`
	Value any    `yaml:"value"`
}

// UFODoc is the UFO-side part of a fixture.
type UFODoc struct {
	Info     map[string]any `yaml:"info,omitempty"`
	Lib      map[string]any `yaml:"lib,omitempty"`
	Features string         `yaml:"features,omitempty"`
}

// Load reads a fixture file and materializes both sides.
func Load(path string) (*memfont.Object, *memfont.UFO, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to read fixture: %w", err)
	}
	return Parse(data)
}

// Parse materializes a fixture from YAML bytes.
func Parse(data []byte) (*memfont.Object, *memfont.UFO, error) {
	var doc Document
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, nil, fmt.Errorf("failed to parse fixture: %w", err)
	}
	kind := doc.Kind
	if kind == "" {
		kind = params.KindFont
	}
	object := memfont.NewObject(kind)
	for name, value := range doc.Attributes {
		if !object.SetAttribute(name, value) {
			return nil, nil, fmt.Errorf("object kind %s has no attribute %s", kind, name)
		}
	}
	for _, p := range doc.Parameters {
		if p.Name == "" {
			return nil, nil, fmt.Errorf("fixture parameter without a name")
		}
		object.AppendCustomParameter(params.Parameter{Name: p.Name, Value: p.Value})
	}

	ufo := memfont.NewUFO()
	if doc.UFO != nil {
		for name, value := range doc.UFO.Info {
			if !ufo.HasInfoField(name) {
				return nil, nil, fmt.Errorf("unknown fontinfo attribute %s", name)
			}
			ufo.SetInfoField(name, value)
		}
		// YAML mappings lose document order; sort for reproducible lib
		// sweeps across runs.
		keys := make([]string, 0, len(doc.UFO.Lib))
		for key := range doc.UFO.Lib {
			keys = append(keys, key)
		}
		sort.Strings(keys)
		for _, key := range keys {
			ufo.SetLibValue(key, doc.UFO.Lib[key])
		}
		ufo.SetFeatureText(doc.UFO.Features)
	}
	return object, ufo, nil
}
