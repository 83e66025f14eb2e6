package params

import (
	"testing"

	"github.com/npillmayer/schuko/tracing/gotestingadapter"
)

func TestDefaultsMaterialized(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "glyphbridge.params")
	defer teardown()
	//
	ufo := newTestUFO()
	setDefaultParams(ufo)
	if v, ok := ufo.InfoField("openTypeOS2Type").Unwrap(); !ok || !equalValues(v, []any{int64(3)}) {
		t.Errorf("expected openTypeOS2Type default [3], got %v", v)
	}
	if v, ok := ufo.InfoField("postscriptUnderlineThickness").Unwrap(); !ok || !equalValues(v, int64(50)) {
		t.Errorf("expected postscriptUnderlineThickness default 50, got %v", v)
	}
	if v, ok := ufo.InfoField("postscriptUnderlinePosition").Unwrap(); !ok || !equalValues(v, int64(-100)) {
		t.Errorf("expected postscriptUnderlinePosition default -100, got %v", v)
	}
}

func TestDefaultsKeepExplicitValues(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "glyphbridge.params")
	defer teardown()
	//
	ufo := newTestUFO()
	ufo.SetInfoField("openTypeOS2Type", []any{int64(2)})
	setDefaultParams(ufo)
	if v, _ := ufo.InfoField("openTypeOS2Type").Unwrap(); !equalValues(v, []any{int64(2)}) {
		t.Errorf("expected the explicit fsType value to survive, got %v", v)
	}
}

func TestDefaultsNotShared(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "glyphbridge.params")
	defer teardown()
	//
	first := newTestUFO()
	second := newTestUFO()
	setDefaultParams(first)
	setDefaultParams(second)
	value, _ := first.InfoField("openTypeOS2Type").Unwrap()
	list, ok := value.([]any)
	if !ok || len(list) != 1 {
		t.Fatalf("expected a one-entry fsType list, got %v", value)
	}
	list[0] = int64(0)
	other, _ := second.InfoField("openTypeOS2Type").Unwrap()
	if !equalValues(other, []any{int64(3)}) {
		t.Errorf("expected the second UFO's default to be an independent copy, got %v", other)
	}
}

func TestDefaultsRetracted(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "glyphbridge.params")
	defer teardown()
	//
	object := newTestObject(KindFont,
		Parameter{Name: "fsType", Value: []any{int64(3)}},
		Parameter{Name: "underlineThickness", Value: int64(50)},
		Parameter{Name: "underlinePosition", Value: int64(-99)},
	)
	unsetDefaultParams(object)
	if got := object.CustomParameters(); len(got) != 1 || got[0].Name != "underlinePosition" {
		t.Errorf("expected only the non-default underlinePosition to survive, got %v", got)
	}
	// Running retraction again must change nothing.
	unsetDefaultParams(object)
	if got := object.CustomParameters(); len(got) != 1 {
		t.Errorf("expected retraction to be idempotent, got %v", got)
	}
}

func TestDefaultsRetractionKeepsLaterDuplicates(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "glyphbridge.params")
	defer teardown()
	//
	object := newTestObject(KindFont,
		Parameter{Name: "underlineThickness", Value: int64(50)},
		Parameter{Name: "underlineThickness", Value: int64(70)},
	)
	unsetDefaultParams(object)
	got := object.CustomParameters()
	if len(got) != 1 || !equalValues(got[0].Value, int64(70)) {
		t.Errorf("expected the non-default value 70 to survive retraction, got %v", got)
	}
}

func TestDefaultsRetractedUnderLongAlias(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "glyphbridge.params")
	defer teardown()
	//
	object := newTestObject(KindFont,
		Parameter{Name: "openTypeOS2Type", Value: []any{int64(3)}},
		Parameter{Name: "postscriptUnderlineThickness", Value: int64(50)},
	)
	unsetDefaultParams(object)
	if got := object.CustomParameters(); len(got) != 0 {
		t.Errorf("expected default values under long aliases to be retracted, got %v", got)
	}
}

func TestDefaultsRetractionFoldsNumericTypes(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "glyphbridge.params")
	defer teardown()
	//
	object := newTestObject(KindFont,
		Parameter{Name: "underlineThickness", Value: 50.0},
	)
	unsetDefaultParams(object)
	if got := object.CustomParameters(); len(got) != 0 {
		t.Errorf("expected the float-typed default to be recognized, got %v", got)
	}
}
