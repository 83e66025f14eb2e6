package memfont

import (
	"reflect"
	"testing"

	"github.com/glyphbridge/glyphbridge/params"
)

func TestAttributeContractPerKind(t *testing.T) {
	font := NewFont()
	if !font.SetAttribute("iconName", "Light") {
		t.Error("expected GSFont to carry iconName")
	}
	if font.SetAttribute("weightValue", 100) {
		t.Error("expected GSFont to reject weightValue")
	}
	master := NewMaster()
	if !master.SetAttribute("weightValue", 100) {
		t.Error("expected GSFontMaster to carry weightValue")
	}
	if master.SetAttribute("iconName", "Light") {
		t.Error("expected GSFontMaster to reject iconName")
	}
}

func TestRemoveCustomParameterRemovesFirstEntry(t *testing.T) {
	font := NewFont()
	font.AppendCustomParameter(params.Parameter{Name: "Filter", Value: "A"})
	font.AppendCustomParameter(params.Parameter{Name: "vendorID", Value: "NONE"})
	font.AppendCustomParameter(params.Parameter{Name: "Filter", Value: "B"})
	font.RemoveCustomParameter("Filter")
	got := font.CustomParameters()
	if len(got) != 2 || got[0].Name != "vendorID" || got[1].Value != "B" {
		t.Errorf("expected the first Filter entry to go and the second to stay, got %v", got)
	}
	font.RemoveCustomParameter("no such name")
	if len(font.CustomParameters()) != 2 {
		t.Error("expected removing an unknown name to change nothing")
	}
}

func TestUnknownKindHasNoAttributes(t *testing.T) {
	object := NewObject("GSLayer")
	if object.SetAttribute("iconName", "x") {
		t.Error("expected an unknown kind to reject every attribute")
	}
	if object.Attribute("iconName").IsSome() {
		t.Error("expected no attribute value on an unknown kind")
	}
}

func TestLibInsertionOrder(t *testing.T) {
	ufo := NewUFO()
	ufo.SetLibValue("b", 2)
	ufo.SetLibValue("a", 1)
	ufo.SetLibValue("b", 3) // overwrite keeps the original position
	if !reflect.DeepEqual(ufo.LibKeys(), []string{"b", "a"}) {
		t.Errorf("expected insertion order [b a], got %v", ufo.LibKeys())
	}
	if v, _ := ufo.LibValue("b").Unwrap(); v != 3 {
		t.Errorf("expected the overwrite to stick, got %v", v)
	}
}

func TestInfoContract(t *testing.T) {
	ufo := NewUFO()
	if !ufo.HasInfoField("openTypeOS2VendorID") {
		t.Error("expected openTypeOS2VendorID in the fontinfo contract")
	}
	if ufo.HasInfoField("useNiceNames") {
		t.Error("expected useNiceNames to be outside the fontinfo contract")
	}
	if ufo.InfoField("openTypeOS2VendorID").IsSome() {
		t.Error("expected a contract field to start unset")
	}
}
