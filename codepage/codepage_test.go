package codepage

import "testing"

func TestBit(t *testing.T) {
	cases := []struct {
		cp  int64
		bit int64
	}{
		{1252, 0},
		{932, 17},
		{10000, 29},
		{437, 63},
	}
	for _, c := range cases {
		bit, ok := Bit(c.cp)
		if !ok || bit != c.bit {
			t.Errorf("expected codepage %d on bit %d, got %d (known=%v)", c.cp, c.bit, bit, ok)
		}
	}
}

func TestBitUnknownCodepage(t *testing.T) {
	if _, ok := Bit(65001); ok {
		t.Error("expected UTF-8 to have no ulCodePageRange bit")
	}
}

func TestCodepageUnmappedBits(t *testing.T) {
	// OEM, symbol and reserved bits carry no codepage number.
	for _, bit := range []int64{30, 31, 9, 28, 47} {
		if cp, ok := Codepage(bit); ok {
			t.Errorf("expected bit %d to be unmapped, got codepage %d", bit, cp)
		}
	}
}

func TestRoundTripAllRanges(t *testing.T) {
	for cp, bit := range Ranges {
		back, ok := Codepage(bit)
		if !ok || back != cp {
			t.Errorf("bit %d maps back to %d, expected %d", bit, back, cp)
		}
	}
	if len(ReverseRanges) != len(Ranges) {
		t.Errorf("expected a bijection, got %d forward vs %d reverse entries",
			len(Ranges), len(ReverseRanges))
	}
}
