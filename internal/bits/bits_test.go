package bits

import (
	"reflect"
	"testing"
)

func TestToIntListBinaryString(t *testing.T) {
	cases := []struct {
		in  string
		out []int64
	}{
		{"11000000", []int64{6, 7}},
		{"00000011", []int64{0, 1}},
		{"1", []int64{0}},
		{"0", nil},
		{"1111", []int64{0, 1, 2, 3}},
	}
	for _, c := range cases {
		got, err := ToIntList(c.in)
		if err != nil {
			t.Fatalf("%q: %v", c.in, err)
		}
		if !reflect.DeepEqual(got, c.out) {
			t.Errorf("%q: expected %v, got %v", c.in, c.out, got)
		}
	}
}

func TestToIntListNumbersReadAsDigitStrings(t *testing.T) {
	got, err := ToIntList(int64(11))
	if err != nil {
		t.Fatal(err)
	}
	if !reflect.DeepEqual(got, []int64{0, 1}) {
		t.Errorf("expected the number 11 to read as digits \"11\", got %v", got)
	}
	got, err = ToIntList(110.0)
	if err != nil {
		t.Fatal(err)
	}
	if !reflect.DeepEqual(got, []int64{1, 2}) {
		t.Errorf("expected 110.0 to read as digits \"110\", got %v", got)
	}
}

func TestToIntListRejectsGarbage(t *testing.T) {
	if _, err := ToIntList("012x"); err == nil {
		t.Error("expected an error for a non-binary digit string")
	}
	if _, err := ToIntList(int64(2)); err == nil {
		t.Error("expected an error for a number with non-binary digits")
	}
	if _, err := ToIntList([]any{1}); err == nil {
		t.Error("expected an error for a list value")
	}
}

func TestFromIntList(t *testing.T) {
	cases := []struct {
		in  []int64
		out string
	}{
		{[]int64{6, 7}, "11000000"},
		{[]int64{0, 1}, "11"},
		{nil, "0"},
		{[]int64{0, 1, 2, 3}, "1111"},
	}
	for _, c := range cases {
		if got := FromIntList(c.in); got != c.out {
			t.Errorf("%v: expected %q, got %q", c.in, c.out, got)
		}
	}
}

func TestFromIntListIgnoresOutOfRange(t *testing.T) {
	if got := FromIntList([]int64{-1, 0, 64}); got != "1" {
		t.Errorf("expected out-of-range positions to be dropped, got %q", got)
	}
}
