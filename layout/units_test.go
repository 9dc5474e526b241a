package layout

import (
	"math"
	"testing"
)

func TestParseLength(t *testing.T) {
	cases := []struct {
		in   string
		want Length
	}{
		{"12pt", Length{Value: 12, Unit: UnitPT}},
		{"6mm", Length{Value: 6, Unit: UnitMM}},
		{"1.5cm", Length{Value: 1.5, Unit: UnitCM}},
		{"0.6in", Length{Value: 0.6, Unit: UnitIN}},
		{"14", Length{Value: 14, Unit: UnitNone}},
		{" 12PT ", Length{Value: 12, Unit: UnitPT}},
	}
	for _, tc := range cases {
		got, ok := ParseLength(tc.in)
		if !ok || got != tc.want {
			t.Fatalf("ParseLength(%q) = %+v, %v; want %+v", tc.in, got, ok, tc.want)
		}
	}

	for _, bad := range []string{"", "abc", "pt", "12px"} {
		if _, ok := ParseLength(bad); ok {
			t.Fatalf("ParseLength(%q) should fail", bad)
		}
	}
}

func TestLengthToPT(t *testing.T) {
	const eps = 1e-2
	cases := []struct {
		in   Length
		want float64
	}{
		{Length{Value: 1, Unit: UnitIN}, 72},
		{Length{Value: 12, Unit: UnitPT}, 12},
		{Length{Value: 14, Unit: UnitNone}, 14},
		{Length{Value: 10, Unit: UnitMM}, 28.35},
		{Length{Value: 1, Unit: UnitCM}, 28.35},
	}
	for _, tc := range cases {
		if got := tc.in.ToPT(); math.Abs(got-tc.want) > eps {
			t.Fatalf("%+v.ToPT() = %g, want %g", tc.in, got, tc.want)
		}
	}
}

func TestLengthRoundTrip(t *testing.T) {
	l := Length{Value: 25.4, Unit: UnitMM}
	if got := l.ToPT(); math.Abs(got-72) > 1e-2 {
		t.Fatalf("25.4mm should be ~72pt, got %g", got)
	}
	if got := (Length{Value: 72, Unit: UnitPT}).ToMM(); math.Abs(got-25.4) > 1e-2 {
		t.Fatalf("72pt should be ~25.4mm, got %g", got)
	}
}
