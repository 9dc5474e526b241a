package binding

import "testing"

func TestInterpolate(t *testing.T) {
	data := map[string]any{
		"name":  "report",
		"page":  3,
		"pages": 12,
		"doc":   map[string]any{"author": "r."},
	}
	cases := []struct {
		in, want string
	}{
		{"${name} - p.${page}/${pages}", "report - p.3/12"},
		{"${doc.author}", "r."},
		{"no placeholders", "no placeholders"},
		{"${missing}", "${missing}"},
		{"${doc.missing}", "${doc.missing}"},
		{"${name.deeper}", "${name.deeper}"},
		{"${ name }", "report"},
	}
	for _, tc := range cases {
		if got := Interpolate(tc.in, data); got != tc.want {
			t.Fatalf("Interpolate(%q) = %q, want %q", tc.in, got, tc.want)
		}
	}
}

func TestInterpolateNilData(t *testing.T) {
	if got := Interpolate("${name}", nil); got != "${name}" {
		t.Fatalf("空数据应保留占位符, got=%q", got)
	}
}
