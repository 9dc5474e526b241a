// Package pagespec parses page-geometry expressions supplied on the
// command line, eg. "letter portrait margin 0.6in" or "450x700pt margin 36pt".
package pagespec

import (
	"fmt"
	"strings"

	"github.com/alecthomas/participle/v2"
	"github.com/alecthomas/participle/v2/lexer"

	"github.com/RobbieKaras/rotater/layout"
)

var (
	specLexer = lexer.MustSimple([]lexer.SimpleRule{
		{Name: "Whitespace", Pattern: `[ \t]+`},
		{Name: "Dim", Pattern: `\d+(?:\.\d+)?x\d+(?:\.\d+)?(?:pt|mm|cm|in)?`},
		{Name: "Number", Pattern: `(?:\d+\.\d+|\d+)(?:pt|mm|cm|in)?`},
		{Name: "Ident", Pattern: `[A-Za-z][A-Za-z0-9-]*`},
	})

	specParser = participle.MustBuild[spec](
		participle.Lexer(specLexer),
		participle.Elide("Whitespace"),
	)
)

// DefaultMargin is applied when the expression carries no margin clause (0.6in).
const DefaultMargin = 43.2

// spec is the root AST node for a page-geometry expression.
type spec struct {
	Dim         *dimension `parser:"( @Dim"`
	Preset      *string    `parser:"| @Ident )"`
	Orientation *string    `parser:"( @('portrait' | 'landscape') )?"`
	Margin      *length    `parser:"( 'margin' @Number )?"`
}

// dimension captures an explicit WxH size; the unit suffix applies to both.
type dimension struct {
	w, h float64
}

// Capture implements participle.Capture for Dim tokens like "612x792pt".
func (d *dimension) Capture(values []string) error {
	raw := values[0]
	unit := layout.UnitNone
	num := raw
	for _, suf := range []struct {
		s string
		u layout.Unit
	}{{"mm", layout.UnitMM}, {"cm", layout.UnitCM}, {"in", layout.UnitIN}, {"pt", layout.UnitPT}} {
		if strings.HasSuffix(raw, suf.s) {
			unit = suf.u
			num = strings.TrimSuffix(raw, suf.s)
			break
		}
	}
	parts := strings.SplitN(num, "x", 2)
	if len(parts) != 2 {
		return fmt.Errorf("invalid page dimension %q", raw)
	}
	wl, okW := layout.ParseLength(parts[0])
	hl, okH := layout.ParseLength(parts[1])
	if !okW || !okH {
		return fmt.Errorf("invalid page dimension %q", raw)
	}
	wl.Unit, hl.Unit = unit, unit
	d.w, d.h = wl.ToPT(), hl.ToPT()
	return nil
}

// length captures a Number token with optional unit, normalized to pt.
type length struct {
	pts float64
}

// Capture implements participle.Capture.
func (l *length) Capture(values []string) error {
	ln, ok := layout.ParseLength(values[0])
	if !ok {
		return fmt.Errorf("invalid length %q", values[0])
	}
	l.pts = ln.ToPT()
	return nil
}

// Named page sizes in pt, portrait orientation.
var presets = map[string][2]float64{
	"letter":  {612, 792},
	"legal":   {612, 1008},
	"tabloid": {792, 1224},
	"a4":      {595.28, 841.89},
	"a5":      {419.53, 595.28},
}

// Parse resolves a page-geometry expression into pt-based layout geometry.
func Parse(input string) (layout.Geometry, error) {
	ast, err := specParser.ParseString("", strings.TrimSpace(input))
	if err != nil {
		return layout.Geometry{}, fmt.Errorf("parse page spec %q: %w", input, err)
	}

	var w, h float64
	switch {
	case ast.Dim != nil:
		w, h = ast.Dim.w, ast.Dim.h
	case ast.Preset != nil:
		size, ok := presets[strings.ToLower(*ast.Preset)]
		if !ok {
			return layout.Geometry{}, fmt.Errorf("unknown page size %q", *ast.Preset)
		}
		w, h = size[0], size[1]
	}
	if ast.Orientation != nil {
		landscape := strings.EqualFold(*ast.Orientation, "landscape")
		if (landscape && h > w) || (!landscape && w > h) {
			w, h = h, w
		}
	}

	margin := DefaultMargin
	if ast.Margin != nil {
		margin = ast.Margin.pts
	}

	g := layout.Geometry{Width: w, Height: h, Margin: margin}
	if err := g.Validate(); err != nil {
		return layout.Geometry{}, err
	}
	return g, nil
}
