package layout

import (
	"fmt"
	"math"
	"reflect"
	"testing"
)

func letterGeometry() Geometry {
	// US Letter，0.6in 边距。
	return Geometry{Width: 612, Height: 792, Margin: 43.2}
}

func TestPlaceAnchorsAndAngle(t *testing.T) {
	g := letterGeometry()
	lines := []string{"first", "second", ""}
	runs := Place(lines, g, 14, CounterClockwise)
	if len(runs) != len(lines) {
		t.Fatalf("每行应有一条指令: got=%d want=%d", len(runs), len(lines))
	}

	x0 := g.Width - g.Margin
	for i, run := range runs {
		if run.Text != lines[i] {
			t.Fatalf("第 %d 条指令文本不符: got=%q want=%q", i, run.Text, lines[i])
		}
		if run.Y != g.Margin {
			t.Fatalf("y 必须恒为边距: got=%g want=%g", run.Y, g.Margin)
		}
		wantX := x0 - float64(i)*14
		if math.Abs(run.X-wantX) > 1e-9 {
			t.Fatalf("第 %d 条指令 x 不符: got=%g want=%g", i, run.X, wantX)
		}
		if run.Angle != 90 {
			t.Fatalf("逆时针角度应为 +90, got=%g", run.Angle)
		}
	}

	for _, run := range Place(lines, g, 14, Clockwise) {
		if run.Angle != -90 {
			t.Fatalf("顺时针角度应为 -90, got=%g", run.Angle)
		}
	}
}

// TestPlaceFullPageStaysInsideMargin 对应容量推导的几何保证：
// letter + 0.6in 边距 + 行距 14 时容量为 37，满页最后一行的 x 仍 >= 边距。
func TestPlaceFullPageStaysInsideMargin(t *testing.T) {
	g := letterGeometry()
	const leading = 14.0
	capacity := g.MaxLinesPerPage(leading)
	if capacity != 37 {
		t.Fatalf("容量推导不符: got=%d want=37", capacity)
	}

	lines := make([]string, capacity)
	for i := range lines {
		lines[i] = fmt.Sprintf("line-%d", i)
	}
	runs := Place(lines, g, leading, Clockwise)
	last := runs[len(runs)-1]
	if last.X < g.Margin {
		t.Fatalf("满页最后一行越过左边距: x=%g margin=%g", last.X, g.Margin)
	}
}

func TestPlaceDeterministic(t *testing.T) {
	g := letterGeometry()
	lines := []string{"a", "b", "c"}
	first := Place(lines, g, 14, CounterClockwise)
	second := Place(lines, g, 14, CounterClockwise)
	if !reflect.DeepEqual(first, second) {
		t.Fatalf("相同输入应产出相同指令序列")
	}
}

func TestPlaceEmpty(t *testing.T) {
	if runs := Place(nil, letterGeometry(), 14, Clockwise); len(runs) != 0 {
		t.Fatalf("空页不应产出指令, got=%d", len(runs))
	}
}
