package layout

import (
	"errors"
	"fmt"
	"math"
	"strings"
)

// 该文件定义页面几何、布局配置与布局结果，供布局计算、渲染与调试 JSON 共用。
// 所有坐标与长度单位均为 pt。

// ErrInvalidConfig 表示几何或布局配置不合法，布局计算开始前即返回。
var ErrInvalidConfig = errors.New("布局配置不合法")

// Geometry 描述一张输出页：宽、高与四边统一的边距。
type Geometry struct {
	Width  float64 `json:"width"`
	Height float64 `json:"height"`
	Margin float64 `json:"margin"`
}

// MaxLineWidth 返回旋转后文本行可用的最大宽度（沿页面高度方向）。
func (g Geometry) MaxLineWidth() float64 {
	return g.Height - 2*g.Margin
}

// MaxLinesPerPage 返回在给定行距下单页可容纳的行数。
// 行锚点从 Width-Margin 起每行左移一个 leading，不得越过左边距，
// 因此容量为 floor((Width-2*Margin)/leading)。
func (g Geometry) MaxLinesPerPage(leading float64) int {
	if leading <= 0 {
		return 0
	}
	return int(math.Floor((g.Width - 2*g.Margin) / leading))
}

// Validate 校验几何参数。
func (g Geometry) Validate() error {
	if g.Width <= 0 || g.Height <= 0 {
		return fmt.Errorf("%w: 页面尺寸必须为正（%gx%g）", ErrInvalidConfig, g.Width, g.Height)
	}
	if g.Margin < 0 {
		return fmt.Errorf("%w: 边距不能为负（%g）", ErrInvalidConfig, g.Margin)
	}
	if g.Margin >= math.Min(g.Width, g.Height)/2 {
		return fmt.Errorf("%w: 边距 %g 超过页面尺寸的一半", ErrInvalidConfig, g.Margin)
	}
	return nil
}

// Direction 表示文本的旋转方向。
type Direction int

const (
	// Clockwise 顺时针旋转，角度 -90°。
	Clockwise Direction = iota
	// CounterClockwise 逆时针旋转，角度 +90°。
	CounterClockwise
)

// Angle 返回该方向对应的固定旋转角（度）。同一文档内所有行共用同一角度。
func (d Direction) Angle() float64 {
	if d == CounterClockwise {
		return 90
	}
	return -90
}

func (d Direction) String() string {
	if d == CounterClockwise {
		return "ccw"
	}
	return "cw"
}

// ParseDirection 解析旋转方向字符串，支持 cw/ccw 及其全称。
func ParseDirection(s string) (Direction, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "cw", "clockwise":
		return Clockwise, nil
	case "ccw", "counterclockwise", "counter-clockwise":
		return CounterClockwise, nil
	default:
		return Clockwise, fmt.Errorf("无法识别的旋转方向 %q（支持 cw/ccw）", s)
	}
}

// Config 描述布局参数：字号、行距与旋转方向。字号与行距单位均为 pt。
type Config struct {
	FontSize float64   `json:"fontSize"`
	Leading  float64   `json:"leading"`
	Rotation Direction `json:"rotation"`
}

// Validate 校验布局参数并结合几何检查派生容量。
func (c Config) Validate(g Geometry) error {
	if c.FontSize <= 0 {
		return fmt.Errorf("%w: 字号必须为正（%g）", ErrInvalidConfig, c.FontSize)
	}
	if c.Leading <= 0 {
		return fmt.Errorf("%w: 行距必须为正（%g）", ErrInvalidConfig, c.Leading)
	}
	if err := g.Validate(); err != nil {
		return err
	}
	if g.MaxLinesPerPage(c.Leading) < 1 {
		return fmt.Errorf("%w: 行距 %g 过大，单页容纳不下一行", ErrInvalidConfig, c.Leading)
	}
	return nil
}

// TextRun 是一条完全解析后的绘制指令：一行文本、锚点坐标与旋转角。
// 坐标系与 PDF 相同：原点在页面左下角，y 向上，角度为逆时针度数。
type TextRun struct {
	Text  string  `json:"text"`
	X     float64 `json:"x"`
	Y     float64 `json:"y"`
	Angle float64 `json:"angle"`
}

// Page 记录一张输出页上按顺序排列的文本指令。
type Page struct {
	Runs []TextRun `json:"runs"`
}

// Result 保存布局后的页面与文档信息，可直接交给渲染器。
type Result struct {
	Geometry Geometry     `json:"geometry"`
	Config   Config       `json:"config"`
	Pages    []Page       `json:"pages"`
	Meta     DocumentMeta `json:"meta"`
}

// DocumentMeta 保存写入 PDF 信息字典的元数据。
type DocumentMeta struct {
	Title    string   `json:"title"`
	Author   string   `json:"author"`
	Subject  string   `json:"subject"`
	Creator  string   `json:"creator"`
	Keywords []string `json:"keywords"`
}
