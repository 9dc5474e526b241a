package canvasrenderer

import (
	"bytes"
	"fmt"
	"strings"
	"sync"

	"github.com/tdewolff/canvas"
	"github.com/tdewolff/canvas/renderers/pdf"

	"github.com/RobbieKaras/rotater/fonts"
	"github.com/RobbieKaras/rotater/layout"
	"github.com/RobbieKaras/rotater/renderer"
)

// Renderer draws layout results via github.com/tdewolff/canvas.
type Renderer struct {
	fontMu sync.Mutex
	family *canvas.FontFamily
}

var (
	_ renderer.Renderer = (*Renderer)(nil)
	_ layout.Typesetter = (*Renderer)(nil)
)

// NewRenderer creates a canvas-based renderer backed by the bundled font.
func NewRenderer() *Renderer { return &Renderer{} }

// Face 实现 layout.Typesetter 接口，把字号绑定到内置字体并返回宽度测量函数。
// 约定：布局侧的宽度与坐标均为 pt；canvas 的 TextWidth 返回 mm，在此边界做 mm→pt 换算。
func (r *Renderer) Face(fontSize float64) (layout.MeasureFunc, error) {
	face, err := r.fontFace(fontSize)
	if err != nil {
		return nil, err
	}
	return func(candidate string) float64 {
		return face.TextWidth(candidate) * layout.MmToPt
	}, nil
}

// Render renders the result into a PDF byte slice, one PDF page per layout page.
func (r *Renderer) Render(result *layout.Result) ([]byte, error) {
	if result == nil {
		return nil, fmt.Errorf("渲染结果为空")
	}
	if len(result.Pages) == 0 {
		return nil, fmt.Errorf("缺少可渲染的页面")
	}

	face, err := r.fontFace(result.Config.FontSize)
	if err != nil {
		return nil, err
	}

	// 布局坐标为 pt，canvas 页面为 mm，统一在此换算。
	widthMM := result.Geometry.Width * layout.PtToMm
	heightMM := result.Geometry.Height * layout.PtToMm

	var buf bytes.Buffer
	writer := pdf.New(&buf, widthMM, heightMM, nil)
	r.applyMeta(writer, result.Meta)
	for i, page := range result.Pages {
		if i > 0 {
			writer.NewPage(widthMM, heightMM)
		}
		c := canvas.New(widthMM, heightMM)
		ctx := canvas.NewContext(c)
		// 布局坐标系与 canvas 默认一致（左下角原点，y 向上），无需转换坐标系。
		if err := r.drawPage(ctx, page, face); err != nil {
			return nil, err
		}
		c.RenderTo(writer)
	}

	if err := writer.Close(); err != nil {
		return nil, fmt.Errorf("写入 PDF 失败: %w", err)
	}
	return buf.Bytes(), nil
}

func (r *Renderer) applyMeta(writer *pdf.PDF, meta layout.DocumentMeta) {
	if writer == nil {
		return
	}
	keywords := strings.Join(meta.Keywords, ", ")
	writer.SetInfo(meta.Title, meta.Subject, keywords, meta.Author, meta.Creator)
}

// drawPage 以锚点为基线起点绘制每条指令；旋转通过视图矩阵完成。
func (r *Renderer) drawPage(ctx *canvas.Context, page layout.Page, face *canvas.FontFace) error {
	for _, run := range page.Runs {
		// 空行只占一个行位，不产生绘制。
		if run.Text == "" {
			continue
		}
		ctx.Push()
		ctx.ComposeView(canvas.Identity.
			Translate(run.X*layout.PtToMm, run.Y*layout.PtToMm).
			Rotate(run.Angle))
		ctx.DrawText(0, 0, canvas.NewTextLine(face, run.Text, canvas.Left))
		ctx.Pop()
	}
	return nil
}

func (r *Renderer) fontFace(sizePt float64) (*canvas.FontFace, error) {
	family, err := r.ensureFamily()
	if err != nil {
		return nil, err
	}
	return family.Face(sizePt, canvas.Black, canvas.FontRegular, canvas.FontNormal), nil
}

func (r *Renderer) ensureFamily() (*canvas.FontFamily, error) {
	r.fontMu.Lock()
	defer r.fontMu.Unlock()
	if r.family != nil {
		return r.family, nil
	}
	data, err := fonts.Load("DejaVu/DejaVuSans.ttf")
	if err != nil {
		return nil, err
	}
	family := canvas.NewFontFamily("rotater")
	if err := family.LoadFont(data, 0, canvas.FontRegular); err != nil {
		return nil, fmt.Errorf("加载内置字体失败: %w", err)
	}
	r.family = family
	return family, nil
}
