package layout

import (
	"fmt"
	"strings"
	"unicode/utf8"

	"github.com/RobbieKaras/rotater/binding"
	"github.com/RobbieKaras/rotater/source"
)

// DefaultTitleTemplate 为页眉标题的默认模板。
const DefaultTitleTemplate = "${name} - p.${page}/${pages}"

// maxRuleLength 限制标题下分隔线的最大长度。
const maxRuleLength = 80

// Build 把逐页文本布局为旋转文本的输出页。
//
// 对第 i 个来源页：先合成页眉块（标题、与标题等长的分隔线、一个空行），
// 再接上该页正文的折行结果，整块按页容量分页并逐行计算旋转锚点。
// 不同来源页各自从新的一页开始，输出页按来源页序累积。
//
// 空文档产出零页，这是合法的终态而非错误。
func Build(doc *source.Document, opts BuildOptions) (*Result, error) {
	if doc == nil {
		return nil, fmt.Errorf("输入文档不能为空")
	}
	if opts.Typesetter == nil {
		return nil, fmt.Errorf("缺少排版后端")
	}
	geom, cfg := opts.Geometry, opts.Config
	if err := cfg.Validate(geom); err != nil {
		return nil, err
	}

	measure, err := opts.Typesetter.Face(cfg.FontSize)
	if err != nil {
		return nil, fmt.Errorf("绑定字体失败: %w", err)
	}

	tmpl := opts.TitleTemplate
	if tmpl == "" {
		tmpl = DefaultTitleTemplate
	}

	capacity := geom.MaxLinesPerPage(cfg.Leading)
	maxWidth := geom.MaxLineWidth()
	result := &Result{
		Geometry: geom,
		Config:   cfg,
		Meta:     resolveMeta(opts.Meta, doc.Name),
	}
	for i, pageText := range doc.Pages {
		block := headerBlock(tmpl, doc.Name, i+1, len(doc.Pages))
		block = append(block, Wrap(pageText, maxWidth, measure)...)
		for _, chunk := range Paginate(block, capacity) {
			result.Pages = append(result.Pages, Page{
				Runs: Place(chunk, geom, cfg.Leading, cfg.Rotation),
			})
		}
	}
	return result, nil
}

// headerBlock 合成来源页的页眉：标题行、分隔线与一个空行。
// 分隔线长度为 min(标题长度, 80)；空行作为占位行参与分页。
func headerBlock(tmpl, name string, page, pages int) []string {
	title := binding.Interpolate(tmpl, map[string]any{
		"name":  name,
		"page":  page,
		"pages": pages,
	})
	n := utf8.RuneCountInString(title)
	if n > maxRuleLength {
		n = maxRuleLength
	}
	return []string{title, strings.Repeat("-", n), ""}
}

func resolveMeta(meta DocumentMeta, name string) DocumentMeta {
	if meta.Title == "" {
		meta.Title = name
	}
	if meta.Creator == "" {
		meta.Creator = "rotater"
	}
	return meta
}
