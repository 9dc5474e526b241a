package source

import (
	"fmt"

	"github.com/ledongthuc/pdf"
)

// FromPDF 打开 PDF 并逐页抽取纯文本。
//
// 抽取顺序为内容流顺序，并非严格的阅读顺序；这是已知的近似，
// 与后续贪心折行的取舍一致。无文本的页保留为空页以维持页序。
func FromPDF(path string) (*Document, error) {
	file, reader, err := pdf.Open(path)
	if err != nil {
		return nil, fmt.Errorf("无法打开 PDF %s: %w", path, err)
	}
	defer file.Close()

	doc := &Document{Name: displayName(path)}
	fonts := make(map[string]*pdf.Font)
	for i := 1; i <= reader.NumPage(); i++ {
		page := reader.Page(i)
		if page.V.IsNull() {
			doc.Pages = append(doc.Pages, "")
			continue
		}
		for _, name := range page.Fonts() {
			if _, ok := fonts[name]; !ok {
				f := page.Font(name)
				fonts[name] = &f
			}
		}
		text, err := page.GetPlainText(fonts)
		if err != nil {
			return nil, fmt.Errorf("抽取第 %d 页文本失败: %w", i, err)
		}
		doc.Pages = append(doc.Pages, text)
	}
	return doc, nil
}
