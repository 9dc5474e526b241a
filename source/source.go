// Package source 读取输入文档并抽取逐页纯文本。
// 抽取顺序即页序，后续布局与渲染全程保持该顺序。
package source

import (
	"path/filepath"
	"strings"
)

// Document 是一份按页组织的纯文本文档。
type Document struct {
	// Name 为显示名，用于页眉标题与 PDF 元数据。
	Name string
	// Pages 为逐页文本；允许出现空页（原文档中无可抽取文本的页）。
	Pages []string
}

// displayName 由输入文件路径派生显示名：取文件名并去掉扩展名。
func displayName(path string) string {
	base := filepath.Base(path)
	if ext := filepath.Ext(base); ext != "" {
		base = strings.TrimSuffix(base, ext)
	}
	if base == "" || base == "." {
		return "document"
	}
	return base
}
