package source

import (
	"fmt"
	"io"
	"os"
	"strings"
)

// FromText 读取纯文本文件，页与页之间以换页符（\f）分隔。
func FromText(path string) (*Document, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("无法打开文本文件 %s: %w", path, err)
	}
	defer file.Close()
	return FromTextReader(file, displayName(path))
}

// FromTextReader 从 r 读取换页符分页的纯文本。
// CRLF 统一为 LF；整份输入为空时返回零页文档。
func FromTextReader(r io.Reader, name string) (*Document, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("读取文本失败: %w", err)
	}
	text := strings.ReplaceAll(string(data), "\r\n", "\n")
	if strings.TrimSpace(text) == "" {
		return &Document{Name: name}, nil
	}
	pages := strings.Split(text, "\f")
	// 末尾换页符会产生一个多余的空页，丢弃它；中间的空页保留。
	if n := len(pages); n > 1 && strings.TrimSpace(pages[n-1]) == "" {
		pages = pages[:n-1]
	}
	return &Document{Name: name, Pages: pages}, nil
}
