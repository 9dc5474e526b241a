package layout

import "strings"

// MeasureFunc 返回一段候选文本的排版宽度（pt），由渲染后端按字体绑定后注入。
type MeasureFunc func(candidate string) float64

// Wrap 以贪心策略把文本按空白分词并折行，每行测量宽度不超过 maxWidth。
//
// 规则：
//   - 候选行 = 当前行 + " " + 下一个词；measure(候选行) <= maxWidth 则并入当前行；
//   - 否则结束当前行，下一个词另起一行；
//   - 单个词自身超宽时仍整词输出为一行，绝不丢词、不拆词；
//   - 空文本返回空序列，而不是一行空串。
//
// 词序在输出中保持不变。
func Wrap(text string, maxWidth float64, measure MeasureFunc) []string {
	tokens := strings.Fields(text)
	if len(tokens) == 0 {
		return nil
	}

	var lines []string
	current := ""
	for _, token := range tokens {
		candidate := token
		if current != "" {
			candidate = current + " " + token
		}
		if measure(candidate) <= maxWidth {
			current = candidate
			continue
		}
		if current != "" {
			lines = append(lines, current)
		}
		current = token
	}
	if current != "" {
		lines = append(lines, current)
	}
	return lines
}
