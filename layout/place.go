package layout

// Place 为一张输出页上的每一行计算旋转后的绘制指令。
//
// 所有行共用固定的 y = margin；x 从 Width-margin 起每行左移一个 leading。
// 旋转角由方向决定且全页一致。只要行数不超过 Geometry.MaxLinesPerPage，
// 最后一行的 x 不会越过左边距；越过说明配置校验被绕过，属于配置错误。
func Place(lines []string, g Geometry, leading float64, dir Direction) []TextRun {
	if len(lines) == 0 {
		return nil
	}
	angle := dir.Angle()
	x0 := g.Width - g.Margin
	runs := make([]TextRun, len(lines))
	for i, line := range lines {
		runs[i] = TextRun{
			Text:  line,
			X:     x0 - float64(i)*leading,
			Y:     g.Margin,
			Angle: angle,
		}
	}
	return runs
}
