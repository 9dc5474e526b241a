package layout

// Paginate 把有序的行切分为连续批次，每批恰好 capacity 行，末批可以更短。
// 空输入返回空序列，不会合成空页。行序与批次顺序均与输入一致。
//
// 每个来源页单独调用一次，不同来源页的行不会被并入同一输出页。
func Paginate(lines []string, capacity int) [][]string {
	if capacity < 1 || len(lines) == 0 {
		return nil
	}
	pages := make([][]string, 0, (len(lines)+capacity-1)/capacity)
	for start := 0; start < len(lines); start += capacity {
		end := start + capacity
		if end > len(lines) {
			end = len(lines)
		}
		pages = append(pages, lines[start:end])
	}
	return pages
}
