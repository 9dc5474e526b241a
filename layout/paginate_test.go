package layout

import (
	"fmt"
	"reflect"
	"testing"
)

func TestPaginateChunksInOrder(t *testing.T) {
	lines := []string{"l0", "l1", "l2", "l3", "l4", "l5", "l6"}
	pages := Paginate(lines, 3)
	if len(pages) != 3 {
		t.Fatalf("7 行容量 3 应得 3 页, got=%d", len(pages))
	}
	wantSizes := []int{3, 3, 1}
	var flat []string
	for i, page := range pages {
		if len(page) != wantSizes[i] {
			t.Fatalf("第 %d 页行数不符: got=%d want=%d", i, len(page), wantSizes[i])
		}
		flat = append(flat, page...)
	}
	if !reflect.DeepEqual(flat, lines) {
		t.Fatalf("分页后行序被破坏: got=%v", flat)
	}
}

func TestPaginateEmptyInput(t *testing.T) {
	if pages := Paginate(nil, 3); len(pages) != 0 {
		t.Fatalf("空输入应产出零页, got=%d", len(pages))
	}
}

func TestPaginatePageCount(t *testing.T) {
	// 页数 = ceil(n/c)，除末页外每页恰好 c 行。
	cases := []struct {
		n, c, pages int
	}{
		{1, 1, 1},
		{5, 5, 1},
		{6, 5, 2},
		{10, 3, 4},
		{37, 37, 1},
		{38, 37, 2},
	}
	for _, tc := range cases {
		t.Run(fmt.Sprintf("n=%d c=%d", tc.n, tc.c), func(t *testing.T) {
			lines := make([]string, tc.n)
			for i := range lines {
				lines[i] = fmt.Sprintf("line-%d", i)
			}
			pages := Paginate(lines, tc.c)
			if len(pages) != tc.pages {
				t.Fatalf("页数不符: got=%d want=%d", len(pages), tc.pages)
			}
			for i := 0; i < len(pages)-1; i++ {
				if len(pages[i]) != tc.c {
					t.Fatalf("非末页行数应为 %d, 第 %d 页为 %d", tc.c, i, len(pages[i]))
				}
			}
		})
	}
}

func TestPaginatePreservesBlankLines(t *testing.T) {
	lines := []string{"title", "-----", "", "body"}
	pages := Paginate(lines, 10)
	if len(pages) != 1 || !reflect.DeepEqual(pages[0], lines) {
		t.Fatalf("空行占位未保留: got=%v", pages)
	}
}
