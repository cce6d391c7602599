package browse

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
)

func pages(nums ...int) []PageItem {
	items := make([]PageItem, 0, len(nums))
	for _, n := range nums {
		if n == 0 {
			items = append(items, PageItem{Ellipsis: true})
			continue
		}
		items = append(items, PageItem{Number: n})
	}
	return items
}

func TestDerivePagination(t *testing.T) {
	tests := []struct {
		name    string
		total   int
		current int
		want    Window
	}{
		{
			name: "single page", total: 1, current: 1,
			want: Window{Items: pages(1), Current: 1, Total: 1},
		},
		{
			name: "five pages shows all", total: 5, current: 3,
			want: Window{Items: pages(1, 2, 3, 4, 5), Current: 3, Total: 5, HasPrev: true, HasNext: true},
		},
		{
			name: "first page of many", total: 42, current: 1,
			want: Window{Items: pages(1, 2, 0, 42), Current: 1, Total: 42, HasNext: true},
		},
		{
			name: "third page joins the first anchor", total: 42, current: 3,
			want: Window{Items: pages(1, 2, 3, 4, 0, 42), Current: 3, Total: 42, HasPrev: true, HasNext: true},
		},
		{
			name: "middle page", total: 42, current: 20,
			want: Window{Items: pages(1, 0, 19, 20, 21, 0, 42), Current: 20, Total: 42, HasPrev: true, HasNext: true},
		},
		{
			name: "last page", total: 42, current: 42,
			want: Window{Items: pages(1, 0, 41, 42), Current: 42, Total: 42, HasPrev: true},
		},
		{
			name: "six pages near the end", total: 6, current: 5,
			want: Window{Items: pages(1, 0, 4, 5, 6), Current: 5, Total: 6, HasPrev: true, HasNext: true},
		},
		{
			name: "current beyond total is clamped", total: 7, current: 99,
			want: Window{Items: pages(1, 0, 6, 7), Current: 7, Total: 7, HasPrev: true},
		},
		{
			name: "zero pages behaves like one", total: 0, current: 1,
			want: Window{Items: pages(1), Current: 1, Total: 1},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := DerivePagination(tt.total, tt.current)
			if diff := cmp.Diff(tt.want, got); diff != "" {
				t.Errorf("DerivePagination(%d, %d) mismatch (-want +got):\n%s", tt.total, tt.current, diff)
			}
		})
	}
}

func TestDerivePagination_Properties(t *testing.T) {
	for total := 1; total <= 1000; total++ {
		for current := 1; current <= total; current++ {
			w := DerivePagination(total, current)

			nums := w.Pages()
			if nums[0] != 1 || nums[len(nums)-1] != total {
				t.Fatalf("total=%d current=%d: anchors missing in %v", total, current, nums)
			}
			if !containsInt(nums, current) {
				t.Fatalf("total=%d current=%d: current page missing in %v", total, current, nums)
			}

			prev := 0
			gap := false
			for i, item := range w.Items {
				if item.Ellipsis {
					if gap || i == 0 || i == len(w.Items)-1 {
						t.Fatalf("total=%d current=%d: misplaced ellipsis in %v", total, current, w.Items)
					}
					gap = true
					continue
				}
				if item.Number <= prev {
					t.Fatalf("total=%d current=%d: not increasing %v", total, current, w.Items)
				}
				if prev != 0 {
					if gap && item.Number-prev < 2 {
						t.Fatalf("total=%d current=%d: ellipsis between adjacent pages %v", total, current, w.Items)
					}
					if !gap && item.Number-prev != 1 {
						t.Fatalf("total=%d current=%d: gap without ellipsis %v", total, current, w.Items)
					}
				}
				prev = item.Number
				gap = false
			}

			if w.HasPrev != (current > 1) || w.HasNext != (current < total) {
				t.Fatalf("total=%d current=%d: wrong navigation flags", total, current)
			}
		}
	}
}

func TestDerivePagination_Deterministic(t *testing.T) {
	assert.Equal(t, DerivePagination(100, 50), DerivePagination(100, 50))
}

func containsInt(nums []int, n int) bool {
	for _, v := range nums {
		if v == n {
			return true
		}
	}
	return false
}
