package browse

// maxVisiblePages is the page count up to which every page is listed
const maxVisiblePages = 5

// PageItem is one entry of the pagination bar: a page number or an ellipsis
type PageItem struct {
	Number   int
	Ellipsis bool
}

// Window is the display model of the pagination bar
type Window struct {
	Items   []PageItem
	Current int
	Total   int
	HasPrev bool
	HasNext bool
}

// DerivePagination computes the page numbers to display around currentPage.
// The first and last pages are always present, the window around the current
// page has radius 1, and a single ellipsis marks each gap. Out of range input is clamped.
func DerivePagination(totalPages, currentPage int) Window {
	total := totalPages
	if total < 1 {
		total = 1
	}
	current := currentPage
	if current < 1 {
		current = 1
	}
	if current > total {
		current = total
	}

	w := Window{
		Current: current,
		Total:   total,
		HasPrev: current > 1,
		HasNext: current < total,
	}

	if total <= maxVisiblePages {
		for p := 1; p <= total; p++ {
			w.Items = append(w.Items, PageItem{Number: p})
		}
		return w
	}

	start := max(2, current-1)
	end := min(total-1, current+1)

	w.Items = append(w.Items, PageItem{Number: 1})
	if start > 2 {
		w.Items = append(w.Items, PageItem{Ellipsis: true})
	}
	for p := start; p <= end; p++ {
		w.Items = append(w.Items, PageItem{Number: p})
	}
	if end < total-1 {
		w.Items = append(w.Items, PageItem{Ellipsis: true})
	}
	w.Items = append(w.Items, PageItem{Number: total})

	return w
}

// Pages returns the page numbers of w without ellipsis markers
func (w Window) Pages() []int {
	pages := make([]int, 0, len(w.Items))
	for _, item := range w.Items {
		if !item.Ellipsis {
			pages = append(pages, item.Number)
		}
	}
	return pages
}
