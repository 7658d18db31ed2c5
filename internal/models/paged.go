package models

const (
	DefaultPage     = 1
	DefaultPageSize = 20
)

// Paged is one page of a larger result set. It is built once by a repository
// and not modified afterwards.
type Paged[T any] struct {
	Items      []T `json:"items"`
	TotalItems int `json:"total_items"`
	Page       int `json:"page"`
	PageSize   int `json:"page_size"`
}

// NewPaged clamps page and pageSize to at least 1. A nil items slice becomes
// an empty one so that it marshals as [].
func NewPaged[T any](items []T, totalItems, page, pageSize int) Paged[T] {
	if page < 1 {
		page = DefaultPage
	}
	if pageSize < 1 {
		pageSize = DefaultPageSize
	}
	if items == nil {
		items = []T{}
	}
	return Paged[T]{
		Items:      items,
		TotalItems: totalItems,
		Page:       page,
		PageSize:   pageSize,
	}
}

func (p Paged[T]) TotalPages() int {
	if p.PageSize < 1 || p.TotalItems < 1 {
		return 0
	}
	return (p.TotalItems-1)/p.PageSize + 1
}

// PageWindow returns the half-open range [start, end) of total items covered
// by page. Invalid page values fall back to the defaults, and a page past the
// end yields the empty range [total, total). It never overflows, whatever
// page and pageSize are.
func PageWindow(page, pageSize, total int) (start, end int) {
	if page < 1 {
		page = DefaultPage
	}
	if pageSize < 1 {
		pageSize = DefaultPageSize
	}
	if total < 1 {
		return 0, 0
	}

	if page-1 > total/pageSize {
		start = total
	} else {
		start = min((page-1)*pageSize, total)
	}
	end = start + min(pageSize, total-start)
	return start, end
}

// MapPaged converts the items of a page, keeping the page metadata.
func MapPaged[T, U any](p Paged[T], fn func(T) U) Paged[U] {
	items := make([]U, len(p.Items))
	for i, item := range p.Items {
		items[i] = fn(item)
	}
	return Paged[U]{
		Items:      items,
		TotalItems: p.TotalItems,
		Page:       p.Page,
		PageSize:   p.PageSize,
	}
}
