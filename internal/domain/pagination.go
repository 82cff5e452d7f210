package domain

import "strings"

// SortDirection is the ordering direction of a paged read
type SortDirection string

const (
	SortAsc  SortDirection = "asc"
	SortDesc SortDirection = "desc"
)

// Pagination holds the paging parameters of a read
type Pagination struct {
	Page      int
	PageSize  int
	OrderBy   string
	Direction SortDirection
}

// Normalize applies defaults and bounds: page >= 1, 0 < pageSize <= MaxPageSize
func (p Pagination) Normalize(defaultOrderBy string) Pagination {
	if p.Page < 1 {
		p.Page = 1
	}
	if p.PageSize <= 0 {
		p.PageSize = DefaultPageSize
	}
	if p.PageSize > MaxPageSize {
		p.PageSize = MaxPageSize
	}
	if p.OrderBy == "" {
		p.OrderBy = defaultOrderBy
	}
	switch SortDirection(strings.ToLower(string(p.Direction))) {
	case SortAsc:
		p.Direction = SortAsc
	default:
		p.Direction = SortDesc
	}
	return p
}

// Offset returns the number of rows to skip
func (p Pagination) Offset() int {
	return (p.Page - 1) * p.PageSize
}

// Limit returns the number of rows to request: one more than the page size
func (p Pagination) Limit() int {
	return p.PageSize + 1
}

// Page is one page of results
type Page[T any] struct {
	Items      []T  `json:"items"`
	IsLastPage bool `json:"isLastPage"`
}

// TrimPage turns a pageSize+1 fetch into a page
func TrimPage[T any](rows []T, pageSize int) Page[T] {
	isLast := len(rows) <= pageSize
	if !isLast {
		rows = rows[:pageSize]
	}
	if rows == nil {
		rows = []T{}
	}
	return Page[T]{Items: rows, IsLastPage: isLast}
}
