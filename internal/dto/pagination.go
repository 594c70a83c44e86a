package dto

// Pagination describes one page of a larger result set.
type Pagination struct {
	Page       int   `json:"page"`
	PageSize   int   `json:"pageSize"`
	Total      int64 `json:"total"`
	TotalPages int   `json:"totalPages"`
}

// Page is the envelope shared by every paginated listing.
type Page[T any] struct {
	Data       []T        `json:"data"`
	Pagination Pagination `json:"pagination"`
}

// NewPage builds a page envelope. Out-of-range pages arrive here with an
// empty data slice and still report correct totals.
func NewPage[T any](data []T, total int64, page, pageSize int) Page[T] {
	totalPages := int(total) / pageSize
	if int(total)%pageSize != 0 {
		totalPages++
	}

	if data == nil {
		data = []T{}
	}

	return Page[T]{
		Data: data,
		Pagination: Pagination{
			Page:       page,
			PageSize:   pageSize,
			Total:      total,
			TotalPages: totalPages,
		},
	}
}

const (
	defaultPageSize = 10
	maxPageSize     = 100
)

// PageQuery binds the page/pageSize query parameters. Absent values default
// to page 1 with 10 items; explicit zero or negative values are a caller
// error and fail binding.
type PageQuery struct {
	Page     *int `form:"page" binding:"omitempty,min=1"`
	PageSize *int `form:"pageSize" binding:"omitempty,min=1"`
}

// Resolve applies defaults and clamps oversized page sizes.
func (q PageQuery) Resolve() (page, pageSize int) {
	page = 1
	if q.Page != nil {
		page = *q.Page
	}
	pageSize = defaultPageSize
	if q.PageSize != nil {
		pageSize = *q.PageSize
	}
	if pageSize > maxPageSize {
		pageSize = maxPageSize
	}
	return page, pageSize
}
