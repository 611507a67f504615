package response

// PageResponse is the standard wrapper for paged list endpoints.
type PageResponse[T any] struct {
	Items    []T `json:"items"`
	Page     int `json:"page"`
	PageSize int `json:"page_size"`
	Total    int `json:"total"`
}

// NewPageResponse builds a PageResponse, normalizing a nil slice so the
// JSON output is [] rather than null.
func NewPageResponse[T any](items []T, page, pageSize, total int) PageResponse[T] {
	if items == nil {
		items = make([]T, 0)
	}

	return PageResponse[T]{
		Items:    items,
		Page:     page,
		PageSize: pageSize,
		Total:    total,
	}
}
