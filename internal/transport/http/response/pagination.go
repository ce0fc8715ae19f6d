package response

// Params binds the page/size query parameters shared by every list
// endpoint. The default tags fill absent keys before validation runs,
// so the ranges apply to supplied values too: an explicit page=0 or
// size=0 is rejected, not treated as unset.
type Params struct {
	Page int `form:"page,default=1" binding:"min=1"`
	Size int `form:"size,default=10" binding:"min=1,max=100"`
}

func (p Params) Offset() int { return (p.Page - 1) * p.Size }
func (p Params) Limit() int  { return p.Size }

// Paginated wraps an ordered page of items together with its metadata.
// Items is never null on the wire.
type Paginated[T any] struct {
	Items   []T   `json:"items"`
	Total   int64 `json:"total"`
	Page    int   `json:"page"`
	Size    int   `json:"size"`
	Pages   int   `json:"pages"`
	HasNext bool  `json:"has_next"`
	HasPrev bool  `json:"has_prev"`
}

func NewPaginated[T any](items []T, total int64, page, size int) Paginated[T] {
	if items == nil {
		items = make([]T, 0)
	}
	// binding keeps size >= 1, but don't divide by zero if a caller skips it
	pages := 0
	if size > 0 {
		pages = int((total + int64(size) - 1) / int64(size))
	}
	return Paginated[T]{
		Items:   items,
		Total:   total,
		Page:    page,
		Size:    size,
		Pages:   pages,
		HasNext: page < pages,
		HasPrev: page > 1,
	}
}
