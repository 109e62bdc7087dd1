package shared

// Pagination bounds for offset/limit scans
const (
	DefaultLimit = 20
	MaxLimit     = 100
)

// Page is an offset/limit window over a store-ordered scan
type Page struct {
	Offset int
	Limit  int
}

// NewPage builds a page, applying the default limit when limit is zero.
// Out-of-range values are rejected rather than clamped.
func NewPage(offset, limit int) (Page, error) {
	if limit == 0 {
		limit = DefaultLimit
	}
	p := Page{Offset: offset, Limit: limit}
	if err := p.Validate(); err != nil {
		return Page{}, err
	}
	return p, nil
}

// Validate checks the page bounds
func (p Page) Validate() error {
	if p.Offset < 0 {
		return NewValidationError("offset must be greater than or equal to 0")
	}
	if p.Limit < 1 || p.Limit > MaxLimit {
		return NewValidationError("limit must be between 1 and 100")
	}
	return nil
}

// Paginated represents an offset/limit page of results
type Paginated[T any] struct {
	Items  []T   `json:"items"`
	Total  int64 `json:"total"`
	Offset int   `json:"offset"`
	Limit  int   `json:"limit"`
}

// NewPaginated creates a new paginated result
func NewPaginated[T any](items []T, total int64, page Page) Paginated[T] {
	if items == nil {
		items = make([]T, 0)
	}
	return Paginated[T]{
		Items:  items,
		Total:  total,
		Offset: page.Offset,
		Limit:  page.Limit,
	}
}
