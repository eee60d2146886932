package common

// Pagination metadata, computed from total row count
type Pagination struct {
	Page       int   `json:"page"`
	PerPage    int   `json:"per_page"`
	Total      int64 `json:"total"`
	TotalPages int64 `json:"total_pages"`
	HasPrev    bool  `json:"has_prev"`
	HasNext    bool  `json:"has_next"`
	PrevPage   *int  `json:"prev_page"`
	NextPage   *int  `json:"next_page"`
}

// MaxPerPage is the hard ceiling on page size. Large values are allowed on
// purpose: selection dropdowns load the whole entity list in one page.
const MaxPerPage = 10000

// ClampPage normalizes page/perPage: page is at least 1, perPage falls back
// to defaultPerPage when out of range and is capped at MaxPerPage.
func ClampPage(page, perPage, defaultPerPage int) (int, int) {
	if page < 1 {
		page = 1
	}
	if perPage < 1 {
		perPage = defaultPerPage
	} else if perPage > MaxPerPage {
		perPage = MaxPerPage
	}
	return page, perPage
}

// NewPagination creates Pagination with computed total_pages and the
// nullable prev/next page pointers
func NewPagination(page, perPage int, total int64) *Pagination {
	totalPages := total / int64(perPage)
	if total%int64(perPage) > 0 {
		totalPages++
	}

	p := &Pagination{
		Page:       page,
		PerPage:    perPage,
		Total:      total,
		TotalPages: totalPages,
		HasPrev:    page > 1,
		HasNext:    int64(page) < totalPages,
	}
	if p.HasPrev {
		prev := page - 1
		p.PrevPage = &prev
	}
	if p.HasNext {
		next := page + 1
		p.NextPage = &next
	}
	return p
}
