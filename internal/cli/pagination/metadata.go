package pagination

// Meta describes a paged result in JSON output.
type Meta struct {
	CurrentPage int  `json:"current_page"`
	PageSize    int  `json:"page_size"`
	TotalPages  int  `json:"total_pages"`
	TotalItems  int  `json:"total_items"`
	HasPrevious bool `json:"has_previous"`
	HasNext     bool `json:"has_next"`
}

// NewMeta computes paging metadata for total items.
func NewMeta(p Params, total int) Meta {
	pageSize := p.PageSize
	if pageSize == 0 && p.Limit > 0 {
		pageSize = p.Limit
	}
	if pageSize == 0 {
		pageSize = total
	}

	current := p.Page
	if current == 0 && p.Offset > 0 && pageSize > 0 {
		current = p.Offset/pageSize + 1
	}
	if current == 0 {
		current = 1
	}

	totalPages := 0
	if pageSize > 0 {
		totalPages = (total + pageSize - 1) / pageSize
	}

	return Meta{
		CurrentPage: current,
		PageSize:    pageSize,
		TotalPages:  totalPages,
		TotalItems:  total,
		HasPrevious: current > 1,
		HasNext:     current < totalPages,
	}
}
