package repositories

// DefaultPerPage is applied when the client sends no perPage parameter.
const DefaultPerPage = 10

// PageParams is a normalized page request. Use Normalized before deriving
// offsets so zero values fall back to page 1 / DefaultPerPage.
type PageParams struct {
	Page    int
	PerPage int
}

func (p PageParams) Normalized() PageParams {
	if p.Page < 1 {
		p.Page = 1
	}
	if p.PerPage < 1 {
		p.PerPage = DefaultPerPage
	}
	return p
}

func (p PageParams) Offset() int {
	return (p.Page - 1) * p.PerPage
}

// TotalPages is ceil(total/perPage); an empty result set has zero pages.
func TotalPages(total int64, perPage int) int {
	if perPage < 1 {
		perPage = DefaultPerPage
	}
	pages := total / int64(perPage)
	if total%int64(perPage) != 0 {
		pages++
	}
	return int(pages)
}
