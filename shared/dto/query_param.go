package dto

const (
	SortDirAsc  = "ASC"
	SortDirDesc = "DESC"
)

// QueryParams drives ordering and row limits of repository reads. It is built by services,
// never from raw request input, since SortBy is written into the query as is.
type QueryParams struct {
	Limit   int    `json:"limit"    validate:"omitempty"`
	SortBy  string `json:"sort_by"  validate:"omitempty"`
	SortDir string `json:"sort_dir" validate:"omitempty,oneof=ASC DESC"`
}

func SortBy(column, dir string) QueryParams {
	return QueryParams{SortBy: column, SortDir: dir}
}
