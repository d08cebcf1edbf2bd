package listing

import "context"

type Record struct {
	ID       int    `json:"id"`
	AuthorID int    `json:"authorId"`
	Title    string `json:"title"`
	Body     string `json:"body"`
}

type RecordUpdate struct {
	Title string `json:"title"`
	Body  string `json:"body"`
}

// Source fetches the full record set in one shot.
type Source interface {
	Fetch(ctx context.Context) ([]Record, error)
}

type Pagination struct {
	CurrentPage int `json:"currentPage"`
	TotalPages  int `json:"totalPages"`
	TotalItems  int `json:"totalItems"`
	PageSize    int `json:"pageSize"`
}

type Page struct {
	Records    []Record   `json:"records"`
	Pagination Pagination `json:"pagination"`
}

type Settings struct {
	SearchQuery string    `json:"searchQuery"`
	SortField   SortField `json:"sortField"`
	SortOrder   SortOrder `json:"sortOrder"`
	PageSize    int       `json:"pageSize"`
	CurrentPage int       `json:"currentPage"`
	Total       int       `json:"total"`
}
