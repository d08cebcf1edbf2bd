package listing

import (
	"context"
	"fmt"
	"slices"
	"strings"
	"sync/atomic"
)

type Config struct {
	PageSize  int
	NextID    int // first id issued to locally created records
	AuthorID  int // author assigned to locally created records
	SortField SortField
	SortOrder SortOrder
}

func DefaultConfig() Config {
	return Config{
		PageSize:  10,
		NextID:    1000,
		AuthorID:  1,
		SortField: FieldID,
		SortOrder: Ascending,
	}
}

// Engine holds a record set and its filtered, sorted and paginated view.
//
// It is not safe for concurrent use: callers serialise every call. The only
// exception is Fetch, which touches nothing but the in-flight load guard.
type Engine struct {
	records []Record
	view    []Record

	searchQuery string
	sortField   SortField
	sortOrder   SortOrder
	pageSize    int
	currentPage int

	nextID   int
	authorID int

	loading atomic.Bool
}

func New(config Config) (*Engine, error) {

	if config.PageSize < 1 {
		return nil, fmt.Errorf("%w: page size must be at least 1, got %d", ErrInvalidArgument, config.PageSize)
	}
	if config.NextID < 1 {
		return nil, fmt.Errorf("%w: next id must be positive, got %d", ErrInvalidArgument, config.NextID)
	}
	if config.SortOrder == "" {
		config.SortOrder = Ascending
	}
	if !config.SortOrder.Valid() {
		return nil, fmt.Errorf("%w: sort order '%s'", ErrInvalidArgument, config.SortOrder)
	}
	if config.SortField == "" {
		config.SortField = FieldID
	}

	e := &Engine{
		records:     []Record{},
		view:        []Record{},
		sortField:   config.SortField,
		sortOrder:   config.SortOrder,
		pageSize:    config.PageSize,
		currentPage: 1,
		nextID:      config.NextID,
		authorID:    config.AuthorID,
	}

	return e, nil
}

// Snapshot is a validated record set fetched from a Source, ready to Commit.
type Snapshot struct {
	records []Record
	maxID   int
}

func (s *Snapshot) Len() int {
	return len(s.records)
}

// Fetch runs the remote half of a load. A load is in flight from Fetch until its
// snapshot is committed; any Fetch started meanwhile fails with ErrLoadInProgress.
// A failed Fetch ends the load on its own.
func (e *Engine) Fetch(ctx context.Context, src Source) (snapshot *Snapshot, err error) {

	if !e.loading.CompareAndSwap(false, true) {
		return nil, ErrLoadInProgress
	}
	defer func() {
		if err != nil {
			e.loading.Store(false)
		}
	}()

	records, err := src.Fetch(ctx)
	if err != nil {
		return nil, &LoadFailure{Err: err}
	}

	snapshot = &Snapshot{
		records: make([]Record, 0, len(records)),
	}
	seen := make(map[int]struct{}, len(records))
	for _, r := range records {
		if r.ID < 1 {
			return nil, &LoadFailure{Err: fmt.Errorf("%w: record id %d is not positive", ErrInvalidPayload, r.ID)}
		}
		if _, exists := seen[r.ID]; exists {
			return nil, &LoadFailure{Err: fmt.Errorf("%w: duplicated record id %d", ErrInvalidPayload, r.ID)}
		}
		seen[r.ID] = struct{}{}
		snapshot.maxID = max(snapshot.maxID, r.ID)
		snapshot.records = append(snapshot.records, r)
	}

	return snapshot, nil
}

// Commit replaces the whole record set with a fetched snapshot and ends the load.
func (e *Engine) Commit(s *Snapshot) {

	defer e.loading.Store(false)

	e.records = slices.Clone(s.records)
	if s.maxID >= e.nextID {
		e.nextID = s.maxID + 1
	}
	e.currentPage = 1
	e.refresh()
}

func (e *Engine) Load(ctx context.Context, src Source) error {

	snapshot, err := e.Fetch(ctx, src)
	if err != nil {
		return err
	}

	e.Commit(snapshot)

	return nil
}

func (e *Engine) SetSearch(query string) {
	e.searchQuery = strings.ToLower(query)
	e.currentPage = 1
	e.refresh()
}

// SetSorting keeps the current page. Fields outside SortableFields are accepted
// and leave the order untouched.
func (e *Engine) SetSorting(field SortField, order SortOrder) error {

	if !order.Valid() {
		return fmt.Errorf("%w: sort order '%s', must be [%s|%s]", ErrInvalidArgument, order, Ascending, Descending)
	}

	e.sortField = field
	e.sortOrder = order
	e.refresh()

	return nil
}

func (e *Engine) SetPageSize(n int) error {

	if n < 1 {
		return fmt.Errorf("%w: page size must be at least 1, got %d", ErrInvalidArgument, n)
	}

	e.pageSize = n
	e.currentPage = 1

	return nil
}

func (e *Engine) PreviousPage() {
	if e.currentPage > 1 {
		e.currentPage--
	}
}

func (e *Engine) NextPage() {
	if e.currentPage < e.totalPages() {
		e.currentPage++
	}
}

func (e *Engine) CurrentPageData() Page {

	start := min((e.currentPage-1)*e.pageSize, len(e.view))
	end := min(start+e.pageSize, len(e.view))

	records := make([]Record, end-start)
	copy(records, e.view[start:end])

	return Page{
		Records: records,
		Pagination: Pagination{
			CurrentPage: e.currentPage,
			TotalPages:  e.totalPages(),
			TotalItems:  len(e.view),
			PageSize:    e.pageSize,
		},
	}
}

// AddRecord stores a new record at the front of the record set and jumps back to
// the first page.
func (e *Engine) AddRecord(title, body string) Record {

	r := Record{
		ID:       e.nextID,
		AuthorID: e.authorID,
		Title:    title,
		Body:     body,
	}
	e.nextID++

	e.records = slices.Insert(e.records, 0, r)
	e.currentPage = 1
	e.refresh()

	return r
}

func (e *Engine) UpdateRecord(id int, update RecordUpdate) bool {

	i := e.indexOf(id)
	if i < 0 {
		return false
	}

	e.records[i].Title = update.Title
	e.records[i].Body = update.Body
	e.refresh()

	return true
}

func (e *Engine) DeleteRecord(id int) bool {

	i := e.indexOf(id)
	if i < 0 {
		return false
	}

	e.records = slices.Delete(e.records, i, i+1)
	e.refresh()

	return true
}

// GetRecord looks up the authoritative record set, ignoring search and sorting.
func (e *Engine) GetRecord(id int) (Record, bool) {
	i := e.indexOf(id)
	if i < 0 {
		return Record{}, false
	}
	return e.records[i], true
}

func (e *Engine) Settings() Settings {
	return Settings{
		SearchQuery: e.searchQuery,
		SortField:   e.sortField,
		SortOrder:   e.sortOrder,
		PageSize:    e.pageSize,
		CurrentPage: e.currentPage,
		Total:       len(e.records),
	}
}

func (e *Engine) indexOf(id int) int {
	return slices.IndexFunc(e.records, func(r Record) bool {
		return r.ID == id
	})
}

func (e *Engine) totalPages() int {
	pages := (len(e.view) + e.pageSize - 1) / e.pageSize
	return max(pages, 1)
}

// refresh recomputes the view and pulls currentPage back into range. It never
// moves the page forward.
func (e *Engine) refresh() {
	e.view = buildView(e.records, e.searchQuery, e.sortField, e.sortOrder)
	if total := e.totalPages(); e.currentPage > total {
		e.currentPage = total
	}
}
