package listing

import (
	"cmp"
	"strings"

	"github.com/google/btree"

	"github.com/fulldump/recordlist/utils"
)

type SortField string

const (
	FieldID       SortField = "id"
	FieldTitle    SortField = "title"
	FieldBody     SortField = "body"
	FieldAuthorID SortField = "authorId"
)

type SortOrder string

const (
	Ascending  SortOrder = "asc"
	Descending SortOrder = "desc"
)

func (o SortOrder) Valid() bool {
	return o == Ascending || o == Descending
}

type comparator func(a, b *Record) int

var comparators = map[SortField]comparator{
	FieldID: func(a, b *Record) int {
		return cmp.Compare(a.ID, b.ID)
	},
	FieldAuthorID: func(a, b *Record) int {
		return cmp.Compare(a.AuthorID, b.AuthorID)
	},
	FieldTitle: func(a, b *Record) int {
		return compareFold(a.Title, b.Title)
	},
	FieldBody: func(a, b *Record) int {
		return compareFold(a.Body, b.Body)
	},
}

func compareFold(a, b string) int {
	return strings.Compare(strings.ToLower(a), strings.ToLower(b))
}

// unknown fields compare everything as equal
func comparatorFor(field SortField) comparator {
	if c, ok := comparators[field]; ok {
		return c
	}
	return func(a, b *Record) int { return 0 }
}

// SortableFields returns the known sort fields in lexical order.
func SortableFields() []SortField {
	return utils.SortedKeys(comparators)
}

func IsSortable(field SortField) bool {
	_, ok := comparators[field]
	return ok
}

type viewEntry struct {
	position int
	record   *Record
}

// buildView filters records by query and orders the matches. The position of each
// record in the authoritative slice is the last key of the ordering, which keeps
// ties in their original relative order for both sort orders.
func buildView(records []Record, query string, field SortField, order SortOrder) []Record {

	compare := comparatorFor(field)
	reverse := order == Descending

	tree := btree.NewG(32, func(a, b viewEntry) bool {
		c := compare(a.record, b.record)
		if reverse {
			c = -c
		}
		if c != 0 {
			return c < 0
		}
		return a.position < b.position
	})

	for i := range records {
		if !matches(&records[i], query) {
			continue
		}
		tree.ReplaceOrInsert(viewEntry{position: i, record: &records[i]})
	}

	view := make([]Record, 0, tree.Len())
	tree.Ascend(func(e viewEntry) bool {
		view = append(view, *e.record)
		return true
	})

	return view
}

// query is expected lower-cased already
func matches(r *Record, query string) bool {
	if query == "" {
		return true
	}
	return strings.Contains(strings.ToLower(r.Title), query) ||
		strings.Contains(strings.ToLower(r.Body), query)
}
