package listing

import (
	"context"
	"errors"
	"testing"

	"github.com/fulldump/biff"
)

func TestNew_InvalidConfig(t *testing.T) {

	c := DefaultConfig()
	c.PageSize = 0
	_, err := New(c)
	biff.AssertTrue(errors.Is(err, ErrInvalidArgument))

	c = DefaultConfig()
	c.NextID = 0
	_, err = New(c)
	biff.AssertTrue(errors.Is(err, ErrInvalidArgument))

	c = DefaultConfig()
	c.SortOrder = "sideways"
	_, err = New(c)
	biff.AssertTrue(errors.Is(err, ErrInvalidArgument))
}

func TestCurrentPageData_BeforeLoad(t *testing.T) {

	e, err := New(DefaultConfig())
	biff.AssertNil(err)

	page := e.CurrentPageData()
	biff.AssertEqual(page.Records, []Record{})
	biff.AssertEqual(page.Pagination, Pagination{
		CurrentPage: 1,
		TotalPages:  1,
		TotalItems:  0,
		PageSize:    10,
	})
}

func TestLoad_Empty(t *testing.T) {

	e := Environment(t)

	page := e.CurrentPageData()
	biff.AssertEqual(page.Records, []Record{})
	biff.AssertEqual(page.Pagination, Pagination{
		CurrentPage: 1,
		TotalPages:  1,
		TotalItems:  0,
		PageSize:    10,
	})
}

func TestLoad_Failure(t *testing.T) {

	e := Environment(t, Record{ID: 1, AuthorID: 1, Title: "A", Body: "aaaaaaaaaa"})

	err := e.Load(context.Background(), failingSource())

	failure := &LoadFailure{}
	biff.AssertTrue(errors.As(err, &failure))
	biff.AssertTrue(errors.Is(err, errTransport))
	biff.AssertEqual(e.records, []Record{{ID: 1, AuthorID: 1, Title: "A", Body: "aaaaaaaaaa"}})
	biff.AssertEqual(ids(e.CurrentPageData().Records), []int{1})
}

func TestLoad_InvalidPayload(t *testing.T) {

	e := Environment(t, Record{ID: 7, Title: "kept"})

	err := e.Load(context.Background(), staticSource(
		Record{ID: 1, Title: "one"},
		Record{ID: 1, Title: "again"},
	))
	biff.AssertTrue(errors.Is(err, ErrInvalidPayload))

	err = e.Load(context.Background(), staticSource(Record{ID: 0, Title: "zero"}))
	biff.AssertTrue(errors.Is(err, ErrInvalidPayload))

	biff.AssertEqual(ids(e.records), []int{7})
}

func TestLoad_ReplacesAndResetsPage(t *testing.T) {

	e := Environment(t, sequentialRecords(25)...)
	e.NextPage()
	e.NextPage()
	biff.AssertEqual(e.CurrentPageData().Pagination.CurrentPage, 3)

	err := e.Load(context.Background(), staticSource(sequentialRecords(12)...))
	biff.AssertNil(err)

	page := e.CurrentPageData()
	biff.AssertEqual(page.Pagination.CurrentPage, 1)
	biff.AssertEqual(page.Pagination.TotalItems, 12)
	biff.AssertEqual(len(e.records), 12)
}

func TestLoad_KeepsSearchAndSorting(t *testing.T) {

	e := Environment(t, sequentialRecords(5)...)
	e.SetSearch("TITLE 0")
	biff.AssertNil(e.SetSorting(FieldID, Descending))

	err := e.Load(context.Background(), staticSource(sequentialRecords(12)...))
	biff.AssertNil(err)

	biff.AssertEqual(ids(e.CurrentPageData().Records), []int{9, 8, 7, 6, 5, 4, 3, 2, 1})
}

func TestLoad_RaisesNextID(t *testing.T) {

	e := Environment(t, Record{ID: 1500, Title: "server side"})

	r := e.AddRecord("local", "created locally")
	biff.AssertEqual(r.ID, 1501)
}

func TestLoad_Overlapping(t *testing.T) {

	e, _ := New(DefaultConfig())

	entered := make(chan struct{})
	release := make(chan struct{})
	slow := sourceFunc(func(ctx context.Context) ([]Record, error) {
		close(entered)
		<-release
		return []Record{{ID: 1, Title: "slow"}}, nil
	})

	done := make(chan *Snapshot)
	go func() {
		snapshot, _ := e.Fetch(context.Background(), slow)
		done <- snapshot
	}()

	<-entered
	_, err := e.Fetch(context.Background(), staticSource(Record{ID: 2}))
	biff.AssertTrue(errors.Is(err, ErrLoadInProgress))

	close(release)
	snapshot := <-done
	biff.AssertNotNil(snapshot)

	// fetched but not committed yet, the load is still in flight
	_, err = e.Fetch(context.Background(), staticSource(Record{ID: 2}))
	biff.AssertTrue(errors.Is(err, ErrLoadInProgress))

	e.Commit(snapshot)
	biff.AssertEqual(ids(e.CurrentPageData().Records), []int{1})

	biff.AssertNil(e.Load(context.Background(), staticSource(Record{ID: 2})))
	biff.AssertEqual(ids(e.CurrentPageData().Records), []int{2})
}

func TestLoad_FailedFetchEndsLoad(t *testing.T) {

	e, _ := New(DefaultConfig())

	_, err := e.Fetch(context.Background(), failingSource())
	biff.AssertNotNil(err)

	_, err = e.Fetch(context.Background(), staticSource(Record{ID: 1}, Record{ID: 1}))
	biff.AssertTrue(errors.Is(err, ErrInvalidPayload))

	biff.AssertNil(e.Load(context.Background(), staticSource(Record{ID: 1})))
}

func TestSetSearch(t *testing.T) {

	e := Environment(t,
		Record{ID: 1, Title: "Hello World", Body: "first"},
		Record{ID: 2, Title: "Other", Body: "says HELLO too"},
		Record{ID: 3, Title: "Nothing", Body: "here"},
	)

	e.SetSearch("HeLLo")
	biff.AssertEqual(ids(e.CurrentPageData().Records), []int{1, 2})
	biff.AssertEqual(e.Settings().SearchQuery, "hello")

	e.SetSearch("")
	biff.AssertEqual(ids(e.CurrentPageData().Records), []int{1, 2, 3})
}

func TestSetSearch_ResetsPage(t *testing.T) {

	e := Environment(t, sequentialRecords(30)...)
	e.NextPage()

	e.SetSearch("record")
	biff.AssertEqual(e.CurrentPageData().Pagination.CurrentPage, 1)
}

func TestSetSorting_StableTies(t *testing.T) {

	e := Environment(t,
		Record{ID: 1, Title: "b"},
		Record{ID: 2, Title: "A"},
		Record{ID: 3, Title: "a"},
		Record{ID: 4, Title: "B"},
	)

	biff.AssertNil(e.SetSorting(FieldTitle, Ascending))
	biff.AssertEqual(ids(e.CurrentPageData().Records), []int{2, 3, 1, 4})

	biff.AssertNil(e.SetSorting(FieldTitle, Descending))
	biff.AssertEqual(ids(e.CurrentPageData().Records), []int{1, 4, 2, 3})
}

func TestSetSorting_Numeric(t *testing.T) {

	e := Environment(t,
		Record{ID: 10, AuthorID: 2},
		Record{ID: 9, AuthorID: 1},
		Record{ID: 100, AuthorID: 2},
	)

	biff.AssertNil(e.SetSorting(FieldID, Ascending))
	biff.AssertEqual(ids(e.CurrentPageData().Records), []int{9, 10, 100})

	biff.AssertNil(e.SetSorting(FieldAuthorID, Descending))
	biff.AssertEqual(ids(e.CurrentPageData().Records), []int{10, 100, 9})
}

func TestSetSorting_UnknownField(t *testing.T) {

	e := Environment(t,
		Record{ID: 3, Title: "c"},
		Record{ID: 1, Title: "a"},
		Record{ID: 2, Title: "b"},
	)

	biff.AssertNil(e.SetSorting("color", Descending))
	biff.AssertEqual(ids(e.CurrentPageData().Records), []int{3, 1, 2})
	biff.AssertFalse(IsSortable("color"))
}

func TestSetSorting_InvalidOrder(t *testing.T) {

	e := Environment(t, sequentialRecords(3)...)

	err := e.SetSorting(FieldTitle, "up")
	biff.AssertTrue(errors.Is(err, ErrInvalidArgument))
	biff.AssertEqual(e.Settings().SortField, FieldID)
}

func TestSetSorting_KeepsPage(t *testing.T) {

	e := Environment(t, sequentialRecords(25)...)
	e.NextPage()

	biff.AssertNil(e.SetSorting(FieldID, Descending))

	page := e.CurrentPageData()
	biff.AssertEqual(page.Pagination.CurrentPage, 2)
	biff.AssertEqual(ids(page.Records), []int{15, 14, 13, 12, 11, 10, 9, 8, 7, 6})
}

func TestSetPageSize(t *testing.T) {

	e := Environment(t, sequentialRecords(25)...)
	e.NextPage()

	err := e.SetPageSize(0)
	biff.AssertTrue(errors.Is(err, ErrInvalidArgument))
	biff.AssertEqual(e.CurrentPageData().Pagination.CurrentPage, 2)

	biff.AssertNil(e.SetPageSize(4))
	page := e.CurrentPageData()
	biff.AssertEqual(page.Pagination, Pagination{
		CurrentPage: 1,
		TotalPages:  7,
		TotalItems:  25,
		PageSize:    4,
	})
	biff.AssertEqual(ids(page.Records), []int{1, 2, 3, 4})
}

func TestNavigation_Clamped(t *testing.T) {

	e := Environment(t, sequentialRecords(21)...)

	e.PreviousPage()
	biff.AssertEqual(e.CurrentPageData().Pagination.CurrentPage, 1)

	e.NextPage()
	e.NextPage()
	e.NextPage()
	page := e.CurrentPageData()
	biff.AssertEqual(page.Pagination.CurrentPage, 3)
	biff.AssertEqual(ids(page.Records), []int{21})

	e.PreviousPage()
	biff.AssertEqual(e.CurrentPageData().Pagination.CurrentPage, 2)
}

func TestNavigation_EmptyView(t *testing.T) {

	e := Environment(t)

	e.NextPage()
	biff.AssertEqual(e.CurrentPageData().Pagination.CurrentPage, 1)
}

func TestAddRecord(t *testing.T) {

	e := Environment(t, Record{ID: 1, AuthorID: 1, Title: "A", Body: "aaaaaaaaaa"})

	r := e.AddRecord("B", "bbbbbbbbbb")

	biff.AssertTrue(r.ID >= 1000)
	biff.AssertEqual(r.AuthorID, 1)
	biff.AssertEqual(e.records[0], r)
	biff.AssertEqual(ids(e.records), []int{r.ID, 1})
	biff.AssertEqual(e.CurrentPageData().Pagination.CurrentPage, 1)
}

func TestAddRecord_ResetsPage(t *testing.T) {

	e := Environment(t, sequentialRecords(15)...)
	e.NextPage()

	e.AddRecord("new", "brand new record")

	page := e.CurrentPageData()
	biff.AssertEqual(page.Pagination.CurrentPage, 1)
	biff.AssertEqual(page.Pagination.TotalItems, 16)
}

func TestAddRecord_IDsAreNeverReused(t *testing.T) {

	e := Environment(t)

	first := e.AddRecord("one", "first record")
	e.DeleteRecord(first.ID)
	second := e.AddRecord("two", "second record")

	biff.AssertEqual(first.ID, 1000)
	biff.AssertEqual(second.ID, 1001)
}

func TestUpdateRecord(t *testing.T) {

	e := Environment(t, sequentialRecords(3)...)

	ok := e.UpdateRecord(2, RecordUpdate{Title: "changed", Body: "changed body"})
	biff.AssertTrue(ok)

	r, found := e.GetRecord(2)
	biff.AssertTrue(found)
	biff.AssertEqual(r, Record{ID: 2, AuthorID: 2, Title: "changed", Body: "changed body"})
	biff.AssertEqual(ids(e.records), []int{1, 2, 3})

	biff.AssertFalse(e.UpdateRecord(99, RecordUpdate{Title: "x", Body: "y"}))
}

func TestUpdateRecord_KeepsPage(t *testing.T) {

	e := Environment(t, sequentialRecords(25)...)
	e.NextPage()

	e.UpdateRecord(12, RecordUpdate{Title: "renamed", Body: "still here"})
	biff.AssertEqual(e.CurrentPageData().Pagination.CurrentPage, 2)
}

func TestUpdateRecord_ClampsWhenLeavingFilter(t *testing.T) {

	e := Environment(t, sequentialRecords(11)...)
	e.SetSearch("record")
	e.NextPage()
	biff.AssertEqual(e.CurrentPageData().Pagination.CurrentPage, 2)

	e.UpdateRecord(11, RecordUpdate{Title: "y", Body: "x"})

	page := e.CurrentPageData()
	biff.AssertEqual(page.Pagination.TotalPages, 1)
	biff.AssertEqual(page.Pagination.CurrentPage, 1)
}

func TestDeleteRecord_LastItemOnLastPage(t *testing.T) {

	e := Environment(t, sequentialRecords(11)...)
	e.NextPage()
	biff.AssertEqual(ids(e.CurrentPageData().Records), []int{11})

	biff.AssertTrue(e.DeleteRecord(11))

	page := e.CurrentPageData()
	biff.AssertEqual(page.Pagination.TotalPages, 1)
	biff.AssertEqual(page.Pagination.CurrentPage, 1)
}

func TestDeleteRecord_KeepsLocality(t *testing.T) {

	e := Environment(t, sequentialRecords(25)...)
	e.NextPage()
	e.NextPage()

	biff.AssertTrue(e.DeleteRecord(5))

	page := e.CurrentPageData()
	biff.AssertEqual(page.Pagination.CurrentPage, 3)
	biff.AssertEqual(ids(page.Records), []int{22, 23, 24, 25})
}

func TestDeleteRecord_Absent(t *testing.T) {

	e := Environment(t, sequentialRecords(3)...)

	biff.AssertFalse(e.DeleteRecord(42))
	biff.AssertEqual(len(e.records), 3)
}

func TestGetRecord_IgnoresView(t *testing.T) {

	e := Environment(t, sequentialRecords(3)...)
	e.SetSearch("no record matches this")

	r, found := e.GetRecord(3)
	biff.AssertTrue(found)
	biff.AssertEqual(r.ID, 3)

	_, found = e.GetRecord(4)
	biff.AssertFalse(found)
}

func TestCurrentPageData_IsACopy(t *testing.T) {

	e := Environment(t, sequentialRecords(3)...)

	page := e.CurrentPageData()
	page.Records[0].Title = "mutated"

	biff.AssertEqual(e.CurrentPageData().Records[0].Title, "title 01")
}

func TestSortableFields(t *testing.T) {
	biff.AssertEqual(SortableFields(), []SortField{FieldAuthorID, FieldBody, FieldID, FieldTitle})
}
