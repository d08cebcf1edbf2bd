package listing

import (
	"context"
	"errors"
	"fmt"
	"testing"
)

type sourceFunc func(ctx context.Context) ([]Record, error)

func (f sourceFunc) Fetch(ctx context.Context) ([]Record, error) {
	return f(ctx)
}

func staticSource(records ...Record) Source {
	return sourceFunc(func(ctx context.Context) ([]Record, error) {
		return records, nil
	})
}

var errTransport = errors.New("connection refused")

func failingSource() Source {
	return sourceFunc(func(ctx context.Context) ([]Record, error) {
		return nil, errTransport
	})
}

func sequentialRecords(n int) []Record {
	records := make([]Record, n)
	for i := range records {
		records[i] = Record{
			ID:       i + 1,
			AuthorID: i%3 + 1,
			Title:    fmt.Sprintf("title %02d", i+1),
			Body:     fmt.Sprintf("body of record %02d", i+1),
		}
	}
	return records
}

// Environment returns a default engine loaded with records.
func Environment(t *testing.T, records ...Record) *Engine {

	t.Helper()

	e, err := New(DefaultConfig())
	if err != nil {
		t.Fatalf("new engine: %v", err)
	}

	if err := e.Load(context.Background(), staticSource(records...)); err != nil {
		t.Fatalf("load: %v", err)
	}

	return e
}

func ids(records []Record) []int {
	result := make([]int, len(records))
	for i, r := range records {
		result[i] = r.ID
	}
	return result
}
