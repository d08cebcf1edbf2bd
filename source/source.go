package source

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"github.com/fulldump/recordlist/listing"
)

// Func turns a plain function into a listing.Source.
type Func func(ctx context.Context) ([]listing.Record, error)

func (f Func) Fetch(ctx context.Context) ([]listing.Record, error) {
	return f(ctx)
}

// post is the wire shape served by the remote source.
type post struct {
	ID     int    `json:"id"`
	UserID int    `json:"userId"`
	Title  string `json:"title"`
	Body   string `json:"body"`
}

func (p post) record() listing.Record {
	return listing.Record{
		ID:       p.ID,
		AuthorID: p.UserID,
		Title:    p.Title,
		Body:     p.Body,
	}
}

func toPost(r listing.Record) post {
	return post{
		ID:     r.ID,
		UserID: r.AuthorID,
		Title:  r.Title,
		Body:   r.Body,
	}
}

func fromPosts(posts []post) []listing.Record {
	records := make([]listing.Record, len(posts))
	for i, p := range posts {
		records[i] = p.record()
	}
	return records
}

type Config struct {
	URL     string
	File    string // takes precedence over URL
	Filter  map[string]interface{}
	Timeout time.Duration
}

func New(c *Config) (listing.Source, error) {

	var src listing.Source
	switch {
	case c.File != "":
		src = NewFile(c.File)
	case c.URL != "":
		src = NewHTTP(c.URL, &http.Client{Timeout: c.Timeout})
	default:
		return nil, fmt.Errorf("no source configured: set an url or a file")
	}

	if len(c.Filter) > 0 {
		src = Filtered(src, c.Filter)
	}

	return src, nil
}
