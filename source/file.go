package source

import (
	"context"
	"fmt"
	"os"

	"github.com/go-json-experiment/json"

	"github.com/fulldump/recordlist/listing"
)

// File reads the remote wire format from a local JSON file.
type File struct {
	filename string
}

func NewFile(filename string) *File {
	return &File{filename: filename}
}

func (f *File) Fetch(ctx context.Context) ([]listing.Record, error) {

	if err := ctx.Err(); err != nil {
		return nil, err
	}

	data, err := os.ReadFile(f.filename)
	if err != nil {
		return nil, fmt.Errorf("read file: %w", err)
	}

	posts := []post{}
	if err := json.Unmarshal(data, &posts); err != nil {
		return nil, fmt.Errorf("decode '%s': %w", f.filename, err)
	}

	return fromPosts(posts), nil
}
