package apirecordsv1

import (
	"context"

	"github.com/fulldump/recordlist/listing"
)

// load replaces every record with a fresh copy from the source. On failure the
// previous records stay in place, so calling it again is the retry.
func load(ctx context.Context) (*listing.Page, error) {

	s := GetServicer(ctx)

	err := s.Load(ctx)
	if err != nil {
		return nil, err
	}

	page := s.Page()
	return &page, nil
}
