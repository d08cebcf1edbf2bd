package apirecordsv1

import (
	"context"

	"github.com/fulldump/recordlist/listing"
)

type searchRequest struct {
	Query string `json:"query"`
}

func search(ctx context.Context, input *searchRequest) (*listing.Page, error) {

	page := GetServicer(ctx).Search(input.Query)

	return &page, nil
}
