package apirecordsv1

import (
	"context"

	"github.com/fulldump/recordlist/listing"
)

type sortRequest struct {
	Field listing.SortField `json:"field"`
	Order listing.SortOrder `json:"order"`
}

func sortRecords(ctx context.Context, input *sortRequest) (*listing.Page, error) {

	if input.Order == "" {
		input.Order = listing.Ascending
	}

	page, err := GetServicer(ctx).Sort(input.Field, input.Order)
	if err != nil {
		return nil, err
	}

	return &page, nil
}
