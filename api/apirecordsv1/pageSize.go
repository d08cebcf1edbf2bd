package apirecordsv1

import (
	"context"

	"github.com/fulldump/recordlist/listing"
)

type pageSizeRequest struct {
	PageSize int `json:"pageSize"`
}

func pageSize(ctx context.Context, input *pageSizeRequest) (*listing.Page, error) {

	page, err := GetServicer(ctx).SetPageSize(input.PageSize)
	if err != nil {
		return nil, err
	}

	return &page, nil
}
