package apirecordsv1

import (
	"context"

	"github.com/fulldump/recordlist/listing"
)

func listRecords(ctx context.Context) (*listing.Page, error) {

	page := GetServicer(ctx).Page()

	return &page, nil
}
