package apirecordsv1

import (
	"context"

	"github.com/fulldump/recordlist/listing"
)

func nextPage(ctx context.Context) (*listing.Page, error) {
	page := GetServicer(ctx).NextPage()
	return &page, nil
}

func previousPage(ctx context.Context) (*listing.Page, error) {
	page := GetServicer(ctx).PreviousPage()
	return &page, nil
}
