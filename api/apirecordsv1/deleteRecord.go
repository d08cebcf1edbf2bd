package apirecordsv1

import (
	"context"

	"github.com/fulldump/recordlist/listing"
)

func deleteRecord(ctx context.Context) (*listing.Page, error) {

	id, err := getRecordID(ctx)
	if err != nil {
		return nil, err
	}

	s := GetServicer(ctx)

	err = s.DeleteRecord(id)
	if err != nil {
		return nil, err
	}

	page := s.Page()
	return &page, nil
}
