package apirecordsv1

import (
	"context"

	"github.com/fulldump/recordlist/listing"
)

func getRecord(ctx context.Context) (*listing.Record, error) {

	id, err := getRecordID(ctx)
	if err != nil {
		return nil, err
	}

	record, err := GetServicer(ctx).GetRecord(id)
	if err != nil {
		return nil, err
	}

	return &record, nil
}
