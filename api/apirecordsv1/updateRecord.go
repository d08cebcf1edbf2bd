package apirecordsv1

import (
	"context"

	"github.com/fulldump/recordlist/listing"
)

func updateRecord(ctx context.Context, input *recordRequest) (*listing.Record, error) {

	id, err := getRecordID(ctx)
	if err != nil {
		return nil, err
	}

	err = input.normalize()
	if err != nil {
		return nil, err
	}

	record, err := GetServicer(ctx).UpdateRecord(id, listing.RecordUpdate{
		Title: input.Title,
		Body:  input.Body,
	})
	if err != nil {
		return nil, err
	}

	return &record, nil
}
