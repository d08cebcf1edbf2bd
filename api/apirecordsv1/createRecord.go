package apirecordsv1

import (
	"context"
	"net/http"

	"github.com/fulldump/recordlist/listing"
)

func createRecord(ctx context.Context, w http.ResponseWriter, input *recordRequest) (*listing.Record, error) {

	err := input.normalize()
	if err != nil {
		return nil, err
	}

	record, err := GetServicer(ctx).CreateRecord(input.Title, input.Body)
	if err != nil {
		return nil, err
	}

	w.WriteHeader(http.StatusCreated)
	return &record, nil
}
