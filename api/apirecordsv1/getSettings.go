package apirecordsv1

import (
	"context"

	"github.com/fulldump/recordlist/listing"
)

type SettingsResponse struct {
	listing.Settings
	Status         string              `json:"status"`
	SortableFields []listing.SortField `json:"sortableFields"`
}

func getSettings(ctx context.Context) (*SettingsResponse, error) {

	s := GetServicer(ctx)

	return &SettingsResponse{
		Settings:       s.Settings(),
		Status:         s.Status(),
		SortableFields: listing.SortableFields(),
	}, nil
}
