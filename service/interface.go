package service

import (
	"context"
	"errors"

	"github.com/fulldump/recordlist/listing"
)

var ErrorRecordNotFound = errors.New("record not found")

type Servicer interface {
	Load(ctx context.Context) error
	Status() string

	Page() listing.Page
	Settings() listing.Settings

	Search(query string) listing.Page
	Sort(field listing.SortField, order listing.SortOrder) (listing.Page, error)
	SetPageSize(n int) (listing.Page, error)
	NextPage() listing.Page
	PreviousPage() listing.Page

	CreateRecord(title, body string) (listing.Record, error)
	GetRecord(id int) (listing.Record, error)
	UpdateRecord(id int, update listing.RecordUpdate) (listing.Record, error)
	DeleteRecord(id int) error
}
