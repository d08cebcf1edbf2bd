package api

import (
	"context"
	"testing"

	"github.com/fulldump/apitest"
	"github.com/fulldump/biff"

	"github.com/fulldump/recordlist/listing"
	"github.com/fulldump/recordlist/service"
	"github.com/fulldump/recordlist/source"
)

func TestAcceptance(t *testing.T) {

	biff.Alternative("Setup", func(a *biff.A) {

		engine, err := listing.New(listing.DefaultConfig())
		biff.AssertNil(err)

		s := service.NewService(engine, source.Func(func(ctx context.Context) ([]listing.Record, error) {
			return service.AcceptanceRecords(), nil
		}))
		biff.AssertNil(s.Load(context.Background()))
		biff.AssertEqual(s.Status(), service.StatusOperating)

		b := Build(s, "", "", "")
		b.WithInterceptors(
			PrettyErrorInterceptor,
			RecoverFromPanic,
		)

		api := apitest.NewWithHandler(b)

		service.Acceptance(a, func(method, path string) *apitest.Request {
			return api.Request(method, "/v1"+path)
		})

	})
}
