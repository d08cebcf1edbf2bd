package api

import (
	"net/http"

	"github.com/fulldump/box"
	"github.com/fulldump/box/boxopenapi"

	"github.com/fulldump/recordlist/api/apirecordsv1"
	"github.com/fulldump/recordlist/service"
)

func Build(s service.Servicer, version, apiKey, apiSecret string) *box.B {

	b := box.NewBox()

	v1 := b.Resource("/v1")
	v1.WithInterceptors(
		Authenticate(apiKey, apiSecret),
	)

	apirecordsv1.BuildV1Records(v1, s).
		WithInterceptors(
			InterceptorUnavailable(s),
		)

	b.Resource("/release").
		WithActions(box.Get(func() string {
			return version
		}))

	spec := boxopenapi.Spec(b)
	spec.Info.Title = "recordlist"
	spec.Info.Description = "Browse, search, sort, paginate and edit a collection of records."
	spec.Info.Version = version
	spec.Info.Contact = &boxopenapi.Contact{
		Url: "https://github.com/fulldump/recordlist/issues/new",
	}
	b.Resource("/openapi.json").
		WithActions(box.Get(func(r *http.Request) any {
			s := spec
			s.Servers = []boxopenapi.Server{
				{
					Url: "https://" + r.Host,
				},
				{
					Url: "http://" + r.Host,
				},
			}
			return s
		}))

	return b
}
