package apirecordsv1

import (
	"github.com/fulldump/box"

	"github.com/fulldump/recordlist/service"
)

func BuildV1Records(v1 *box.R, s service.Servicer) *box.R {

	records := v1.Resource("/records").
		WithInterceptors(
			injectServicer(s),
		).
		WithActions(
			box.Get(listRecords),
			box.Post(createRecord),
			box.ActionPost(search).WithName("search"),
			box.ActionPost(sortRecords).WithName("sort"),
			box.ActionPost(pageSize).WithName("pageSize"),
			box.ActionPost(nextPage).WithName("nextPage"),
			box.ActionPost(previousPage).WithName("previousPage"),
			box.ActionPost(load).WithName("load"),
		)

	v1.Resource("/records/{recordId}").
		WithActions(
			box.Get(getRecord),
			box.Patch(updateRecord),
			box.Delete(deleteRecord),
		)

	v1.Resource("/settings").
		WithInterceptors(
			injectServicer(s),
		).
		WithActions(
			box.Get(getSettings),
		)

	return records
}
