package service

import (
	"fmt"
	"net/http"

	"github.com/fulldump/apitest"
	"github.com/fulldump/biff"

	"github.com/fulldump/recordlist/listing"
)

type JSON = map[string]interface{}

// AcceptanceRecords is the record set Acceptance expects to be loaded.
func AcceptanceRecords() []listing.Record {
	records := make([]listing.Record, 11)
	for i := range records {
		records[i] = listing.Record{
			ID:       i + 1,
			AuthorID: i%2 + 1,
			Title:    fmt.Sprintf("title %02d", i+1),
			Body:     fmt.Sprintf("body of record %02d", i+1),
		}
	}
	return records
}

func acceptanceRecord(id int) JSON {
	return JSON{
		"id":       id,
		"authorId": (id-1)%2 + 1,
		"title":    fmt.Sprintf("title %02d", id),
		"body":     fmt.Sprintf("body of record %02d", id),
	}
}

func acceptanceRecords(ids ...int) []JSON {
	result := []JSON{}
	for _, id := range ids {
		result = append(result, acceptanceRecord(id))
	}
	return result
}

func Acceptance(a *biff.A, apiRequest func(method, path string) *apitest.Request) {

	a.Alternative("List first page", func(a *biff.A) {
		resp := apiRequest("GET", "/records").Do()
		Save(resp, "List records", `
			Returns the current page window of the filtered and sorted records.
		`)

		biff.AssertEqual(resp.StatusCode, http.StatusOK)
		biff.AssertEqualJson(resp.BodyJson(), JSON{
			"records": acceptanceRecords(1, 2, 3, 4, 5, 6, 7, 8, 9, 10),
			"pagination": JSON{
				"currentPage": 1,
				"totalPages":  2,
				"totalItems":  11,
				"pageSize":    10,
			},
		})
	})

	a.Alternative("Next page", func(a *biff.A) {
		resp := apiRequest("POST", "/records:nextPage").Do()
		Save(resp, "Next page", ``)

		biff.AssertEqual(resp.StatusCode, http.StatusOK)
		biff.AssertEqualJson(resp.BodyJson(), JSON{
			"records": acceptanceRecords(11),
			"pagination": JSON{
				"currentPage": 2,
				"totalPages":  2,
				"totalItems":  11,
				"pageSize":    10,
			},
		})

		a.Alternative("Next page is clamped", func(a *biff.A) {
			resp := apiRequest("POST", "/records:nextPage").Do()
			biff.AssertEqual(resp.StatusCode, http.StatusOK)
			biff.AssertEqualJson(resp.BodyJsonMap()["pagination"].(JSON)["currentPage"], 2)
		})

		a.Alternative("Previous page", func(a *biff.A) {
			resp := apiRequest("POST", "/records:previousPage").Do()
			Save(resp, "Previous page", ``)

			biff.AssertEqual(resp.StatusCode, http.StatusOK)
			biff.AssertEqualJson(resp.BodyJsonMap()["pagination"].(JSON)["currentPage"], 1)
		})

		a.Alternative("Delete last record on last page", func(a *biff.A) {
			resp := apiRequest("DELETE", "/records/11").Do()
			Save(resp, "Delete record", `
				Deletes a record and returns the current page. The page only moves back when
				it no longer exists.
			`)

			biff.AssertEqual(resp.StatusCode, http.StatusOK)
			biff.AssertEqualJson(resp.BodyJson(), JSON{
				"records": acceptanceRecords(1, 2, 3, 4, 5, 6, 7, 8, 9, 10),
				"pagination": JSON{
					"currentPage": 1,
					"totalPages":  1,
					"totalItems":  10,
					"pageSize":    10,
				},
			})
		})

		a.Alternative("Sorting keeps the page", func(a *biff.A) {
			resp := apiRequest("POST", "/records:sort").
				WithBodyJson(JSON{"field": "id", "order": "desc"}).Do()

			biff.AssertEqual(resp.StatusCode, http.StatusOK)
			biff.AssertEqualJson(resp.BodyJson(), JSON{
				"records": acceptanceRecords(1),
				"pagination": JSON{
					"currentPage": 2,
					"totalPages":  2,
					"totalItems":  11,
					"pageSize":    10,
				},
			})
		})
	})

	a.Alternative("Search", func(a *biff.A) {
		resp := apiRequest("POST", "/records:search").
			WithBodyJson(JSON{"query": "TITLE 1"}).Do()
		Save(resp, "Search", `
			Case insensitive substring search over title and body. An empty query
			matches everything.
		`)

		biff.AssertEqual(resp.StatusCode, http.StatusOK)
		biff.AssertEqualJson(resp.BodyJson(), JSON{
			"records": acceptanceRecords(10, 11),
			"pagination": JSON{
				"currentPage": 1,
				"totalPages":  1,
				"totalItems":  2,
				"pageSize":    10,
			},
		})

		a.Alternative("Search without matches", func(a *biff.A) {
			resp := apiRequest("POST", "/records:search").
				WithBodyJson(JSON{"query": "nothing like this"}).Do()

			biff.AssertEqual(resp.StatusCode, http.StatusOK)
			biff.AssertEqualJson(resp.BodyJson(), JSON{
				"records": []JSON{},
				"pagination": JSON{
					"currentPage": 1,
					"totalPages":  1,
					"totalItems":  0,
					"pageSize":    10,
				},
			})
		})
	})

	a.Alternative("Sort by title descending", func(a *biff.A) {
		resp := apiRequest("POST", "/records:sort").
			WithBodyJson(JSON{"field": "title", "order": "desc"}).Do()
		Save(resp, "Sort", `
			Sortable fields are id, title, body and authorId. Text fields compare case
			insensitively. Order must be asc or desc.
		`)

		biff.AssertEqual(resp.StatusCode, http.StatusOK)
		biff.AssertEqualJson(resp.BodyJsonMap()["records"], acceptanceRecords(11, 10, 9, 8, 7, 6, 5, 4, 3, 2))
	})

	a.Alternative("Sort with bad order", func(a *biff.A) {
		resp := apiRequest("POST", "/records:sort").
			WithBodyJson(JSON{"field": "title", "order": "sideways"}).Do()

		biff.AssertEqual(resp.StatusCode, http.StatusBadRequest)
	})

	a.Alternative("Page size", func(a *biff.A) {
		resp := apiRequest("POST", "/records:pageSize").
			WithBodyJson(JSON{"pageSize": 5}).Do()
		Save(resp, "Page size", ``)

		biff.AssertEqual(resp.StatusCode, http.StatusOK)
		biff.AssertEqualJson(resp.BodyJsonMap()["pagination"], JSON{
			"currentPage": 1,
			"totalPages":  3,
			"totalItems":  11,
			"pageSize":    5,
		})
	})

	a.Alternative("Page size zero", func(a *biff.A) {
		resp := apiRequest("POST", "/records:pageSize").
			WithBodyJson(JSON{"pageSize": 0}).Do()

		biff.AssertEqual(resp.StatusCode, http.StatusBadRequest)
	})

	a.Alternative("Create record", func(a *biff.A) {
		resp := apiRequest("POST", "/records").
			WithBodyJson(JSON{"title": "  Brand new ", "body": "a fresh body text"}).Do()
		Save(resp, "Create record", `
			Title needs at least 3 characters and body at least 10, both trimmed.
		`)

		created := JSON{
			"id":       1000,
			"authorId": 1,
			"title":    "Brand new",
			"body":     "a fresh body text",
		}
		biff.AssertEqual(resp.StatusCode, http.StatusCreated)
		biff.AssertEqualJson(resp.BodyJson(), created)

		a.Alternative("Retrieve created record", func(a *biff.A) {
			resp := apiRequest("GET", "/records/1000").Do()
			Save(resp, "Retrieve record", ``)

			biff.AssertEqual(resp.StatusCode, http.StatusOK)
			biff.AssertEqualJson(resp.BodyJson(), created)
		})

		a.Alternative("List after create", func(a *biff.A) {
			resp := apiRequest("GET", "/records").Do()

			biff.AssertEqual(resp.StatusCode, http.StatusOK)
			biff.AssertEqualJson(resp.BodyJsonMap()["pagination"], JSON{
				"currentPage": 1,
				"totalPages":  2,
				"totalItems":  12,
				"pageSize":    10,
			})
		})
	})

	a.Alternative("Create record too short", func(a *biff.A) {
		resp := apiRequest("POST", "/records").
			WithBodyJson(JSON{"title": "ab", "body": "a fresh body text"}).Do()

		biff.AssertEqual(resp.StatusCode, http.StatusBadRequest)
	})

	a.Alternative("Update record", func(a *biff.A) {
		resp := apiRequest("PATCH", "/records/3").
			WithBodyJson(JSON{"title": "renamed", "body": "rewritten body"}).Do()
		Save(resp, "Update record", `
			Replaces title and body. Id, author and position are preserved.
		`)

		biff.AssertEqual(resp.StatusCode, http.StatusOK)
		biff.AssertEqualJson(resp.BodyJson(), JSON{
			"id":       3,
			"authorId": 1,
			"title":    "renamed",
			"body":     "rewritten body",
		})
	})

	a.Alternative("Update missing record", func(a *biff.A) {
		resp := apiRequest("PATCH", "/records/404").
			WithBodyJson(JSON{"title": "renamed", "body": "rewritten body"}).Do()

		biff.AssertEqual(resp.StatusCode, http.StatusNotFound)
	})

	a.Alternative("Retrieve missing record", func(a *biff.A) {
		resp := apiRequest("GET", "/records/404").Do()

		biff.AssertEqual(resp.StatusCode, http.StatusNotFound)
		biff.AssertEqualJson(resp.BodyJson(), JSON{
			"error": JSON{
				"message":     "record not found",
				"description": "record not found",
			},
		})
	})

	a.Alternative("Retrieve bad record id", func(a *biff.A) {
		resp := apiRequest("GET", "/records/abc").Do()

		biff.AssertEqual(resp.StatusCode, http.StatusBadRequest)
	})

	a.Alternative("Delete missing record", func(a *biff.A) {
		resp := apiRequest("DELETE", "/records/404").Do()

		biff.AssertEqual(resp.StatusCode, http.StatusNotFound)
	})

	a.Alternative("Settings", func(a *biff.A) {
		resp := apiRequest("GET", "/settings").Do()
		Save(resp, "Settings", ``)

		biff.AssertEqual(resp.StatusCode, http.StatusOK)
		biff.AssertEqualJson(resp.BodyJson(), JSON{
			"searchQuery":    "",
			"sortField":      "id",
			"sortOrder":      "asc",
			"pageSize":       10,
			"currentPage":    1,
			"total":          11,
			"status":         StatusOperating,
			"sortableFields": []string{"authorId", "body", "id", "title"},
		})
	})

	a.Alternative("Reload", func(a *biff.A) {
		apiRequest("POST", "/records").
			WithBodyJson(JSON{"title": "temporary", "body": "gone after reload"}).Do()

		resp := apiRequest("POST", "/records:load").Do()
		Save(resp, "Load", `
			Replaces every record with a fresh copy from the source and goes back to
			the first page.
		`)

		biff.AssertEqual(resp.StatusCode, http.StatusOK)
		biff.AssertEqualJson(resp.BodyJsonMap()["pagination"], JSON{
			"currentPage": 1,
			"totalPages":  2,
			"totalItems":  11,
			"pageSize":    10,
		})
	})
}
