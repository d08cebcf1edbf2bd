package source

import (
	"context"
	"fmt"

	"github.com/SierraSoftworks/connor"

	"github.com/fulldump/recordlist/listing"
	"github.com/fulldump/recordlist/utils"
)

// Filtered drops every fetched record that does not match filter. Conditions use
// the wire field names (id, userId, title, body).
func Filtered(src listing.Source, filter map[string]interface{}) listing.Source {
	return Func(func(ctx context.Context) ([]listing.Record, error) {

		records, err := src.Fetch(ctx)
		if err != nil {
			return nil, err
		}

		result := make([]listing.Record, 0, len(records))
		for _, r := range records {
			fields := map[string]interface{}{}
			err := utils.Remarshal(toPost(r), &fields)
			if err != nil {
				return nil, fmt.Errorf("record %d: %w", r.ID, err)
			}
			match, err := connor.Match(filter, fields)
			if err != nil {
				return nil, fmt.Errorf("match: %w", err)
			}
			if match {
				result = append(result, r)
			}
		}

		return result, nil
	})
}
