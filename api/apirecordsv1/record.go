package apirecordsv1

import (
	"context"
	"fmt"
	"strconv"
	"strings"
	"unicode/utf8"

	"github.com/fulldump/box"

	"github.com/fulldump/recordlist/listing"
)

const (
	minTitleLength = 3
	minBodyLength  = 10
)

type recordRequest struct {
	Title string `json:"title"`
	Body  string `json:"body"`
}

// normalize trims both fields and enforces the minimum lengths the editor form used.
func (r *recordRequest) normalize() error {

	r.Title = strings.TrimSpace(r.Title)
	r.Body = strings.TrimSpace(r.Body)

	if utf8.RuneCountInString(r.Title) < minTitleLength {
		return fmt.Errorf("%w: title must be at least %d characters", listing.ErrInvalidArgument, minTitleLength)
	}
	if utf8.RuneCountInString(r.Body) < minBodyLength {
		return fmt.Errorf("%w: body must be at least %d characters", listing.ErrInvalidArgument, minBodyLength)
	}

	return nil
}

func getRecordID(ctx context.Context) (int, error) {
	param := box.GetUrlParameter(ctx, "recordId")
	id, err := strconv.Atoi(param)
	if err != nil || id < 1 {
		return 0, fmt.Errorf("%w: bad record id '%s'", listing.ErrInvalidArgument, param)
	}
	return id, nil
}
