package source

import (
	"context"
	"fmt"
	"net/http"
	"strconv"

	"github.com/go-json-experiment/json"

	"github.com/fulldump/recordlist/listing"
)

type StatusError struct {
	Code int
}

func (e *StatusError) Error() string {
	return "unexpected status " + strconv.Itoa(e.Code) + " " + http.StatusText(e.Code)
}

type HTTP struct {
	url        string
	httpClient *http.Client
}

func NewHTTP(url string, client *http.Client) *HTTP {
	if client == nil {
		client = http.DefaultClient
	}
	return &HTTP{
		url:        url,
		httpClient: client,
	}
}

func (h *HTTP) Fetch(ctx context.Context) ([]listing.Record, error) {

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, h.url, nil)
	if err != nil {
		return nil, fmt.Errorf("creating request: %w", err)
	}
	req.Header.Set("Accept", "application/json")

	resp, err := h.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("requesting records: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, &StatusError{Code: resp.StatusCode}
	}

	posts := []post{}
	if err := json.UnmarshalRead(resp.Body, &posts); err != nil {
		return nil, fmt.Errorf("decoding response: %w", err)
	}

	return fromPosts(posts), nil
}
