package hn

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strings"
	"time"

	"hackerstories/types"
)

// errNullItem is returned when the item endpoint answers with JSON null,
// which is how the API reports an unknown id.
var errNullItem = errors.New("item body is null")

// Fetcher retrieves identifier lists and single stories. FetchItem returns
// either a non-nil story or an error.
type Fetcher interface {
	FetchIDs(ctx context.Context, listURL string) ([]int, error)
	FetchItem(ctx context.Context, id int) (*types.Story, error)
}

type httpClient struct {
	client      *http.Client
	itemBaseURL string
}

// NewClient creates a Fetcher issuing item requests under itemBaseURL
// (e.g. https://hacker-news.firebaseio.com/v0/item). A zero timeout keeps
// the client's own setting.
func NewClient(itemBaseURL string, timeout time.Duration) Fetcher {
	return NewClientWithHTTP(&http.Client{Timeout: timeout}, itemBaseURL)
}

// NewClientWithHTTP creates a Fetcher over an existing http.Client (for testing).
func NewClientWithHTTP(client *http.Client, itemBaseURL string) Fetcher {
	if client == nil {
		client = http.DefaultClient
	}
	return &httpClient{
		client:      client,
		itemBaseURL: strings.TrimRight(itemBaseURL, "/"),
	}
}

// FetchIDs fetches the identifier list at listURL.
func (c *httpClient) FetchIDs(ctx context.Context, listURL string) ([]int, error) {
	var ids []int
	if err := c.getJSON(ctx, listURL, &ids); err != nil {
		err.Op = OpList
		return nil, err
	}
	return ids, nil
}

// FetchItem fetches one story from <itemBaseURL>/<id>.json.
func (c *httpClient) FetchItem(ctx context.Context, id int) (*types.Story, error) {
	url := fmt.Sprintf("%s/%d.json", c.itemBaseURL, id)

	var story *types.Story
	if err := c.getJSON(ctx, url, &story); err != nil {
		err.Op = OpItem
		err.ID = id
		return nil, err
	}
	if story == nil {
		return nil, &TransportError{Op: OpItem, URL: url, ID: id, StatusCode: http.StatusOK, Err: errNullItem}
	}
	return story, nil
}

func (c *httpClient) getJSON(ctx context.Context, url string, out any) *TransportError {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return &TransportError{URL: url, Err: fmt.Errorf("creating request: %w", err)}
	}
	req.Header.Set("Accept", "application/json")

	resp, err := c.client.Do(req)
	if err != nil {
		return &TransportError{URL: url, Err: err}
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return &TransportError{URL: url, StatusCode: resp.StatusCode}
	}

	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return &TransportError{URL: url, StatusCode: resp.StatusCode, Err: fmt.Errorf("decoding body: %w", err)}
	}
	return nil
}
