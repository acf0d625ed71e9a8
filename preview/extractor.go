// Package preview extracts the readable text of a story's linked article.
package preview

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"strings"
	"time"

	readability "github.com/go-shiori/go-readability"
)

// ErrNoURL is returned for stories that link nowhere (Ask HN, jobs)
var ErrNoURL = errors.New("story has no article URL")

// Preview is the readable part of an article.
type Preview struct {
	URL       string
	Title     string
	Byline    string
	Excerpt   string
	Text      string
	Truncated bool
}

// Extractor downloads pages and runs readability over them.
type Extractor struct {
	client   *http.Client
	maxChars int
}

// NewExtractor creates an Extractor. maxChars <= 0 keeps the full text.
func NewExtractor(timeout time.Duration, maxChars int) *Extractor {
	return NewExtractorWithClient(&http.Client{Timeout: timeout}, maxChars)
}

// NewExtractorWithClient creates an Extractor over an existing client.
func NewExtractorWithClient(client *http.Client, maxChars int) *Extractor {
	if client == nil {
		client = http.DefaultClient
	}
	return &Extractor{client: client, maxChars: maxChars}
}

// Extract fetches rawURL and returns its readable content.
func (e *Extractor) Extract(ctx context.Context, rawURL string) (*Preview, error) {
	if strings.TrimSpace(rawURL) == "" {
		return nil, ErrNoURL
	}
	pageURL, err := url.Parse(rawURL)
	if err != nil {
		return nil, fmt.Errorf("parsing article URL: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, pageURL.String(), nil)
	if err != nil {
		return nil, fmt.Errorf("creating article request: %w", err)
	}
	req.Header.Set("Accept", "text/html,application/xhtml+xml")

	resp, err := e.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("fetching article: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, fmt.Errorf("article returned status %d", resp.StatusCode)
	}

	article, err := readability.FromReader(resp.Body, pageURL)
	if err != nil {
		return nil, fmt.Errorf("readability extraction failed: %w", err)
	}

	text, truncated := truncate(collapseSpace(article.TextContent), e.maxChars)
	return &Preview{
		URL:       rawURL,
		Title:     strings.TrimSpace(article.Title),
		Byline:    strings.TrimSpace(article.Byline),
		Excerpt:   collapseSpace(article.Excerpt),
		Text:      text,
		Truncated: truncated,
	}, nil
}

func collapseSpace(s string) string {
	return strings.Join(strings.Fields(s), " ")
}

// truncate cuts s to at most max runes.
func truncate(s string, max int) (string, bool) {
	if max <= 0 {
		return s, false
	}
	runes := []rune(s)
	if len(runes) <= max {
		return s, false
	}
	return strings.TrimSpace(string(runes[:max])), true
}
