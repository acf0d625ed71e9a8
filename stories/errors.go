package stories

import "fmt"

// AggregationError fails a whole join because one item request failed.
type AggregationError struct {
	ID    int // first item that failed
	Total int // items requested
	Err   error
}

func (e *AggregationError) Error() string {
	return fmt.Sprintf("collecting %d items: item %d failed: %v", e.Total, e.ID, e.Err)
}

func (e *AggregationError) Unwrap() error { return e.Err }
