package hn

import (
	"fmt"
	"strings"
)

// TransportError reports a failed list or item request: network failure,
// timeout, non-2xx status or a body that does not decode.
type TransportError struct {
	Op         string // "list" or "item"
	URL        string
	ID         int // item id, zero for list requests
	StatusCode int // zero when no response was received
	Err        error
}

func (e *TransportError) Error() string {
	var b strings.Builder
	b.WriteString("hn ")
	b.WriteString(e.Op)
	if e.Op == OpItem {
		fmt.Fprintf(&b, " %d", e.ID)
	}
	fmt.Fprintf(&b, " %s", e.URL)
	if e.StatusCode != 0 {
		fmt.Fprintf(&b, ": status %d", e.StatusCode)
	}
	if e.Err != nil {
		b.WriteString(": ")
		b.WriteString(e.Err.Error())
	}
	return b.String()
}

func (e *TransportError) Unwrap() error { return e.Err }

// Request kinds carried in TransportError.Op
const (
	OpList = "list"
	OpItem = "item"
)
