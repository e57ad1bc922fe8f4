package sheet

import (
	"errors"
	"fmt"
)

// FailKind classifies why a sheet endpoint call failed. Callers branch on
// the kind, not on error strings.
type FailKind string

const (
	// FailOffline: connectivity was known to be absent; no request (or
	// retry) was attempted.
	FailOffline FailKind = "OFFLINE"
	// FailTransport: network-level failure after the bounded retry.
	FailTransport FailKind = "TRANSPORT_ERROR"
	// FailServerFault: the backend answered with an HTML error document
	// instead of JSON (Apps Script's failure mode for server exceptions).
	FailServerFault FailKind = "SERVER_FAULT"
	// FailApplication: well-formed JSON carrying status "error".
	FailApplication FailKind = "APPLICATION_ERROR"
	// FailMalformed: response was neither HTML nor parseable JSON.
	FailMalformed FailKind = "MALFORMED_RESPONSE"
)

// Error is the typed failure every client call returns. Callers never see
// a partially-parsed result: either the payload parses cleanly or the
// call fails with one of the kinds above.
type Error struct {
	Kind    FailKind
	Action  string
	Message string
	Err     error
}

func (e *Error) Error() string {
	msg := e.Message
	if msg == "" && e.Err != nil {
		msg = e.Err.Error()
	}
	return fmt.Sprintf("sheet %s: %s: %s", e.Action, e.Kind, msg)
}

func (e *Error) Unwrap() error { return e.Err }

// KindOf extracts the failure kind from an error chain.
func KindOf(err error) (FailKind, bool) {
	var se *Error
	if errors.As(err, &se) {
		return se.Kind, true
	}
	return "", false
}
