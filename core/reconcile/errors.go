package reconcile

import (
	"context"
	"errors"
)

var (
	// ErrMalformedDate marks a date field that is not a valid month/day/year date.
	ErrMalformedDate = errors.New("malformed date")

	// ErrUnknownStatus marks a status outside the source vocabulary.
	ErrUnknownStatus = errors.New("unknown status")

	// ErrInvalidRecord marks a row missing a required identity field.
	ErrInvalidRecord = errors.New("invalid record")

	// ErrRemoteCall marks a failed query, create or update against the remote store.
	ErrRemoteCall = errors.New("remote call failed")
)

// ErrorKind classifies a failed outcome.
type ErrorKind string

const (
	KindMalformedDate ErrorKind = "malformed_date"
	KindUnknownStatus ErrorKind = "unknown_status"
	KindInvalidRecord ErrorKind = "invalid_record"
	KindRemoteCall    ErrorKind = "remote_call"
	KindInterrupted   ErrorKind = "interrupted"
	KindOther         ErrorKind = "other"
)

// KindOf classifies an error.
func KindOf(err error) ErrorKind {
	switch {
	case err == nil:
		return ""
	case errors.Is(err, ErrMalformedDate):
		return KindMalformedDate
	case errors.Is(err, ErrUnknownStatus):
		return KindUnknownStatus
	case errors.Is(err, ErrInvalidRecord):
		return KindInvalidRecord
	case errors.Is(err, context.Canceled), errors.Is(err, context.DeadlineExceeded):
		return KindInterrupted
	case errors.Is(err, ErrRemoteCall):
		return KindRemoteCall
	default:
		return KindOther
	}
}
