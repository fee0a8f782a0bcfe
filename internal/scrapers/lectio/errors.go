package lectio

import (
	"errors"
	"fmt"
)

type ErrorKind int

const (
	// KindTransport is a failed fetch: dns/connect/timeout or a non-2xx status.
	KindTransport ErrorKind = iota
	// KindSessionMissing is an authenticated operation invoked before a login.
	KindSessionMissing
	// KindTokenNotFound is a login page without the __EVENTVALIDATION field.
	KindTokenNotFound
	// KindSectionNotFound is an authenticated page missing its content container,
	// usually an expired session or changed markup.
	KindSectionNotFound
	// KindRowShapeMismatch is a table row with too few cells, it never leaves a scraper.
	KindRowShapeMismatch
	// KindParseFallback is a field rule that did not match, it never leaves a scraper.
	KindParseFallback
)

func (k ErrorKind) String() string {
	switch k {
	case KindTransport:
		return "transport"
	case KindSessionMissing:
		return "session missing"
	case KindTokenNotFound:
		return "token not found"
	case KindSectionNotFound:
		return "section not found"
	case KindRowShapeMismatch:
		return "row shape mismatch"
	case KindParseFallback:
		return "parse fallback"
	default:
		return fmt.Sprintf("ErrorKind(%d)", int(k))
	}
}

// Error is the error type returned by every Scraper operation.
type Error struct {
	Kind ErrorKind
	// Op is the operation that failed (ex. "schedule").
	Op string
	// Detail describes what was missing or which url failed.
	Detail string
	Err    error
}

func (e *Error) Error() string {
	msg := fmt.Sprintf("%s: %s", e.Op, e.Kind)
	if e.Detail != "" {
		msg += fmt.Sprintf(" (%s)", e.Detail)
	}
	if e.Err != nil {
		msg += fmt.Sprintf(": %s", e.Err.Error())
	}
	return msg
}

func (e *Error) Unwrap() error {
	return e.Err
}

// IsKind returns true if err (or anything it wraps) is an *Error of the given kind.
func IsKind(err error, kind ErrorKind) bool {
	var target *Error
	if !errors.As(err, &target) {
		return false
	}
	return target.Kind == kind
}

func transportError(op, url string, err error) error {
	return &Error{Kind: KindTransport, Op: op, Detail: url, Err: err}
}

func statusError(op, url string, status int) error {
	return &Error{Kind: KindTransport, Op: op, Detail: url, Err: fmt.Errorf("unexpected status %d", status)}
}

func sessionMissing(op string) error {
	return &Error{Kind: KindSessionMissing, Op: op, Detail: "log in first"}
}

func tokenNotFound(op string) error {
	return &Error{Kind: KindTokenNotFound, Op: op, Detail: "__EVENTVALIDATION"}
}

func sectionNotFound(op, selector string) error {
	return &Error{Kind: KindSectionNotFound, Op: op, Detail: selector}
}

func rowShapeMismatch(op string, cells, expected int) error {
	return &Error{
		Kind:   KindRowShapeMismatch,
		Op:     op,
		Detail: fmt.Sprintf("%d cells, expected at least %d", cells, expected),
	}
}

func parseFallback(op, field string) error {
	return &Error{Kind: KindParseFallback, Op: op, Detail: field}
}
