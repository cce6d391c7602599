package api

import (
	"errors"
	"fmt"
)

// ErrorKind classifies a failed fetch
type ErrorKind int

const (
	// KindTransport covers unreachable networks and non-2xx statuses
	KindTransport ErrorKind = iota
	// KindProtocol covers errors reported inside the GraphQL envelope
	KindProtocol
	// KindDecode covers bodies that do not match the expected shape
	KindDecode
)

func (k ErrorKind) String() string {
	switch k {
	case KindTransport:
		return "transport"
	case KindProtocol:
		return "protocol"
	case KindDecode:
		return "decode"
	default:
		return "unknown"
	}
}

// FetchError is the single error type returned by the gateway
type FetchError struct {
	Kind ErrorKind
	// Op names the query, e.g. GetCharacters
	Op string
	// StatusCode is set for transport errors caused by an HTTP status
	StatusCode int
	Message    string
	Err        error
}

func (e *FetchError) Error() string {
	switch e.Kind {
	case KindTransport:
		if e.StatusCode != 0 {
			return fmt.Sprintf("%s failed: server responded %d: %s", e.Op, e.StatusCode, e.Message)
		}
		return fmt.Sprintf("%s failed: network error: %s", e.Op, e.Message)
	case KindProtocol:
		return fmt.Sprintf("%s failed: %s", e.Op, e.Message)
	default:
		return fmt.Sprintf("%s failed: unexpected response: %s", e.Op, e.Message)
	}
}

func (e *FetchError) Unwrap() error {
	return e.Err
}

// KindOf returns the kind of a gateway error and whether err is one
func KindOf(err error) (ErrorKind, bool) {
	var fe *FetchError
	if errors.As(err, &fe) {
		return fe.Kind, true
	}
	return 0, false
}
