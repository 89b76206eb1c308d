package pokeapi

import "fmt"

// ErrorKind tells network failures, bad statuses and malformed bodies apart.
type ErrorKind string

const (
	// KindNetwork covers transport failures, timeouts and cancellation.
	KindNetwork ErrorKind = "network"
	// KindHTTPStatus is a response with a non-2xx status code.
	KindHTTPStatus ErrorKind = "http-status"
	// KindParse is a response whose body is not the expected JSON.
	KindParse ErrorKind = "parse"
)

// FetchError describes why a remote fetch failed.
type FetchError struct {
	Resource   string
	Kind       ErrorKind
	StatusCode int
	Err        error
}

func (e *FetchError) Error() string {
	if e.Kind == KindHTTPStatus {
		return fmt.Sprintf("fetch %s: unexpected status %d", e.Resource, e.StatusCode)
	}
	return fmt.Sprintf("fetch %s: %s error: %v", e.Resource, e.Kind, e.Err)
}

func (e *FetchError) Unwrap() error {
	return e.Err
}
