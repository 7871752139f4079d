package dwapi

import (
	"errors"
	"fmt"
	"net/http"
)

// ErrMissingToken is returned by NewClient when no access token was given
// and DATAWRAPPER_ACCESS_TOKEN is unset.
var ErrMissingToken = errors.New("dwapi: no access token provided and DATAWRAPPER_ACCESS_TOKEN is not set")

// RequestError is a non-2xx API response. The body is kept verbatim so
// callers can see the provider's error payload.
type RequestError struct {
	Method string
	Path   string
	Status int
	Body   string
}

func (e *RequestError) Error() string {
	return fmt.Sprintf("dwapi: %s %s: status %d: %s", e.Method, e.Path, e.Status, e.Body)
}

// RateLimited reports whether the request was rejected with 429.
func (e *RequestError) RateLimited() bool {
	return e.Status == http.StatusTooManyRequests
}
