package backend

import (
	"errors"
	"fmt"
	"net/http"
)

// UpstreamError is a non-2xx answer from the progress backend. Proxy
// handlers pass both the status and the body text through verbatim.
type UpstreamError struct {
	StatusCode int
	Body       string
}

// Error implements the error interface.
func (e *UpstreamError) Error() string {
	return fmt.Sprintf("backend returned %d: %s", e.StatusCode, e.Body)
}

// AsUpstream unwraps err into an UpstreamError when it is one.
func AsUpstream(err error) (*UpstreamError, bool) {
	var ue *UpstreamError
	if errors.As(err, &ue) {
		return ue, true
	}
	return nil, false
}

// IsNotFound reports whether err is an upstream 404.
func IsNotFound(err error) bool {
	ue, ok := AsUpstream(err)
	return ok && ue.StatusCode == http.StatusNotFound
}
