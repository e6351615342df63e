package framework

import (
	"github.com/cockroachdb/errors"
)

// These are markers for classifying test failures. Use errors.Is to check for them; the
// errors actually returned carry more detail.
var (
	// ErrTransport means no usable HTTP response was received: the connection was refused,
	// the request timed out, the host could not be resolved, or the body could not be read.
	ErrTransport = errors.New("transport error")

	// ErrUnexpectedStatus means the target responded with a status that the test does not
	// accept.
	ErrUnexpectedStatus = errors.New("unexpected status")

	// ErrMalformedResponse means the response body did not have the structure that the test
	// requires.
	ErrMalformedResponse = errors.New("malformed response")
)

// TransportError wraps an error from the HTTP client and marks it as ErrTransport.
func TransportError(err error, method Method, url string) error {
	return errors.Mark(errors.Wrapf(err, "%s %s", method, url), ErrTransport)
}

// UnexpectedStatusError reports a status that did not match what the test expected.
func UnexpectedStatusError(status int, expected string) error {
	return errors.Mark(errors.Newf("expected status %s, got %d", expected, status), ErrUnexpectedStatus)
}

// MalformedResponseError reports a response body that did not have the required structure.
func MalformedResponseError(format string, args ...interface{}) error {
	return errors.Mark(errors.Newf(format, args...), ErrMalformedResponse)
}

// Classify returns the marker that err carries, or nil if it has none.
func Classify(err error) error {
	for _, marker := range []error{ErrTransport, ErrUnexpectedStatus, ErrMalformedResponse} {
		if errors.Is(err, marker) {
			return marker
		}
	}
	return nil
}
