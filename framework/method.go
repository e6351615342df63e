package framework

import (
	"context"
	"net/http"

	"github.com/cockroachdb/errors"
	"gopkg.in/launchdarkly/go-sdk-common.v2/ldvalue"
)

// Method is one of the HTTP methods that a contract test can use.
type Method string

const (
	MethodGet    Method = http.MethodGet
	MethodPost   Method = http.MethodPost
	MethodPatch  Method = http.MethodPatch
	MethodDelete Method = http.MethodDelete
)

// HasBody returns true for methods that always send a JSON request body.
func (m Method) HasBody() bool {
	return m == MethodPost || m == MethodPatch
}

// Caller is the set of request operations available against a target service, one for each
// supported method. Target is the real implementation.
type Caller interface {
	Get(ctx context.Context, path string) (Response, error)
	Post(ctx context.Context, path string, body ldvalue.Value) (Response, error)
	Patch(ctx context.Context, path string, body ldvalue.Value) (Response, error)
	Delete(ctx context.Context, path string) (Response, error)
}

// Call dispatches to the Caller operation for this method. The body is ignored for methods
// that do not send one.
func (m Method) Call(ctx context.Context, c Caller, path string, body ldvalue.Value) (Response, error) {
	switch m {
	case MethodGet:
		return c.Get(ctx, path)
	case MethodPost:
		return c.Post(ctx, path, body)
	case MethodPatch:
		return c.Patch(ctx, path, body)
	case MethodDelete:
		return c.Delete(ctx, path)
	default:
		return Response{}, errors.Newf("unsupported HTTP method %q", string(m))
	}
}
