package framework

import (
	"bytes"
	"context"
	"io"
	"net/http"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/cockroachdb/errors"
	"github.com/google/uuid"
	"gopkg.in/launchdarkly/go-sdk-common.v2/ldvalue"
)

const (
	DefaultRequestTimeout = time.Second * 10

	requestIDHeader     = "X-Request-Id"
	maxLoggedBodyLength = 2000
)

// Response is what the target returned for one request. The body has already been read in
// full and the connection released.
type Response struct {
	Status   int
	Header   http.Header
	Body     []byte
	Duration time.Duration
}

// Target sends requests to the service under test. Every request gets its own timeout; a
// request that fails at the transport level returns an error marked with ErrTransport.
type Target struct {
	baseURL string
	timeout time.Duration
	client  *http.Client
	logger  Logger
}

var _ Caller = (*Target)(nil)

// NewTarget creates a Target for the service at baseURL. If client is nil, a new client is
// created; a zero or negative timeout disables the per-request deadline.
func NewTarget(baseURL string, timeout time.Duration, client *http.Client, logger Logger) *Target {
	if client == nil {
		client = &http.Client{Timeout: timeout}
	}
	if logger == nil {
		logger = NullLogger()
	}
	return &Target{
		baseURL: strings.TrimSuffix(baseURL, "/"),
		timeout: timeout,
		client:  client,
		logger:  logger,
	}
}

func (t *Target) BaseURL() string {
	return t.baseURL
}

// Timeout returns the per-request timeout, or zero if requests are only bounded by their context.
func (t *Target) Timeout() time.Duration {
	return t.timeout
}

// URL returns the absolute URL for a path, which may include a query string.
func (t *Target) URL(path string) string {
	if path != "" && !strings.HasPrefix(path, "/") {
		path = "/" + path
	}
	return t.baseURL + path
}

// WithLogger returns a copy of the Target that writes its debug output to logger.
func (t *Target) WithLogger(logger Logger) *Target {
	t1 := *t
	t1.logger = logger
	return &t1
}

func (t *Target) Get(ctx context.Context, path string) (Response, error) {
	return t.Do(ctx, MethodGet, path, ldvalue.Null())
}

func (t *Target) Post(ctx context.Context, path string, body ldvalue.Value) (Response, error) {
	return t.Do(ctx, MethodPost, path, body)
}

func (t *Target) Patch(ctx context.Context, path string, body ldvalue.Value) (Response, error) {
	return t.Do(ctx, MethodPatch, path, body)
}

func (t *Target) Delete(ctx context.Context, path string) (Response, error) {
	return t.Do(ctx, MethodDelete, path, ldvalue.Null())
}

// Do sends one request. For methods that carry a body, a null body is sent as an empty JSON
// object.
func (t *Target) Do(ctx context.Context, method Method, path string, body ldvalue.Value) (Response, error) {
	url := t.URL(path)

	var data []byte
	var reqBody io.Reader
	if method.HasBody() {
		data = requestBodyJSON(body)
		reqBody = bytes.NewReader(data)
	}

	if t.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, t.timeout)
		defer cancel()
	}

	req, err := http.NewRequestWithContext(ctx, string(method), url, reqBody)
	if err != nil {
		return Response{}, errors.Wrapf(err, "could not create request %s %s", method, url)
	}
	setRequestHeaders(req.Header, method)
	req.Header.Set(requestIDHeader, uuid.NewString())

	t.logger.Printf("Sending request: %s", CurlCommand(method, url, req.Header, data))

	startTime := time.Now()
	resp, err := t.client.Do(req)
	if err != nil {
		t.logger.Printf("Request failed: %s", err)
		return Response{}, TransportError(err, method, url)
	}
	defer resp.Body.Close()

	respData, err := io.ReadAll(resp.Body)
	if err != nil {
		t.logger.Printf("Failed to read response body: %s", err)
		return Response{}, TransportError(errors.Wrap(err, "reading response body"), method, url)
	}
	elapsed := time.Since(startTime)

	t.logger.Printf("Got status %d in %s, body: %s", resp.StatusCode, elapsed, truncateForLog(respData))

	return Response{
		Status:   resp.StatusCode,
		Header:   resp.Header,
		Body:     respData,
		Duration: elapsed,
	}, nil
}

// CurlCommand returns a curl command line that sends the same request as Do, apart from the
// per-request ID header.
func (t *Target) CurlCommand(method Method, path string, body ldvalue.Value) string {
	header := make(http.Header)
	setRequestHeaders(header, method)
	var data []byte
	if method.HasBody() {
		data = requestBodyJSON(body)
	}
	return CurlCommand(method, t.URL(path), header, data)
}

func setRequestHeaders(header http.Header, method Method) {
	header.Set("Accept", "application/json")
	if method.HasBody() {
		header.Set("Content-Type", "application/json")
	}
}

func requestBodyJSON(body ldvalue.Value) []byte {
	if body.IsNull() {
		return []byte("{}")
	}
	return []byte(body.JSONString())
}

func truncateForLog(data []byte) string {
	return TruncateBody(data, maxLoggedBodyLength)
}

// TruncateBody returns the body as a string of at most max bytes plus an ellipsis. The cut is
// moved back to a rune boundary so the result stays valid UTF-8.
func TruncateBody(data []byte, max int) string {
	if len(data) == 0 {
		return "<empty>"
	}
	if len(data) <= max {
		return string(data)
	}
	n := max
	for n > 0 && !utf8.RuneStart(data[n]) {
		n--
	}
	return string(data[:n]) + "..."
}
