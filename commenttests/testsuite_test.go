package commenttests

import (
	"bytes"
	"context"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"
	"unicode/utf8"

	"github.com/msa-platform/comment-contract-tests/framework"

	"github.com/launchdarkly/go-test-helpers/v2/httphelpers"

	"github.com/cockroachdb/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const listEnvelope = `{"success":true,"message":"ok","timestamp":"2024-01-01T00:00:00Z",` +
	`"data":{"comments":[],"page":0,"size":20,"total":0}}`

// fakeService routes on "METHOD request-uri" first, then on "METHOD path". Unknown routes
// get a 404.
type fakeService map[string]http.Handler

func (f fakeService) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	if h, ok := f[r.Method+" "+r.URL.RequestURI()]; ok {
		h.ServeHTTP(w, r)
		return
	}
	if h, ok := f[r.Method+" "+r.URL.Path]; ok {
		h.ServeHTTP(w, r)
		return
	}
	w.WriteHeader(http.StatusNotFound)
}

func jsonHandler(status int, body string) http.Handler {
	headers := make(http.Header)
	headers.Set("Content-Type", "application/json")
	return httphelpers.HandlerWithResponse(status, headers, []byte(body))
}

// conformingService behaves the way the comment service is supposed to when it is called
// without credentials.
func conformingService() fakeService {
	unauthorized := httphelpers.HandlerWithStatus(http.StatusUnauthorized)
	return fakeService{
		"GET /health":                          jsonHandler(200, `{"status":"ok"}`),
		"GET /api/v1/comments":                 jsonHandler(400, `{"success":false}`),
		"GET /api/v1/comments?post_id=test123": jsonHandler(200, listEnvelope),
		"POST /api/v1/comments":                newCommentHandler(),
		"GET /api/docs":                        httphelpers.HandlerWithResponse(200, nil, []byte("<html></html>")),
		"GET /api/v1/posts/1/comments":         jsonHandler(200, listEnvelope),
		"POST /api/v1/posts/1/comments":        unauthorized,
		"PATCH /api/v1/comments/1":             unauthorized,
		"DELETE /api/v1/comments/1":            unauthorized,
		"GET /api/v1/comments/my":              unauthorized,
		"POST /api/v1/comments/1/like":         unauthorized,
		"GET /api/v1/comments/1/like/status":   unauthorized,
	}
}

// newCommentHandler rejects a payload without content.
func newCommentHandler() http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		body, _ := io.ReadAll(r.Body)
		if bytes.Contains(body, []byte(`"content"`)) {
			jsonHandler(201, `{"success":true}`).ServeHTTP(w, r)
			return
		}
		jsonHandler(400, `{"success":false}`).ServeHTTP(w, r)
	})
}

func runSuite(t *testing.T, handler http.Handler, filter framework.Filter) Summary {
	var summary Summary
	httphelpers.WithServer(handler, func(server *httptest.Server) {
		target := framework.NewTarget(server.URL, 5*time.Second, nil, nil)
		summary = RunTestSuite(context.Background(), target, DefaultParams(), filter, nil, nil)
	})
	require.NotNil(t, summary.Results)
	return summary
}

func findResult(t *testing.T, summary Summary, name string) CaseResult {
	for _, r := range summary.Results {
		if r.Case.Name == name {
			return r
		}
	}
	require.Fail(t, "no result for case", name)
	return CaseResult{}
}

func TestAllCasesOrderAndCount(t *testing.T) {
	cases := AllCases(DefaultParams())
	require.Len(t, cases, 15)
	assert.Equal(t, "GET /health", cases[0].Name)
	assert.Equal(t, "GET /api/v1/comments without post_id", cases[1].Name)
	assert.Equal(t, "/api/v1/comments?post_id=test123", cases[2].Path)
	assert.Equal(t, "GET /api/v1/nonexistent", cases[6].Name)
	assert.Equal(t, "/api/v1/comments/1/like/status", cases[13].Path)
	assert.Equal(t, "comment list envelope", cases[14].Name)
}

func TestConformingServicePassesEveryCase(t *testing.T) {
	summary := runSuite(t, conformingService(), nil)

	cases := AllCases(DefaultParams())
	require.Len(t, summary.Results, len(cases))
	for i, r := range summary.Results {
		assert.Equal(t, cases[i], r.Case)
		assert.True(t, r.Passed(), "%s: %v", r.TestID, r.Errors)
		assert.True(t, r.ObservedStatus.IsDefined())
	}
	assert.Equal(t, 15, summary.Passed())
	assert.Equal(t, 0, summary.Failed())
	assert.True(t, summary.OK())
	assert.Equal(t, 100.0, summary.PassRate())
	assert.NotEmpty(t, summary.RunID)
	assert.Empty(t, summary.GroupFailures)
}

func TestResultsAreGroupedByTestID(t *testing.T) {
	summary := runSuite(t, conformingService(), nil)
	assert.Equal(t, "health/GET /health", summary.Results[0].TestID.String())
	assert.Equal(t, "frontend contract/get like status", summary.Results[13].TestID.String())
}

func TestHealthDoesNotAcceptUnauthorized(t *testing.T) {
	service := conformingService()
	service["GET /health"] = jsonHandler(401, `{"status":"denied"}`)
	summary := runSuite(t, service, nil)

	r := findResult(t, summary, "GET /health")
	assert.True(t, r.Failed)
	require.Len(t, r.Errors, 1)
	assert.True(t, errors.Is(r.Errors[0], framework.ErrUnexpectedStatus))
	assert.Equal(t, 401, r.ObservedStatus.IntValue())
	assert.False(t, summary.OK())
}

func TestHealthRequiresJSONBody(t *testing.T) {
	service := conformingService()
	service["GET /health"] = httphelpers.HandlerWithResponse(200, nil, []byte("OK"))
	summary := runSuite(t, service, nil)

	r := findResult(t, summary, "GET /health")
	assert.True(t, r.Failed)
	require.Len(t, r.Errors, 1)
	assert.True(t, errors.Is(r.Errors[0], framework.ErrMalformedResponse))
}

func TestLongNonJSONBodyIsTruncatedOnRuneBoundary(t *testing.T) {
	service := conformingService()
	body := strings.Repeat("댓글을 찾을 수 없습니다 ", 30)
	service["GET /health"] = httphelpers.HandlerWithResponse(200, nil, []byte(body))
	summary := runSuite(t, service, nil)

	r := findResult(t, summary, "GET /health")
	require.Len(t, r.Errors, 1)
	message := r.Errors[0].Error()
	assert.True(t, utf8.ValidString(message))
	assert.True(t, strings.HasSuffix(message, "..."))
}

func TestCreateCommentAcceptsServerErrorButNotForbidden(t *testing.T) {
	service := conformingService()
	service["POST /api/v1/comments"] = http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		body, _ := io.ReadAll(r.Body)
		if string(body) == "{}" {
			w.WriteHeader(400)
			return
		}
		w.WriteHeader(500)
	})
	summary := runSuite(t, service, nil)
	assert.True(t, findResult(t, summary, "POST /api/v1/comments with empty body").Passed())
	assert.True(t, findResult(t, summary, "POST /api/v1/comments with valid body").Passed())

	service["POST /api/v1/comments"] = httphelpers.HandlerWithStatus(403)
	summary = runSuite(t, service, nil)
	assert.True(t, findResult(t, summary, "POST /api/v1/comments with empty body").Failed)
	assert.True(t, findResult(t, summary, "POST /api/v1/comments with valid body").Failed)
}

func TestNotFoundProbeFailsIfRouted(t *testing.T) {
	service := conformingService()
	service["GET /api/v1/nonexistent"] = httphelpers.HandlerWithStatus(200)
	summary := runSuite(t, service, nil)
	assert.True(t, findResult(t, summary, "GET /api/v1/nonexistent").Failed)
}

func TestFrontendCasesTolerateMethodNotAllowed(t *testing.T) {
	service := conformingService()
	service["PATCH /api/v1/comments/1"] = httphelpers.HandlerWithStatus(405)
	service["GET /api/v1/comments/1/like/status"] = httphelpers.HandlerWithStatus(405)
	summary := runSuite(t, service, nil)
	assert.True(t, findResult(t, summary, "update comment").Passed())
	assert.True(t, findResult(t, summary, "get like status").Passed())
}

func TestFrontendCaseFailsOnUnexpectedStatus(t *testing.T) {
	service := conformingService()
	service["DELETE /api/v1/comments/1"] = httphelpers.HandlerWithStatus(204)
	summary := runSuite(t, service, nil)
	r := findResult(t, summary, "delete comment")
	assert.True(t, r.Failed)
	assert.Contains(t, r.Errors[0].Error(), "expected status 401 (or 401/405), got 204")
}

func TestResponseShapeIsSkippedWhenListIsDenied(t *testing.T) {
	service := conformingService()
	service["GET /api/v1/posts/1/comments"] = httphelpers.HandlerWithStatus(401)
	summary := runSuite(t, service, nil)

	assert.True(t, findResult(t, summary, "list post comments").Passed())
	r := findResult(t, summary, "comment list envelope")
	assert.True(t, r.Skipped)
	assert.False(t, r.Failed)
	assert.Contains(t, r.SkipReason, "not applicable")
	assert.Equal(t, 1, summary.Skipped())
	assert.True(t, summary.OK())
}

func TestResponseShapeFailsOnMissingField(t *testing.T) {
	service := conformingService()
	service["GET /api/v1/posts/1/comments"] = jsonHandler(200,
		`{"success":true,"message":"ok","data":{"comments":[],"page":0,"size":20}}`)
	summary := runSuite(t, service, nil)

	r := findResult(t, summary, "comment list envelope")
	assert.True(t, r.Failed)
	require.Len(t, r.Errors, 1)
	assert.True(t, errors.Is(r.Errors[0], framework.ErrMalformedResponse))
	assert.Contains(t, r.Errors[0].Error(), "timestamp, data.total")
}

func TestUnreachableServiceFailsEveryCase(t *testing.T) {
	server := httptest.NewServer(conformingService())
	url := server.URL
	server.Close()

	target := framework.NewTarget(url, time.Second, nil, nil)
	summary := RunTestSuite(context.Background(), target, DefaultParams(), nil, nil, nil)

	require.Len(t, summary.Results, 15)
	for _, r := range summary.Results {
		assert.True(t, r.Failed, r.TestID.String())
		assert.False(t, r.ObservedStatus.IsDefined())
		require.Len(t, r.Errors, 1)
		assert.True(t, errors.Is(r.Errors[0], framework.ErrTransport))
	}
	assert.Equal(t, 0.0, summary.PassRate())
	assert.Len(t, summary.FailedCases(), 15)
	assert.False(t, summary.OK())
}

func TestFilteredCasesAreSkipped(t *testing.T) {
	var filters framework.RegexFilters
	require.NoError(t, filters.MustMatch.Set("^health/"))
	summary := runSuite(t, conformingService(), filters.AsFilter)

	require.Len(t, summary.Results, 15)
	assert.Equal(t, 1, summary.Passed())
	assert.Equal(t, 14, summary.Skipped())
	assert.True(t, summary.OK())
}

func TestReadOnlyCasesAreIdempotent(t *testing.T) {
	readOnly := func(s Summary) []bool {
		var passed []bool
		for _, r := range s.Results {
			if r.Case.Method == framework.MethodGet {
				passed = append(passed, r.Passed())
			}
		}
		return passed
	}
	service := conformingService()
	service["GET /api/docs"] = httphelpers.HandlerWithStatus(500)
	first := runSuite(t, service, nil)
	second := runSuite(t, service, nil)
	assert.Equal(t, readOnly(first), readOnly(second))
}
