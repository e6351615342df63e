package framework

import (
	"net/http"
	"testing"
	"time"

	"gopkg.in/launchdarkly/go-sdk-common.v2/ldvalue"

	"github.com/stretchr/testify/assert"
)

func TestCurlCommandWithoutBody(t *testing.T) {
	h := http.Header{}
	h.Set("Accept", "application/json")
	assert.Equal(t,
		"curl -i -X GET -H 'Accept: application/json' http://localhost:8083/health",
		CurlCommand(MethodGet, "http://localhost:8083/health", h, nil))
}

func TestCurlCommandQuotesBodyAndURL(t *testing.T) {
	h := http.Header{}
	h.Set("Content-Type", "application/json")
	h.Set("Accept", "application/json")
	assert.Equal(t,
		`curl -i -X POST -H 'Accept: application/json' -H 'Content-Type: application/json' `+
			`--data '{"content":"it'"'"'s"}' 'http://localhost:8083/api/v1/comments?post_id=1'`,
		CurlCommand(MethodPost, "http://localhost:8083/api/v1/comments?post_id=1", h, []byte(`{"content":"it's"}`)))
}

func TestTargetCurlCommand(t *testing.T) {
	target := NewTarget("http://localhost:8083", time.Second, nil, nil)
	assert.Equal(t,
		"curl -i -X DELETE -H 'Accept: application/json' http://localhost:8083/api/v1/comments/1",
		target.CurlCommand(MethodDelete, "/api/v1/comments/1", ldvalue.Null()))
	assert.Equal(t,
		"curl -i -X POST -H 'Accept: application/json' -H 'Content-Type: application/json' "+
			"--data '{}' http://localhost:8083/api/v1/comments/1/like",
		target.CurlCommand(MethodPost, "/api/v1/comments/1/like", ldvalue.Null()))
}
