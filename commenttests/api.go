package commenttests

import (
	"context"
	"fmt"
	"strings"

	"github.com/msa-platform/comment-contract-tests/framework"
)

const maxBodyInFailure = 200

// T represents a test or a group of tests in the comment service suite.
//
// It implements the same basic functionality as Go's testing.T, outside of the Go test runner.
// Those features are provided by the lower-level framework package. On top of that, T knows
// how to send a Case to the target service and check the response against it.
//
// To make test assertions, you can use the assert and require packages, passing the *T as if
// it were a *testing.T.
type T struct {
	context *framework.Context
	env     *environment
}

type environment struct {
	ctx     context.Context
	target  *framework.Target
	params  Params
	results []CaseResult
}

// Errorf is called by assertions to log a test failure. It does not cause an immediate exit.
func (t *T) Errorf(format string, args ...interface{}) {
	t.context.Errorf(format, args...)
}

// FailNow is called by assertions when a test should fail and immediately exit. The methods in
// the require package call FailNow.
func (t *T) FailNow() {
	t.context.FailNow()
}

// Run runs a group of cases. This is equivalent to the Run method of testing.T, except that a
// group never produces a result of its own unless its own code fails.
func (t *T) Run(name string, action func(*T)) {
	t.context.Run(name, func(c *framework.Context) {
		action(&T{context: c, env: t.env})
	})
}

// Debug logs some debug output for the test. The output will be passed to the test logger at
// the end of the test.
func (t *T) Debug(format string, args ...interface{}) {
	t.context.Debug(format, args...)
}

func (t *T) Params() Params {
	return t.env.params
}

// RunCases runs each case in order.
func (t *T) RunCases(cases ...Case) {
	for _, c := range cases {
		t.RunCase(c)
	}
}

// RunCase sends the case's request and checks the response. The result is recorded in the
// suite's summary and also returned.
func (t *T) RunCase(c Case) CaseResult {
	result := t.context.RunTest(c.Name, func(ctx *framework.Context) {
		checkCase(t.env, ctx, c)
	})
	cr := CaseResult{Case: c, TestResult: result}
	t.env.results = append(t.env.results, cr)
	return cr
}

func checkCase(env *environment, ctx *framework.Context, c Case) {
	target := env.target.WithLogger(ctx.DebugLogger())
	resp, err := c.Method.Call(env.ctx, target, c.Path, c.Body)
	if err != nil {
		ctx.Fail(err)
	}
	ctx.SetObservedStatus(resp.Status)

	if c.OnlyWhenStatus != 0 && resp.Status != c.OnlyWhenStatus {
		ctx.SkipWithReason(fmt.Sprintf("not applicable: got status %d, check only applies to %d",
			resp.Status, c.OnlyWhenStatus))
	}

	if c.Expect != nil {
		if !c.Expect.Accepts(resp.Status) {
			ctx.Fail(framework.UnexpectedStatusError(resp.Status, c.Expect.String()))
		}
		if acceptedByTolerance(c.Expect, resp.Status) {
			ctx.Debug("status %d accepted in place of %s", resp.Status, c.Expect)
		}
	}

	if c.RequireJSON && !isJSON(resp.Body) {
		ctx.Fail(framework.MalformedResponseError("response body is not valid JSON: %s",
			abbreviate(resp.Body)))
	}

	if len(c.RequiredFields) != 0 {
		shape := CheckShape(resp.Body, c.RequiredFields)
		if !shape.Parsed {
			ctx.Fail(framework.MalformedResponseError("response body is not a JSON object: %s",
				abbreviate(resp.Body)))
		}
		if len(shape.Missing) != 0 {
			ctx.Fail(framework.MalformedResponseError("response is missing required fields: %s",
				strings.Join(shape.Missing, ", ")))
		}
	}
}

func abbreviate(body []byte) string {
	return framework.TruncateBody(body, maxBodyInFailure)
}
