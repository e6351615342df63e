package commenttests

import (
	"github.com/msa-platform/comment-contract-tests/framework"

	"gopkg.in/launchdarkly/go-sdk-common.v2/ldvalue"
)

// Case is one request to the comment service and the outcome expected from it. Cases are
// built once from Params and not modified afterward.
type Case struct {
	Name   string
	Method framework.Method
	// Path is relative to the target base URL and may include a query string.
	Path string
	// Body is sent as JSON for methods that have a body; null means an empty object.
	Body ldvalue.Value
	// Expect is checked against the response status; nil accepts any status.
	Expect Expectation
	// OnlyWhenStatus, if nonzero, makes the case skip as not applicable when the response
	// has any other status. It is checked before Expect.
	OnlyWhenStatus int
	// RequireJSON fails the case if the response body is not valid JSON.
	RequireJSON bool
	// RequiredFields fails the case if the body is not a JSON object with these keys.
	RequiredFields []FieldSet
}

// ExpectationString describes what the case accepts, for reports.
func (c Case) ExpectationString() string {
	if c.Expect == nil {
		return "any"
	}
	return c.Expect.String()
}
