package commenttests

import (
	"net/http"
	"net/url"

	"github.com/msa-platform/comment-contract-tests/framework"

	"gopkg.in/launchdarkly/go-sdk-common.v2/ldvalue"
)

// DoFrontendContractTests checks the endpoints that the web front end calls. The write and
// per-user endpoints need authentication, so the suite (which sends no credentials) expects
// them to refuse with 401; a 405 is accepted everywhere in case a route is missing.
func DoFrontendContractTests(t *T) {
	t.RunCases(frontendContractCases(t.Params())...)
}

// DoResponseShapeTests checks the envelope of a successful comment list response.
func DoResponseShapeTests(t *T) {
	t.RunCases(responseShapeCases(t.Params())...)
}

func postCommentsPath(p Params) string {
	return "/api/v1/posts/" + url.PathEscape(p.FrontendPostID) + "/comments"
}

func commentPath(p Params) string {
	return commentsPath + "/" + url.PathEscape(p.CommentID)
}

func frontendContractCases(p Params) []Case {
	return []Case{
		{
			Name:   "list post comments",
			Method: framework.MethodGet,
			Path:   postCommentsPath(p),
			Expect: StatusOrDenied(http.StatusOK),
		},
		{
			Name:   "create post comment",
			Method: framework.MethodPost,
			Path:   postCommentsPath(p),
			Body: ldvalue.ObjectBuild().
				Set("content", ldvalue.String(p.CommentContent)).
				Build(),
			Expect: StatusOrDenied(http.StatusUnauthorized),
		},
		{
			Name:   "update comment",
			Method: framework.MethodPatch,
			Path:   commentPath(p),
			Body: ldvalue.ObjectBuild().
				Set("content", ldvalue.String(p.CommentContent)).
				Build(),
			Expect: StatusOrDenied(http.StatusUnauthorized),
		},
		{
			Name:   "delete comment",
			Method: framework.MethodDelete,
			Path:   commentPath(p),
			Expect: StatusOrDenied(http.StatusUnauthorized),
		},
		{
			Name:   "list my comments",
			Method: framework.MethodGet,
			Path:   commentsPath + "/my",
			Expect: StatusOrDenied(http.StatusUnauthorized),
		},
		{
			Name:   "like comment",
			Method: framework.MethodPost,
			Path:   commentPath(p) + "/like",
			Expect: StatusOrDenied(http.StatusUnauthorized),
		},
		{
			Name:   "get like status",
			Method: framework.MethodGet,
			Path:   commentPath(p) + "/like/status",
			Expect: StatusOrDenied(http.StatusUnauthorized),
		},
	}
}

func responseShapeCases(p Params) []Case {
	return []Case{
		{
			Name:           "comment list envelope",
			Method:         framework.MethodGet,
			Path:           postCommentsPath(p),
			OnlyWhenStatus: http.StatusOK,
			RequiredFields: []FieldSet{
				{Keys: []string{"success", "message", "data", "timestamp"}},
				{Path: "data", Keys: []string{"comments", "page", "size", "total"}},
			},
		},
	}
}
