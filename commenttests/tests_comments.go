package commenttests

import (
	"net/http"
	"net/url"

	"github.com/msa-platform/comment-contract-tests/framework"

	"gopkg.in/launchdarkly/go-sdk-common.v2/ldvalue"
)

const commentsPath = "/api/v1/comments"

// DoListCommentsTests checks listing by post_id, which is a required query parameter.
func DoListCommentsTests(t *T) {
	t.RunCases(listCommentsCases(t.Params())...)
}

// DoCreateCommentTests checks that comment creation validates its payload.
func DoCreateCommentTests(t *T) {
	t.RunCases(createCommentCases(t.Params())...)
}

func listCommentsCases(p Params) []Case {
	query := url.Values{"post_id": {p.PostID}}
	return []Case{
		{
			Name:   "GET " + commentsPath + " without post_id",
			Method: framework.MethodGet,
			Path:   commentsPath,
			Expect: StatusIn{http.StatusBadRequest},
		},
		{
			// 404 is also correct when the post has no comments yet
			Name:   "GET " + commentsPath + " with post_id",
			Method: framework.MethodGet,
			Path:   commentsPath + "?" + query.Encode(),
			Expect: StatusIn{http.StatusOK, http.StatusNotFound},
		},
	}
}

func createCommentCases(p Params) []Case {
	return []Case{
		{
			Name:   "POST " + commentsPath + " with empty body",
			Method: framework.MethodPost,
			Path:   commentsPath,
			Body:   ldvalue.ObjectBuild().Build(),
			Expect: StatusIn{http.StatusBadRequest},
		},
		{
			// TODO: drop 500 once the service returns a 4xx when the post does not exist
			Name:   "POST " + commentsPath + " with valid body",
			Method: framework.MethodPost,
			Path:   commentsPath,
			Body:   newCommentBody(p),
			Expect: StatusIn{http.StatusCreated, http.StatusInternalServerError},
		},
	}
}

func newCommentBody(p Params) ldvalue.Value {
	return ldvalue.ObjectBuild().
		Set("post_id", ldvalue.String(p.PostID)).
		Set("user_id", ldvalue.String(p.UserID)).
		Set("user_name", ldvalue.String(p.UserName)).
		Set("content", ldvalue.String(p.CommentContent)).
		Build()
}
