package commenttests

import (
	"net/http"

	"github.com/msa-platform/comment-contract-tests/framework"
)

// DoHealthTests checks that the service reports itself healthy with a JSON body.
func DoHealthTests(t *T) {
	t.RunCases(healthCases(t.Params())...)
}

// DoDocsTests checks that the API documentation page is served.
func DoDocsTests(t *T) {
	t.RunCases(docsCases(t.Params())...)
}

// DoNotFoundTests checks that an unrouted path gets a 404.
func DoNotFoundTests(t *T) {
	t.RunCases(notFoundCases(t.Params())...)
}

func healthCases(Params) []Case {
	return []Case{
		{
			Name:        "GET /health",
			Method:      framework.MethodGet,
			Path:        "/health",
			Expect:      StatusIn{http.StatusOK},
			RequireJSON: true,
		},
	}
}

func docsCases(Params) []Case {
	return []Case{
		{
			Name:   "GET /api/docs",
			Method: framework.MethodGet,
			Path:   "/api/docs",
			Expect: StatusIn{http.StatusOK},
		},
	}
}

func notFoundCases(p Params) []Case {
	return []Case{
		{
			Name:   "GET " + p.UnknownPath,
			Method: framework.MethodGet,
			Path:   p.UnknownPath,
			Expect: StatusIn{http.StatusNotFound},
		},
	}
}
