package commenttests

import (
	"context"
	"time"

	"github.com/msa-platform/comment-contract-tests/framework"

	"github.com/google/uuid"
)

// RunTestSuite runs every case against the target, one at a time, and returns the summary.
// It never fails as a whole: an unreachable service just makes every case fail.
func RunTestSuite(
	ctx context.Context,
	target *framework.Target,
	params Params,
	filter framework.Filter,
	testLogger framework.TestLogger,
	debugLogger framework.Logger,
) Summary {
	env := &environment{ctx: ctx, target: target, params: params}
	startTime := time.Now()

	results := framework.Run(filter, testLogger, debugLogger, func(c *framework.Context) {
		t := &T{context: c, env: env}

		t.Run("health", DoHealthTests)
		t.Run("list comments", DoListCommentsTests)
		t.Run("create comment", DoCreateCommentTests)
		t.Run("docs", DoDocsTests)
		t.Run("not found", DoNotFoundTests)
		t.Run("frontend contract", DoFrontendContractTests)
		t.Run("response shape", DoResponseShapeTests)
	})

	summary := Summary{
		RunID:     uuid.NewString(),
		TargetURL: target.BaseURL(),
		StartedAt: startTime,
		Duration:  time.Since(startTime),
		Results:   env.results,
	}
	caseIDs := make(map[string]bool, len(env.results))
	for _, r := range env.results {
		caseIDs[r.TestID.String()] = true
	}
	for _, f := range results.Failures {
		if !caseIDs[f.TestID.String()] {
			summary.GroupFailures = append(summary.GroupFailures, f)
		}
	}
	return summary
}

// AllCases returns every case in the order that RunTestSuite runs them.
func AllCases(p Params) []Case {
	var all []Case
	for _, group := range [][]Case{
		healthCases(p),
		listCommentsCases(p),
		createCommentCases(p),
		docsCases(p),
		notFoundCases(p),
		frontendContractCases(p),
		responseShapeCases(p),
	} {
		all = append(all, group...)
	}
	return all
}
