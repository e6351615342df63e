// Package report renders the summary of a contract test run for people and for other tools.
package report

import (
	"time"

	"github.com/msa-platform/comment-contract-tests/commenttests"
	"github.com/msa-platform/comment-contract-tests/framework"
)

// Outcome values.
const (
	OutcomePassed  = "passed"
	OutcomeFailed  = "failed"
	OutcomeSkipped = "skipped"
)

// Entry is the flattened, serializable form of one case result.
type Entry struct {
	ID             string   `json:"id"`
	Name           string   `json:"name"`
	Method         string   `json:"method"`
	Path           string   `json:"path"`
	Expected       string   `json:"expected"`
	ObservedStatus *int     `json:"observedStatus"`
	Outcome        string   `json:"outcome"`
	SkipReason     string   `json:"skipReason,omitempty"`
	Errors         []string `json:"errors,omitempty"`
	ErrorKind      string   `json:"errorKind,omitempty"`
	DurationMS     int64    `json:"durationMs"`
	Curl           string   `json:"curl"`
}

// Entries converts the summary's results in order. The target is used to build curl commands.
func Entries(summary commenttests.Summary, target *framework.Target) []Entry {
	entries := make([]Entry, 0, len(summary.Results))
	for _, r := range summary.Results {
		e := Entry{
			ID:         r.TestID.String(),
			Name:       r.TestID.Name(),
			Method:     string(r.Case.Method),
			Path:       r.Case.Path,
			Expected:   expectedDescription(r.Case),
			Outcome:    outcome(r),
			SkipReason: r.SkipReason,
			DurationMS: r.Duration.Milliseconds(),
			Curl:       target.CurlCommand(r.Case.Method, r.Case.Path, r.Case.Body),
		}
		if r.ObservedStatus.IsDefined() {
			status := r.ObservedStatus.IntValue()
			e.ObservedStatus = &status
		}
		for _, err := range r.Errors {
			e.Errors = append(e.Errors, err.Error())
		}
		if len(r.Errors) != 0 {
			if kind := framework.Classify(r.Errors[0]); kind != nil {
				e.ErrorKind = kind.Error()
			}
		}
		entries = append(entries, e)
	}
	return entries
}

func expectedDescription(c commenttests.Case) string {
	s := c.ExpectationString()
	if c.OnlyWhenStatus != 0 && c.Expect == nil {
		s = "valid response format"
	}
	return s
}

func outcome(r commenttests.CaseResult) string {
	switch {
	case r.Failed:
		return OutcomeFailed
	case r.Skipped:
		return OutcomeSkipped
	default:
		return OutcomePassed
	}
}

// Totals are the aggregate counts for a run.
type Totals struct {
	Total    int     `json:"total"`
	Passed   int     `json:"passed"`
	Failed   int     `json:"failed"`
	Skipped  int     `json:"skipped"`
	PassRate float64 `json:"passRate"`
}

func totalsOf(s commenttests.Summary) Totals {
	return Totals{
		Total:    s.Total(),
		Passed:   s.Passed(),
		Failed:   s.Failed(),
		Skipped:  s.Skipped(),
		PassRate: s.PassRate(),
	}
}

func formatDuration(d time.Duration) string {
	return d.Round(time.Millisecond).String()
}
