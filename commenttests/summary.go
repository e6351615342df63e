package commenttests

import (
	"time"

	"github.com/msa-platform/comment-contract-tests/framework"
)

// CaseResult is the outcome of one case.
type CaseResult struct {
	framework.TestResult
	Case Case
}

// Summary describes a whole run. Results has exactly one entry per case, in the order the
// cases ran, including cases that were skipped.
type Summary struct {
	RunID     string
	TargetURL string
	StartedAt time.Time
	Duration  time.Duration
	Results   []CaseResult
	// GroupFailures lists failures in group code that happened outside of any case.
	GroupFailures []framework.TestResult
}

func (s Summary) Total() int {
	return len(s.Results)
}

func (s Summary) Passed() int {
	return s.count(func(r CaseResult) bool { return r.Passed() })
}

func (s Summary) Failed() int {
	return s.count(func(r CaseResult) bool { return r.Failed })
}

func (s Summary) Skipped() int {
	return s.count(func(r CaseResult) bool { return r.Skipped })
}

func (s Summary) count(pred func(CaseResult) bool) int {
	n := 0
	for _, r := range s.Results {
		if pred(r) {
			n++
		}
	}
	return n
}

// PassRate is the percentage of all cases that passed, or 0 if there were none.
func (s Summary) PassRate() float64 {
	if len(s.Results) == 0 {
		return 0
	}
	return float64(s.Passed()) * 100 / float64(len(s.Results))
}

func (s Summary) FailedCases() []CaseResult {
	var ret []CaseResult
	for _, r := range s.Results {
		if r.Failed {
			ret = append(ret, r)
		}
	}
	return ret
}

// OK is true if nothing failed. Skipped cases do not affect it.
func (s Summary) OK() bool {
	return s.Failed() == 0 && len(s.GroupFailures) == 0
}
