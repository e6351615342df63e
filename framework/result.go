package framework

import (
	"strings"
	"time"

	"gopkg.in/launchdarkly/go-sdk-common.v2/ldvalue"
)

type Results struct {
	Tests    []TestResult
	Failures []TestResult
}

// TestResult is the outcome of a single test. ObservedStatus is only defined if the test got
// as far as receiving an HTTP response from the target.
type TestResult struct {
	TestID         TestID
	Errors         []error
	Failed         bool
	Skipped        bool
	SkipReason     string
	ObservedStatus ldvalue.OptionalInt
	Duration       time.Duration
}

func (r TestResult) Passed() bool {
	return !r.Failed && !r.Skipped
}

func (r Results) OK() bool {
	return len(r.Failures) == 0
}

type TestID struct {
	Path []string
}

func (t TestID) String() string {
	return strings.Join(t.Path, "/")
}

// Name returns the last element of the path.
func (t TestID) Name() string {
	if len(t.Path) == 0 {
		return ""
	}
	return t.Path[len(t.Path)-1]
}
