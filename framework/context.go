package framework

import (
	"regexp"
	"runtime/debug"
	"strings"
	"time"

	"github.com/cockroachdb/errors"
	"gopkg.in/launchdarkly/go-sdk-common.v2/ldvalue"
)

const filteredOutReason = "excluded by filter parameters"

var traceContinuation = regexp.MustCompile("^\t +\t")

type environment struct {
	results     Results
	testLogger  TestLogger
	filter      Filter
	debugLogger Logger
}

// Context is used similarly to *testing.T. It implements require.TestingT so that standard
// assertions from assert/require can be used, has Run and RunTest methods for groups and
// individual tests, and can skip tests.
//
// Tests run strictly one at a time, in the order they are declared.
type Context struct {
	env            *environment
	id             TestID
	debugLogger    CapturingLogger
	failed         bool
	skipped        bool
	skipReason     string
	errors         []error
	observedStatus ldvalue.OptionalInt
}

// Run starts a test run, calling action with the root context. The returned Results contain
// one entry for every RunTest call, in call order, plus an entry for any group whose own code
// (outside of its tests) failed.
func Run(
	filter Filter,
	testLogger TestLogger,
	debugLogger Logger,
	action func(*Context),
) Results {
	if testLogger == nil {
		testLogger = nullTestLogger{}
	}
	if debugLogger == nil {
		debugLogger = NullLogger()
	}
	env := &environment{
		filter:      filter,
		testLogger:  testLogger,
		debugLogger: debugLogger,
	}
	c := &Context{env: env}
	c.run(action, false)
	return env.results
}

func (c *Context) run(action func(*Context), isTest bool) (result TestResult) {
	startTime := time.Now()
	defer func() {
		if r := recover(); r != nil && !c.skipped {
			c.failed = true
			var addError error
			if _, ok := r.(*Context); ok {
				if len(c.errors) == 0 {
					addError = errors.New("test failed with no failure message")
				}
			} else {
				addError = errors.Errorf("unexpected panic in test: %+v\n%s", r, string(debug.Stack()))
			}
			if addError != nil {
				c.errors = append(c.errors, addError)
				c.env.testLogger.TestError(c.id, addError)
			}
		}
		result = TestResult{
			TestID:         c.id,
			Errors:         c.errors,
			Failed:         c.failed,
			Skipped:        c.skipped,
			SkipReason:     c.skipReason,
			ObservedStatus: c.observedStatus,
			Duration:       time.Since(startTime),
		}
		if isTest || c.failed {
			c.env.results.Tests = append(c.env.results.Tests, result)
		}
		if c.failed {
			c.env.results.Failures = append(c.env.results.Failures, result)
		}
	}()

	action(c)
	return
}

func (c *Context) ID() TestID {
	return c.id
}

func (c *Context) childID(name string) TestID {
	return TestID{Path: append(append([]string(nil), c.id.Path...), name)}
}

// Run runs a group of tests. Groups are not subject to filtering and do not produce a result
// of their own unless something outside of their tests fails.
func (c *Context) Run(name string, action func(*Context)) {
	c1 := &Context{
		id:  c.childID(name),
		env: c.env,
	}
	c1.run(action, false)
}

// RunTest runs a single test and returns its result. If the filter excludes the test, the
// action is not called and the result is marked as skipped.
func (c *Context) RunTest(name string, action func(*Context)) TestResult {
	id := c.childID(name)

	c.env.testLogger.TestStarted(id)
	if c.env.filter != nil && !c.env.filter(id) {
		c.env.testLogger.TestSkipped(id, filteredOutReason)
		result := TestResult{TestID: id, Skipped: true, SkipReason: filteredOutReason}
		c.env.results.Tests = append(c.env.results.Tests, result)
		return result
	}
	c1 := &Context{
		id:  id,
		env: c.env,
	}
	result := c1.run(action, true)
	if c1.skipped {
		c.env.testLogger.TestSkipped(id, c1.skipReason)
	} else {
		c.env.testLogger.TestFinished(id, c1.failed, c1.debugLogger.Output())
	}
	return result
}

// Errorf is called by assertions to log a test failure. It does not cause an immediate exit.
func (c *Context) Errorf(format string, args ...interface{}) {
	c.failed = true
	err := reformatError(errors.Errorf(format, args...))
	c.errors = append(c.errors, err)
	c.env.testLogger.TestError(c.id, err)
}

// Fail records err as the reason for the failure and exits the test immediately. Unlike
// Errorf, the error is stored as-is, so callers can inspect it later with errors.Is.
func (c *Context) Fail(err error) {
	c.failed = true
	c.errors = append(c.errors, err)
	c.env.testLogger.TestError(c.id, err)
	c.FailNow()
}

func (c *Context) FailNow() {
	panic(c)
}

func (c *Context) Skip() {
	c.skipped = true
	panic(c)
}

func (c *Context) SkipWithReason(reason string) {
	c.skipReason = reason
	c.Skip()
}

// SetObservedStatus records the HTTP status that the target returned for this test.
func (c *Context) SetObservedStatus(status int) {
	c.observedStatus = ldvalue.NewOptionalInt(status)
}

func (c *Context) Debug(message string, args ...interface{}) {
	c.DebugLogger().Printf(message, args...)
}

// DebugLogger returns a logger whose output is captured for this test, and also copied to the
// main debug logger.
func (c *Context) DebugLogger() Logger {
	return teeLogger{
		captured: &c.debugLogger,
		main:     c.env.debugLogger,
		prefix:   "[" + c.id.String() + "] ",
	}
}

// reformatError strips the "Error Trace" block that testify puts in its failure messages.
func reformatError(err error) error {
	lines := strings.Split(err.Error(), "\n")
	var kept []string
	inTrace := false
	for _, line := range lines {
		trimmed := strings.TrimSpace(line)
		switch {
		case strings.HasPrefix(trimmed, "Error Trace:"):
			inTrace = true
			continue
		case inTrace && traceContinuation.MatchString(line):
			continue
		}
		inTrace = false
		if trimmed != "" {
			kept = append(kept, strings.TrimRight(line, " \t"))
		}
	}
	if len(kept) == 0 {
		return err
	}
	return errors.New(strings.Join(kept, "\n"))
}
