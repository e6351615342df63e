// Package framework contains the low-level implementation of contract test infrastructure
// that can be reused for different kinds of HTTP services.
//
// The general model is:
//
// 1. The test harness talks to a target service over HTTP through a Target, which exposes
// one operation per supported HTTP method (see Caller). The target is treated as a black
// box; the harness never starts it, configures it, or receives requests from it.
//
// 2. There is a general notion of a test context which is similar to Go's *testing.T,
// allowing pieces of test logic to be associated with a test identifier and to accumulate
// success/failure results.
//
// 3. Failures are classified with the error markers in errors.go, so that callers can tell
// a transport problem from an unexpected status or a malformed body.
//
// The domain-specific code that knows what is being tested is responsible for providing
// the requests to send, the expected outcomes, and a domain-specific test API on top of
// the test context.
package framework
