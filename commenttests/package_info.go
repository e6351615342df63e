// Package commenttests contains the comment service contract tests and their supporting API.
//
// Every test is a Case: one HTTP request with the outcome that the comment service is
// expected to produce. Cases are grouped the same way as the service's features (health,
// listing, creation, documentation, routing, the endpoints used by the web front end, and the
// response format) and always run one at a time in declaration order.
//
// Infrastructure that is not specific to the comment service, such as sending requests and
// accumulating results, is in the lower-level framework package.
package commenttests
