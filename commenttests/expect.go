package commenttests

import (
	"fmt"
	"net/http"
	"strconv"
	"strings"
)

// Expectation decides whether an observed HTTP status is an acceptable outcome for a case.
type Expectation interface {
	Accepts(status int) bool
	String() string
}

// StatusIn accepts exactly the statuses in the set.
type StatusIn []int

func (s StatusIn) Accepts(status int) bool {
	for _, code := range s {
		if code == status {
			return true
		}
	}
	return false
}

func (s StatusIn) String() string {
	if len(s) == 1 {
		return strconv.Itoa(s[0])
	}
	codes := make([]string, 0, len(s))
	for _, code := range s {
		codes = append(codes, strconv.Itoa(code))
	}
	return "one of [" + strings.Join(codes, " ") + "]"
}

// DeniedStatuses are always accepted by StatusOrDenied: an unauthenticated request being
// refused, or the method not being routed, are both valid answers from the service.
var DeniedStatuses = []int{http.StatusUnauthorized, http.StatusMethodNotAllowed}

// StatusOrDenied accepts one declared status, or any of DeniedStatuses.
type StatusOrDenied int

func (s StatusOrDenied) Accepts(status int) bool {
	return status == int(s) || StatusIn(DeniedStatuses).Accepts(status)
}

func (s StatusOrDenied) String() string {
	return fmt.Sprintf("%d (or 401/405)", int(s))
}

// acceptedByTolerance is true if the status only passed because of the DeniedStatuses rule.
func acceptedByTolerance(e Expectation, status int) bool {
	s, ok := e.(StatusOrDenied)
	return ok && status != int(s) && s.Accepts(status)
}
