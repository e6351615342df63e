package commenttests

import (
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestStatusInAcceptsExactlyItsMembers(t *testing.T) {
	set := StatusIn{http.StatusCreated, http.StatusInternalServerError}
	for status := 100; status < 600; status++ {
		expected := status == 201 || status == 500
		assert.Equal(t, expected, set.Accepts(status), "status %d", status)
	}
}

func TestStatusInNeverTolerates401Or405(t *testing.T) {
	assert.False(t, StatusIn{http.StatusOK}.Accepts(http.StatusUnauthorized))
	assert.False(t, StatusIn{http.StatusOK}.Accepts(http.StatusMethodNotAllowed))
}

func TestStatusOrDeniedAcceptsDeclaredStatusOr401Or405(t *testing.T) {
	for _, declared := range []int{200, 401} {
		e := StatusOrDenied(declared)
		for status := 100; status < 600; status++ {
			expected := status == declared || status == 401 || status == 405
			assert.Equal(t, expected, e.Accepts(status), "declared %d, status %d", declared, status)
		}
	}
}

func TestExpectationStrings(t *testing.T) {
	assert.Equal(t, "200", StatusIn{200}.String())
	assert.Equal(t, "one of [201 500]", StatusIn{201, 500}.String())
	assert.Equal(t, "401 (or 401/405)", StatusOrDenied(401).String())
	assert.Equal(t, "any", Case{}.ExpectationString())
	assert.Equal(t, "404", Case{Expect: StatusIn{404}}.ExpectationString())
}

func TestAcceptedByTolerance(t *testing.T) {
	assert.True(t, acceptedByTolerance(StatusOrDenied(200), 401))
	assert.True(t, acceptedByTolerance(StatusOrDenied(401), 405))
	assert.False(t, acceptedByTolerance(StatusOrDenied(401), 401))
	assert.False(t, acceptedByTolerance(StatusOrDenied(200), 200))
	assert.False(t, acceptedByTolerance(StatusIn{401}, 401))
}
