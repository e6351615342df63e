package framework

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func id(path ...string) TestID {
	return TestID{Path: path}
}

func TestRegexFiltersWithNoPatternsMatchEverything(t *testing.T) {
	var f RegexFilters
	assert.False(t, f.IsDefined())
	assert.True(t, f.AsFilter(id("health", "GET /health")))
}

func TestRegexFiltersMustMatch(t *testing.T) {
	var f RegexFilters
	require.NoError(t, f.MustMatch.Set("^frontend"))
	assert.True(t, f.AsFilter(id("frontend contract", "list comments")))
	assert.False(t, f.AsFilter(id("health", "GET /health")))
}

func TestRegexFiltersMustNotMatchWins(t *testing.T) {
	var f RegexFilters
	require.NoError(t, f.MustMatch.Set("comment"))
	require.NoError(t, f.MustNotMatch.Set("like"))
	assert.True(t, f.AsFilter(id("frontend contract", "delete comment")))
	assert.False(t, f.AsFilter(id("frontend contract", "like comment")))
}

func TestRegexListRejectsInvalidPattern(t *testing.T) {
	var r RegexList
	assert.Error(t, r.Set("("))
	assert.False(t, r.IsDefined())
}

func TestPrintFilterDescription(t *testing.T) {
	var buf bytes.Buffer
	PrintFilterDescription(&buf, RegexFilters{})
	assert.Empty(t, buf.String())

	var f RegexFilters
	require.NoError(t, f.MustMatch.Set("a"))
	require.NoError(t, f.MustMatch.Set("b"))
	require.NoError(t, f.MustNotMatch.Set("c"))
	PrintFilterDescription(&buf, f)
	assert.Contains(t, buf.String(), `skip any not matching "a" or "b"`)
	assert.Contains(t, buf.String(), `skip any matching "c"`)
}
