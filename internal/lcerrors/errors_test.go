package lcerrors

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRefinedSentinelsMatchTheirKind(t *testing.T) {
	assert.ErrorIs(t, ErrMissingField, ErrParse)
	assert.ErrorIs(t, ErrNoJudgeID, ErrJudge)
	assert.ErrorIs(t, ErrMalformedPath, ErrProblem)
	assert.ErrorIs(t, ErrMissingConfigKey, ErrConfig)
	assert.ErrorIs(t, ErrMissingTheme, ErrTheme)
	assert.NotErrorIs(t, ErrMissingField, ErrJudge)
}

func TestFetchErrorUnwrapsAndMatches(t *testing.T) {
	cause := errors.New("dial tcp: refused")
	var err error = &FetchError{Kind: FetchNetwork, URL: "https://x", Err: cause}
	err = fmt.Errorf("fetching problem, %w", err)

	assert.ErrorIs(t, err, ErrFetch)
	assert.ErrorIs(t, err, cause)

	var fetchErr *FetchError
	assert.True(t, errors.As(err, &fetchErr))
	assert.Equal(t, FetchNetwork, fetchErr.Kind)
}

func TestUnauthorizedHint(t *testing.T) {
	err := &FetchError{Kind: FetchHTTP, URL: "https://x", Status: 401}
	assert.True(t, Unauthorized(err))
	assert.Contains(t, err.Error(), "cookie")

	assert.False(t, Unauthorized(&FetchError{Kind: FetchHTTP, Status: 500}))
	assert.False(t, Unauthorized(errors.New("plain")))
}
