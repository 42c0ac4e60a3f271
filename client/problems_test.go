package client

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/chibuka/leetcode-cli/internal/lcerrors"
	"github.com/chibuka/leetcode-cli/internal/leetcode"
)

// graphQLServer answers every query with the response registered for its
// operation name and records the variables it received.
func graphQLServer(t *testing.T, responses map[string]string) (*httptest.Server, *[]graphQLRequest) {
	t.Helper()
	var calls []graphQLRequest
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		var req graphQLRequest
		assert.NoError(t, json.NewDecoder(r.Body).Decode(&req))
		calls = append(calls, req)
		body, ok := responses[req.OperationName]
		if !ok {
			w.WriteHeader(http.StatusNotFound)
			return
		}
		_, _ = w.Write([]byte(body))
	}))
	t.Cleanup(srv.Close)
	return srv, &calls
}

const mediumPage = `{"data": {"problemsetQuestionList": {"total": 2000, "questions": [
	{"acRate": 35.1, "difficulty": "Medium", "frontendQuestionId": "2", "paidOnly": false, "status": "ac",
	 "title": "Add Two Numbers", "titleSlug": "add-two-numbers", "topicTags": [{"name": "Math", "slug": "math"}]},
	{"acRate": 36.2, "difficulty": "Medium", "frontendQuestionId": "3", "paidOnly": false, "status": null,
	 "title": "Longest Substring Without Repeating Characters", "titleSlug": "longest-substring-without-repeating-characters", "topicTags": []},
	{"acRate": 31.8, "difficulty": "Medium", "frontendQuestionId": "5", "paidOnly": false, "status": "notac",
	 "title": "Longest Palindromic Substring", "titleSlug": "longest-palindromic-substring", "topicTags": []}
]}}}`

func TestFetchProblemSetVariables(t *testing.T) {
	srv, calls := graphQLServer(t, map[string]string{"problemsetQuestionList": mediumPage})

	set, err := New("", WithBaseURL(srv.URL)).FetchProblemSet(context.Background(), ListFilter{
		Difficulty: leetcode.Medium,
		Tags:       []string{"math"},
		Limit:      3,
		Page:       2,
	})
	require.NoError(t, err)
	assert.Len(t, set.Problems, 3)

	require.Len(t, *calls, 1)
	vars := (*calls)[0].Variables
	assert.Equal(t, float64(3), vars["limit"])
	assert.Equal(t, float64(3), vars["skip"])
	filters := vars["filters"].(map[string]any)
	assert.Equal(t, "MEDIUM", filters["difficulty"])
	assert.Equal(t, []any{"math"}, filters["tags"])
}

type fakeIndex map[string]string

func (f fakeIndex) QuestionIDForSlug(slug string) (string, bool) {
	id, ok := f["q:"+slug]
	return id, ok
}

func (f fakeIndex) SlugForFrontendID(id string) (string, bool) {
	slug, ok := f["f:"+id]
	return slug, ok
}

func TestQuestionIDPrefersIndex(t *testing.T) {
	srv, calls := graphQLServer(t, map[string]string{
		"questionTitle": `{"data": {"question": {"questionId": "2083", "questionFrontendId": "1960", "titleSlug": "maximum-product"}}}`,
	})
	c := New("", WithBaseURL(srv.URL))

	id, err := c.QuestionID(context.Background(), "two-sum", fakeIndex{"q:two-sum": "1"})
	require.NoError(t, err)
	assert.Equal(t, "1", id)
	assert.Empty(t, *calls)

	id, err = c.QuestionID(context.Background(), "maximum-product", fakeIndex{})
	require.NoError(t, err)
	assert.Equal(t, "2083", id)
	assert.Len(t, *calls, 1)
}

func TestQuestionIDUnknownSlug(t *testing.T) {
	srv, _ := graphQLServer(t, map[string]string{"questionTitle": `{"data": {"question": null}}`})

	_, err := New("", WithBaseURL(srv.URL)).QuestionID(context.Background(), "nope", nil)
	assert.ErrorIs(t, err, lcerrors.ErrUnknownSlug)
}

func TestResolveSlug(t *testing.T) {
	srv, calls := graphQLServer(t, map[string]string{"problemsetQuestionList": mediumPage})
	c := New("", WithBaseURL(srv.URL))
	ctx := context.Background()

	slug, err := c.ResolveSlug(ctx, "two-sum", nil)
	require.NoError(t, err)
	assert.Equal(t, "two-sum", slug)

	slug, err = c.ResolveSlug(ctx, "1", fakeIndex{"f:1": "two-sum"})
	require.NoError(t, err)
	assert.Equal(t, "two-sum", slug)
	assert.Empty(t, *calls)

	slug, err = c.ResolveSlug(ctx, "5", fakeIndex{})
	require.NoError(t, err)
	assert.Equal(t, "longest-palindromic-substring", slug)
	assert.Equal(t, "5", (*calls)[0].Variables["filters"].(map[string]any)["searchKeywords"])

	_, err = c.ResolveSlug(ctx, "9999", fakeIndex{})
	assert.ErrorIs(t, err, lcerrors.ErrUnknownSlug)
}

func TestFetchActivityJoinsTwoYears(t *testing.T) {
	var years []float64
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		var req graphQLRequest
		assert.NoError(t, json.NewDecoder(r.Body).Decode(&req))
		years = append(years, req.Variables["year"].(float64))
		_, _ = w.Write([]byte(`{"data": {"matchedUser": {"userCalendar": {"submissionCalendar": "{}"}}}}`))
	}))
	defer srv.Close()

	now := leetcode.Today(mustTime(t, "2026-03-01T15:04:05Z"))
	activity, err := New("", WithBaseURL(srv.URL)).FetchActivity(context.Background(), "alice", now)
	require.NoError(t, err)
	assert.Len(t, activity, leetcode.WindowDays+1)
	assert.Equal(t, []float64{2025, 2026}, years)
}

func mustTime(t *testing.T, value string) time.Time {
	t.Helper()
	ts, err := time.Parse(time.RFC3339, value)
	require.NoError(t, err)
	return ts
}
