package client

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/chibuka/leetcode-cli/internal/lcerrors"
)

func TestExtractCSRFToken(t *testing.T) {
	tests := []struct {
		cookie string
		want   string
	}{
		{"a=1; csrftoken=XYZ; b=2", "XYZ"},
		{"csrftoken=abc", "abc"},
		{"LEETCODE_SESSION=s; csrftoken=t0k3n;", "t0k3n"},
		{"csrftoken=; b=2", ""},
		{"a=1; b=2", ""},
		{"", ""},
	}
	for _, test := range tests {
		assert.Equal(t, test.want, ExtractCSRFToken(test.cookie), test.cookie)
	}
}

func TestSessionUsername(t *testing.T) {
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{"username": "alice", "id": "42"})
	signed, err := token.SignedString([]byte("not-the-platform-key"))
	require.NoError(t, err)

	username, ok := SessionUsername("csrftoken=x; LEETCODE_SESSION=" + signed + "; other=1")
	require.True(t, ok)
	assert.Equal(t, "alice", username)

	_, ok = SessionUsername("csrftoken=x")
	assert.False(t, ok)
	_, ok = SessionUsername("LEETCODE_SESSION=garbage")
	assert.False(t, ok)
}

func TestGraphQLAuthenticatedHeaders(t *testing.T) {
	var got http.Header
	var body graphQLRequest
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/graphql/", r.URL.Path)
		got = r.Header.Clone()
		assert.NoError(t, json.NewDecoder(r.Body).Decode(&body))
		_, _ = w.Write([]byte(`{"data": {"question": {"questionId": "1"}}}`))
	}))
	defer srv.Close()

	c := New("a=1; csrftoken=XYZ; b=2", WithBaseURL(srv.URL))
	data, err := c.GraphQL(context.Background(), QueryProblemID, map[string]any{"titleSlug": "two-sum"})
	require.NoError(t, err)
	assert.JSONEq(t, `{"question": {"questionId": "1"}}`, string(data))

	assert.Equal(t, "application/json", got.Get("Content-Type"))
	assert.Equal(t, UserAgent, got.Get("User-Agent"))
	assert.Equal(t, "a=1; csrftoken=XYZ; b=2", got.Get("Cookie"))
	assert.Equal(t, "XYZ", got.Get("x-csrftoken"))
	assert.Equal(t, srv.URL+"/problems/two-sum/", got.Get("Referer"))

	assert.Equal(t, "questionTitle", body.OperationName)
	assert.Contains(t, body.Query, "questionId")
	assert.Equal(t, "two-sum", body.Variables["titleSlug"])
}

func TestGraphQLAnonymous(t *testing.T) {
	var got http.Header
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		got = r.Header.Clone()
		_, _ = w.Write([]byte(`{"data": {"randomQuestion": {"titleSlug": "two-sum"}}}`))
	}))
	defer srv.Close()

	slug, err := New("", WithBaseURL(srv.URL)).RandomSlug(context.Background(), "")
	require.NoError(t, err)
	assert.Equal(t, "two-sum", slug)
	assert.Empty(t, got.Get("Cookie"))
	assert.Empty(t, got.Get("x-csrftoken"))
}

func TestFetchErrors(t *testing.T) {
	tests := []struct {
		name   string
		status int
		body   string
		kind   lcerrors.FetchKind
	}{
		{"unauthorized", http.StatusUnauthorized, `{}`, lcerrors.FetchHTTP},
		{"server error", http.StatusBadGateway, `oops`, lcerrors.FetchHTTP},
		{"not json", http.StatusOK, `<html>login</html>`, lcerrors.FetchDecode},
		{"graphql errors", http.StatusOK, `{"errors": [{"message": "That user does not exist."}], "data": null}`, lcerrors.FetchAPI},
	}
	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(test.status)
				_, _ = w.Write([]byte(test.body))
			}))
			defer srv.Close()

			_, err := New("csrftoken=x", WithBaseURL(srv.URL)).GraphQL(context.Background(), QueryUserProblemStats, nil)
			require.ErrorIs(t, err, lcerrors.ErrFetch)

			var fetchErr *lcerrors.FetchError
			require.ErrorAs(t, err, &fetchErr)
			assert.Equal(t, test.kind, fetchErr.Kind)
			if test.status == http.StatusUnauthorized {
				assert.True(t, lcerrors.Unauthorized(err))
				assert.Contains(t, err.Error(), "cookie")
			}
		})
	}
}

func TestNetworkError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	url := srv.URL
	srv.Close()

	_, err := New("", WithBaseURL(url)).GetJSON(context.Background(), "/anything", false)
	var fetchErr *lcerrors.FetchError
	require.ErrorAs(t, err, &fetchErr)
	assert.Equal(t, lcerrors.FetchNetwork, fetchErr.Kind)
}

func TestAuthenticatedCallWithoutCookie(t *testing.T) {
	_, err := New("").PostJSON(context.Background(), "/problems/two-sum/submit/", map[string]any{}, true)
	assert.ErrorIs(t, err, lcerrors.ErrMissingConfigKey)
}

func TestUnknownQuery(t *testing.T) {
	_, err := New("").GraphQL(context.Background(), "no-such-query", nil)
	assert.Error(t, err)
}
