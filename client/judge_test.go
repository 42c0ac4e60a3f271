package client

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/chibuka/leetcode-cli/internal/lcerrors"
	"github.com/chibuka/leetcode-cli/ui/messages"
)

// stubJudge answers the submit endpoints with submitBody and the check
// endpoint with checks, repeating the last one.
func stubJudge(t *testing.T, submitBody string, checks ...string) (*httptest.Server, *int32, *map[string]any) {
	t.Helper()
	var polls int32
	submitted := map[string]any{}

	mux := http.NewServeMux()
	submit := func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "tok", r.Header.Get("x-csrftoken"))
		assert.NoError(t, json.NewDecoder(r.Body).Decode(&submitted))
		_, _ = w.Write([]byte(submitBody))
	}
	mux.HandleFunc("/problems/two-sum/submit/", submit)
	mux.HandleFunc("/problems/two-sum/interpret_solution/", submit)
	mux.HandleFunc("/submissions/detail/", func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodGet, r.Method)
		n := int(atomic.AddInt32(&polls, 1))
		if n > len(checks) {
			n = len(checks)
		}
		_, _ = w.Write([]byte(checks[n-1]))
	})

	srv := httptest.NewServer(mux)
	t.Cleanup(srv.Close)
	return srv, &polls, &submitted
}

var twoSum = Solution{Slug: "two-sum", QuestionID: "1", Language: "python3", Code: "class Solution: pass"}

func TestSubmitPollsUntilSuccess(t *testing.T) {
	srv, polls, submitted := stubJudge(t,
		`{"submission_id": 987}`,
		`{"state": "PENDING"}`,
		`{"state": "PENDING"}`,
		`{"state": "SUCCESS", "status_code": 10, "status_msg": "Accepted", "lang": "python3",
		  "total_correct": 5, "total_testcases": 5, "status_runtime": "3 ms", "runtime_percentile": 98.5}`,
	)

	var seen []messages.Msg
	judge := NewJudge(
		New("csrftoken=tok", WithBaseURL(srv.URL)),
		WithPollInterval(time.Millisecond),
		WithObserver(func(m messages.Msg) { seen = append(seen, m) }),
	)

	result, err := judge.Submit(context.Background(), twoSum)
	require.NoError(t, err)

	assert.Equal(t, int32(3), atomic.LoadInt32(polls))
	assert.Equal(t, "Accepted", result.StatusMsg)
	assert.Equal(t, 5, result.TotalCorrect)
	assert.Equal(t, 5, result.TotalTestcases)
	assert.Equal(t, PhaseDone, judge.Phase())

	assert.Equal(t, "1", (*submitted)["question_id"])
	assert.Equal(t, "python3", (*submitted)["lang"])
	assert.NotContains(t, *submitted, "data_input")

	require.Len(t, seen, 4)
	assert.IsType(t, messages.SubmittingMsg{}, seen[0])
	assert.Equal(t, messages.PollingMsg{Kind: messages.KindSubmit, ID: "987", State: "PENDING", Attempt: 2}, seen[2])
	assert.Equal(t, messages.DoneMsg{Kind: messages.KindSubmit, ID: "987", StatusMsg: "Accepted", Polls: 3}, seen[3])
}

func TestRunSendsDataInput(t *testing.T) {
	srv, _, submitted := stubJudge(t,
		`{"interpret_id": "runcode_1", "test_case": "[2,7]\n9"}`,
		`{"state": "STARTED"}`,
		`{"state": "SUCCESS", "status_code": 10, "status_msg": "Accepted",
		  "code_answer": ["[0,1]"], "expected_code_answer": ["[0,1]"], "total_testcases": 1}`,
	)

	judge := NewJudge(New("csrftoken=tok", WithBaseURL(srv.URL)), WithPollInterval(time.Millisecond))
	result, err := judge.Run(context.Background(), twoSum, "[2,7]\n9")
	require.NoError(t, err)

	assert.Equal(t, "[2,7]\n9", (*submitted)["data_input"])
	assert.Equal(t, []string{"[0,1]"}, result.CodeAnswer)
	assert.Equal(t, "SUCCESS", result.State)
}

func TestSubmitWithoutID(t *testing.T) {
	srv, polls, _ := stubJudge(t, `{"error": "You have attempted to run code too soon"}`, `{}`)

	var failed messages.FailedMsg
	judge := NewJudge(
		New("csrftoken=tok", WithBaseURL(srv.URL)),
		WithObserver(func(m messages.Msg) {
			if f, ok := m.(messages.FailedMsg); ok {
				failed = f
			}
		}),
	)

	_, err := judge.Submit(context.Background(), twoSum)
	assert.ErrorIs(t, err, lcerrors.ErrNoJudgeID)
	assert.Equal(t, PhaseFailed, judge.Phase())
	assert.Equal(t, int32(0), atomic.LoadInt32(polls))
	assert.ErrorIs(t, failed.Err, lcerrors.ErrJudge)
}

func TestPollTransportErrorIsFatal(t *testing.T) {
	mux := http.NewServeMux()
	mux.HandleFunc("/problems/two-sum/submit/", func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"submission_id": 1}`))
	})
	var polls int32
	mux.HandleFunc("/submissions/detail/1/check/", func(w http.ResponseWriter, r *http.Request) {
		atomic.AddInt32(&polls, 1)
		w.WriteHeader(http.StatusInternalServerError)
	})
	srv := httptest.NewServer(mux)
	defer srv.Close()

	_, err := NewJudge(New("csrftoken=tok", WithBaseURL(srv.URL))).Submit(context.Background(), twoSum)
	assert.ErrorIs(t, err, lcerrors.ErrFetch)
	assert.Equal(t, int32(1), atomic.LoadInt32(&polls))
}

func TestPollStopsOnCancel(t *testing.T) {
	srv, _, _ := stubJudge(t, `{"submission_id": 5}`, `{"state": "PENDING"}`)

	ctx, cancel := context.WithCancel(context.Background())
	judge := NewJudge(
		New("csrftoken=tok", WithBaseURL(srv.URL)),
		WithPollInterval(time.Millisecond),
		WithObserver(func(m messages.Msg) {
			if p, ok := m.(messages.PollingMsg); ok && p.Attempt == 3 {
				cancel()
			}
		}),
	)

	_, err := judge.Submit(ctx, twoSum)
	assert.ErrorIs(t, err, context.Canceled)
}
