package ui

import (
	"bytes"
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/chibuka/leetcode-cli/client"
	"github.com/chibuka/leetcode-cli/internal/config"
	"github.com/chibuka/leetcode-cli/internal/leetcode"
	"github.com/chibuka/leetcode-cli/ui/messages"
)

func TestSubmitThenRender(t *testing.T) {
	checks := []string{
		`{"state": "PENDING"}`,
		`{"state": "PENDING"}`,
		`{"state": "SUCCESS", "status_code": 10, "status_msg": "Accepted", "lang": "python3", "pretty_lang": "Python3",
		  "total_correct": 5, "total_testcases": 5, "status_runtime": "3 ms", "runtime_percentile": 98.5,
		  "status_memory": "16.4 MB", "memory_percentile": 40.25}`,
	}
	var polls int32
	mux := http.NewServeMux()
	mux.HandleFunc("/problems/two-sum/submit/", func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"submission_id": 987}`))
	})
	mux.HandleFunc("/submissions/detail/987/check/", func(w http.ResponseWriter, r *http.Request) {
		n := atomic.AddInt32(&polls, 1)
		_, _ = w.Write([]byte(checks[n-1]))
	})
	srv := httptest.NewServer(mux)
	defer srv.Close()

	var progress bytes.Buffer
	judge := client.NewJudge(
		client.New("csrftoken=tok", client.WithBaseURL(srv.URL)),
		client.WithPollInterval(time.Millisecond),
		client.WithObserver(NewProgress(&progress).Observe),
	)
	result, err := judge.Submit(context.Background(), client.Solution{
		Slug: "two-sum", QuestionID: "1", Language: "python3", Code: "class Solution: pass",
	})
	require.NoError(t, err)

	b := defaultTheme(t)
	out, err := RenderSubmission(result, b, config.DefaultFormatting().Submission)
	require.NoError(t, err)

	accepted := mustStyle(t, b, "SUBMISSION", "status_accepted")
	assert.True(t, strings.HasPrefix(out, accepted.Render("Accepted")))
	plain := stripANSI(out)
	assert.Regexp(t, `Passed Testcases\s+: 5 / 5`, plain)
	assert.Contains(t, plain, "3 ms (beats 98.50%)")
	assert.Contains(t, plain, "16.4 MB (beats 40.25%)")
	assert.Contains(t, plain, "Python3")
	assert.NotContains(t, plain, "Expected Output")

	lines := strings.Split(strings.TrimSuffix(progress.String(), "\n"), "\n")
	require.Len(t, lines, 3, progress.String())
	assert.Contains(t, lines[0], "Submitting two-sum (python3)")
	assert.Contains(t, lines[1], "987 PENDING")
	assert.Contains(t, lines[2], "judged after 3 checks")
}

func TestRenderSubmissionFailure(t *testing.T) {
	b := defaultTheme(t)
	result := &leetcode.SubmissionResult{
		StatusCode:     leetcode.StatusCodeWrongAnswer,
		StatusMsg:      "Wrong Answer",
		Language:       "python3",
		TotalCorrect:   3,
		TotalTestcases: 5,
		LastTestcase:   "[3,3]\n6",
		ExpectedOutput: "[0,1]",
		CodeOutput:     "[]",
		StdOutput:      "debug\n",
	}

	out, err := RenderSubmission(result, b, config.DefaultFormatting().Submission)
	require.NoError(t, err)

	wrong := mustStyle(t, b, "SUBMISSION", "status_wrong_answer")
	assert.True(t, strings.HasPrefix(out, wrong.Render("Wrong Answer")))
	plain := stripANSI(out)
	assert.Contains(t, plain, "3 / 5")
	assert.Contains(t, plain, "[3,3]\n"+strings.Repeat(" ", LabelWidth+4)+"6")
	assert.Contains(t, plain, "Expected Output")
	assert.Contains(t, plain, "debug")
	assert.NotContains(t, plain, "beats")

	hidden, err := RenderSubmission(result, b, config.DefaultFormatting().Submission.Only([]string{"language"}))
	require.NoError(t, err)
	assert.NotContains(t, stripANSI(hidden), "Expected Output")
	assert.Contains(t, stripANSI(hidden), "python3")
}

func TestRenderInterpretation(t *testing.T) {
	b := defaultTheme(t)
	result := &leetcode.InterpretationResult{
		StatusCode:         leetcode.StatusCodeAccepted,
		StatusMsg:          "Accepted",
		Language:           "python3",
		CodeAnswer:         []string{"[0,1]", "[2,1]"},
		ExpectedCodeAnswer: []string{"[0,1]", "[1,2]"},
		StdOutputList:      []string{"", "hi\n"},
		StatusRuntime:      "0 ms",
		TotalTestcases:     2,
		State:              leetcode.StateSuccess,
	}

	out, err := RenderInterpretation(result, []string{"[2,7,11,15]\n9", "[3,2,4]\n6"}, b, config.DefaultFormatting().Interpretation)
	require.NoError(t, err)

	accepted := mustStyle(t, b, "INTERPRETATION", "status_accepted").Render("Case 1: Accepted")
	wrong := mustStyle(t, b, "INTERPRETATION", "status_wrong_answer").Render("Case 2: Wrong Answer")
	assert.Contains(t, out, accepted)
	assert.Contains(t, out, wrong)

	plain := stripANSI(out)
	assert.Contains(t, plain, "[3,2,4]\n"+strings.Repeat(" ", LabelWidth+4)+"6")
	assert.Contains(t, plain, "hi")
	assert.Equal(t, 1, strings.Count(plain, "Stdout"))
}

func TestRenderInterpretationCompileError(t *testing.T) {
	b := defaultTheme(t)
	result := &leetcode.InterpretationResult{
		StatusCode:       leetcode.StatusCodeCompileError,
		StatusMsg:        "Compile Error",
		Language:         "cpp",
		CompileError:     "Line 3: expected ';'",
		FullCompileError: "Line 3: expected ';'\n  int x",
		State:            leetcode.StateSuccess,
	}

	out, err := RenderInterpretation(result, nil, b, config.DefaultFormatting().Interpretation)
	require.NoError(t, err)

	banner := mustStyle(t, b, "INTERPRETATION", "status_error").Render("Compile Error")
	assert.Equal(t, 1, strings.Count(out, banner))
	plain := stripANSI(out)
	assert.Contains(t, plain, "Line 3: expected ';'")
	assert.Contains(t, plain, "int x")
}

func TestProgressFailure(t *testing.T) {
	var buf bytes.Buffer
	p := NewProgress(&buf)
	p.Observe(messages.SubmittingMsg{Kind: messages.KindRun, Slug: "two-sum", Language: "golang"})
	p.Observe(messages.PollingMsg{Kind: messages.KindRun, ID: "runcode_1", State: "PENDING", Attempt: 1})
	p.Observe(messages.PollingMsg{Kind: messages.KindRun, ID: "runcode_1", State: "STARTED", Attempt: 2})
	p.Observe(messages.PollingMsg{Kind: messages.KindRun, ID: "runcode_1", State: "STARTED", Attempt: 3})
	p.Observe(messages.FailedMsg{Kind: messages.KindRun, ID: "runcode_1", Err: errors.New("boom")})

	lines := strings.Split(strings.TrimSuffix(buf.String(), "\n"), "\n")
	require.Len(t, lines, 4)
	assert.Contains(t, lines[0], "Running two-sum (golang)")
	assert.Contains(t, lines[2], "STARTED")
	assert.Contains(t, lines[3], "✗ boom")
}
