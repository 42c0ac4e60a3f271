package client

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	log "github.com/sirupsen/logrus"

	"github.com/chibuka/leetcode-cli/internal/leetcode"
	"github.com/chibuka/leetcode-cli/ui/messages"
)

// DefaultPollInterval is the pause between two checks of a pending judgement.
const DefaultPollInterval = 200 * time.Millisecond

// Phase is the state of one judging workflow.
type Phase int

const (
	PhaseIdle Phase = iota
	PhaseSubmitting
	PhasePolling
	PhaseDone
	PhaseFailed
)

func (p Phase) String() string {
	switch p {
	case PhaseIdle:
		return "idle"
	case PhaseSubmitting:
		return "submitting"
	case PhasePolling:
		return "polling"
	case PhaseDone:
		return "done"
	case PhaseFailed:
		return "failed"
	default:
		return "unknown"
	}
}

// Solution is the code sent to the judge.
type Solution struct {
	Slug       string
	QuestionID string
	Language   string
	Code       string
}

// Judge drives the submit-then-poll workflows. Polling has no overall
// timeout: it stops on a terminal state, a transport error or ctx.
type Judge struct {
	client   *Client
	interval time.Duration
	observe  func(messages.Msg)
	phase    Phase
}

type JudgeOption func(*Judge)

func WithPollInterval(d time.Duration) JudgeOption {
	return func(j *Judge) {
		j.interval = d
	}
}

// WithObserver receives every state transition synchronously.
func WithObserver(fn func(messages.Msg)) JudgeOption {
	return func(j *Judge) {
		j.observe = fn
	}
}

func NewJudge(c *Client, opts ...JudgeOption) *Judge {
	j := &Judge{
		client:   c,
		interval: DefaultPollInterval,
		observe:  func(messages.Msg) {},
	}
	for _, opt := range opts {
		opt(j)
	}
	return j
}

func (j *Judge) Phase() Phase {
	return j.phase
}

// Run evaluates sol against dataInput (the example testcases joined by newlines).
func (j *Judge) Run(ctx context.Context, sol Solution, dataInput string) (*leetcode.InterpretationResult, error) {
	body := map[string]any{
		"data_input":  dataInput,
		"lang":        sol.Language,
		"question_id": sol.QuestionID,
		"typed_code":  sol.Code,
	}
	path := fmt.Sprintf("/problems/%s/interpret_solution/", sol.Slug)

	raw, err := j.judge(ctx, messages.KindRun, sol, path, body, "interpret_id")
	if err != nil {
		return nil, err
	}
	return leetcode.ParseInterpretation(raw)
}

// Submit sends sol for judging against the full hidden test suite.
func (j *Judge) Submit(ctx context.Context, sol Solution) (*leetcode.SubmissionResult, error) {
	body := map[string]any{
		"lang":        sol.Language,
		"question_id": sol.QuestionID,
		"typed_code":  sol.Code,
	}
	path := fmt.Sprintf("/problems/%s/submit/", sol.Slug)

	raw, err := j.judge(ctx, messages.KindSubmit, sol, path, body, "submission_id")
	if err != nil {
		return nil, err
	}
	return leetcode.ParseSubmission(raw)
}

func (j *Judge) judge(ctx context.Context, kind messages.Kind, sol Solution, path string, body any, idField string) (json.RawMessage, error) {
	j.phase = PhaseSubmitting
	j.observe(messages.SubmittingMsg{Kind: kind, Slug: sol.Slug, Language: sol.Language})

	raw, err := j.client.PostJSON(ctx, path, body, true, ForProblem(sol.Slug))
	if err != nil {
		return nil, j.fail(kind, "", err)
	}
	id, err := leetcode.ParseJudgeID(raw, idField)
	if err != nil {
		return nil, j.fail(kind, "", err)
	}

	j.phase = PhasePolling
	final, polls, err := j.poll(ctx, kind, sol.Slug, id)
	if err != nil {
		return nil, j.fail(kind, id, err)
	}

	j.phase = PhaseDone
	j.observe(messages.DoneMsg{Kind: kind, ID: id, StatusMsg: statusMsg(final), Polls: polls})
	return final, nil
}

func (j *Judge) poll(ctx context.Context, kind messages.Kind, slug, id string) (json.RawMessage, int, error) {
	logger := log.WithFields(log.Fields{"judge_id": id, "kind": kind})
	path := fmt.Sprintf("/submissions/detail/%s/check/", id)

	for attempt := 1; ; attempt++ {
		raw, err := j.client.GetJSON(ctx, path, true, ForProblem(slug))
		if err != nil {
			return nil, attempt, err
		}
		state, err := leetcode.ParseJudgeState(raw)
		if err != nil {
			return nil, attempt, err
		}
		logger.WithField("attempt", attempt).Debugf("judge state %s", state)

		if state == leetcode.StateSuccess {
			return raw, attempt, nil
		}
		j.observe(messages.PollingMsg{Kind: kind, ID: id, State: state, Attempt: attempt})

		select {
		case <-ctx.Done():
			return nil, attempt, ctx.Err()
		case <-time.After(j.interval):
		}
	}
}

func (j *Judge) fail(kind messages.Kind, id string, err error) error {
	j.phase = PhaseFailed
	j.observe(messages.FailedMsg{Kind: kind, ID: id, Err: err})
	return err
}

func statusMsg(raw json.RawMessage) string {
	var payload struct {
		StatusMsg string `json:"status_msg"`
	}
	_ = json.Unmarshal(raw, &payload)
	return payload.StatusMsg
}
