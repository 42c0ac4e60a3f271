package leetcode

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/chibuka/leetcode-cli/internal/lcerrors"
)

type checkPayload struct {
	StatusCode *int    `json:"status_code"`
	StatusMsg  *string `json:"status_msg"`
	Lang       string  `json:"lang"`
	PrettyLang string  `json:"pretty_lang"`
	State      *string `json:"state"`

	RuntimeError     string `json:"runtime_error"`
	FullRuntimeError string `json:"full_runtime_error"`
	CompileError     string `json:"compile_error"`
	FullCompileError string `json:"full_compile_error"`

	StatusRuntime string `json:"status_runtime"`
	StatusMemory  string `json:"status_memory"`
	Memory        int    `json:"memory"`
	ElapsedTime   int    `json:"elapsed_time"`

	TotalCorrect   *int `json:"total_correct"`
	TotalTestcases *int `json:"total_testcases"`
}

func (p *checkPayload) validate(what string) error {
	if p.State == nil {
		return missing(what, "state")
	}
	if *p.State != StateSuccess {
		return fmt.Errorf("%w, %s is still %s", lcerrors.ErrJudge, what, *p.State)
	}
	if p.StatusCode == nil {
		return missing(what, "status_code")
	}
	if p.StatusMsg == nil {
		return missing(what, "status_msg")
	}
	return nil
}

// ParseInterpretation decodes the terminal check payload of a run.
func ParseInterpretation(raw []byte) (*InterpretationResult, error) {
	var payload struct {
		checkPayload
		CodeAnswer         []string `json:"code_answer"`
		ExpectedCodeAnswer []string `json:"expected_code_answer"`
		StdOutputList      []string `json:"std_output_list"`
		CorrectAnswer      bool     `json:"correct_answer"`
	}
	if err := decode(raw, &payload, "interpretation"); err != nil {
		return nil, err
	}
	if err := payload.validate("interpretation"); err != nil {
		return nil, err
	}

	result := &InterpretationResult{
		StatusCode:         *payload.StatusCode,
		StatusMsg:          *payload.StatusMsg,
		Language:           payload.Lang,
		PrettyLang:         payload.PrettyLang,
		CodeAnswer:         payload.CodeAnswer,
		ExpectedCodeAnswer: payload.ExpectedCodeAnswer,
		StdOutputList:      payload.StdOutputList,
		RuntimeError:       payload.RuntimeError,
		FullRuntimeError:   payload.FullRuntimeError,
		CompileError:       payload.CompileError,
		FullCompileError:   payload.FullCompileError,
		ElapsedTime:        payload.ElapsedTime,
		StatusRuntime:      payload.StatusRuntime,
		Memory:             payload.Memory,
		StatusMemory:       payload.StatusMemory,
		CorrectAnswer:      payload.CorrectAnswer,
		TotalCorrect:       intOrZero(payload.TotalCorrect),
		TotalTestcases:     intOrZero(payload.TotalTestcases),
		State:              *payload.State,
	}
	if payload.TotalTestcases == nil {
		result.TotalTestcases = len(result.ExpectedCodeAnswer)
	}
	// the judge may pad code_answer with a trailing empty entry
	if n := len(result.ExpectedCodeAnswer); n > 0 && len(result.CodeAnswer) > n {
		result.CodeAnswer = result.CodeAnswer[:n]
	}
	return result, nil
}

// ParseSubmission decodes the terminal check payload of a submit.
func ParseSubmission(raw []byte) (*SubmissionResult, error) {
	var payload struct {
		checkPayload
		RuntimePercentile *float64 `json:"runtime_percentile"`
		MemoryPercentile  *float64 `json:"memory_percentile"`
		LastTestcase      string   `json:"last_testcase"`
		ExpectedOutput    string   `json:"expected_output"`
		CodeOutput        string   `json:"code_output"`
		StdOutput         string   `json:"std_output"`
	}
	if err := decode(raw, &payload, "submission"); err != nil {
		return nil, err
	}
	if err := payload.validate("submission"); err != nil {
		return nil, err
	}

	return &SubmissionResult{
		StatusCode:        *payload.StatusCode,
		StatusMsg:         *payload.StatusMsg,
		Language:          payload.Lang,
		PrettyLang:        payload.PrettyLang,
		StatusRuntime:     payload.StatusRuntime,
		RuntimePercentile: floatOrZero(payload.RuntimePercentile),
		StatusMemory:      payload.StatusMemory,
		MemoryPercentile:  floatOrZero(payload.MemoryPercentile),
		TotalCorrect:      intOrZero(payload.TotalCorrect),
		TotalTestcases:    intOrZero(payload.TotalTestcases),
		LastTestcase:      payload.LastTestcase,
		ExpectedOutput:    payload.ExpectedOutput,
		CodeOutput:        payload.CodeOutput,
		StdOutput:         payload.StdOutput,
		RuntimeError:      payload.RuntimeError,
		FullRuntimeError:  payload.FullRuntimeError,
		CompileError:      payload.CompileError,
		FullCompileError:  payload.FullCompileError,
		State:             *payload.State,
	}, nil
}

// ParseJudgeID extracts interpret_id or submission_id from a submit-phase
// response. The platform sends the id as a number or a string.
func ParseJudgeID(raw []byte, field string) (string, error) {
	var payload map[string]json.RawMessage
	if err := decode(raw, &payload, "judge response"); err != nil {
		return "", err
	}
	value, ok := payload[field]
	if !ok || string(value) == "null" {
		return "", fmt.Errorf("%w, response has no %s", lcerrors.ErrNoJudgeID, field)
	}
	id := strings.Trim(string(value), `"`)
	if id == "" {
		return "", fmt.Errorf("%w, response has an empty %s", lcerrors.ErrNoJudgeID, field)
	}
	return id, nil
}

// ParseJudgeState reads the state field of a poll response.
func ParseJudgeState(raw []byte) (string, error) {
	var payload struct {
		State *string `json:"state"`
	}
	if err := decode(raw, &payload, "judge check"); err != nil {
		return "", err
	}
	if payload.State == nil || *payload.State == "" {
		return "", fmt.Errorf("%w, check response has no state", lcerrors.ErrJudge)
	}
	return *payload.State, nil
}
