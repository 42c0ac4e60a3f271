package leetcode

import (
	"fmt"
	"strings"

	"github.com/chibuka/leetcode-cli/internal/lcerrors"
)

type Difficulty string

const (
	Easy   Difficulty = "Easy"
	Medium Difficulty = "Medium"
	Hard   Difficulty = "Hard"
)

// Difficulties lists the three levels in display order.
var Difficulties = []Difficulty{Easy, Medium, Hard}

// ParseDifficulty accepts any casing of easy/medium/hard.
func ParseDifficulty(s string) (Difficulty, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "easy":
		return Easy, nil
	case "medium":
		return Medium, nil
	case "hard":
		return Hard, nil
	default:
		return "", fmt.Errorf("%w, unknown difficulty %q", lcerrors.ErrFieldType, s)
	}
}

// Key is the lower-case form used in theme keys and API filters.
func (d Difficulty) Key() string {
	return strings.ToLower(string(d))
}

type Example struct {
	Title       string
	Input       []string
	Output      string
	Explanation string
}

type SolutionInfo struct {
	ID               string
	CanSeeDetail     bool
	PaidOnly         bool
	HasVideoSolution bool
}

type Problem struct {
	QuestionID string
	FrontendID string
	Slug       string
	Title      string
	Difficulty Difficulty
	Tags       []string

	Content     string
	Description string
	Examples    []Example
	Constraints []string
	Hints       []string

	Stats    map[string]any
	Likes    int
	Dislikes int
	PaidOnly bool
	Solution *SolutionInfo

	// CodeSnippets maps language slug to starter code.
	CodeSnippets map[string]string
}

type Status string

const (
	StatusAccepted  Status = "accepted"
	StatusAttempted Status = "attempted"
	StatusNone      Status = "none"
)

type ProblemSummary struct {
	FrontendID string
	Slug       string
	Title      string
	Difficulty Difficulty
	ACRate     float64
	Tags       []string
	PaidOnly   bool
	Status     Status
}

type ProblemSet struct {
	Total    int
	Problems []ProblemSummary
}

// QuestionRef ties a slug to both of its numeric identities.
type QuestionRef struct {
	QuestionID string
	FrontendID string
	Slug       string
	Title      string
	Difficulty Difficulty
	PaidOnly   bool
}

// Snippets is the editor payload used to scaffold solution files.
type Snippets struct {
	QuestionID string
	FrontendID string
	Slug       string
	Code       map[string]string
}

const (
	StatusCodeAccepted            = 10
	StatusCodeWrongAnswer         = 11
	StatusCodeMemoryLimitExceeded = 12
	StatusCodeOutputLimitExceeded = 13
	StatusCodeTimeLimitExceeded   = 14
	StatusCodeRuntimeError        = 15
	StatusCodeInternalError       = 16
	StatusCodeCompileError        = 20
	StatusCodeTimeout             = 30
)

// StateSuccess is the terminal judge state.
const StateSuccess = "SUCCESS"

type InterpretationResult struct {
	StatusCode int
	StatusMsg  string
	Language   string
	PrettyLang string

	CodeAnswer         []string
	ExpectedCodeAnswer []string
	StdOutputList      []string

	RuntimeError     string
	FullRuntimeError string
	CompileError     string
	FullCompileError string

	ElapsedTime   int
	StatusRuntime string
	Memory        int
	StatusMemory  string

	CorrectAnswer  bool
	TotalCorrect   int
	TotalTestcases int
	State          string
}

type SubmissionResult struct {
	StatusCode int
	StatusMsg  string
	Language   string
	PrettyLang string

	StatusRuntime     string
	RuntimePercentile float64
	StatusMemory      string
	MemoryPercentile  float64

	TotalCorrect   int
	TotalTestcases int

	LastTestcase   string
	ExpectedOutput string
	CodeOutput     string
	StdOutput      string

	RuntimeError     string
	FullRuntimeError string
	CompileError     string
	FullCompileError string

	State string
}

// Accepted reports whether the full test suite passed.
func (r *SubmissionResult) Accepted() bool {
	return r.StatusCode == StatusCodeAccepted
}

type UserStats struct {
	Accepted  map[Difficulty]int
	Failed    map[Difficulty]int
	Untouched map[Difficulty]int
	Beats     map[Difficulty]float64
}

// Total is the number of questions of a difficulty on the platform.
func (s *UserStats) Total(d Difficulty) int {
	return s.Accepted[d] + s.Failed[d] + s.Untouched[d]
}

// UserActivity maps UTC-midnight epoch seconds to submission counts.
type UserActivity map[int64]int
