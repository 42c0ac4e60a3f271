package ui

import (
	"fmt"
	"strings"

	"github.com/chibuka/leetcode-cli/internal/config"
	"github.com/chibuka/leetcode-cli/internal/leetcode"
	"github.com/chibuka/leetcode-cli/ui/theme"
)

// RenderSubmission renders the verdict of a full judging.
func RenderSubmission(r *leetcode.SubmissionResult, b *theme.Bundle, flags config.ResultFlags) (string, error) {
	s := newStyles(b, "SUBMISSION")
	label := s.get("label_field")
	value := s.get("value")

	var sb strings.Builder
	sb.WriteString(s.render(verdictKey(r.StatusCode), r.StatusMsg))
	sb.WriteString("\n")

	if flags.ShowLanguage {
		sb.WriteString(LabelValue("Language", language(r.PrettyLang, r.Language), label, s.get("language")))
	}
	if flags.ShowTestcases {
		sb.WriteString(LabelValue("Passed Testcases", fmt.Sprintf("%d / %d", r.TotalCorrect, r.TotalTestcases), label, value))
	}
	if flags.ShowRuntimeMemory && r.Accepted() {
		beats := s.get("beats")
		sb.WriteString(LabelValue("Runtime", withBeats(r.StatusRuntime, r.RuntimePercentile, value, beats), label, theme.Style{}))
		sb.WriteString(LabelValue("Memory", withBeats(r.StatusMemory, r.MemoryPercentile, value, beats), label, theme.Style{}))
	}

	if !r.Accepted() {
		if flags.ShowTestcases && r.LastTestcase != "" {
			sb.WriteString(LabelValue("Last Testcase", r.LastTestcase, label, value))
		}
		if flags.ShowExpectedOutput && r.ExpectedOutput != "" {
			sb.WriteString(LabelValue("Expected Output", r.ExpectedOutput, label, value))
		}
		if flags.ShowCodeOutput && r.CodeOutput != "" {
			sb.WriteString(LabelValue("Your Output", r.CodeOutput, label, value))
		}
		if flags.ShowStdout && r.StdOutput != "" {
			sb.WriteString(LabelValue("Stdout", strings.TrimRight(r.StdOutput, "\n"), label, value))
		}
		writeErrors(&sb, flags, label, s.get("error_field"), judgeErrors{
			runtime:     r.RuntimeError,
			fullRuntime: r.FullRuntimeError,
			compile:     r.CompileError,
			fullCompile: r.FullCompileError,
		})
	}

	if s.err != nil {
		return "", s.err
	}
	return sb.String(), nil
}

func verdictKey(code int) string {
	switch code {
	case leetcode.StatusCodeAccepted:
		return "status_accepted"
	case leetcode.StatusCodeWrongAnswer:
		return "status_wrong_answer"
	default:
		return "status_error"
	}
}

func withBeats(measure string, percentile float64, value, beats theme.Style) string {
	return value.Render(measure) + " " + beats.Render(fmt.Sprintf("(beats %.2f%%)", percentile))
}
