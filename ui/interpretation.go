package ui

import (
	"fmt"
	"strings"

	"github.com/chibuka/leetcode-cli/internal/config"
	"github.com/chibuka/leetcode-cli/internal/leetcode"
	"github.com/chibuka/leetcode-cli/ui/theme"
)

// RenderInterpretation renders the outcome of a run. testcases holds the
// example inputs that were sent, one entry per case.
func RenderInterpretation(r *leetcode.InterpretationResult, testcases []string, b *theme.Bundle, flags config.ResultFlags) (string, error) {
	s := newStyles(b, "INTERPRETATION")
	label := s.get("label_field")
	value := s.get("value")
	errStyle := s.get("error_field")

	cases := len(r.ExpectedCodeAnswer)
	if cases == 0 {
		cases = len(r.CodeAnswer)
	}

	var sb strings.Builder
	if cases == 0 {
		sb.WriteString(caseBanner(r, -1, s))
		sb.WriteString("\n")
		if flags.ShowLanguage {
			sb.WriteString(LabelValue("Language", language(r.PrettyLang, r.Language), label, s.get("language")))
		}
	}

	for i := 0; i < cases; i++ {
		if i > 0 {
			sb.WriteString("\n")
		}
		sb.WriteString(caseBanner(r, i, s))
		sb.WriteString("\n")

		if flags.ShowLanguage {
			sb.WriteString(LabelValue("Language", language(r.PrettyLang, r.Language), label, s.get("language")))
		}
		if flags.ShowTestcases && i < len(testcases) {
			sb.WriteString(LabelValue("Input", testcases[i], label, value))
		}
		if flags.ShowExpectedOutput && i < len(r.ExpectedCodeAnswer) {
			sb.WriteString(LabelValue("Expected Output", r.ExpectedCodeAnswer[i], label, value))
		}
		if flags.ShowCodeOutput && i < len(r.CodeAnswer) {
			sb.WriteString(LabelValue("Your Output", r.CodeAnswer[i], label, value))
		}
		if flags.ShowStdout && i < len(r.StdOutputList) && r.StdOutputList[i] != "" {
			sb.WriteString(LabelValue("Stdout", strings.TrimRight(r.StdOutputList[i], "\n"), label, value))
		}
	}

	if flags.ShowRuntimeMemory && r.StatusRuntime != "" {
		sb.WriteString(LabelValue("Runtime", r.StatusRuntime, label, value))
		if r.StatusMemory != "" {
			sb.WriteString(LabelValue("Memory", r.StatusMemory, label, value))
		}
	}
	writeErrors(&sb, flags, label, errStyle, judgeErrors{
		runtime:     r.RuntimeError,
		fullRuntime: r.FullRuntimeError,
		compile:     r.CompileError,
		fullCompile: r.FullCompileError,
	})

	if s.err != nil {
		return "", s.err
	}
	return sb.String(), nil
}

// caseBanner decides the verdict of case i. Judged runs compare the answer
// against the expected one, every other status is shown as reported.
func caseBanner(r *leetcode.InterpretationResult, i int, s *styles) string {
	if r.StatusCode != leetcode.StatusCodeAccepted {
		return s.render("status_error", withCase(r.StatusMsg, i))
	}
	if i < 0 {
		return s.render("status_accepted", r.StatusMsg)
	}
	if i < len(r.CodeAnswer) && i < len(r.ExpectedCodeAnswer) && r.CodeAnswer[i] == r.ExpectedCodeAnswer[i] {
		return s.render("status_accepted", withCase("Accepted", i))
	}
	return s.render("status_wrong_answer", withCase("Wrong Answer", i))
}

func withCase(msg string, i int) string {
	if i < 0 {
		return msg
	}
	return fmt.Sprintf("Case %d: %s", i+1, msg)
}

func language(pretty, slug string) string {
	if pretty != "" {
		return pretty
	}
	return slug
}

type judgeErrors struct {
	runtime     string
	fullRuntime string
	compile     string
	fullCompile string
}

func writeErrors(sb *strings.Builder, flags config.ResultFlags, label, errStyle theme.Style, e judgeErrors) {
	if flags.ShowErrorMessages {
		if e.runtime != "" {
			sb.WriteString(LabelValue("Runtime Error", e.runtime, label, errStyle))
		}
		if e.compile != "" {
			sb.WriteString(LabelValue("Compile Error", e.compile, label, errStyle))
		}
	}
	if flags.ShowDetailedErrorMessages {
		if e.fullRuntime != "" {
			sb.WriteString(LabelValue("Details", strings.TrimRight(e.fullRuntime, "\n"), label, errStyle))
		}
		if e.fullCompile != "" {
			sb.WriteString(LabelValue("Details", strings.TrimRight(e.fullCompile, "\n"), label, errStyle))
		}
	}
}
