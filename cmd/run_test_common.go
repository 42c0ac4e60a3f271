package cmd

import (
	"context"
	"fmt"
	"os"
	"strings"

	log "github.com/sirupsen/logrus"

	"github.com/chibuka/leetcode-cli/client"
	"github.com/chibuka/leetcode-cli/internal/lang"
	"github.com/chibuka/leetcode-cli/internal/lcerrors"
	"github.com/chibuka/leetcode-cli/ui"
)

var (
	interpretationSections = []string{
		"language", "testcases", "expected_output", "code_output",
		"stdout", "error_messages", "detailed_error_messages",
	}
	submissionSections = append([]string{"runtime_memory"}, interpretationSections...)
)

// loadSolution reads a "<id>.<slug>.<ext>" file and resolves the internal
// question ID the judge needs.
func loadSolution(ctx context.Context, a *app, path string) (client.Solution, error) {
	file, err := lang.ParseSolutionPath(path)
	if err != nil {
		return client.Solution{}, err
	}
	if err := a.requireCookie(); err != nil {
		return client.Solution{}, err
	}

	code, err := os.ReadFile(path)
	if err != nil {
		return client.Solution{}, fmt.Errorf("%w, cannot read %s, %w", lcerrors.ErrProblem, path, err)
	}

	idx, err := a.index()
	if err != nil {
		return client.Solution{}, err
	}
	questionID, err := a.client.QuestionID(ctx, file.Slug, idx)
	if err != nil {
		return client.Solution{}, err
	}

	log.WithFields(log.Fields{
		"slug":        file.Slug,
		"question_id": questionID,
		"language":    file.Language,
	}).Debug("solution loaded")
	return client.Solution{
		Slug:       file.Slug,
		QuestionID: questionID,
		Language:   file.Language,
		Code:       string(code),
	}, nil
}

// runOrSubmit drives one judging workflow for the file at path and prints
// the rendered result.
func runOrSubmit(ctx context.Context, a *app, path string, include []string, isSubmit bool) error {
	bundle, err := a.bundle()
	if err != nil {
		return err
	}
	sol, err := loadSolution(ctx, a, path)
	if err != nil {
		return err
	}

	var out string
	if isSubmit {
		result, err := a.judge().Submit(ctx, sol)
		if err != nil {
			return err
		}
		out, err = ui.RenderSubmission(result, bundle, a.formatting.Submission.Only(include))
		if err != nil {
			return err
		}
	} else {
		testcases, err := a.client.FetchTestcases(ctx, sol.Slug)
		if err != nil {
			return err
		}
		result, err := a.judge().Run(ctx, sol, strings.Join(testcases, "\n"))
		if err != nil {
			return err
		}
		out, err = ui.RenderInterpretation(result, testcases, bundle, a.formatting.Interpretation.Only(include))
		if err != nil {
			return err
		}
	}

	fmt.Fprintln(a.out)
	fmt.Fprint(a.out, out)
	return nil
}
