package ui

import (
	"fmt"
	"strings"

	"github.com/chibuka/leetcode-cli/internal/leetcode"
	"github.com/chibuka/leetcode-cli/ui/theme"
)

const (
	titleWidth      = 79
	difficultyWidth = 8
)

// RenderProblemList renders one line per problem:
// "\t<status><[id]> <title> <difficulty> (<ac rate> %)".
func RenderProblemList(set *leetcode.ProblemSet, b *theme.Bundle) (string, error) {
	s := newStyles(b, "PROBLEM_LIST")

	var sb strings.Builder
	for _, p := range set.Problems {
		line := fmt.Sprintf("\t%s%s %s %s (%.2f %%)",
			s.render("status_"+string(p.Status), ""),
			s.render("question_id", p.FrontendID),
			padRight(p.Title, titleWidth),
			s.render("difficulty_"+p.Difficulty.Key(), padRight(string(p.Difficulty), difficultyWidth)),
			p.ACRate,
		)
		if p.PaidOnly {
			line += " " + s.render("paid", "")
		}
		sb.WriteString(line)
		sb.WriteString("\n")
	}

	if s.err != nil {
		return "", s.err
	}
	return sb.String(), nil
}
