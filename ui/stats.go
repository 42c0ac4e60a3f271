package ui

import (
	"fmt"
	"strings"

	"github.com/chibuka/leetcode-cli/internal/leetcode"
	"github.com/chibuka/leetcode-cli/ui/theme"
)

// RenderStats renders one line per difficulty with solved/total counts and
// the beats percentile.
func RenderStats(username string, stats *leetcode.UserStats, b *theme.Bundle) (string, error) {
	s := newStyles(b, "STATS")

	var sb strings.Builder
	sb.WriteString(s.render("header", "Solved problems of "+username))
	sb.WriteString("\n")

	solved, total := 0, 0
	for _, d := range leetcode.Difficulties {
		solved += stats.Accepted[d]
		total += stats.Total(d)
		fmt.Fprintf(&sb, "  %s %s  %s\n",
			s.render("difficulty_"+d.Key(), padRight(string(d), difficultyWidth)),
			s.render("count", padRight(fmt.Sprintf("%d/%d", stats.Accepted[d], stats.Total(d)), 10)),
			s.render("beats", fmt.Sprintf("beats %.2f%%", stats.Beats[d])),
		)
	}
	fmt.Fprintf(&sb, "  %s %s\n", padRight("All", difficultyWidth), s.render("count", fmt.Sprintf("%d/%d", solved, total)))

	if s.err != nil {
		return "", s.err
	}
	return sb.String(), nil
}
