package ui

import (
	"regexp"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/chibuka/leetcode-cli/internal/config"
	"github.com/chibuka/leetcode-cli/internal/leetcode"
	"github.com/chibuka/leetcode-cli/ui/theme"
)

var ansiSeq = regexp.MustCompile(`\x1b\[[0-9;]*m`)

func stripANSI(s string) string {
	return ansiSeq.ReplaceAllString(s, "")
}

func defaultTheme(t *testing.T) *theme.Bundle {
	t.Helper()
	b, err := theme.LoadFS(theme.Default(), "default_theme")
	require.NoError(t, err)
	return b
}

func mustStyle(t *testing.T, b *theme.Bundle, section, key string) theme.Style {
	t.Helper()
	style, err := b.Styling(section, key)
	require.NoError(t, err)
	return style
}

func TestLabelValue(t *testing.T) {
	out := LabelValue("Input", "nums = [2,7]\ntarget = 9", theme.Style{}, theme.Style{})

	lines := strings.Split(strings.TrimSuffix(out, "\n"), "\n")
	require.Len(t, lines, 2)
	assert.Equal(t, "  Input"+strings.Repeat(" ", LabelWidth-5)+": nums = [2,7]", lines[0])
	assert.Equal(t, strings.Repeat(" ", LabelWidth+4)+"target = 9", lines[1])
}

func TestLabelValueStylesOnlyText(t *testing.T) {
	label := theme.Style{ANSI: "\x1b[36m", Reset: "\x1b[0m"}
	out := LabelValue("Runtime", "3 ms", label, theme.Style{})
	assert.Equal(t, "  \x1b[36mRuntime\x1b[0m"+strings.Repeat(" ", LabelWidth-7)+": 3 ms\n", out)
}

func TestRenderProblemList(t *testing.T) {
	b := defaultTheme(t)
	set := &leetcode.ProblemSet{Total: 2000, Problems: []leetcode.ProblemSummary{
		{FrontendID: "2", Slug: "add-two-numbers", Title: "Add Two Numbers", Difficulty: leetcode.Medium, ACRate: 35.123, Status: leetcode.StatusAccepted},
		{FrontendID: "3", Slug: "longest-substring", Title: "Longest Substring Without Repeating Characters", Difficulty: leetcode.Medium, ACRate: 36.2, Status: leetcode.StatusNone},
		{FrontendID: "5", Slug: "longest-palindromic-substring", Title: "Longest Palindromic Substring", Difficulty: leetcode.Medium, ACRate: 31.8, Status: leetcode.StatusAttempted},
	}}

	out, err := RenderProblemList(set, b)
	require.NoError(t, err)

	lines := strings.Split(strings.TrimSuffix(out, "\n"), "\n")
	require.Len(t, lines, 3)

	medium := mustStyle(t, b, "PROBLEM_LIST", "difficulty_medium").Render("Medium  ")
	layout := regexp.MustCompile(`^\t[✔? ]\[\d+\] .{79} Medium   \(\d+\.\d{2} %\)$`)
	for _, line := range lines {
		assert.Contains(t, line, medium)
		assert.Regexp(t, layout, stripANSI(line))
	}
	assert.Contains(t, stripANSI(lines[0]), "(35.12 %)")
}

func TestRenderProblem(t *testing.T) {
	b := defaultTheme(t)
	p := &leetcode.Problem{
		FrontendID:  "1",
		Title:       "Two Sum",
		Difficulty:  leetcode.Easy,
		Tags:        []string{"Array", "Hash Table"},
		Description: "<p>Return <em>indices</em> of x<sup>2</sup>.</p>",
		Examples: []leetcode.Example{{
			Title:  "Example 1",
			Input:  []string{"nums = [2,7,11,15]", "target = 9"},
			Output: "[0,1]",
		}},
		Constraints:  []string{"<code>2 &lt;= nums.length</code>"},
		CodeSnippets: map[string]string{"rust": "", "cpp": "", "python3": ""},
	}

	out, err := RenderProblem(p, b, config.DefaultFormatting().ProblemShow)
	require.NoError(t, err)

	plain := stripANSI(out)
	assert.Contains(t, plain, "1. Two Sum [Easy]")
	assert.Contains(t, plain, "#Array #Hash Table")
	assert.Contains(t, plain, "cpp python3 rust")
	assert.Contains(t, plain, "Return indices of x^2.")
	assert.Contains(t, plain, "› Example 1")
	assert.Contains(t, plain, "nums = [2,7,11,15], target = 9")
	assert.Contains(t, plain, "• 2 <= nums.length")

	only, err := RenderProblem(p, b, config.DefaultFormatting().ProblemShow.Only([]string{"title"}))
	require.NoError(t, err)
	assert.Equal(t, "1. Two Sum [Easy]\n", stripANSI(only))
}

func TestRenderStats(t *testing.T) {
	stats := &leetcode.UserStats{
		Accepted:  map[leetcode.Difficulty]int{leetcode.Easy: 10, leetcode.Medium: 5, leetcode.Hard: 1},
		Failed:    map[leetcode.Difficulty]int{leetcode.Easy: 1},
		Untouched: map[leetcode.Difficulty]int{leetcode.Easy: 89, leetcode.Medium: 195, leetcode.Hard: 99},
		Beats:     map[leetcode.Difficulty]float64{leetcode.Easy: 70.5},
	}

	out, err := RenderStats("alice", stats, defaultTheme(t))
	require.NoError(t, err)

	plain := stripANSI(out)
	assert.Contains(t, plain, "alice")
	assert.Contains(t, plain, "Easy     10/100")
	assert.Contains(t, plain, "beats 70.50%")
	assert.Contains(t, plain, "Medium   5/200")
	assert.Contains(t, plain, "All      16/400")
}
