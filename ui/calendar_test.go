package ui

import (
	"strings"
	"testing"
	"testing/fstest"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/chibuka/leetcode-cli/internal/lcerrors"
	"github.com/chibuka/leetcode-cli/internal/leetcode"
	"github.com/chibuka/leetcode-cli/ui/theme"
)

func TestGradientEndpoints(t *testing.T) {
	least, most := rgb{40, 44, 52}, rgb{57, 211, 83}
	steps := gradient(least, most)
	require.Len(t, steps, gradientSteps)
	assert.Equal(t, least, steps[0])
	assert.Equal(t, most, steps[gradientSteps-1])
}

func TestStep(t *testing.T) {
	tests := []struct {
		count, lo, hi int
		want          int
	}{
		{0, 0, 10, 0},
		{10, 0, 10, 7},
		{5, 0, 10, 4},
		{1, 0, 10, 1},
		{3, 3, 3, 7},
		{0, 0, 0, 0},
	}
	for _, test := range tests {
		assert.Equal(t, test.want, step(test.count, test.lo, test.hi), "%+v", test)
	}
}

func TestRenderCalendar(t *testing.T) {
	b := defaultTheme(t)
	now := time.Date(2026, time.March, 15, 10, 0, 0, 0, time.UTC)
	today := leetcode.Today(now)
	day := func(back int) int64 { return today.AddDate(0, 0, -back).Unix() }

	activity := leetcode.Densify(map[int64]int{day(0): 10, day(30): 5, day(60): 1}, now)

	out, err := RenderCalendar(activity, b)
	require.NoError(t, err)

	lines := strings.Split(strings.TrimSuffix(out, "\n"), "\n")
	require.Len(t, lines, 8)
	assert.True(t, strings.HasPrefix(lines[0], "    "))
	assert.Contains(t, stripANSI(lines[0]), "Mar")
	for i, name := range weekdays {
		assert.True(t, strings.HasPrefix(stripANSI(lines[i+1]), name+" "), lines[i+1])
	}

	colors := gradient(rgb{40, 44, 52}, rgb{57, 211, 83})
	assert.Equal(t, 1, strings.Count(out, colors[7].escape()), "today is the brightest cell")
	assert.Equal(t, 1, strings.Count(out, colors[4].escape()))
	assert.Equal(t, 1, strings.Count(out, colors[1].escape()))
	assert.Equal(t, leetcode.WindowDays+1-3, strings.Count(out, colors[0].escape()))

	// 2026-03-15 is a Sunday
	assert.Contains(t, lines[7], colors[7].escape()+"■\x1b[0m")
}

func TestRenderCalendarMonthWidths(t *testing.T) {
	// February 2027 starts on a Monday and spans exactly four weeks
	now := time.Date(2027, time.February, 28, 0, 0, 0, 0, time.UTC)
	activity := leetcode.Densify(map[int64]int{leetcode.Today(now).Unix(): 1}, now)

	out, err := RenderCalendar(activity, defaultTheme(t))
	require.NoError(t, err)

	lines := strings.Split(strings.TrimSuffix(out, "\n"), "\n")
	header := stripANSI(lines[0])
	assert.True(t, strings.HasSuffix(header, "   Feb    "), "%q", header)
}

func TestRenderCalendarEmpty(t *testing.T) {
	now := time.Date(2026, time.March, 15, 0, 0, 0, 0, time.UTC)
	out, err := RenderCalendar(leetcode.Densify(nil, now), defaultTheme(t))
	require.NoError(t, err)
	assert.Equal(t, 1, strings.Count(out, "\n"))
	assert.Contains(t, out, "No submissions")
}

func TestRenderCalendarNeedsTrueColor(t *testing.T) {
	b, err := theme.LoadFS(calendarTheme("\\x1b[32m"), "flat")
	require.NoError(t, err)

	now := time.Date(2026, time.March, 15, 0, 0, 0, 0, time.UTC)
	activity := leetcode.Densify(map[int64]int{leetcode.Today(now).Unix(): 2}, now)

	_, err = RenderCalendar(activity, b)
	assert.ErrorIs(t, err, lcerrors.ErrTheme)
}

func calendarTheme(least string) fstest.MapFS {
	return fstest.MapFS{
		theme.AnsiFile:    {Data: []byte("reset: \"\\x1b[0m\"\nleast: \"" + least + "\"\nmost: \"\\x1b[38;2;57;211;83m\"\n")},
		theme.SymbolsFile: {Data: []byte("square: \"■\"\n")},
		theme.MappingsFile: {Data: []byte(
			"CALENDAR:\n  least: {ansi: least}\n  most: {ansi: most}\n  cell: {symbol_left: square}\n" +
				"  month: {}\n  weekday: {}\n  empty: {}\n",
		)},
	}
}
