package ui

import (
	"fmt"
	"math"
	"regexp"
	"strconv"
	"strings"
	"time"

	"github.com/chibuka/leetcode-cli/internal/lcerrors"
	"github.com/chibuka/leetcode-cli/internal/leetcode"
	"github.com/chibuka/leetcode-cli/ui/theme"
)

const (
	calendarSection = "CALENDAR"
	gradientSteps   = 8
	monthGap        = "   "
)

var (
	trueColor = regexp.MustCompile(`(?:38|48);2;(\d+);(\d+);(\d+)`)
	weekdays  = []string{"Mon", "Tue", "Wed", "Thu", "Fri", "Sat", "Sun"}
)

type rgb struct{ r, g, b int }

func (c rgb) escape() string {
	return fmt.Sprintf("\x1b[38;2;%d;%d;%dm", c.r, c.g, c.b)
}

// parseColor reads the 24-bit color out of an escape sequence such as
// "\x1b[38;2;57;211;83m".
func parseColor(seq, key string) (rgb, error) {
	m := trueColor.FindStringSubmatch(seq)
	if m == nil {
		return rgb{}, fmt.Errorf("%w, %s.%s must be a 24-bit color, got %q", lcerrors.ErrTheme, calendarSection, key, seq)
	}
	var c [3]int
	for i := range c {
		c[i], _ = strconv.Atoi(m[i+1])
	}
	return rgb{c[0], c[1], c[2]}, nil
}

// gradient interpolates gradientSteps colors from least to most.
func gradient(least, most rgb) []rgb {
	lerp := func(a, b, k int) int {
		return int(math.Round(float64(a) + float64(b-a)*float64(k)/float64(gradientSteps-1)))
	}
	steps := make([]rgb, gradientSteps)
	for k := range steps {
		steps[k] = rgb{lerp(least.r, most.r, k), lerp(least.g, most.g, k), lerp(least.b, most.b, k)}
	}
	return steps
}

// step maps a count to its gradient index. When every count is equal the
// nonzero ones take the brightest step.
func step(count, lo, hi int) int {
	if hi == lo {
		if count == 0 {
			return 0
		}
		return gradientSteps - 1
	}
	frac := float64(count-lo) / float64(hi-lo)
	return int(math.Round(frac * float64(gradientSteps-1)))
}

type monthKey struct {
	year  int
	month time.Month
}

// RenderCalendar renders the activity as a month-by-month heatmap: a header
// row of month names followed by one row per weekday, Monday first.
func RenderCalendar(activity leetcode.UserActivity, b *theme.Bundle) (string, error) {
	s := newStyles(b, calendarSection)
	lo, hi := activity.Bounds()
	if len(activity) == 0 || hi == 0 {
		out := s.render("empty", "No submissions in the past year") + "\n"
		return out, s.err
	}

	least, err := parseColor(s.get("least").ANSI, "least")
	if err != nil {
		return "", err
	}
	most, err := parseColor(s.get("most").ANSI, "most")
	if err != nil {
		return "", err
	}
	colors := gradient(least, most)
	cell := s.get("cell")
	monthStyle := s.get("month")
	weekdayStyle := s.get("weekday")
	if s.err != nil {
		return "", s.err
	}

	var months []monthKey
	for _, ts := range activity.Days() {
		day := time.Unix(ts, 0).UTC()
		key := monthKey{day.Year(), day.Month()}
		if len(months) == 0 || months[len(months)-1] != key {
			months = append(months, key)
		}
	}

	rows := make([][]string, 8)
	for _, m := range months {
		grid := monthGrid(m, activity, func(count int) string {
			return colors[step(count, lo, hi)].escape() + cell.Left + cell.Reset
		})
		width := 2*len(grid[0]) - 1
		rows[0] = append(rows[0], monthStyle.Render(padRight(m.month.String()[:3], width)))
		for wd := 0; wd < 7; wd++ {
			rows[wd+1] = append(rows[wd+1], strings.Join(grid[wd], " "))
		}
	}

	var sb strings.Builder
	sb.WriteString("    ")
	sb.WriteString(strings.Join(rows[0], monthGap))
	sb.WriteString("\n")
	for wd := 0; wd < 7; wd++ {
		sb.WriteString(weekdayStyle.Render(weekdays[wd]))
		sb.WriteString(" ")
		sb.WriteString(strings.Join(rows[wd+1], monthGap))
		sb.WriteString("\n")
	}
	return sb.String(), nil
}

// monthGrid lays out a month as 7 weekday rows by W week columns. Days of
// the month outside the activity window are blank.
func monthGrid(m monthKey, activity leetcode.UserActivity, paint func(int) string) [][]string {
	first := time.Date(m.year, m.month, 1, 0, 0, 0, 0, time.UTC)
	daysInMonth := first.AddDate(0, 1, -1).Day()
	offset := (int(first.Weekday()) + 6) % 7
	weeks := (offset + daysInMonth + 6) / 7

	grid := make([][]string, 7)
	for wd := range grid {
		grid[wd] = make([]string, weeks)
		for w := 0; w < weeks; w++ {
			grid[wd][w] = " "
			day := w*7 + wd - offset + 1
			if day < 1 || day > daysInMonth {
				continue
			}
			ts := first.AddDate(0, 0, day-1).Unix()
			if count, ok := activity[ts]; ok {
				grid[wd][w] = paint(count)
			}
		}
	}
	return grid
}
