package leetcode

import (
	"fmt"
	"sort"
	"strconv"
	"time"

	"github.com/chibuka/leetcode-cli/internal/lcerrors"
)

const (
	secondsPerDay = 24 * 60 * 60

	// WindowDays is how far back the activity window reaches; the window
	// holds WindowDays+1 days including today.
	WindowDays = 365
)

// ParseCalendar decodes one year of a user-calendar query into a sparse
// day → count map. Keys are truncated to UTC midnight.
func ParseCalendar(raw []byte) (map[int64]int, error) {
	var payload struct {
		MatchedUser *struct {
			UserCalendar *struct {
				SubmissionCalendar *string `json:"submissionCalendar"`
			} `json:"userCalendar"`
		} `json:"matchedUser"`
	}
	if err := decode(raw, &payload, "calendar"); err != nil {
		return nil, err
	}
	if payload.MatchedUser == nil {
		return nil, missing("calendar", "matchedUser")
	}
	if payload.MatchedUser.UserCalendar == nil || payload.MatchedUser.UserCalendar.SubmissionCalendar == nil {
		return nil, missing("calendar", "userCalendar.submissionCalendar")
	}

	var byKey map[string]int
	if err := decode([]byte(*payload.MatchedUser.UserCalendar.SubmissionCalendar), &byKey, "submissionCalendar"); err != nil {
		return nil, err
	}

	out := make(map[int64]int, len(byKey))
	for key, count := range byKey {
		ts, err := strconv.ParseInt(key, 10, 64)
		if err != nil {
			return nil, fmt.Errorf("%w, submissionCalendar key %q is not a timestamp", lcerrors.ErrFieldType, key)
		}
		out[dayStart(ts)] = count
	}
	return out, nil
}

// Today returns UTC midnight of now.
func Today(now time.Time) time.Time {
	y, m, d := now.UTC().Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func dayStart(ts int64) int64 {
	return ts - ((ts%secondsPerDay)+secondsPerDay)%secondsPerDay
}

// JoinActivity merges the previous and current year calendars, current
// year winning on collision, keeps the days inside the window ending today
// and densifies the result.
func JoinActivity(previous, current map[int64]int, now time.Time) UserActivity {
	today := Today(now).Unix()
	start := today - WindowDays*secondsPerDay

	joined := make(map[int64]int, len(previous)+len(current))
	for _, year := range []map[int64]int{previous, current} {
		for ts, count := range year {
			if ts >= start && ts <= today {
				joined[ts] = count
			}
		}
	}
	return Densify(joined, now)
}

// Densify returns a map holding every UTC midnight in [today-365d, today],
// taking counts from sparse and zero elsewhere.
func Densify(sparse map[int64]int, now time.Time) UserActivity {
	today := Today(now).Unix()
	dense := make(UserActivity, WindowDays+1)
	for i := int64(0); i <= WindowDays; i++ {
		ts := today - i*secondsPerDay
		dense[ts] = sparse[ts]
	}
	return dense
}

// Days returns the timestamps of the activity in ascending order.
func (a UserActivity) Days() []int64 {
	days := make([]int64, 0, len(a))
	for ts := range a {
		days = append(days, ts)
	}
	sort.Slice(days, func(i, j int) bool { return days[i] < days[j] })
	return days
}

// Bounds returns the smallest and largest counts of the activity.
func (a UserActivity) Bounds() (lo, hi int) {
	first := true
	for _, count := range a {
		if first {
			lo, hi = count, count
			first = false
			continue
		}
		if count < lo {
			lo = count
		}
		if count > hi {
			hi = count
		}
	}
	return lo, hi
}
