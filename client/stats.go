package client

import (
	"context"
	"time"

	"github.com/chibuka/leetcode-cli/internal/leetcode"
)

func (c *Client) FetchUserStats(ctx context.Context, username string) (*leetcode.UserStats, error) {
	data, err := c.GraphQL(ctx, QueryUserProblemStats, map[string]any{"userSlug": username})
	if err != nil {
		return nil, err
	}
	return leetcode.ParseUserStats(data)
}

func (c *Client) fetchCalendarYear(ctx context.Context, username string, year int) (map[int64]int, error) {
	data, err := c.GraphQL(ctx, QueryUserCalendar, map[string]any{
		"username": username,
		"year":     year,
	})
	if err != nil {
		return nil, err
	}
	return leetcode.ParseCalendar(data)
}

// FetchActivity fetches the previous and current calendar years and joins
// them into a dense one-year window ending at now.
func (c *Client) FetchActivity(ctx context.Context, username string, now time.Time) (leetcode.UserActivity, error) {
	year := now.UTC().Year()

	previous, err := c.fetchCalendarYear(ctx, username, year-1)
	if err != nil {
		return nil, err
	}
	current, err := c.fetchCalendarYear(ctx, username, year)
	if err != nil {
		return nil, err
	}
	return leetcode.JoinActivity(previous, current, now), nil
}
