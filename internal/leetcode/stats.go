package leetcode

type difficultyCount struct {
	Difficulty string `json:"difficulty"`
	Count      int    `json:"count"`
}

type difficultyPercentage struct {
	Difficulty string   `json:"difficulty"`
	Percentage *float64 `json:"percentage"`
}

// ParseUserStats decodes the data object of a user-problem-stats query.
func ParseUserStats(raw []byte) (*UserStats, error) {
	var payload struct {
		Progress *struct {
			Accepted  []difficultyCount      `json:"numAcceptedQuestions"`
			Failed    []difficultyCount      `json:"numFailedQuestions"`
			Untouched []difficultyCount      `json:"numUntouchedQuestions"`
			Beats     []difficultyPercentage `json:"userSessionBeatsPercentage"`
		} `json:"userProfileUserQuestionProgressV2"`
	}
	if err := decode(raw, &payload, "user stats"); err != nil {
		return nil, err
	}
	p := payload.Progress
	if p == nil {
		return nil, missing("user stats", "userProfileUserQuestionProgressV2")
	}

	stats := &UserStats{Beats: make(map[Difficulty]float64, len(Difficulties))}
	var err error
	if stats.Accepted, err = countsByDifficulty(p.Accepted); err != nil {
		return nil, err
	}
	if stats.Failed, err = countsByDifficulty(p.Failed); err != nil {
		return nil, err
	}
	if stats.Untouched, err = countsByDifficulty(p.Untouched); err != nil {
		return nil, err
	}
	for _, beat := range p.Beats {
		d, err := ParseDifficulty(beat.Difficulty)
		if err != nil {
			return nil, err
		}
		stats.Beats[d] = floatOrZero(beat.Percentage)
	}
	return stats, nil
}

func countsByDifficulty(rows []difficultyCount) (map[Difficulty]int, error) {
	counts := make(map[Difficulty]int, len(Difficulties))
	for _, row := range rows {
		d, err := ParseDifficulty(row.Difficulty)
		if err != nil {
			return nil, err
		}
		counts[d] = row.Count
	}
	return counts, nil
}
