package leetcode

import (
	"fmt"

	"github.com/chibuka/leetcode-cli/internal/lcerrors"
)

type questionRow struct {
	QuestionID *string    `json:"questionId"`
	FrontendID *string    `json:"frontendQuestionId"`
	Title      string     `json:"title"`
	TitleSlug  *string    `json:"titleSlug"`
	Difficulty *string    `json:"difficulty"`
	ACRate     float64    `json:"acRate"`
	PaidOnly   bool       `json:"paidOnly"`
	Status     *string    `json:"status"`
	TopicTags  []topicTag `json:"topicTags"`
}

type problemsetPayload struct {
	List *struct {
		Total     *int          `json:"total"`
		Questions []questionRow `json:"questions"`
	} `json:"problemsetQuestionList"`
}

func decodeProblemset(raw []byte, what string) (*problemsetPayload, error) {
	var payload problemsetPayload
	if err := decode(raw, &payload, what); err != nil {
		return nil, err
	}
	if payload.List == nil {
		return nil, missing(what, "problemsetQuestionList")
	}
	return &payload, nil
}

func (row questionRow) identity(i int) (frontendID, slug string, difficulty Difficulty, err error) {
	if row.FrontendID == nil || *row.FrontendID == "" {
		return "", "", "", missing(fmt.Sprintf("questions[%d]", i), "frontendQuestionId")
	}
	if row.TitleSlug == nil || *row.TitleSlug == "" {
		return "", "", "", missing(fmt.Sprintf("questions[%d]", i), "titleSlug")
	}
	if row.Difficulty == nil {
		return "", "", "", missing(fmt.Sprintf("questions[%d]", i), "difficulty")
	}
	difficulty, err = ParseDifficulty(*row.Difficulty)
	if err != nil {
		return "", "", "", err
	}
	return *row.FrontendID, *row.TitleSlug, difficulty, nil
}

func parseStatus(status *string) Status {
	if status == nil {
		return StatusNone
	}
	switch *status {
	case "ac":
		return StatusAccepted
	case "notac":
		return StatusAttempted
	default:
		return StatusNone
	}
}

// ParseProblemSet decodes the data object of a problemset-data query.
func ParseProblemSet(raw []byte) (*ProblemSet, error) {
	payload, err := decodeProblemset(raw, "problemset")
	if err != nil {
		return nil, err
	}

	set := &ProblemSet{
		Total:    intOrZero(payload.List.Total),
		Problems: make([]ProblemSummary, 0, len(payload.List.Questions)),
	}
	for i, row := range payload.List.Questions {
		frontendID, slug, difficulty, err := row.identity(i)
		if err != nil {
			return nil, err
		}

		tags := make([]string, 0, len(row.TopicTags))
		for _, tag := range row.TopicTags {
			tags = append(tags, tag.Slug)
		}

		set.Problems = append(set.Problems, ProblemSummary{
			FrontendID: frontendID,
			Slug:       slug,
			Title:      row.Title,
			Difficulty: difficulty,
			ACRate:     row.ACRate,
			Tags:       tags,
			PaidOnly:   row.PaidOnly,
			Status:     parseStatus(row.Status),
		})
	}
	return set, nil
}

// ParseQuestionRefs decodes the data object of a problemset-metadata query.
func ParseQuestionRefs(raw []byte) ([]QuestionRef, error) {
	payload, err := decodeProblemset(raw, "problemset metadata")
	if err != nil {
		return nil, err
	}

	refs := make([]QuestionRef, 0, len(payload.List.Questions))
	for i, row := range payload.List.Questions {
		frontendID, slug, difficulty, err := row.identity(i)
		if err != nil {
			return nil, err
		}
		if row.QuestionID == nil || *row.QuestionID == "" {
			return nil, fmt.Errorf("%w, questions[%d].questionId", lcerrors.ErrMissingField, i)
		}
		refs = append(refs, QuestionRef{
			QuestionID: *row.QuestionID,
			FrontendID: frontendID,
			Slug:       slug,
			Title:      row.Title,
			Difficulty: difficulty,
			PaidOnly:   row.PaidOnly,
		})
	}
	return refs, nil
}
