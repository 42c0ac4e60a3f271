package leetcode

import (
	"encoding/json"
	"fmt"

	"github.com/chibuka/leetcode-cli/internal/lcerrors"
)

type topicTag struct {
	Name string `json:"name"`
	Slug string `json:"slug"`
}

type codeSnippet struct {
	Lang     string `json:"lang"`
	LangSlug string `json:"langSlug"`
	Code     string `json:"code"`
}

type questionPayload struct {
	QuestionID   *string         `json:"questionId"`
	FrontendID   *string         `json:"questionFrontendId"`
	Title        *string         `json:"title"`
	TitleSlug    *string         `json:"titleSlug"`
	Content      *string         `json:"content"`
	IsPaidOnly   bool            `json:"isPaidOnly"`
	Difficulty   *string         `json:"difficulty"`
	Likes        int             `json:"likes"`
	Dislikes     int             `json:"dislikes"`
	TopicTags    []topicTag      `json:"topicTags"`
	CodeSnippets []codeSnippet   `json:"codeSnippets"`
	Stats        json.RawMessage `json:"stats"`
	Hints        []string        `json:"hints"`
	Solution     *struct {
		ID               string `json:"id"`
		CanSeeDetail     bool   `json:"canSeeDetail"`
		PaidOnly         bool   `json:"paidOnly"`
		HasVideoSolution bool   `json:"hasVideoSolution"`
	} `json:"solution"`
}

// ParseProblem decodes the data object of a problem-detail query.
func ParseProblem(raw []byte) (*Problem, error) {
	var payload struct {
		Question *questionPayload `json:"question"`
	}
	if err := decode(raw, &payload, "problem"); err != nil {
		return nil, err
	}
	q := payload.Question
	if q == nil {
		return nil, fmt.Errorf("%w, platform returned no question", lcerrors.ErrUnknownSlug)
	}

	switch {
	case q.QuestionID == nil:
		return nil, missing("question", "questionId")
	case q.FrontendID == nil || *q.FrontendID == "":
		return nil, missing("question", "questionFrontendId")
	case q.TitleSlug == nil || *q.TitleSlug == "":
		return nil, missing("question", "titleSlug")
	case q.Title == nil:
		return nil, missing("question", "title")
	case q.Difficulty == nil:
		return nil, missing("question", "difficulty")
	}

	difficulty, err := ParseDifficulty(*q.Difficulty)
	if err != nil {
		return nil, err
	}

	problem := &Problem{
		QuestionID:   *q.QuestionID,
		FrontendID:   *q.FrontendID,
		Slug:         *q.TitleSlug,
		Title:        *q.Title,
		Difficulty:   difficulty,
		Likes:        q.Likes,
		Dislikes:     q.Dislikes,
		PaidOnly:     q.IsPaidOnly,
		Hints:        q.Hints,
		Tags:         make([]string, 0, len(q.TopicTags)),
		CodeSnippets: snippetMap(q.CodeSnippets),
	}
	for _, tag := range q.TopicTags {
		problem.Tags = append(problem.Tags, tag.Name)
	}

	if err := embeddedJSON(q.Stats, &problem.Stats, "question.stats"); err != nil {
		return nil, err
	}

	if q.Solution != nil {
		problem.Solution = &SolutionInfo{
			ID:               q.Solution.ID,
			CanSeeDetail:     q.Solution.CanSeeDetail,
			PaidOnly:         q.Solution.PaidOnly,
			HasVideoSolution: q.Solution.HasVideoSolution,
		}
	}

	if q.Content != nil {
		problem.Content = *q.Content
		body, err := ParseContent(problem.Content)
		if err != nil {
			return nil, err
		}
		problem.Description = body.Description
		problem.Examples = body.Examples
		problem.Constraints = body.Constraints
	}

	return problem, nil
}

func snippetMap(snippets []codeSnippet) map[string]string {
	m := make(map[string]string, len(snippets))
	for _, s := range snippets {
		if s.LangSlug == "" {
			continue
		}
		m[s.LangSlug] = s.Code
	}
	return m
}

// ParseSnippets decodes the data object of a code-snippets query.
func ParseSnippets(raw []byte) (*Snippets, error) {
	var payload struct {
		Question *struct {
			QuestionID   *string       `json:"questionId"`
			FrontendID   *string       `json:"questionFrontendId"`
			TitleSlug    string        `json:"titleSlug"`
			CodeSnippets []codeSnippet `json:"codeSnippets"`
		} `json:"question"`
	}
	if err := decode(raw, &payload, "snippets"); err != nil {
		return nil, err
	}
	q := payload.Question
	if q == nil {
		return nil, fmt.Errorf("%w, platform returned no question", lcerrors.ErrUnknownSlug)
	}
	if q.QuestionID == nil {
		return nil, missing("question", "questionId")
	}
	if q.FrontendID == nil {
		return nil, missing("question", "questionFrontendId")
	}

	return &Snippets{
		QuestionID: *q.QuestionID,
		FrontendID: *q.FrontendID,
		Slug:       q.TitleSlug,
		Code:       snippetMap(q.CodeSnippets),
	}, nil
}

// ParseQuestionRef decodes the data object of a problem-id query.
func ParseQuestionRef(raw []byte) (*QuestionRef, error) {
	var payload struct {
		Question *struct {
			QuestionID *string `json:"questionId"`
			FrontendID *string `json:"questionFrontendId"`
			Title      string  `json:"title"`
			TitleSlug  string  `json:"titleSlug"`
		} `json:"question"`
	}
	if err := decode(raw, &payload, "question id"); err != nil {
		return nil, err
	}
	q := payload.Question
	if q == nil {
		return nil, fmt.Errorf("%w, platform returned no question", lcerrors.ErrUnknownSlug)
	}
	if q.QuestionID == nil || *q.QuestionID == "" {
		return nil, fmt.Errorf("%w, no question id for %q", lcerrors.ErrUnknownSlug, q.TitleSlug)
	}

	ref := &QuestionRef{QuestionID: *q.QuestionID, Title: q.Title, Slug: q.TitleSlug}
	if q.FrontendID != nil {
		ref.FrontendID = *q.FrontendID
	}
	return ref, nil
}

// ParseTestcases decodes the data object of a problem-testcases query.
func ParseTestcases(raw []byte) ([]string, error) {
	var payload struct {
		Question *struct {
			ExampleTestcaseList []string `json:"exampleTestcaseList"`
			SampleTestCase      string   `json:"sampleTestCase"`
		} `json:"question"`
	}
	if err := decode(raw, &payload, "testcases"); err != nil {
		return nil, err
	}
	if payload.Question == nil {
		return nil, fmt.Errorf("%w, platform returned no question", lcerrors.ErrUnknownSlug)
	}

	cases := payload.Question.ExampleTestcaseList
	if len(cases) == 0 && payload.Question.SampleTestCase != "" {
		cases = []string{payload.Question.SampleTestCase}
	}
	if len(cases) == 0 {
		return nil, missing("question", "exampleTestcaseList")
	}
	return cases, nil
}

// ParseRandomSlug decodes the data object of a random-title-slug query.
func ParseRandomSlug(raw []byte) (string, error) {
	var payload struct {
		RandomQuestion *struct {
			TitleSlug string `json:"titleSlug"`
		} `json:"randomQuestion"`
	}
	if err := decode(raw, &payload, "random question"); err != nil {
		return "", err
	}
	if payload.RandomQuestion == nil || payload.RandomQuestion.TitleSlug == "" {
		return "", missing("randomQuestion", "titleSlug")
	}
	return payload.RandomQuestion.TitleSlug, nil
}
