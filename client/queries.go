package client

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strings"

	"github.com/chibuka/leetcode-cli/internal/lcerrors"
)

// Registered GraphQL query names.
const (
	QueryUserProblemStats   = "user-problem-stats"
	QueryUserCalendar       = "user-calendar"
	QueryProblemsetData     = "problemset-data"
	QueryProblemsetMetadata = "problemset-metadata"
	QueryCodeSnippets       = "code-snippets"
	QueryProblemDetail      = "problem-detail"
	QueryProblemID          = "problem-id"
	QueryProblemTestcases   = "problem-testcases"
	QueryRandomTitleSlug    = "random-title-slug"
)

type graphQLQuery struct {
	operation string
	body      string
}

var queries = map[string]graphQLQuery{
	QueryUserProblemStats: {
		operation: "userProfileUserQuestionProgressV2",
		body: `query userProfileUserQuestionProgressV2($userSlug: String!) {
  userProfileUserQuestionProgressV2(userSlug: $userSlug) {
    numAcceptedQuestions { count difficulty }
    numFailedQuestions { count difficulty }
    numUntouchedQuestions { count difficulty }
    userSessionBeatsPercentage { difficulty percentage }
  }
}`,
	},
	QueryUserCalendar: {
		operation: "userProfileCalendar",
		body: `query userProfileCalendar($username: String!, $year: Int) {
  matchedUser(username: $username) {
    userCalendar(year: $year) {
      activeYears
      streak
      totalActiveDays
      submissionCalendar
    }
  }
}`,
	},
	QueryProblemsetData: {
		operation: "problemsetQuestionList",
		body: `query problemsetQuestionList($categorySlug: String, $limit: Int, $skip: Int, $filters: QuestionListFilterInput) {
  problemsetQuestionList: questionList(categorySlug: $categorySlug, limit: $limit, skip: $skip, filters: $filters) {
    total: totalNum
    questions: data {
      acRate
      difficulty
      frontendQuestionId: questionFrontendId
      paidOnly: isPaidOnly
      status
      title
      titleSlug
      topicTags { name slug }
    }
  }
}`,
	},
	QueryProblemsetMetadata: {
		operation: "problemsetQuestionList",
		body: `query problemsetQuestionList($categorySlug: String, $limit: Int, $skip: Int, $filters: QuestionListFilterInput) {
  problemsetQuestionList: questionList(categorySlug: $categorySlug, limit: $limit, skip: $skip, filters: $filters) {
    total: totalNum
    questions: data {
      questionId
      frontendQuestionId: questionFrontendId
      title
      titleSlug
      difficulty
      paidOnly: isPaidOnly
    }
  }
}`,
	},
	QueryCodeSnippets: {
		operation: "questionEditorData",
		body: `query questionEditorData($titleSlug: String!) {
  question(titleSlug: $titleSlug) {
    questionId
    questionFrontendId
    titleSlug
    codeSnippets { lang langSlug code }
  }
}`,
	},
	QueryProblemDetail: {
		operation: "questionData",
		body: `query questionData($titleSlug: String!) {
  question(titleSlug: $titleSlug) {
    questionId
    questionFrontendId
    title
    titleSlug
    content
    isPaidOnly
    difficulty
    likes
    dislikes
    topicTags { name slug }
    codeSnippets { lang langSlug code }
    stats
    hints
    solution { id canSeeDetail paidOnly hasVideoSolution }
  }
}`,
	},
	QueryProblemID: {
		operation: "questionTitle",
		body: `query questionTitle($titleSlug: String!) {
  question(titleSlug: $titleSlug) {
    questionId
    questionFrontendId
    title
    titleSlug
  }
}`,
	},
	QueryProblemTestcases: {
		operation: "consolePanelConfig",
		body: `query consolePanelConfig($titleSlug: String!) {
  question(titleSlug: $titleSlug) {
    questionId
    exampleTestcaseList
    sampleTestCase
  }
}`,
	},
	QueryRandomTitleSlug: {
		operation: "randomQuestion",
		body: `query randomQuestion($categorySlug: String, $filters: QuestionListFilterInput) {
  randomQuestion(categorySlug: $categorySlug, filters: $filters) {
    titleSlug
  }
}`,
	},
}

type graphQLRequest struct {
	Query         string         `json:"query"`
	Variables     map[string]any `json:"variables"`
	OperationName string         `json:"operationName"`
}

type graphQLResponse struct {
	Data   json.RawMessage `json:"data"`
	Errors []struct {
		Message string `json:"message"`
	} `json:"errors"`
}

// GraphQL posts a registered query and returns its data object. The session
// cookie is attached when the client has one.
func (c *Client) GraphQL(ctx context.Context, name string, variables map[string]any) (json.RawMessage, error) {
	q, ok := queries[name]
	if !ok {
		return nil, fmt.Errorf("unknown graphql query %q", name)
	}
	if variables == nil {
		variables = map[string]any{}
	}

	var opts []RequestOption
	if slug, ok := variables["titleSlug"].(string); ok && slug != "" {
		opts = append(opts, ForProblem(slug))
	}

	url := c.baseURL + "/graphql/"
	raw, err := c.do(ctx, http.MethodPost, url, graphQLRequest{
		Query:         q.body,
		Variables:     variables,
		OperationName: q.operation,
	}, c.session.present(), opts...)
	if err != nil {
		return nil, err
	}

	var res graphQLResponse
	if err := json.Unmarshal(raw, &res); err != nil {
		return nil, &lcerrors.FetchError{Kind: lcerrors.FetchDecode, URL: url, Err: err}
	}
	if len(res.Errors) > 0 {
		messages := make([]string, 0, len(res.Errors))
		for _, e := range res.Errors {
			messages = append(messages, e.Message)
		}
		return nil, &lcerrors.FetchError{
			Kind:    lcerrors.FetchAPI,
			URL:     url,
			Details: fmt.Sprintf("%s: %s", name, strings.Join(messages, "; ")),
		}
	}
	if len(res.Data) == 0 || string(res.Data) == "null" {
		return nil, &lcerrors.FetchError{
			Kind: lcerrors.FetchDecode,
			URL:  url,
			Err:  fmt.Errorf("%s returned no data", name),
		}
	}
	return res.Data, nil
}
