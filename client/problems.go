package client

import (
	"context"
	"fmt"

	log "github.com/sirupsen/logrus"

	"github.com/chibuka/leetcode-cli/internal/lang"
	"github.com/chibuka/leetcode-cli/internal/lcerrors"
	"github.com/chibuka/leetcode-cli/internal/leetcode"
)

// metadataPageSize is large enough to fetch the whole problemset in one call.
const metadataPageSize = 10000

// IndexLookup is the part of the on-disk problem index the client consults
// before falling back to the network.
type IndexLookup interface {
	QuestionIDForSlug(slug string) (string, bool)
	SlugForFrontendID(id string) (string, bool)
}

// ListFilter narrows a problemset-data query. Page is 1-based.
type ListFilter struct {
	Difficulty leetcode.Difficulty
	Tags       []string
	Search     string
	Limit      int
	Page       int
}

func (f ListFilter) variables() map[string]any {
	filters := map[string]any{}
	if f.Difficulty != "" {
		filters["difficulty"] = apiDifficulty(f.Difficulty)
	}
	if len(f.Tags) > 0 {
		filters["tags"] = f.Tags
	}
	if f.Search != "" {
		filters["searchKeywords"] = f.Search
	}

	limit := f.Limit
	if limit <= 0 {
		limit = 50
	}
	page := f.Page
	if page <= 0 {
		page = 1
	}
	return map[string]any{
		"categorySlug": "",
		"limit":        limit,
		"skip":         (page - 1) * limit,
		"filters":      filters,
	}
}

func apiDifficulty(d leetcode.Difficulty) string {
	switch d {
	case leetcode.Easy:
		return "EASY"
	case leetcode.Medium:
		return "MEDIUM"
	default:
		return "HARD"
	}
}

func (c *Client) FetchProblemSet(ctx context.Context, filter ListFilter) (*leetcode.ProblemSet, error) {
	data, err := c.GraphQL(ctx, QueryProblemsetData, filter.variables())
	if err != nil {
		return nil, err
	}
	return leetcode.ParseProblemSet(data)
}

func (c *Client) FetchProblem(ctx context.Context, slug string) (*leetcode.Problem, error) {
	data, err := c.GraphQL(ctx, QueryProblemDetail, map[string]any{"titleSlug": slug})
	if err != nil {
		return nil, err
	}
	problem, err := leetcode.ParseProblem(data)
	if err != nil {
		return nil, fmt.Errorf("problem %q, %w", slug, err)
	}
	return problem, nil
}

func (c *Client) FetchSnippets(ctx context.Context, slug string) (*leetcode.Snippets, error) {
	data, err := c.GraphQL(ctx, QueryCodeSnippets, map[string]any{"titleSlug": slug})
	if err != nil {
		return nil, err
	}
	return leetcode.ParseSnippets(data)
}

// FetchTestcases returns the example testcases of a problem, one entry per
// example with parameters separated by newlines.
func (c *Client) FetchTestcases(ctx context.Context, slug string) ([]string, error) {
	data, err := c.GraphQL(ctx, QueryProblemTestcases, map[string]any{"titleSlug": slug})
	if err != nil {
		return nil, err
	}
	return leetcode.ParseTestcases(data)
}

// FetchQuestionRefs downloads the identity of every problem for the local index.
func (c *Client) FetchQuestionRefs(ctx context.Context) ([]leetcode.QuestionRef, error) {
	data, err := c.GraphQL(ctx, QueryProblemsetMetadata, map[string]any{
		"categorySlug": "",
		"limit":        metadataPageSize,
		"skip":         0,
		"filters":      map[string]any{},
	})
	if err != nil {
		return nil, err
	}
	return leetcode.ParseQuestionRefs(data)
}

// RandomSlug asks the platform for a random problem, optionally of one difficulty.
func (c *Client) RandomSlug(ctx context.Context, difficulty leetcode.Difficulty) (string, error) {
	filters := map[string]any{}
	if difficulty != "" {
		filters["difficulty"] = apiDifficulty(difficulty)
	}
	data, err := c.GraphQL(ctx, QueryRandomTitleSlug, map[string]any{
		"categorySlug": "",
		"filters":      filters,
	})
	if err != nil {
		return "", err
	}
	return leetcode.ParseRandomSlug(data)
}

// ResolveSlug turns a slug or a frontend ID into a slug. Frontend IDs are
// looked up in the index first, then searched on the platform.
func (c *Client) ResolveSlug(ctx context.Context, ref string, idx IndexLookup) (string, error) {
	if !lang.IsFrontendID(ref) {
		return ref, nil
	}
	if idx != nil {
		if slug, ok := idx.SlugForFrontendID(ref); ok {
			return slug, nil
		}
	}

	log.WithField("frontend_id", ref).Debug("frontend id not indexed, searching problemset")
	set, err := c.FetchProblemSet(ctx, ListFilter{Search: ref, Limit: 50, Page: 1})
	if err != nil {
		return "", err
	}
	for _, p := range set.Problems {
		if p.FrontendID == ref {
			return p.Slug, nil
		}
	}
	return "", fmt.Errorf("%w, no problem with id %s", lcerrors.ErrUnknownSlug, ref)
}

// QuestionID returns the internal question ID the judge endpoints require.
func (c *Client) QuestionID(ctx context.Context, slug string, idx IndexLookup) (string, error) {
	if idx != nil {
		if id, ok := idx.QuestionIDForSlug(slug); ok {
			return id, nil
		}
	}

	data, err := c.GraphQL(ctx, QueryProblemID, map[string]any{"titleSlug": slug})
	if err != nil {
		return "", err
	}
	ref, err := leetcode.ParseQuestionRef(data)
	if err != nil {
		return "", fmt.Errorf("%w, %q", err, slug)
	}
	return ref.QuestionID, nil
}
