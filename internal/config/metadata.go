package config

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/chibuka/leetcode-cli/internal/lcerrors"
)

// ProblemMeta is one row of the on-disk problem-ID index.
type ProblemMeta struct {
	QuestionID string `json:"question_id"`
	FrontendID string `json:"frontend_id"`
	Slug       string `json:"slug"`
	Title      string `json:"title"`
	Difficulty string `json:"difficulty"`
	PaidOnly   bool   `json:"paid_only"`
}

// ProblemIndex maps slugs and frontend IDs to internal question IDs without
// a network round trip. It is populated by download-problems.
type ProblemIndex struct {
	UpdatedAt time.Time     `json:"updated_at"`
	Problems  []ProblemMeta `json:"problems"`

	bySlug     map[string]int
	byFrontend map[string]int
}

func NewProblemIndex(problems []ProblemMeta, updatedAt time.Time) *ProblemIndex {
	idx := &ProblemIndex{UpdatedAt: updatedAt, Problems: problems}
	idx.build()
	return idx
}

func (idx *ProblemIndex) build() {
	idx.bySlug = make(map[string]int, len(idx.Problems))
	idx.byFrontend = make(map[string]int, len(idx.Problems))
	for i, p := range idx.Problems {
		idx.bySlug[p.Slug] = i
		idx.byFrontend[p.FrontendID] = i
	}
}

func (idx *ProblemIndex) Len() int {
	return len(idx.Problems)
}

func (idx *ProblemIndex) BySlug(slug string) (ProblemMeta, bool) {
	i, ok := idx.bySlug[slug]
	if !ok {
		return ProblemMeta{}, false
	}
	return idx.Problems[i], true
}

func (idx *ProblemIndex) ByFrontendID(id string) (ProblemMeta, bool) {
	i, ok := idx.byFrontend[id]
	if !ok {
		return ProblemMeta{}, false
	}
	return idx.Problems[i], true
}

// QuestionIDForSlug satisfies client.IndexLookup.
func (idx *ProblemIndex) QuestionIDForSlug(slug string) (string, bool) {
	meta, ok := idx.BySlug(slug)
	if !ok || meta.QuestionID == "" {
		return "", false
	}
	return meta.QuestionID, true
}

// SlugForFrontendID satisfies client.IndexLookup.
func (idx *ProblemIndex) SlugForFrontendID(id string) (string, bool) {
	meta, ok := idx.ByFrontendID(id)
	if !ok {
		return "", false
	}
	return meta.Slug, true
}

// LoadIndex reads dir/problems_metadata.json. A missing file yields an empty index.
func LoadIndex(dir string) (*ProblemIndex, error) {
	path := filepath.Join(dir, MetadataFile)
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return NewProblemIndex(nil, time.Time{}), nil
		}
		return nil, fmt.Errorf("%w, cannot read %s, %w", lcerrors.ErrConfig, path, err)
	}

	var idx ProblemIndex
	if err := json.Unmarshal(data, &idx); err != nil {
		return nil, fmt.Errorf("%w, corrupt %s, %w", lcerrors.ErrConfig, path, err)
	}
	idx.build()
	return &idx, nil
}

func SaveIndex(dir string, idx *ProblemIndex) error {
	data, err := json.MarshalIndent(idx, "", "  ")
	if err != nil {
		return fmt.Errorf("%w, cannot encode %s, %w", lcerrors.ErrConfig, MetadataFile, err)
	}
	return writeFileAtomic(filepath.Join(dir, MetadataFile), data)
}
