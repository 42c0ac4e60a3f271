package lang

import (
	"fmt"
	"path/filepath"
	"sort"
	"strings"

	"github.com/chibuka/leetcode-cli/internal/lcerrors"
)

// extToSlug maps solution file extensions to platform language slugs.
// It must stay one-to-one; slugToExt is derived from it.
var extToSlug = map[string]string{
	"cpp":   "cpp",
	"java":  "java",
	"py":    "python3",
	"c":     "c",
	"cs":    "csharp",
	"js":    "javascript",
	"ts":    "typescript",
	"php":   "php",
	"swift": "swift",
	"kt":    "kotlin",
	"dart":  "dart",
	"go":    "golang",
	"rb":    "ruby",
	"scala": "scala",
	"rs":    "rust",
	"rkt":   "racket",
	"erl":   "erlang",
	"ex":    "elixir",
}

var slugToExt = func() map[string]string {
	m := make(map[string]string, len(extToSlug))
	for ext, slug := range extToSlug {
		m[slug] = ext
	}
	return m
}()

// SlugForExt returns the language slug for a file extension (with or without the dot).
func SlugForExt(ext string) (string, bool) {
	slug, ok := extToSlug[strings.TrimPrefix(strings.ToLower(ext), ".")]
	return slug, ok
}

// ExtForSlug returns the file extension (without the dot) for a language slug.
func ExtForSlug(slug string) (string, bool) {
	ext, ok := slugToExt[strings.ToLower(slug)]
	return ext, ok
}

// Normalize accepts either a language slug or a file extension and returns the slug.
func Normalize(value string) (string, bool) {
	value = strings.ToLower(strings.TrimSpace(value))
	if _, ok := slugToExt[value]; ok {
		return value, true
	}
	return SlugForExt(value)
}

// Slugs returns every supported language slug, sorted.
func Slugs() []string {
	slugs := make([]string, 0, len(slugToExt))
	for slug := range slugToExt {
		slugs = append(slugs, slug)
	}
	sort.Strings(slugs)
	return slugs
}

// Extensions returns every supported extension, sorted.
func Extensions() []string {
	exts := make([]string, 0, len(extToSlug))
	for ext := range extToSlug {
		exts = append(exts, ext)
	}
	sort.Strings(exts)
	return exts
}

// SolutionFile is the parsed form of a "<frontend_id>.<slug>.<ext>" file name.
type SolutionFile struct {
	FrontendID string
	Slug       string
	Ext        string
	Language   string
}

// FileName builds the canonical solution file name.
func (f SolutionFile) FileName() string {
	return fmt.Sprintf("%s.%s.%s", f.FrontendID, f.Slug, f.Ext)
}

// ParseSolutionPath validates the basename of path against "<frontend_id>.<slug>.<ext>".
func ParseSolutionPath(path string) (SolutionFile, error) {
	base := filepath.Base(path)
	parts := strings.Split(base, ".")
	if len(parts) != 3 {
		return SolutionFile{}, fmt.Errorf(
			"%w, %q must look like <id>.<slug>.<ext>",
			lcerrors.ErrMalformedPath,
			base,
		)
	}

	id, slug, ext := parts[0], parts[1], parts[2]
	if id == "" || slug == "" || !isDigits(id) {
		return SolutionFile{}, fmt.Errorf(
			"%w, %q must look like <id>.<slug>.<ext>",
			lcerrors.ErrMalformedPath,
			base,
		)
	}

	language, ok := SlugForExt(ext)
	if !ok {
		return SolutionFile{}, fmt.Errorf(
			"%w, unsupported extension %q",
			lcerrors.ErrMalformedPath,
			ext,
		)
	}

	return SolutionFile{FrontendID: id, Slug: slug, Ext: ext, Language: language}, nil
}

func isDigits(s string) bool {
	if s == "" {
		return false
	}
	for _, r := range s {
		if r < '0' || r > '9' {
			return false
		}
	}
	return true
}

// IsFrontendID reports whether s looks like a public problem number.
func IsFrontendID(s string) bool {
	return isDigits(s)
}
