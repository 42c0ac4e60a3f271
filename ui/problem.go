package ui

import (
	"fmt"
	"sort"
	"strings"

	"github.com/chibuka/leetcode-cli/internal/config"
	"github.com/chibuka/leetcode-cli/internal/leetcode"
	"github.com/chibuka/leetcode-cli/ui/theme"
)

// RenderProblem renders the sections of p enabled in flags.
func RenderProblem(p *leetcode.Problem, b *theme.Bundle, flags config.ProblemFlags) (string, error) {
	s := newStyles(b, "PROBLEM_SHOW")
	var sections []string

	if flags.ShowTitle {
		title := fmt.Sprintf("%s %s %s",
			s.render("frontend_id", p.FrontendID+"."),
			s.render("title", p.Title),
			s.render("difficulty_"+p.Difficulty.Key(), string(p.Difficulty)),
		)
		if p.PaidOnly {
			title += " " + s.render("paid", "Premium")
		}
		sections = append(sections, title)
	}

	if flags.ShowTags && len(p.Tags) > 0 {
		chips := make([]string, 0, len(p.Tags))
		for _, tag := range p.Tags {
			chips = append(chips, s.render("tag", tag))
		}
		sections = append(sections, strings.Join(chips, " "))
	}

	if flags.ShowLangs && len(p.CodeSnippets) > 0 {
		langs := make([]string, 0, len(p.CodeSnippets))
		for slug := range p.CodeSnippets {
			langs = append(langs, slug)
		}
		sort.Strings(langs)
		for i, slug := range langs {
			langs[i] = s.render("language", slug)
		}
		sections = append(sections, strings.Join(langs, " "))
	}

	if flags.ShowDescription && p.Description != "" {
		description, err := ToANSI(p.Description, b)
		if err != nil {
			return "", err
		}
		sections = append(sections, strings.TrimSpace(description))
	}

	if flags.ShowExamples {
		for _, ex := range p.Examples {
			block, err := renderExample(ex, s, b)
			if err != nil {
				return "", err
			}
			sections = append(sections, block)
		}
	}

	if flags.ShowConstraints && len(p.Constraints) > 0 {
		var sb strings.Builder
		sb.WriteString(s.render("section_header", "Constraints:"))
		bullet := s.get("constraint")
		for _, c := range p.Constraints {
			text, err := ToANSI(c, b)
			if err != nil {
				return "", err
			}
			sb.WriteString("\n  ")
			sb.WriteString(bullet.Render(strings.TrimSpace(text)))
		}
		sections = append(sections, sb.String())
	}

	if s.err != nil {
		return "", s.err
	}
	return strings.Join(sections, "\n\n") + "\n", nil
}

func renderExample(ex leetcode.Example, s *styles, b *theme.Bundle) (string, error) {
	label := s.get("label_field")
	plain := theme.Style{}

	var sb strings.Builder
	sb.WriteString(s.render("example_title", ex.Title))
	sb.WriteString("\n")

	fields := []struct {
		name  string
		value string
	}{
		{"Input", strings.Join(ex.Input, ", ")},
		{"Output", ex.Output},
		{"Explanation", ex.Explanation},
	}
	for _, f := range fields {
		if f.value == "" {
			continue
		}
		text, err := ToANSI(f.value, b)
		if err != nil {
			return "", err
		}
		sb.WriteString(LabelValue(f.name, strings.TrimSpace(text), label, plain))
	}
	return strings.TrimRight(sb.String(), "\n"), nil
}
