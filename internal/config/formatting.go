package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"

	"github.com/chibuka/leetcode-cli/internal/lcerrors"
)

// ResultFlags gates the sections of the interpretation and submission renderers.
type ResultFlags struct {
	ShowLanguage              bool `yaml:"show_language"`
	ShowTestcases             bool `yaml:"show_testcases"`
	ShowRuntimeMemory         bool `yaml:"show_runtime_memory"`
	ShowCodeOutput            bool `yaml:"show_code_output"`
	ShowStdout                bool `yaml:"show_stdout"`
	ShowErrorMessages         bool `yaml:"show_error_messages"`
	ShowDetailedErrorMessages bool `yaml:"show_detailed_error_messages"`
	ShowExpectedOutput        bool `yaml:"show_expected_output"`
}

// ProblemFlags gates the sections of the problem renderer.
type ProblemFlags struct {
	ShowTitle       bool `yaml:"show_title"`
	ShowTags        bool `yaml:"show_tags"`
	ShowLangs       bool `yaml:"show_langs"`
	ShowDescription bool `yaml:"show_description"`
	ShowExamples    bool `yaml:"show_examples"`
	ShowConstraints bool `yaml:"show_constraints"`
}

type FormattingConfig struct {
	Interpretation ResultFlags  `yaml:"interpretation"`
	Submission     ResultFlags  `yaml:"submission"`
	ProblemShow    ProblemFlags `yaml:"problem_show"`
}

func allResultFlags() ResultFlags {
	return ResultFlags{
		ShowLanguage:              true,
		ShowTestcases:             true,
		ShowRuntimeMemory:         true,
		ShowCodeOutput:            true,
		ShowStdout:                true,
		ShowErrorMessages:         true,
		ShowDetailedErrorMessages: true,
		ShowExpectedOutput:        true,
	}
}

func DefaultFormatting() FormattingConfig {
	return FormattingConfig{
		Interpretation: allResultFlags(),
		Submission:     allResultFlags(),
		ProblemShow: ProblemFlags{
			ShowTitle:       true,
			ShowTags:        true,
			ShowLangs:       true,
			ShowDescription: true,
			ShowExamples:    true,
			ShowConstraints: true,
		},
	}
}

// Only keeps the named sections and hides the rest. Names are the -i values
// of the test and submit commands.
func (f ResultFlags) Only(names []string) ResultFlags {
	if len(names) == 0 {
		return f
	}
	var out ResultFlags
	for _, name := range names {
		switch name {
		case "language":
			out.ShowLanguage = true
		case "testcases":
			out.ShowTestcases = true
		case "runtime_memory":
			out.ShowRuntimeMemory = true
		case "code_output":
			out.ShowCodeOutput = true
		case "stdout":
			out.ShowStdout = true
		case "error_messages":
			out.ShowErrorMessages = true
		case "detailed_error_messages":
			out.ShowDetailedErrorMessages = true
		case "expected_output":
			out.ShowExpectedOutput = true
		}
	}
	return out
}

// Only keeps the named problem sections and hides the rest.
func (f ProblemFlags) Only(names []string) ProblemFlags {
	if len(names) == 0 {
		return f
	}
	var out ProblemFlags
	for _, name := range names {
		switch name {
		case "title":
			out.ShowTitle = true
		case "tags":
			out.ShowTags = true
		case "langs":
			out.ShowLangs = true
		case "description":
			out.ShowDescription = true
		case "examples":
			out.ShowExamples = true
		case "constraints":
			out.ShowConstraints = true
		}
	}
	return out
}

// LoadFormatting reads dir/formatting_config.yaml. Keys missing from the file
// keep their default (visible).
func LoadFormatting(dir string) (*FormattingConfig, error) {
	path := filepath.Join(dir, FormattingFile)
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil, fmt.Errorf("%w, %s is missing", lcerrors.ErrConfig, path)
		}
		return nil, fmt.Errorf("%w, cannot read %s, %w", lcerrors.ErrConfig, path, err)
	}

	fc := DefaultFormatting()
	if err := yaml.Unmarshal(data, &fc); err != nil {
		return nil, fmt.Errorf("%w, corrupt %s, %w", lcerrors.ErrConfig, path, err)
	}
	return &fc, nil
}

func SaveFormatting(dir string, fc FormattingConfig) error {
	data, err := yaml.Marshal(fc)
	if err != nil {
		return fmt.Errorf("%w, cannot encode %s, %w", lcerrors.ErrConfig, FormattingFile, err)
	}
	return writeFileAtomic(filepath.Join(dir, FormattingFile), data)
}

func writeFileAtomic(path string, data []byte) error {
	dir := filepath.Dir(path)
	tmp, err := os.CreateTemp(dir, "."+filepath.Base(path)+".*")
	if err != nil {
		return fmt.Errorf("%w, cannot create temp file in %s, %w", lcerrors.ErrConfig, dir, err)
	}
	defer func() { _ = os.Remove(tmp.Name()) }()

	if _, err := tmp.Write(data); err != nil {
		_ = tmp.Close()
		return fmt.Errorf("%w, cannot write %s, %w", lcerrors.ErrConfig, path, err)
	}
	if err := tmp.Close(); err != nil {
		return fmt.Errorf("%w, cannot write %s, %w", lcerrors.ErrConfig, path, err)
	}
	if err := os.Rename(tmp.Name(), path); err != nil {
		return fmt.Errorf("%w, cannot replace %s, %w", lcerrors.ErrConfig, path, err)
	}
	return nil
}
