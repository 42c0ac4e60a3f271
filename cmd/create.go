package cmd

import (
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/chibuka/leetcode-cli/internal/config"
	"github.com/chibuka/leetcode-cli/internal/lang"
	"github.com/chibuka/leetcode-cli/internal/lcerrors"
	"github.com/chibuka/leetcode-cli/ui"
)

// createTarget is what 'create' was asked for. ref is a slug or a frontend ID.
type createTarget struct {
	ref      string
	language string
}

// parseCreateTarget accepts "", "slug", ".ext", "slug.ext" and "id.slug.ext".
// Missing parts come from the chosen problem and the default language.
func parseCreateTarget(arg string, cfg *config.Config) (createTarget, error) {
	var ref, ext string
	parts := strings.Split(arg, ".")
	switch len(parts) {
	case 1:
		ref = parts[0]
	case 2:
		ref, ext = parts[0], parts[1]
	case 3:
		if !lang.IsFrontendID(parts[0]) {
			return createTarget{}, fmt.Errorf("%w, %q must look like <id>.<slug>.<ext>", lcerrors.ErrMalformedPath, arg)
		}
		ref, ext = parts[1], parts[2]
	default:
		return createTarget{}, fmt.Errorf("%w, %q has too many dots", lcerrors.ErrMalformedPath, arg)
	}

	if ref == "" {
		if cfg.ChosenProblem == "" {
			return createTarget{}, fmt.Errorf("%w, chosen_problem is not set, run 'leetcode show' first or name a problem", lcerrors.ErrMissingConfigKey)
		}
		ref = cfg.ChosenProblem
	}

	target := createTarget{ref: ref}
	if ext == "" {
		if cfg.Language == "" {
			return createTarget{}, fmt.Errorf("%w, language is not set, add an extension or run 'leetcode config language <lang>'", lcerrors.ErrMissingConfigKey)
		}
		language, ok := lang.Normalize(cfg.Language)
		if !ok {
			return createTarget{}, fmt.Errorf("%w, unsupported language %q", lcerrors.ErrInvalidOption, cfg.Language)
		}
		target.language = language
		return target, nil
	}

	language, ok := lang.SlugForExt(ext)
	if !ok {
		return createTarget{}, fmt.Errorf("%w, unsupported extension %q, choose one of %v", lcerrors.ErrInvalidOption, ext, lang.Extensions())
	}
	target.language = language
	return target, nil
}

var createCmd = &cobra.Command{
	Use:   "create [SLUG_OR_DOTTED_NAME]",
	Short: "Create a solution file with the starter code",
	Long: `Create <id>.<slug>.<ext> in the current directory with the starter code
of the problem. Existing files are never overwritten.

Examples:
  leetcode create                 # last shown problem, default language
  leetcode create .rs             # last shown problem in Rust
  leetcode create two-sum         # default language
  leetcode create two-sum.py
  leetcode create 1.two-sum.cpp`,
	Args: cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		a, err := loadApp(cmd)
		if err != nil {
			return err
		}

		var arg string
		if len(args) == 1 {
			arg = args[0]
		}
		target, err := parseCreateTarget(arg, a.cfg)
		if err != nil {
			return err
		}

		ctx := cmd.Context()
		idx, err := a.index()
		if err != nil {
			return err
		}
		slug, err := a.client.ResolveSlug(ctx, target.ref, idx)
		if err != nil {
			return err
		}
		snippets, err := a.client.FetchSnippets(ctx, slug)
		if err != nil {
			return err
		}
		code, ok := snippets.Code[target.language]
		if !ok {
			return fmt.Errorf("%w, %s has no starter code for %s", lcerrors.ErrInvalidOption, slug, target.language)
		}

		ext, _ := lang.ExtForSlug(target.language)
		name := lang.SolutionFile{FrontendID: snippets.FrontendID, Slug: slug, Ext: ext}.FileName()
		if err := writeNewFile(name, strings.NewReader(code)); err != nil {
			return err
		}
		fmt.Fprintln(a.out, ui.Success("created "+name))
		return nil
	},
}

// writeNewFile copies src into a new file and refuses to replace an existing
// one. A failed write removes the partial file.
func writeNewFile(name string, src io.Reader) error {
	f, err := os.OpenFile(name, os.O_WRONLY|os.O_CREATE|os.O_EXCL, 0644)
	if err != nil {
		if errors.Is(err, os.ErrExist) {
			return fmt.Errorf("%w, %s", lcerrors.ErrFileExists, name)
		}
		return fmt.Errorf("%w, cannot create %s, %w", lcerrors.ErrProblem, name, err)
	}
	_, err = io.Copy(f, src)
	if closeErr := f.Close(); err == nil {
		err = closeErr
	}
	if err != nil {
		_ = os.Remove(name)
		return fmt.Errorf("%w, cannot write %s, %w", lcerrors.ErrProblem, name, err)
	}
	return nil
}

func init() {
	rootCmd.AddCommand(createCmd)
}
