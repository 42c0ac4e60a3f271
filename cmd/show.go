package cmd

import (
	"fmt"

	"github.com/pkg/browser"
	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/chibuka/leetcode-cli/internal/lcerrors"
	"github.com/chibuka/leetcode-cli/internal/leetcode"
	"github.com/chibuka/leetcode-cli/ui"
)

var problemSections = []string{"title", "tags", "langs", "description", "examples", "constraints"}

var (
	showInclude    []string
	showRandom     bool
	showWeb        bool
	showDifficulty string
)

var showCmd = &cobra.Command{
	Use:   "show [SLUG_OR_FRONTEND_ID]",
	Short: "Show a problem statement",
	Long: `Show a problem by slug or number. The problem becomes the default
for 'leetcode create'.

Examples:
  leetcode show two-sum
  leetcode show 1 -i description -i examples
  leetcode show --random -d hard
  leetcode show two-sum --web`,
	Args: cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		if err := includeOptions(showInclude, problemSections...); err != nil {
			return err
		}
		if len(args) == 0 && !showRandom {
			return fmt.Errorf("%w, give a slug or a problem number, or use --random", lcerrors.ErrInvalidOption)
		}
		if showDifficulty != "" && !showRandom {
			return fmt.Errorf("%w, --difficulty only applies with --random", lcerrors.ErrInvalidOption)
		}

		a, err := loadApp(cmd)
		if err != nil {
			return err
		}
		ctx := cmd.Context()

		var slug string
		if showRandom {
			var difficulty leetcode.Difficulty
			if showDifficulty != "" {
				if difficulty, err = leetcode.ParseDifficulty(showDifficulty); err != nil {
					return err
				}
			}
			slug, err = a.client.RandomSlug(ctx, difficulty)
		} else {
			idx, indexErr := a.index()
			if indexErr != nil {
				return indexErr
			}
			slug, err = a.client.ResolveSlug(ctx, args[0], idx)
		}
		if err != nil {
			return err
		}

		if showWeb {
			if err := a.choose(slug); err != nil {
				return err
			}
			url := a.client.ProblemURL(slug)
			log.WithField("url", url).Debug("opening problem page")
			return browser.OpenURL(url)
		}

		bundle, err := a.bundle()
		if err != nil {
			return err
		}
		problem, err := a.client.FetchProblem(ctx, slug)
		if err != nil {
			return err
		}
		if err := a.choose(slug); err != nil {
			return err
		}
		out, err := ui.RenderProblem(problem, bundle, a.formatting.ProblemShow.Only(showInclude))
		if err != nil {
			return err
		}
		fmt.Fprint(a.out, out)
		return nil
	},
}

// choose records slug as the default problem of 'create'.
func (a *app) choose(slug string) error {
	a.cfg.ChosenProblem = slug
	return a.save()
}

func init() {
	rootCmd.AddCommand(showCmd)
	showCmd.Flags().StringSliceVarP(&showInclude, "include", "i", nil, "sections to show: title, tags, langs, description, examples, constraints")
	showCmd.Flags().BoolVarP(&showRandom, "random", "r", false, "show a random problem")
	showCmd.Flags().StringVarP(&showDifficulty, "difficulty", "d", "", "difficulty of the random problem")
	showCmd.Flags().BoolVarP(&showWeb, "web", "w", false, "open the problem in the browser instead")
}
