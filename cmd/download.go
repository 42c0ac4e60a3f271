package cmd

import (
	"fmt"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/chibuka/leetcode-cli/internal/config"
	"github.com/chibuka/leetcode-cli/ui"
)

var downloadCmd = &cobra.Command{
	Use:   "download-problems",
	Short: "Save the problem index for offline ID lookups",
	Long: `Download the id, slug and title of every problem into
problems_metadata.json. 'show', 'create', 'test' and 'submit' use it to
resolve problem numbers and question IDs without extra requests.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		a, err := loadApp(cmd)
		if err != nil {
			return err
		}

		refs, err := a.client.FetchQuestionRefs(cmd.Context())
		if err != nil {
			return err
		}
		problems := make([]config.ProblemMeta, 0, len(refs))
		for _, ref := range refs {
			problems = append(problems, config.ProblemMeta{
				QuestionID: ref.QuestionID,
				FrontendID: ref.FrontendID,
				Slug:       ref.Slug,
				Title:      ref.Title,
				Difficulty: string(ref.Difficulty),
				PaidOnly:   ref.PaidOnly,
			})
		}

		if err := config.SaveIndex(a.dir, config.NewProblemIndex(problems, now().UTC())); err != nil {
			return err
		}
		fmt.Fprintln(a.out, ui.Success(fmt.Sprintf("saved %d problems to %s", len(problems), filepath.Join(a.dir, config.MetadataFile))))
		return nil
	},
}

func init() {
	rootCmd.AddCommand(downloadCmd)
}
