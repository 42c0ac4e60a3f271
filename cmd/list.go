package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/chibuka/leetcode-cli/client"
	"github.com/chibuka/leetcode-cli/internal/lcerrors"
	"github.com/chibuka/leetcode-cli/internal/leetcode"
	"github.com/chibuka/leetcode-cli/ui"
)

type listOptions struct {
	Difficulty string   `validate:"omitempty,oneof=EASY MEDIUM HARD easy medium hard Easy Medium Hard"`
	Tags       []string `validate:"dive,required"`
	Limit      int      `validate:"gt=0"`
	Page       int      `validate:"gt=0"`
	Search     string
}

var listOpts listOptions

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List problems page by page",
	Long: `List problems with their status, difficulty and acceptance rate.

Examples:
  leetcode list
  leetcode list -d MEDIUM -l 3 -p 2
  leetcode list -t array -t hash-table`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		if err := validate.Struct(listOpts); err != nil {
			return fmt.Errorf("%w, %w", lcerrors.ErrInvalidOption, err)
		}
		filter := client.ListFilter{
			Tags:   listOpts.Tags,
			Search: listOpts.Search,
			Limit:  listOpts.Limit,
			Page:   listOpts.Page,
		}
		if listOpts.Difficulty != "" {
			d, err := leetcode.ParseDifficulty(listOpts.Difficulty)
			if err != nil {
				return err
			}
			filter.Difficulty = d
		}

		a, err := loadApp(cmd)
		if err != nil {
			return err
		}
		bundle, err := a.bundle()
		if err != nil {
			return err
		}

		set, err := a.client.FetchProblemSet(cmd.Context(), filter)
		if err != nil {
			return err
		}
		out, err := ui.RenderProblemList(set, bundle)
		if err != nil {
			return err
		}
		fmt.Fprint(a.out, out)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(listCmd)
	listCmd.Flags().StringVarP(&listOpts.Difficulty, "difficulty", "d", "", "EASY, MEDIUM or HARD")
	listCmd.Flags().StringSliceVarP(&listOpts.Tags, "tag", "t", nil, "topic tag slug, repeatable")
	listCmd.Flags().StringVarP(&listOpts.Search, "search", "s", "", "search keywords")
	listCmd.Flags().IntVarP(&listOpts.Limit, "limit", "l", 50, "problems per page")
	listCmd.Flags().IntVarP(&listOpts.Page, "page", "p", 1, "page number, starting at 1")
}
