package cmd

import (
	"github.com/spf13/cobra"
)

var submitInclude []string

var submitCmd = &cobra.Command{
	Use:   "submit <file>",
	Short: "Submit a solution for judging",
	Long: `Submit your solution to be judged against the full hidden test suite.
The verdict is recorded on your profile.

The file name must look like <id>.<slug>.<ext>, as written by 'leetcode create'.

Example:
  leetcode submit 1.two-sum.py

Tip: Use 'leetcode test' first to try the examples.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		if err := includeOptions(submitInclude, submissionSections...); err != nil {
			return err
		}
		a, err := loadApp(cmd)
		if err != nil {
			return err
		}
		return runOrSubmit(cmd.Context(), a, args[0], submitInclude, true)
	},
}

func init() {
	rootCmd.AddCommand(submitCmd)
	submitCmd.Flags().StringSliceVarP(&submitInclude, "include", "i", nil, "sections to show")
}
