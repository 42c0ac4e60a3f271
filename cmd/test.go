package cmd

import (
	"github.com/spf13/cobra"
)

var testInclude []string

var testCmd = &cobra.Command{
	Use:   "test <file>",
	Short: "Run the example testcases on leetcode.com",
	Long: `Run your solution against the example testcases of the problem.
Nothing is recorded on your profile.

The file name must look like <id>.<slug>.<ext>, as written by 'leetcode create'.

Example:
  leetcode test 1.two-sum.py
  leetcode test 1.two-sum.py -i code_output -i expected_output

After the examples pass, use 'leetcode submit' to judge the full test suite.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		if err := includeOptions(testInclude, interpretationSections...); err != nil {
			return err
		}
		a, err := loadApp(cmd)
		if err != nil {
			return err
		}
		return runOrSubmit(cmd.Context(), a, args[0], testInclude, false)
	},
}

func init() {
	rootCmd.AddCommand(testCmd)
	testCmd.Flags().StringSliceVarP(&testInclude, "include", "i", nil, "sections to show")
}
