package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/chibuka/leetcode-cli/ui"
)

var logoutCmd = &cobra.Command{
	Use:   "logout",
	Short: "Forget the stored session cookie",
	Long: `Clear the session cookie from the local config.

The session on leetcode.com itself stays valid until it expires or you log
out in the browser. Set a new cookie with 'leetcode config cookie <value>'.

Example:
  leetcode logout`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		a, err := loadApp(cmd)
		if err != nil {
			return err
		}

		if a.cfg.Cookie == "" {
			fmt.Fprintln(a.out, "Already logged out")
			return nil
		}

		a.cfg.Cookie = ""
		if err := a.save(); err != nil {
			return err
		}
		fmt.Fprintln(a.out, ui.Success("Logged out"))
		return nil
	},
}

func init() {
	rootCmd.AddCommand(logoutCmd)
}
