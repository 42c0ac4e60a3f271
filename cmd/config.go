package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/chibuka/leetcode-cli/ui"
)

var configCmd = &cobra.Command{
	Use:   "config [KEY] [VALUE]",
	Short: "Show or change settings",
	Long: `Show or change the settings stored in config.json.

Keys:
  cookie     the raw Cookie header of a logged-in leetcode.com session,
             it must contain csrftoken and LEETCODE_SESSION
  username   the account whose stats are shown by default
  language   default language for 'create' (slug or extension, e.g. python3 or py)
  theme      active theme, see 'leetcode theme'

Examples:
  leetcode config
  leetcode config language rs
  leetcode config cookie "csrftoken=...; LEETCODE_SESSION=..."`,
	Args: cobra.MaximumNArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		a, err := loadApp(cmd)
		if err != nil {
			return err
		}

		switch len(args) {
		case 0:
			for _, entry := range a.cfg.Entries() {
				fmt.Fprintf(a.out, "%s: %s\n", entry.Key, entry.Value)
			}
			return nil
		case 1:
			value, err := a.cfg.Get(args[0])
			if err != nil {
				return err
			}
			fmt.Fprintln(a.out, value)
			return nil
		}

		if err := a.cfg.Set(args[0], args[1]); err != nil {
			return err
		}
		if err := a.save(); err != nil {
			return err
		}
		fmt.Fprintln(a.out, ui.Success(fmt.Sprintf("%s updated", args[0])))
		return nil
	},
}

func init() {
	rootCmd.AddCommand(configCmd)
}
