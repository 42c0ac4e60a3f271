package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/chibuka/leetcode-cli/client"
	"github.com/chibuka/leetcode-cli/internal/config"
	"github.com/chibuka/leetcode-cli/internal/lcerrors"
	"github.com/chibuka/leetcode-cli/ui"
)

var statsInclude []string

var statsCmd = &cobra.Command{
	Use:   "stats [USERNAME]",
	Short: "Show solved problems and the submission calendar",
	Long: `Show how many problems a user solved per difficulty and a heatmap of
their submissions over the past year.

The username defaults to the configured one, then to the account of the
session cookie.

Examples:
  leetcode stats
  leetcode stats alice -i calendar`,
	Args: cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		if err := includeOptions(statsInclude, "stats", "calendar"); err != nil {
			return err
		}
		a, err := loadApp(cmd)
		if err != nil {
			return err
		}
		username, err := resolveUsername(args, a.cfg)
		if err != nil {
			return err
		}
		bundle, err := a.bundle()
		if err != nil {
			return err
		}

		showStats, showCalendar := len(statsInclude) == 0, len(statsInclude) == 0
		for _, name := range statsInclude {
			showStats = showStats || name == "stats"
			showCalendar = showCalendar || name == "calendar"
		}

		ctx := cmd.Context()
		if showStats {
			stats, err := a.client.FetchUserStats(ctx, username)
			if err != nil {
				return err
			}
			out, err := ui.RenderStats(username, stats, bundle)
			if err != nil {
				return err
			}
			fmt.Fprintln(a.out, out)
		}
		if showCalendar {
			activity, err := a.client.FetchActivity(ctx, username, now())
			if err != nil {
				return err
			}
			out, err := ui.RenderCalendar(activity, bundle)
			if err != nil {
				return err
			}
			fmt.Fprint(a.out, out)
		}
		return nil
	},
}

// resolveUsername picks the argument, then the configured username, then
// the account the session cookie belongs to.
func resolveUsername(args []string, cfg *config.Config) (string, error) {
	if len(args) == 1 {
		return args[0], nil
	}
	if cfg.Username != "" {
		return cfg.Username, nil
	}
	if username, ok := client.SessionUsername(cfg.Cookie); ok {
		return username, nil
	}
	return "", fmt.Errorf("%w, username is not set and the cookie has no session", lcerrors.ErrMissingConfigKey)
}

func init() {
	rootCmd.AddCommand(statsCmd)
	statsCmd.Flags().StringSliceVarP(&statsInclude, "include", "i", nil, "parts to show: stats, calendar")
}
