/*
Copyright © 2025 MAROUANE BOUFAROUJ <boufaroujmarouan@gmail.com>
*/
package cmd

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"

	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/chibuka/leetcode-cli/internal/config"
	"github.com/chibuka/leetcode-cli/internal/lcerrors"
	"github.com/chibuka/leetcode-cli/ui"
	"github.com/chibuka/leetcode-cli/ui/theme"
)

var verbose bool

var rootCmd = &cobra.Command{
	Use:   "leetcode",
	Short: "Solve LeetCode problems from your terminal",
	Long: `leetcode - browse, solve and submit LeetCode problems without leaving the terminal

Your code is judged on leetcode.com; nothing runs locally.

Quick Start:
  1. Set your session:  leetcode config cookie "<cookie from your browser>"
  2. Pick a problem:    leetcode show two-sum
  3. Create a file:     leetcode create .py
  4. Try the examples:  leetcode test 1.two-sum.py
  5. Submit:            leetcode submit 1.two-sum.py

Settings live in ~/.config/leetcode (override with LEETCODE_CONFIG_DIR).`,
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		if verbose {
			log.SetLevel(log.DebugLevel)
		}
		dir, err := config.Dir()
		if err != nil {
			return err
		}
		return config.EnsureScaffold(dir, theme.Default())
	},
}

func Execute() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	err := rootCmd.ExecuteContext(ctx)
	stop()
	if err != nil {
		fmt.Fprintln(os.Stderr, formatError(err))
		os.Exit(1)
	}
}

// formatError turns any surfaced error into the single line shown to the user.
func formatError(err error) string {
	msg := err.Error()
	switch {
	case errors.Is(err, lcerrors.ErrMissingConfigKey):
		msg += " (see 'leetcode config --help')"
	case errors.Is(err, context.Canceled):
		msg = "interrupted"
	}
	return ui.Failure(msg)
}

func init() {
	log.SetOutput(os.Stderr)
	log.SetFormatter(&log.TextFormatter{DisableTimestamp: true})
	log.SetLevel(log.WarnLevel)

	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "print debug logs to stderr")
}
