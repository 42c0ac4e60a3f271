package cmd

import (
	"fmt"
	"slices"

	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/chibuka/leetcode-cli/internal/config"
	"github.com/chibuka/leetcode-cli/internal/lcerrors"
	"github.com/chibuka/leetcode-cli/ui"
	"github.com/chibuka/leetcode-cli/ui/theme"
)

var themeCmd = &cobra.Command{
	Use:   "theme [THEME_NAME]",
	Short: "List themes or switch the active one",
	Long: `Without an argument, list the installed themes and mark the active one.
With a name, make that theme active.

Themes live in <config dir>/themes/<name>/ and consist of ansi_codes.yaml,
symbols.yaml and mappings.yaml. Copy default_theme to start a new one.`,
	Args: cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		a, err := loadApp(cmd)
		if err != nil {
			return err
		}
		names, err := config.Themes(a.dir)
		if err != nil {
			return err
		}

		if len(args) == 0 {
			for _, name := range names {
				marker := "  "
				if name == a.cfg.ActiveTheme() {
					marker = "* "
				}
				fmt.Fprintln(a.out, marker+name)
			}
			return nil
		}

		name := args[0]
		if !slices.Contains(names, name) {
			return fmt.Errorf("%w, %q, installed: %v", lcerrors.ErrMissingTheme, name, names)
		}
		bundle, err := theme.Load(config.ThemeDir(a.dir, name), name)
		if err != nil {
			return err
		}
		if err := bundle.Validate(); err != nil {
			log.Warn(err)
		}

		if err := a.cfg.Set("theme", name); err != nil {
			return err
		}
		if err := a.save(); err != nil {
			return err
		}
		fmt.Fprintln(a.out, ui.Success("theme set to "+name))
		return nil
	},
}

func init() {
	rootCmd.AddCommand(themeCmd)
}
