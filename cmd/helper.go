// cmd/helper.go
package cmd

import (
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/chibuka/leetcode-cli/client"
	"github.com/chibuka/leetcode-cli/internal/config"
	"github.com/chibuka/leetcode-cli/internal/lcerrors"
	"github.com/chibuka/leetcode-cli/ui"
	"github.com/chibuka/leetcode-cli/ui/theme"
)

// baseURLEnv points the client at another origin, e.g. a mirror or a test server.
const baseURLEnv = "LEETCODE_BASE_URL"

// now is replaced in tests.
var now = time.Now

var validate = validator.New()

// app is everything a command needs, loaded once per invocation.
type app struct {
	dir        string
	store      *config.Store
	cfg        *config.Config
	formatting *config.FormattingConfig
	client     *client.Client
	out        io.Writer
	errOut     io.Writer
}

func loadApp(cmd *cobra.Command) (*app, error) {
	dir, err := config.Dir()
	if err != nil {
		return nil, err
	}
	store := config.NewStore(dir)
	cfg, err := store.Load()
	if err != nil {
		return nil, err
	}
	formatting, err := config.LoadFormatting(dir)
	if err != nil {
		return nil, err
	}

	var opts []client.Option
	if base := os.Getenv(baseURLEnv); base != "" {
		opts = append(opts, client.WithBaseURL(base))
	}

	log.WithFields(log.Fields{"dir": dir, "theme": cfg.ActiveTheme()}).Debug("config loaded")
	return &app{
		dir:        dir,
		store:      store,
		cfg:        cfg,
		formatting: formatting,
		client:     client.New(cfg.Cookie, opts...),
		out:        cmd.OutOrStdout(),
		errOut:     cmd.ErrOrStderr(),
	}, nil
}

// bundle loads the active theme. Commands that do not render skip it so a
// broken theme can still be replaced.
func (a *app) bundle() (*theme.Bundle, error) {
	name := a.cfg.ActiveTheme()
	return theme.Load(config.ThemeDir(a.dir, name), name)
}

func (a *app) index() (*config.ProblemIndex, error) {
	return config.LoadIndex(a.dir)
}

func (a *app) judge() *client.Judge {
	return client.NewJudge(a.client, client.WithObserver(ui.NewProgress(a.errOut).Observe))
}

func (a *app) save() error {
	return a.store.Save(a.cfg)
}

// requireCookie fails early for commands that need a session.
func (a *app) requireCookie() error {
	if !a.client.Authenticated() {
		return fmt.Errorf("%w, cookie is not set", lcerrors.ErrMissingConfigKey)
	}
	return nil
}

// includeOptions validates the values of an -i flag.
func includeOptions(values []string, allowed ...string) error {
	rule := "dive,oneof=" + strings.Join(allowed, " ")
	if err := validate.Var(values, rule); err != nil {
		return fmt.Errorf("%w, -i accepts %s", lcerrors.ErrInvalidOption, strings.Join(allowed, ", "))
	}
	return nil
}
