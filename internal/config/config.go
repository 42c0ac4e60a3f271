package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/joho/godotenv"
	"github.com/spf13/viper"

	"github.com/chibuka/leetcode-cli/internal/lang"
	"github.com/chibuka/leetcode-cli/internal/lcerrors"
)

const (
	ConfigFile     = "config.json"
	FormattingFile = "formatting_config.yaml"
	MetadataFile   = "problems_metadata.json"
	ThemesDir      = "themes"
	DefaultTheme   = "default_theme"
	envFile        = ".env"
)

// DirEnv overrides the config directory, mostly for tests and sandboxes.
const DirEnv = "LEETCODE_CONFIG_DIR"

var keys = []string{"cookie", "username", "language", "chosen_problem", "theme"}

type Config struct {
	Cookie        string `json:"cookie" mapstructure:"cookie"`
	Username      string `json:"username" mapstructure:"username"`
	Language      string `json:"language" mapstructure:"language"`
	ChosenProblem string `json:"chosen_problem" mapstructure:"chosen_problem"`
	Theme         string `json:"theme" mapstructure:"theme"`
}

// ActiveTheme returns the configured theme or the bundled default.
func (cfg *Config) ActiveTheme() string {
	if cfg.Theme == "" {
		return DefaultTheme
	}
	return cfg.Theme
}

// Store reads and writes config.json inside a config directory.
type Store struct {
	dir string
	v   *viper.Viper
	// file has no env binding; only it is written back
	file *viper.Viper
	env  map[string]string
}

// Dir resolves the config directory: $LEETCODE_CONFIG_DIR, else <user config dir>/leetcode.
func Dir() (string, error) {
	if dir := os.Getenv(DirEnv); dir != "" {
		return dir, nil
	}
	base, err := os.UserConfigDir()
	if err != nil {
		return "", fmt.Errorf("%w, cannot locate user config directory, %w", lcerrors.ErrConfig, err)
	}
	return filepath.Join(base, "leetcode"), nil
}

// NewStore prepares a viper instance over dir/config.json. A .env file in
// dir, when present, is loaded into the environment first so LEETCODE_*
// variables can override stored values.
func NewStore(dir string) *Store {
	_ = godotenv.Load(filepath.Join(dir, envFile))

	v := newViper(dir)
	v.SetEnvPrefix("LEETCODE")
	v.AutomaticEnv()

	return &Store{dir: dir, v: v, file: newViper(dir)}
}

func newViper(dir string) *viper.Viper {
	v := viper.New()
	v.AddConfigPath(dir)
	v.SetConfigName("config")
	v.SetConfigType("json")
	for _, key := range keys {
		v.SetDefault(key, "")
	}
	return v
}

func envName(key string) string {
	return "LEETCODE_" + strings.ToUpper(key)
}

// Load reads config.json with LEETCODE_* environment overrides applied.
func (s *Store) Load() (*Config, error) {
	s.env = make(map[string]string)
	for _, key := range keys {
		if value := os.Getenv(envName(key)); value != "" {
			s.env[key] = value
		}
	}

	if err := s.file.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return nil, fmt.Errorf("%w, cannot read %s, %w", lcerrors.ErrConfig, ConfigFile, err)
		}
	}
	if err := s.v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return nil, fmt.Errorf("%w, cannot read %s, %w", lcerrors.ErrConfig, ConfigFile, err)
		}
	}

	var cfg Config
	if err := s.v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("%w, cannot decode %s, %w", lcerrors.ErrConfig, ConfigFile, err)
	}
	return &cfg, nil
}

// Save writes cfg to a temp file next to config.json and renames it into
// place. A value still equal to its environment override is not persisted;
// the stored value is written back instead.
func (s *Store) Save(cfg *Config) error {
	for _, key := range keys {
		value, _ := cfg.Get(key)
		if override, ok := s.env[key]; ok && value == override {
			value = s.file.GetString(key)
		}
		s.file.Set(key, value)
	}

	if err := os.MkdirAll(s.dir, 0700); err != nil {
		return fmt.Errorf("%w, cannot create %s, %w", lcerrors.ErrConfig, s.dir, err)
	}

	tmp := filepath.Join(s.dir, ".config.tmp.json")
	if err := s.file.WriteConfigAs(tmp); err != nil {
		return fmt.Errorf("%w, cannot write %s, %w", lcerrors.ErrConfig, ConfigFile, err)
	}
	if err := os.Rename(tmp, filepath.Join(s.dir, ConfigFile)); err != nil {
		_ = os.Remove(tmp)
		return fmt.Errorf("%w, cannot replace %s, %w", lcerrors.ErrConfig, ConfigFile, err)
	}
	return nil
}

// Entry is one printable key/value pair of the config.
type Entry struct {
	Key   string
	Value string
}

func (cfg *Config) Entries() []Entry {
	entries := make([]Entry, 0, len(keys))
	for _, key := range keys {
		value, _ := cfg.Get(key)
		entries = append(entries, Entry{Key: key, Value: value})
	}
	return entries
}

func (cfg *Config) Get(key string) (string, error) {
	switch key {
	case "cookie":
		return cfg.Cookie, nil
	case "username":
		return cfg.Username, nil
	case "language":
		return cfg.Language, nil
	case "chosen_problem":
		return cfg.ChosenProblem, nil
	case "theme":
		return cfg.Theme, nil
	default:
		return "", fmt.Errorf("%w, unknown config key %q", lcerrors.ErrInvalidOption, key)
	}
}

type setting struct {
	Key   string `validate:"required,oneof=cookie username language theme"`
	Value string `validate:"required"`
}

var validate = func() *validator.Validate {
	v := validator.New()
	_ = v.RegisterValidation("language", func(fl validator.FieldLevel) bool {
		_, ok := lang.Normalize(fl.Field().String())
		return ok
	})
	return v
}()

// Set assigns a user-settable key. Languages are accepted as slug or extension
// and stored as the slug.
func (cfg *Config) Set(key, value string) error {
	if err := validate.Struct(setting{Key: key, Value: value}); err != nil {
		return fmt.Errorf("%w, %s=%q, %w", lcerrors.ErrInvalidOption, key, value, err)
	}

	switch key {
	case "cookie":
		cfg.Cookie = value
	case "username":
		cfg.Username = value
	case "language":
		if err := validate.Var(value, "language"); err != nil {
			return fmt.Errorf(
				"%w, unsupported language %q, choose one of %v",
				lcerrors.ErrInvalidOption,
				value,
				lang.Slugs(),
			)
		}
		cfg.Language, _ = lang.Normalize(value)
	case "theme":
		cfg.Theme = value
	}
	return nil
}
