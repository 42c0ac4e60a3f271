package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sort"

	"github.com/chibuka/leetcode-cli/internal/lcerrors"
)

// EnsureScaffold creates the config directory layout on first run. Existing
// files are never overwritten.
func EnsureScaffold(dir string, defaultTheme fs.FS) error {
	themeDir := filepath.Join(dir, ThemesDir, DefaultTheme)
	if err := os.MkdirAll(themeDir, 0700); err != nil {
		return fmt.Errorf("%w, cannot create %s, %w", lcerrors.ErrConfig, themeDir, err)
	}

	entries, err := fs.ReadDir(defaultTheme, ".")
	if err != nil {
		return fmt.Errorf("%w, cannot read bundled theme, %w", lcerrors.ErrTheme, err)
	}
	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}
		target := filepath.Join(themeDir, entry.Name())
		if exists(target) {
			continue
		}
		data, err := fs.ReadFile(defaultTheme, entry.Name())
		if err != nil {
			return fmt.Errorf("%w, cannot read bundled %s, %w", lcerrors.ErrTheme, entry.Name(), err)
		}
		if err := writeFileAtomic(target, data); err != nil {
			return err
		}
	}

	if !exists(filepath.Join(dir, FormattingFile)) {
		if err := SaveFormatting(dir, DefaultFormatting()); err != nil {
			return err
		}
	}

	if !exists(filepath.Join(dir, ConfigFile)) {
		if err := NewStore(dir).Save(&Config{Theme: DefaultTheme}); err != nil {
			return err
		}
	}

	return nil
}

// Themes lists the installed theme names, sorted.
func Themes(dir string) ([]string, error) {
	entries, err := os.ReadDir(filepath.Join(dir, ThemesDir))
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil, nil
		}
		return nil, fmt.Errorf("%w, cannot list themes, %w", lcerrors.ErrTheme, err)
	}

	var names []string
	for _, entry := range entries {
		if entry.IsDir() {
			names = append(names, entry.Name())
		}
	}
	sort.Strings(names)
	return names, nil
}

// ThemeDir returns the directory of an installed theme.
func ThemeDir(dir, name string) string {
	return filepath.Join(dir, ThemesDir, name)
}

func exists(path string) bool {
	_, err := os.Stat(path)
	return err == nil
}
