package theme

import (
	"embed"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"sort"
	"strings"

	lru "github.com/hashicorp/golang-lru/v2"
	log "github.com/sirupsen/logrus"
	"gopkg.in/yaml.v3"

	"github.com/chibuka/leetcode-cli/internal/lcerrors"
)

const (
	AnsiFile     = "ansi_codes.yaml"
	SymbolsFile  = "symbols.yaml"
	MappingsFile = "mappings.yaml"

	resetToken   = "reset"
	defaultReset = "\x1b[0m"
	cacheSize    = 256
)

//go:embed default_theme/*.yaml
var bundled embed.FS

// Default returns the files of the bundled default theme.
func Default() fs.FS {
	sub, err := fs.Sub(bundled, "default_theme")
	if err != nil {
		panic(err)
	}
	return sub
}

// Rule is one entry of mappings.yaml. Each field is a comma-separated chain
// of tokens.
type Rule struct {
	ANSI        string `yaml:"ansi"`
	SymbolLeft  string `yaml:"symbol_left"`
	SymbolRight string `yaml:"symbol_right"`
}

// Style is a resolved Rule.
type Style struct {
	ANSI  string
	Left  string
	Right string
	Reset string
}

// Render wraps text in the style. Styles without ansi codes only add glyphs.
func (s Style) Render(text string) string {
	if s.ANSI == "" {
		return s.Left + text + s.Right
	}
	return s.ANSI + s.Left + text + s.Right + s.Reset
}

// Bundle is a loaded theme. It is read-only after Load.
type Bundle struct {
	Name     string
	ansi     map[string]string
	symbols  map[string]string
	sections map[string]map[string]Rule
	cache    *lru.Cache[string, Style]
}

// Load reads a theme from a directory on disk.
func Load(dir, name string) (*Bundle, error) {
	info, err := os.Stat(dir)
	if err != nil || !info.IsDir() {
		return nil, fmt.Errorf("%w, %q (looked in %s)", lcerrors.ErrMissingTheme, name, dir)
	}
	return LoadFS(os.DirFS(dir), name)
}

// LoadFS reads ansi_codes.yaml, symbols.yaml and mappings.yaml from fsys.
func LoadFS(fsys fs.FS, name string) (*Bundle, error) {
	b := &Bundle{Name: name}

	if err := readYAML(fsys, AnsiFile, name, &b.ansi); err != nil {
		return nil, err
	}
	if err := readYAML(fsys, SymbolsFile, name, &b.symbols); err != nil {
		return nil, err
	}
	if err := readYAML(fsys, MappingsFile, name, &b.sections); err != nil {
		return nil, err
	}

	cache, err := lru.New[string, Style](cacheSize)
	if err != nil {
		return nil, fmt.Errorf("%w, %w", lcerrors.ErrTheme, err)
	}
	b.cache = cache

	for _, problem := range b.unresolved() {
		log.WithFields(log.Fields{
			"theme":   name,
			"section": problem.section,
			"key":     problem.key,
			"token":   problem.token,
		}).Warn("theme references an undefined token")
	}
	return b, nil
}

func readYAML(fsys fs.FS, file, theme string, out any) error {
	data, err := fs.ReadFile(fsys, file)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return fmt.Errorf("%w, theme %q has no %s", lcerrors.ErrTheme, theme, file)
		}
		return fmt.Errorf("%w, cannot read %s of theme %q, %w", lcerrors.ErrTheme, file, theme, err)
	}

	var doc yaml.Node
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return fmt.Errorf("%w, %s of theme %q is not valid yaml, %w", lcerrors.ErrTheme, file, theme, err)
	}
	if len(doc.Content) == 0 || doc.Content[0].Kind != yaml.MappingNode {
		return fmt.Errorf("%w, %s of theme %q must be a mapping at the top level", lcerrors.ErrTheme, file, theme)
	}
	if err := doc.Content[0].Decode(out); err != nil {
		return fmt.Errorf("%w, %s of theme %q, %w", lcerrors.ErrTheme, file, theme, err)
	}
	return nil
}

// Reset is the sequence that clears every attribute.
func (b *Bundle) Reset() string {
	if seq, ok := b.ansi[resetToken]; ok {
		return seq
	}
	return defaultReset
}

// Styling resolves the rule of key in section. A missing section or key is an error.
func (b *Bundle) Styling(section, key string) (Style, error) {
	cacheKey := section + "." + key
	if style, ok := b.cache.Get(cacheKey); ok {
		return style, nil
	}

	keys, ok := b.sections[section]
	if !ok {
		return Style{}, fmt.Errorf("%w, theme %q has no section %s", lcerrors.ErrTheme, b.Name, section)
	}
	rule, ok := keys[key]
	if !ok {
		return Style{}, fmt.Errorf("%w, theme %q has no key %s.%s", lcerrors.ErrTheme, b.Name, section, key)
	}

	style := Style{
		ANSI:  b.resolve(rule.ANSI, b.ansi, false, section, key),
		Left:  b.resolve(rule.SymbolLeft, b.symbols, true, section, key),
		Right: b.resolve(rule.SymbolRight, b.symbols, true, section, key),
		Reset: b.Reset(),
	}
	b.cache.Add(cacheKey, style)
	return style, nil
}

// Lookup is Styling for optional keys.
func (b *Bundle) Lookup(section, key string) (Style, bool) {
	if _, ok := b.sections[section][key]; !ok {
		return Style{}, false
	}
	style, err := b.Styling(section, key)
	return style, err == nil
}

// resolve concatenates the values of a token chain. Unknown ansi tokens are
// dropped, unknown symbol tokens are kept as literal text.
func (b *Bundle) resolve(chain string, dict map[string]string, keepUnknown bool, section, key string) string {
	var sb strings.Builder
	for _, token := range splitChain(chain) {
		if value, ok := dict[token]; ok {
			sb.WriteString(value)
			continue
		}
		log.WithFields(log.Fields{
			"theme":   b.Name,
			"section": section,
			"key":     key,
			"token":   token,
		}).Debug("unresolved theme token")
		if keepUnknown {
			sb.WriteString(token)
		}
	}
	return sb.String()
}

func splitChain(chain string) []string {
	var tokens []string
	for _, token := range strings.Split(chain, ",") {
		if token = strings.TrimSpace(token); token != "" {
			tokens = append(tokens, token)
		}
	}
	return tokens
}

// Sections lists every section with its keys, sorted.
func (b *Bundle) Sections() map[string][]string {
	out := make(map[string][]string, len(b.sections))
	for section, keys := range b.sections {
		names := make([]string, 0, len(keys))
		for key := range keys {
			names = append(names, key)
		}
		sort.Strings(names)
		out[section] = names
	}
	return out
}

type unresolvedToken struct {
	section string
	key     string
	token   string
}

func (b *Bundle) unresolved() []unresolvedToken {
	var out []unresolvedToken
	sections := b.Sections()
	names := make([]string, 0, len(sections))
	for section := range sections {
		names = append(names, section)
	}
	sort.Strings(names)

	for _, section := range names {
		for _, key := range sections[section] {
			rule := b.sections[section][key]
			for _, token := range splitChain(rule.ANSI) {
				if _, ok := b.ansi[token]; !ok {
					out = append(out, unresolvedToken{section, key, token})
				}
			}
			for _, token := range append(splitChain(rule.SymbolLeft), splitChain(rule.SymbolRight)...) {
				if _, ok := b.symbols[token]; !ok {
					out = append(out, unresolvedToken{section, key, token})
				}
			}
		}
	}
	return out
}

// Validate fails when any rule references a token the theme does not define.
// Load only warns about them so that hand-edited themes keep working.
func (b *Bundle) Validate() error {
	problems := b.unresolved()
	if len(problems) == 0 {
		return nil
	}
	refs := make([]string, 0, len(problems))
	for _, p := range problems {
		refs = append(refs, fmt.Sprintf("%s.%s:%s", p.section, p.key, p.token))
	}
	return fmt.Errorf("%w, theme %q references undefined tokens %s", lcerrors.ErrTheme, b.Name, strings.Join(refs, ", "))
}
