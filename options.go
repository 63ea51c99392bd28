package blurtext

import (
	"fmt"
	"log/slog"

	"github.com/Kornerupin/blur-text/pkg/charset"
	"github.com/mitchellh/mapstructure"
)

// Default style hooks attached to generated containers.
const (
	DefaultWordClass   = "blur-word"
	DefaultLetterClass = "blur-letter"
)

// Config is the resolved decoration configuration. It is built once per
// Decorator by merging the defaults with the supplied options and never
// mutated afterwards.
type Config struct {
	Categories  charset.Categories
	WordClass   string
	LetterClass string
}

func defaultConfig() Config {
	return Config{
		Categories:  charset.Default(),
		WordClass:   DefaultWordClass,
		LetterClass: DefaultLetterClass,
	}
}

// Hooks receives decoration events. All fields are optional; set hooks must
// be cheap, they are called inline while decorating.
type Hooks struct {
	// OnElement fires once per element actually decorated (skipped and
	// already-processed elements do not fire).
	OnElement func()
	// OnLetter fires once per wrapped letter with its computed category.
	OnLetter func(category string)
	// OnCoverageGap fires at construction for every reference-alphabet
	// character no configured category covers.
	OnCoverageGap func(r rune)
}

// Option configures a Decorator.
type Option func(*Decorator)

// WithCategories merges the given category sets into the configuration,
// key by key: existing categories are replaced in place, new ones appended.
// Untouched defaults survive. May be supplied multiple times; merges apply
// in order.
func WithCategories(overrides map[string]string) Option {
	return func(d *Decorator) {
		d.cfg.Categories = d.cfg.Categories.Merge(overrides)
	}
}

// WithWordClass replaces the style hook for word containers.
func WithWordClass(class string) Option {
	return func(d *Decorator) {
		if class != "" {
			d.cfg.WordClass = class
		}
	}
}

// WithLetterClass replaces the style hook for letter containers.
func WithLetterClass(class string) Option {
	return func(d *Decorator) {
		if class != "" {
			d.cfg.LetterClass = class
		}
	}
}

// WithLogger sets the structured logger used for advisories (coverage gaps,
// empty target resolution). Defaults to a no-op logger.
func WithLogger(logger *slog.Logger) Option {
	return func(d *Decorator) {
		if logger != nil {
			d.logger = logger
		}
	}
}

// WithHooks registers decoration event hooks.
func WithHooks(hooks Hooks) Option {
	return func(d *Decorator) {
		d.hooks = hooks
	}
}

// ResolveConfig applies options against the defaults without resolving any
// targets. Useful for inspecting what a set of options produces, e.g. for
// the coverage check.
func ResolveConfig(opts ...Option) Config {
	d := &Decorator{cfg: defaultConfig()}
	for _, opt := range opts {
		opt(d)
	}
	return d.cfg
}

// optionMap mirrors the untyped option object accepted over HTTP, MCP and
// YAML config files.
type optionMap struct {
	CharCategories   map[string]string `mapstructure:"charCategories"`
	WordWrapperClass string            `mapstructure:"wordWrapperClass"`
	LetterClass      string            `mapstructure:"letterClass"`
}

// OptionsFromMap converts an untyped options object into functional options.
// Recognized keys: charCategories (category name to member characters,
// merged), wordWrapperClass and letterClass (replaced wholesale). Unknown
// keys are ignored. An error means the map could not be interpreted at all;
// callers should log it and proceed with defaults.
func OptionsFromMap(m map[string]any) ([]Option, error) {
	var raw optionMap
	dec, err := mapstructure.NewDecoder(&mapstructure.DecoderConfig{
		Result:           &raw,
		WeaklyTypedInput: true,
	})
	if err != nil {
		return nil, fmt.Errorf("build options decoder: %w", err)
	}
	if err := dec.Decode(m); err != nil {
		return nil, fmt.Errorf("decode options: %w", err)
	}

	var opts []Option
	if len(raw.CharCategories) > 0 {
		opts = append(opts, WithCategories(raw.CharCategories))
	}
	if raw.WordWrapperClass != "" {
		opts = append(opts, WithWordClass(raw.WordWrapperClass))
	}
	if raw.LetterClass != "" {
		opts = append(opts, WithLetterClass(raw.LetterClass))
	}
	return opts, nil
}
