// Package cli holds shared glue for the blurtext commands: config file
// loading and terminal output helpers.
package cli

import (
	"fmt"
	"os"

	blurtext "github.com/Kornerupin/blur-text"
	"gopkg.in/yaml.v3"
)

// fileConfig is the YAML config file shape accepted by --config.
type fileConfig struct {
	CharCategories   map[string]string `yaml:"char_categories"`
	WordWrapperClass string            `yaml:"word_wrapper_class"`
	LetterClass      string            `yaml:"letter_class"`
}

// LoadConfigFile reads a YAML configuration file and converts it into
// decorator options. An empty path yields no options.
func LoadConfigFile(path string) ([]blurtext.Option, error) {
	if path == "" {
		return nil, nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading config file: %w", err)
	}

	var cfg fileConfig
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("parsing config file: %w", err)
	}

	var opts []blurtext.Option
	if len(cfg.CharCategories) > 0 {
		opts = append(opts, blurtext.WithCategories(cfg.CharCategories))
	}
	if cfg.WordWrapperClass != "" {
		opts = append(opts, blurtext.WithWordClass(cfg.WordWrapperClass))
	}
	if cfg.LetterClass != "" {
		opts = append(opts, blurtext.WithLetterClass(cfg.LetterClass))
	}
	return opts, nil
}
