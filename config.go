// CLAUDE:SUMMARY Engine configuration: defaults, YAML loading, pluggable markup parser and logger.
package gridpipe

import (
	"fmt"
	"log/slog"
	"os"

	"gopkg.in/yaml.v3"
)

// Config configures the grid engine. The zero value is usable: New applies
// defaults for every unset field.
type Config struct {
	// MaxInputSize is the largest content block processed in full, in bytes.
	// Larger blocks are truncated, never rejected. Default 4 MB.
	MaxInputSize int `json:"max_input_size" yaml:"max_input_size"`

	// HeaderKeywords supplements the built-in column-name vocabulary used by
	// the header-shape heuristic.
	HeaderKeywords []string `json:"header_keywords" yaml:"header_keywords"`

	// Markup parses repaired markup into the tree the HTML strategy walks.
	// Defaults to the golang.org/x/net/html implementation.
	Markup MarkupParser `json:"-" yaml:"-"`

	// Logger receives parser-selection traces. Defaults to slog.Default().
	Logger *slog.Logger `json:"-" yaml:"-"`
}

func (c *Config) defaults() {
	if c.MaxInputSize <= 0 {
		c.MaxInputSize = 4 * 1024 * 1024
	}
	if c.Markup == nil {
		c.Markup = netMarkup{}
	}
	if c.Logger == nil {
		c.Logger = slog.Default()
	}
}

// LoadConfig reads a YAML configuration file and applies defaults.
func LoadConfig(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read config: %w", err)
	}
	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("parse config %s: %w", path, err)
	}
	cfg.defaults()
	return &cfg, nil
}
