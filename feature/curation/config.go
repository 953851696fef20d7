package curation

import (
	"fmt"
	"path/filepath"
	"regexp"
	"sort"
)

// ReconcileMode selects how the cross-fill stage treats gaps between style directories.
type ReconcileMode string

const (
	// ReconcileFill copies missing files between style directories.
	ReconcileFill ReconcileMode = "fill"
	// ReconcileStrict reports gaps without filling them.
	ReconcileStrict ReconcileMode = "strict"
)

var stylePattern = regexp.MustCompile(`^[a-z]+$`)

// Config holds the curation settings.
type Config struct {
	// Source is the root of the source asset tree.
	Source string `mapstructure:"source" default:"assets"`
	// Output is the root of the curated output tree.
	Output string `mapstructure:"output" default:"fluentui"`
	// DefaultSize is the preferred icon size.
	DefaultSize int `mapstructure:"default_size" default:"24"`
	// DefaultStyles lists the styles written to the output tree.
	DefaultStyles []string `mapstructure:"default_styles" default:"regular,filled"`
	// UseOriginalName keeps source filenames instead of the curated hyphenated names.
	UseOriginalName bool `mapstructure:"use_original_name" default:"false"`
	// Overwrite replaces existing output files instead of failing.
	Overwrite bool `mapstructure:"overwrite" default:"false"`
	// ReconcileMode is "fill" or "strict".
	ReconcileMode ReconcileMode `mapstructure:"reconcile_mode" default:"fill"`
	// Staging writes into a sibling directory and swaps it into place on success.
	Staging bool `mapstructure:"staging" default:"false"`
	// Manifest writes curation.yaml at the output root.
	Manifest bool `mapstructure:"manifest" default:"true"`
	// MaxDepth bounds the source tree walk.
	MaxDepth int `mapstructure:"max_depth" default:"3"`
}

// DefaultConfig returns the settings the tool ships with.
func DefaultConfig() Config {
	return Config{
		Source:        "assets",
		Output:        "fluentui",
		DefaultSize:   24,
		DefaultStyles: []string{"regular", "filled"},
		ReconcileMode: ReconcileFill,
		Manifest:      true,
		MaxDepth:      3,
	}
}

// Styles returns the default styles sorted and de-duplicated.
func (c Config) Styles() []string {
	seen := make(map[string]struct{}, len(c.DefaultStyles))
	styles := make([]string, 0, len(c.DefaultStyles))
	for _, s := range c.DefaultStyles {
		if _, ok := seen[s]; ok {
			continue
		}
		seen[s] = struct{}{}
		styles = append(styles, s)
	}
	sort.Strings(styles)
	return styles
}

// Validate checks the settings before a run.
func (c Config) Validate() error {
	if c.Source == "" {
		return fmt.Errorf("source directory is required")
	}
	if c.Output == "" {
		return fmt.Errorf("output directory is required")
	}
	if filepath.Clean(c.Source) == filepath.Clean(c.Output) {
		return fmt.Errorf("output directory must differ from source directory")
	}
	if c.DefaultSize < 0 {
		return fmt.Errorf("default size must not be negative, got %d", c.DefaultSize)
	}
	if len(c.DefaultStyles) == 0 {
		return fmt.Errorf("at least one default style is required")
	}
	for _, s := range c.DefaultStyles {
		if !stylePattern.MatchString(s) {
			return fmt.Errorf("invalid style %q: styles are lowercase letters only", s)
		}
	}
	switch c.ReconcileMode {
	case ReconcileFill, ReconcileStrict:
	default:
		return fmt.Errorf("unknown reconcile mode %q", c.ReconcileMode)
	}
	if c.MaxDepth < 1 {
		return fmt.Errorf("max depth must be at least 1, got %d", c.MaxDepth)
	}
	return nil
}
