package curation

import (
	"fmt"
	"sort"

	"icon-curator/core/filesystem"

	"go.uber.org/multierr"
	"go.uber.org/zap"
)

// Inventory holds the sets derived from an AssetIndex and the outcome of the checks.
type Inventory struct {
	// Icons are the distinct icon names, sorted.
	Icons []string `json:"icons" yaml:"-"`
	// Sizes are the distinct sizes, ascending.
	Sizes []int `json:"sizes" yaml:"sizes"`
	// Styles are the distinct styles, sorted.
	Styles []string `json:"styles" yaml:"styles"`
	// IconCount is len(Icons).
	IconCount int `json:"icon_count" yaml:"icon_count"`
	// AssetCount is the number of indexed files.
	AssetCount int `json:"asset_count" yaml:"asset_count"`
	// TopLevelEntries is the number of entries directly under the source root.
	TopLevelEntries int `json:"top_level_entries" yaml:"top_level_entries"`
	// DefaultSizedIcons counts icons with at least one asset at the default size.
	DefaultSizedIcons int `json:"default_sized_icons" yaml:"default_sized_icons"`
	// AdditionalStyles are styles found in the source but not targeted.
	AdditionalStyles []string `json:"additional_styles" yaml:"additional_styles"`
}

// Derive computes the distinct icons, sizes and styles of an index.
func Derive(index AssetIndex) *Inventory {
	icons := make(map[string]struct{})
	sizes := make(map[int]struct{})
	styles := make(map[string]struct{})
	for key := range index {
		icons[key.Icon] = struct{}{}
		sizes[key.Size] = struct{}{}
		styles[key.Style] = struct{}{}
	}

	inv := &Inventory{
		Icons:      sortedStrings(icons),
		Styles:     sortedStrings(styles),
		AssetCount: len(index),
	}
	for s := range sizes {
		inv.Sizes = append(inv.Sizes, s)
	}
	sort.Ints(inv.Sizes)
	inv.IconCount = len(inv.Icons)
	return inv
}

// Analyze derives the inventory of index and checks it against the expectations.
//
// The checks are:
//   - the source root holds exactly one top-level entry per indexed icon
//   - the default size is present
//   - every default style is present
//
// All failed checks are reported together in one InventoryError. Styles found
// beyond the default ones are informational only.
func Analyze(fsys *filesystem.FS, root string, index AssetIndex, cfg Config, logger *zap.Logger) (*Inventory, error) {
	inv := Derive(index)

	topLevel, err := fsys.CountEntries(root)
	if err != nil {
		return nil, fmt.Errorf("could not list source root: %w", err)
	}
	inv.TopLevelEntries = topLevel

	var problems error

	if topLevel != inv.IconCount {
		problems = multierr.Append(problems, fmt.Errorf("%w (%d of %d icons)", ErrResourceCount, inv.IconCount, topLevel))
	} else {
		logger.Info("Found all icon resources", zap.Int("icons", inv.IconCount))
	}

	defaultSized := defaultSizedIcons(index, cfg.DefaultSize)
	inv.DefaultSizedIcons = len(defaultSized)
	if !containsInt(inv.Sizes, cfg.DefaultSize) {
		problems = multierr.Append(problems, fmt.Errorf("%w: %d", ErrMissingDefaultSize, cfg.DefaultSize))
	} else {
		logger.Info("Default sized icons",
			zap.Int("default_sized", inv.DefaultSizedIcons),
			zap.Int("icons", inv.IconCount),
			zap.Int("size", cfg.DefaultSize),
		)
	}

	known := toSet(inv.Styles)
	unknown := 0
	for _, style := range cfg.Styles() {
		if _, ok := known[style]; !ok {
			unknown++
			problems = multierr.Append(problems, fmt.Errorf("%w: %s", ErrMissingStyle, style))
		}
	}
	if unknown == 0 {
		logger.Info("All default styles are known", zap.Strings("styles", cfg.Styles()))
	}

	targeted := toSet(cfg.DefaultStyles)
	for _, style := range inv.Styles {
		if _, ok := targeted[style]; !ok {
			inv.AdditionalStyles = append(inv.AdditionalStyles, style)
		}
	}
	if len(inv.AdditionalStyles) > 0 {
		logger.Info("Additional styles found", zap.Int("count", len(inv.AdditionalStyles)), zap.Strings("styles", inv.AdditionalStyles))
	} else {
		logger.Info("No additional styles found")
	}

	if problems != nil {
		return inv, newInventoryError("analysis", problems)
	}
	return inv, nil
}

func defaultSizedIcons(index AssetIndex, size int) map[string]struct{} {
	icons := make(map[string]struct{})
	for key := range index {
		if key.Size == size {
			icons[key.Icon] = struct{}{}
		}
	}
	return icons
}

func sortedStrings(set map[string]struct{}) []string {
	out := make([]string, 0, len(set))
	for s := range set {
		out = append(out, s)
	}
	sort.Strings(out)
	return out
}

func toSet(values []string) map[string]struct{} {
	set := make(map[string]struct{}, len(values))
	for _, v := range values {
		set[v] = struct{}{}
	}
	return set
}

func containsInt(values []int, want int) bool {
	for _, v := range values {
		if v == want {
			return true
		}
	}
	return false
}
