package curation

import (
	"fmt"
	"path/filepath"

	"icon-curator/core/filesystem"

	"gopkg.in/yaml.v3"
)

// ManifestName is the manifest filename at the output root.
const ManifestName = "curation.yaml"

// Manifest describes a curated output tree. It carries no timestamps or run ids, so
// identical inputs give identical manifests.
type Manifest struct {
	Settings ManifestSettings `yaml:"settings"`
	Summary  ManifestSummary  `yaml:"summary"`
	Files    []OutputEntry    `yaml:"files"`
}

// ManifestSettings records the configuration that produced the tree.
type ManifestSettings struct {
	DefaultSize     int           `yaml:"default_size"`
	DefaultStyles   []string      `yaml:"default_styles"`
	UseOriginalName bool          `yaml:"use_original_name"`
	ReconcileMode   ReconcileMode `yaml:"reconcile_mode"`
}

// ManifestSummary records aggregate counts.
type ManifestSummary struct {
	Icons        int            `yaml:"icons"`
	Assets       int            `yaml:"assets"`
	Curated      int            `yaml:"curated"`
	CountByStyle map[string]int `yaml:"count_by_style"`
	Filled       int            `yaml:"filled"`
	Gaps         int            `yaml:"gaps"`
}

// NewManifest builds the manifest of a finished run.
func NewManifest(report *Report, cfg Config) *Manifest {
	m := &Manifest{
		Settings: ManifestSettings{
			DefaultSize:     cfg.DefaultSize,
			DefaultStyles:   cfg.Styles(),
			UseOriginalName: cfg.UseOriginalName,
			ReconcileMode:   cfg.ReconcileMode,
		},
		Summary: ManifestSummary{
			Curated:      report.Curated.Len(),
			CountByStyle: report.CountByStyle,
		},
		Files: report.Entries(),
	}
	if report.Inventory != nil {
		m.Summary.Icons = report.Inventory.IconCount
		m.Summary.Assets = report.Inventory.AssetCount
	}
	if report.CrossFill != nil {
		m.Summary.Filled = report.CrossFill.Executed
		m.Summary.Gaps = len(report.CrossFill.Gaps())
	}
	return m
}

// WriteManifest writes m to root/curation.yaml.
func WriteManifest(fsys *filesystem.FS, root string, m *Manifest) error {
	data, err := yaml.Marshal(m)
	if err != nil {
		return fmt.Errorf("failed to marshal manifest: %w", err)
	}
	return fsys.WriteFile(filepath.Join(root, ManifestName), data)
}

// ReadManifest loads root/curation.yaml.
func ReadManifest(fsys *filesystem.FS, root string) (*Manifest, error) {
	data, err := fsys.ReadFile(filepath.Join(root, ManifestName))
	if err != nil {
		return nil, fmt.Errorf("failed to read manifest: %w", err)
	}
	var m Manifest
	if err := yaml.Unmarshal(data, &m); err != nil {
		return nil, fmt.Errorf("failed to parse manifest: %w", err)
	}
	return &m, nil
}
