package curation

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"icon-curator/core/filesystem"

	"github.com/google/go-cmp/cmp"
	"github.com/spf13/afero"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func newTestService(fsys *filesystem.FS, cfg Config) *Service {
	svc := NewService(fsys, cfg, zap.NewNop())
	svc.newID = func() string { return "test-run" }
	return svc
}

func TestRun_DefaultSizedScenario(t *testing.T) {
	fsys := newSourceTree(t,
		"ic_fluent_add_20_regular.svg",
		"ic_fluent_add_24_regular.svg",
		"ic_fluent_add_24_filled.svg",
	)
	cfg := testConfig("/out")
	cfg.Manifest = false

	report, err := newTestService(fsys, cfg).Run(context.Background())
	require.NoError(t, err)

	assert.Equal(t, map[string]string{
		"filled/add.svg":  "<svg>ic_fluent_add_24_filled.svg</svg>",
		"regular/add.svg": "<svg>ic_fluent_add_24_regular.svg</svg>",
	}, readTree(t, fsys, "/out"))
	assert.Equal(t, 2, report.Curated.Len())
	assert.Zero(t, report.CrossFill.Executed)
	assert.Equal(t, []string{"/out", "/out/filled", "/out/regular"}, report.Copy.CreatedDirs)
}

func TestRun_FallbackScenarioCrossFills(t *testing.T) {
	fsys := newSourceTree(t,
		"ic_fluent_beta_16_regular.svg",
		"ic_fluent_beta_20_regular.svg",
		"ic_fluent_add_24_regular.svg",
		"ic_fluent_add_24_filled.svg",
	)
	cfg := testConfig("/out")

	report, err := newTestService(fsys, cfg).Run(context.Background())
	require.NoError(t, err)

	tree := readTree(t, fsys, "/out")
	assert.Equal(t, "<svg>ic_fluent_beta_20_regular.svg</svg>", tree["regular/beta.svg"])
	// The filled copy carries the regular rendering.
	assert.Equal(t, "<svg>ic_fluent_beta_20_regular.svg</svg>", tree["filled/beta.svg"])
	assert.Contains(t, tree, ManifestName)

	assert.Equal(t, 1, report.CrossFill.Executed)
	assert.Empty(t, report.CrossFill.Gaps())

	var filled []OutputEntry
	for _, e := range report.Entries() {
		if e.FilledFrom != "" {
			filled = append(filled, e)
		}
	}
	require.Len(t, filled, 1)
	assert.Equal(t, OutputEntry{
		Style:      "filled",
		File:       "beta.svg",
		Icon:       "beta",
		Size:       20,
		Source:     filepath.Join(testSource, "beta", "SVG", "ic_fluent_beta_20_regular.svg"),
		FilledFrom: "regular",
	}, filled[0])

	manifest, err := ReadManifest(fsys, "/out")
	require.NoError(t, err)
	assert.Equal(t, 1, manifest.Summary.Filled)
	assert.Equal(t, 3, manifest.Summary.Curated)
	assert.Len(t, manifest.Files, 4)
}

func TestRun_StyleDirectoriesEqualAfterFill(t *testing.T) {
	fsys := newSourceTree(t,
		"ic_fluent_add_24_regular.svg",
		"ic_fluent_add_24_filled.svg",
		"ic_fluent_home_24_regular.svg",
		"ic_fluent_star_20_filled.svg",
		"ic_fluent_star_16_filled.svg",
		"ic_fluent_beta_16_regular.svg",
	)
	cfg := testConfig("/out")
	cfg.DefaultStyles = []string{"regular", "filled", "light"}
	// Give "light" one asset so the analysis accepts it as a default style.
	require.NoError(t, fsys.WriteFile(filepath.Join(testSource, "add", "SVG", "ic_fluent_add_24_light.svg"), []byte("<svg>light</svg>")))

	_, err := newTestService(fsys, cfg).Run(context.Background())
	require.NoError(t, err)

	var sets [][]string
	for _, style := range cfg.Styles() {
		names, err := fsys.ListFilenames(filepath.Join("/out", style))
		require.NoError(t, err)
		sets = append(sets, names)
	}
	for i := 1; i < len(sets); i++ {
		assert.Empty(t, cmp.Diff(sets[0], sets[i]))
	}
	assert.Equal(t, []string{"add.svg", "beta.svg", "home.svg", "star.svg"}, sets[0])
}

func TestRun_StrictModeLeavesGaps(t *testing.T) {
	fsys := newSourceTree(t,
		"ic_fluent_add_24_regular.svg",
		"ic_fluent_add_24_filled.svg",
		"ic_fluent_home_24_regular.svg",
	)
	cfg := testConfig("/out")
	cfg.ReconcileMode = ReconcileStrict

	report, err := newTestService(fsys, cfg).Run(context.Background())
	require.NoError(t, err)

	exists, err := fsys.Exists("/out/filled/home.svg")
	require.NoError(t, err)
	assert.False(t, exists)

	gaps := report.CrossFill.Gaps()
	require.Len(t, gaps, 1)
	assert.Equal(t, "home.svg", gaps[0].Key)
	assert.Equal(t, "regular", gaps[0].From)
	assert.Equal(t, "filled", gaps[0].To)
}

func TestRun_OriginalNames(t *testing.T) {
	fsys := newSourceTree(t,
		"ic_fluent_add_24_regular.svg",
		"ic_fluent_add_24_filled.svg",
	)
	cfg := testConfig("/out")
	cfg.UseOriginalName = true
	cfg.Manifest = false

	_, err := newTestService(fsys, cfg).Run(context.Background())
	require.NoError(t, err)

	// Names differ per style, so cross-fill makes each directory hold both.
	tree := readTree(t, fsys, "/out")
	assert.Len(t, tree, 4)
	assert.Equal(t, "<svg>ic_fluent_add_24_filled.svg</svg>", tree["regular/ic_fluent_add_24_filled.svg"])
	assert.Equal(t, "<svg>ic_fluent_add_24_regular.svg</svg>", tree["filled/ic_fluent_add_24_regular.svg"])
}

func TestRun_ValidationFailureWritesNothing(t *testing.T) {
	fsys := newSourceTree(t,
		"ic_fluent_add_24_regular.svg",
		"ic_fluent_add_24_filled.svg",
		"weird-icon.svg",
	)

	report, err := newTestService(fsys, testConfig("/out")).Run(context.Background())
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrMalformedName)
	require.NotNil(t, report)
	assert.Nil(t, report.Copy)

	exists, err := fsys.Exists("/out")
	require.NoError(t, err)
	assert.False(t, exists)
}

func TestRun_ExistingOutputFails(t *testing.T) {
	fsys := newSourceTree(t,
		"ic_fluent_add_24_regular.svg",
		"ic_fluent_add_24_filled.svg",
	)
	cfg := testConfig("/out")
	svc := newTestService(fsys, cfg)

	_, err := svc.Run(context.Background())
	require.NoError(t, err)

	report, err := svc.Run(context.Background())
	assert.ErrorIs(t, err, filesystem.ErrDestinationExists)
	assert.Equal(t, []string{"/out", "/out/filled", "/out/regular"}, report.Copy.ReusedDirs)

	cfg.Overwrite = true
	_, err = newTestService(fsys, cfg).Run(context.Background())
	assert.NoError(t, err)
}

func TestRun_OutputIsAFile(t *testing.T) {
	fsys := newSourceTree(t,
		"ic_fluent_add_24_regular.svg",
		"ic_fluent_add_24_filled.svg",
	)
	require.NoError(t, fsys.WriteFile("/out", []byte("not a dir")))

	_, err := newTestService(fsys, testConfig("/out")).Run(context.Background())
	assert.ErrorIs(t, err, filesystem.ErrNotDirectory)
}

func TestRun_Idempotent(t *testing.T) {
	files := []string{
		"ic_fluent_add_20_regular.svg",
		"ic_fluent_add_24_regular.svg",
		"ic_fluent_add_24_filled.svg",
		"ic_fluent_beta_16_regular.svg",
		"ic_fluent_beta_20_regular.svg",
		"ic_fluent_star_12_filled.svg",
		"ic_fluent_star_32_filled.svg",
	}
	fsys := newSourceTree(t, files...)

	_, err := NewService(fsys, testConfig("/out1"), zap.NewNop()).Run(context.Background())
	require.NoError(t, err)
	_, err = NewService(fsys, testConfig("/out2"), zap.NewNop()).Run(context.Background())
	require.NoError(t, err)

	first := readTree(t, fsys, "/out1")
	second := readTree(t, fsys, "/out2")
	assert.NotEmpty(t, first)
	assert.Empty(t, cmp.Diff(first, second))
}

func TestInspect_WritesNothing(t *testing.T) {
	fsys := newSourceTree(t,
		"ic_fluent_add_24_regular.svg",
		"ic_fluent_add_24_filled.svg",
	)

	report, err := newTestService(fsys, testConfig("/out")).Inspect(context.Background())
	require.NoError(t, err)
	assert.True(t, report.DryRun)
	assert.Equal(t, map[string]int{"filled": 1, "regular": 1}, report.CountByStyle)

	exists, err := fsys.Exists("/out")
	require.NoError(t, err)
	assert.False(t, exists)
}

func TestRun_InvalidConfig(t *testing.T) {
	cfg := testConfig("/out")
	cfg.ReconcileMode = "sometimes"

	report, err := newTestService(filesystem.NewMemory(), cfg).Run(context.Background())
	assert.Nil(t, report)
	assert.ErrorContains(t, err, "unknown reconcile mode")
}

func TestRun_CancelledContext(t *testing.T) {
	fsys := newSourceTree(t,
		"ic_fluent_add_24_regular.svg",
		"ic_fluent_add_24_filled.svg",
	)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := newTestService(fsys, testConfig("/out")).Run(ctx)
	assert.True(t, errors.Is(err, context.Canceled))
}

func TestRun_Staging(t *testing.T) {
	dir := t.TempDir()
	osfs := filesystem.New(afero.NewOsFs())
	source := filepath.Join(dir, "assets")
	output := filepath.Join(dir, "fluentui")

	for _, f := range []string{"ic_fluent_add_24_regular.svg", "ic_fluent_add_24_filled.svg", "ic_fluent_beta_20_regular.svg"} {
		key, _ := ParseFileName(f)
		require.NoError(t, os.MkdirAll(filepath.Join(source, key.Icon, "SVG"), 0o755))
		require.NoError(t, os.WriteFile(filepath.Join(source, key.Icon, "SVG", f), []byte(f), 0o644))
	}
	// A stale tree the staged run must replace.
	require.NoError(t, os.MkdirAll(filepath.Join(output, "regular"), 0o755))
	require.NoError(t, os.WriteFile(filepath.Join(output, "regular", "stale.svg"), []byte("stale"), 0o644))

	cfg := DefaultConfig()
	cfg.Source = source
	cfg.Output = output
	cfg.Staging = true

	report, err := newTestService(osfs, cfg).Run(context.Background())
	require.NoError(t, err)
	assert.True(t, report.Staged)

	tree := readTree(t, osfs, output)
	assert.NotContains(t, tree, "regular/stale.svg")
	assert.Equal(t, "ic_fluent_beta_20_regular.svg", tree["filled/beta.svg"])

	leftovers, err := os.ReadDir(dir)
	require.NoError(t, err)
	var names []string
	for _, e := range leftovers {
		names = append(names, e.Name())
	}
	assert.ElementsMatch(t, []string{"assets", "fluentui"}, names)
}

func TestRun_StagingRejectsFileAtOutput(t *testing.T) {
	dir := t.TempDir()
	osfs := filesystem.New(afero.NewOsFs())
	source := filepath.Join(dir, "assets")
	output := filepath.Join(dir, "fluentui")

	require.NoError(t, os.MkdirAll(filepath.Join(source, "add", "SVG"), 0o755))
	require.NoError(t, os.WriteFile(filepath.Join(source, "add", "SVG", "ic_fluent_add_24_regular.svg"), []byte("a"), 0o644))
	require.NoError(t, os.WriteFile(filepath.Join(source, "add", "SVG", "ic_fluent_add_24_filled.svg"), []byte("b"), 0o644))
	require.NoError(t, os.WriteFile(output, []byte("user notes"), 0o644))

	for _, staging := range []bool{false, true} {
		cfg := DefaultConfig()
		cfg.Source = source
		cfg.Output = output
		cfg.Staging = staging

		_, err := newTestService(osfs, cfg).Run(context.Background())
		assert.ErrorIs(t, err, filesystem.ErrNotDirectory, "staging=%v", staging)

		data, err := os.ReadFile(output)
		require.NoError(t, err)
		assert.Equal(t, "user notes", string(data), "staging=%v", staging)
	}

	leftovers, err := os.ReadDir(dir)
	require.NoError(t, err)
	var names []string
	for _, e := range leftovers {
		names = append(names, e.Name())
	}
	assert.ElementsMatch(t, []string{"assets", "fluentui"}, names)
}

func TestRun_StagingFailureKeepsOutput(t *testing.T) {
	dir := t.TempDir()
	osfs := filesystem.New(afero.NewOsFs())
	source := filepath.Join(dir, "assets")
	output := filepath.Join(dir, "fluentui")

	require.NoError(t, os.MkdirAll(filepath.Join(source, "add", "SVG"), 0o755))
	require.NoError(t, os.WriteFile(filepath.Join(source, "add", "SVG", "ic_fluent_add_24_regular.svg"), []byte("a"), 0o644))
	require.NoError(t, os.WriteFile(filepath.Join(source, "add", "SVG", "ic_fluent_add_24_filled.svg"), []byte("b"), 0o644))
	require.NoError(t, os.MkdirAll(filepath.Join(output, "regular"), 0o755))
	require.NoError(t, os.WriteFile(filepath.Join(output, "regular", "kept.svg"), []byte("kept"), 0o644))

	cfg := DefaultConfig()
	cfg.Source = source
	cfg.Output = output
	cfg.Staging = true

	svc := newTestService(osfs, cfg)
	// Occupy the staging path with a file so the copy engine cannot create it.
	require.NoError(t, os.WriteFile(output+".staging-test-run", []byte("x"), 0o644))

	_, err := svc.Run(context.Background())
	assert.ErrorIs(t, err, filesystem.ErrNotDirectory)

	tree := readTree(t, osfs, output)
	assert.Equal(t, map[string]string{"regular/kept.svg": "kept"}, tree)
	_, statErr := os.Stat(output + ".staging-test-run")
	assert.True(t, os.IsNotExist(statErr))
}
