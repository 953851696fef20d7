package curation

import (
	"path/filepath"
	"strings"
	"testing"

	"icon-curator/core/filesystem"

	"github.com/spf13/afero"
	"github.com/stretchr/testify/require"
)

const testSource = "/assets"

// newSourceTree lays files out the way the upstream icon repository does:
// <root>/<icon folder>/SVG/<file>. One top-level folder per icon name.
func newSourceTree(t *testing.T, files ...string) *filesystem.FS {
	t.Helper()
	mem := afero.NewMemMapFs()
	require.NoError(t, mem.MkdirAll(testSource, 0o755))
	for _, f := range files {
		folder := strings.TrimSuffix(f, AssetExtension)
		if key, ok := ParseFileName(f); ok {
			folder = key.Icon
		}
		path := filepath.Join(testSource, folder, "SVG", f)
		require.NoError(t, afero.WriteFile(mem, path, []byte("<svg>"+f+"</svg>"), 0o644))
	}
	return filesystem.New(mem)
}

func testConfig(output string) Config {
	cfg := DefaultConfig()
	cfg.Source = testSource
	cfg.Output = output
	return cfg
}

// readTree returns every file under root keyed by its path relative to root.
func readTree(t *testing.T, fsys *filesystem.FS, root string) map[string]string {
	t.Helper()
	entries, err := fsys.Walk(root, 10)
	require.NoError(t, err)

	tree := make(map[string]string)
	for _, e := range entries {
		if !e.IsFile {
			continue
		}
		data, err := fsys.ReadFile(e.Path)
		require.NoError(t, err)
		rel, err := filepath.Rel(root, e.Path)
		require.NoError(t, err)
		tree[filepath.ToSlash(rel)] = string(data)
	}
	return tree
}

func mustIndex(t *testing.T, files ...string) AssetIndex {
	t.Helper()
	index := make(AssetIndex)
	for _, f := range files {
		key, ok := ParseFileName(f)
		require.True(t, ok, f)
		index[key] = filepath.Join(testSource, key.Icon, "SVG", f)
	}
	return index
}
