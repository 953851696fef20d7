package filesystem

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/spf13/afero"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeFiles(t *testing.T, fs afero.Fs, files map[string]string) {
	t.Helper()
	for path, content := range files {
		require.NoError(t, afero.WriteFile(fs, path, []byte(content), 0o644))
	}
}

func TestWalk(t *testing.T) {
	mem := afero.NewMemMapFs()
	writeFiles(t, mem, map[string]string{
		"/src/a/SVG/one.svg":          "1",
		"/src/a/SVG/deep/too_far.svg": "x",
		"/src/b/two.svg":              "2",
		"/src/root.txt":               "r",
	})
	fsys := New(mem)

	t.Run("Depth Three", func(t *testing.T) {
		entries, err := fsys.Walk("/src", 3)
		require.NoError(t, err)

		var files []string
		for _, e := range entries {
			if e.IsFile {
				files = append(files, e.Path)
			}
		}
		assert.ElementsMatch(t, []string{
			filepath.FromSlash("/src/a/SVG/one.svg"),
			filepath.FromSlash("/src/b/two.svg"),
			filepath.FromSlash("/src/root.txt"),
		}, files)
	})

	t.Run("Depth One", func(t *testing.T) {
		entries, err := fsys.Walk("/src", 1)
		require.NoError(t, err)
		assert.Len(t, entries, 3)
	})

	t.Run("Missing Root", func(t *testing.T) {
		_, err := fsys.Walk("/nope", 3)
		assert.Error(t, err)
	})
}

func TestWalk_FollowsFileLinks(t *testing.T) {
	dir := t.TempDir()
	target := filepath.Join(dir, "real.svg")
	require.NoError(t, os.WriteFile(target, []byte("<svg/>"), 0o644))
	require.NoError(t, os.MkdirAll(filepath.Join(dir, "src", "a"), 0o755))
	if err := os.Symlink(target, filepath.Join(dir, "src", "a", "linked.svg")); err != nil {
		t.Skipf("symlinks unavailable: %v", err)
	}
	require.NoError(t, os.Symlink(filepath.Join(dir, "missing.svg"), filepath.Join(dir, "src", "a", "dangling.svg")))

	entries, err := NewOS().Walk(filepath.Join(dir, "src"), 3)
	require.NoError(t, err)

	files := map[string]bool{}
	for _, e := range entries {
		files[filepath.Base(e.Path)] = e.IsFile
	}
	assert.True(t, files["linked.svg"])
	assert.False(t, files["dangling.svg"])
}

func TestCopy(t *testing.T) {
	mem := afero.NewMemMapFs()
	writeFiles(t, mem, map[string]string{
		"/src/a.svg": "<svg>a</svg>",
		"/dst/b.svg": "old",
	})
	fsys := New(mem)

	t.Run("New Destination", func(t *testing.T) {
		require.NoError(t, fsys.Copy("/src/a.svg", "/dst/a.svg", false))
		data, err := fsys.ReadFile("/dst/a.svg")
		require.NoError(t, err)
		assert.Equal(t, "<svg>a</svg>", string(data))
	})

	t.Run("Existing Destination", func(t *testing.T) {
		err := fsys.Copy("/src/a.svg", "/dst/b.svg", false)
		assert.ErrorIs(t, err, ErrDestinationExists)

		data, err := fsys.ReadFile("/dst/b.svg")
		require.NoError(t, err)
		assert.Equal(t, "old", string(data))
	})

	t.Run("Overwrite", func(t *testing.T) {
		require.NoError(t, fsys.Copy("/src/a.svg", "/dst/b.svg", true))
		data, err := fsys.ReadFile("/dst/b.svg")
		require.NoError(t, err)
		assert.Equal(t, "<svg>a</svg>", string(data))
	})

	t.Run("Missing Source", func(t *testing.T) {
		assert.Error(t, fsys.Copy("/src/missing.svg", "/dst/c.svg", false))
	})
}

func TestEnsureDir(t *testing.T) {
	mem := afero.NewMemMapFs()
	writeFiles(t, mem, map[string]string{"/out/file": "x"})
	fsys := New(mem)

	created, err := fsys.EnsureDir("/out/regular")
	require.NoError(t, err)
	assert.True(t, created)

	created, err = fsys.EnsureDir("/out/regular")
	require.NoError(t, err)
	assert.False(t, created)

	_, err = fsys.EnsureDir("/out/file")
	assert.ErrorIs(t, err, ErrNotDirectory)
}

func TestListFilenamesAndCount(t *testing.T) {
	mem := afero.NewMemMapFs()
	writeFiles(t, mem, map[string]string{
		"/dir/b.svg":     "b",
		"/dir/a.svg":     "a",
		"/dir/sub/c.svg": "c",
	})
	fsys := New(mem)

	names, err := fsys.ListFilenames("/dir")
	require.NoError(t, err)
	assert.Equal(t, []string{"a.svg", "b.svg"}, names)

	dirs, err := fsys.ListDirs("/dir")
	require.NoError(t, err)
	assert.Equal(t, []string{"sub"}, dirs)

	count, err := fsys.CountEntries("/dir")
	require.NoError(t, err)
	assert.Equal(t, 3, count)
}
