package filesystem

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/spf13/afero"
)

var (
	// ErrNotDirectory is returned when a path exists but is not a directory.
	ErrNotDirectory = errors.New("path exists but is not a directory")
	// ErrDestinationExists is returned by Copy when the target exists and overwrite is off.
	ErrDestinationExists = errors.New("destination already exists")
)

// Entry is a single item found by Walk.
type Entry struct {
	// Path is the full path of the entry, rooted at the walk root.
	Path string
	// IsFile is true for regular files.
	IsFile bool
}

// FS is the filesystem-access layer consumed by the curation pipeline.
type FS struct {
	fs afero.Fs
}

// New wraps an afero filesystem.
func New(fs afero.Fs) *FS {
	return &FS{fs: fs}
}

// NewOS returns an FS backed by the operating system.
func NewOS() *FS {
	return New(afero.NewOsFs())
}

// NewMemory returns an FS backed by memory, for tests and dry runs.
func NewMemory() *FS {
	return New(afero.NewMemMapFs())
}

// Afero exposes the underlying afero filesystem.
func (f *FS) Afero() afero.Fs {
	return f.fs
}

// Walk lists every entry under root down to maxDepth levels. The root itself is depth 0
// and is not returned. Entries come back in lexical order.
func (f *FS) Walk(root string, maxDepth int) ([]Entry, error) {
	root = filepath.Clean(root)
	var entries []Entry

	err := afero.Walk(f.fs, root, func(path string, info os.FileInfo, err error) error {
		if err != nil {
			return err
		}
		if path == root {
			return nil
		}

		depth := pathDepth(root, path)
		if depth > maxDepth {
			if info.IsDir() {
				return filepath.SkipDir
			}
			return nil
		}

		isFile := info.Mode().IsRegular()
		if info.Mode()&os.ModeSymlink != 0 {
			// Links to files count as files. Linked directories are not descended.
			if target, err := f.fs.Stat(path); err == nil {
				isFile = target.Mode().IsRegular()
			}
		}
		entries = append(entries, Entry{Path: path, IsFile: isFile})

		if info.IsDir() && depth == maxDepth {
			return filepath.SkipDir
		}
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("failed to walk %s: %w", root, err)
	}

	return entries, nil
}

func pathDepth(root, path string) int {
	rel, err := filepath.Rel(root, path)
	if err != nil {
		return 0
	}
	return strings.Count(filepath.ToSlash(rel), "/") + 1
}

// Copy copies the bytes of src to dst. When overwrite is false and dst already exists,
// ErrDestinationExists is returned and dst is left untouched.
func (f *FS) Copy(src, dst string, overwrite bool) error {
	if !overwrite {
		if _, err := f.fs.Stat(dst); err == nil {
			return fmt.Errorf("copy %s to %s: %w", src, dst, ErrDestinationExists)
		} else if !os.IsNotExist(err) {
			return fmt.Errorf("failed to stat %s: %w", dst, err)
		}
	}

	in, err := f.fs.Open(src)
	if err != nil {
		return fmt.Errorf("failed to open %s: %w", src, err)
	}
	defer in.Close()

	flags := os.O_WRONLY | os.O_CREATE | os.O_TRUNC
	if !overwrite {
		flags |= os.O_EXCL
	}
	out, err := f.fs.OpenFile(dst, flags, 0o644)
	if err != nil {
		return fmt.Errorf("failed to create %s: %w", dst, err)
	}

	if _, err := io.Copy(out, in); err != nil {
		_ = out.Close()
		return fmt.Errorf("failed to copy %s to %s: %w", src, dst, err)
	}
	if err := out.Close(); err != nil {
		return fmt.Errorf("failed to close %s: %w", dst, err)
	}
	return nil
}

// EnsureDir creates path and any missing parents. created reports whether the
// directory did not exist before the call.
func (f *FS) EnsureDir(path string) (created bool, err error) {
	info, err := f.fs.Stat(path)
	switch {
	case err == nil && info.IsDir():
		return false, nil
	case err == nil:
		return false, fmt.Errorf("%s: %w", path, ErrNotDirectory)
	case !os.IsNotExist(err):
		return false, fmt.Errorf("failed to stat %s: %w", path, err)
	}

	if err := f.fs.MkdirAll(path, 0o755); err != nil {
		return false, fmt.Errorf("failed to create directory %s: %w", path, err)
	}
	return true, nil
}

// IsDir reports whether path exists and is a directory.
func (f *FS) IsDir(path string) (bool, error) {
	return afero.DirExists(f.fs, path)
}

// Exists reports whether path exists.
func (f *FS) Exists(path string) (bool, error) {
	return afero.Exists(f.fs, path)
}

// ListFilenames returns the sorted names of the regular files directly inside dir.
func (f *FS) ListFilenames(dir string) ([]string, error) {
	infos, err := afero.ReadDir(f.fs, dir)
	if err != nil {
		return nil, fmt.Errorf("failed to list %s: %w", dir, err)
	}

	names := make([]string, 0, len(infos))
	for _, info := range infos {
		if info.Mode().IsRegular() {
			names = append(names, info.Name())
		}
	}
	sort.Strings(names)
	return names, nil
}

// ListDirs returns the sorted names of the directories directly inside dir.
func (f *FS) ListDirs(dir string) ([]string, error) {
	infos, err := afero.ReadDir(f.fs, dir)
	if err != nil {
		return nil, fmt.Errorf("failed to list %s: %w", dir, err)
	}

	var names []string
	for _, info := range infos {
		if info.IsDir() {
			names = append(names, info.Name())
		}
	}
	sort.Strings(names)
	return names, nil
}

// CountEntries counts every entry (files and directories) directly inside dir.
func (f *FS) CountEntries(dir string) (int, error) {
	infos, err := afero.ReadDir(f.fs, dir)
	if err != nil {
		return 0, fmt.Errorf("failed to list %s: %w", dir, err)
	}
	return len(infos), nil
}

// ReadFile returns the whole content of path.
func (f *FS) ReadFile(path string) ([]byte, error) {
	return afero.ReadFile(f.fs, path)
}

// WriteFile writes data to path, replacing any existing file.
func (f *FS) WriteFile(path string, data []byte) error {
	if err := afero.WriteFile(f.fs, path, data, 0o644); err != nil {
		return fmt.Errorf("failed to write %s: %w", path, err)
	}
	return nil
}

// Open opens path for reading.
func (f *FS) Open(path string) (afero.File, error) {
	return f.fs.Open(path)
}

// Stat returns file info for path.
func (f *FS) Stat(path string) (os.FileInfo, error) {
	return f.fs.Stat(path)
}

// Rename moves oldpath to newpath.
func (f *FS) Rename(oldpath, newpath string) error {
	if err := f.fs.Rename(oldpath, newpath); err != nil {
		return fmt.Errorf("failed to rename %s to %s: %w", oldpath, newpath, err)
	}
	return nil
}

// RemoveAll deletes path and everything below it.
func (f *FS) RemoveAll(path string) error {
	if err := f.fs.RemoveAll(path); err != nil {
		return fmt.Errorf("failed to remove %s: %w", path, err)
	}
	return nil
}
