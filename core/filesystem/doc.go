// Package filesystem provides the synchronous, whole-file filesystem operations used by
// the curation pipeline.
//
// It wraps an afero.Fs so the same code runs against the real OS filesystem in
// production and an in-memory filesystem in tests.
//
// # Operations
//
//   - Walk: Lists entries under a root up to a maximum depth.
//   - Copy: Copies one file to another path, optionally replacing the destination.
//   - EnsureDir: Creates a directory tree and reports whether it was newly created.
//   - ListFilenames: Lists the regular files directly inside a directory.
//   - CountEntries: Counts every entry directly inside a directory.
//
// # Usage
//
//	fsys := filesystem.NewOS()
//	entries, err := fsys.Walk("assets", 3)
//	created, err := fsys.EnsureDir("out/regular")
package filesystem
