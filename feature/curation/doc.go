// Package curation reduces a redundant icon asset tree to one canonical file per icon
// and style, then writes it out as one directory per style.
//
// # Pipeline
//
// Each stage has a typed input and output, and stages run strictly in order:
//
//   - BuildIndex: walks the source tree and parses every "ic_fluent_<name>_<size>_<style>.svg"
//     filename into an IconKey. Malformed names are collected and fail the run.
//   - Analyze: derives icons, sizes and styles and checks them against the configured
//     default size and styles, and against the number of top-level source entries.
//   - Select: a pure function choosing the default size where an icon has it, else the
//     largest size per (icon, style) pair.
//   - Materialize: creates the style directories and copies the selection, renaming files
//     to "<icon-with-hyphens>.svg" unless original names are kept.
//   - CrossFill: copies files missing from one style directory out of another, so that
//     every style directory holds the same filenames. Filled files keep the donor
//     style's rendering. Strict mode reports the gaps instead of filling them.
//
// Inventory problems are reported before anything is written. I/O failures stop the
// run where they happen and no rollback is attempted. With staging enabled, the tree is
// built in a sibling directory and swapped into place only on success.
//
// # Usage
//
//	svc := curation.NewService(filesystem.NewOS(), cfg, logger)
//	report, err := svc.Run(ctx)
package curation
