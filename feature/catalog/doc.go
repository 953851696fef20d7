// Package catalog exposes a curated output tree.
//
// It records the files of a finished run in a SQL table through GORM and serves the
// tree over HTTP. Style listings are built from the output directory and cached for a
// short time, so repeated requests do not walk the tree again.
package catalog
