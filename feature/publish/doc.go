// Package publish mirrors a curated output tree into an object storage bucket.
//
// Every style directory maps to a "<prefix>/<style>/" folder in the bucket. Missing
// folders can be reported and created, files are uploaded with their content type,
// and objects no longer present locally can be pruned.
package publish
