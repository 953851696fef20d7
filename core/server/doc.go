// Package server holds the HTTP server configuration.
//
// The serve command starts a Fiber application exposing the curated catalog. This
// package defines the listen port and the optional API key protecting it.
//
// # Usage
//
// This package is primarily used by the core/config package to embed server settings
// and by the serve command to build the listen address.
package server
