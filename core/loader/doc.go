// Package loader registers HTTP features on the Fiber app.
//
// A feature implements Feature (Name, IsEnabled, Load). The serve command registers
// each feature with a Manager and calls LoadAll once the global middleware is in place.
// Disabled features are skipped.
package loader
