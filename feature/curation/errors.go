package curation

import (
	"errors"
	"fmt"
	"strings"

	"go.uber.org/multierr"
)

var (
	// ErrMalformedName marks a source filename outside the asset grammar.
	ErrMalformedName = errors.New("filename does not match asset grammar")
	// ErrDuplicateKey marks two source files resolving to the same key.
	ErrDuplicateKey = errors.New("duplicate icon key")
	// ErrResourceCount marks a mismatch between top-level entries and indexed icons.
	ErrResourceCount = errors.New("not all resources were found")
	// ErrMissingDefaultSize marks an inventory without any asset at the default size.
	ErrMissingDefaultSize = errors.New("no icon found with default size")
	// ErrMissingStyle marks a default style absent from the inventory.
	ErrMissingStyle = errors.New("default style is unknown")
)

// InventoryError carries every inventory problem found by a stage. All of them are
// detected before any output is written.
type InventoryError struct {
	Stage string
	err   error
}

func newInventoryError(stage string, err error) error {
	if err == nil {
		return nil
	}
	return &InventoryError{Stage: stage, err: err}
}

// Problems returns the individual problems.
func (e *InventoryError) Problems() []error {
	return multierr.Errors(e.err)
}

func (e *InventoryError) Error() string {
	problems := e.Problems()
	msgs := make([]string, 0, len(problems))
	for _, p := range problems {
		msgs = append(msgs, p.Error())
	}
	return fmt.Sprintf("%s failed with %d problem(s): %s", e.Stage, len(problems), strings.Join(msgs, "; "))
}

// Unwrap exposes the individual problems to errors.Is and errors.As.
func (e *InventoryError) Unwrap() []error {
	return e.Problems()
}
