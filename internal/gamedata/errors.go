package gamedata

import (
	"errors"
	"fmt"
)

var (
	ErrEmptyDocument = errors.New("document is empty")
	ErrNotMapping    = errors.New("document root is not a mapping")
	ErrDuplicateKey  = errors.New("duplicate key")
	ErrNotFound      = errors.New("entry not found")
	ErrHydration     = errors.New("cannot build object from entry")
	ErrMissingField  = errors.New("missing required field")
	ErrFieldKind     = errors.New("field has the wrong kind")
)

// LoadError reports that the content document could not be read or parsed.
// No lookup can proceed without it.
type LoadError struct {
	Source string
	Err    error
}

func (e *LoadError) Error() string {
	return fmt.Sprintf("failed to load game data from %s: %v", e.Source, e.Err)
}

func (e *LoadError) Unwrap() error { return e.Err }

// NotFoundError reports a name that is not part of its category.
type NotFoundError struct {
	Category Category
	Name     string
	Reason   string // e.g. "please input a valid weapon"
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("%s: %q", e.Reason, e.Name)
}

// Is lets callers match any NotFoundError with errors.Is(err, ErrNotFound).
func (e *NotFoundError) Is(target error) bool { return target == ErrNotFound }

// HydrationError reports an entry that does not fit its target shape.
type HydrationError struct {
	Target string // "player" or "enemy"
	Entry  string
	Field  string
	Err    error
}

func (e *HydrationError) Error() string {
	if e.Field == "" {
		return fmt.Sprintf("cannot build %s from %q: %v", e.Target, e.Entry, e.Err)
	}
	return fmt.Sprintf("cannot build %s from %q: field %q: %v", e.Target, e.Entry, e.Field, e.Err)
}

func (e *HydrationError) Unwrap() error { return e.Err }

func (e *HydrationError) Is(target error) bool { return target == ErrHydration }
