// Package sentinel holds the storage facts backing services return, wrapped
// or bare. Handlers translate them into coded errors at the HTTP edge.
package sentinel

import "errors"

var (
	// ErrNotFound: the user, cart, statement or product does not exist.
	ErrNotFound = errors.New("not found")
	// ErrConflict: a unique key is taken, or a watched key kept changing.
	ErrConflict = errors.New("conflict")
	// ErrUnavailable: the store cannot be reached right now.
	ErrUnavailable = errors.New("unavailable")
)
