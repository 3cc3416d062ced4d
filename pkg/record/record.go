// Package record holds the mutation operations shared by every record
// collection: id sequences, append, lookup and status replacement. All
// operations return a new slice and leave their input untouched.
package record

import (
	"fmt"

	"agro/entities"
)

// Status is a closed status enumeration with a transition table.
type Status[S any] interface {
	~string
	Valid() bool
	CanTransitionTo(S) bool
}

type Identified interface {
	RecordID() string
}

// Record is a value whose status can be replaced without touching any
// other field.
type Record[T any, S Status[S]] interface {
	Identified
	CurrentStatus() S
	WithStatus(S) T
}

// Append returns a copy of c with r added at the end.
func Append[T any](c []T, r T) []T {
	out := make([]T, len(c), len(c)+1)
	copy(out, c)
	return append(out, r)
}

// Find returns the record with the given id and its position.
func Find[T Identified](c []T, id string) (T, int, error) {
	for i, r := range c {
		if r.RecordID() == id {
			return r, i, nil
		}
	}
	var zero T
	return zero, -1, fmt.Errorf("%s: %w", id, entities.ErrRecordNotFound)
}

// SetStatus returns a copy of c where the record matching id carries status
// s. When no record matches, c is returned as is together with
// ErrRecordNotFound.
func SetStatus[T Record[T, S], S Status[S]](c []T, id string, s S) ([]T, error) {
	if !s.Valid() {
		return c, fmt.Errorf("%q: %w", string(s), entities.ErrUnknownStatus)
	}
	_, i, err := Find(c, id)
	if err != nil {
		return c, err
	}
	out := make([]T, len(c))
	copy(out, c)
	out[i] = c[i].WithStatus(s)
	return out, nil
}

// Transition is SetStatus restricted to the moves allowed by the status
// transition table.
func Transition[T Record[T, S], S Status[S]](c []T, id string, to S) ([]T, error) {
	r, _, err := Find(c, id)
	if err != nil {
		return c, err
	}
	from := r.CurrentStatus()
	if !from.CanTransitionTo(to) {
		return c, fmt.Errorf("%s %s -> %s: %w", id, string(from), string(to), entities.ErrInvalidTransition)
	}
	return SetStatus(c, id, to)
}
