package models

import "fmt"

// ValidationError signals an empty required field, an invalid enumeration
// value or an out-of-range number. It is surfaced to the operator as an
// inline field error; no partial write occurs.
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	if e.Field == "" {
		return e.Message
	}
	return e.Field + ": " + e.Message
}

// NotFoundError signals an operation against an identifier that does not
// exist. Callers should re-fetch the authoritative list.
type NotFoundError struct {
	Resource string
	ID       int
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("%s %d not found", e.Resource, e.ID)
}
