package engine

import "fmt"

// ValidationError reports invalid user input to a mutation. The state is
// left untouched when one is returned.
type ValidationError struct {
	Field  string
	Reason string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("invalid %s: %s", e.Field, e.Reason)
}

// NotFoundError reports an operation that referenced an item id that no
// longer exists (e.g. deleted from another view). It is never fatal: the
// state is unchanged and the caller may surface or ignore it.
type NotFoundError struct {
	Kind string
	ID   string
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("%s %q not found", e.Kind, e.ID)
}
