package Services

import "fmt"

// ValidationError reports rejected input, e.g. an empty or duplicate
// template name.
type ValidationError struct {
	Message string
}

func (e *ValidationError) Error() string { return e.Message }

// NotFoundError reports an unknown template or daily task id.
type NotFoundError struct {
	Entity string
	ID     uint
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("%s %d not found", e.Entity, e.ID)
}

// ImmutableStateError reports an attempt to modify a task outside the
// current logical day. Past days are append-only history and future
// days are not active yet.
type ImmutableStateError struct {
	Message string
}

func (e *ImmutableStateError) Error() string { return e.Message }
