package model

import (
	"errors"
	"fmt"
)

// ErrSchema matches every *SchemaValidationError via errors.Is.
var ErrSchema = errors.New("schema validation failed")

// ErrIndexOutOfRange is returned by Collection.At for positions beyond the
// collection length.
var ErrIndexOutOfRange = errors.New("index out of range")

// SchemaValidationError reports the first field of a payload that did not
// match the resource schema. Field is a dotted path relative to Resource,
// e.g. "status.color" or "[2].id"; it is empty for payload-shape errors.
type SchemaValidationError struct {
	Resource string
	Field    string
	Reason   string
}

func (e *SchemaValidationError) Error() string {
	if e.Field == "" {
		return fmt.Sprintf("%s: %s", e.Resource, e.Reason)
	}
	return fmt.Sprintf("%s: %s: %s", e.Resource, e.Field, e.Reason)
}

func (e *SchemaValidationError) Is(target error) bool {
	return target == ErrSchema
}

func schemaError(resource, field, format string, args ...any) *SchemaValidationError {
	return &SchemaValidationError{
		Resource: resource,
		Field:    field,
		Reason:   fmt.Sprintf(format, args...),
	}
}

// rebase moves a nested error under path inside resource.
func rebase(resource, path string, err error) error {
	var se *SchemaValidationError
	if !errors.As(err, &se) {
		return err
	}
	return &SchemaValidationError{
		Resource: resource,
		Field:    joinPath(path, se.Field),
		Reason:   se.Reason,
	}
}

func joinPath(parent, child string) string {
	switch {
	case child == "":
		return parent
	case parent == "":
		return child
	case child[0] == '[':
		return parent + child
	default:
		return parent + "." + child
	}
}
