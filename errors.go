package binrec

import (
	"errors"
	"fmt"
)

// ErrValueKind reports a write given a Value whose kind does not match the
// type's domain. Writing a struct with an unset field surfaces as this.
var ErrValueKind = errors.New("value kind mismatch")

// FieldNotFoundError reports a Get or Set against a name no field carries.
type FieldNotFoundError struct {
	Name string
}

func (e *FieldNotFoundError) Error() string {
	return fmt.Sprintf("field %q not found", e.Name)
}

// FieldValidationError reports a Set whose value failed the target field's
// Verify check.
type FieldValidationError struct {
	Name  string
	Type  string
	Value Value
}

func (e *FieldValidationError) Error() string {
	return fmt.Sprintf("field %q has type %s, rejected value %s (%s)",
		e.Name, e.Type, e.Value, e.Value.Kind())
}

// DecodeError reports a failed Type.Read: the stream ran out before the
// type's full width, or the bytes are invalid for the configured encoding.
type DecodeError struct {
	Type string
	Err  error
}

func (e *DecodeError) Error() string {
	return fmt.Sprintf("decode %s: %v", e.Type, e.Err)
}

func (e *DecodeError) Unwrap() error { return e.Err }
