// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package validators

import (
	"errors"
	"sort"

	validation "github.com/go-ozzo/ozzo-validation/v4"
)

var (
	// ErrValidation is matched by every validation failure reported by this
	// package (errors.Is(err, ErrValidation)).
	ErrValidation = errors.New("validation error")

	ErrUnsupportedType = errors.New("unsupported type for validation")
)

// Error is a validation failure with optional field-level details.
// Fields is keyed by the JSON name of the offending field (or by day name
// for collect-all opening-hours validation).
type Error struct {
	msg    string
	Fields validation.Errors
}

// NewError returns a validation error without field details.
func NewError(msg string) *Error {
	return &Error{msg: msg}
}

// NewFieldError returns a validation error for a single field.
func NewFieldError(field, msg string) *Error {
	return &Error{
		msg:    msg,
		Fields: validation.Errors{field: errors.New(msg)},
	}
}

// newFieldsError wraps an ozzo-validation error map.
func newFieldsError(errs validation.Errors) *Error {
	return &Error{msg: errs.Error(), Fields: errs}
}

func (e *Error) Error() string {
	return e.msg
}

// Unwrap lets errors.Is(err, ErrValidation) succeed.
func (e *Error) Unwrap() error {
	return ErrValidation
}

// FieldMessages flattens Fields into field -> message. Nil when the error
// carries no field details.
func (e *Error) FieldMessages() map[string]string {
	if len(e.Fields) == 0 {
		return nil
	}

	out := make(map[string]string, len(e.Fields))
	for field, err := range e.Fields {
		if err == nil {
			continue
		}
		out[field] = err.Error()
	}
	return out
}

// FieldNames returns the names of the offending fields in sorted order.
func (e *Error) FieldNames() []string {
	names := make([]string, 0, len(e.Fields))
	for field, err := range e.Fields {
		if err != nil {
			names = append(names, field)
		}
	}
	sort.Strings(names)
	return names
}

// fromOzzo converts the result of ozzo-validation into this package's error
// type. Internal errors (e.g. a failed uniqueness lookup) are returned as-is
// so callers can tell them from user input problems.
func fromOzzo(err error) error {
	if err == nil {
		return nil
	}

	var internal validation.InternalError
	if errors.As(err, &internal) {
		return internal.InternalError()
	}

	var errs validation.Errors
	if errors.As(err, &errs) {
		filtered := errs.Filter()
		if filtered == nil {
			return nil
		}
		return newFieldsError(filtered.(validation.Errors))
	}

	return NewError(err.Error())
}

// ErrUnknownField is returned when a validator is scoped to a field it does
// not know.
var ErrUnknownField = errors.New("unknown field for validation")
