// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package validators

import (
	"errors"
	"strings"
)

var (
	ErrUnsupportedType = errors.New("unsupported type for validation")
	ErrValidation      = errors.New("validation failed")
)

// FieldError describes one rule a field broke.
type FieldError struct {
	// Field is the json path of the field, e.g. "questions[0].text".
	Field string `json:"field"`

	// Rule is the name of the failed rule ("required", "max", ...).
	Rule string `json:"rule"`

	// Message is a human readable description.
	Message string `json:"message"`
}

// ValidationError lists every field that failed validation.
// It matches [ErrValidation] with errors.Is.
type ValidationError struct {
	Fields []FieldError
}

func (e *ValidationError) Error() string {
	parts := make([]string, 0, len(e.Fields))
	for _, f := range e.Fields {
		parts = append(parts, f.Field+" "+f.Message)
	}
	return ErrValidation.Error() + ": " + strings.Join(parts, "; ")
}

func (e *ValidationError) Unwrap() error {
	return ErrValidation
}
