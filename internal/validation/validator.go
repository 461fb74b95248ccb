// Reelwrap - Netflix Viewing History Recap Generator
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/reelwrap

// Package validation provides struct validation using go-playground/validator
// v10. A thread-safe singleton validator instance checks the recap parameter
// struct and the loaded configuration before the pipeline runs.
//
//	type Params struct {
//	    Year int `validate:"min=1997,max=2100"`
//	}
//
//	if err := validation.ValidateStruct(&p); err != nil { ... }
package validation

import (
	"errors"
	"fmt"
	"strings"
	"sync"

	"github.com/go-playground/validator/v10"
)

// singleton validator instance
var (
	validate     *validator.Validate
	validateOnce sync.Once
)

// FieldError is a single field validation failure.
type FieldError struct {
	Field string
	Tag   string
	Param string
}

// Error returns a human-readable message for the failed field.
func (e FieldError) Error() string {
	if e.Param != "" {
		return fmt.Sprintf("%s failed '%s=%s' validation", e.Field, e.Tag, e.Param)
	}
	return fmt.Sprintf("%s failed '%s' validation", e.Field, e.Tag)
}

// StructValidationError collects all field failures for one struct.
type StructValidationError struct {
	Fields []FieldError
}

// Error implements the error interface with a combined message.
func (e *StructValidationError) Error() string {
	if len(e.Fields) == 0 {
		return "validation failed"
	}
	msgs := make([]string, 0, len(e.Fields))
	for _, f := range e.Fields {
		msgs = append(msgs, f.Error())
	}
	return strings.Join(msgs, "; ")
}

// getValidator returns the singleton validator, creating it on first use.
// The instance caches struct metadata and is safe for concurrent use.
func getValidator() *validator.Validate {
	validateOnce.Do(func() {
		validate = validator.New(validator.WithRequiredStructEnabled())
	})
	return validate
}

// ValidateStruct validates a struct using its `validate` tags.
// Returns a *StructValidationError describing every failed field, or nil.
func ValidateStruct(s interface{}) error {
	err := getValidator().Struct(s)
	if err == nil {
		return nil
	}

	var invalid *validator.InvalidValidationError
	if errors.As(err, &invalid) {
		return fmt.Errorf("invalid argument to validation: %w", err)
	}

	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return err
	}

	out := &StructValidationError{Fields: make([]FieldError, 0, len(verrs))}
	for _, fe := range verrs {
		out.Fields = append(out.Fields, FieldError{
			Field: fe.Field(),
			Tag:   fe.Tag(),
			Param: fe.Param(),
		})
	}
	return out
}
