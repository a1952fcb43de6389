// Package apperr defines the error taxonomy shared by the record services.
package apperr

import (
	"errors"
	"fmt"
	"sort"
	"strings"
)

// ValidationError carries field-keyed messages for a rejected payload. The
// store is never touched before a ValidationError is returned.
type ValidationError struct {
	Fields map[string]string
}

// NewValidation builds a ValidationError from a field->message map.
func NewValidation(fields map[string]string) *ValidationError {
	return &ValidationError{Fields: fields}
}

func (e *ValidationError) Error() string {
	if len(e.Fields) == 0 {
		return "validation failed"
	}

	keys := make([]string, 0, len(e.Fields))
	for key := range e.Fields {
		keys = append(keys, key)
	}
	sort.Strings(keys)

	parts := make([]string, 0, len(keys))
	for _, key := range keys {
		parts = append(parts, fmt.Sprintf("%s: %s", key, e.Fields[key]))
	}

	return "validation failed: " + strings.Join(parts, "; ")
}

// NotFoundError indicates a referenced document is absent.
type NotFoundError struct {
	Entity string
	Key    string
}

// NewNotFound builds a NotFoundError for the given entity and key.
func NewNotFound(entity, key string) *NotFoundError {
	return &NotFoundError{Entity: entity, Key: key}
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("%s %q not found", e.Entity, e.Key)
}

// StoreError wraps a connectivity, permission or decode failure from the
// document store. It is surfaced to the caller uninterpreted, never retried.
type StoreError struct {
	Op         string
	Collection string
	Err        error
}

// NewStore wraps err as a StoreError for the given operation and collection.
func NewStore(op, collection string, err error) *StoreError {
	return &StoreError{Op: op, Collection: collection, Err: err}
}

func (e *StoreError) Error() string {
	return fmt.Sprintf("store %s on %s failed: %v", e.Op, e.Collection, e.Err)
}

func (e *StoreError) Unwrap() error { return e.Err }

// PartialReconciliationError reports that a course record was written but the
// follow-up grade sheet update failed, leaving the two out of sync. It must
// never be masked as success.
type PartialReconciliationError struct {
	RecordID   string
	StudentID  string
	CourseCode string
	Err        error
}

func (e *PartialReconciliationError) Error() string {
	return fmt.Sprintf("record %s written but grade sheet update for student %s course %s failed: %v",
		e.RecordID, e.StudentID, e.CourseCode, e.Err)
}

func (e *PartialReconciliationError) Unwrap() error { return e.Err }

// IsValidation reports whether err is a ValidationError.
func IsValidation(err error) bool {
	var target *ValidationError
	return errors.As(err, &target)
}

// IsNotFound reports whether err is a NotFoundError.
func IsNotFound(err error) bool {
	var target *NotFoundError
	return errors.As(err, &target)
}

// IsPartialReconciliation reports whether err is a PartialReconciliationError.
func IsPartialReconciliation(err error) bool {
	var target *PartialReconciliationError
	return errors.As(err, &target)
}
