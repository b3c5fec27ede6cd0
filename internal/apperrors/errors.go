package apperrors

import (
	"errors"
	"fmt"
	"strings"
)

// ErrNotFound indicates that a requested resource could not be found.
var ErrNotFound = errors.New("resource not found")

// ErrValidation indicates that input data failed validation checks.
var ErrValidation = errors.New("validation error")

// ErrDuplicate indicates that an attempt was made to create a resource that already exists.
var ErrDuplicate = errors.New("resource already exists")

// ErrCapacity indicates that a hard capacity limit has been reached.
var ErrCapacity = errors.New("capacity limit reached")

// ErrAuthentication indicates bad credentials or an invalid/expired token.
var ErrAuthentication = errors.New("authentication failed")

// ErrForbidden indicates that the authenticated principal lacks the required role.
var ErrForbidden = errors.New("insufficient privileges")

// ErrPersistence indicates a database write failure; the transaction was rolled back.
var ErrPersistence = errors.New("persistence failure")

// ValidationError reports a structurally invalid upload, naming the columns
// that were absent from the header row.
type ValidationError struct {
	MissingColumns []string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("CSV structure invalid. Missing: %s", strings.Join(e.MissingColumns, ", "))
}

func (e *ValidationError) Unwrap() error {
	return ErrValidation
}

// ParseError reports a malformed value in an otherwise well-structured upload.
// Line is 1-based and counts the header row.
type ParseError struct {
	Line   int
	Column string
	Err    error
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("invalid value in column %q at line %d: %v", e.Column, e.Line, e.Err)
}

func (e *ParseError) Unwrap() error {
	return ErrValidation
}
