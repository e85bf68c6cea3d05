package gomodel

import (
	"errors"
	"fmt"
	"strings"

	"github.com/gomodel-dev/gomodel/i18n"
)

// Issue codes (exported consts for IDE completion and type safety by convention)
const (
	CodeSchemaViolation = "schema_violation"
	CodeCustomRule      = "custom_rule"
	CodeInvalidSchema   = "invalid_schema"
	// Policy/identity codes, shared with the typed errors below.
	CodeNameCollision    = "name_collision"
	CodeReservedProperty = "reserved_property"
	CodeUnknownProperty  = "unknown_property"
	CodeStrictMode       = "strict_mode"
	CodeValidationFailed = "validation_failed"
	CodeNoValidation     = "no_validation"
)

// RootPath is the JSON Pointer used for issues that concern the whole model.
const RootPath = "/"

// Issue represents a single validation entry.
type Issue struct {
	Path    string // JSON Pointer (for example: /age). RootPath for whole-model issues.
	Code    string // One of the codes listed above.
	Message string
}

// Issues is a collection of validation errors that implements error.
type Issues []Issue

// Error summarizes the first few issues.
func (iss Issues) Error() string {
	if len(iss) == 0 {
		return ""
	}
	const maxShown = 3
	b := &strings.Builder{}
	n := len(iss)
	lim := n
	if lim > maxShown {
		lim = maxShown
	}
	for i := 0; i < lim; i++ {
		if i > 0 {
			b.WriteString("; ")
		}
		it := iss[i]
		// e.g. schema_violation at /age
		fmt.Fprintf(b, "%s at %s", it.Code, it.Path)
	}
	if n > lim {
		fmt.Fprintf(b, "; ... (total %d)", n)
	}
	return b.String()
}

// AppendIssues appends issues to the destination, initializing the slice when
// needed.
func AppendIssues(dst Issues, more ...Issue) Issues {
	if dst == nil {
		dst = Issues{}
	}
	dst = append(dst, more...)
	return dst
}

// AsIssues extracts Issues from an error using errors.As internally.
func AsIssues(err error) (Issues, bool) {
	if err == nil {
		return nil, false
	}
	var iss Issues
	if errors.As(err, &iss) {
		return iss, true
	}
	return nil, false
}

// ErrNoValidation is returned by Model.Validate when neither a schema nor a
// validate function was configured. IsValid never returns it; the boolean
// accessor degrades to trivially valid instead.
var ErrNoValidation error = noValidationError{}

// noValidationError keeps ErrNoValidation usable with errors.Is while
// fetching its message through the current translator at call time.
type noValidationError struct{}

func (noValidationError) Error() string {
	return "gomodel: " + i18n.T(CodeNoValidation, nil)
}

// NameCollisionError reports a source key that collides with a reserved name.
// Wrap fails with it before returning any handle.
type NameCollisionError struct {
	Key string
}

func (e *NameCollisionError) Error() string {
	return fmt.Sprintf("gomodel: %s: %q", i18n.T(CodeNameCollision, nil), e.Key)
}

// ReservedPropertyError reports an attempt to assign or delete a reserved name.
type ReservedPropertyError struct {
	Key string
}

func (e *ReservedPropertyError) Error() string {
	return fmt.Sprintf("gomodel: %s: %q", i18n.T(CodeReservedProperty, nil), e.Key)
}

// UnknownPropertyError reports a strict-mode write to a key the model does not have.
type UnknownPropertyError struct {
	Key string
}

func (e *UnknownPropertyError) Error() string {
	return fmt.Sprintf("gomodel: %s: %q", i18n.T(CodeUnknownProperty, nil), e.Key)
}

// StrictModeError reports an operation forbidden under strict mode, such as a delete.
type StrictModeError struct {
	Op  string // "delete" today; kept open for future policy checks.
	Key string
}

func (e *StrictModeError) Error() string {
	return fmt.Sprintf("gomodel: %s %s: %q", e.Op, i18n.T(CodeStrictMode, nil), e.Key)
}

// ValidationError carries the full issue list of a failed validation pass.
// It is returned by Model.Validate; the boolean accessor never produces it.
type ValidationError struct {
	Issues Issues
}

func (e *ValidationError) Error() string {
	return "gomodel: " + i18n.T(CodeValidationFailed, nil) + ": " + e.Issues.Error()
}

// Unwrap exposes the issue list to errors.As / AsIssues.
func (e *ValidationError) Unwrap() error { return e.Issues }
