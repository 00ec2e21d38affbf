package aggregates

import (
	"errors"
	"fmt"
	"sort"
	"strings"
)

// ErrorCode standardizes failure semantics across the catalog, customer and
// order domains. Transport layers translate codes, never messages.
type ErrorCode string

const (
	CodeValidation         ErrorCode = "validation"
	CodeInvalidOrder       ErrorCode = "invalid_order"
	CodeNotFound           ErrorCode = "not_found"
	CodeDuplicateKey       ErrorCode = "duplicate_key"
	CodeConflict           ErrorCode = "conflict"
	CodeInvariantViolation ErrorCode = "invariant_violation"
	CodePreconditionFailed ErrorCode = "precondition_failed"
	CodeRetryable          ErrorCode = "retryable"
	CodeInternal           ErrorCode = "internal"
)

// Error is the canonical classified error.
//
// Resource names the entity kind for not_found errors ("Product", "Order").
// Fields carries per-field messages for validation errors.
type Error struct {
	Code     ErrorCode
	Op       string
	Message  string
	Resource string
	Fields   map[string]string
	Cause    error
}

func (e *Error) Error() string {
	if e == nil {
		return "<nil>"
	}
	op := strings.TrimSpace(e.Op)
	msg := strings.TrimSpace(e.Message)
	if msg == "" && len(e.Fields) > 0 {
		msg = formatFields(e.Fields)
	}
	switch {
	case op != "" && msg != "":
		return fmt.Sprintf("%s: %s (%s)", op, msg, e.Code)
	case op != "":
		return fmt.Sprintf("%s (%s)", op, e.Code)
	case msg != "":
		return fmt.Sprintf("%s (%s)", msg, e.Code)
	default:
		return string(e.Code)
	}
}

func (e *Error) Unwrap() error { return e.Cause }

// NewError builds an error with explicit code + operation.
func NewError(code ErrorCode, op, message string, cause error) error {
	return &Error{
		Code:    code,
		Op:      strings.TrimSpace(op),
		Message: strings.TrimSpace(message),
		Cause:   cause,
	}
}

// Wrap annotates an existing error with a code.
func Wrap(code ErrorCode, op string, err error) error {
	if err == nil {
		return nil
	}
	return NewError(code, op, err.Error(), err)
}

// NotFound reports a missing entity of the given kind.
func NotFound(op, resource string, id any) error {
	return &Error{
		Code:     CodeNotFound,
		Op:       strings.TrimSpace(op),
		Resource: resource,
		Message:  fmt.Sprintf("%s not found: %v", resource, id),
	}
}

// Validation reports request field violations. Returns nil for an empty map.
func Validation(op string, fields map[string]string) error {
	if len(fields) == 0 {
		return nil
	}
	return &Error{
		Code:   CodeValidation,
		Op:     strings.TrimSpace(op),
		Fields: fields,
	}
}

// IsCode checks whether err (or a wrapped err) carries the given code.
func IsCode(err error, code ErrorCode) bool {
	return CodeOf(err) == code
}

// CodeOf extracts the error code when available.
func CodeOf(err error) ErrorCode {
	var aggErr *Error
	if !errors.As(err, &aggErr) {
		return ""
	}
	return aggErr.Code
}

// As returns the classified error in err's chain, if any.
func As(err error) (*Error, bool) {
	var aggErr *Error
	if !errors.As(err, &aggErr) {
		return nil, false
	}
	return aggErr, true
}

func formatFields(fields map[string]string) string {
	keys := make([]string, 0, len(fields))
	for k := range fields {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	parts := make([]string, 0, len(keys))
	for _, k := range keys {
		parts = append(parts, k+": "+fields[k])
	}
	return strings.Join(parts, "; ")
}
