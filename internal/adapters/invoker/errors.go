package invoker

import (
	"errors"
	"fmt"
)

// Common invocation error types
var (
	ErrInvalidFunction = errors.New("function name is required")
	ErrFunctionFailed  = errors.New("function returned an error")
	ErrEmptyPayload    = errors.New("function returned an empty payload")
)

// InvocationError represents an invocation failure with additional context
type InvocationError struct {
	Op       string // Operation that failed (e.g. "Invoke")
	Function string // Target function name
	Err      error  // Underlying error
}

func (e *InvocationError) Error() string {
	if e.Function != "" {
		return fmt.Sprintf("%s %s failed: %v", e.Op, e.Function, e.Err)
	}
	return fmt.Sprintf("%s failed: %v", e.Op, e.Err)
}

func (e *InvocationError) Unwrap() error {
	return e.Err
}

// NewInvocationError creates a new InvocationError
func NewInvocationError(op, function string, err error) *InvocationError {
	return &InvocationError{
		Op:       op,
		Function: function,
		Err:      err,
	}
}

// FunctionError is the error document a Lambda function returns when its
// handler fails
type FunctionError struct {
	Kind    string   `json:"-"` // X-Amz-Function-Error value, "Unhandled" or "Handled"
	Type    string   `json:"errorType"`
	Message string   `json:"errorMessage"`
	Trace   []string `json:"stackTrace,omitempty"`
}

func (e *FunctionError) Error() string {
	switch {
	case e.Message == "":
		return fmt.Sprintf("function error: %s", e.Kind)
	case e.Type != "":
		return fmt.Sprintf("%s: %s", e.Type, e.Message)
	default:
		return e.Message
	}
}

func (e *FunctionError) Unwrap() error {
	return ErrFunctionFailed
}

// IsFunctionError returns true if the downstream function itself reported
// the failure
func IsFunctionError(err error) bool {
	return errors.Is(err, ErrFunctionFailed)
}
