package mcp

import (
	"errors"
	"fmt"
)

// ErrorKind classifies a dispatch or tool failure. The wire protocol only
// distinguishes method-not-found from everything else; the kind is kept for
// logging and tests.
type ErrorKind int

const (
	KindInternal ErrorKind = iota
	KindProtocol
	KindValidation
	KindProvider
	KindUnknownTool
)

func (k ErrorKind) String() string {
	switch k {
	case KindProtocol:
		return "protocol"
	case KindValidation:
		return "validation"
	case KindProvider:
		return "provider"
	case KindUnknownTool:
		return "unknown_tool"
	default:
		return "internal"
	}
}

// ToolError is a classified failure surfaced by the dispatcher or a tool
// handler.
type ToolError struct {
	Kind    ErrorKind
	Message string
	Cause   error
}

func (e *ToolError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: %s", e.Message, e.Cause)
	}
	return e.Message
}

func (e *ToolError) Unwrap() error {
	return e.Cause
}

// NewValidationError reports a malformed or missing argument. The message
// names the failing field.
func NewValidationError(format string, args ...any) *ToolError {
	return &ToolError{Kind: KindValidation, Message: fmt.Sprintf(format, args...)}
}

// NewProviderError wraps a failed platform call with the operation that
// failed.
func NewProviderError(operation string, cause error) *ToolError {
	return &ToolError{
		Kind:    KindProvider,
		Message: fmt.Sprintf("Failed to %s", operation),
		Cause:   cause,
	}
}

// NewUnknownToolError reports a tool name absent from the registry.
func NewUnknownToolError(name string) *ToolError {
	return &ToolError{Kind: KindUnknownTool, Message: fmt.Sprintf("Unknown tool: %s", name)}
}

// wireError converts any failure into a JSON-RPC error object. Protocol
// failures get the method-not-found code; every other kind shares the
// internal error code. The original cause, when present, rides along as
// diagnostic data.
func wireError(err error) *Error {
	var te *ToolError
	if !errors.As(err, &te) {
		te = &ToolError{Kind: KindInternal, Message: err.Error()}
	}

	code := CodeInternalError
	if te.Kind == KindProtocol {
		code = CodeMethodNotFound
	}

	wire := &Error{Code: code, Message: te.Error()}
	if te.Cause != nil {
		wire.Data = map[string]any{"cause": te.Cause.Error(), "kind": te.Kind.String()}
	}
	return wire
}
