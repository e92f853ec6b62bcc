package domain

import (
	"errors"
	"fmt"
)

var (
	ErrRejected     = errors.New("request rejected")
	ErrExternalCall = errors.New("external call failed")
)

// RejectionError reports a validation failure of the input or of a gated
// stage output.
type RejectionError struct {
	Reason ReasonCode
	Stage  string
}

func (e *RejectionError) Error() string {
	if e.Stage == "" {
		return fmt.Sprintf("rejected: %s", e.Reason)
	}
	return fmt.Sprintf("rejected at stage %s: %s", e.Stage, e.Reason)
}

func (e *RejectionError) Is(target error) bool {
	return target == ErrRejected
}

// ExternalCallError reports a failed call to a remote capability. Op is a
// short machine readable code such as "http_request" or "http_502".
type ExternalCallError struct {
	Capability string
	Op         string
	StatusCode int
	Err        error
}

func (e *ExternalCallError) Error() string {
	if e.Err == nil {
		return fmt.Sprintf("%s: %s", e.Capability, e.Op)
	}
	return fmt.Sprintf("%s: %s: %v", e.Capability, e.Op, e.Err)
}

func (e *ExternalCallError) Unwrap() error {
	return e.Err
}

func (e *ExternalCallError) Is(target error) bool {
	return target == ErrExternalCall
}

// NewExternalCallError builds an ExternalCallError for capability.
func NewExternalCallError(capability, op string, status int, err error) *ExternalCallError {
	return &ExternalCallError{Capability: capability, Op: op, StatusCode: status, Err: err}
}
