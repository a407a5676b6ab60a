package auctionerrors

import (
	"errors"
	"fmt"
)

// Client-side failure classes. Every failure surfaced by the transport is an
// *APIError whose Kind matches exactly one of these through errors.Is.
var (
	ErrNetwork = errors.New("request could not complete")
	ErrStatus  = errors.New("non-success response status")
	ErrDecode  = errors.New("response body could not be decoded")
	ErrEncode  = errors.New("request body could not be encoded")
)

// Payload errors raised before a request is sent
var (
	ErrMissingField = errors.New("missing required field")
)

// Stub backend errors
var (
	ErrItemNotFound     = errors.New("item not found")
	ErrQuestionNotFound = errors.New("question not found")
	ErrAuctionEnded     = errors.New("this auction has ended")
	ErrOwnItem          = errors.New("you cannot bid on your own item")
	ErrBidTooLow        = errors.New("bid amount too low")
	ErrInvalidAmount    = errors.New("invalid amount")
	ErrNotItemOwner     = errors.New("you do not have permission to reply to this question")
	ErrAlreadyAnswered  = errors.New("question already answered")
	ErrInvalidPayload   = errors.New("invalid request payload")
)

// APIError is the single error value produced by the transport. Its message is
// what a caller shows to the user; Err keeps the underlying cause for logging.
type APIError struct {
	Kind    error
	Status  int
	Message string
	Err     error
}

func (e *APIError) Error() string {
	return e.Message
}

// Is reports whether target is the failure class of e.
func (e *APIError) Is(target error) bool {
	return e.Kind != nil && target == e.Kind
}

func (e *APIError) Unwrap() error {
	return e.Err
}

// NewNetworkError wraps a failure of the round trip itself.
func NewNetworkError(err error) *APIError {
	return &APIError{
		Kind:    ErrNetwork,
		Message: fmt.Sprintf("request failed: %v", err),
		Err:     err,
	}
}

// NewEncodeError wraps a request body that could not be built. Nothing was sent.
func NewEncodeError(err error) *APIError {
	return &APIError{
		Kind:    ErrEncode,
		Message: fmt.Sprintf("invalid request body: %v", err),
		Err:     err,
	}
}

// NewStatusError builds the error for a non-2xx response. An empty detail
// falls back to "HTTP <status>".
func NewStatusError(status int, detail string) *APIError {
	msg := detail
	if msg == "" {
		msg = fmt.Sprintf("HTTP %d", status)
	}
	return &APIError{
		Kind:    ErrStatus,
		Status:  status,
		Message: msg,
	}
}

// NewDecodeError wraps a 2xx response whose body was not the expected JSON.
func NewDecodeError(status int, err error) *APIError {
	return &APIError{
		Kind:    ErrDecode,
		Status:  status,
		Message: fmt.Sprintf("invalid response body: %v", err),
		Err:     err,
	}
}

// Message returns the user-facing message of err. For an *APIError anywhere in
// the chain that is its Message verbatim; otherwise err.Error().
func Message(err error) string {
	var apiErr *APIError
	if errors.As(err, &apiErr) {
		return apiErr.Message
	}
	return err.Error()
}
