package ruddr

import (
	"errors"
	"fmt"
)

// Kind classifies an [Error] by the stage of the pipeline that produced it.
type Kind string

const (
	// KindConfig indicates the client could not be built: missing
	// credential, illegal header value, nil client. Not retryable.
	KindConfig Kind = "CONFIG"

	// KindValidation indicates caller input failed its format check before
	// any network call was made. Not retryable.
	KindValidation Kind = "VALIDATION"

	// KindTransport indicates a network failure or a non-success HTTP
	// status. Status is set when a response was received.
	KindTransport Kind = "TRANSPORT"

	// KindDecode indicates a success response whose body did not match the
	// requested shape.
	KindDecode Kind = "DECODE"
)

// Error represents a Ruddr client error.
//
// Every error returned by this package is an *Error. Use [errors.Is] with
// the kind sentinels ([ErrConfig], [ErrValidation], [ErrTransport],
// [ErrDecode]) or the status sentinels ([ErrUnauthorized], [ErrNotFound], ...)
// to branch on it, or [errors.As] to inspect the fields.
type Error struct {
	Kind    Kind
	Code    string
	Message string
	Status  int
	Cause   error
}

func (e *Error) Error() string {
	kind := string(e.Kind)
	if e.Code != "" {
		kind = e.Code
	}
	if e.Cause != nil {
		return fmt.Sprintf("ruddr: %s: %s: %v", kind, e.Message, e.Cause)
	}
	return fmt.Sprintf("ruddr: %s: %s", kind, e.Message)
}

func (e *Error) Unwrap() error {
	return e.Cause
}

// Is reports whether target is a sentinel matching e. A sentinel with a
// Status matches transport errors carrying that status; a sentinel without
// one matches every error of its Kind.
func (e *Error) Is(target error) bool {
	var t *Error
	if !errors.As(target, &t) || t == nil {
		return false
	}
	if t.Kind != e.Kind {
		return false
	}
	if t.Status != 0 {
		return t.Status == e.Status
	}
	return t.Code == "" || t.Code == e.Code
}

// Sentinel errors.
var (
	ErrConfig     = &Error{Kind: KindConfig, Message: "configuration error"}
	ErrValidation = &Error{Kind: KindValidation, Message: "validation error"}
	ErrTransport  = &Error{Kind: KindTransport, Message: "transport error"}
	ErrDecode     = &Error{Kind: KindDecode, Message: "decode error"}

	ErrUnauthorized = &Error{Kind: KindTransport, Code: "UNAUTHORIZED", Message: "invalid credentials", Status: 401}
	ErrForbidden    = &Error{Kind: KindTransport, Code: "FORBIDDEN", Message: "access denied", Status: 403}
	ErrNotFound     = &Error{Kind: KindTransport, Code: "NOT_FOUND", Message: "resource not found", Status: 404}
	ErrRateLimited  = &Error{Kind: KindTransport, Code: "RATE_LIMITED", Message: "rate limit exceeded", Status: 429}
	ErrInternal     = &Error{Kind: KindTransport, Code: "INTERNAL", Message: "internal server error", Status: 500}
)

// Error codes carried in [Error.Code].
const (
	codeMissingToken  = "MISSING_TOKEN"
	codeInvalidHeader = "INVALID_HEADER"
	codeNilClient     = "NIL_CLIENT"
	codeInvalidInput  = "INVALID_INPUT"
	codeEmptyEndpoint = "EMPTY_ENDPOINT"
	codeRequestFailed = "REQUEST_FAILED"
	codeHTTPStatus    = "HTTP_STATUS"
	codeDecodeFailed  = "DECODE_FAILED"
)

func newError(kind Kind, code, message string, status int, cause error) *Error {
	return &Error{Kind: kind, Code: code, Message: message, Status: status, Cause: cause}
}

func configError(code, message string, cause error) *Error {
	return newError(KindConfig, code, message, 0, cause)
}

func validationError(code, message string, cause error) *Error {
	return newError(KindValidation, code, message, 0, cause)
}
