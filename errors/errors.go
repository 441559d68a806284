package errors

import (
	stderrors "errors"
	"fmt"
	"net/http"
)

// UnknownBody replaces a provider error body that could not be read.
const UnknownBody = "Unknown error"

// AppError is the unified application error type.
type AppError struct {
	// Code is a machine-readable error code.
	Code ErrorCode `json:"code"`
	// Message is a human-readable error message.
	Message string `json:"message"`
	// Retryable indicates if the operation can be retried.
	Retryable bool `json:"retryable"`
	// HTTPStatus is the recommended HTTP status code for this error.
	HTTPStatus int `json:"-"`
	// Details contains additional context for the error.
	Details map[string]any `json:"details,omitempty"`
	// Cause is the underlying error that caused this error.
	Cause error `json:"-"`
}

// Error returns the string representation of the error.
func (e *AppError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: %s (cause: %v)", e.Code, e.Message, e.Cause)
	}
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

// Unwrap returns the underlying cause of the error.
func (e *AppError) Unwrap() error { return e.Cause }

// WithCause sets the underlying cause of the error and returns the receiver.
func (e *AppError) WithCause(cause error) *AppError {
	e.Cause = cause
	return e
}

// WithDetails merges the provided details into the error and returns the receiver.
func (e *AppError) WithDetails(details map[string]any) *AppError {
	if e.Details == nil {
		e.Details = make(map[string]any)
	}
	for k, v := range details {
		e.Details[k] = v
	}
	return e
}

// WithDetail sets a single detail key-value pair and returns the receiver.
func (e *AppError) WithDetail(key string, value any) *AppError {
	if e.Details == nil {
		e.Details = make(map[string]any)
	}
	e.Details[key] = value
	return e
}

// New creates a new AppError with automatic retryable detection.
func New(code ErrorCode, message string, httpStatus int) *AppError {
	return &AppError{
		Code:       code,
		Message:    message,
		HTTPStatus: httpStatus,
		Retryable:  IsRetryableCode(code),
	}
}

// --- Transcription failures ---

// MissingCredential reports that the named environment variable is not set.
func MissingCredential(variable string) *AppError {
	return &AppError{
		Code: ErrCodeConfiguration,
		Message: fmt.Sprintf("Missing %s environment variable. Set it in your environment or create a .env file with: %s=your_key_here",
			variable, variable),
		HTTPStatus: http.StatusInternalServerError, Retryable: false,
		Details: map[string]any{"variable": variable, "reason": "missing credential"},
	}
}

// EmptyCredential reports that the named environment variable is set but
// blank after trimming.
func EmptyCredential(variable string) *AppError {
	return &AppError{
		Code:       ErrCodeConfiguration,
		Message:    fmt.Sprintf("%s is empty. Set a valid API key in your environment or .env file.", variable),
		HTTPStatus: http.StatusInternalServerError, Retryable: false,
		Details: map[string]any{"variable": variable, "reason": "empty credential"},
	}
}

// Configuration creates a new AppError for any other configuration problem.
func Configuration(message string) *AppError {
	return &AppError{
		Code: ErrCodeConfiguration, Message: message,
		HTTPStatus: http.StatusInternalServerError, Retryable: false,
	}
}

// Network creates a new AppError for a request that could not be sent or
// received. The transport error text is part of the message.
func Network(cause error) *AppError {
	msg := "Request failed"
	if cause != nil {
		msg = fmt.Sprintf("Request failed: %v", cause)
	}
	return &AppError{
		Code: ErrCodeNetwork, Message: msg,
		HTTPStatus: http.StatusBadGateway, Retryable: true, Cause: cause,
	}
}

// Remote creates a new AppError for a non-success response from the named
// service. body is the provider's error body as text.
func Remote(service string, statusCode int, body string) *AppError {
	status := fmt.Sprintf("%d", statusCode)
	if text := http.StatusText(statusCode); text != "" {
		status += " " + text
	}
	return &AppError{
		Code:       ErrCodeRemote,
		Message:    fmt.Sprintf("%s API error (%s): %s", service, status, body),
		HTTPStatus: http.StatusBadGateway,
		Retryable:  statusCode == http.StatusTooManyRequests || statusCode >= 500,
		Details: map[string]any{
			"service":     service,
			"status_code": statusCode,
			"body":        body,
		},
	}
}

// Parse creates a new AppError for a response body that is not valid JSON.
func Parse(cause error) *AppError {
	msg := "invalid JSON"
	if cause != nil {
		msg = fmt.Sprintf("invalid JSON: %v", cause)
	}
	return &AppError{
		Code: ErrCodeParse, Message: msg,
		HTTPStatus: http.StatusBadGateway, Retryable: false, Cause: cause,
	}
}

// NoTranscript creates a new AppError for a well-formed response that carries
// no usable transcript.
func NoTranscript() *AppError {
	return &AppError{
		Code: ErrCodeNoTranscript, Message: "no transcript found in response",
		HTTPStatus: http.StatusUnprocessableEntity, Retryable: false,
	}
}

// --- Local failures ---

// Validation creates a new AppError for validation errors.
func Validation(message string) *AppError {
	return &AppError{
		Code: ErrCodeInvalidInput, Message: message,
		HTTPStatus: http.StatusBadRequest, Retryable: false,
	}
}

// Internal creates a new AppError for an internal error.
func Internal(cause error) *AppError {
	return &AppError{
		Code: ErrCodeInternal, Message: "An unexpected error occurred. Please try again.",
		HTTPStatus: http.StatusInternalServerError, Retryable: false, Cause: cause,
	}
}

// Wrap returns err as an *AppError. AppErrors anywhere in the chain are
// returned as-is; other errors become Internal. Wrap(nil) is nil.
func Wrap(err error) *AppError {
	if err == nil {
		return nil
	}
	var appErr *AppError
	if stderrors.As(err, &appErr) {
		return appErr
	}
	return Internal(err)
}
