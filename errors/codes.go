package errors

// ErrorCode represents a machine-readable error code.
type ErrorCode string

// Transcription call failures.
const (
	// ErrCodeConfiguration indicates the credential is missing or empty.
	ErrCodeConfiguration ErrorCode = "CONFIGURATION_ERROR"
	// ErrCodeNetwork indicates the request could not be sent or no response arrived.
	ErrCodeNetwork ErrorCode = "NETWORK_ERROR"
	// ErrCodeRemote indicates the provider answered with a non-success status.
	ErrCodeRemote ErrorCode = "REMOTE_ERROR"
	// ErrCodeParse indicates the provider's response body is not valid JSON.
	ErrCodeParse ErrorCode = "PARSE_ERROR"
	// ErrCodeNoTranscript indicates the response carried no usable transcript.
	ErrCodeNoTranscript ErrorCode = "NO_TRANSCRIPT"
)

// Local errors
const (
	// ErrCodeInvalidInput indicates invalid configuration or input.
	ErrCodeInvalidInput ErrorCode = "INVALID_INPUT"
	// ErrCodeInternal indicates an unexpected failure inside voicetext.
	ErrCodeInternal ErrorCode = "INTERNAL_ERROR"
)

var retryableCodes = map[ErrorCode]bool{
	ErrCodeNetwork:       true,
	ErrCodeConfiguration: false,
	ErrCodeParse:         false,
	ErrCodeNoTranscript:  false,
	ErrCodeInternal:      false,
}

// IsRetryableCode returns true if the error code usually indicates a transient
// failure. voicetext never retries on its own; the flag is informational for
// the caller.
func IsRetryableCode(code ErrorCode) bool {
	return retryableCodes[code]
}
