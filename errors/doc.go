// Package errors provides the error taxonomy for voicetext.
//
// Every failure of a transcription call is an *AppError carrying a
// machine-readable code, a human-readable message suitable for display in
// the desktop UI, an informational retryable flag, and the HTTP status used
// when the error crosses the local HTTP surface.
//
// # Kinds
//
//   - CONFIGURATION_ERROR: credential missing, empty, or whitespace-only
//   - NETWORK_ERROR: transport-level send/receive failure
//   - REMOTE_ERROR: non-success HTTP status from the provider
//   - PARSE_ERROR: response body is not valid JSON
//   - NO_TRANSCRIPT: valid JSON without a usable transcript
//
// # Usage
//
//	if errors.Is(err, errors.ErrCodeNoTranscript) {
//	    // silence, unsupported audio, ...
//	}
package errors
