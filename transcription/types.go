package transcription

import (
	"github.com/google/uuid"

	"github.com/kbukum/voicetext/errors"
)

// Request holds one transcription call.
type Request struct {
	// Audio is sent verbatim. It is never mutated.
	Audio []byte `json:"-"`
	// ID correlates logs and traces for this call.
	ID string `json:"id"`
}

// NewRequest returns a request for audio with a fresh ID.
func NewRequest(audio []byte) Request {
	return Request{Audio: audio, ID: uuid.NewString()}
}

// EnsureID returns r with an ID, generating one if empty.
func (r Request) EnsureID() Request {
	if r.ID == "" {
		r.ID = uuid.NewString()
	}
	return r
}

// Result holds the text of a successful call.
type Result struct {
	// Transcript is never empty.
	Transcript string `json:"transcript"`
}

// Outcome is what Invoke hands back to a UI shell. Exactly one of
// Transcript and Error is non-empty.
type Outcome struct {
	Transcript string           `json:"transcript,omitempty"`
	Error      string           `json:"error,omitempty"`
	Kind       errors.ErrorCode `json:"kind,omitempty"`
	RequestID  string           `json:"request_id,omitempty"`
}

// OK reports whether the call produced a transcript.
func (o Outcome) OK() bool {
	return o.Error == ""
}
