package transcription

import (
	"context"

	"github.com/kbukum/voicetext/provider"
)

// Provider is the interface that transcription backends must implement.
type Provider interface {
	provider.Provider // embeds Name() and IsAvailable()

	// Transcribe sends audio for transcription. On success the result holds
	// a non-empty transcript; every failure is an *errors.AppError.
	Transcribe(ctx context.Context, req Request) (*Result, error)
}
