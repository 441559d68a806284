package transcription

import (
	"context"
	"fmt"

	"github.com/kbukum/voicetext/errors"
	"github.com/kbukum/voicetext/logger"
)

// Invoke runs one transcription and converts the result into an Outcome.
// A panic inside the provider is recovered as INTERNAL_ERROR.
func Invoke(ctx context.Context, p Provider, audio []byte) (out Outcome) {
	req := NewRequest(audio)
	ctx = logger.ContextWithRequestID(ctx, req.ID)
	out.RequestID = req.ID

	defer func() {
		if r := recover(); r != nil {
			err := errors.Internal(fmt.Errorf("panic: %v", r))
			logger.WithComponent("transcription").WithContext(ctx).Error("transcription panicked",
				logger.ErrorFields("transcribe", err))
			out = Outcome{Error: Describe(err), Kind: err.Code, RequestID: req.ID}
		}
	}()

	res, err := p.Transcribe(ctx, req)
	if err == nil && (res == nil || res.Transcript == "") {
		err = errors.NoTranscript()
	}
	if err != nil {
		out.Error = Describe(err)
		out.Kind = errors.Wrap(err).Code
		return out
	}
	out.Transcript = res.Transcript
	return out
}

// Describe turns err into the message shown to the user.
func Describe(err error) string {
	if err == nil {
		return ""
	}
	if appErr, ok := errors.AsAppError(err); ok {
		if appErr.Message != "" {
			return appErr.Message
		}
		return string(appErr.Code)
	}
	if msg := err.Error(); msg != "" {
		return msg
	}
	return "unknown error"
}
