package server

import (
	stderrors "errors"
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/kbukum/voicetext/errors"
	"github.com/kbukum/voicetext/logger"
	"github.com/kbukum/voicetext/transcription"
	"github.com/kbukum/voicetext/util"
)

// TranscribeResponse is the data of a successful POST /v1/transcribe.
type TranscribeResponse struct {
	Transcript string `json:"transcript"`
	RequestID  string `json:"request_id,omitempty"`
}

// Transcribe handles POST /v1/transcribe. The request body is the audio,
// forwarded unchanged; the request Content-Type is ignored.
func Transcribe(p transcription.Provider, log *logger.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		ctx := c.Request.Context()

		audio, err := c.GetRawData()
		if err != nil {
			var maxErr *http.MaxBytesError
			if stderrors.As(err, &maxErr) {
				RespondWithError(c, errors.New(errors.ErrCodeInvalidInput,
					fmt.Sprintf("audio exceeds the %s upload limit", util.FormatSize(maxErr.Limit)),
					http.StatusRequestEntityTooLarge))
				return
			}
			RespondWithError(c, errors.Validation("failed to read request body").WithCause(err))
			return
		}

		req := transcription.Request{Audio: audio, ID: logger.RequestIDFromContext(ctx)}.EnsureID()
		res, err := p.Transcribe(ctx, req)
		if err != nil {
			log.WithContext(ctx).Warn("transcription failed", logger.Fields(
				logger.FieldErrorCode, string(errors.CodeOf(err)),
				logger.FieldProvider, p.Name(),
			))
			RespondWithError(c, err)
			return
		}
		RespondOK(c, TranscribeResponse{Transcript: res.Transcript, RequestID: req.ID})
	}
}
