// Package transcription defines the speech-to-text provider interface and
// the boundary types handed to callers.
//
// A call takes one in-memory audio buffer and yields either a non-empty
// transcript or an error classified by errors.ErrorCode. Invoke is the
// boundary entry point: it never panics and always returns exactly one of a
// transcript or a user-facing error message.
//
// # Backends
//
//   - transcription/deepgram: Deepgram prerecorded /v1/listen API
//
// # Usage
//
//	client, err := deepgram.New(cfg, deepgram.WithLogger(log))
//	out := transcription.Invoke(ctx, client, audio)
//	if out.Error != "" {
//	    fmt.Println(out.Error)
//	}
package transcription
