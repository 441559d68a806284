package transcription

import (
	"context"
	stderrors "errors"
	"testing"

	"github.com/kbukum/voicetext/errors"
)

type stubProvider struct {
	res   *Result
	err   error
	panic any
	got   Request
}

func (s *stubProvider) Name() string                       { return "stub" }
func (s *stubProvider) IsAvailable(_ context.Context) bool { return true }
func (s *stubProvider) Transcribe(_ context.Context, req Request) (*Result, error) {
	s.got = req
	if s.panic != nil {
		panic(s.panic)
	}
	return s.res, s.err
}

func TestInvoke(t *testing.T) {
	tests := []struct {
		name       string
		stub       *stubProvider
		transcript string
		kind       errors.ErrorCode
		message    string
	}{
		{
			name:       "success",
			stub:       &stubProvider{res: &Result{Transcript: "hello world"}},
			transcript: "hello world",
		},
		{
			name:    "app error",
			stub:    &stubProvider{err: errors.MissingCredential("DEEPGRAM_API_KEY")},
			kind:    errors.ErrCodeConfiguration,
			message: errors.MissingCredential("DEEPGRAM_API_KEY").Message,
		},
		{
			name:    "plain error",
			stub:    &stubProvider{err: stderrors.New("boom")},
			kind:    errors.ErrCodeInternal,
			message: "boom",
		},
		{
			name:    "nil result",
			stub:    &stubProvider{},
			kind:    errors.ErrCodeNoTranscript,
			message: "no transcript found in response",
		},
		{
			name:    "empty transcript",
			stub:    &stubProvider{res: &Result{}},
			kind:    errors.ErrCodeNoTranscript,
			message: "no transcript found in response",
		},
		{
			name: "panic",
			stub: &stubProvider{panic: "kaboom"},
			kind: errors.ErrCodeInternal,
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			out := Invoke(context.Background(), tc.stub, []byte("audio"))

			if (out.Transcript == "") == (out.Error == "") {
				t.Fatalf("exactly one of transcript and error must be set, got %+v", out)
			}
			if out.Transcript != tc.transcript {
				t.Errorf("expected transcript %q, got %q", tc.transcript, out.Transcript)
			}
			if out.Kind != tc.kind {
				t.Errorf("expected kind %q, got %q", tc.kind, out.Kind)
			}
			if tc.message != "" && out.Error != tc.message {
				t.Errorf("expected message %q, got %q", tc.message, out.Error)
			}
			if out.OK() != (tc.transcript != "") {
				t.Errorf("OK() = %v for %+v", out.OK(), out)
			}
			if out.RequestID == "" || out.RequestID != tc.stub.got.ID {
				t.Errorf("expected request id %q to reach the provider, got %q", out.RequestID, tc.stub.got.ID)
			}
		})
	}
}

func TestInvoke_PassesAudioVerbatim(t *testing.T) {
	audio := []byte{0x1a, 0x45, 0xdf, 0xa3}
	stub := &stubProvider{res: &Result{Transcript: "ok"}}
	Invoke(context.Background(), stub, audio)
	if string(stub.got.Audio) != string(audio) {
		t.Errorf("audio changed: %x", stub.got.Audio)
	}
}

func TestDescribe(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want string
	}{
		{"nil", nil, ""},
		{"app error", errors.NoTranscript(), "no transcript found in response"},
		{"app error without message", &errors.AppError{Code: errors.ErrCodeParse}, "PARSE_ERROR"},
		{"plain", stderrors.New("dial tcp: refused"), "dial tcp: refused"},
		{"empty", stderrors.New(""), "unknown error"},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := Describe(tc.err); got != tc.want {
				t.Errorf("expected %q, got %q", tc.want, got)
			}
		})
	}
}

func TestRequest_EnsureID(t *testing.T) {
	r := Request{Audio: []byte("a")}.EnsureID()
	if r.ID == "" {
		t.Fatal("expected generated id")
	}
	if again := r.EnsureID(); again.ID != r.ID {
		t.Errorf("expected id to be kept, got %q", again.ID)
	}
	if a, b := NewRequest(nil), NewRequest(nil); a.ID == b.ID {
		t.Error("expected distinct ids")
	}
}
