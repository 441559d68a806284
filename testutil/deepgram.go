package testutil

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/http/httptest"
	"strconv"
	"sync"
	"sync/atomic"
)

// DefaultTranscript is what a fresh FakeDeepgram transcribes every upload to.
const DefaultTranscript = "hello world"

// RecordedRequest is one request received by FakeDeepgram.
type RecordedRequest struct {
	Method   string
	Path     string
	RawQuery string
	Header   http.Header
	Body     []byte
}

// Responder computes the reply for a request. It overrides Reply.
type Responder func(req RecordedRequest) (status int, body string)

// FakeDeepgram serves /v1/listen from an httptest.Server.
type FakeDeepgram struct {
	mu          sync.Mutex
	server      *httptest.Server
	requests    []RecordedRequest
	status      int
	body        string
	contentType string
	responder   Responder
	truncate    bool

	calls atomic.Int64
}

// NewFakeDeepgram creates a fake that is not yet listening.
func NewFakeDeepgram() *FakeDeepgram {
	f := &FakeDeepgram{}
	f.resetLocked()
	return f
}

// Name implements TestComponent.
func (f *FakeDeepgram) Name() string { return "fake-deepgram" }

// Start begins listening on a loopback port.
func (f *FakeDeepgram) Start(_ context.Context) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.server != nil {
		return fmt.Errorf("%s already started", f.Name())
	}
	f.server = httptest.NewServer(http.HandlerFunc(f.handle))
	return nil
}

// Stop closes the listener. Later uploads fail at the transport.
func (f *FakeDeepgram) Stop(_ context.Context) error {
	f.mu.Lock()
	srv := f.server
	f.mu.Unlock()
	if srv != nil {
		srv.Close()
	}
	return nil
}

// Reset clears recorded requests and restores the default reply.
func (f *FakeDeepgram) Reset(_ context.Context) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.resetLocked()
	f.calls.Store(0)
	return nil
}

func (f *FakeDeepgram) resetLocked() {
	f.requests = nil
	f.status = http.StatusOK
	f.body = TranscriptBody(DefaultTranscript)
	f.contentType = "application/json"
	f.responder = nil
	f.truncate = false
}

// URL returns the base URL to use as deepgram.Config.BaseURL.
func (f *FakeDeepgram) URL() string {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.server == nil {
		return ""
	}
	return f.server.URL
}

// Reply sets a fixed status and body for every following request.
func (f *FakeDeepgram) Reply(status int, body string) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.status, f.body, f.responder = status, body, nil
}

// RespondWith computes each reply from the request.
func (f *FakeDeepgram) RespondWith(r Responder) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.responder = r
}

// ContentType sets the reply Content-Type.
func (f *FakeDeepgram) ContentType(ct string) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.contentType = ct
}

// TruncateBody makes the server promise more body bytes than it sends, so
// reading the reply fails on the client side.
func (f *FakeDeepgram) TruncateBody(on bool) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.truncate = on
}

// Calls returns the number of requests received.
func (f *FakeDeepgram) Calls() int { return int(f.calls.Load()) }

// Requests returns a copy of every recorded request in arrival order.
func (f *FakeDeepgram) Requests() []RecordedRequest {
	f.mu.Lock()
	defer f.mu.Unlock()
	out := make([]RecordedRequest, len(f.requests))
	copy(out, f.requests)
	return out
}

// LastRequest returns the most recent request.
func (f *FakeDeepgram) LastRequest() (RecordedRequest, bool) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if len(f.requests) == 0 {
		return RecordedRequest{}, false
	}
	return f.requests[len(f.requests)-1], true
}

func (f *FakeDeepgram) handle(w http.ResponseWriter, r *http.Request) {
	f.calls.Add(1)
	body, _ := io.ReadAll(r.Body)
	rec := RecordedRequest{
		Method:   r.Method,
		Path:     r.URL.Path,
		RawQuery: r.URL.RawQuery,
		Header:   r.Header.Clone(),
		Body:     body,
	}

	f.mu.Lock()
	f.requests = append(f.requests, rec)
	status, reply, ct, responder, truncate := f.status, f.body, f.contentType, f.responder, f.truncate
	f.mu.Unlock()

	if responder != nil {
		status, reply = responder(rec)
	}

	if ct != "" {
		w.Header().Set("Content-Type", ct)
	}
	if truncate {
		w.Header().Set("Content-Length", strconv.Itoa(len(reply)+64))
	}
	w.WriteHeader(status)
	_, _ = io.WriteString(w, reply)
}

// TranscriptBody renders a listen reply whose first alternative carries text.
func TranscriptBody(text string) string {
	doc := map[string]any{
		"metadata": map[string]any{"request_id": "fake", "channels": 1},
		"results": map[string]any{
			"channels": []any{
				map[string]any{
					"alternatives": []any{
						map[string]any{"transcript": text, "confidence": 0.99},
					},
				},
			},
		},
	}
	b, err := json.Marshal(doc)
	if err != nil {
		panic(err)
	}
	return string(b)
}

var _ TestComponent = (*FakeDeepgram)(nil)
