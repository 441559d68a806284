package testutil

import (
	"bytes"
	"context"
	"io"
	"net/http"
	"strings"
	"testing"
)

func TestFakeDeepgram_RecordsRequests(t *testing.T) {
	fake := NewFakeDeepgram()
	T(t).Setup(fake)

	req, _ := http.NewRequest(http.MethodPost, fake.URL()+"/v1/listen?model=nova-2", bytes.NewReader([]byte("audio")))
	req.Header.Set("Authorization", "Token k")
	resp, err := http.DefaultClient.Do(req)
	if err != nil {
		t.Fatalf("request failed: %v", err)
	}
	body, _ := io.ReadAll(resp.Body)
	resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		t.Errorf("expected 200, got %d", resp.StatusCode)
	}
	if !strings.Contains(string(body), DefaultTranscript) {
		t.Errorf("expected default transcript, got %s", body)
	}
	if fake.Calls() != 1 {
		t.Errorf("expected 1 call, got %d", fake.Calls())
	}

	got, ok := fake.LastRequest()
	if !ok {
		t.Fatal("expected a recorded request")
	}
	if got.Path != "/v1/listen" || got.RawQuery != "model=nova-2" {
		t.Errorf("unexpected target %s?%s", got.Path, got.RawQuery)
	}
	if got.Header.Get("Authorization") != "Token k" || string(got.Body) != "audio" {
		t.Errorf("unexpected request %+v", got)
	}
}

func TestFakeDeepgram_ReplyAndReset(t *testing.T) {
	fake := NewFakeDeepgram()
	T(t).Setup(fake)

	fake.Reply(http.StatusUnauthorized, "nope")
	resp, err := http.Post(fake.URL(), "text/plain", nil)
	if err != nil {
		t.Fatalf("request failed: %v", err)
	}
	resp.Body.Close()
	if resp.StatusCode != http.StatusUnauthorized {
		t.Errorf("expected 401, got %d", resp.StatusCode)
	}

	T(t).Reset(fake)
	if fake.Calls() != 0 || len(fake.Requests()) != 0 {
		t.Errorf("expected reset to clear history")
	}
	if _, ok := fake.LastRequest(); ok {
		t.Error("expected no last request after reset")
	}
}

func TestFakeDeepgram_Responder(t *testing.T) {
	fake := NewFakeDeepgram()
	T(t).Setup(fake)
	fake.RespondWith(func(req RecordedRequest) (int, string) {
		return http.StatusOK, TranscriptBody(string(req.Body))
	})

	resp, err := http.Post(fake.URL(), "audio/webm", strings.NewReader("clip-7"))
	if err != nil {
		t.Fatalf("request failed: %v", err)
	}
	body, _ := io.ReadAll(resp.Body)
	resp.Body.Close()
	if !strings.Contains(string(body), `"transcript":"clip-7"`) {
		t.Errorf("expected echoed transcript, got %s", body)
	}
}

func TestFakeDeepgram_TruncateBody(t *testing.T) {
	fake := NewFakeDeepgram()
	T(t).Setup(fake)
	fake.Reply(http.StatusBadRequest, "short")
	fake.TruncateBody(true)

	resp, err := http.Post(fake.URL(), "audio/webm", nil)
	if err != nil {
		t.Fatalf("request failed: %v", err)
	}
	defer resp.Body.Close()
	if _, err := io.ReadAll(resp.Body); err == nil {
		t.Error("expected body read to fail")
	}
}

func TestFakeDeepgram_Lifecycle(t *testing.T) {
	fake := NewFakeDeepgram()
	if fake.URL() != "" {
		t.Error("expected no URL before start")
	}

	cleanup, err := Setup(fake)
	if err != nil {
		t.Fatalf("Setup() failed: %v", err)
	}
	if err := fake.Start(context.Background()); err == nil {
		t.Error("expected second start to fail")
	}
	url := fake.URL()
	if err := cleanup(); err != nil {
		t.Fatalf("cleanup() failed: %v", err)
	}
	if _, err := http.Get(url); err == nil {
		t.Error("expected stopped fake to refuse connections")
	}
	if err := Teardown(fake); err != nil {
		t.Errorf("second stop should be harmless, got %v", err)
	}
}
