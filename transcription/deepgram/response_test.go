package deepgram

import (
	stderrors "errors"
	"io"
	"strings"
	"testing"

	"github.com/kbukum/voicetext/errors"
	"github.com/kbukum/voicetext/httpclient"
)

func ok(body string) *httpclient.Response {
	return &httpclient.Response{StatusCode: 200, Body: []byte(body)}
}

func TestParseResponse_Transcript(t *testing.T) {
	body := `{"metadata":{"request_id":"r1"},"results":{"channels":[{"alternatives":[{"transcript":"hello world","confidence":0.98}]}]}}`
	got, err := ParseResponse(ok(body))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got != "hello world" {
		t.Errorf("expected %q, got %q", "hello world", got)
	}
}

func TestParseResponse_FirstAlternativeOnly(t *testing.T) {
	body := `{"results":{"channels":[{"alternatives":[{"transcript":"first"},{"transcript":"second"}]},{"alternatives":[{"transcript":"other channel"}]}]}}`
	got, err := ParseResponse(ok(body))
	if err != nil || got != "first" {
		t.Fatalf("expected first alternative, got %q (%v)", got, err)
	}
}

func TestParseResponse_NoTranscript(t *testing.T) {
	tests := []struct {
		name string
		body string
		path string
	}{
		{"no results", `{"metadata":{}}`, "results"},
		{"results null", `{"results":null}`, "results.channels"},
		{"no channels", `{"results":{}}`, "results.channels"},
		{"empty channels", `{"results":{"channels":[]}}`, "results.channels[0]"},
		{"no alternatives", `{"results":{"channels":[{}]}}`, "results.channels[0].alternatives"},
		{"empty alternatives", `{"results":{"channels":[{"alternatives":[]}]}}`, "results.channels[0].alternatives[0]"},
		{"no transcript", `{"results":{"channels":[{"alternatives":[{"confidence":1}]}]}}`, "results.channels[0].alternatives[0].transcript"},
		{"empty transcript", `{"results":{"channels":[{"alternatives":[{"transcript":""}]}]}}`, "results.channels[0].alternatives[0].transcript"},
		{"numeric transcript", `{"results":{"channels":[{"alternatives":[{"transcript":42}]}]}}`, "results.channels[0].alternatives[0].transcript"},
		{"null transcript", `{"results":{"channels":[{"alternatives":[{"transcript":null}]}]}}`, "results.channels[0].alternatives[0].transcript"},
		{"channels not an array", `{"results":{"channels":{"0":{}}}}`, "results.channels[0]"},
		{"top level array", `[]`, "results"},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got, err := ParseResponse(ok(tc.body))
			if got != "" {
				t.Errorf("expected no transcript, got %q", got)
			}
			appErr, isApp := errors.AsAppError(err)
			if !isApp || appErr.Code != errors.ErrCodeNoTranscript {
				t.Fatalf("expected NO_TRANSCRIPT, got %v", err)
			}
			if appErr.Message != "no transcript found in response" {
				t.Errorf("unexpected message %q", appErr.Message)
			}
			if appErr.Details["path"] != tc.path {
				t.Errorf("expected path %q, got %v", tc.path, appErr.Details["path"])
			}
		})
	}
}

func TestParseResponse_InvalidJSON(t *testing.T) {
	helloWorld := `{"results":{"channels":[{"alternatives":[{"transcript":"hello world"}]}]}}`
	for _, body := range []string{"", "not json", `{"results":`, `{} trailing`, helloWorld + "]", helloWorld + "}"} {
		_, err := ParseResponse(ok(body))
		if !errors.Is(err, errors.ErrCodeParse) {
			t.Errorf("body %q: expected PARSE_ERROR, got %v", body, err)
		}
		if appErr, _ := errors.AsAppError(err); appErr != nil && !strings.HasPrefix(appErr.Message, "invalid JSON") {
			t.Errorf("body %q: unexpected message %q", body, appErr.Message)
		}
	}
}

func TestParseResponse_Remote(t *testing.T) {
	tests := []struct {
		name    string
		resp    *httpclient.Response
		message string
	}{
		{
			name:    "unauthorized",
			resp:    &httpclient.Response{StatusCode: 401, Body: []byte(`{"err_code":"INVALID_AUTH"}`)},
			message: `Deepgram API error (401 Unauthorized): {"err_code":"INVALID_AUTH"}`,
		},
		{
			name:    "body is never parsed",
			resp:    &httpclient.Response{StatusCode: 500, Body: []byte("not json at all")},
			message: "Deepgram API error (500 Internal Server Error): not json at all",
		},
		{
			name:    "success-shaped body on error status",
			resp:    &httpclient.Response{StatusCode: 400, Body: []byte(`{"results":{"channels":[{"alternatives":[{"transcript":"hi"}]}]}}`)},
			message: `Deepgram API error (400 Bad Request): {"results":{"channels":[{"alternatives":[{"transcript":"hi"}]}]}}`,
		},
		{
			name:    "unreadable body",
			resp:    &httpclient.Response{StatusCode: 502, BodyErr: io.ErrUnexpectedEOF},
			message: "Deepgram API error (502 Bad Gateway): Unknown error",
		},
		{
			name:    "redirect",
			resp:    &httpclient.Response{StatusCode: 304},
			message: "Deepgram API error (304 Not Modified): ",
		},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got, err := ParseResponse(tc.resp)
			if got != "" {
				t.Errorf("expected no transcript, got %q", got)
			}
			appErr, isApp := errors.AsAppError(err)
			if !isApp || appErr.Code != errors.ErrCodeRemote {
				t.Fatalf("expected REMOTE_ERROR, got %v", err)
			}
			if appErr.Message != tc.message {
				t.Errorf("expected %q, got %q", tc.message, appErr.Message)
			}
			if appErr.Details["status_code"] != tc.resp.StatusCode {
				t.Errorf("expected status detail %d, got %v", tc.resp.StatusCode, appErr.Details["status_code"])
			}
		})
	}
}

func TestParseResponse_Nil(t *testing.T) {
	_, err := ParseResponse(nil)
	if !errors.Is(err, errors.ErrCodeInternal) {
		t.Errorf("expected INTERNAL_ERROR, got %v", err)
	}
	if stderrors.Unwrap(err) == nil {
		t.Error("expected a cause")
	}
}
