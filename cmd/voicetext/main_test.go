package main

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/kbukum/voicetext/testutil"
)

func runCLI(t *testing.T, stdin string, args ...string) (int, string, string) {
	t.Helper()
	var stdout, stderr bytes.Buffer
	code := run(context.Background(), args, strings.NewReader(stdin), &stdout, &stderr)
	return code, stdout.String(), stderr.String()
}

func setupEnv(t *testing.T, key string) (*testutil.FakeDeepgram, string) {
	t.Helper()
	fake := testutil.NewFakeDeepgram()
	testutil.T(t).Setup(fake)
	t.Setenv("DEEPGRAM_BASE_URL", fake.URL())
	t.Setenv("DEEPGRAM_API_KEY", key)

	dir := t.TempDir()
	audio := filepath.Join(dir, "clip.webm")
	if err := os.WriteFile(audio, []byte("webm-bytes"), 0o600); err != nil {
		t.Fatal(err)
	}
	return fake, audio
}

func TestRun_Usage(t *testing.T) {
	tests := []struct {
		name string
		args []string
		code int
	}{
		{"no command", nil, 2},
		{"unknown command", []string{"listen"}, 2},
		{"transcribe without file", []string{"transcribe"}, 2},
		{"help", []string{"help"}, 0},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if code, _, _ := runCLI(t, "", tc.args...); code != tc.code {
				t.Errorf("expected exit %d, got %d", tc.code, code)
			}
		})
	}
}

func TestRun_Version(t *testing.T) {
	code, stdout, _ := runCLI(t, "", "version")
	if code != 0 || !strings.HasPrefix(stdout, "voicetext ") {
		t.Errorf("unexpected version output %d %q", code, stdout)
	}
}

func TestRun_Transcribe(t *testing.T) {
	fake, audio := setupEnv(t, "cli-key")
	missingEnv := filepath.Join(t.TempDir(), "none.env")

	code, stdout, stderr := runCLI(t, "", "transcribe", "--env-file", missingEnv, audio)
	if code != 0 {
		t.Fatalf("expected success, got %d: %s", code, stderr)
	}
	if stdout != "hello world\n" {
		t.Errorf("unexpected stdout %q", stdout)
	}
	req, _ := fake.LastRequest()
	if string(req.Body) != "webm-bytes" || req.Header.Get("Authorization") != "Token cli-key" {
		t.Errorf("unexpected upload %+v", req)
	}
}

func TestRun_TranscribeStdin(t *testing.T) {
	fake, _ := setupEnv(t, "cli-key")

	code, stdout, _ := runCLI(t, "piped", "transcribe", "--env-file", filepath.Join(t.TempDir(), "none.env"), "-")
	if code != 0 || stdout != "hello world\n" {
		t.Fatalf("unexpected result %d %q", code, stdout)
	}
	if req, _ := fake.LastRequest(); string(req.Body) != "piped" {
		t.Errorf("expected stdin uploaded, got %q", req.Body)
	}
}

func TestRun_TranscribeFailures(t *testing.T) {
	t.Run("empty credential", func(t *testing.T) {
		fake, audio := setupEnv(t, "   ")
		code, stdout, stderr := runCLI(t, "", "transcribe", "--env-file", filepath.Join(t.TempDir(), "none.env"), audio)
		if code != 1 || stdout != "" {
			t.Fatalf("expected exit 1 without output, got %d %q", code, stdout)
		}
		if !strings.Contains(stderr, "DEEPGRAM_API_KEY is empty") {
			t.Errorf("unexpected stderr %q", stderr)
		}
		if fake.Calls() != 0 {
			t.Errorf("expected no upload, got %d", fake.Calls())
		}
	})

	t.Run("remote error", func(t *testing.T) {
		fake, audio := setupEnv(t, "cli-key")
		fake.Reply(402, `{"err_msg":"insufficient credits"}`)
		code, _, stderr := runCLI(t, "", "transcribe", "--env-file", filepath.Join(t.TempDir(), "none.env"), audio)
		if code != 1 {
			t.Fatalf("expected exit 1, got %d", code)
		}
		if !strings.Contains(stderr, `Deepgram API error (402 Payment Required): {"err_msg":"insufficient credits"}`) {
			t.Errorf("unexpected stderr %q", stderr)
		}
		if strings.Contains(stderr, "cli-key") {
			t.Error("credential leaked to stderr")
		}
	})

	t.Run("missing file", func(t *testing.T) {
		setupEnv(t, "cli-key")
		code, _, _ := runCLI(t, "", "transcribe", "--env-file", filepath.Join(t.TempDir(), "none.env"), "/does/not/exist.webm")
		if code != 1 {
			t.Errorf("expected exit 1, got %d", code)
		}
	})
}
