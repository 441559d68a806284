// Package version reports build information for voicetext.
//
// Values are set at link time and fall back to the VCS settings the Go
// toolchain embeds:
//
//	go build -ldflags "-X github.com/kbukum/voicetext/version.Version=1.2.0" ./cmd/voicetext
package version
