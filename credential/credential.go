// Package credential resolves the API key used to authenticate against the
// transcription provider.
//
// Resolution runs before any network I/O. The returned value is trimmed and
// must never be logged; use logger.CredentialFields to record its length.
package credential

import (
	"context"
	"os"
	"strings"

	"github.com/kbukum/voicetext/errors"
)

// DefaultVariable is the environment variable holding the Deepgram key.
const DefaultVariable = "DEEPGRAM_API_KEY"

// Resolver returns a non-blank credential or a CONFIGURATION_ERROR.
type Resolver func(ctx context.Context) (string, error)

// LookupFunc has the signature of os.LookupEnv.
type LookupFunc func(key string) (string, bool)

// FromEnv reads the named variable from the process environment on every
// call, so .env files loaded after construction are still seen.
func FromEnv(name string) Resolver {
	return FromLookup(name, os.LookupEnv)
}

// FromLookup reads the named variable through lookup.
func FromLookup(name string, lookup LookupFunc) Resolver {
	return func(_ context.Context) (string, error) {
		raw, ok := lookup(name)
		if !ok {
			return "", errors.MissingCredential(name)
		}
		return check(name, raw)
	}
}

// Static returns a resolver for a fixed value. name is only used in error
// messages.
func Static(name, value string) Resolver {
	return func(_ context.Context) (string, error) {
		return check(name, value)
	}
}

// MapLookup returns a LookupFunc backed by a map.
func MapLookup(env map[string]string) LookupFunc {
	return func(key string) (string, bool) {
		v, ok := env[key]
		return v, ok
	}
}

func check(name, raw string) (string, error) {
	value := strings.TrimSpace(raw)
	if value == "" {
		return "", errors.EmptyCredential(name)
	}
	return value, nil
}
