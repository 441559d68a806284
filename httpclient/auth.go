package httpclient

import "net/http"

// AuthType identifies the authentication method.
type AuthType int

const (
	// AuthNone disables authentication.
	AuthNone AuthType = iota
	// AuthToken uses the "Token" authorization scheme (Deepgram).
	AuthToken
)

// AuthConfig configures request authentication.
type AuthConfig struct {
	// Type is the authentication method.
	Type AuthType
	// Token is the credential for AuthToken.
	Token string
}

// TokenAuth creates an auth config sending "Authorization: Token <token>".
func TokenAuth(token string) *AuthConfig {
	return &AuthConfig{Type: AuthToken, Token: token}
}

// String never includes the credential.
func (a *AuthConfig) String() string {
	if a == nil || a.Type != AuthToken {
		return "none"
	}
	return "token"
}

func (a *AuthConfig) apply(req *http.Request) {
	if a == nil || a.Type != AuthToken {
		return
	}
	req.Header.Set("Authorization", "Token "+a.Token)
}
