package admin

import (
	"crypto/subtle"
	"errors"
	"time"

	"barberia/utils"

	"golang.org/x/crypto/bcrypt"
)

const (
	TokenSubject = "admin"
	TokenTTL     = 12 * time.Hour
)

var ErrTokensDisabled = errors.New("admin tokens are not enabled")

// Gate guards the admin view with a shared secret. A bcrypt hash, when set,
// replaces the plain password. Signed tokens are accepted only when a token
// secret is configured.
type Gate struct {
	Password     string
	PasswordHash string
	TokenSecret  []byte
	TokenTTL     time.Duration
}

func NewGate(password, passwordHash, tokenSecret string) *Gate {
	g := &Gate{Password: password, PasswordHash: passwordHash, TokenTTL: TokenTTL}
	if tokenSecret != "" {
		g.TokenSecret = []byte(tokenSecret)
	}
	return g
}

func (g *Gate) CheckPassword(password string) bool {
	if password == "" {
		return false
	}
	if g.PasswordHash != "" {
		return bcrypt.CompareHashAndPassword([]byte(g.PasswordHash), []byte(password)) == nil
	}
	if g.Password == "" {
		return false
	}
	return subtle.ConstantTimeCompare([]byte(g.Password), []byte(password)) == 1
}

func (g *Gate) TokensEnabled() bool {
	return len(g.TokenSecret) > 0
}

// IssueToken signs a token for the admin view and returns its expiry.
func (g *Gate) IssueToken() (string, time.Time, error) {
	if !g.TokensEnabled() {
		return "", time.Time{}, ErrTokensDisabled
	}
	ttl := g.TokenTTL
	if ttl <= 0 {
		ttl = TokenTTL
	}
	token, err := utils.GenerateToken(g.TokenSecret, TokenSubject, ttl)
	if err != nil {
		return "", time.Time{}, err
	}
	return token, time.Now().Add(ttl), nil
}

// Authorize accepts the shared secret itself or, when enabled, a valid token.
func (g *Gate) Authorize(credential string) bool {
	if g.CheckPassword(credential) {
		return true
	}
	if !g.TokensEnabled() {
		return false
	}
	sub, err := utils.ExtractIDFromToken(g.TokenSecret, credential)
	return err == nil && sub == TokenSubject
}
