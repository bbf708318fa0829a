package auth

import (
	"errors"
	"net/http"
	"time"

	"github.com/gorilla/securecookie"
	"github.com/labstack/echo/v4"
)

var (
	ErrNoSessionCookie      = errors.New("missing session cookie")
	ErrInvalidSessionCookie = errors.New("invalid session cookie")
)

// CookieManager binds session tokens to a signed, http-only cookie. All
// writes use the same name, path and domain: user agents only replace or
// remove a cookie when those attributes match exactly.
type CookieManager struct {
	name   string
	domain string
	ttl    time.Duration
	codec  *securecookie.SecureCookie
}

// NewCookieManager returns a CookieManager signing cookie values with
// secret. A zero ttl falls back to DefaultTokenTTL.
func NewCookieManager(name, domain, secret string, ttl time.Duration) *CookieManager {
	if ttl == 0 {
		ttl = DefaultTokenTTL
	}
	return &CookieManager{
		name:   name,
		domain: domain,
		ttl:    ttl,
		codec:  securecookie.New([]byte(secret), nil),
	}
}

// Name returns the configured cookie name.
func (m *CookieManager) Name() string { return m.name }

// Attach signs the session token and sets it as the session cookie with an
// absolute expiry of now + TTL.
func (m *CookieManager) Attach(c echo.Context, token string) error {
	signed, err := m.codec.Encode(m.name, token)
	if err != nil {
		return err
	}

	c.SetCookie(&http.Cookie{
		Name:     m.name,
		Value:    signed,
		Path:     "/",
		Domain:   m.domain,
		Expires:  time.Now().Add(m.ttl),
		HttpOnly: true,
	})
	return nil
}

// Clear issues a cookie-clearing instruction with the same name, path and
// domain used by Attach.
func (m *CookieManager) Clear(c echo.Context) {
	c.SetCookie(&http.Cookie{
		Name:     m.name,
		Value:    "",
		Path:     "/",
		Domain:   m.domain,
		Expires:  time.Unix(0, 0),
		MaxAge:   -1,
		HttpOnly: true,
	})
}

// Token extracts the session cookie from the request and verifies its
// signature, returning the raw session token it wraps.
func (m *CookieManager) Token(c echo.Context) (string, error) {
	ck, err := c.Cookie(m.name)
	if err != nil || ck.Value == "" {
		return "", ErrNoSessionCookie
	}

	var token string
	if err := m.codec.Decode(m.name, ck.Value, &token); err != nil {
		return "", ErrInvalidSessionCookie
	}
	if token == "" {
		return "", ErrInvalidSessionCookie
	}
	return token, nil
}
