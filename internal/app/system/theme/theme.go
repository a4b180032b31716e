// Package theme stores the visitor's light/dark preference in a signed
// cookie session and exposes it on the request context.
package theme

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"strings"

	"github.com/gorilla/securecookie"
	"github.com/gorilla/sessions"
	"go.uber.org/zap"
)

// Theme is the visitor's color scheme preference.
type Theme string

const (
	Light  Theme = "light"
	Dark   Theme = "dark"
	System Theme = "system" // follow prefers-color-scheme
)

// Default applies when no preference has been saved.
const Default = System

const themeKey = "theme"

// ErrInvalidTheme is returned by Parse for values other than light/dark/system.
var ErrInvalidTheme = errors.New("invalid theme")

// Parse accepts "light", "dark" or "system" (case-insensitive).
func Parse(v string) (Theme, error) {
	switch t := Theme(strings.ToLower(strings.TrimSpace(v))); t {
	case Light, Dark, System:
		return t, nil
	}
	return "", fmt.Errorf("%w: %q", ErrInvalidTheme, v)
}

// Next cycles light -> dark -> system -> light for the toggle button.
func (t Theme) Next() Theme {
	switch t {
	case Light:
		return Dark
	case Dark:
		return System
	default:
		return Light
	}
}

// HTMLClass is the class placed on <html>; system leaves it to CSS media queries.
func (t Theme) HTMLClass() string {
	switch t {
	case Light, Dark:
		return string(t)
	}
	return ""
}

func (t Theme) String() string { return string(t) }

type ctxKey struct{}

// FromContext returns the theme carried by ctx, or Default.
func FromContext(ctx context.Context) Theme {
	if t, ok := ctx.Value(ctxKey{}).(Theme); ok {
		return t
	}
	return Default
}

// FromRequest is FromContext(r.Context()).
func FromRequest(r *http.Request) Theme {
	return FromContext(r.Context())
}

// WithTheme returns a shallow copy of r carrying t. Used by Load and tests.
func WithTheme(r *http.Request, t Theme) *http.Request {
	return r.WithContext(context.WithValue(r.Context(), ctxKey{}, t))
}

// Manager reads and writes the preference cookie.
type Manager struct {
	store *sessions.CookieStore
	name  string
	log   *zap.Logger
}

// NewManager builds a cookie-backed Manager. secure marks cookies Secure
// (production over HTTPS).
func NewManager(sessionKey, name string, secure bool, logger *zap.Logger) (*Manager, error) {
	if sessionKey == "" {
		return nil, fmt.Errorf("session key is empty; provide 32+ random chars")
	}
	if len(sessionKey) < 32 {
		logger.Warn("session key is short; 32+ chars recommended",
			zap.Int("length", len(sessionKey)))
	}
	if name == "" {
		name = "activityboard-theme"
	}

	store := sessions.NewCookieStore([]byte(sessionKey))
	store.Options = &sessions.Options{
		Path:     "/",
		MaxAge:   365 * 24 * 60 * 60,
		Secure:   secure,
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	}

	return &Manager{store: store, name: name, log: logger}, nil
}

// Load is middleware that puts the saved theme (or Default) on the context.
// A cookie that fails signature checks is ignored and logged.
func (m *Manager) Load(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		next.ServeHTTP(w, WithTheme(r, m.Current(r)))
	})
}

// Current reads the theme from the request cookie.
func (m *Manager) Current(r *http.Request) Theme {
	sess, err := m.store.Get(r, m.name)
	if err != nil {
		var scErr securecookie.Error
		if errors.As(err, &scErr) && scErr.IsDecode() {
			m.log.Info("theme cookie rejected", zap.Error(err))
		} else {
			m.log.Warn("theme session read failed", zap.Error(err))
		}
		return Default
	}
	raw, _ := sess.Values[themeKey].(string)
	t, err := Parse(raw)
	if err != nil {
		return Default
	}
	return t
}

// Save writes t to the preference cookie.
func (m *Manager) Save(w http.ResponseWriter, r *http.Request, t Theme) error {
	sess, err := m.store.Get(r, m.name)
	if err != nil && sess == nil {
		return err
	}
	sess.Values[themeKey] = string(t)
	return sess.Save(r, w)
}
