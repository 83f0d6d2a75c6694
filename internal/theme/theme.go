// Package theme models the ambient light/dark color mode as an explicit value.
package theme

import (
	"errors"
	"fmt"
	"net/http"
	"strings"
)

// ColorMode is the user's display preference.
type ColorMode string

const (
	Light ColorMode = "light"
	Dark  ColorMode = "dark"
)

// CookieName is the cookie carrying the visitor's chosen color mode.
const CookieName = "color-mode"

// ErrUnknownColorMode is returned when a value is neither light nor dark.
var ErrUnknownColorMode = errors.New("unknown color mode")

// Modes returns both color modes, the default first.
func Modes() []ColorMode {
	return []ColorMode{Light, Dark}
}

// ParseColorMode parses a color mode name.
func ParseColorMode(s string) (ColorMode, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case string(Light):
		return Light, nil
	case string(Dark):
		return Dark, nil
	}
	return "", fmt.Errorf("%w: %q", ErrUnknownColorMode, s)
}

// Cookie returns the cookie that remembers mode across visits.
func Cookie(mode ColorMode) *http.Cookie {
	return &http.Cookie{
		Name:     CookieName,
		Value:    string(mode),
		Path:     "/",
		MaxAge:   365 * 24 * 60 * 60,
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	}
}

// Select returns the variant that matches mode. Anything other than Dark
// selects the light variant.
func Select[T any](mode ColorMode, light, dark T) T {
	if mode == Dark {
		return dark
	}
	return light
}

// FromRequest reads the ambient color mode of a request: the color-mode
// cookie wins, then the Sec-CH-Prefers-Color-Scheme client hint.
func FromRequest(r *http.Request) ColorMode {
	if c, err := r.Cookie(CookieName); err == nil {
		if mode, err := ParseColorMode(c.Value); err == nil {
			return mode
		}
	}
	hint := strings.Trim(r.Header.Get("Sec-CH-Prefers-Color-Scheme"), `" `)
	if mode, err := ParseColorMode(hint); err == nil {
		return mode
	}
	return Light
}
