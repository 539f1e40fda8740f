// Package theme holds the light/dark/system appearance preference.
package theme

import (
	"fmt"
	"strings"
)

// Theme is the stored appearance preference.
type Theme string

const (
	Light       Theme = "light"
	Dark        Theme = "dark"
	SystemTheme Theme = "system"
)

// Default is used until a stored preference is loaded or set.
const Default = SystemTheme

// Themes returns the accepted preference values.
func Themes() []Theme {
	return []Theme{Light, Dark, SystemTheme}
}

// Parse validates a preference value.
func Parse(s string) (Theme, error) {
	switch t := Theme(strings.ToLower(strings.TrimSpace(s))); t {
	case Light, Dark, SystemTheme:
		return t, nil
	}
	return "", fmt.Errorf("%w: %q", ErrInvalid, s)
}

// Appearance is the light or dark mode reported by the host environment.
type Appearance string

const (
	AppearanceUnknown Appearance = ""
	AppearanceLight   Appearance = "light"
	AppearanceDark    Appearance = "dark"
)

// ParseAppearance reads a host report such as a Sec-CH-Prefers-Color-Scheme
// value. Quoted values are accepted; anything unrecognized is unknown.
func ParseAppearance(s string) Appearance {
	switch Appearance(strings.ToLower(strings.Trim(strings.TrimSpace(s), `"`))) {
	case AppearanceLight:
		return AppearanceLight
	case AppearanceDark:
		return AppearanceDark
	}
	return AppearanceUnknown
}

// Effective reports whether pref renders dark given the host appearance.
// System follows the host; an unknown host appearance renders light.
func Effective(pref Theme, host Appearance) bool {
	switch pref {
	case Dark:
		return true
	case Light:
		return false
	}
	return host == AppearanceDark
}
