// Package theme resolves and persists the light/dark appearance preference.
//
// The preference is a single string value behind an explicit PreferenceStore
// interface rather than ambient global state; a Controller owns the current
// theme for the lifetime of the process.
package theme

import (
	"github.com/muesli/termenv"
	"github.com/rs/zerolog"
)

// Theme is an appearance preference value.
type Theme string

// Valid theme values.
const (
	Light Theme = "light"
	Dark  Theme = "dark"
)

// PreferenceKey is the stored preference name.
const PreferenceKey = "theme"

// PreferenceStore provides durable storage for named string preferences.
type PreferenceStore interface {
	// Get returns the stored value for key and whether one exists.
	Get(key string) (string, bool)

	// Set durably stores value under key.
	Set(key, value string) error
}

// ToggleResult describes the outcome of a theme toggle.
type ToggleResult struct {
	Theme Theme

	// Announcement is the status text surfaced for assistive output,
	// e.g. "Dark theme enabled".
	Announcement string

	// Pressed is the toggle control's pressed state (pressed means dark).
	Pressed bool
}

// Controller owns the current theme value. It is created once at startup
// with a store and an OS light-background probe.
type Controller struct {
	store   PreferenceStore
	osLight func() bool
	current Theme
	logger  zerolog.Logger
}

// NewController builds a Controller and resolves the initial theme:
// the stored preference when present and valid, otherwise light when the
// OS reports a light background, otherwise dark.
func NewController(store PreferenceStore, osLight func() bool, logger zerolog.Logger) *Controller {
	c := &Controller{store: store, osLight: osLight, logger: logger}
	c.current = c.resolve()
	return c
}

// OSLightBackground probes the terminal for a light background. It is the
// default osLight probe for NewController.
func OSLightBackground() bool {
	return !termenv.HasDarkBackground()
}

// Current returns the theme in effect.
func (c *Controller) Current() Theme {
	return c.current
}

// SetCurrent overrides the theme for this run without persisting it.
func (c *Controller) SetCurrent(t Theme) {
	if t == Light || t == Dark {
		c.current = t
	}
}

// Toggle flips the theme, writes the new value through the store, and
// returns the new theme with its announcement and pressed state. A failed
// store write is logged and the in-memory theme still flips; appearance
// must not get stuck on a disk error.
func (c *Controller) Toggle() ToggleResult {
	next := Dark
	if c.current == Dark {
		next = Light
	}
	if err := c.store.Set(PreferenceKey, string(next)); err != nil {
		c.logger.Warn().Err(err).Str("theme", string(next)).Msg("could not persist theme preference")
	}
	c.current = next

	announcement := "Light theme enabled"
	if next == Dark {
		announcement = "Dark theme enabled"
	}
	return ToggleResult{
		Theme:        next,
		Announcement: announcement,
		Pressed:      next == Dark,
	}
}

// resolve computes the initial theme. The resolved fallback is always
// applied, including when no preference is stored.
func (c *Controller) resolve() Theme {
	if saved, ok := c.store.Get(PreferenceKey); ok {
		switch Theme(saved) {
		case Light, Dark:
			return Theme(saved)
		default:
			c.logger.Debug().Str("value", saved).Msg("ignoring invalid stored theme")
		}
	}
	if c.osLight != nil && c.osLight() {
		return Light
	}
	return Dark
}
