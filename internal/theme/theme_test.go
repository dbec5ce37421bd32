package theme

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testLogger() zerolog.Logger {
	return zerolog.New(os.Stderr).Level(zerolog.Disabled)
}

func TestController_ResolveOrder(t *testing.T) {
	tests := []struct {
		name    string
		saved   string
		hasSave bool
		osLight bool
		want    Theme
	}{
		{name: "saved light wins over dark OS", saved: "light", hasSave: true, osLight: false, want: Light},
		{name: "saved dark wins over light OS", saved: "dark", hasSave: true, osLight: true, want: Dark},
		{name: "no save, light OS", osLight: true, want: Light},
		{name: "no save, dark OS", osLight: false, want: Dark},
		{name: "invalid save falls through to OS", saved: "sepia", hasSave: true, osLight: true, want: Light},
		{name: "invalid save falls through to dark", saved: "", hasSave: true, osLight: false, want: Dark},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			store := NewMemStore()
			if tt.hasSave {
				require.NoError(t, store.Set(PreferenceKey, tt.saved))
			}
			c := NewController(store, func() bool { return tt.osLight }, testLogger())
			assert.Equal(t, tt.want, c.Current())
		})
	}
}

func TestController_NilProbeDefaultsDark(t *testing.T) {
	c := NewController(NewMemStore(), nil, testLogger())
	assert.Equal(t, Dark, c.Current())
}

func TestController_Toggle(t *testing.T) {
	store := NewMemStore()
	c := NewController(store, func() bool { return false }, testLogger())
	require.Equal(t, Dark, c.Current())

	res := c.Toggle()
	assert.Equal(t, Light, res.Theme)
	assert.Equal(t, "Light theme enabled", res.Announcement)
	assert.False(t, res.Pressed)

	saved, ok := store.Get(PreferenceKey)
	require.True(t, ok)
	assert.Equal(t, "light", saved)

	res = c.Toggle()
	assert.Equal(t, Dark, res.Theme)
	assert.Equal(t, "Dark theme enabled", res.Announcement)
	assert.True(t, res.Pressed)

	saved, _ = store.Get(PreferenceKey)
	assert.Equal(t, "dark", saved)
}

type failingStore struct{}

func (failingStore) Get(string) (string, bool) { return "", false }
func (failingStore) Set(string, string) error  { return errors.New("disk full") }

func TestController_ToggleSurvivesStoreFailure(t *testing.T) {
	c := NewController(failingStore{}, func() bool { return false }, testLogger())
	require.Equal(t, Dark, c.Current())

	res := c.Toggle()
	assert.Equal(t, Light, res.Theme, "in-memory theme flips despite write failure")
	assert.Equal(t, Light, c.Current())
}

func TestController_SetCurrent(t *testing.T) {
	c := NewController(NewMemStore(), nil, testLogger())

	c.SetCurrent(Light)
	assert.Equal(t, Light, c.Current())

	c.SetCurrent(Theme("sepia"))
	assert.Equal(t, Light, c.Current(), "invalid override ignored")
}

func TestFileStore_RoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "prefs", "preferences.yaml")

	s, err := OpenFileStore(path)
	require.NoError(t, err, "missing file is not an error")

	_, ok := s.Get(PreferenceKey)
	assert.False(t, ok)

	require.NoError(t, s.Set(PreferenceKey, "dark"))

	reopened, err := OpenFileStore(path)
	require.NoError(t, err)
	v, ok := reopened.Get(PreferenceKey)
	require.True(t, ok)
	assert.Equal(t, "dark", v)
}

func TestFileStore_RejectsMalformedFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "preferences.yaml")
	require.NoError(t, os.WriteFile(path, []byte("[:broken"), 0o600))

	_, err := OpenFileStore(path)
	assert.Error(t, err)
}
