package state

import (
	"path/filepath"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/require"

	"github.com/Integra-layer/chain-id-card/params"
)

func TestLevelDBPreferencesRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "prefs")

	prefs, err := OpenLevelDBPreferences(path)
	require.NoError(t, err)

	_, ok, err := prefs.Get(ThemeKey)
	require.NoError(t, err)
	require.False(t, ok)

	require.NoError(t, prefs.Put(ThemeKey, "dark"))
	require.NoError(t, prefs.Close())

	prefs, err = OpenLevelDBPreferences(path)
	require.NoError(t, err)
	defer prefs.Close()

	v, ok, err := prefs.Get(ThemeKey)
	require.NoError(t, err)
	require.True(t, ok)
	require.Equal(t, "dark", v)
}

func TestThemeSurvivesRestart(t *testing.T) {
	path := filepath.Join(t.TempDir(), "prefs")

	prefs, err := OpenLevelDBPreferences(path)
	require.NoError(t, err)
	c := NewController(params.Default(), prefs, nil, nil, zerolog.Nop())
	c.ToggleTheme()
	require.NoError(t, prefs.Close())

	prefs, err = OpenLevelDBPreferences(path)
	require.NoError(t, err)
	defer prefs.Close()
	c = NewController(params.Default(), prefs, nil, nil, zerolog.Nop())
	require.Equal(t, ViewState{Network: params.Mainnet, Theme: Dark}, c.State())
}
