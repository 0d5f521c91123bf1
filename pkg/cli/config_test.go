package cli

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestActiveProfile(t *testing.T) {
	cfg := &UserConfig{
		CurrentProfile: "dev",
		Profiles: map[string]Profile{
			"dev":  {Host: "http://localhost:8080"},
			"prod": {Host: "https://facade.example", Token: "secret"},
		},
	}

	t.Run("current_profile_by_default", func(t *testing.T) {
		p := cfg.ActiveProfile("")
		assert.Equal(t, "http://localhost:8080", p.Host)
	})

	t.Run("override_selects_named_profile", func(t *testing.T) {
		p := cfg.ActiveProfile("prod")
		assert.Equal(t, "https://facade.example", p.Host)
	})

	t.Run("unknown_profile_is_empty", func(t *testing.T) {
		assert.Equal(t, Profile{}, cfg.ActiveProfile("staging"))
	})
}

func TestSaveLoadUserConfig(t *testing.T) {
	t.Setenv("HOME", t.TempDir())

	_, err := LoadUserConfig()
	require.Error(t, err, "no config yet")

	in := &UserConfig{
		CurrentProfile: "dev",
		Profiles: map[string]Profile{
			"dev": {Host: "http://localhost:8080", Output: "json"},
		},
	}
	require.NoError(t, SaveUserConfig(in))

	out, err := LoadUserConfig()
	require.NoError(t, err)
	assert.Equal(t, "dev", out.CurrentProfile)
	assert.Equal(t, "http://localhost:8080", out.Profiles["dev"].Host)
	assert.Equal(t, "json", out.Profiles["dev"].Output)
}
