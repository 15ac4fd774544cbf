package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestDefaults(t *testing.T) {
	c := Default()
	require.True(t, c.Archive.Enabled)
	require.Equal(t, "archive.db", filepath.Base(c.Archive.Path))
	require.Equal(t, 100*time.Millisecond, c.Timing.Tick)
	require.Equal(t, time.Second, c.Timing.SubmitDelay)
	require.Equal(t, 3*time.Second, c.Timing.Flash)
	require.Equal(t, 500*time.Millisecond, c.Timing.Blank)
	require.Equal(t, 5*time.Second, c.Timing.Patience)
	require.Equal(t, ":2222", c.SSH.Addr)
	require.Equal(t, "info", c.Log.Level)
	require.NoError(t, c.Validate())
}

func TestLoadFromFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.toml")
	data := []byte(`
[archive]
enabled = false

[timing]
tick = "50ms"
submit_delay = "250ms"

[ssh]
addr = "127.0.0.1:2323"
`)
	require.NoError(t, os.WriteFile(path, data, 0o644))

	c, err := Load(path)
	require.NoError(t, err)
	require.False(t, c.Archive.Enabled)
	require.Equal(t, 50*time.Millisecond, c.Timing.Tick)
	require.Equal(t, 250*time.Millisecond, c.Timing.SubmitDelay)
	require.Equal(t, 3*time.Second, c.Timing.Flash)
	require.Equal(t, "127.0.0.1:2323", c.SSH.Addr)
}

func TestLoadEnvOverride(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.toml")
	require.NoError(t, os.WriteFile(path, []byte("[log]\nlevel = \"warn\"\n"), 0o644))
	t.Setenv("GREYARCHIVE_LOG_LEVEL", "debug")
	t.Setenv("GREYARCHIVE_TIMING_FLASH", "1s")

	c, err := Load(path)
	require.NoError(t, err)
	require.Equal(t, "debug", c.Log.Level)
	require.Equal(t, time.Second, c.Timing.Flash)
}

func TestLoadMissingExplicitFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "nope.toml"))
	require.Error(t, err)
}

func TestLoadWithoutAnyFile(t *testing.T) {
	t.Setenv("HOME", t.TempDir())
	t.Setenv("GREYARCHIVE_CONFIG", "")
	c, err := Load("")
	require.NoError(t, err)
	require.Equal(t, time.Second, c.Timing.SubmitDelay)
}

func TestValidate(t *testing.T) {
	c := Default()
	c.Timing.Tick = 0
	require.Error(t, c.Validate())

	c = Default()
	c.Timing.SubmitDelay = -time.Second
	require.Error(t, c.Validate())

	c = Default()
	c.Archive.Path = " "
	require.Error(t, c.Validate())

	c.Archive.Enabled = false
	require.NoError(t, c.Validate())
}
