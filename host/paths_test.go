package host

import (
	"path/filepath"
	"runtime"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDataDirResolver(t *testing.T) {
	if runtime.GOOS != "linux" {
		t.Skip("XDG_CONFIG_HOME is only honoured on Linux")
	}

	base := t.TempDir()
	t.Setenv("XDG_CONFIG_HOME", base)

	dir, err := DataDirResolver{Identifier: "com.example.notes"}.AppDataDir()
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(base, "com.example.notes"), dir)
}

func TestDataDirResolver_Unavailable(t *testing.T) {
	t.Run("empty identifier", func(t *testing.T) {
		_, err := DataDirResolver{}.AppDataDir()
		assert.ErrorIs(t, err, ErrDataDirUnavailable)
	})

	t.Run("no config dir", func(t *testing.T) {
		if runtime.GOOS != "linux" {
			t.Skip("environment lookup differs per platform")
		}
		t.Setenv("XDG_CONFIG_HOME", "")
		t.Setenv("HOME", "")

		_, err := DataDirResolver{Identifier: "com.example.notes"}.AppDataDir()
		assert.ErrorIs(t, err, ErrDataDirUnavailable)
	})
}

func TestStaticDir(t *testing.T) {
	dir := t.TempDir()

	got, err := StaticDir(dir).AppDataDir()
	require.NoError(t, err)
	assert.Equal(t, dir, got)

	_, err = StaticDir("").AppDataDir()
	assert.ErrorIs(t, err, ErrDataDirUnavailable)
}

func TestStaticDir_Relative(t *testing.T) {
	got, err := StaticDir("data").AppDataDir()
	require.NoError(t, err)
	assert.True(t, filepath.IsAbs(got))
	assert.Equal(t, "data", filepath.Base(got))
}
