package app

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewPaths(t *testing.T) {
	p := NewPaths("/data/radix")
	assert.Equal(t, "/data/radix", p.Root)
	assert.Equal(t, filepath.Join("/data/radix", "config.yaml"), p.Config)
	assert.Equal(t, filepath.Join("/data/radix", "history.db"), p.DB)
}

func TestResolveRoot_Precedence(t *testing.T) {
	t.Setenv(EnvHome, "/from/radix-home")
	t.Setenv(EnvAlfredData, "/from/alfred")
	root, err := ResolveRoot()
	require.NoError(t, err)
	assert.Equal(t, "/from/radix-home", root)

	t.Setenv(EnvHome, "")
	root, err = ResolveRoot()
	require.NoError(t, err)
	assert.Equal(t, "/from/alfred", root)
}

func TestResolveRoot_UserConfigDir(t *testing.T) {
	t.Setenv(EnvHome, "")
	t.Setenv(EnvAlfredData, "")
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())
	t.Setenv("HOME", t.TempDir())

	root, err := ResolveRoot()
	require.NoError(t, err)
	assert.Equal(t, "radix", filepath.Base(root))
}

func TestEnsureDirs(t *testing.T) {
	root := filepath.Join(t.TempDir(), "nested", "radix")
	p := NewPaths(root)

	require.NoError(t, p.EnsureDirs())
	require.NoError(t, p.EnsureDirs())

	info, err := os.Stat(root)
	require.NoError(t, err)
	assert.True(t, info.IsDir())
}
