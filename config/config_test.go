package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/blockme/schemread/decompress"
	"github.com/blockme/schemread/schematic"
)

func writeFile(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "schemread.yaml")
	require.NoError(t, os.WriteFile(path, []byte(body), 0o644))
	return path
}

func TestLoad_OverridesDefaults(t *testing.T) {
	c, err := Load(writeFile(t, "max_volume: 1000\nlegacy_fallthrough: true\nworkers: 2\n"))
	require.NoError(t, err)
	assert.Equal(t, 1000, c.MaxVolume)
	assert.True(t, c.LegacyFallthrough)
	assert.Equal(t, 2, c.Workers)
	assert.Equal(t, Default().CacheSize, c.CacheSize)
	assert.Equal(t, Default().MaxDepth, c.MaxDepth)

	opts := c.Options(nil)
	assert.Equal(t, schematic.Options{MaxVolume: 1000, MaxDepth: c.MaxDepth, LegacyFallthrough: true}, opts)
	assert.Equal(t, decompress.Auto{MaxBytes: decompress.DefaultMaxBytes}, c.Decompressor())
}

func TestLoad_Errors(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "missing.yaml"))
	assert.ErrorIs(t, err, os.ErrNotExist)

	_, err = Load(writeFile(t, "max_volume: [1\n"))
	assert.Error(t, err)

	_, err = Load(writeFile(t, "workers: 0\n"))
	assert.ErrorContains(t, err, "workers must be at least 1")
}

func TestDefault_MatchesDecoderDefaults(t *testing.T) {
	d := schematic.DefaultOptions()
	opts := Default().Options(nil)
	assert.Equal(t, d.MaxVolume, opts.MaxVolume)
	assert.Equal(t, d.MaxDepth, opts.MaxDepth)
	assert.False(t, opts.LegacyFallthrough)
	require.NoError(t, Default().Validate())
}
