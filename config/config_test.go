package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaults(t *testing.T) {
	c, err := New("")
	require.NoError(t, err)
	assert.Equal(t, 10, c.BatchSize())
	assert.False(t, c.SkipP2())
	assert.Equal(t, filepath.Join("data", "niya.db"), c.DBPath())
	assert.Equal(t, 0, c.Target())
	assert.Greater(t, c.Workers(), 0)
}

func TestYAMLFileOverridesDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "niya.yaml")
	require.NoError(t, os.WriteFile(path, []byte("batch_size: 25\nskip_p2: true\ndb_path: custom.db\n"), 0o644))

	c, err := New(path)
	require.NoError(t, err)
	assert.Equal(t, 25, c.BatchSize())
	assert.True(t, c.SkipP2())
	assert.Equal(t, "custom.db", c.DBPath())
}

func TestEnvOverridesYAML(t *testing.T) {
	path := filepath.Join(t.TempDir(), "niya.yaml")
	require.NoError(t, os.WriteFile(path, []byte("batch_size: 25\n"), 0o644))

	t.Setenv("NIYA_BATCH_SIZE", "99")

	c, err := New(path)
	require.NoError(t, err)
	assert.Equal(t, 99, c.BatchSize())
}

func TestMissingFileFallsBackToDefaults(t *testing.T) {
	c, err := New(filepath.Join(t.TempDir(), "does-not-exist.yaml"))
	require.NoError(t, err)
	assert.Equal(t, 10, c.BatchSize())
}

func TestSetters(t *testing.T) {
	c, err := New("")
	require.NoError(t, err)
	c.SetWorkers(4)
	c.SetBatchSize(50)
	c.SetSkipP2(true)
	c.SetDBPath("test.db")
	c.SetTarget(1000)

	assert.Equal(t, 4, c.Workers())
	assert.Equal(t, 50, c.BatchSize())
	assert.True(t, c.SkipP2())
	assert.Equal(t, "test.db", c.DBPath())
	assert.Equal(t, 1000, c.Target())
}
