package config_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/matt-steen/ball-in-court/pkg/config"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultConfig(t *testing.T) {
	t.Parallel()

	assert := assert.New(t)

	cfg := config.DefaultConfig()

	assert.Equal("info", cfg.LogLevel)
	assert.Equal(1, cfg.Views.TopShort)
	assert.Equal(5, cfg.Views.TopLong)
	assert.Equal("ball-in-court.sqlite", filepath.Base(cfg.DataFile))
	assert.Empty(cfg.Mail.Opener)
}

func TestLoadMissingFileUsesDefaults(t *testing.T) {
	t.Parallel()

	assert := assert.New(t)

	cfg, err := config.Load(filepath.Join(t.TempDir(), "nope.yaml"))
	assert.Nil(err)
	assert.Equal(config.DefaultConfig(), cfg)
}

func TestWriteDefaultThenLoad(t *testing.T) {
	t.Parallel()

	assert := assert.New(t)
	require := require.New(t)

	path := filepath.Join(t.TempDir(), "nested", "config.yaml")
	require.Nil(config.WriteDefault(path))

	cfg, err := config.Load(path)
	require.Nil(err)
	assert.Equal(config.DefaultConfig(), cfg)
}

func TestLoadOverrides(t *testing.T) {
	t.Parallel()

	assert := assert.New(t)
	require := require.New(t)

	path := filepath.Join(t.TempDir(), "config.yaml")
	content := `data_file: /tmp/elsewhere.sqlite
log_level: debug
views:
  top_long: 3
mail:
  opener: ["thunderbird", "-compose"]
`
	require.Nil(os.WriteFile(path, []byte(content), 0o644))

	cfg, err := config.Load(path)
	require.Nil(err)
	assert.Equal("/tmp/elsewhere.sqlite", cfg.DataFile)
	assert.Equal("debug", cfg.LogLevel)
	assert.Equal(1, cfg.Views.TopShort)
	assert.Equal(3, cfg.Views.TopLong)
	assert.Equal([]string{"thunderbird", "-compose"}, cfg.Mail.Opener)
}

func TestLoadRejectsBadValues(t *testing.T) {
	t.Parallel()

	assert := assert.New(t)

	dir := t.TempDir()

	badSize := filepath.Join(dir, "size.yaml")
	assert.Nil(os.WriteFile(badSize, []byte("views:\n  top_short: 0\n"), 0o644))

	_, err := config.Load(badSize)
	assert.NotNil(err)

	badYAML := filepath.Join(dir, "yaml.yaml")
	assert.Nil(os.WriteFile(badYAML, []byte("views: [unclosed\n"), 0o644))

	_, err = config.Load(badYAML)
	assert.NotNil(err)
}
