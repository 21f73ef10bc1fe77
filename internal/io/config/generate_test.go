package config_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	ioconfig "github.com/epitools/covidtrends/internal/io/config"
	"github.com/epitools/covidtrends/pkg/config"
)

func TestGenerateDefaultConfig(t *testing.T) {
	tmp := t.TempDir()
	t.Setenv("HOME", tmp)

	path, err := ioconfig.GenerateDefaultConfig()
	require.NoError(t, err)
	assert.Equal(t,
		filepath.Join(tmp, ".config", "covidtrends", "covidtrends.yaml"),
		path)

	body, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(body), "covidtrends configuration file")
	assert.Contains(t, string(body), "url:")
	assert.Contains(t, string(body), "countries:")

	// Generated file loads back to defaults.
	res, err := ioconfig.Load(path)
	require.NoError(t, err)
	assert.Equal(t, config.New(), res.Config)
}

func TestGenerateDoesNotOverwrite(t *testing.T) {
	tmp := t.TempDir()
	t.Setenv("HOME", tmp)

	_, err := ioconfig.GenerateDefaultConfig()
	require.NoError(t, err)

	_, err = ioconfig.GenerateDefaultConfig()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "already exists")
}

func TestConfigFileExists(t *testing.T) {
	tmp := t.TempDir()
	t.Chdir(tmp)
	t.Setenv("HOME", tmp)

	exists, err := ioconfig.ConfigFileExists()
	require.NoError(t, err)
	assert.False(t, exists)

	_, err = ioconfig.GenerateDefaultConfig()
	require.NoError(t, err)

	exists, err = ioconfig.ConfigFileExists()
	require.NoError(t, err)
	assert.True(t, exists)
}
