package main

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/heorconnect/heor-connect/internal/model"

	"github.com/spf13/pflag"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func isolateHome(t *testing.T) string {
	t.Helper()
	home := t.TempDir()
	t.Setenv("HOME", home)
	return home
}

func writeFile(t *testing.T, path, body string) string {
	t.Helper()
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0o755))
	require.NoError(t, os.WriteFile(path, []byte(body), 0o644))
	return path
}

func TestLoadConfig_Defaults(t *testing.T) {
	home := isolateHome(t)

	cfg, err := loadConfig("", nil)
	require.NoError(t, err)

	assert.Equal(t, model.DefaultTaxonomy, cfg.Taxonomy)
	assert.Equal(t, model.DefaultSkin, cfg.Skin)
	assert.Equal(t, model.DefaultStartupDelay, cfg.StartupDelay)
	assert.Equal(t, model.DefaultLogLevel, cfg.LogLevel)
	assert.False(t, cfg.ReverseScrollWheel)
	assert.Empty(t, cfg.ConfigPath)
	assert.Equal(t, filepath.Join(home, ".config", "heor-connect"), cfg.ConfigDir)
}

func TestLoadConfig_DefaultFile(t *testing.T) {
	home := isolateHome(t)
	path := writeFile(t, filepath.Join(home, ".config", "heor-connect", "config.yml"),
		"taxonomy: regional\nstartup-delay: 500ms\nreverse-scroll-wheel: true\n")

	cfg, err := loadConfig("", nil)
	require.NoError(t, err)

	assert.Equal(t, "regional", cfg.Taxonomy)
	assert.Equal(t, 500*time.Millisecond, cfg.StartupDelay)
	assert.True(t, cfg.ReverseScrollWheel)
	assert.Equal(t, path, cfg.ConfigPath)
}

func TestLoadConfig_ExplicitFileMissingIsIgnored(t *testing.T) {
	isolateHome(t)

	cfg, err := loadConfig(filepath.Join(t.TempDir(), "nope.yml"), nil)
	require.NoError(t, err)
	assert.Equal(t, model.DefaultTaxonomy, cfg.Taxonomy)
}

func TestLoadConfig_MalformedFile(t *testing.T) {
	isolateHome(t)
	path := writeFile(t, filepath.Join(t.TempDir(), "config.yml"), "taxonomy: [unclosed\n")

	_, err := loadConfig(path, nil)
	require.Error(t, err)
}

func TestLoadConfig_EnvOverridesFile(t *testing.T) {
	isolateHome(t)
	path := writeFile(t, filepath.Join(t.TempDir(), "config.yml"), "skin: default\nlog-level: debug\n")
	t.Setenv("HEOR_SKIN", "mono")
	t.Setenv("HEOR_LOG_LEVEL", "warn")

	cfg, err := loadConfig(path, nil)
	require.NoError(t, err)
	assert.Equal(t, "mono", cfg.Skin)
	assert.Equal(t, "warn", cfg.LogLevel)
}

func TestLoadConfig_FlagsOverrideEnv(t *testing.T) {
	isolateHome(t)
	t.Setenv("HEOR_TAXONOMY", "regional")

	fs := pflag.NewFlagSet("test", pflag.ContinueOnError)
	registerConfigFlags(fs)
	require.NoError(t, fs.Parse([]string{"--taxonomy", "mear", "--startup-delay", "3s"}))

	cfg, err := loadConfig("", fs)
	require.NoError(t, err)
	assert.Equal(t, "mear", cfg.Taxonomy)
	assert.Equal(t, 3*time.Second, cfg.StartupDelay)
}

func TestLoadConfig_RejectsNegativeDelay(t *testing.T) {
	isolateHome(t)
	t.Setenv("HEOR_STARTUP_DELAY", "-1s")

	_, err := loadConfig("", nil)
	require.ErrorContains(t, err, "startup-delay")
}

func TestLoadRouter(t *testing.T) {
	r, err := loadRouter(appConfig{Taxonomy: "regional"})
	require.NoError(t, err)
	assert.Equal(t, "regional", r.Tree().Name())

	_, err = loadRouter(appConfig{Taxonomy: "atlantis"})
	require.Error(t, err)

	_, err = loadRouter(appConfig{Taxonomy: "mear", TaxonomyFile: filepath.Join(t.TempDir(), "missing.yaml")})
	require.ErrorContains(t, err, "reading taxonomy")
}
