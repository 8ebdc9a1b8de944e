package cmd

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/spf13/viper"
	"github.com/stretchr/testify/require"

	"shopcatalog/config"
)

func TestSaveDefaultConfigCreatesExampleTemplate(t *testing.T) {
	t.Cleanup(func() {
		cfgFile = ""
		viper.Reset()
	})

	tmpConfig := filepath.Join(t.TempDir(), "nested", "create-template.yaml")
	cfgFile = tmpConfig
	viper.Reset()

	require.NoError(t, saveDefaultConfig())

	content, err := os.ReadFile(tmpConfig)
	require.NoError(t, err)
	require.Contains(t, string(content), "# shopcatalog configuration")

	_, err = config.ValidateYAMLContent(content)
	require.NoError(t, err)

	info, err := os.Stat(tmpConfig)
	require.NoError(t, err)
	require.Equal(t, os.FileMode(0o600), info.Mode().Perm())
}

func TestSaveDefaultConfigDoesNotOverwriteExistingFile(t *testing.T) {
	t.Cleanup(func() {
		cfgFile = ""
		viper.Reset()
	})

	tmpConfig := filepath.Join(t.TempDir(), "existing.yaml")
	original := "server:\n  port: 9000\n"
	require.NoError(t, os.WriteFile(tmpConfig, []byte(original), 0o644))

	cfgFile = tmpConfig
	viper.Reset()

	require.NoError(t, saveDefaultConfig())

	content, err := os.ReadFile(tmpConfig)
	require.NoError(t, err)
	require.Equal(t, original, string(content))
}

func TestResolveConfigPath(t *testing.T) {
	got, err := resolveConfigPath("./custom.yaml", "/tmp/active.yaml")
	require.NoError(t, err)
	require.Equal(t, "./custom.yaml", got)

	got, err = resolveConfigPath("", "/tmp/active.yaml")
	require.NoError(t, err)
	require.Equal(t, "/tmp/active.yaml", got)

	home := t.TempDir()
	t.Setenv("HOME", home)
	got, err = resolveConfigPath("", "")
	require.NoError(t, err)
	require.Equal(t, filepath.Join(home, ".shopcatalog.yaml"), got)
}
