package config

import (
	"testing"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestCommand() *cobra.Command {
	cmd := &cobra.Command{Use: "test"}
	cmd.Flags().StringP("ndk", "n", "", "")
	cmd.Flags().BoolP("verbose", "v", false, "")
	cmd.Flags().Bool("no-cache", false, "")

	return cmd
}

func TestLoaderDefaults(t *testing.T) {
	viper.Reset()

	cmd := newTestCommand()
	require.NoError(t, cmd.Flags().Set("ndk", "/opt/ndk"))

	cfg, err := NewLoader().Load(cmd)
	require.NoError(t, err)

	assert.True(t, cfg.CacheEnabled)
	assert.Equal(t, DefaultLogLevel, cfg.LogLevel)
	assert.False(t, cfg.Verbose)
}

func TestLoaderFlagBindings(t *testing.T) {
	viper.Reset()

	cmd := newTestCommand()
	require.NoError(t, cmd.Flags().Set("ndk", "/opt/ndk"))
	require.NoError(t, cmd.Flags().Set("verbose", "true"))
	require.NoError(t, cmd.Flags().Set("no-cache", "true"))

	cfg, err := NewLoader().Load(cmd)
	require.NoError(t, err)

	assert.True(t, cfg.Verbose)
	assert.False(t, cfg.CacheEnabled)
}

func TestLoaderEnvironment(t *testing.T) {
	viper.Reset()
	t.Setenv("NDKPATH_CACHE", "false")
	t.Setenv("NDKPATH_LOG_LEVEL", "ERROR")

	cmd := newTestCommand()
	require.NoError(t, cmd.Flags().Set("ndk", "/opt/ndk"))

	cfg, err := NewLoader().Load(cmd)
	require.NoError(t, err)

	assert.False(t, cfg.CacheEnabled)
	assert.Equal(t, "ERROR", cfg.LogLevel)
}

func TestLoaderMissingNdk(t *testing.T) {
	viper.Reset()

	_, err := NewLoader().Load(newTestCommand())
	assert.Error(t, err)
}
