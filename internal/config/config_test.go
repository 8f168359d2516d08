package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad(t *testing.T) {
	tests := []struct {
		name        string
		setupViper  func()
		check       func(t *testing.T, cfg *Config)
		wantErr     bool
		errContains string
	}{
		{
			name: "defaults with ndk set",
			setupViper: func() {
				viper.Reset()
				viper.SetDefault("cache", DefaultCacheEnabled)
				viper.SetDefault("log_level", DefaultLogLevel)
				viper.Set("ndk", "/opt/android-ndk-r27")
			},
			check: func(t *testing.T, cfg *Config) {
				abs, _ := filepath.Abs("/opt/android-ndk-r27")
				assert.Equal(t, abs, cfg.NdkRoot)
				assert.True(t, cfg.CacheEnabled)
				assert.Equal(t, DefaultLogLevel, cfg.LogLevel)
				assert.Equal(t, filepath.Join(os.TempDir(), CacheFileName), cfg.CacheFile)
				assert.False(t, cfg.Verbose)
			},
		},
		{
			name: "missing ndk root",
			setupViper: func() {
				viper.Reset()
			},
			wantErr:     true,
			errContains: "NDK root not specified",
		},
		{
			name: "cache disabled by setting",
			setupViper: func() {
				viper.Reset()
				viper.Set("ndk", "/opt/ndk")
				viper.Set("cache", false)
			},
			check: func(t *testing.T, cfg *Config) {
				assert.False(t, cfg.CacheEnabled)
			},
		},
		{
			name: "no_cache flag overrides cache setting",
			setupViper: func() {
				viper.Reset()
				viper.Set("ndk", "/opt/ndk")
				viper.Set("cache", true)
				viper.Set("no_cache", true)
			},
			check: func(t *testing.T, cfg *Config) {
				assert.False(t, cfg.CacheEnabled)
			},
		},
		{
			name: "custom values",
			setupViper: func() {
				viper.Reset()
				viper.Set("ndk", "/opt/ndk")
				viper.Set("verbose", true)
				viper.Set("log_level", "ERROR")
				viper.Set("cache_file", "/tmp/custom-cache.json")
			},
			check: func(t *testing.T, cfg *Config) {
				abs, _ := filepath.Abs("/tmp/custom-cache.json")
				assert.True(t, cfg.Verbose)
				assert.Equal(t, "ERROR", cfg.LogLevel)
				assert.Equal(t, abs, cfg.CacheFile)
			},
		},
		{
			name: "relative ndk root resolved to absolute",
			setupViper: func() {
				viper.Reset()
				viper.Set("ndk", "relative/ndk")
			},
			check: func(t *testing.T, cfg *Config) {
				assert.True(t, filepath.IsAbs(cfg.NdkRoot))
			},
		},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			test.setupViper()

			cfg, err := Load()
			if test.wantErr {
				require.Error(t, err)
				assert.ErrorContains(t, err, test.errContains)
				return
			}

			require.NoError(t, err)
			test.check(t, cfg)
		})
	}
}
