package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/viper"
)

// Default configuration values
const (
	DefaultCacheEnabled = true
	DefaultLogLevel     = "INFO"

	// CacheFileName is the name of the cache file inside the shared
	// temporary directory
	CacheFileName = "ndkpath-cache.json"
)

// Holds the configuration options for ndkpath
type Config struct {
	// Path to the Android NDK installation root
	NdkRoot string

	// Enable verbose output
	Verbose bool

	// Enable the toolchain path cache
	CacheEnabled bool

	// Path to the persisted cache file
	CacheFile string

	// Minimum log severity; "ERROR" suppresses everything below error
	LogLevel string
}

func Load() (*Config, error) {
	cfg := &Config{
		NdkRoot:      viper.GetString("ndk"),
		Verbose:      viper.GetBool("verbose"),
		CacheEnabled: viper.GetBool("cache") && !viper.GetBool("no_cache"),
		CacheFile:    viper.GetString("cache_file"),
		LogLevel:     viper.GetString("log_level"),
	}

	// Apply defaults if not set
	if cfg.CacheFile == "" {
		cfg.CacheFile = filepath.Join(os.TempDir(), CacheFileName)
	}

	if cfg.LogLevel == "" {
		cfg.LogLevel = DefaultLogLevel
	}

	// Validate required fields
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

func (c *Config) Validate() error {
	if c.NdkRoot == "" {
		return fmt.Errorf("NDK root not specified")
	}

	// Resolve to an absolute path so the printed toolchain path is absolute.
	// Symlinks are left unresolved; the cache keys on the spelling the user
	// supplied.
	abs, err := filepath.Abs(c.NdkRoot)
	if err != nil {
		return fmt.Errorf("invalid NDK root path: %v", err)
	}

	c.NdkRoot = abs

	abs, err = filepath.Abs(c.CacheFile)
	if err != nil {
		return fmt.Errorf("invalid cache file path: %v", err)
	}

	c.CacheFile = abs

	return nil
}
