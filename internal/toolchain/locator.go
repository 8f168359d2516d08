// Package toolchain resolves the LLVM prebuilt toolchain directory for a
// host tag inside a validated NDK root.
package toolchain

import (
	"errors"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/rickfloyd/ndkpath/internal/cache"
	"github.com/rickfloyd/ndkpath/internal/ndk"
)

var (
	// ErrNotFound indicates no prebuilt toolchain exists for the host tag
	ErrNotFound = errors.New("toolchain not found")

	// ErrIncomplete indicates the toolchain directory is missing required
	// compiler executables
	ErrIncomplete = errors.New("toolchain incomplete")
)

// requiredTools are the compiler executables every usable toolchain
// carries, relative to the toolchain directory and before any platform
// suffix.
var requiredTools = []string{
	filepath.Join("bin", "clang"),
	filepath.Join("bin", "clang++"),
}

// Locator finds toolchain directories, consulting the path cache first
type Locator struct {
	cache *cache.Cache
	log   *slog.Logger
}

// NewLocator creates a locator backed by the given cache
func NewLocator(c *cache.Cache, log *slog.Logger) *Locator {
	return &Locator{
		cache: c,
		log:   log,
	}
}

// Locate returns the toolchain directory for hostTag under ndkRoot. A valid
// cache entry short-circuits all filesystem checks.
func (l *Locator) Locate(ndkRoot, hostTag string) (string, error) {
	key := cache.Key(ndkRoot, hostTag)

	if path, ok := l.cache.Get(key); ok {
		l.log.Info("using cached toolchain path", "path", path)
		return path, nil
	}

	path := filepath.Join(ndkRoot, "toolchains", "llvm", "prebuilt", hostTag)

	if _, err := os.Stat(path); err != nil {
		return "", fmt.Errorf("%w: %s", ErrNotFound, path)
	}

	for _, tool := range requiredTools {
		// Windows-family toolchains ship suffixed executables
		if strings.HasPrefix(hostTag, "windows") {
			tool += ".exe"
		}

		if _, err := os.Stat(filepath.Join(path, tool)); err != nil {
			return "", fmt.Errorf("%w: missing %s", ErrIncomplete, tool)
		}
	}

	l.log.Info("found valid toolchain", "path", path)

	version := "unknown"
	if v, err := ndk.DetectVersion(ndkRoot); err == nil {
		version = v
	}

	l.cache.Put(key, path, version, hostTag)

	return path, nil
}
