// Package hosttag maps the running machine onto the NDK's prebuilt
// toolchain naming convention.
package hosttag

import (
	"errors"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"runtime"
)

// ErrUnsupportedPlatform indicates the host OS/architecture combination has
// no matching NDK prebuilt toolchain.
var ErrUnsupportedPlatform = errors.New("unsupported host platform")

// Resolve returns the NDK host tag for the machine running the build.
// ndkRoot may be empty; it is only consulted for the legacy Windows
// fallback.
func Resolve(ndkRoot string, log *slog.Logger) (string, error) {
	return resolve(runtime.GOOS, runtime.GOARCH, ndkRoot, log)
}

// resolve is the policy table behind Resolve. Architecture names are
// accepted in both Go and uname spellings.
func resolve(goos, goarch, ndkRoot string, log *slog.Logger) (string, error) {
	log.Info("detecting host platform", "os", goos, "arch", goarch)

	switch goos {
	case "linux":
		switch goarch {
		case "amd64", "x86_64":
			return "linux-x86_64", nil
		case "arm64", "aarch64":
			return "linux-aarch64", nil
		}

	case "darwin":
		switch goarch {
		case "amd64", "x86_64":
			return "darwin-x86_64", nil
		case "arm64", "aarch64":
			return "darwin-arm64", nil
		}

	case "windows":
		tag := "windows-x86_64"

		// Older NDK releases shipped 32-bit host prebuilts under a bare
		// "windows" tag.
		if ndkRoot != "" {
			if _, err := os.Stat(filepath.Join(ndkRoot, "prebuilt", tag)); err != nil {
				tag = "windows"
				log.Info("using legacy windows host tag", "tag", tag)
			}
		}

		return tag, nil
	}

	return "", fmt.Errorf("%w: %s/%s", ErrUnsupportedPlatform, goos, goarch)
}
