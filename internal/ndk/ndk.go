// Package ndk validates Android NDK installation roots.
package ndk

import (
	"bufio"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// ErrInvalidNdk indicates the NDK root is missing or structurally
// incomplete.
var ErrInvalidNdk = errors.New("invalid NDK installation")

// requiredComponents are the subdirectories every usable NDK release
// carries.
var requiredComponents = []string{
	filepath.Join("toolchains", "llvm", "prebuilt"),
	filepath.Join("build", "cmake"),
	"sources",
}

// Validate checks that root is a directory containing the essential NDK
// components. It does not inspect permissions or executable bits.
func Validate(root string) error {
	info, err := os.Stat(root)
	if err != nil || !info.IsDir() {
		return fmt.Errorf("%w: directory does not exist: %s", ErrInvalidNdk, root)
	}

	for _, component := range requiredComponents {
		if _, err := os.Stat(filepath.Join(root, component)); err != nil {
			return fmt.Errorf("%w: missing required component: %s", ErrInvalidNdk, component)
		}
	}

	return nil
}

// DetectVersion reads the Pkg.Revision value from the NDK's
// source.properties file. Callers decide what to substitute on error.
func DetectVersion(root string) (string, error) {
	f, err := os.Open(filepath.Join(root, "source.properties"))
	if err != nil {
		return "", err
	}

	defer f.Close()

	scanner := bufio.NewScanner(f)
	for scanner.Scan() {
		line := scanner.Text()
		if !strings.HasPrefix(line, "Pkg.Revision") {
			continue
		}

		_, value, found := strings.Cut(line, "=")
		if !found {
			continue
		}

		return strings.TrimSpace(value), nil
	}

	if err := scanner.Err(); err != nil {
		return "", err
	}

	return "", fmt.Errorf("source.properties has no Pkg.Revision entry")
}
