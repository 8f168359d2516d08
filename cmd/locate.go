package cmd

import (
	"fmt"
	"time"

	"github.com/rickfloyd/ndkpath/internal/cache"
	"github.com/rickfloyd/ndkpath/internal/config"
	"github.com/rickfloyd/ndkpath/internal/hosttag"
	"github.com/rickfloyd/ndkpath/internal/logging"
	"github.com/rickfloyd/ndkpath/internal/ndk"
	"github.com/rickfloyd/ndkpath/internal/toolchain"
	"github.com/spf13/cobra"
)

var locateCmd = &cobra.Command{
	Use:          "locate",
	Short:        "Locate the NDK toolchain directory",
	Long:         `Resolve the LLVM prebuilt toolchain directory for the current host platform and print its path.`,
	RunE:         runLocate,
	SilenceUsage: true,
}

func runLocate(cmd *cobra.Command, args []string) error {
	start := time.Now()

	cfg, err := config.NewLoader().Load(cmd)
	if err != nil {
		return err
	}

	log := logging.New(cfg)

	log.Debug("starting toolchain detection", "ndk", cfg.NdkRoot, "cache", cfg.CacheEnabled)

	if err := ndk.Validate(cfg.NdkRoot); err != nil {
		log.Error("NDK validation failed", "ndk", cfg.NdkRoot, "error", err)
		return err
	}

	tag, err := hosttag.Resolve(cfg.NdkRoot, log)
	if err != nil {
		log.Error("host platform detection failed", "error", err)
		return err
	}

	log.Info("host platform", "tag", tag)

	store := cache.New(cache.Config{
		Enabled: cfg.CacheEnabled,
		Path:    cfg.CacheFile,
	}, log)

	path, err := toolchain.NewLocator(store, log).Locate(cfg.NdkRoot, tag)
	if err != nil {
		log.Error("toolchain discovery failed", "error", err)
		return err
	}

	log.Debug("toolchain detection completed", "elapsed", time.Since(start))

	fmt.Fprintln(cmd.OutOrStdout(), path)

	return nil
}
