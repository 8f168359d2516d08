package cmd

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/rickfloyd/ndkpath/internal/config"
	"github.com/rickfloyd/ndkpath/internal/version"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

var rootCmd = &cobra.Command{
	Use:   "ndkpath",
	Short: "Android NDK toolchain locator",
	Long:  `Locates the LLVM prebuilt toolchain directory inside an Android NDK installation and prints its path for consumption by build systems.`,
	Example: `  ndkpath --ndk /opt/android-ndk-r27
  ndkpath --ndk C:\Android\ndk\27.0.10718614 --verbose`,
	RunE:         runLocate,
	SilenceUsage: true,
}

func Execute() {
	err := rootCmd.Execute()
	if err != nil {
		os.Exit(1)
	}
}

func init() {
	rootCmd.Version = fmt.Sprintf("%s (%s) %s", version.Version, version.Commit, version.BuildTime)
	rootCmd.PersistentFlags().StringP("ndk", "n", "", "Android NDK installation directory")
	rootCmd.PersistentFlags().BoolP("verbose", "v", false, "Verbose output")
	rootCmd.PersistentFlags().Bool("no-cache", false, "Disable the toolchain path cache")
	rootCmd.AddCommand(locateCmd)

	viper.SetDefault("cache", config.DefaultCacheEnabled)
	viper.SetDefault("log_level", config.DefaultLogLevel)
	viper.SetDefault("cache_file", filepath.Join(os.TempDir(), config.CacheFileName))
}
