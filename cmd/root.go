package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/13m0n4de/easy-fs-extracter/internal/services"
	"github.com/13m0n4de/easy-fs-extracter/pkg/app"
)

var (
	// Global output flags only
	verbose      bool
	quiet        bool
	outputFormat string
)

var rootCmd = &cobra.Command{
	Use:   "easy-fs-extracter",
	Short: "Read-only extractor for easy-fs disk images",
	Long: `easy-fs-extracter is an offline, read-only decoder for easy-fs disk
images (the 512-byte-block, inode-based teaching filesystem).

It never writes to the source image. Given an image it either rebuilds
the original directory tree on the host filesystem, or flat-dumps every
allocated file's content regardless of directory placement.

Commands:
  restore    Rebuild the directory tree under an output directory
  extract    Flat-dump every allocated file as inode<N>
  ls         List a directory inode's entries
  info       Print the decoded superblock`,
	Version: "0.1.0",
}

// Execute adds all child commands to the root command and sets flags appropriately.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func init() {
	cobra.OnInitialize(initConfig)

	// Only global output control flags
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable verbose output")
	rootCmd.PersistentFlags().BoolVarP(&quiet, "quiet", "q", false, "suppress output except errors")
	rootCmd.PersistentFlags().StringVarP(&outputFormat, "output", "o", "table", "output format (table, json, yaml)")
}

// initConfig loads defaults and an optional easyfs.yaml config file
func initConfig() {
	viper.SetConfigName("easyfs")
	viper.SetConfigType("yaml")
	viper.AddConfigPath(".")
	viper.AddConfigPath("$HOME/.easyfs")

	viper.SetDefault("image", "fs.img")
	viper.SetDefault("output_dir", "output")
	viper.SetDefault("root_inode", 0)
	viper.SetDefault("max_walk_depth", services.DefaultMaxWalkDepth)

	// The config file is optional; flags and defaults cover everything
	_ = viper.ReadInConfig()
}

// newAppContext builds the shared output context from the global flags
func newAppContext() *app.Context {
	ctx := app.NewContext()
	ctx.Verbose = verbose
	ctx.Quiet = quiet
	ctx.OutputFormat = outputFormat
	return ctx
}

// stringOrConfig resolves a flag value, falling back to the config key
func stringOrConfig(flagValue, key string) string {
	if flagValue != "" {
		return flagValue
	}
	return viper.GetString(key)
}
