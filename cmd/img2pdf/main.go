// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package main is the entry point for the img2pdf CLI.
package main

import (
	"fmt"
	"io"
	"os"

	"github.com/hashicorp/go-hclog"
	"github.com/spf13/afero"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/pdiddy/img2pdf/internal/bind"
	"github.com/pdiddy/img2pdf/pkg/types"
)

// version is set at build time via ldflags.
var version = "dev"

// rootCmd binds a folder of images into one PDF.
var rootCmd = &cobra.Command{
	Use:   "img2pdf",
	Short: "Merge the images in a folder into one PDF",
	Long: `img2pdf reads the JPEG, PNG, BMP and TIFF files directly inside a folder,
orders them by natural filename order (img2 before img10), converts each to
RGB with transparency flattened onto white, and writes them as the pages of
a single PDF at 100 DPI.

Files that cannot be decoded are reported and skipped.`,
	Args: cobra.NoArgs,
	RunE: runBind,
}

func init() {
	rootCmd.Flags().StringP("input_dir", "i", "", "folder containing the images (required)")
	rootCmd.Flags().StringP("output", "o", types.DefaultOutput, "output PDF file")
	rootCmd.Flags().BoolP("verbose", "v", false, "log per-image details to stderr")
	rootCmd.Flags().String("color", string(types.ColorAuto), "colour status lines: auto, always, or never")
	_ = rootCmd.MarkFlagRequired("input_dir")
}

// loadConfig resolves flags and defaults into a BindConfig.
func loadConfig(cmd *cobra.Command) (types.BindConfig, error) {
	v := viper.New()
	v.SetDefault("output", types.DefaultOutput)
	v.SetDefault("color", string(types.ColorAuto))
	if err := v.BindPFlags(cmd.Flags()); err != nil {
		return types.BindConfig{}, fmt.Errorf("binding flags: %w", err)
	}

	var cfg types.BindConfig
	if err := v.Unmarshal(&cfg); err != nil {
		return types.BindConfig{}, fmt.Errorf("decoding flags: %w", err)
	}
	return cfg, nil
}

func newLogger(verbose bool, w io.Writer) hclog.Logger {
	level := hclog.Info
	if verbose {
		level = hclog.Debug
	}
	return hclog.New(&hclog.LoggerOptions{
		Name:   "img2pdf",
		Level:  level,
		Output: w,
	})
}

func runBind(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}

	// From here on every failure has already been reported on stdout.
	cmd.SilenceUsage = true
	cmd.SilenceErrors = true

	logger := newLogger(cfg.Verbose, cmd.ErrOrStderr())
	logger.Debug("starting bind", "input_dir", cfg.InputDir, "output", cfg.Output)

	result, err := bind.Run(cfg, afero.NewOsFs(), cmd.OutOrStdout(), logger)
	if err != nil {
		return err
	}
	if result.HasSkips() {
		logger.Info("some images were left out", "skipped", result.Skipped, "added", result.Added)
		for _, derr := range result.DecodeErrors.Errors {
			logger.Debug("skipped image", "error", derr)
		}
	}
	return nil
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
