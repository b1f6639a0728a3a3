// Copyright Daniel Amado, 2026. All rights reserved.

// Package main is the entry point for the pdf2pptx CLI, the command-line
// collaborator that drives the conversion pipeline.
package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

// version is set at build time via ldflags.
var version = "dev"

// rootCmd is the base command for the pdf2pptx CLI.
var rootCmd = &cobra.Command{
	Use:   "pdf2pptx",
	Short: "Convert PDF documents into full-bleed image presentations",
	Long: `pdf2pptx renders each page of a PDF as an image and builds a
presentation with one slide per page. Images are placed with cover fit:
they fully fill the slide, cropping overflow instead of letterboxing.

Outputs land in <output>/<name>/: the presentation, a pages/ directory
with one image per source page, and a job manifest.`,
}

func init() {
	cobra.OnInitialize(initConfig)

	rootCmd.PersistentFlags().String("config", "", "config file (default: ./pdf2pptx.yaml or ~/.config/pdf2pptx/config.yaml)")
}

func initConfig() {
	cfgFile, _ := rootCmd.PersistentFlags().GetString("config")
	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		viper.SetConfigName("pdf2pptx")
		viper.SetConfigType("yaml")
		viper.AddConfigPath(".")

		home, err := os.UserHomeDir()
		if err == nil {
			viper.AddConfigPath(filepath.Join(home, ".config", "pdf2pptx"))
		}
	}

	viper.SetEnvPrefix("PDF2PPTX")
	viper.AutomaticEnv()

	if err := viper.ReadInConfig(); err == nil {
		fmt.Fprintln(os.Stderr, "Using config file:", viper.ConfigFileUsed())
	}
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
