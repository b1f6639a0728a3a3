// Copyright Daniel Amado, 2026. All rights reserved.

package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/TDanyStark/pdf-to-pptx/internal/history"
	"github.com/TDanyStark/pdf-to-pptx/internal/pipeline"
	"github.com/TDanyStark/pdf-to-pptx/internal/rasterize"
	"github.com/TDanyStark/pdf-to-pptx/pkg/types"
)

var convertCmd = &cobra.Command{
	Use:   "convert <file.pdf>",
	Short: "Convert a PDF into a one-slide-per-page presentation",
	Long: `Convert renders every page of the given PDF at the configured DPI,
writes the page images to <output>/<name>/pages/, and saves the
presentation as <output>/<name>/<name>.pptx. Progress is printed as the
job advances. Partial output is left in place on failure.`,
	Args: cobra.ExactArgs(1),
	RunE: runConvert,
}

func init() {
	convertCmd.Flags().String("out", "", "destination directory (default: your Downloads folder)")
	convertCmd.Flags().Int("dpi", 0, "raster resolution in dots per inch (default 200)")
	convertCmd.Flags().String("format", "", "page image format: png or jpeg (default png)")
	convertCmd.Flags().Int("jpeg-quality", 0, "JPEG encoding quality, 1-100 (default 95)")

	rootCmd.AddCommand(convertCmd)
}

func runConvert(cmd *cobra.Command, args []string) error {
	cfg := conversionConfig(cmd)

	job := &types.ConversionJob{
		InputPath:   args[0],
		OutputDir:   cfg.OutputDir,
		DPI:         cfg.DPI,
		Format:      cfg.Format,
		JPEGQuality: cfg.JPEGQuality,
		State:       types.StateIdle,
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	orch := pipeline.New(rasterize.Source{})
	events, done := orch.Run(ctx, job)

	for ev := range events {
		fmt.Fprintf(os.Stderr, "[%3.0f%%] %s\n", ev.Fraction*100, ev.Message)
	}
	res := <-done

	recordHistory(job, res)

	if res.Err != nil {
		return res.Err
	}
	fmt.Println(res.Paths.PPTXPath)
	return nil
}

// conversionConfig merges flags over viper config over defaults.
func conversionConfig(cmd *cobra.Command) types.ConversionConfig {
	cfg := types.ConversionConfig{
		DPI:         viper.GetInt("conversion.dpi"),
		Format:      types.ImageFormat(viper.GetString("conversion.format")),
		OutputDir:   viper.GetString("conversion.output_dir"),
		JPEGQuality: viper.GetInt("conversion.jpeg_quality"),
	}
	if v, _ := cmd.Flags().GetInt("dpi"); v != 0 {
		cfg.DPI = v
	}
	if v, _ := cmd.Flags().GetString("format"); v != "" {
		cfg.Format = types.ImageFormat(v)
	}
	if v, _ := cmd.Flags().GetString("out"); v != "" {
		cfg.OutputDir = v
	}
	if v, _ := cmd.Flags().GetInt("jpeg-quality"); v != 0 {
		cfg.JPEGQuality = v
	}
	cfg.ApplyDefaults()
	return cfg
}

// historyConfig resolves the job history settings from viper config.
// Recording is on unless explicitly disabled.
func historyConfig() types.HistoryConfig {
	cfg := types.HistoryConfig{
		Enabled: true,
		Dir:     viper.GetString("history.dir"),
	}
	if viper.IsSet("history.enabled") {
		cfg.Enabled = viper.GetBool("history.enabled")
	}
	cfg.ApplyDefaults()
	return cfg
}

// recordHistory appends the finished job to the history store. History is
// best effort: a store failure must not mask the conversion outcome.
func recordHistory(job *types.ConversionJob, res pipeline.Result) {
	cfg := historyConfig()
	if !cfg.Enabled {
		return
	}
	store, err := history.Open(cfg.Dir)
	if err != nil {
		fmt.Fprintf(os.Stderr, "warning: job history unavailable: %v\n", err)
		return
	}
	defer store.Close()
	if _, err := store.Add(job, res.Paths, res.Err); err != nil {
		fmt.Fprintf(os.Stderr, "warning: recording job history: %v\n", err)
	}
}
