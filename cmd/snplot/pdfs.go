package main

import (
	"fmt"
	"path/filepath"

	"github.com/spf13/cobra"

	"snplot/adapters/table"
	"snplot/internal/render"
)

var pdfCols int

var pdfsCmd = &cobra.Command{
	Use:   "pdfs [samples.csv]",
	Short: "Render posterior parameter histograms from a sample table",
	Long: `Renders a grid of weighted parameter histograms from a CSV or Excel
sample table: one column per parameter plus a "weight" column, one row per
sample. Averages and uncertainties are the weighted sample moments.`,
	Args: cobra.ExactArgs(1),
	RunE: runPDFs,
}

func init() {
	pdfsCmd.Flags().IntVar(&pdfCols, "cols", 2, "number of histogram columns")
	rootCmd.AddCommand(pdfsCmd)
}

func runPDFs(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	renderer, _ := newRenderer()

	set, err := table.ReadSamples(args[0])
	if err != nil {
		return err
	}
	summaries, err := set.Summaries()
	if err != nil {
		return err
	}

	path := filepath.Join(cfg.Render.OutDir, pdfOutputName(args[0]))
	written, err := renderer.PlotPDFs(set, summaries, render.PDFOptions{Path: path, Cols: pdfCols, DPI: cfg.Render.DPI})
	if err != nil {
		return err
	}
	fmt.Println(written)
	return nil
}

func pdfOutputName(input string) string {
	base := filepath.Base(input)
	if ext := filepath.Ext(base); ext != "" {
		base = base[:len(base)-len(ext)]
	}
	return base + "-pdfs.png"
}
