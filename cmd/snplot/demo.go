package main

import (
	"fmt"
	"path/filepath"

	"github.com/spf13/cobra"

	"snplot/internal/render"
	"snplot/internal/report"
	"snplot/internal/testkit"
)

var demoSeed int64

var demoCmd = &cobra.Command{
	Use:   "demo",
	Short: "Render demo figures and an HTML fit report from synthetic data",
	RunE:  runDemo,
}

func init() {
	demoCmd.Flags().Int64Var(&demoSeed, "seed", 1, "random seed for the synthetic data")
	rootCmd.AddCommand(demoCmd)
}

func runDemo(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	renderer, reg := newRenderer()

	gen := testkit.NewGenerator(demoSeed)
	demoModel := testkit.DemoModel(reg, 55100)
	batch := gen.Batch(demoModel, testkit.DemoBands(), 25, 0.1)

	lcPath, err := renderer.PlotLightCurve(batch, render.LightCurveOptions{
		Path:              filepath.Join(cfg.Render.OutDir, "demo-lightcurve.png"),
		Model:             demoModel,
		ShowPulls:         true,
		IncludeModelError: true,
		DPI:               cfg.Render.DPI,
	})
	if err != nil {
		return err
	}

	set := gen.Posterior(
		[]string{"t0", "amplitude", "rise", "fall"},
		[]float64{55100, 1.0, 5, 20},
		[]float64{0.4, 0.05, 0.3, 1.2},
		2000,
	)
	summaries, err := set.Summaries()
	if err != nil {
		return err
	}

	pdfPath, err := renderer.PlotPDFs(set, summaries, render.PDFOptions{
		Path: filepath.Join(cfg.Render.OutDir, "demo-pdfs.png"),
		DPI:  cfg.Render.DPI,
	})
	if err != nil {
		return err
	}

	rep := &report.Report{
		Title:   "snplot demo fit",
		Figures: []string{lcPath, pdfPath},
	}
	repPath := filepath.Join(cfg.Render.OutDir, "demo-report.html")
	if err := rep.WriteHTML(repPath, set, summaries); err != nil {
		return err
	}

	fmt.Println(lcPath)
	fmt.Println(pdfPath)
	fmt.Println(repPath)
	return nil
}
