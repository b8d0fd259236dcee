package main

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/jmoiron/sqlx"
	_ "github.com/lib/pq"
	"github.com/spf13/cobra"

	"snplot/adapters/postgres"
	"snplot/adapters/table"
	"snplot/domain/core"
	"snplot/domain/photometry"
	"snplot/internal/render"
	"snplot/internal/testkit"
)

var (
	lcPulls      bool
	lcModelError bool
	lcDemoModel  bool
	lcFromDB     bool
)

var lightcurveCmd = &cobra.Command{
	Use:   "lightcurve [files or batch names...]",
	Short: "Render light-curve figures from observation tables",
	Long: `Renders one light-curve figure per input. Inputs are CSV or Excel files
with columns time, band, flux, fluxerr, zp, zpsys; with --db they are batch
names resolved against the observations table of DATABASE_URL. Multiple
inputs render concurrently.`,
	Args: cobra.MinimumNArgs(1),
	RunE: runLightCurve,
}

func init() {
	lightcurveCmd.Flags().BoolVar(&lcPulls, "pulls", true, "show residual (pull) subpanels when a model is drawn")
	lightcurveCmd.Flags().BoolVar(&lcModelError, "model-error", false, "shade the model curve by its flux uncertainty")
	lightcurveCmd.Flags().BoolVar(&lcDemoModel, "model", false, "overplot the built-in demo pulse model")
	lightcurveCmd.Flags().BoolVar(&lcFromDB, "db", false, "treat arguments as database batch names")
	rootCmd.AddCommand(lightcurveCmd)
}

func runLightCurve(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	renderer, reg := newRenderer()
	ctx := cmd.Context()

	batches := make([]*photometry.Batch, len(args))
	if lcFromDB {
		if cfg.Database.URL == "" {
			return fmt.Errorf("--db requires DATABASE_URL to be set")
		}
		db, err := sqlx.Open("postgres", cfg.Database.URL)
		if err != nil {
			return fmt.Errorf("failed to open database: %w", err)
		}
		defer db.Close()

		repo := postgres.NewObservationRepository(db)
		for i, name := range args {
			id, err := core.ParseBatchID(name)
			if err != nil {
				return err
			}
			if batches[i], err = repo.GetBatch(ctx, id); err != nil {
				return err
			}
		}
	} else {
		for i, path := range args {
			if batches[i], err = table.NewReader(path).ReadBatch(); err != nil {
				return err
			}
		}
	}

	opts := render.LightCurveOptions{
		ShowPulls:         lcPulls,
		IncludeModelError: lcModelError,
		DPI:               cfg.Render.DPI,
	}
	if lcDemoModel {
		opts.Model = testkit.DemoModel(reg, meanTime(batches[0]))
	}

	jobs := make([]render.Job, len(batches))
	for i, batch := range batches {
		batchOpts := opts
		batchOpts.Path = filepath.Join(cfg.Render.OutDir, outputName(args[i]))
		jobs[i] = func() (string, error) {
			return renderer.PlotLightCurve(batch, batchOpts)
		}
	}

	paths, err := render.RenderAll(ctx, jobs)
	if err != nil {
		return err
	}
	for _, p := range paths {
		fmt.Println(p)
	}
	return nil
}

// outputName derives a figure file name from an input file or batch name.
func outputName(input string) string {
	base := filepath.Base(input)
	if ext := filepath.Ext(base); ext != "" {
		base = strings.TrimSuffix(base, ext)
	}
	return base + "-lightcurve.png"
}

// meanTime centers the demo model on the batch.
func meanTime(b *photometry.Batch) float64 {
	sum := 0.0
	for _, t := range b.Time {
		sum += t
	}
	return sum / float64(len(b.Time))
}
