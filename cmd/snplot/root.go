package main

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"

	"snplot/adapters/registry"
	"snplot/internal/config"
	"snplot/internal/logging"
	"snplot/internal/render"
)

var outDir string

var rootCmd = &cobra.Command{
	Use:   "snplot",
	Short: "Render diagnostic plots for light-curve data and model fits",
	Long: `snplot renders per-band flux-vs-time figures with optional model overlays
and pull subpanels, and posterior parameter histogram grids, from observation
tables in CSV, Excel or Postgres.`,
}

func init() {
	rootCmd.PersistentFlags().StringVar(&outDir, "out-dir", "", "output directory for rendered figures (default from SNPLOT_OUT_DIR)")
}

func main() {
	if err := godotenv.Load(); err != nil {
		logging.Default.Debug("no .env file found, using system environment")
	}
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// loadConfig loads the environment configuration, letting the --out-dir flag
// override the render output directory.
func loadConfig() (*config.Config, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, err
	}
	if outDir != "" {
		cfg.Render.OutDir = outDir
	}
	return cfg, nil
}

// newRenderer builds a renderer over the built-in registries.
func newRenderer() (*render.Renderer, *registry.Builtin) {
	reg := registry.NewBuiltin()
	return render.NewRenderer(reg, reg), reg
}
