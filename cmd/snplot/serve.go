package main

import (
	"github.com/spf13/cobra"

	"snplot/ui"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the browser preview server",
	Long: `Starts an HTTP server that renders figures on demand:
GET /plots/lightcurve and GET /plots/pdfs serve PNG previews of the demo
data. The port comes from SNPLOT_PORT (default 8080).`,
	RunE: runServe,
}

func init() {
	rootCmd.AddCommand(serveCmd)
}

func runServe(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	renderer, _ := newRenderer()
	return ui.NewServer(renderer).Run(":" + cfg.Server.Port)
}
