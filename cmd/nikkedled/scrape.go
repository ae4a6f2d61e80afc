package main

import (
	"context"

	"nikkedle-backend/lib/serviceutil"
	"nikkedle-backend/lib/telemetry"

	"github.com/spf13/cobra"
)

func init() {
	rootCmd.AddCommand(scrapeCmd)
}

var scrapeCmd = &cobra.Command{
	Use:   "scrape",
	Short: "Fetch the character index and refresh every stored record.",
	Run: func(cmd *cobra.Command, args []string) {
		ctx := serviceutil.SignalContext()

		tel, err := telemetry.SetupFromEnv(ctx, "nikkedled")
		if err != nil {
			serviceutil.Fatal("failed to setup telemetry", err)
		}
		defer tel.Shutdown(context.Background())

		config, err := readConfig()
		if err != nil {
			serviceutil.Fatal("failed to read config", err)
		}

		scraper, err := buildScraper(config)
		if err != nil {
			serviceutil.Fatal("failed to build scraper", err)
		}

		err = scraper.ScrapeAll(ctx)
		if err != nil {
			serviceutil.Fatal("scrape run failed", err)
		}
	},
}
