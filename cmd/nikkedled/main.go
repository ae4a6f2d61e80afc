package main

import (
	"database/sql"
	"fmt"
	"os"
	"time"

	"nikkedle-backend/internal/components/chrono"
	"nikkedle-backend/internal/components/db"
	comptel "nikkedle-backend/internal/components/telemetry"
	"nikkedle-backend/internal/images"
	"nikkedle-backend/internal/scrapers/nikkepedia"
	"nikkedle-backend/lib/characterstore"
	"nikkedle-backend/lib/configutil"
	"nikkedle-backend/lib/telemetry"

	"github.com/spf13/cobra"
	_ "modernc.org/sqlite"
)

type Config struct {
	BaseUrl          string `json:"base_url"`
	IndexPath        string `json:"index_path"`
	DataFile         string `json:"data_file"`
	ImageDir         string `json:"image_dir"`
	CacheDb          string `json:"cache_db"`
	CacheTtlHours    int    `json:"cache_ttl_hours"`
	ImageConcurrency int    `json:"image_concurrency"`
}

func readConfig() (Config, error) {
	config, err := configutil.ReadRecursively[Config]("nikkedle.json5")
	if err != nil && !os.IsNotExist(err) {
		return Config{}, err
	}

	if config.BaseUrl == "" {
		config.BaseUrl = "https://nikke-goddess-of-victory-international.fandom.com"
	}
	if config.IndexPath == "" {
		config.IndexPath = "/wiki/Characters"
	}
	if config.DataFile == "" {
		config.DataFile = "characters.json"
	}
	if config.ImageDir == "" {
		config.ImageDir = "images"
	}
	if config.CacheDb == "" {
		config.CacheDb = "pages.db"
	}
	if config.CacheTtlHours <= 0 {
		config.CacheTtlHours = 24
	}
	if config.ImageConcurrency <= 0 {
		config.ImageConcurrency = 4
	}
	return config, nil
}

func openStore(config Config) *characterstore.Store {
	return characterstore.NewStore(config.DataFile)
}

func buildScraper(config Config) (nikkepedia.Scraper, error) {
	sqlite, err := sql.Open("sqlite", config.CacheDb)
	if err != nil {
		return nikkepedia.Scraper{}, fmt.Errorf("open page cache: %w", err)
	}
	_, err = sqlite.Exec(db.Schema)
	if err != nil {
		return nikkepedia.Scraper{}, fmt.Errorf("apply page cache schema: %w", err)
	}

	tel := comptel.SlogAPI{}
	fetcher := images.NewFetcher(config.ImageDir, config.ImageConcurrency, tel)

	return nikkepedia.NewScraper(
		db.New(sqlite),
		openStore(config),
		fetcher,
		chrono.StandardImpl{},
		tel,
		config.BaseUrl,
		config.IndexPath,
		time.Duration(config.CacheTtlHours)*time.Hour,
	)
}

var debug bool

var rootCmd = &cobra.Command{
	Use:   "nikkedled",
	Short: "Scrapes the character wiki and maintains the daily-guess dataset.",
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		telemetry.InitSlog(debug)
	},
}

func init() {
	rootCmd.PersistentFlags().BoolVar(&debug, "debug", false, "enable debug logging")
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
