package commands

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"os"
	"time"

	"beescraper/lib/beestore"
	"beescraper/lib/configutil"
	"beescraper/lib/scrapers/bee"
	"beescraper/lib/serviceutil"
	"beescraper/lib/telemetry"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/spf13/cobra"
)

type Config struct {
	IdentityPool   []string     `json:"identity_pool"`
	Referer        string       `json:"referer"`
	DelayMinMs     int          `json:"delay_min_ms"`
	DelayMaxMs     int          `json:"delay_max_ms"`
	TimeoutSeconds int          `json:"timeout_seconds"`
	Sources        []bee.Source `json:"sources"`
}

var (
	scrapeDate   *string
	scrapeConfig *string
	scrapeDb     *string
)

func init() {
	scrapeDate = scrapeCmd.Flags().String("date", "", "Puzzle date as YYYY-MM-DD. Defaults to today in UTC.")
	scrapeConfig = scrapeCmd.Flags().String("config", "beescraper.json5", "Scraper configuration file.")
	scrapeDb = scrapeCmd.Flags().String("db", "", "Also record the result in this sqlite database.")
	rootCmd.AddCommand(scrapeCmd)
}

func readScrapeConfig() Config {
	cfg, err := configutil.ReadConfig[Config](*scrapeConfig)
	if os.IsNotExist(err) {
		slog.Debug("no config file, using defaults", "path", *scrapeConfig)
		return Config{}
	}
	if err != nil {
		serviceutil.Fatal("failed to read config", err)
	}
	return cfg
}

func createClient(cfg Config) *bee.Client {
	delayMin := time.Duration(cfg.DelayMinMs) * time.Millisecond
	delayMax := time.Duration(cfg.DelayMaxMs) * time.Millisecond
	if cfg.DelayMinMs == 0 && cfg.DelayMaxMs == 0 {
		delayMin = time.Millisecond * 500
		delayMax = time.Millisecond * 2500
	}

	client, err := bee.NewClient(bee.ClientOptions{
		Timeout:      time.Duration(cfg.TimeoutSeconds) * time.Second,
		IdentityPool: cfg.IdentityPool,
		Referer:      cfg.Referer,
		DelayMin:     delayMin,
		DelayMax:     delayMax,
	})
	if err != nil {
		serviceutil.Fatal("failed to initialize client", err)
	}
	return client
}

func printSummary(puzzle bee.Puzzle) {
	t := table.NewWriter()
	t.SetOutputMirror(os.Stderr)
	t.SetTitle("Scrape Summary")
	t.AppendRows([]table.Row{
		{"date", puzzle.Date},
		{"letters", puzzle.Letters},
		{"center", puzzle.CenterLetter},
		{"answers", puzzle.WordCount},
		{"pangrams", len(puzzle.Pangrams)},
	})
	t.Render()
}

var scrapeCmd = &cobra.Command{
	Use:   "scrape [--date YYYY-MM-DD] [--db <path/to/puzzles.db>]",
	Short: "Scrapes the day's answers and writes one JSON record to stdout.",
	Run: func(cmd *cobra.Command, args []string) {
		ctx := cmd.Context()

		date := time.Now().UTC()
		if *scrapeDate != "" {
			var err error
			date, err = time.Parse(time.DateOnly, *scrapeDate)
			if err != nil {
				serviceutil.Fatal("invalid --date, expected YYYY-MM-DD", err)
			}
		}

		tel, err := telemetry.SetupFromEnv(ctx, "beescraper")
		if err == nil {
			defer tel.Shutdown(context.Background())
		} else if !os.IsNotExist(err) {
			serviceutil.Fatal("failed to setup telemetry", err)
		}

		cfg := readScrapeConfig()
		sources := cfg.Sources
		if len(sources) == 0 {
			sources = bee.DefaultSources()
		}
		client := createClient(cfg)

		t1 := time.Now()
		puzzle := bee.Scrape(ctx, client, sources, date)
		slog.Info("scraping time", "seconds", time.Since(t1).Seconds())

		// stdout carries the record and nothing else
		encoded, err := json.Marshal(puzzle)
		if err != nil {
			serviceutil.Fatal("failed to encode record", err)
		}
		fmt.Println(string(encoded))

		if *scrapeDb != "" {
			database, err := beestore.Open(*scrapeDb)
			if err != nil {
				serviceutil.Fatal("failed to open db", err)
			}
			defer database.Close()

			err = beestore.NewStore(database).Put(ctx, puzzle, time.Now().UTC())
			if err != nil {
				serviceutil.Fatal("failed to record puzzle", err)
			}
			slog.Info("recorded puzzle", "db", *scrapeDb, "date", puzzle.Date)
		}

		printSummary(puzzle)
	},
}
