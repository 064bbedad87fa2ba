package commands

import (
	"os"
	"strings"
	"time"

	"beescraper/lib/beestore"
	"beescraper/lib/serviceutil"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/spf13/cobra"
)

var (
	historyDb    *string
	historyLimit *int
)

func init() {
	historyDb = historyCmd.Flags().String("db", "puzzles.db", "The puzzle database to read.")
	historyLimit = historyCmd.Flags().Int("limit", 14, "How many days to show.")
	rootCmd.AddCommand(historyCmd)
}

var historyCmd = &cobra.Command{
	Use:   "history [--db <path/to/puzzles.db>] [--limit <n>]",
	Short: "Shows recently recorded puzzles.",
	Run: func(cmd *cobra.Command, args []string) {
		database, err := beestore.Open(*historyDb)
		if err != nil {
			serviceutil.Fatal("failed to open db", err)
		}
		defer database.Close()

		records, err := beestore.NewStore(database).Recent(cmd.Context(), *historyLimit)
		if err != nil {
			serviceutil.Fatal("failed to read puzzles", err)
		}

		t := table.NewWriter()
		t.SetOutputMirror(os.Stdout)
		t.AppendHeader(table.Row{"date", "letters", "center", "answers", "pangrams", "scraped at"})
		for _, rec := range records {
			t.AppendRow(table.Row{
				rec.Date,
				rec.Letters,
				rec.CenterLetter,
				rec.WordCount,
				strings.Join(rec.Pangrams, ", "),
				rec.ScrapedAt.UTC().Format(time.RFC3339),
			})
		}
		t.Render()
	},
}
