package cmd

import (
	"context"
	"fmt"
	"os"
	"os/signal"

	"github.com/Biniyan/sociomap/internal/importer"
	"github.com/Biniyan/sociomap/internal/store"
	"github.com/spf13/cobra"
)

var importCmd = &cobra.Command{
	Use:   "import <url>...",
	Short: "Import features from curriculum pages with HTML feature tables",
	Args:  cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		s, err := store.New(dataDir)
		if err != nil {
			return err
		}
		defer s.Close()

		if s.ProvinceCount() == 0 {
			return fmt.Errorf("no provinces in database (run load first)")
		}

		im := importer.New(cfg.Import.RateLimit)

		ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt)
		defer cancel()

		var totalAdded, totalSkipped int
		for _, url := range args {
			logVerbose("fetching %s", url)
			rows, err := im.FetchRows(ctx, url)
			if err != nil {
				fmt.Fprintf(os.Stderr, "  WARNING: %s: %v\n", url, err)
				continue
			}

			added, skipped, err := s.AppendFeatures(rows)
			if err != nil {
				return fmt.Errorf("saving features from %s: %w", url, err)
			}
			totalAdded += added
			totalSkipped += skipped
			fmt.Printf("  %s: %d features added, %d skipped\n", url, added, skipped)
		}

		fmt.Printf("Imported %d features (%d skipped)\n", totalAdded, totalSkipped)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(importCmd)
}
