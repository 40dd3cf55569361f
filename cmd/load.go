package cmd

import (
	"fmt"

	"github.com/Biniyan/sociomap/internal/dataset"
	"github.com/Biniyan/sociomap/internal/store"
	"github.com/spf13/cobra"
)

var loadCmd = &cobra.Command{
	Use:   "load",
	Short: "Load the embedded curriculum dataset into the database",
	RunE: func(cmd *cobra.Command, args []string) error {
		s, err := store.New(dataDir)
		if err != nil {
			return err
		}
		defer s.Close()

		ds, err := dataset.Seed()
		if err != nil {
			return err
		}

		if err := s.WriteDataset(ds); err != nil {
			return fmt.Errorf("saving dataset: %w", err)
		}

		fmt.Printf("Loaded %d provinces, %d features, %d highways\n",
			len(ds.Provinces), ds.FeatureCount(), len(ds.Highways))
		return nil
	},
}

func init() {
	rootCmd.AddCommand(loadCmd)
}
