package cmd

import (
	"fmt"
	"sort"

	"github.com/Biniyan/sociomap/internal/store"
	"github.com/spf13/cobra"
)

var statusCmd = &cobra.Command{
	Use:   "status",
	Short: "Show dataset status",
	RunE: func(cmd *cobra.Command, args []string) error {
		s, err := store.New(dataDir)
		if err != nil {
			return err
		}
		defer s.Close()

		fmt.Printf("Dataset Status\n")
		fmt.Printf("==============\n")
		fmt.Printf("Provinces: %d\n", s.ProvinceCount())
		fmt.Printf("Features:  %d\n", s.FeatureCount())
		fmt.Printf("Highways:  %d\n", s.HighwayCount())
		if at := s.LoadedAt(); at != "" {
			fmt.Printf("Loaded at: %s\n", at)
		}

		byCat := s.FeatureCountByCategory()
		if len(byCat) > 0 {
			fmt.Printf("\nPer-Category Breakdown\n")
			fmt.Printf("----------------------\n")
			var cats []string
			for c := range byCat {
				cats = append(cats, c)
			}
			sort.Strings(cats)
			for _, c := range cats {
				fmt.Printf("  %-24s %4d\n", c, byCat[c])
			}
		}

		byProv := s.FeatureCountByProvince()
		if len(byProv) > 0 {
			fmt.Printf("\nPer-Province Breakdown\n")
			fmt.Printf("----------------------\n")
			var provs []string
			for p := range byProv {
				provs = append(provs, p)
			}
			sort.Strings(provs)
			for _, p := range provs {
				fmt.Printf("  %-16s %4d\n", p, byProv[p])
			}
		}

		return nil
	},
}

func init() {
	rootCmd.AddCommand(statusCmd)
}
