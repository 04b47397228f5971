package main

import (
	"encoding/json"
	"os"

	"github.com/spf13/cobra"

	"github.com/sells-group/leadgen-cli/internal/model"
	"github.com/sells-group/leadgen-cli/internal/search"
)

var (
	searchIndustry     string
	searchCity         string
	searchMinEmployees int
	searchMaxEmployees int
)

var searchCmd = &cobra.Command{
	Use:   "search",
	Short: "Search for candidate leads without enriching them",
	RunE: func(cmd *cobra.Command, args []string) error {
		criteria := model.DefaultCriteria()
		criteria.Industry = searchIndustry
		criteria.City = searchCity
		criteria.MinEmployees = searchMinEmployees
		criteria.MaxEmployees = searchMaxEmployees

		searcher := search.New(newApolloClient(cfg))
		leads := searcher.Search(cmd.Context(), criteria)

		enc := json.NewEncoder(os.Stdout)
		enc.SetIndent("", "  ")
		return enc.Encode(leads)
	},
}

func init() {
	searchCmd.Flags().StringVar(&searchIndustry, "industry", "software", "industry keyword")
	searchCmd.Flags().StringVar(&searchCity, "city", "New York", "city filter")
	searchCmd.Flags().IntVar(&searchMinEmployees, "min-employees", 50, "minimum headcount")
	searchCmd.Flags().IntVar(&searchMaxEmployees, "max-employees", 200, "maximum headcount")
	rootCmd.AddCommand(searchCmd)
}
