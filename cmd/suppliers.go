package cmd

import (
	"fmt"
	"sort"

	"github.com/mmhamza1234/procurement/internal/patterns"
	"github.com/mmhamza1234/procurement/internal/supplier"
	"github.com/mmhamza1234/procurement/internal/utils"
	"github.com/spf13/cobra"
)

var (
	spRoster  string
	spSearch  string
	spCountry string
	spStats   bool
	spJSON    bool
)

var suppliersCmd = &cobra.Command{
	Use:   "suppliers",
	Short: "List, search or summarize the supplier roster",
	RunE: func(cmd *cobra.Command, args []string) error {
		rosterPath := spRoster
		if rosterPath == "" && cfg != nil {
			rosterPath = cfg.Roster
		}
		if rosterPath == "" {
			return fmt.Errorf("no roster given (use --roster or set the roster config key)")
		}
		roster, err := supplier.LoadRoster(rosterPath)
		if err != nil {
			return err
		}

		modes := 0
		if spStats {
			modes++
		}
		if spSearch != "" {
			modes++
		}
		if spCountry != "" {
			modes++
		}
		if modes > 1 {
			return fmt.Errorf("specify at most one of --stats, --search or --country")
		}

		if spStats {
			st := supplier.Summarize(roster)
			if spJSON {
				b, err := utils.PrettyJSON(st)
				if err != nil {
					return err
				}
				fmt.Println(string(b))
				return nil
			}
			printStats(st)
			return nil
		}

		shown := roster
		switch {
		case spSearch != "":
			shown = supplier.Search(roster, spSearch)
		case spCountry != "":
			shown = supplier.ByCountry(roster, spCountry)
		}
		if spJSON {
			b, err := utils.PrettyJSON(shown)
			if err != nil {
				return err
			}
			fmt.Println(string(b))
			return nil
		}
		if len(shown) == 0 {
			fmt.Println("(no suppliers)")
			return nil
		}
		for _, s := range shown {
			fmt.Printf("- %s (%s): %s\n", s.Company, s.Country, s.MaterialsText())
		}
		return nil
	},
}

func printStats(st supplier.Stats) {
	fmt.Printf("Total suppliers: %d\n", st.Total)
	fmt.Printf("Countries: %d\n", st.Countries)
	fmt.Printf("European: %d\n", st.European)
	fmt.Printf("Recent additions: %d\n", st.Recent)
	if len(st.ByCountry) > 0 {
		fmt.Println("By country:")
		countries := make([]string, 0, len(st.ByCountry))
		for c := range st.ByCountry {
			countries = append(countries, c)
		}
		sort.Strings(countries)
		for _, c := range countries {
			fmt.Printf("  - %s: %d\n", c, st.ByCountry[c])
		}
	}
	if len(st.ByMaterial) > 0 {
		fmt.Println("By material:")
		for _, m := range patterns.Categories() {
			if n := st.ByMaterial[m]; n > 0 {
				fmt.Printf("  - %s: %d\n", m.Label(), n)
			}
		}
	}
}

func init() {
	rootCmd.AddCommand(suppliersCmd)
	suppliersCmd.Flags().StringVar(&spRoster, "roster", "", "supplier roster YAML file (overrides config)")
	suppliersCmd.Flags().StringVar(&spSearch, "search", "", "free-text search over name, country, specialization and materials")
	suppliersCmd.Flags().StringVar(&spCountry, "country", "", "keep only suppliers from this country")
	suppliersCmd.Flags().BoolVar(&spStats, "stats", false, "print roster statistics")
	suppliersCmd.Flags().BoolVar(&spJSON, "json", false, "emit results as JSON")
}
