package cmd

import (
	"fmt"
	"time"

	"github.com/mmhamza1234/procurement/internal/dates"
	"github.com/mmhamza1234/procurement/internal/deadline"
	"github.com/mmhamza1234/procurement/internal/extract"
	"github.com/mmhamza1234/procurement/internal/utils"
	"github.com/spf13/cobra"
)

var (
	dlDate       string
	dlFrom       string
	dlPatterns   string
	dlBuffer     int
	dlComplexity float64
	dlJSON       bool
)

var deadlineCmd = &cobra.Command{
	Use:   "deadline",
	Short: "Derive the supplier quote deadline from a client deadline",
	RunE: func(cmd *cobra.Command, args []string) error {
		if (dlDate == "") == (dlFrom == "") {
			return fmt.Errorf("provide exactly one of --date or --from")
		}

		var client time.Time
		switch {
		case dlDate != "":
			d, ok := dates.Parse(dlDate)
			if !ok {
				return fmt.Errorf("unrecognized date %q", dlDate)
			}
			client = d
		default:
			lib, err := loadLibrary(dlPatterns)
			if err != nil {
				return err
			}
			analyzer := extract.NewAnalyzer()
			analyzer.Lib = lib
			text, err := readInput(dlFrom)
			if err != nil {
				return err
			}
			d, ok := analyzer.Deadline(text)
			if !ok {
				fmt.Printf("⚠ No deadline found in %s, planning against today\n", dlFrom)
				d = dates.DateOnly(time.Now())
			}
			client = d
		}

		calc := deadline.NewCalculator(bufferDays(cmd, "buffer", dlBuffer))
		decision, err := calc.Evaluate(client)
		if err != nil {
			return err
		}

		var optimal *time.Time
		if cmd.Flags().Changed("complexity") {
			d, err := calc.OptimalSupplierDeadline(client, dlComplexity)
			if err != nil {
				return err
			}
			optimal = &d
		}

		if dlJSON {
			out := struct {
				deadline.Decision
				Optimal *time.Time `json:"optimal_supplier_deadline,omitempty"`
			}{decision, optimal}
			b, err := utils.PrettyJSON(out)
			if err != nil {
				return err
			}
			fmt.Println(string(b))
			return nil
		}

		fmt.Printf("Client deadline:   %s\n", formatDay(decision.ClientDeadline))
		fmt.Printf("Supplier deadline: %s\n", formatDay(decision.SupplierDeadline))
		fmt.Printf("Status:            %s (%s urgency)\n", decision.Status, decision.Urgency)
		fmt.Printf("Days remaining:    %d\n", decision.DaysRemaining)
		if !decision.BusinessDay {
			fmt.Println("⚠ Supplier deadline falls on a weekend")
		}
		today := dates.DateOnly(time.Now())
		if !decision.SupplierDeadline.Before(today) {
			fmt.Printf("Business days until supplier deadline: %d\n",
				deadline.BusinessDaysBetween(today, decision.SupplierDeadline))
		}
		if optimal != nil {
			fmt.Printf("Optimal supplier deadline (complexity %.1f): %s\n", dlComplexity, formatDay(*optimal))
		}
		return nil
	},
}

func formatDay(d time.Time) string {
	return d.Format("Monday, January 2, 2006")
}

func init() {
	rootCmd.AddCommand(deadlineCmd)
	deadlineCmd.Flags().StringVar(&dlDate, "date", "", "client deadline in any supported format")
	deadlineCmd.Flags().StringVar(&dlFrom, "from", "", "extract the client deadline from this file ('-' for stdin)")
	deadlineCmd.Flags().StringVar(&dlPatterns, "patterns", "", "pattern overlay YAML file (overrides config)")
	deadlineCmd.Flags().IntVar(&dlBuffer, "buffer", 2, "days to quote before the client deadline (overrides config)")
	deadlineCmd.Flags().Float64Var(&dlComplexity, "complexity", 1.0, "scale the buffer for complex orders and snap to a business day")
	deadlineCmd.Flags().BoolVar(&dlJSON, "json", false, "emit the decision as JSON")
}
