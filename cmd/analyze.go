package cmd

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/mmhamza1234/procurement/internal/deadline"
	"github.com/mmhamza1234/procurement/internal/extract"
	"github.com/mmhamza1234/procurement/internal/utils"
	"github.com/spf13/cobra"
)

var (
	azJSON     bool
	azBuffer   int
	azPatterns string
	azQuiet    bool
)

// analyzeReport pairs an extraction result with its source and, when a
// deadline was found, the derived supplier decision.
type analyzeReport struct {
	File string `json:"file"`
	*extract.Document
	Decision *deadline.Decision `json:"decision,omitempty"`
}

var analyzeCmd = &cobra.Command{
	Use:   "analyze <files...|->",
	Short: "Extract deadline, materials and specifications from tender text",
	Args:  cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		lib, err := loadLibrary(azPatterns)
		if err != nil {
			return err
		}
		analyzer := extract.NewAnalyzer()
		analyzer.Lib = lib
		calc := deadline.NewCalculator(bufferDays(cmd, "buffer", azBuffer))

		files := expandInputs(args)
		if len(files) == 0 {
			return fmt.Errorf("no input files matched")
		}

		quiet := azQuiet || (cfg != nil && cfg.Quiet)
		reports := make([]analyzeReport, 0, len(files))
		readable := 0
		for i, path := range files {
			if !quiet && len(files) > 1 {
				fmt.Printf("[%d/%d] Processing %s...\n", i+1, len(files), filepath.Base(path))
			}
			rep := analyzeReport{File: path}
			text, err := readInput(path)
			if err != nil {
				// One bad file never aborts the batch.
				rep.Document = &extract.Document{Error: err.Error()}
				reports = append(reports, rep)
				if !azJSON {
					fmt.Printf("⚠ %s: %v\n", path, err)
				}
				continue
			}
			readable++
			rep.Document = analyzer.Analyze(text)
			if rep.Deadline != nil {
				if d, err := calc.Evaluate(*rep.Deadline); err == nil {
					rep.Decision = &d
				}
			}
			reports = append(reports, rep)
			if !azJSON {
				printReport(rep)
			}
		}
		if readable == 0 {
			return fmt.Errorf("no readable inputs")
		}

		if azJSON {
			var payload any = reports
			if len(reports) == 1 {
				payload = reports[0]
			}
			b, err := utils.PrettyJSON(payload)
			if err != nil {
				return err
			}
			fmt.Println(string(b))
		}
		return nil
	},
}

// expandInputs globs each argument, keeps literal paths that exist, and
// passes "-" (stdin) through untouched. Duplicates are dropped.
func expandInputs(args []string) []string {
	var files []string
	seen := map[string]struct{}{}
	for _, arg := range args {
		if arg == "-" {
			if _, ok := seen[arg]; !ok {
				seen[arg] = struct{}{}
				files = append(files, arg)
			}
			continue
		}
		matches, _ := filepath.Glob(arg)
		if len(matches) == 0 {
			matches = []string{arg}
		}
		for _, m := range matches {
			if _, ok := seen[m]; ok {
				continue
			}
			seen[m] = struct{}{}
			files = append(files, m)
		}
	}
	sort.Strings(files)
	return files
}

func printReport(rep analyzeReport) {
	fmt.Printf("✓ %s\n", rep.File)
	fmt.Printf("  Project:    %s\n", orNone(rep.ProjectName))
	fmt.Printf("  Reference:  %s\n", orNone(rep.TenderReference))
	fmt.Printf("  Materials:  %s\n", orNone(strings.Join(materialLabels(rep.Materials), ", ")))
	if rep.Deadline != nil {
		fmt.Printf("  Deadline:   %s\n", rep.Deadline.Format("January 2, 2006"))
	} else {
		fmt.Printf("  Deadline:   (none found)\n")
	}
	if rep.Decision != nil {
		fmt.Printf("  Supplier deadline: %s (%s, %s urgency, %d days remaining)\n",
			rep.Decision.SupplierDeadline.Format("January 2, 2006"),
			rep.Decision.Status, rep.Decision.Urgency, rep.Decision.DaysRemaining)
	}
	if len(rep.Specifications) > 0 {
		fmt.Printf("  Specifications (%d):\n", len(rep.Specifications))
		for _, spec := range rep.Specifications {
			fmt.Printf("    • %s\n", spec)
		}
	}
}

func orNone(s string) string {
	if s == "" {
		return "(none)"
	}
	return s
}

func init() {
	rootCmd.AddCommand(analyzeCmd)
	analyzeCmd.Flags().BoolVar(&azJSON, "json", false, "emit the full extraction as JSON")
	analyzeCmd.Flags().IntVar(&azBuffer, "buffer", 2, "days to quote before the client deadline (overrides config)")
	analyzeCmd.Flags().StringVar(&azPatterns, "patterns", "", "pattern overlay YAML file (overrides config)")
	analyzeCmd.Flags().BoolVar(&azQuiet, "quiet", false, "suppress progress output")
}
