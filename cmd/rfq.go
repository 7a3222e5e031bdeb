package cmd

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/mmhamza1234/procurement/internal/dates"
	"github.com/mmhamza1234/procurement/internal/deadline"
	"github.com/mmhamza1234/procurement/internal/extract"
	"github.com/mmhamza1234/procurement/internal/rfq"
	"github.com/mmhamza1234/procurement/internal/supplier"
	"github.com/mmhamza1234/procurement/internal/tracker"
	"github.com/mmhamza1234/procurement/internal/utils"
	"github.com/spf13/cobra"
)

var (
	rfFrom       string
	rfRoster     string
	rfPatterns   string
	rfOut        string
	rfProject    string
	rfRef        string
	rfDate       string
	rfMaterials  []string
	rfExclude    []string
	rfNote       string
	rfOriginNote bool
	rfBuffer     int
	rfJSON       bool
	rfQuiet      bool
)

var rfqCmd = &cobra.Command{
	Use:   "rfq --from <tender> --roster <roster>",
	Short: "Draft quotation requests for suppliers matching a tender",
	RunE: func(cmd *cobra.Command, args []string) error {
		if rfFrom == "" {
			return fmt.Errorf("--from is required")
		}
		rosterPath := rfRoster
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

		lib, err := loadLibrary(rfPatterns)
		if err != nil {
			return err
		}
		analyzer := extract.NewAnalyzer()
		analyzer.Lib = lib
		text, err := readInput(rfFrom)
		if err != nil {
			return err
		}
		doc := analyzer.Analyze(text)

		quiet := rfQuiet || (cfg != nil && cfg.Quiet)

		// Flags override extracted facts.
		projectName := doc.ProjectName
		if rfProject != "" {
			projectName = rfProject
		}
		if projectName == "" {
			projectName = strings.TrimSuffix(filepath.Base(rfFrom), filepath.Ext(rfFrom))
		}
		reference := doc.TenderReference
		if rfRef != "" {
			reference = rfRef
		}

		var client time.Time
		switch {
		case rfDate != "":
			d, ok := dates.Parse(rfDate)
			if !ok {
				return fmt.Errorf("unrecognized date %q", rfDate)
			}
			client = d
		case doc.Deadline != nil:
			client = *doc.Deadline
		default:
			client = dates.DateOnly(time.Now())
			if !quiet {
				fmt.Println("⚠ No deadline found in the document, planning against today")
			}
		}

		calc := deadline.NewCalculator(bufferDays(cmd, "buffer", rfBuffer))
		quoteDeadline, err := calc.SupplierDeadline(client)
		if err != nil {
			return err
		}

		materials := doc.Materials
		if len(rfMaterials) > 0 {
			materials, err = parseMaterials(rfMaterials)
			if err != nil {
				return err
			}
		}

		matched := supplier.Filter(roster, materials, rfExclude)
		if len(matched) == 0 {
			return fmt.Errorf("no suppliers in %s match the requested materials", rosterPath)
		}

		det := rfq.Details{
			ProjectName:     projectName,
			TenderReference: reference,
			QuoteDeadline:   quoteDeadline,
			Requirements:    doc.Specifications,
			Notes:           rfNote,
			ExcludeOrigins:  rfExclude,
			OriginNote:      rfOriginNote,
		}
		signature := ""
		if cfg != nil {
			signature = cfg.Signature
		}
		gen := rfq.NewGenerator(signature)
		drafts := gen.DraftAll(matched, det)

		for _, d := range drafts {
			if !rfq.ValidAddress(d.Email) {
				fmt.Fprintf(os.Stderr, "⚠ %s: missing or invalid email address\n", d.Company)
			}
		}

		// Record the outreach before printing so the id is available.
		followUp := quoteDeadline.AddDate(0, 0, 1)
		log := tracker.NewLog()
		id := log.Add(tracker.Order{
			ProjectName:       projectName,
			TenderReference:   reference,
			Materials:         materialLabels(materials),
			SupplierCount:     len(matched),
			EmailsSent:        len(drafts),
			SupplierBreakdown: tracker.CategorizeSuppliers(drafts),
			FollowUpDate:      &followUp,
			Notes:             rfNote,
		})
		order, _ := log.Get(id)

		switch {
		case rfJSON:
			out := struct {
				Order  tracker.Order `json:"order"`
				Drafts []rfq.Draft   `json:"drafts"`
			}{order, drafts}
			b, err := utils.PrettyJSON(out)
			if err != nil {
				return err
			}
			fmt.Println(string(b))
			return nil
		case rfOut != "":
			if err := utils.EnsureDataDir(rfOut); err != nil {
				return fmt.Errorf("create output dir: %w", err)
			}
			for _, d := range drafts {
				name := slugify(d.Company)
				outFile := filepath.Join(rfOut, name+".md")
				if _, statErr := os.Stat(outFile); statErr == nil {
					idx := 2
					for {
						cand := filepath.Join(rfOut, fmt.Sprintf("%s-%d.md", name, idx))
						if _, err := os.Stat(cand); os.IsNotExist(err) {
							outFile = cand
							break
						}
						idx++
					}
				}
				content := fmt.Sprintf("Subject: %s\nTo: %s\n\n%s\n", d.Subject, d.Email, d.Body)
				if err := utils.SafeWriteFile(outFile, []byte(content)); err != nil {
					return fmt.Errorf("write draft: %w", err)
				}
			}
			fmt.Printf("✓ Wrote %d drafts to %s\n", len(drafts), rfOut)
		default:
			if !quiet {
				for _, d := range drafts {
					fmt.Printf("--- %s <%s> ---\n", d.Company, d.Email)
					fmt.Printf("Subject: %s\n\n%s\n\n", d.Subject, d.Body)
				}
			}
		}

		if !quiet {
			fmt.Println(rfq.Summary(drafts, det))
			fmt.Println()
		}
		fmt.Printf("✓ Order %s recorded, follow up on %s\n", id, followUp.Format("January 2, 2006"))
		return nil
	},
}

// slugify reduces a company name to a safe file stem.
func slugify(s string) string {
	s = strings.ToLower(strings.TrimSpace(s))
	var b strings.Builder
	for _, r := range s {
		if (r >= 'a' && r <= 'z') || (r >= '0' && r <= '9') {
			b.WriteRune(r)
		} else if r == ' ' || r == '-' || r == '_' {
			b.WriteRune('-')
		}
	}
	out := strings.Trim(b.String(), "-")
	if out == "" {
		out = "draft"
	}
	return out
}

func init() {
	rootCmd.AddCommand(rfqCmd)
	rfqCmd.Flags().StringVar(&rfFrom, "from", "", "tender document to analyze ('-' for stdin)")
	rfqCmd.Flags().StringVar(&rfRoster, "roster", "", "supplier roster YAML file (overrides config)")
	rfqCmd.Flags().StringVar(&rfPatterns, "patterns", "", "pattern overlay YAML file (overrides config)")
	rfqCmd.Flags().StringVarP(&rfOut, "out", "o", "", "directory to write one draft file per supplier")
	rfqCmd.Flags().StringVar(&rfProject, "project", "", "override the extracted project name")
	rfqCmd.Flags().StringVar(&rfRef, "ref", "", "override the extracted tender reference")
	rfqCmd.Flags().StringVar(&rfDate, "date", "", "override the extracted client deadline")
	rfqCmd.Flags().StringSliceVar(&rfMaterials, "materials", nil, "override the detected material categories")
	rfqCmd.Flags().StringSliceVar(&rfExclude, "exclude-origin", nil, "drop suppliers from these countries")
	rfqCmd.Flags().StringVar(&rfNote, "note", "", "additional information for the drafts")
	rfqCmd.Flags().BoolVar(&rfOriginNote, "origin-note", false, "state the origin exclusions in the drafts")
	rfqCmd.Flags().IntVar(&rfBuffer, "buffer", 2, "days to quote before the client deadline (overrides config)")
	rfqCmd.Flags().BoolVar(&rfJSON, "json", false, "emit the order and drafts as JSON")
	rfqCmd.Flags().BoolVar(&rfQuiet, "quiet", false, "suppress draft bodies and summary")
}
