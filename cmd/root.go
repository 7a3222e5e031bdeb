package cmd

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"

	cfgpkg "github.com/mmhamza1234/procurement/internal/config"
	"github.com/mmhamza1234/procurement/internal/patterns"
	"github.com/spf13/cobra"
)

var (
	// Global flags (wired later to config/viper)
	cfgFile string
	debug   bool

	// Loaded configuration
	cfg *cfgpkg.Global
)

var rootCmd = &cobra.Command{
	Use:     "procure",
	Short:   "Procure CLI: tender intelligence and supplier outreach",
	Long:    `Procure is a CLI tool that extracts deadlines, material categories and technical specifications from tender documents, derives safe supplier quote deadlines, and drafts quotation requests for matching suppliers.`,
	Version: "0.1.0",
}

// Execute is the entry point called by main.main()
func Execute() {
	// Initialize configuration before executing commands
	cobra.OnInitialize(loadConfig)
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "✗ Error:", err)
		os.Exit(1)
	}
}

func init() {
	// Persistent global flags available to all subcommands
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default is ~/.procure/config.yaml)")
	rootCmd.PersistentFlags().BoolVar(&debug, "debug", false, "enable debug logging")
}

func loadConfig() {
	level := slog.LevelInfo
	if debug {
		level = slog.LevelDebug
	}
	slog.SetDefault(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level})))

	c, err := cfgpkg.Load(cfgFile)
	if err != nil {
		// Non-fatal: allow running commands that don't need config
		fmt.Fprintf(os.Stderr, "⚠ Warning: failed to load config: %v\n", err)
		cfg = &cfgpkg.Global{BufferDays: 2}
		return
	}
	cfg = c
}

// loadLibrary returns the pattern library, extended with the overlay file
// from the flag or config when one is set.
func loadLibrary(overlayPath string) (*patterns.Library, error) {
	if overlayPath == "" && cfg != nil {
		overlayPath = cfg.Patterns
	}
	lib := patterns.Default()
	if overlayPath == "" {
		return lib, nil
	}
	o, err := patterns.LoadOverlay(overlayPath)
	if err != nil {
		return nil, err
	}
	return lib.Extend(o)
}

// readInput loads a document from a file path, or from stdin when path is "-".
func readInput(path string) (string, error) {
	if path == "-" {
		b, err := io.ReadAll(os.Stdin)
		if err != nil {
			return "", fmt.Errorf("read stdin: %w", err)
		}
		return string(b), nil
	}
	b, err := os.ReadFile(path)
	if err != nil {
		return "", fmt.Errorf("read %s: %w", path, err)
	}
	return string(b), nil
}

// bufferDays resolves the effective buffer: an explicitly set flag wins over
// the configured value.
func bufferDays(cmd *cobra.Command, flagName string, flagValue int) int {
	if cmd.Flags().Changed(flagName) {
		return flagValue
	}
	if cfg != nil {
		return cfg.BufferDays
	}
	return flagValue
}

// parseMaterials maps user-supplied category names onto the known categories.
// Both "finned_tubes" and "finned tubes" spellings are accepted.
func parseMaterials(names []string) ([]patterns.Material, error) {
	out := make([]patterns.Material, 0, len(names))
	for _, name := range names {
		normalized := strings.ReplaceAll(strings.ToLower(strings.TrimSpace(name)), " ", "_")
		found := false
		for _, m := range patterns.Categories() {
			if string(m) == normalized {
				out = append(out, m)
				found = true
				break
			}
		}
		if !found {
			return nil, fmt.Errorf("unknown material category %q (known: %s)", name, strings.Join(materialNames(), ", "))
		}
	}
	return out, nil
}

func materialNames() []string {
	cats := patterns.Categories()
	out := make([]string, 0, len(cats))
	for _, m := range cats {
		out = append(out, string(m))
	}
	return out
}

func materialLabels(materials []patterns.Material) []string {
	out := make([]string, 0, len(materials))
	for _, m := range materials {
		out = append(out, m.Label())
	}
	return out
}
