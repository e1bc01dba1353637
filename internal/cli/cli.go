package cli

import (
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/pfrederiksen/event-finder/internal/fetch"
	"github.com/pfrederiksen/event-finder/internal/logger"
	"github.com/pfrederiksen/event-finder/internal/sites"
	"github.com/spf13/cobra"
)

const (
	ExitSuccess = 0
	ExitError   = 1
)

var (
	flagCategory string
	flagFormat   string
	flagSites    string
	flagTimeout  time.Duration
	flagVerbose  bool
)

// NewRootCmd creates the root command
func NewRootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "event-finder",
		Short: "Find events listed on configured web sites",
		Long: `A CLI tool that scrapes event listings from configured sites and prints
them as labelled text blocks or JSON. Without --category it runs an
interactive menu; with --category it scrapes once and exits.`,
		RunE:          runRoot,
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	// Define flags
	cmd.Flags().StringVar(&flagCategory, "category", "", "Event category: music, unique, general or all (omit for the menu)")
	cmd.Flags().StringVar(&flagFormat, "format", "text", "Output format: text or json")
	cmd.Flags().StringVar(&flagSites, "sites", "", "Path to a YAML site registry replacing the built-in sites")
	cmd.Flags().DurationVar(&flagTimeout, "timeout", fetch.DefaultTimeout, "HTTP timeout per page")
	cmd.Flags().BoolVar(&flagVerbose, "verbose", false, "Enable verbose logging")

	return cmd
}

// runRoot validates flags, assembles the pipeline and dispatches to
// menu or one-shot mode.
func runRoot(cmd *cobra.Command, args []string) error {
	logger.Init(flagVerbose)

	// Validate format
	format := OutputFormat(strings.ToLower(flagFormat))
	if format != FormatText && format != FormatJSON {
		return fmt.Errorf("invalid format: %s (must be 'text' or 'json')", flagFormat)
	}

	registry := sites.Builtin()
	if flagSites != "" {
		loaded, err := sites.Load(flagSites)
		if err != nil {
			return fmt.Errorf("loading sites: %w", err)
		}
		registry = loaded
	}

	sc := newScraper(fetch.New(flagTimeout), registry)

	if flagCategory == "" {
		return runMenu(cmd.InOrStdin(), cmd.OutOrStdout(), sc)
	}

	category, err := sites.ParseCategory(flagCategory)
	if err != nil {
		return fmt.Errorf("invalid category: %s (must be music, unique, general or all)", flagCategory)
	}

	events, err := sc.scrape(category)
	if err != nil {
		return err
	}

	result := &OutputResult{
		FetchedAt:  time.Now().UTC(),
		Category:   category,
		Sites:      siteNames(sites.Filter(registry, category)),
		Events:     events,
		EventCount: len(events),
	}

	if err := WriteOutput(cmd.OutOrStdout(), result, format); err != nil {
		return fmt.Errorf("writing output: %w", err)
	}
	return nil
}

func siteNames(selected []sites.Site) []string {
	names := make([]string, 0, len(selected))
	for _, s := range selected {
		names = append(names, s.Name)
	}
	return names
}

// Execute runs the CLI
func Execute() {
	if err := NewRootCmd().Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(ExitError)
	}
}
