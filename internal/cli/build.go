package cli

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/stelint/stelint/internal/pipeline"
)

var buildTimeout time.Duration

// buildCmd represents the build command
var buildCmd = &cobra.Command{
	Use:   "build <dictionary>",
	Short: "Build the STE word lists from the dictionary document",
	Long: `Build extracts the text of the ASD-STE100 dictionary document and
derives three word lists from it:
- approved words, expanded with their regular inflections
- forbidden words, kept verbatim
- an allow-list of technical names swept from all-caps usage

The lists are written to the configured lexicon paths (~/.stelint by
default) and reused by every later lint run.

Example:
  stelint build ASD-STE100-Issue-9.pdf
  stelint build dictionary.txt --verbose`,
	Args: cobra.ExactArgs(1),
	RunE: runBuild,
}

func init() {
	rootCmd.AddCommand(buildCmd)

	buildCmd.Flags().DurationVar(&buildTimeout, "timeout", 5*time.Minute, "overall build timeout")
	buildCmd.Flags().StringVar(&approvedPath, "approved", "", "approved wordlist output path (default from config)")
	buildCmd.Flags().StringVar(&forbiddenPath, "forbidden", "", "forbidden wordlist output path (default from config)")
	buildCmd.Flags().StringVar(&allowListPath, "allow-list", "", "allow-list output path (default from config)")
}

func runBuild(cmd *cobra.Command, args []string) error {
	ctx, cancel := context.WithTimeout(context.Background(), buildTimeout)
	defer cancel()

	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	cfg.Lexicon.DocumentPath = args[0]
	applyLexiconFlags(cfg)

	if cfg.Output.Verbose {
		fmt.Fprintf(os.Stderr, "Building word lists from: %s\n", args[0])
	}

	p := pipeline.NewPipeline(cfg)
	defer func() { _ = p.Close() }()

	stats, err := p.BuildLexicons(ctx)
	if err != nil {
		return fmt.Errorf("build failed: %w", err)
	}

	fmt.Printf("✓ Approved words:  %d (%s)\n", stats.Approved, cfg.Lexicon.ApprovedPath)
	fmt.Printf("✓ Forbidden words: %d (%s)\n", stats.Forbidden, cfg.Lexicon.ForbiddenPath)
	fmt.Printf("✓ Allow-list:      %d (%s)\n", stats.AllowList, cfg.Lexicon.AllowListPath)

	return nil
}
