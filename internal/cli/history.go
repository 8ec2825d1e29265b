package cli

import (
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/stelint/stelint/internal/history"
)

var historyLimit int

// historyCmd represents the history command
var historyCmd = &cobra.Command{
	Use:   "history",
	Short: "Show recent lint runs",
	Long: `History lists the most recent lint runs recorded in the local
history database, newest first.

Example:
  stelint history
  stelint history --limit 50`,
	RunE: runHistory,
}

func init() {
	rootCmd.AddCommand(historyCmd)

	historyCmd.Flags().IntVar(&historyLimit, "limit", 20, "maximum number of runs to show")
}

func runHistory(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	if !cfg.History.Enabled || cfg.History.Path == "" {
		return fmt.Errorf("history is disabled in the configuration")
	}

	store, err := history.Open(cfg.History.Path)
	if err != nil {
		return fmt.Errorf("open history: %w", err)
	}
	defer func() { _ = store.Close() }()

	runs, err := store.Recent(historyLimit)
	if err != nil {
		return fmt.Errorf("read history: %w", err)
	}
	if len(runs) == 0 {
		fmt.Println("No lint runs recorded yet.")
		return nil
	}

	w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
	fmt.Fprintln(w, "WHEN\tSOURCE\tTOTAL\tFORBIDDEN\tUNAPPROVED\tTOO LONG\tPASSIVE\tDURATION")
	for _, run := range runs {
		fmt.Fprintf(w, "%s\t%s\t%d\t%d\t%d\t%d\t%d\t%s\n",
			run.Timestamp.Format("2006-01-02 15:04:05"),
			run.Source,
			run.Total,
			run.Forbidden,
			run.Unapproved,
			run.TooLong,
			run.Passive,
			run.Duration,
		)
	}
	return w.Flush()
}
