package cmd

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/mong0520/kapaipai-api/internal/engine"
	domain "github.com/mong0520/kapaipai-api/pkg/types"
)

var (
	checkWatchID int64
	checkDryRun  bool
)

var checkCmd = &cobra.Command{
	Use:   "check",
	Short: "Run one price-check pass and exit",
	Long: "Checks every active watch (or a single one with --watch-id), records snapshots " +
		"and delivers due notifications, then prints the outcome as JSON. With --dry-run " +
		"it only fetches and evaluates prices.",
	RunE: runCheck,
}

func init() {
	checkCmd.Flags().Int64Var(&checkWatchID, "watch-id", 0, "check only this watch")
	checkCmd.Flags().BoolVar(&checkDryRun, "dry-run", false, "evaluate active watches without recording or notifying")
	checkCmd.MarkFlagsMutuallyExclusive("watch-id", "dry-run")
	rootCmd.AddCommand(checkCmd)
}

func runCheck(c *cobra.Command, _ []string) error {
	cfg, log, err := loadConfig()
	if err != nil {
		return err
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	st, err := openStore(ctx, cfg)
	if err != nil {
		return err
	}
	defer st.Close()

	catalog, _ := newCatalog(&cfg.Kapaipai)
	eng := newEngine(cfg, catalog, st, log)

	var out any
	switch {
	case checkDryRun:
		var results []engine.WatchCheck
		results, err = eng.PreviewPriceCheck(ctx)
		out = previewRows(results)
	case checkWatchID > 0:
		out, err = eng.CheckWatchByID(ctx, checkWatchID)
	default:
		out, err = eng.RunPriceCheck(ctx)
	}
	if err != nil {
		return fmt.Errorf("price check: %w", err)
	}

	enc := json.NewEncoder(c.OutOrStdout())
	enc.SetIndent("", "  ")
	return enc.Encode(out)
}

type previewRow struct {
	WatchID  int64                 `json:"watch_id"`
	CardName string                `json:"card_name"`
	Snapshot *domain.PriceSnapshot `json:"snapshot,omitempty"`
	InRange  bool                  `json:"in_range"`
	Error    string                `json:"error,omitempty"`
}

func previewRows(results []engine.WatchCheck) []previewRow {
	rows := make([]previewRow, 0, len(results))
	for _, r := range results {
		row := previewRow{WatchID: r.Watch.ID, CardName: r.Watch.CardName, Snapshot: r.Snapshot}
		if r.Err != nil {
			row.Error = r.Err.Error()
		} else {
			row.InRange = engine.Evaluate(r.Watch, r.Snapshot, nil) != nil
		}
		rows = append(rows, row)
	}
	return rows
}
