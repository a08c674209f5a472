package cmd

import (
	"context"
	"fmt"
	"io"
	"time"

	"github.com/spf13/cobra"
)

const migrateTimeout = 60 * time.Second

var migrateStatus bool

var migrateCmd = &cobra.Command{
	Use:   "migrate",
	Short: "Apply database migrations",
	Long: `Apply the embedded SQL migrations that the database has not seen yet.
With --status, list the pending migrations and exit without applying them.`,
	RunE: runMigrate,
}

func init() {
	migrateCmd.Flags().BoolVar(&migrateStatus, "status", false, "list pending migrations without applying them")
	rootCmd.AddCommand(migrateCmd)
}

func runMigrate(c *cobra.Command, _ []string) error {
	cfg, log, err := loadConfig()
	if err != nil {
		return err
	}

	ctx, cancel := context.WithTimeout(context.Background(), migrateTimeout)
	defer cancel()

	st, err := openStore(ctx, cfg)
	if err != nil {
		return err
	}
	defer st.Close()

	pending, err := st.PendingMigrations(ctx)
	if err != nil {
		return fmt.Errorf("listing pending migrations: %w", err)
	}

	if migrateStatus {
		printPending(c.OutOrStdout(), pending)
		return nil
	}
	if len(pending) == 0 {
		log.Info("schema up to date", "database", cfg.Database.Name)
		return nil
	}

	log.Info("applying migrations",
		"host", cfg.Database.Host,
		"database", cfg.Database.Name,
		"pending", pending,
	)
	if err := st.Migrate(ctx); err != nil {
		return fmt.Errorf("running migrations: %w", err)
	}

	log.Info("migrations complete", "applied", len(pending))
	return nil
}

func printPending(w io.Writer, pending []string) {
	if len(pending) == 0 {
		fmt.Fprintln(w, "No pending migrations.")
		return
	}
	fmt.Fprintf(w, "%d pending migration(s):\n", len(pending))
	for _, v := range pending {
		fmt.Fprintln(w, "  "+v)
	}
}
