package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/mong0520/kapaipai-api/internal/engine"
)

func notificationsCmd() *cobra.Command {
	var limit int

	cmd := &cobra.Command{
		Use:   "notifications",
		Short: "Show sent price alerts",
		Example: `  kpp notifications --user U123
  kpp notifications --limit 10 --output json`,
		RunE: func(c *cobra.Command, _ []string) error {
			recs, err := newClient().ListNotifications(c.Context(), userID(), limit)
			if err != nil {
				return err
			}
			if jsonOutput() {
				return outputJSON(c.OutOrStdout(), recs)
			}
			if len(recs) == 0 {
				fmt.Fprintln(c.OutOrStdout(), "No notifications found.")
				return nil
			}
			return printNotificationsTable(c.OutOrStdout(), recs)
		},
	}
	cmd.Flags().IntVar(&limit, "limit", 0, "maximum notifications to return")

	return cmd
}

func jobsCmd() *cobra.Command {
	var limit int

	cmd := &cobra.Command{
		Use:   "jobs [job_name]",
		Short: "Show scheduler job history",
		Long: "Show the execution history of a scheduled job (default price_check).\n" +
			"Each run records status, duration, and any errors.",
		Example: `  kpp jobs
  kpp jobs price_check --limit 5 --output json`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(c *cobra.Command, args []string) error {
			job := engine.PriceCheckJob
			if len(args) == 1 {
				job = args[0]
			}
			runs, err := newClient().GetJobHistory(c.Context(), job, limit)
			if err != nil {
				return err
			}
			if jsonOutput() {
				return outputJSON(c.OutOrStdout(), runs)
			}
			if len(runs) == 0 {
				fmt.Fprintf(c.OutOrStdout(), "No runs found for job %q.\n", job)
				return nil
			}
			return printJobRunsTable(c.OutOrStdout(), runs)
		},
	}
	cmd.Flags().IntVar(&limit, "limit", 0, "maximum runs to return")

	return cmd
}

func priceCheckCmd() *cobra.Command {
	return &cobra.Command{
		Use:     "price-check",
		Short:   "Check every active watch now",
		Example: `  kpp price-check`,
		RunE: func(c *cobra.Command, _ []string) error {
			sum, err := newClient().RunPriceCheck(c.Context())
			if err != nil {
				return err
			}
			if jsonOutput() {
				return outputJSON(c.OutOrStdout(), sum)
			}
			fmt.Fprintf(c.OutOrStdout(),
				"Checked %d, failed %d, skipped %d, notified %d, suppressed %d.\n",
				sum.Checked, sum.Failed, sum.Skipped, sum.Notified, sum.Suppressed)
			return nil
		},
	}
}
