package cmd

import (
	"errors"
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	apiclient "github.com/mong0520/kapaipai-api/internal/api/client"
	domain "github.com/mong0520/kapaipai-api/pkg/types"
)

func watchCmd() *cobra.Command {
	watchRoot := &cobra.Command{
		Use:   "watches",
		Short: "Manage price watches",
		Long: "Manage watches that notify you when a card variant's lowest price\n" +
			"falls into a target range.",
	}

	watchRoot.AddCommand(
		watchListCmd(),
		watchGetCmd(),
		watchAddCmd(),
		watchUpdateCmd(),
		watchEnableCmd(),
		watchDisableCmd(),
		watchDeleteCmd(),
		watchCheckCmd(),
		watchHistoryCmd(),
	)

	return watchRoot
}

func parseID(arg string) (int64, error) {
	id, err := strconv.ParseInt(arg, 10, 64)
	if err != nil || id <= 0 {
		return 0, fmt.Errorf("invalid watch id %q", arg)
	}
	return id, nil
}

func watchListCmd() *cobra.Command {
	var p apiclient.ListWatchesParams

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List watches",
		Example: `  kpp watches list --user U123
  kpp watches list --active --output json`,
		RunE: func(c *cobra.Command, _ []string) error {
			p.UserID = userID()
			list, err := newClient().ListWatches(c.Context(), &p)
			if err != nil {
				return err
			}
			if jsonOutput() {
				return outputJSON(c.OutOrStdout(), list)
			}
			if len(list.Watches) == 0 {
				fmt.Fprintln(c.OutOrStdout(), "No watches found.")
				return nil
			}
			return printWatchTable(c.OutOrStdout(), list.Watches)
		},
	}
	cmd.Flags().BoolVar(&p.ActiveOnly, "active", false, "only active watches")
	cmd.Flags().StringVar(&p.CardKey, "card-key", "", "only watches of this card")
	cmd.Flags().IntVar(&p.Limit, "limit", 0, "maximum watches to return")
	cmd.Flags().IntVar(&p.Offset, "offset", 0, "pagination offset")

	return cmd
}

func watchGetCmd() *cobra.Command {
	return &cobra.Command{
		Use:     "get <id>",
		Short:   "Show watch details and its latest price",
		Example: `  kpp watches get 42`,
		Args:    cobra.ExactArgs(1),
		RunE: func(c *cobra.Command, args []string) error {
			id, err := parseID(args[0])
			if err != nil {
				return err
			}
			w, err := newClient().GetWatch(c.Context(), id)
			if err != nil {
				return err
			}
			if jsonOutput() {
				return outputJSON(c.OutOrStdout(), w)
			}
			return printWatchDetail(c.OutOrStdout(), w)
		},
	}
}

func watchAddCmd() *cobra.Command {
	var w domain.Watch

	cmd := &cobra.Command{
		Use:   "add",
		Short: "Watch a card variant",
		Long: "Create a watch for a card variant. Adding a variant you already\n" +
			"watch updates its target range and re-activates it.",
		Example: `  # Notify when the SR Pikachu from SV2a is 500 TWD or less
  kpp watches add --user U123 --card-key 12345 --name 皮卡丘 --rare SR \
    --pack-id SV2a --target 500

  # Only notify between 300 and 500 TWD
  kpp watches add --user U123 --card-key 12345 --name 皮卡丘 --rare SR \
    --target 500 --target-min 300`,
		RunE: func(c *cobra.Command, _ []string) error {
			w.UserID = userID()
			if w.UserID == "" {
				return errors.New("--user is required")
			}
			created, err := newClient().CreateWatch(c.Context(), &w)
			if err != nil {
				return err
			}
			if jsonOutput() {
				return outputJSON(c.OutOrStdout(), created)
			}
			fmt.Fprintf(c.OutOrStdout(), "Watch %d: %s %s %s\n",
				created.ID, created.CardName, created.Rare, targetRange(created))
			return nil
		},
	}
	cmd.Flags().StringVar(&w.CardKey, "card-key", "", "marketplace card key")
	cmd.Flags().StringVar(&w.CardName, "name", "", "card name")
	cmd.Flags().StringVar(&w.Rare, "rare", "", "rarity code")
	cmd.Flags().StringVar(&w.PackID, "pack-id", "", "pack identifier")
	cmd.Flags().StringVar(&w.PackName, "pack-name", "", "pack name")
	cmd.Flags().StringVar(&w.PackCardID, "pack-card-id", "", "card number within the pack")
	cmd.Flags().StringVar(&w.ImageURL, "image-url", "", "card image URL for notifications")
	cmd.Flags().IntVar(&w.TargetPriceMax, "target", 0, "notify at or below this price")
	cmd.Flags().IntVar(&w.TargetPriceMin, "target-min", 0, "ignore prices below this floor")
	cmd.Flags().StringVar(&w.OwnerNotificationTarget, "notify-to", "", "notification recipient override")
	for _, f := range []string{"card-key", "name", "rare", "target"} {
		cobra.CheckErr(cmd.MarkFlagRequired(f))
	}

	return cmd
}

func watchUpdateCmd() *cobra.Command {
	var target, targetMin int

	cmd := &cobra.Command{
		Use:   "update <id>",
		Short: "Change a watch's target range",
		Example: `  kpp watches update 42 --target 450
  kpp watches update 42 --target-min 0`,
		Args: cobra.ExactArgs(1),
		RunE: func(c *cobra.Command, args []string) error {
			id, err := parseID(args[0])
			if err != nil {
				return err
			}
			var u apiclient.WatchUpdate
			if c.Flags().Changed("target") {
				u.TargetPrice = &target
			}
			if c.Flags().Changed("target-min") {
				u.TargetPriceMin = &targetMin
			}
			if u.TargetPrice == nil && u.TargetPriceMin == nil {
				return errors.New("nothing to update: set --target or --target-min")
			}
			updated, err := newClient().UpdateWatch(c.Context(), id, &u)
			if err != nil {
				return err
			}
			if jsonOutput() {
				return outputJSON(c.OutOrStdout(), updated)
			}
			fmt.Fprintf(c.OutOrStdout(), "Watch %d target %s.\n", updated.ID, targetRange(updated))
			return nil
		},
	}
	cmd.Flags().IntVar(&target, "target", 0, "notify at or below this price")
	cmd.Flags().IntVar(&targetMin, "target-min", 0, "ignore prices below this floor")

	return cmd
}

func watchEnableCmd() *cobra.Command {
	return &cobra.Command{
		Use:     "enable <id>",
		Short:   "Enable a watch",
		Example: `  kpp watches enable 42`,
		Args:    cobra.ExactArgs(1),
		RunE: func(c *cobra.Command, args []string) error {
			return runWatchSetActive(c, args[0], true)
		},
	}
}

func watchDisableCmd() *cobra.Command {
	return &cobra.Command{
		Use:     "disable <id>",
		Short:   "Disable a watch",
		Example: `  kpp watches disable 42`,
		Args:    cobra.ExactArgs(1),
		RunE: func(c *cobra.Command, args []string) error {
			return runWatchSetActive(c, args[0], false)
		},
	}
}

func watchDeleteCmd() *cobra.Command {
	return &cobra.Command{
		Use:     "delete <id>",
		Short:   "Delete a watch and its history",
		Example: `  kpp watches delete 42`,
		Args:    cobra.ExactArgs(1),
		RunE: func(c *cobra.Command, args []string) error {
			id, err := parseID(args[0])
			if err != nil {
				return err
			}
			if err := newClient().DeleteWatch(c.Context(), id); err != nil {
				return err
			}
			fmt.Fprintf(c.OutOrStdout(), "Watch %d deleted.\n", id)
			return nil
		},
	}
}

func watchCheckCmd() *cobra.Command {
	return &cobra.Command{
		Use:     "check <id>",
		Short:   "Check a watch's price now",
		Example: `  kpp watches check 42`,
		Args:    cobra.ExactArgs(1),
		RunE: func(c *cobra.Command, args []string) error {
			id, err := parseID(args[0])
			if err != nil {
				return err
			}
			out, err := newClient().CheckWatch(c.Context(), id)
			if err != nil {
				return err
			}
			if jsonOutput() {
				return outputJSON(c.OutOrStdout(), out)
			}

			w := c.OutOrStdout()
			if out.Snapshot != nil {
				fmt.Fprintf(w, "Lowest %s, %d of %d buyable.\n",
					price(out.Snapshot.LowestPrice), out.Snapshot.BuyableCount, out.Snapshot.TotalCount)
			}
			switch {
			case out.Notification != nil:
				fmt.Fprintf(w, "Notification %s at %d.\n", out.Notification.Status, out.Notification.TriggeredPrice)
			case out.Suppressed:
				fmt.Fprintln(w, "In range, already notified at this price.")
			}
			return nil
		},
	}
}

func watchHistoryCmd() *cobra.Command {
	var limit int

	cmd := &cobra.Command{
		Use:     "history <id>",
		Short:   "Show a watch's price history",
		Example: `  kpp watches history 42 --limit 10`,
		Args:    cobra.ExactArgs(1),
		RunE: func(c *cobra.Command, args []string) error {
			id, err := parseID(args[0])
			if err != nil {
				return err
			}
			snaps, err := newClient().ListSnapshots(c.Context(), id, limit)
			if err != nil {
				return err
			}
			if jsonOutput() {
				return outputJSON(c.OutOrStdout(), snaps)
			}
			if len(snaps) == 0 {
				fmt.Fprintln(c.OutOrStdout(), "No snapshots yet.")
				return nil
			}
			return printSnapshotsTable(c.OutOrStdout(), snaps)
		},
	}
	cmd.Flags().IntVar(&limit, "limit", 0, "maximum snapshots to return")

	return cmd
}

func runWatchSetActive(c *cobra.Command, arg string, active bool) error {
	id, err := parseID(arg)
	if err != nil {
		return err
	}
	if err := newClient().SetWatchActive(c.Context(), id, active); err != nil {
		return err
	}

	action := "enabled"
	if !active {
		action = "disabled"
	}
	fmt.Fprintf(c.OutOrStdout(), "Watch %d %s.\n", id, action)
	return nil
}
