package cmd

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	apiclient "github.com/mong0520/kapaipai-api/internal/api/client"
	domain "github.com/mong0520/kapaipai-api/pkg/types"
)

func searchCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "search <name>",
		Short: "Search cards by name",
		Example: `  kpp search 皮卡丘
  kpp search 噴火龍 --output json`,
		Args: cobra.ExactArgs(1),
		RunE: func(c *cobra.Command, args []string) error {
			variants, err := newClient().SearchCards(c.Context(), args[0])
			if err != nil {
				return err
			}
			if jsonOutput() {
				return outputJSON(c.OutOrStdout(), variants)
			}
			if len(variants) == 0 {
				fmt.Fprintln(c.OutOrStdout(), "No cards found.")
				return nil
			}
			return printVariantsTable(c.OutOrStdout(), variants)
		},
	}
}

func productsCmd() *cobra.Command {
	var p apiclient.ProductsParams

	cmd := &cobra.Command{
		Use:   "products",
		Short: "List buyable listings of a card variant",
		Example: `  kpp products --card-key 12345 --rare SR --pack-id SV2a
  kpp products --card-key 12345 --rare SR --include-flawed`,
		RunE: func(c *cobra.Command, _ []string) error {
			resp, err := newClient().Products(c.Context(), &p)
			if err != nil {
				return err
			}
			if jsonOutput() {
				return outputJSON(c.OutOrStdout(), resp)
			}
			return printProductsTable(c.OutOrStdout(), resp)
		},
	}
	cmd.Flags().StringVar(&p.CardKey, "card-key", "", "marketplace card key")
	cmd.Flags().StringVar(&p.Rare, "rare", "", "rarity code")
	cmd.Flags().StringVar(&p.PackID, "pack-id", "", "pack identifier")
	cmd.Flags().StringVar(&p.PackCardID, "pack-card-id", "", "card number within the pack")
	cmd.Flags().BoolVar(&p.IncludeFlawed, "include-flawed", false, "include flawed-condition listings")
	cobra.CheckErr(cmd.MarkFlagRequired("card-key"))
	cobra.CheckErr(cmd.MarkFlagRequired("rare"))

	return cmd
}

func matchCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "match <name[:qty]>...",
		Short: "Find sellers stocking every card",
		Long: "Searches up to 10 cards and lists the sellers able to fulfill all of\n" +
			"them, cheapest total first. Quantity defaults to 1.",
		Example: `  kpp match 皮卡丘:2 噴火龍
  kpp match 皮卡丘 伊布:4 --output json`,
		Args: cobra.RangeArgs(1, domain.MaxCardRequests),
		RunE: func(c *cobra.Command, args []string) error {
			reqs, err := parseCardArgs(args)
			if err != nil {
				return err
			}
			res, err := newClient().MultiSearch(c.Context(), reqs)
			if err != nil {
				return err
			}
			if jsonOutput() {
				return outputJSON(c.OutOrStdout(), res)
			}
			return printMatchTable(c.OutOrStdout(), res)
		},
	}
}

// parseCardArgs parses "name" or "name:qty" arguments.
func parseCardArgs(args []string) ([]domain.CardRequest, error) {
	reqs := make([]domain.CardRequest, 0, len(args))
	for _, arg := range args {
		name, qty := arg, 1
		if i := strings.LastIndex(arg, ":"); i > 0 {
			n, err := strconv.Atoi(arg[i+1:])
			if err != nil {
				return nil, fmt.Errorf("invalid quantity in %q", arg)
			}
			name, qty = arg[:i], n
		}
		reqs = append(reqs, domain.CardRequest{Name: name, Quantity: qty})
	}
	return reqs, nil
}
