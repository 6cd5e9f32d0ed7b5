package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	apiclient "github.com/donaldgifford/droplist/internal/api/client"
	domain "github.com/donaldgifford/droplist/pkg/types"
)

func listingsCmd() *cobra.Command {
	listingsRoot := &cobra.Command{
		Use:   "listings",
		Short: "Manage live listings",
		Long: "Query and manage listings mirrored from eBay offers: change price\n" +
			"and quantity, end, or republish them.",
	}

	listingsRoot.AddCommand(
		listingsListCmd(),
		listingsGetCmd(),
		listingsUpdateCmd(),
		listingsEndCmd(),
		listingsRepublishCmd(),
	)

	return listingsRoot
}

func listingsListCmd() *cobra.Command {
	var params apiclient.ListListingsParams

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List listings with optional filters",
		Example: `  # List all listings
  dropctl listings list

  # Active listings, most recently listed first
  dropctl listings list --status active --order-by listed_at`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			resp, err := newClient().ListListings(cmd.Context(), &params)
			if err != nil {
				return err
			}
			if jsonOutput() {
				return outputJSON(resp)
			}
			if len(resp.Listings) == 0 {
				fmt.Println("No listings found.")
				return nil
			}
			fmt.Printf("Showing %d of %d listings\n\n", len(resp.Listings), resp.Total)
			return printListingsTable(cmd.OutOrStdout(), resp.Listings)
		},
	}
	cmd.Flags().StringVar(&params.Status, "status", "", "status filter (active, ended, published, ...)")
	cmd.Flags().StringVar(&params.StoreID, "store", "", "store id filter")
	cmd.Flags().IntVar(&params.Limit, "limit", 50, "number of results")
	cmd.Flags().IntVar(&params.Offset, "offset", 0, "result offset")
	cmd.Flags().
		StringVar(&params.OrderBy, "order-by", "", "sort order (updated_at, listed_at, title)")

	return cmd
}

func listingsGetCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "get <id>",
		Short: "Show listing details",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			l, err := newClient().GetListing(cmd.Context(), args[0])
			if err != nil {
				return err
			}
			return showListing(cmd, l)
		},
	}
}

func listingsUpdateCmd() *cobra.Command {
	var (
		price    string
		quantity int
	)

	cmd := &cobra.Command{
		Use:     "update <id>",
		Short:   "Change price and/or quantity",
		Example: `  dropctl listings update 9a2e... --price 21.50 --quantity 3`,
		Args:    cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			var (
				p *string
				q *int
			)
			if cmd.Flags().Changed("price") {
				p = &price
			}
			if cmd.Flags().Changed("quantity") {
				q = &quantity
			}
			if p == nil && q == nil {
				return fmt.Errorf("nothing to update: pass --price and/or --quantity")
			}

			l, err := newClient().UpdateListing(cmd.Context(), args[0], p, q)
			if err != nil {
				return err
			}
			return showListing(cmd, l)
		},
	}
	cmd.Flags().StringVar(&price, "price", "", "new price")
	cmd.Flags().IntVar(&quantity, "quantity", 0, "new available quantity")

	return cmd
}

func listingsEndCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "end <id>",
		Short: "End a listing on eBay",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			l, err := newClient().EndListing(cmd.Context(), args[0])
			if err != nil {
				return err
			}
			return showListing(cmd, l)
		},
	}
}

func listingsRepublishCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "republish <id>",
		Short: "Publish a listing's existing offer again",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			l, err := newClient().RepublishListing(cmd.Context(), args[0])
			if err != nil {
				return err
			}
			return showListing(cmd, l)
		},
	}
}

func showListing(cmd *cobra.Command, l *domain.Listing) error {
	if jsonOutput() {
		return outputJSON(l)
	}
	return printListingDetail(cmd.OutOrStdout(), l)
}
