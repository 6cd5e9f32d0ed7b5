package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	apiclient "github.com/donaldgifford/droplist/internal/api/client"
	domain "github.com/donaldgifford/droplist/pkg/types"
)

func ebayCmd() *cobra.Command {
	ebayRoot := &cobra.Command{
		Use:   "ebay",
		Short: "Connect and configure the eBay seller account",
	}

	ebayRoot.AddCommand(
		ebayConnectCmd(),
		ebayDiagnosticsCmd(),
		ebaySyncCmd(),
		ebayDefaultsCmd(),
		ebayLocationCmd(),
		ebayOptInCmd(),
	)

	return ebayRoot
}

func ebayConnectCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "connect",
		Short: "Print the eBay consent URL",
		Long:  "Prints the URL to open in a browser to grant droplist access to your eBay seller account.",
		RunE: func(cmd *cobra.Command, _ []string) error {
			u, err := newClient().ConnectURL(cmd.Context())
			if err != nil {
				return err
			}
			fmt.Println(u)
			return nil
		},
	}
}

func ebayDiagnosticsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "diagnostics",
		Short: "Show what eBay knows about the account and what is still missing",
		RunE: func(cmd *cobra.Command, _ []string) error {
			raw, err := newClient().Diagnostics(cmd.Context())
			if err != nil {
				return err
			}
			return outputJSON(raw)
		},
	}
}

func ebaySyncCmd() *cobra.Command {
	var storeID string

	cmd := &cobra.Command{
		Use:   "sync",
		Short: "Mirror eBay offers into local listings",
		RunE: func(cmd *cobra.Command, _ []string) error {
			res, err := newClient().Sync(cmd.Context(), storeID)
			if err != nil {
				return err
			}
			if jsonOutput() {
				return outputJSON(res)
			}
			fmt.Printf("Synced: %d upserted, %d skipped\n", res.Upserted, res.Skipped)
			return nil
		},
	}
	cmd.Flags().StringVar(&storeID, "store", "", "store id (default: active store)")

	return cmd
}

func ebayDefaultsCmd() *cobra.Command {
	var d domain.Defaults

	cmd := &cobra.Command{
		Use:     "defaults",
		Short:   "Set marketplace and business policy defaults",
		Example: `  dropctl ebay defaults --payment-policy 123 --fulfillment-policy 456 --return-policy 789`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			st, err := newClient().UpdateDefaults(cmd.Context(), d)
			if err != nil {
				return err
			}
			if jsonOutput() {
				return outputJSON(st)
			}
			tw := newTabWriter(os.Stdout)
			tw.writef("Marketplace:\t%s\n", dash(st.MarketplaceID))
			tw.writef("Payment policy:\t%s\n", dash(st.PaymentPolicyID))
			tw.writef("Fulfillment policy:\t%s\n", dash(st.FulfillmentPolicyID))
			tw.writef("Return policy:\t%s\n", dash(st.ReturnPolicyID))
			tw.writef("Location:\t%s\n", dash(st.MerchantLocationKey))
			return tw.finish()
		},
	}
	cmd.Flags().StringVar(&d.MarketplaceID, "marketplace", "", "marketplace id, e.g. EBAY_US")
	cmd.Flags().StringVar(&d.PaymentPolicyID, "payment-policy", "", "payment policy id")
	cmd.Flags().StringVar(&d.FulfillmentPolicyID, "fulfillment-policy", "", "fulfillment policy id")
	cmd.Flags().StringVar(&d.ReturnPolicyID, "return-policy", "", "return policy id")

	return cmd
}

func ebayLocationCmd() *cobra.Command {
	var req apiclient.LocationRequest

	cmd := &cobra.Command{
		Use:     "location",
		Short:   "Create the ship-from inventory location",
		Example: `  dropctl ebay location --key home --country US --postal-code 95125 --phone 555-0100`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			key, err := newClient().CreateLocation(cmd.Context(), req)
			if err != nil {
				return err
			}
			fmt.Printf("Created location %s and set it as the default\n", key)
			return nil
		},
	}
	cmd.Flags().StringVar(&req.MerchantLocationKey, "key", "", "merchant location key")
	cmd.Flags().StringVar(&req.Country, "country", "US", "two-letter country code")
	cmd.Flags().StringVar(&req.PostalCode, "postal-code", "", "postal code")
	cmd.Flags().StringVar(&req.Phone, "phone", "", "contact phone")

	return cmd
}

func ebayOptInCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "opt-in",
		Short: "Opt in to eBay business policies",
		RunE: func(cmd *cobra.Command, _ []string) error {
			msg, err := newClient().OptInBusinessPolicies(cmd.Context())
			if err != nil {
				return err
			}
			fmt.Println(msg)
			return nil
		},
	}
}

func quotaCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "quota",
		Short: "Show the server's eBay API call budget",
		RunE: func(cmd *cobra.Command, _ []string) error {
			q, err := newClient().Quota(cmd.Context())
			if err != nil {
				return err
			}
			if jsonOutput() {
				return outputJSON(q)
			}
			tw := newTabWriter(os.Stdout)
			tw.writef("Daily limit:\t%d\n", q.DailyLimit)
			tw.writef("Used:\t%d\n", q.DailyUsed)
			tw.writef("Remaining:\t%d\n", q.Remaining)
			tw.writef("Resets:\t%s\n", q.ResetAt.Local().Format("2006-01-02 15:04:05"))
			return tw.finish()
		},
	}
}
