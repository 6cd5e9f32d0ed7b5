package cmd

import (
	"io"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/donaldgifford/droplist/pkg/pricing"
)

func priceCmd() *cobra.Command {
	var (
		raw      pricing.RawSignals
		shipping float64
	)

	cmd := &cobra.Command{
		Use:   "price",
		Short: "Compute a price range from quality signals",
		Long: "Runs the same pricing heuristic the server applies to analyzed drafts. " +
			"Unknown signal values fall back to tier B, Standard, Vibrant and Polished.",
		Example: "  dropctl price --tier A --uniqueness Standout --shipping 6.50",
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if cmd.Flags().Changed("shipping") {
				raw.ShippingCostUSD = &shipping
			}
			res := pricing.ComputePrice(pricing.NormalizeSignals(&raw))
			if jsonOutput() {
				return outputJSON(map[string]any{
					"result":      res,
					"recommended": pricing.Recommended(res),
				})
			}
			return printPrice(os.Stdout, res)
		},
	}

	cmd.Flags().StringVar(&raw.Tier, "tier", "B", "quality tier: A, B or C")
	cmd.Flags().StringVar(&raw.Uniqueness, "uniqueness", pricing.Standard, "Standard or Standout")
	cmd.Flags().StringVar(&raw.ColorSaturation, "color", pricing.Vibrant, "Vibrant or Muted")
	cmd.Flags().StringVar(&raw.SurfaceQuality, "surface", pricing.Polished, "Polished or Rough")
	cmd.Flags().Float64Var(&shipping, "shipping", 0, "shipping cost in USD to fold into the range")

	return cmd
}

func printPrice(w io.Writer, res pricing.Result) error {
	tw := newTabWriter(w)
	tw.writef("Base range:\t$%.0f - $%.0f\n", res.BaseRange.Min, res.BaseRange.Max)
	modifiers := "-"
	if len(res.ModifiersApplied) > 0 {
		modifiers = strings.Join(res.ModifiersApplied, ", ")
	}
	tw.writef("Modifiers:\t%s\n", modifiers)
	tw.writef("Shipping included:\t%t\n", res.ShippingIncluded)
	tw.writef("Safety margin:\t$%.0f\n", res.SafetyMargin)
	tw.writef("Price range:\t$%.0f - $%.0f\n", res.PriceRange.Min, res.PriceRange.Max)
	tw.writef("Recommended:\t$%s\n", dash(pricing.Recommended(res)))
	return tw.finish()
}
