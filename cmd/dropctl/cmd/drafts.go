package cmd

import (
	"encoding/base64"
	"fmt"
	"net/http"
	"os"

	"github.com/spf13/cobra"

	apiclient "github.com/donaldgifford/droplist/internal/api/client"
	domain "github.com/donaldgifford/droplist/pkg/types"
)

func draftsCmd() *cobra.Command {
	draftsRoot := &cobra.Command{
		Use:   "drafts",
		Short: "Create, review, and publish drafts",
		Long: "Drafts are listings generated from photos. Review and edit a draft,\n" +
			"then publish it to eBay.",
	}

	draftsRoot.AddCommand(
		draftsCreateCmd(),
		draftsListCmd(),
		draftsGetCmd(),
		draftsUpdateCmd(),
		draftsRegenerateCmd(),
		draftsPublishCmd(),
	)

	return draftsRoot
}

func draftsCreateCmd() *cobra.Command {
	return &cobra.Command{
		Use:     "create <photo>...",
		Short:   "Create a draft from photos",
		Example: `  dropctl drafts create front.jpg back.jpg label.jpg`,
		Args:    cobra.RangeArgs(1, domain.MaxImages),
		RunE: func(cmd *cobra.Command, args []string) error {
			images := make([]string, 0, len(args))
			for _, path := range args {
				u, err := dataURL(path)
				if err != nil {
					return err
				}
				images = append(images, u)
			}

			d, err := newClient().CreateDraft(cmd.Context(), images)
			if err != nil {
				return err
			}
			if jsonOutput() {
				return outputJSON(d)
			}
			return printDraftDetail(cmd.OutOrStdout(), d)
		},
	}
}

// dataURL reads a photo into a data:image/...;base64 URL.
func dataURL(path string) (string, error) {
	data, err := os.ReadFile(path) //nolint:gosec // user-supplied path is the point
	if err != nil {
		return "", fmt.Errorf("reading %s: %w", path, err)
	}
	mime := http.DetectContentType(data)
	switch mime {
	case "image/jpeg", "image/png", "image/gif", "image/webp":
	default:
		return "", fmt.Errorf("%s: unsupported image type %s", path, mime)
	}
	return "data:" + mime + ";base64," + base64.StdEncoding.EncodeToString(data), nil
}

func draftsListCmd() *cobra.Command {
	var (
		status string
		limit  int
		offset int
	)

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List drafts",
		Example: `  dropctl drafts list
  dropctl drafts list --status needs_review`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			resp, err := newClient().ListDrafts(cmd.Context(), status, limit, offset)
			if err != nil {
				return err
			}
			if jsonOutput() {
				return outputJSON(resp)
			}
			if len(resp.Drafts) == 0 {
				fmt.Println("No drafts found.")
				return nil
			}
			fmt.Printf("Showing %d of %d drafts\n\n", len(resp.Drafts), resp.Total)
			return printDraftsTable(cmd.OutOrStdout(), resp.Drafts)
		},
	}
	cmd.Flags().StringVar(&status, "status", "", "status filter (needs_review, ready_to_publish, published, failed)")
	cmd.Flags().IntVar(&limit, "limit", 50, "number of results")
	cmd.Flags().IntVar(&offset, "offset", 0, "result offset")

	return cmd
}

func draftsGetCmd() *cobra.Command {
	return &cobra.Command{
		Use:     "get <id>",
		Short:   "Show draft details",
		Example: `  dropctl drafts get 6f1c...`,
		Args:    cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			d, err := newClient().GetDraft(cmd.Context(), args[0])
			if err != nil {
				return err
			}
			if jsonOutput() {
				return outputJSON(d)
			}
			return printDraftDetail(cmd.OutOrStdout(), d)
		},
	}
}

func draftsUpdateCmd() *cobra.Command {
	var (
		title       string
		description string
		categoryID  string
		condition   string
		price       string
		quantity    int
		ready       bool
		specifics   map[string]string
	)

	cmd := &cobra.Command{
		Use:   "update <id>",
		Short: "Edit draft fields",
		Example: `  dropctl drafts update 6f1c... --price 24.99 --quantity 2
  dropctl drafts update 6f1c... --specific Brand=Acme --ready`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			p := &apiclient.DraftPatch{}
			flags := cmd.Flags()
			if flags.Changed("title") {
				p.Title = &title
			}
			if flags.Changed("description") {
				p.Description = &description
			}
			if flags.Changed("category") {
				p.CategoryID = &categoryID
			}
			if flags.Changed("condition") {
				p.Condition = &condition
			}
			if flags.Changed("price") {
				p.Price = &price
			}
			if flags.Changed("quantity") {
				p.Quantity = &quantity
			}
			if ready {
				status := string(domain.DraftReadyToPublish)
				p.Status = &status
			}
			if len(specifics) > 0 {
				p.Specifics = specifics
			}

			d, err := newClient().UpdateDraft(cmd.Context(), args[0], p)
			if err != nil {
				return err
			}
			if jsonOutput() {
				return outputJSON(d)
			}
			return printDraftDetail(cmd.OutOrStdout(), d)
		},
	}
	cmd.Flags().StringVar(&title, "title", "", "listing title (max 80 characters)")
	cmd.Flags().StringVar(&description, "description", "", "listing description")
	cmd.Flags().StringVar(&categoryID, "category", "", "eBay leaf category id")
	cmd.Flags().StringVar(&condition, "condition", "", "condition enum, e.g. USED_GOOD")
	cmd.Flags().StringVar(&price, "price", "", "price in USD, e.g. 24.99")
	cmd.Flags().IntVar(&quantity, "quantity", 1, "available quantity")
	cmd.Flags().BoolVar(&ready, "ready", false, "mark the draft ready to publish")
	cmd.Flags().StringToStringVar(&specifics, "specific", nil, "item specific as Name=Value (repeatable)")

	return cmd
}

func draftsRegenerateCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "regenerate <id>",
		Short: "Re-run photo analysis for a draft",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			d, err := newClient().RegenerateDraft(cmd.Context(), args[0])
			if err != nil {
				return err
			}
			if jsonOutput() {
				return outputJSON(d)
			}
			return printDraftDetail(cmd.OutOrStdout(), d)
		},
	}
}

func draftsPublishCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "publish <id>",
		Short: "Publish a draft to eBay",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			res, err := newClient().PublishDraft(cmd.Context(), args[0])
			if err != nil {
				return err
			}
			if jsonOutput() {
				return outputJSON(res)
			}
			fmt.Printf("Published offer %s as eBay listing %s (category %s)\n",
				res.OfferID, res.EbayListingID, res.CategoryID)
			return nil
		},
	}
}
