package cmd

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"sort"
	"text/tabwriter"

	domain "github.com/donaldgifford/droplist/pkg/types"
)

// tabWriter wraps tabwriter with error tracking.
type tabWriter struct {
	*tabwriter.Writer
	err error
}

func newTabWriter(w io.Writer) *tabWriter {
	return &tabWriter{Writer: tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)}
}

func (tw *tabWriter) writef(format string, args ...any) {
	if tw.err != nil {
		return
	}
	_, tw.err = fmt.Fprintf(tw.Writer, format, args...)
}

func (tw *tabWriter) finish() error {
	if tw.err != nil {
		return tw.err
	}
	return tw.Flush()
}

func printDraftsTable(w io.Writer, drafts []domain.Draft) error {
	tw := newTabWriter(w)
	tw.writef("ID\tSTATUS\tTITLE\tPRICE\tQTY\tSKU\n")
	for i := range drafts {
		d := &drafts[i]
		tw.writef("%s\t%s\t%s\t%s\t%d\t%s\n",
			d.ID,
			d.Status,
			truncate(d.Title, 40),
			dash(d.Price),
			d.Quantity,
			d.SKU,
		)
	}
	return tw.finish()
}

func printDraftDetail(w io.Writer, d *domain.Draft) error {
	tw := newTabWriter(w)
	tw.writef("ID:\t%s\n", d.ID)
	tw.writef("Status:\t%s\n", d.Status)
	tw.writef("Title:\t%s\n", d.Title)
	tw.writef("Category:\t%s\n", dash(d.CategoryID))
	tw.writef("Condition:\t%s\n", dash(d.Condition))
	tw.writef("Price:\t%s %s\n", dash(d.Price), domain.DefaultCurrency)
	tw.writef("Quantity:\t%d\n", d.Quantity)
	tw.writef("SKU:\t%s\n", d.SKU)
	tw.writef("Images:\t%d\n", d.ImageCount)

	keys := make([]string, 0, len(d.Specifics))
	for k := range d.Specifics {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	for _, k := range keys {
		tw.writef("  %s:\t%s\n", k, d.Specifics[k])
	}
	for _, note := range d.AINotes {
		tw.writef("Note:\t%s\n", note)
	}
	if d.Error != "" {
		tw.writef("Error:\t%s\n", d.Error)
	}
	if d.PublishedListingID != "" {
		tw.writef("eBay Listing:\t%s\n", d.PublishedListingID)
	}
	return tw.finish()
}

func printListingsTable(w io.Writer, listings []domain.Listing) error {
	tw := newTabWriter(w)
	tw.writef("ID\tOFFER\tSTATUS\tTITLE\tPRICE\tQTY\n")
	for i := range listings {
		l := &listings[i]
		tw.writef("%s\t%s\t%s\t%s\t%s\t%d\n",
			l.ID,
			l.EbayOfferID,
			l.Status,
			truncate(l.Title, 40),
			dash(domain.Deref(l.Price)),
			l.Quantity,
		)
	}
	return tw.finish()
}

func printListingDetail(w io.Writer, l *domain.Listing) error {
	tw := newTabWriter(w)
	tw.writef("ID:\t%s\n", l.ID)
	tw.writef("Offer ID:\t%s\n", l.EbayOfferID)
	tw.writef("eBay Listing:\t%s\n", dash(domain.Deref(l.EbayListingID)))
	tw.writef("Status:\t%s\n", l.Status)
	tw.writef("Title:\t%s\n", l.Title)
	tw.writef("SKU:\t%s\n", dash(domain.Deref(l.SKU)))
	tw.writef("Price:\t%s\n", dash(domain.Deref(l.Price)))
	tw.writef("Quantity:\t%d\n", l.Quantity)
	tw.writef("Category:\t%s\n", dash(domain.Deref(l.CategoryID)))
	if l.ListedAt != nil {
		tw.writef("Listed:\t%s\n", l.ListedAt.Format("2006-01-02 15:04:05"))
	}
	return tw.finish()
}

func outputJSON(v any) error {
	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

func truncate(s string, maxLen int) string {
	r := []rune(s)
	if len(r) <= maxLen {
		return s
	}
	return string(r[:maxLen-3]) + "..."
}

func dash(s string) string {
	if s == "" {
		return "-"
	}
	return s
}
