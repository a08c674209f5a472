package cmd

import (
	"encoding/json"
	"fmt"
	"io"
	"slices"
	"strings"
	"text/tabwriter"

	apiclient "github.com/mong0520/kapaipai-api/internal/api/client"
	domain "github.com/mong0520/kapaipai-api/pkg/types"
)

const timeLayout = "2006-01-02 15:04:05"

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

func printVariantsTable(w io.Writer, variants []domain.CardVariant) error {
	tw := newTabWriter(w)
	tw.writef("CARD KEY\tNAME\tPACK\tRARE\tLOWEST\n")
	for i := range variants {
		v := &variants[i]
		tw.writef("%s\t%s\t%s\t%s\t%s\n", v.CardKey, v.CardName, packLabel(v.PackID, v.PackName), v.Rare, price(v.ReferenceLowest))
	}
	return tw.finish()
}

func printProductsTable(w io.Writer, resp *apiclient.ProductsResponse) error {
	tw := newTabWriter(w)
	tw.writef("PRICE\tSTOCK\tCONDITION\tSELLER\tAREA\tCREDIT\n")
	for i := range resp.Products {
		p := &resp.Products[i]
		tw.writef("%d\t%d\t%s\t%s\t%s\t%d\n", p.Price, p.Stock, p.ConditionLabel, p.SellerNickname, p.SellerArea, p.Credit)
	}
	avg := "-"
	if resp.AvgPrice != nil {
		avg = resp.AvgPrice.StringFixed(1)
	}
	tw.writef("\nBuyable %d of %d, lowest %s, average %s\n", resp.BuyableCount, resp.Total, price(resp.LowestPrice), avg)
	return tw.finish()
}

func printMatchTable(w io.Writer, res *domain.MatchResultSet) error {
	tw := newTabWriter(w)
	tw.writef("SELLER\tAREA\tCREDIT\tORDERS\tTOTAL\tCARDS\n")
	buysOut := false
	for i := range res.Sellers {
		s := &res.Sellers[i]
		summary, out := cardSummary(s.Cards)
		buysOut = buysOut || out
		tw.writef("%s\t%s\t%d\t%d\t%d\t%s\n",
			s.SellerNickname, s.SellerArea, s.Credit, s.OrdersCompleted, s.TotalCost, summary)
	}
	if buysOut {
		tw.writef("* takes a listing's whole stock\n")
	}

	names := make([]string, 0, len(res.CardDetails))
	for name := range res.CardDetails {
		names = append(names, name)
	}
	slices.Sort(names)
	for _, name := range names {
		if d := res.CardDetails[name]; !d.Resolved() {
			tw.writef("\n%s: %s\n", name, d.Error)
		}
	}
	tw.writef("\n%d of %d sellers stock all %d cards\n",
		res.Stats.MatchingSellers, res.Stats.TotalSellersScanned, res.Stats.CardsRequested)
	return tw.finish()
}

// cardSummary renders name=cost pairs, starring cards whose allocation
// empties at least one listing. It reports whether any card was starred.
func cardSummary(cards map[string]domain.CardFulfillment) (string, bool) {
	names := make([]string, 0, len(cards))
	for name := range cards {
		names = append(names, name)
	}
	slices.Sort(names)

	starred := false
	parts := make([]string, 0, len(names))
	for _, name := range names {
		f := cards[name]
		part := fmt.Sprintf("%s=%d", name, f.EstimatedCost)
		if slices.ContainsFunc(f.Allocations, domain.ListingAllocation.Exhausted) {
			part += "*"
			starred = true
		}
		parts = append(parts, part)
	}
	return strings.Join(parts, ", "), starred
}

func printWatchTable(w io.Writer, watches []domain.Watch) error {
	tw := newTabWriter(w)
	tw.writef("ID\tUSER\tCARD\tPACK\tRARE\tTARGET\tACTIVE\n")
	for i := range watches {
		wt := &watches[i]
		tw.writef("%d\t%s\t%s\t%s\t%s\t%s\t%v\n",
			wt.ID, wt.UserID, wt.CardName, packLabel(wt.PackID, wt.PackName), wt.Rare, targetRange(wt), wt.IsActive)
	}
	return tw.finish()
}

func printWatchDetail(w io.Writer, d *apiclient.WatchDetail) error {
	tw := newTabWriter(w)
	tw.writef("ID:\t%d\n", d.ID)
	tw.writef("User:\t%s\n", d.UserID)
	tw.writef("Card:\t%s (%s)\n", d.CardName, d.CardKey)
	tw.writef("Pack:\t%s\n", packLabel(d.PackID, d.PackName))
	tw.writef("Rare:\t%s\n", d.Rare)
	tw.writef("Target:\t%s\n", targetRange(&d.Watch))
	tw.writef("Active:\t%v\n", d.IsActive)
	if s := d.LatestSnapshot; s != nil {
		tw.writef("Lowest:\t%s (checked %s)\n", price(s.LowestPrice), s.ObservedAt.Format(timeLayout))
		tw.writef("Buyable:\t%d of %d\n", s.BuyableCount, s.TotalCount)
	}
	return tw.finish()
}

func printSnapshotsTable(w io.Writer, snaps []domain.PriceSnapshot) error {
	tw := newTabWriter(w)
	tw.writef("CHECKED\tLOWEST\tAVERAGE\tBUYABLE\tTOTAL\n")
	for i := range snaps {
		s := &snaps[i]
		avg := "-"
		if s.AveragePrice != nil {
			avg = s.AveragePrice.StringFixed(1)
		}
		tw.writef("%s\t%s\t%s\t%d\t%d\n", s.ObservedAt.Format(timeLayout), price(s.LowestPrice), avg, s.BuyableCount, s.TotalCount)
	}
	return tw.finish()
}

func printNotificationsTable(w io.Writer, recs []domain.NotificationRecord) error {
	tw := newTabWriter(w)
	tw.writef("SENT\tWATCH\tUSER\tPRICE\tTARGET\tSTATUS\n")
	for i := range recs {
		r := &recs[i]
		tw.writef("%s\t%d\t%s\t%d\t%d\t%s\n",
			r.SentAt.Format(timeLayout), r.WatchID, r.UserID, r.TriggeredPrice, r.TargetPriceMax, r.Status)
	}
	return tw.finish()
}

func printJobRunsTable(w io.Writer, runs []domain.JobRun) error {
	tw := newTabWriter(w)
	tw.writef("JOB\tSTATUS\tSTARTED\tCOMPLETED\tERROR\n")
	for i := range runs {
		r := &runs[i]
		completed := "-"
		if r.CompletedAt != nil {
			completed = r.CompletedAt.Format(timeLayout)
		}
		tw.writef("%s\t%s\t%s\t%s\t%s\n",
			r.JobName,
			r.Status,
			r.StartedAt.Format(timeLayout),
			completed,
			truncate(r.ErrorText, 40),
		)
	}
	return tw.finish()
}

func outputJSON(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

func packLabel(id, name string) string {
	switch {
	case id == "" && name == "":
		return "-"
	case name == "":
		return id
	case id == "":
		return name
	default:
		return name + " (" + id + ")"
	}
}

func targetRange(w *domain.Watch) string {
	if w.TargetPriceMin > 0 {
		return fmt.Sprintf("%d-%d", w.TargetPriceMin, w.TargetPriceMax)
	}
	return fmt.Sprintf("<=%d", w.TargetPriceMax)
}

func price(p *int) string {
	if p == nil {
		return "-"
	}
	return fmt.Sprintf("%d", *p)
}

// truncate shortens s to maxLen runes.
func truncate(s string, maxLen int) string {
	r := []rune(s)
	if len(r) <= maxLen {
		return s
	}
	return string(r[:maxLen-3]) + "..."
}
