// Package report renders snapshot queries for a terminal.
package report

import (
	"fmt"
	"io"
	"strings"
	"text/tabwriter"

	"restaurant-deals/internal/domain/availability"
	"restaurant-deals/internal/domain/restaurant"
	"restaurant-deals/internal/domain/timeofday"
	"restaurant-deals/internal/handler/dto/response"

	"github.com/fatih/color"
)

var (
	peakColor   = color.New(color.FgYellow, color.Bold)
	barColor    = color.New(color.FgCyan)
	headerColor = color.New(color.Bold)
	mutedColor  = color.New(color.FgHiBlack)
)

func window(start, end timeofday.TimeOfDay) string {
	return start.Format12h() + "-" + end.Format12h()
}

// Histogram prints one row per bucket with a bar as long as its deal total.
// The row matching peak is marked with '^'.
func Histogram(w io.Writer, totals []availability.BucketTotal, peak availability.PeakWindow) error {
	var b strings.Builder

	b.WriteString(headerColor.Sprintf("Peak window: %s - %s", peak.Start.Format12h(), peak.End.Format12h()))
	b.WriteString("\n")
	b.WriteString(strings.Repeat("─", 40) + "\n")

	if len(totals) == 0 {
		b.WriteString(mutedColor.Sprint("No restaurants loaded") + "\n")
		_, err := io.WriteString(w, b.String())
		return err
	}

	for _, t := range totals {
		label := fmt.Sprintf("%-16s", window(t.Start, t.End))
		isPeak := t.Start == peak.Start && t.End == peak.End

		marker := "  "
		if isPeak {
			label = peakColor.Sprint(label)
			marker = peakColor.Sprint("^") + " "
		}

		line := label + marker + fmt.Sprintf("(%2d) ", t.Deals)
		if t.Deals > 0 {
			bar := strings.Repeat("█", t.Deals)
			if isPeak {
				line += peakColor.Sprint(bar)
			} else {
				line += barColor.Sprint(bar)
			}
		}
		b.WriteString(strings.TrimRight(line, " ") + "\n")
	}

	_, err := io.WriteString(w, b.String())
	return err
}

// Deals prints the deals available at the given time as an aligned table.
// open lists every restaurant open at that time, with or without deals.
func Deals(w io.Writer, at timeofday.TimeOfDay, open []restaurant.Restaurant, deals []restaurant.DealAtRestaurant) error {
	header := fmt.Sprintf("Deals available at %s: %d (%d restaurants open)", at.Format12h(), len(deals), len(open))
	if _, err := fmt.Fprintln(w, headerColor.Sprint(header)); err != nil {
		return err
	}
	if len(deals) == 0 {
		msg := "No restaurants open"
		if len(open) > 0 {
			msg = "No deals at the open restaurants"
		}
		_, err := fmt.Fprintln(w, mutedColor.Sprint(msg))
		return err
	}

	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	fmt.Fprintln(tw, "RESTAURANT\tSUBURB\tHOURS\tDEAL\tDISCOUNT\tDINE-IN\tLIGHTNING\tQTY")
	for _, d := range deals {
		lightning := "-"
		if d.Deal.Lightning {
			lightning = "yes"
		}
		dineIn := "-"
		if d.Deal.DineIn {
			dineIn = "yes"
		}
		fmt.Fprintf(tw, "%s\t%s\t%s\t%s\t%s%%\t%s\t%s\t%d\n",
			d.Restaurant.Name,
			d.Restaurant.Suburb,
			window(d.Restaurant.OpenTime, d.Restaurant.CloseTime),
			d.Deal.ObjectID,
			response.FormatDiscount(d.Deal.Discount),
			dineIn,
			lightning,
			d.Deal.QtyLeft,
		)
	}
	return tw.Flush()
}
