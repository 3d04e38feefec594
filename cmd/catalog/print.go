package main

import (
	"fmt"
	"io"
	"text/tabwriter"
	"time"

	"github.com/dustin/go-humanize"

	"gallery/pkg/client"
	"gallery/pkg/model"
)

const offlineNotice = "Gallery API unreachable, showing the sample catalog."

type printer struct {
	w        io.Writer
	currency string
	now      func() time.Time
}

func (p *printer) price(v float64) string {
	if v == 0 {
		return "Free"
	}
	return p.currency + " " + humanize.CommafWithDigits(v, 2)
}

func (p *printer) offlineNotice(offline bool) {
	if offline {
		fmt.Fprintf(p.w, "%s\n\n", offlineNotice)
	}
}

func (p *printer) artworks(list client.ArtworkList) {
	tw := tabwriter.NewWriter(p.w, 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "ID\tTITLE\tARTIST\tPRICE\tSTATUS")
	for _, a := range list.Artworks {
		fmt.Fprintf(tw, "%s\t%s\t%s\t%s\t%s\n", a.ID, a.Title, a.Artist, p.price(a.Price), a.Status)
	}
	tw.Flush()
	fmt.Fprintf(p.w, "\n%s of %s artworks\n", humanize.Comma(int64(len(list.Artworks))), humanize.Comma(list.Total))
}

func (p *printer) exhibitions(list client.ExhibitionList) {
	tw := tabwriter.NewWriter(p.w, 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "ID\tTITLE\tDATES\tTICKET\tSLOTS\tSTATUS")
	for _, e := range list.Exhibitions {
		fmt.Fprintf(tw, "%s\t%s\t%s to %s\t%s\t%s/%s\t%s\n",
			e.ID, e.Title, e.StartDate, e.EndDate, p.price(e.TicketPrice),
			humanize.Comma(int64(e.AvailableSlots)), humanize.Comma(int64(e.TotalSlots)), e.Status)
	}
	tw.Flush()
	fmt.Fprintf(p.w, "\n%s of %s exhibitions\n", humanize.Comma(int64(len(list.Exhibitions))), humanize.Comma(list.Total))
}

func (p *printer) artwork(a *model.Artwork) {
	tw := tabwriter.NewWriter(p.w, 0, 4, 2, ' ', 0)
	fmt.Fprintf(tw, "Title:\t%s\n", a.Title)
	fmt.Fprintf(tw, "Artist:\t%s\n", a.Artist)
	fmt.Fprintf(tw, "Price:\t%s\n", p.price(a.Price))
	fmt.Fprintf(tw, "Status:\t%s\n", a.Status)
	if a.Medium != "" {
		fmt.Fprintf(tw, "Medium:\t%s\n", a.Medium)
	}
	if a.Dimensions != "" {
		fmt.Fprintf(tw, "Dimensions:\t%s\n", a.Dimensions)
	}
	if a.Year != 0 {
		fmt.Fprintf(tw, "Year:\t%d\n", a.Year)
	}
	fmt.Fprintf(tw, "Image:\t%s\n", a.ImageURL)
	if !a.CreatedAt.IsZero() {
		fmt.Fprintf(tw, "Added:\t%s\n", humanize.RelTime(a.CreatedAt, p.now(), "ago", "from now"))
	}
	tw.Flush()
	fmt.Fprintf(p.w, "\n%s\n", a.Description)
}

func (p *printer) exhibition(e *model.Exhibition) {
	tw := tabwriter.NewWriter(p.w, 0, 4, 2, ' ', 0)
	fmt.Fprintf(tw, "Title:\t%s\n", e.Title)
	fmt.Fprintf(tw, "Location:\t%s\n", e.Location)
	fmt.Fprintf(tw, "Dates:\t%s to %s\n", e.StartDate, e.EndDate)
	fmt.Fprintf(tw, "Ticket:\t%s\n", p.price(e.TicketPrice))
	fmt.Fprintf(tw, "Slots:\t%s of %s available\n", humanize.Comma(int64(e.AvailableSlots)), humanize.Comma(int64(e.TotalSlots)))
	fmt.Fprintf(tw, "Status:\t%s\n", e.Status)
	fmt.Fprintf(tw, "Image:\t%s\n", e.ImageURL)
	tw.Flush()
	fmt.Fprintf(p.w, "\n%s\n", e.Description)
}
