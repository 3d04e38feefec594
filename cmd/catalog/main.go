package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"time"

	"github.com/alexflint/go-arg"

	"gallery/pkg/client"
	"gallery/pkg/imageurl"
	"gallery/pkg/logger"
)

type listCmd struct {
	Limit  int   `arg:"-l,--limit" default:"20" help:"number of entries to fetch"`
	Offset int64 `arg:"-o,--offset" default:"0" help:"entries to skip"`
}

type showCmd struct {
	ID string `arg:"positional,required" help:"record id"`
}

type args struct {
	Artworks    *listCmd `arg:"subcommand:artworks" help:"list artworks"`
	Exhibitions *listCmd `arg:"subcommand:exhibitions" help:"list exhibitions"`
	Artwork     *showCmd `arg:"subcommand:artwork" help:"show one artwork"`
	Exhibition  *showCmd `arg:"subcommand:exhibition" help:"show one exhibition"`

	API      string        `arg:"--api,env:API_BASE_URL" default:"http://localhost:8000" help:"gallery API base URL"`
	Timeout  time.Duration `arg:"--timeout" default:"10s" help:"request timeout"`
	Currency string        `arg:"--currency" default:"KES" help:"currency label for prices"`
	Verbose  bool          `arg:"-v,--verbose" help:"log image URL repairs"`
}

func (args) Description() string {
	return "Browse the gallery catalog from the terminal. Falls back to the bundled sample catalog when the API is unreachable.\n"
}

func main() {
	var a args
	p := arg.MustParse(&a)
	if p.Subcommand() == nil {
		p.Fail("missing subcommand")
	}

	level := logger.WARN
	if a.Verbose {
		level = logger.DEBUG
	}
	log := logger.New(logger.Config{Level: level, Format: logger.TEXT, Output: os.Stderr, Service: "catalog"})

	images, err := imageurl.New(a.API, imageurl.WithLogger(log.Logger))
	if err != nil {
		p.Fail(fmt.Sprintf("--api: %v", err))
	}

	ctx, cancel := context.WithTimeout(context.Background(), a.Timeout)
	defer cancel()

	out := &printer{w: os.Stdout, currency: a.Currency, now: time.Now}
	if err := run(ctx, client.NewGalleryClient(a.API, images).WithHTTPClient(&http.Client{Timeout: a.Timeout}), a, out); err != nil {
		fmt.Fprintln(os.Stderr, "error:", err)
		os.Exit(1)
	}
}

func run(ctx context.Context, c *client.GalleryClient, a args, out *printer) error {
	switch {
	case a.Artworks != nil:
		list, err := c.ListArtworks(ctx, a.Artworks.Limit, a.Artworks.Offset)
		if err != nil {
			return err
		}
		out.offlineNotice(list.Offline)
		out.artworks(list)

	case a.Exhibitions != nil:
		list, err := c.ListExhibitions(ctx, a.Exhibitions.Limit, a.Exhibitions.Offset)
		if err != nil {
			return err
		}
		out.offlineNotice(list.Offline)
		out.exhibitions(list)

	case a.Artwork != nil:
		art, offline, err := c.GetArtwork(ctx, a.Artwork.ID)
		if err != nil {
			return notFound(err, "artwork", a.Artwork.ID)
		}
		out.offlineNotice(offline)
		out.artwork(art)

	case a.Exhibition != nil:
		ex, offline, err := c.GetExhibition(ctx, a.Exhibition.ID)
		if err != nil {
			return notFound(err, "exhibition", a.Exhibition.ID)
		}
		out.offlineNotice(offline)
		out.exhibition(ex)
	}
	return nil
}

func notFound(err error, kind, id string) error {
	if errors.Is(err, client.ErrNotFound) {
		return fmt.Errorf("%s %s not found", kind, id)
	}
	return err
}

