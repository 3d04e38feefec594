package client

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"net/url"

	"gallery/pkg/imageurl"
	"gallery/pkg/model"
)

var ErrNotFound = errors.New("not found")

// APIError is a 4xx answer from the gallery API. Those are real answers, so
// they are never replaced with sample data.
type APIError struct {
	StatusCode int
	Message    string
}

func (e *APIError) Error() string {
	return fmt.Sprintf("gallery api: %d %s", e.StatusCode, e.Message)
}

type ArtworkList struct {
	Artworks []model.Artwork
	Total    int64
	Offline  bool
}

type ExhibitionList struct {
	Exhibitions []model.Exhibition
	Total       int64
	Offline     bool
}

// GalleryClient reads the public catalog. When the API is unreachable or
// failing it serves the bundled sample catalog and marks the result Offline.
type GalleryClient struct {
	http   *HttpClient
	images *imageurl.Normalizer
}

func NewGalleryClient(baseURL string, images *imageurl.Normalizer) *GalleryClient {
	return &GalleryClient{http: NewHttpClient(baseURL), images: images}
}

func (c *GalleryClient) WithHTTPClient(hc *http.Client) *GalleryClient {
	c.http.HTTPClient = hc
	return c
}

func (c *GalleryClient) ListArtworks(ctx context.Context, limit int, offset int64) (ArtworkList, error) {
	var page struct {
		Data       []model.Artwork `json:"data"`
		TotalCount int64           `json:"total_count"`
	}
	offline, err := c.fetch(ctx, listPath("/api/artworks", limit, offset), &page)
	if err != nil {
		return ArtworkList{}, err
	}
	if offline {
		page.Data, page.TotalCount = SampleArtworks(), int64(len(sampleArtworks))
	}
	for i := range page.Data {
		c.normalizeArtwork(&page.Data[i])
	}
	return ArtworkList{Artworks: page.Data, Total: page.TotalCount, Offline: offline}, nil
}

func (c *GalleryClient) GetArtwork(ctx context.Context, id string) (*model.Artwork, bool, error) {
	var body struct {
		Data model.Artwork `json:"data"`
	}
	offline, err := c.fetch(ctx, "/api/artworks/"+url.PathEscape(id), &body)
	if err != nil {
		return nil, false, err
	}
	if offline {
		a, ok := findSample(SampleArtworks(), id, func(a model.Artwork) string { return a.ID })
		if !ok {
			return nil, true, ErrNotFound
		}
		body.Data = a
	}
	c.normalizeArtwork(&body.Data)
	return &body.Data, offline, nil
}

func (c *GalleryClient) ListExhibitions(ctx context.Context, limit int, offset int64) (ExhibitionList, error) {
	var page struct {
		Data       []model.Exhibition `json:"data"`
		TotalCount int64              `json:"total_count"`
	}
	offline, err := c.fetch(ctx, listPath("/api/exhibitions", limit, offset), &page)
	if err != nil {
		return ExhibitionList{}, err
	}
	if offline {
		page.Data, page.TotalCount = SampleExhibitions(), int64(len(sampleExhibitions))
	}
	for i := range page.Data {
		c.normalizeExhibition(&page.Data[i])
	}
	return ExhibitionList{Exhibitions: page.Data, Total: page.TotalCount, Offline: offline}, nil
}

func (c *GalleryClient) GetExhibition(ctx context.Context, id string) (*model.Exhibition, bool, error) {
	var body struct {
		Data model.Exhibition `json:"data"`
	}
	offline, err := c.fetch(ctx, "/api/exhibitions/"+url.PathEscape(id), &body)
	if err != nil {
		return nil, false, err
	}
	if offline {
		e, ok := findSample(SampleExhibitions(), id, func(e model.Exhibition) string { return e.ID })
		if !ok {
			return nil, true, ErrNotFound
		}
		body.Data = e
	}
	c.normalizeExhibition(&body.Data)
	return &body.Data, offline, nil
}

// SubmitContact has no offline mode; a message that was not stored must fail.
func (c *GalleryClient) SubmitContact(ctx context.Context, msg model.ContactMessage) error {
	resp, err := c.http.POST(ctx, "/api/contact", msg)
	if err != nil {
		return err
	}
	if resp.StatusCode >= 300 {
		return &APIError{StatusCode: resp.StatusCode, Message: GetErrorMessage(resp)}
	}
	return nil
}

// fetch decodes a successful response into target. It reports offline=true
// instead of an error on transport failures and 5xx answers.
func (c *GalleryClient) fetch(ctx context.Context, path string, target any) (bool, error) {
	resp, err := c.http.GET(ctx, path)
	if err != nil {
		if ctx.Err() != nil {
			return false, ctx.Err()
		}
		return true, nil
	}
	switch {
	case resp.StatusCode >= 500:
		return true, nil
	case resp.StatusCode == http.StatusNotFound:
		return false, ErrNotFound
	case resp.StatusCode >= 300:
		return false, &APIError{StatusCode: resp.StatusCode, Message: GetErrorMessage(resp)}
	}
	if err := resp.DecodeJSON(target); err != nil {
		return true, nil
	}
	return false, nil
}

func (c *GalleryClient) normalizeArtwork(a *model.Artwork) {
	if c.images != nil {
		c.images.NormalizeFields(&a.ImageURL)
	}
}

func (c *GalleryClient) normalizeExhibition(e *model.Exhibition) {
	if c.images != nil {
		c.images.NormalizeFields(&e.ImageURL)
	}
}

func listPath(base string, limit int, offset int64) string {
	q := url.Values{}
	if limit > 0 {
		q.Set("limit", fmt.Sprint(limit))
	}
	if offset > 0 {
		q.Set("offset", fmt.Sprint(offset))
	}
	if len(q) == 0 {
		return base
	}
	return base + "?" + q.Encode()
}

func findSample[T any](items []T, id string, idOf func(T) string) (T, bool) {
	for _, item := range items {
		if idOf(item) == id {
			return item, true
		}
	}
	var zero T
	return zero, false
}
