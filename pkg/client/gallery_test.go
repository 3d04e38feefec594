package client

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"gallery/pkg/imageurl"
	"gallery/pkg/model"
)

func newTestClient(t *testing.T, h http.HandlerFunc) *GalleryClient {
	t.Helper()
	srv := httptest.NewServer(h)
	t.Cleanup(srv.Close)
	return NewGalleryClient(srv.URL, imageurl.MustNew("http://api.test"))
}

func TestListArtworks_NormalizesImages(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/artworks", r.URL.Path)
		assert.Equal(t, "5", r.URL.Query().Get("limit"))
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"data":[
			{"id":"a","title":"One","imageUrl":"/static/uploads/a.png"},
			{"id":"b","title":"Two","imageUrl":""},
			{"id":"c","title":"Three","imageUrl":"https:;//cdn.test/c.png"}
		],"total_count":3,"limit":5,"offset":0}`))
	})

	list, err := c.ListArtworks(context.Background(), 5, 0)
	require.NoError(t, err)
	assert.False(t, list.Offline)
	assert.EqualValues(t, 3, list.Total)
	require.Len(t, list.Artworks, 3)
	assert.Equal(t, "http://api.test/static/uploads/a.png", list.Artworks[0].ImageURL)
	assert.Equal(t, imageurl.DefaultFallback, list.Artworks[1].ImageURL)
	assert.Equal(t, "https://cdn.test/c.png", list.Artworks[2].ImageURL)
}

func TestListArtworks_ServerErrorServesSamples(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	})

	list, err := c.ListArtworks(context.Background(), 0, 0)
	require.NoError(t, err)
	assert.True(t, list.Offline)
	assert.Len(t, list.Artworks, len(sampleArtworks))
	assert.Equal(t, "Sunset Over Nairobi", list.Artworks[0].Title)
}

func TestListExhibitions_UnreachableServesSamples(t *testing.T) {
	c := NewGalleryClient("http://127.0.0.1:1", nil)

	list, err := c.ListExhibitions(context.Background(), 0, 0)
	require.NoError(t, err)
	assert.True(t, list.Offline)
	assert.Len(t, list.Exhibitions, len(sampleExhibitions))
}

func TestGetArtwork(t *testing.T) {
	t.Run("not found is not offline", func(t *testing.T) {
		c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusNotFound)
		})
		_, _, err := c.GetArtwork(context.Background(), "missing")
		assert.ErrorIs(t, err, ErrNotFound)
	})

	t.Run("offline lookup", func(t *testing.T) {
		c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusBadGateway)
		})
		a, offline, err := c.GetArtwork(context.Background(), "3")
		require.NoError(t, err)
		assert.True(t, offline)
		assert.Equal(t, "Wildlife of Amboseli", a.Title)

		_, _, err = c.GetArtwork(context.Background(), "99")
		assert.ErrorIs(t, err, ErrNotFound)
	})
}

func TestGetExhibition_ClientError(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusBadRequest)
		_, _ = w.Write([]byte(`{"error":"invalid id","code":"INVALID_INPUT"}`))
	})

	_, _, err := c.GetExhibition(context.Background(), "x")
	var apiErr *APIError
	require.True(t, errors.As(err, &apiErr))
	assert.Equal(t, http.StatusBadRequest, apiErr.StatusCode)
	assert.Equal(t, "invalid id", apiErr.Message)
}

func TestSubmitContact(t *testing.T) {
	t.Run("created", func(t *testing.T) {
		c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
			assert.Equal(t, http.MethodPost, r.Method)
			assert.Equal(t, "application/json", r.Header.Get("Content-Type"))
			w.WriteHeader(http.StatusCreated)
		})
		err := c.SubmitContact(context.Background(), model.ContactMessage{Name: "Amina", Email: "a@b.co", Message: "Hello there gallery"})
		assert.NoError(t, err)
	})

	t.Run("server failure is reported", func(t *testing.T) {
		c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusServiceUnavailable)
		})
		err := c.SubmitContact(context.Background(), model.ContactMessage{})
		assert.Error(t, err)
	})
}

func TestSampleArtworks_ReturnsCopy(t *testing.T) {
	s := SampleArtworks()
	s[0].Title = "changed"
	assert.Equal(t, "Sunset Over Nairobi", sampleArtworks[0].Title)
}
