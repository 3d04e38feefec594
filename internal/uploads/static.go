package uploads

import (
	_ "embed"
	"net/http"
	"os"
	"path"
	"path/filepath"
	"strings"

	"github.com/julienschmidt/httprouter"

	"gallery/pkg/imageurl"
	"gallery/pkg/logger"
)

//go:embed placeholder.svg
var placeholderSVG []byte

// StaticHandler serves files under the static dir. A missing file is an image
// that failed to load, so the request is redirected to the fallback image.
type StaticHandler struct {
	root   string
	images *imageurl.Normalizer
	log    *logger.Logger
}

func NewStaticHandler(root string, images *imageurl.Normalizer, log *logger.Logger) *StaticHandler {
	return &StaticHandler{root: root, images: images, log: log}
}

func (h *StaticHandler) Serve(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
	rel := path.Clean("/" + ps.ByName("filepath"))
	full := filepath.Join(h.root, filepath.FromSlash(rel))

	info, err := os.Stat(full)
	if err == nil && !info.IsDir() {
		http.ServeFile(w, r, full)
		return
	}

	el := &redirectElement{
		w:   w,
		r:   r,
		src: h.images.Normalize(imageurl.StaticPrefix + strings.TrimPrefix(rel, "/")),
	}
	h.images.OnLoadError(el, r.URL.Path)
	if !el.redirected {
		http.NotFound(w, r)
	}
}

// Placeholder serves the built-in fallback image.
func (h *StaticHandler) Placeholder(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	w.Header().Set("Content-Type", "image/svg+xml")
	w.Header().Set("Cache-Control", "public, max-age=86400")
	w.WriteHeader(http.StatusOK)
	if r.Method == http.MethodHead {
		return
	}
	if _, err := w.Write(placeholderSVG); err != nil {
		h.log.Error("failed to write placeholder", "error", err)
	}
}

func (h *StaticHandler) RegisterRoutes(router *httprouter.Router) {
	router.GET("/static/*filepath", h.Serve)
	router.HEAD("/static/*filepath", h.Serve)

	// A root-relative fallback is served by this process too, so redirects
	// from missing files always land on an image.
	if h.images.ClientFallback() {
		fb := h.images.Fallback()
		router.GET(fb, h.Placeholder)
		router.HEAD(fb, h.Placeholder)
	}
}

// redirectElement adapts an HTTP exchange to imageurl.Element: replacing the
// source answers the request with a redirect.
type redirectElement struct {
	w          http.ResponseWriter
	r          *http.Request
	src        string
	redirected bool
}

func (e *redirectElement) Source() string { return e.src }

func (e *redirectElement) SetSource(src string) {
	e.src = src
	e.redirected = true
	http.Redirect(e.w, e.r, src, http.StatusFound)
}
