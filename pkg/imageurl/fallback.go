package imageurl

import (
	"strings"
)

// Element is an image whose source can be replaced after a failed load.
type Element interface {
	Source() string
	SetSource(src string)
}

// ClientFallback reports whether the configured fallback is a root-relative
// path outside /static/, served from the client's own origin.
func (n *Normalizer) ClientFallback() bool {
	f := n.fallback
	return strings.HasPrefix(f, "/") && !strings.HasPrefix(f, "//") && !strings.HasPrefix(f, StaticPrefix)
}

// ResolveFallback qualifies a fallback for use as an image source. It goes
// through the same rules as any stored reference, except the configured
// client-origin placeholder, which is returned as is.
func (n *Normalizer) ResolveFallback(fallback string) string {
	f := strings.TrimSpace(fallback)
	if f == "" {
		f = n.fallback
	}
	if f == n.fallback && n.ClientFallback() {
		return f
	}
	return n.explain(f, "").URL
}

// OnLoadError swaps the source of an image that failed to load for the resolved
// fallback. It never panics. When the element already shows the fallback, the
// fallback itself failed and the element is left alone.
func (n *Normalizer) OnLoadError(el Element, raw string, fallback ...string) {
	defer func() {
		if r := recover(); r != nil {
			n.log.Error("image fallback handler recovered", "image_url", truncate(raw), "panic", r)
		}
	}()

	if el == nil {
		return
	}

	target := n.ResolveFallback(n.fallbackOf(fallback))
	if el.Source() == target {
		n.log.Debug("image fallback failed to load", "fallback", target)
		return
	}

	n.log.Warn("failed to load image", "image_url", truncate(raw), "fallback", target)
	el.SetSource(target)
}
