package imageurl

import (
	"errors"
	"fmt"
	"log/slog"
	"net/url"
	"strings"
	"unicode/utf8"
)

const (
	DefaultBaseURL  = "http://localhost:8000"
	DefaultFallback = "/placeholder.svg"

	StaticPrefix = "/static/"

	dataPrefix     = "data:"
	absolutePrefix = "http"
)

var ErrInvalidBaseURL = errors.New("server base URL must be an absolute http(s) URL")

// Rule identifies the decision that produced a normalized URL.
type Rule int

const (
	RuleFallback Rule = iota
	RuleDataURI
	RuleAbsolute
	RuleStatic
	RuleRelative
	RuleRooted
)

func (r Rule) String() string {
	switch r {
	case RuleFallback:
		return "fallback"
	case RuleDataURI:
		return "data_uri"
	case RuleAbsolute:
		return "absolute"
	case RuleStatic:
		return "static"
	case RuleRelative:
		return "relative"
	case RuleRooted:
		return "rooted"
	default:
		return fmt.Sprintf("rule(%d)", int(r))
	}
}

// Result is the outcome of a single normalization.
type Result struct {
	URL      string
	Rule     Rule
	Repaired bool
}

type Normalizer struct {
	baseURL  string
	fallback string
	log      *slog.Logger
}

type Option func(*Normalizer)

// WithFallback overrides the default fallback used for empty references.
func WithFallback(fallback string) Option {
	return func(n *Normalizer) {
		if f := strings.TrimSpace(fallback); f != "" {
			n.fallback = f
		}
	}
}

// WithLogger attaches a diagnostic hook. Each normalization is logged at debug level,
// load failures at warn level.
func WithLogger(log *slog.Logger) Option {
	return func(n *Normalizer) {
		if log != nil {
			n.log = log
		}
	}
}

// New builds a Normalizer for the given server base URL. An empty base URL selects
// DefaultBaseURL.
func New(baseURL string, opts ...Option) (*Normalizer, error) {
	base, err := normalizeBaseURL(baseURL)
	if err != nil {
		return nil, err
	}

	n := &Normalizer{
		baseURL:  base,
		fallback: DefaultFallback,
		log:      slog.New(slog.DiscardHandler),
	}
	for _, opt := range opts {
		opt(n)
	}
	return n, nil
}

// MustNew is like New but panics on an invalid base URL.
func MustNew(baseURL string, opts ...Option) *Normalizer {
	n, err := New(baseURL, opts...)
	if err != nil {
		panic(err)
	}
	return n
}

func normalizeBaseURL(raw string) (string, error) {
	base := strings.TrimRight(strings.TrimSpace(raw), "/")
	if base == "" {
		return DefaultBaseURL, nil
	}

	u, err := url.Parse(base)
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrInvalidBaseURL, err)
	}
	if (u.Scheme != "http" && u.Scheme != "https") || u.Host == "" {
		return "", fmt.Errorf("%w: %s", ErrInvalidBaseURL, raw)
	}
	if markerIndex(base) >= 0 || strings.HasSuffix(base, ":") || strings.HasSuffix(base, ";") {
		return "", fmt.Errorf("%w: %s", ErrInvalidBaseURL, raw)
	}
	return base, nil
}

func (n *Normalizer) BaseURL() string {
	return n.baseURL
}

func (n *Normalizer) Fallback() string {
	return n.fallback
}

// Normalize returns a resolvable URL for raw. The optional fallback replaces the
// default fallback for this call; an empty fallback argument means the default.
func (n *Normalizer) Normalize(raw string, fallback ...string) string {
	return n.Explain(raw, fallback...).URL
}

// Explain normalizes raw and reports which rule decided the result.
func (n *Normalizer) Explain(raw string, fallback ...string) Result {
	res := n.explain(raw, n.fallbackOf(fallback))
	n.log.Debug("image url normalized",
		"raw", truncate(raw),
		"url", truncate(res.URL),
		"rule", res.Rule.String(),
		"repaired", res.Repaired,
	)
	return res
}

func (n *Normalizer) explain(raw, fallback string) Result {
	ref := strings.TrimSpace(raw)

	// The fallback maps onto itself so that normalizing an already normalized
	// empty reference stays stable.
	if ref == "" || ref == fallback {
		return Result{URL: fallback, Rule: RuleFallback}
	}

	if strings.HasPrefix(ref, dataPrefix) {
		return Result{URL: ref, Rule: RuleDataURI}
	}

	ref, repaired := RepairProtocol(ref)

	switch {
	case strings.HasPrefix(ref, absolutePrefix):
		return Result{URL: ref, Rule: RuleAbsolute, Repaired: repaired}
	case strings.HasPrefix(ref, StaticPrefix):
		return Result{URL: n.baseURL + ref, Rule: RuleStatic, Repaired: repaired}
	case !strings.HasPrefix(ref, "/"):
		return Result{URL: n.baseURL + "/" + ref, Rule: RuleRelative, Repaired: repaired}
	default:
		return Result{URL: n.baseURL + ref, Rule: RuleRooted, Repaired: repaired}
	}
}

// NormalizeFields rewrites each referenced image field in place.
func (n *Normalizer) NormalizeFields(refs ...*string) {
	for _, ref := range refs {
		if ref != nil {
			*ref = n.Normalize(*ref)
		}
	}
}

// RepairProtocol removes the stray semicolon of a malformed protocol separator
// (":;//" or "://;"). Every marker is repaired so the output never carries one.
func RepairProtocol(ref string) (string, bool) {
	repaired := false
	for {
		i := markerIndex(ref)
		if i < 0 {
			return ref, repaired
		}
		ref = ref[:i] + "://" + ref[i+4:]
		repaired = true
	}
}

func markerIndex(ref string) int {
	a := strings.Index(ref, ":;//")
	b := strings.Index(ref, "://;")
	switch {
	case a < 0:
		return b
	case b < 0:
		return a
	default:
		return min(a, b)
	}
}

func (n *Normalizer) fallbackOf(fallback []string) string {
	if len(fallback) > 0 {
		if f := strings.TrimSpace(fallback[0]); f != "" {
			return f
		}
	}
	return n.fallback
}

func truncate(s string) string {
	const maxLogLen = 64
	if len(s) <= maxLogLen {
		return s
	}
	cut := maxLogLen
	for cut > 0 && !utf8.RuneStart(s[cut]) {
		cut--
	}
	return s[:cut] + "..."
}
