// Package imageurl turns image references of uncertain shape into URLs a browser can fetch.
//
// References reach the gallery from many places: records stored by older clients,
// uploads saved by this server, data URIs from preview forms and third-party links.
// A Normalizer maps each of them onto one resolvable URL, qualifying server-relative
// paths with the configured server base URL.
//
// Normalization rules, evaluated in order (the first match wins):
//   - empty reference: the fallback, unchanged
//   - data URI: unchanged
//   - malformed protocol ("https:;//", "https://;"): repaired, evaluation continues
//   - absolute http(s) URL: unchanged
//   - "/static/..." path: prefixed with the server base URL
//   - bare relative path: "/" prepended, then prefixed with the server base URL
//   - any other absolute path: prefixed with the server base URL
//
// Normalize is idempotent and never panics.
package imageurl
