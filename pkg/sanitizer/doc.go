// Package sanitizer normalizes visitor-submitted text before validation and storage.
//
// Every function is idempotent. Invalid input is returned in a form the
// validators will reject rather than silently dropped, so the caller gets a
// field error instead of a missing value.
//
// Normalization includes:
//   - Single-line text (names, titles, locations): trim and collapse whitespace
//   - Multi-line text (descriptions, messages): trim, unify line endings, cap blank runs
//   - Emails: trim and lowercase
//   - Phone numbers: E.164, with Kenyan national numbers as the default region
package sanitizer
