package sanitizer

import (
	"regexp"
	"strings"
)

type Strategy func(string) string

type Pipeline []Strategy

func (p Pipeline) Apply(s string) string {
	for _, fn := range p {
		s = fn(s)
	}
	return s
}

var (
	reBlankRuns   = regexp.MustCompile(`\n{3,}`)
	reSourceChars = regexp.MustCompile(`[^a-z0-9_]+`)
	reUnderscores = regexp.MustCompile(`_+`)
)

func SanitizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

// SanitizeMultiline keeps paragraph breaks but trims each line's trailing
// space and limits blank lines to one.
func SanitizeMultiline(input string) string {
	p := Pipeline{
		func(s string) string { return strings.ReplaceAll(s, "\r\n", "\n") },
		func(s string) string { return strings.ReplaceAll(s, "\r", "\n") },
		func(s string) string {
			lines := strings.Split(s, "\n")
			for i, line := range lines {
				lines[i] = strings.TrimRight(line, " \t")
			}
			return strings.Join(lines, "\n")
		},
		func(s string) string { return reBlankRuns.ReplaceAllString(s, "\n\n") },
		strings.TrimSpace,
	}
	return p.Apply(input)
}

// SanitizeSource reduces a free-form source tag to snake_case.
func SanitizeSource(input string) string {
	p := Pipeline{
		strings.TrimSpace,
		strings.ToLower,
		func(s string) string { return reSourceChars.ReplaceAllString(s, "_") },
		func(s string) string { return reUnderscores.ReplaceAllString(s, "_") },
		func(s string) string { return strings.Trim(s, "_") },
	}
	return p.Apply(input)
}
