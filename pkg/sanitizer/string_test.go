package sanitizer

import "testing"

func TestNormalizeName(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{
			name:  "trim spaces",
			input: "  Wangari Mathenge  ",
			want:  "Wangari Mathenge",
		},
		{
			name:  "multiple spaces between words",
			input: "Wangari    Mathenge",
			want:  "Wangari Mathenge",
		},
		{
			name:  "tabs and newlines",
			input: "Wangari\t\nMathenge",
			want:  "Wangari Mathenge",
		},
		{
			name:  "empty string",
			input: "",
			want:  "",
		},
		{
			name:  "only whitespace",
			input: "   \t\n  ",
			want:  "",
		},
		{
			name:  "preserve special characters",
			input: " Café & Galería™ ",
			want:  "Café & Galería™",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := NormalizeName(tt.input); got != tt.want {
				t.Errorf("NormalizeName(%q) = %q, want %q", tt.input, got, tt.want)
			}
		})
	}
}

func TestNormalizeOptional(t *testing.T) {
	NormalizeOptional(nil)

	s := "  oil   on canvas "
	NormalizeOptional(&s)
	if s != "oil on canvas" {
		t.Errorf("NormalizeOptional = %q", s)
	}
}

func TestSanitizeMultiline(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{"crlf", "line one\r\nline two", "line one\nline two"},
		{"trailing spaces", "line one   \nline two\t", "line one\nline two"},
		{"blank runs", "para one\n\n\n\n\npara two", "para one\n\npara two"},
		{"outer whitespace", "\n\n  hello  \n\n", "hello"},
		{"inner indentation kept", "list:\n  - one", "list:\n  - one"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := SanitizeMultiline(tt.input)
			if got != tt.want {
				t.Errorf("SanitizeMultiline(%q) = %q, want %q", tt.input, got, tt.want)
			}
			if again := SanitizeMultiline(got); again != got {
				t.Errorf("not idempotent: %q then %q", got, again)
			}
		})
	}
}

func TestSanitizeEmail(t *testing.T) {
	if got := SanitizeEmail("  Visitor@Example.COM "); got != "visitor@example.com" {
		t.Errorf("SanitizeEmail = %q", got)
	}
}

func TestSanitizeSource(t *testing.T) {
	tests := map[string]string{
		"":                "",
		"contact_form":    "contact_form",
		" Ticket Page ":   "ticket_page",
		"--Newsletter!!":  "newsletter",
		"exhibition-page": "exhibition_page",
	}
	for in, want := range tests {
		if got := SanitizeSource(in); got != want {
			t.Errorf("SanitizeSource(%q) = %q, want %q", in, got, want)
		}
	}
}
