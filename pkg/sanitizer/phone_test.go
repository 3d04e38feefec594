package sanitizer

import "testing"

func TestNormalizePhone(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{
			name:  "valid E.164 format",
			input: "+254712345678",
			want:  "+254712345678",
		},
		{
			name:  "with spaces",
			input: "+254 712 345 678",
			want:  "+254712345678",
		},
		{
			name:  "kenyan national format",
			input: "0712 345678",
			want:  "+254712345678",
		},
		{
			name:  "us number with parentheses",
			input: "+1 (650) 253-0000",
			want:  "+16502530000",
		},
		{
			name:  "leading and trailing spaces",
			input: "  +254712345678  ",
			want:  "+254712345678",
		},
		{
			name:  "empty string",
			input: "",
			want:  "",
		},
		{
			name:  "only whitespace",
			input: "   ",
			want:  "",
		},
		{
			name:  "garbage is kept for the validator",
			input: " call me ",
			want:  "call me",
		},
		{
			name:  "too short",
			input: "12345",
			want:  "12345",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := NormalizePhone(tt.input); got != tt.want {
				t.Errorf("NormalizePhone(%q) = %q, want %q", tt.input, got, tt.want)
			}
		})
	}
}

func TestNormalizePhone_Idempotent(t *testing.T) {
	inputs := []string{"+254 712 345 678", "0712345678", "+1 650 253 0000", "junk", ""}
	for _, in := range inputs {
		once := NormalizePhone(in)
		if twice := NormalizePhone(once); twice != once {
			t.Errorf("NormalizePhone not idempotent for %q: %q then %q", in, once, twice)
		}
	}
}
