package sanitizer

import (
	"strings"

	"github.com/nyaruka/phonenumbers"
)

// supportedRegions are tried in order for numbers without a country code.
var supportedRegions = []string{
	"KE",
	"US",
	"GB",
}

// NormalizePhone returns the E.164 form of phone, or the trimmed input when
// no supported region accepts it.
func NormalizePhone(phone string) string {
	phone = strings.TrimSpace(phone)
	if phone == "" {
		return ""
	}

	for _, region := range supportedRegions {
		parsed, err := phonenumbers.Parse(phone, region)
		if err == nil && phonenumbers.IsValidNumber(parsed) {
			return phonenumbers.Format(parsed, phonenumbers.E164)
		}
	}
	return phone
}
