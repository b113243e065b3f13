package guest

import (
	"strings"

	"guestlist/internal/textutil"
)

// DefaultCountryCode is the national dialing code assumed for stored phones.
const DefaultCountryCode = "55"

// PhoneParts is the display decomposition of a raw phone string.
type PhoneParts struct {
	CountryCode string
	AreaCode    string
	Number      string
}

// SplitPhone strips separators from a raw phone string and decomposes it
// into country code, two-digit area code, and local number. When the digit
// string already starts with the country code, the prefix is consumed.
// Splitting a previously split-and-rejoined phone is idempotent because all
// formatting characters are discarded first.
func SplitPhone(raw, countryCode string) PhoneParts {
	if strings.TrimSpace(countryCode) == "" {
		countryCode = DefaultCountryCode
	}

	digits := textutil.Digits(raw)
	if strings.HasPrefix(digits, countryCode) && len(digits) > len(countryCode) {
		digits = digits[len(countryCode):]
	}

	parts := PhoneParts{CountryCode: countryCode}
	if digits == "" {
		parts.CountryCode = ""
		return parts
	}
	if len(digits) <= 2 {
		parts.Number = digits
		return parts
	}

	parts.AreaCode = digits[:2]
	parts.Number = digits[2:]
	return parts
}

// FormatNumber renders a local number with a hyphen before the last four
// digits. Numbers shorter than eight digits are left as-is.
func FormatNumber(number string) string {
	if len(number) < 8 {
		return number
	}
	return number[:len(number)-4] + "-" + number[len(number)-4:]
}

// Local renders the area code and formatted local number, e.g. "11 99999-0000".
func (p PhoneParts) Local() string {
	if p.AreaCode == "" {
		return FormatNumber(p.Number)
	}
	return p.AreaCode + " " + FormatNumber(p.Number)
}
