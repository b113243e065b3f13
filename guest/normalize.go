package guest

import (
	"strings"

	"guestlist/internal/textutil"
)

// The normalizers below are total: any input, including empty or garbage,
// maps to a canonical value so a malformed row never aborts an import.
// Matching is case- and accent-insensitive.

// NormalizeStatus maps free text to a confirmation status. Unrecognized
// input falls back to "Não comparecerá".
func NormalizeStatus(value string) Status {
	folded := textutil.Fold(value)
	switch {
	case strings.HasPrefix(folded, "confirm"):
		return StatusConfirmed
	case strings.HasPrefix(folded, "pend"):
		return StatusPending
	default:
		return StatusNotAttending
	}
}

// NormalizeGroup maps free text to a guest group. Anything that is not
// "família" falls back to "Amigos".
func NormalizeGroup(value string) Group {
	if textutil.Fold(value) == "familia" {
		return GroupFamily
	}
	return GroupFriends
}

// NormalizeAgeGroup maps free text to an age group, or unset when the text
// matches no known prefix.
func NormalizeAgeGroup(value string) AgeGroup {
	folded := textutil.Fold(value)
	switch {
	case strings.HasPrefix(folded, "crian"):
		return AgeChild
	case strings.HasPrefix(folded, "adole"):
		return AgeTeen
	case strings.HasPrefix(folded, "adult"):
		return AgeAdult
	case strings.HasPrefix(folded, "idos"):
		return AgeElder
	default:
		return AgeUnset
	}
}

// NormalizeFriday maps free text to a first-day attendance value. "Aye" is a
// legacy affirmative answer preserved as-is.
func NormalizeFriday(value string) Friday {
	switch textutil.Fold(value) {
	case "sim", "yes":
		return FridayYes
	case "nao", "no":
		return FridayNo
	case "aye":
		return FridayAye
	default:
		return FridayUnset
	}
}
