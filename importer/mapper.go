package importer

import (
	"github.com/google/uuid"

	"guestlist/guest"
	"guestlist/internal/textutil"
)

// MapRecord turns one parsed row into a canonical guest. Enum fields pass
// through the normalizers, the phone is assembled from whichever columns
// the source had, and a fresh identifier is assigned when the row carries
// none. Mapping never fails: malformed cells degrade to defaults.
func MapRecord(record Record, batchLabel string) guest.Guest {
	g := guest.Guest{
		ID:            record.Get(FieldID),
		InviteName:    record.Get(FieldInviteName),
		Name:          record.Get(FieldName),
		Phone:         phoneFromRecord(record),
		Group:         guest.NormalizeGroup(record.Get(FieldGroup)),
		Accommodation: record.Get(FieldAccommodation),
		AgeGroup:      guest.NormalizeAgeGroup(record.Get(FieldAgeGroup)),
		Status:        guest.NormalizeStatus(record.Get(FieldStatus)),
		Friday:        guest.NormalizeFriday(record.Get(FieldFriday)),
	}

	if g.ID == "" {
		g.ID = uuid.NewString()
	}
	if g.InviteName == "" {
		g.InviteName = batchLabel
	}

	return g
}

// phoneFromRecord prefers a dedicated phone column and otherwise rebuilds
// the raw phone from country-code and area+number columns.
func phoneFromRecord(record Record) string {
	if phone := record.Get(FieldPhone); phone != "" {
		return phone
	}

	rest := textutil.Digits(record.Get(FieldDDDPhone))
	if rest == "" {
		return ""
	}
	return textutil.Digits(record.Get(FieldDDI)) + rest
}
