package guest

import "strings"

type Status string

const (
	StatusConfirmed    Status = "Confirmado"
	StatusPending      Status = "Pendente"
	StatusNotAttending Status = "Não comparecerá"
)

type Group string

const (
	GroupFamily  Group = "Família"
	GroupFriends Group = "Amigos"
)

type AgeGroup string

const (
	AgeChild AgeGroup = "Criança"
	AgeTeen  AgeGroup = "Adolescente"
	AgeAdult AgeGroup = "Adulto"
	AgeElder AgeGroup = "Idoso"
	AgeUnset AgeGroup = ""
)

type Friday string

const (
	FridayYes Friday = "sim"
	FridayNo  Friday = "não"
	// FridayAye is a legacy affirmative spelling kept for old imports; it
	// counts as attendance everywhere "sim" does.
	FridayAye   Friday = "Aye"
	FridayUnset Friday = ""
)

// Guest is the normalized invitee record used across importers, storage, and
// outputs. Enum fields always hold canonical values after mapping.
type Guest struct {
	ID            string   `json:"id"`
	InviteName    string   `json:"inviteName"`
	Name          string   `json:"name"`
	Phone         string   `json:"phone"`
	Group         Group    `json:"group"`
	Accommodation string   `json:"accommodation"`
	AgeGroup      AgeGroup `json:"ageGroup"`
	Status        Status   `json:"status"`
	Friday        Friday   `json:"friday"`
	Arrived       bool     `json:"arrived"`
}

// IdentityKey derives the merge identity of a guest: the case-insensitive,
// trimmed (name, phone) pair. Two records sharing this key denote the same
// invitee regardless of any other field.
func (g Guest) IdentityKey() string {
	name := strings.ToLower(strings.TrimSpace(g.Name))
	phone := strings.ToLower(strings.TrimSpace(g.Phone))
	return name + "|" + phone
}

// AttendsFriday reports whether the guest attends the first event day.
func (g Guest) AttendsFriday() bool {
	return g.Friday == FridayYes || g.Friday == FridayAye
}
