package importer

import "guestlist/internal/textutil"

// Field names one canonical guest column.
type Field string

const (
	FieldID            Field = "id"
	FieldInviteName    Field = "inviteName"
	FieldName          Field = "name"
	FieldPhone         Field = "phone"
	FieldDDI           Field = "ddi"
	FieldDDDPhone      Field = "dddPhone"
	FieldGroup         Field = "group"
	FieldAccommodation Field = "accommodation"
	FieldFriday        Field = "friday"
	FieldAgeGroup      Field = "ageGroup"
	FieldStatus        Field = "status"
)

// fieldAliases maps each canonical field to the normalized header spellings
// accepted for it. Supporting another legacy template is a data change here,
// not new parsing code. "sabado" is the status column label of the oldest
// spreadsheet template.
var fieldAliases = map[Field][]string{
	FieldID:            {"id"},
	FieldInviteName:    {"invitename", "convite", "nomedoconvite"},
	FieldName:          {"name", "nomedosconvidados", "nome"},
	FieldPhone:         {"phone", "telefone", "celular"},
	FieldDDI:           {"ddi", "codigodopais"},
	FieldDDDPhone:      {"dddphone", "dddtelefone", "dddcelular"},
	FieldGroup:         {"group", "grupo"},
	FieldAccommodation: {"accommodation", "hospedagem", "pousada"},
	FieldFriday:        {"friday", "sexta", "sextafeira"},
	FieldAgeGroup:      {"agegroup", "faixaetaria", "idade"},
	FieldStatus:        {"status", "confirmacao", "sabado"},
}

var aliasIndex = buildAliasIndex()

func buildAliasIndex() map[string]Field {
	index := make(map[string]Field, 32)
	for field, aliases := range fieldAliases {
		for _, alias := range aliases {
			index[alias] = field
		}
	}
	return index
}

// NormalizeHeader folds case, strips diacritics, and drops everything that
// is not a letter or digit, so "Nome dos convidados *" and "sábado" match
// their aliases.
func NormalizeHeader(header string) string {
	return textutil.Alphanumeric(textutil.Fold(header))
}

// ResolveField maps one raw header (or JSON key) to its canonical field.
func ResolveField(header string) (Field, bool) {
	field, ok := aliasIndex[NormalizeHeader(header)]
	return field, ok
}

// ResolveHeaders maps an ordered header row to canonical fields. Unresolved
// columns yield "" and are dropped at row-assembly time.
func ResolveHeaders(headers []string) []Field {
	fields := make([]Field, len(headers))
	for i, header := range headers {
		if field, ok := ResolveField(header); ok {
			fields[i] = field
		}
	}
	return fields
}

// rowToRecord pairs a resolved header row with one data row. Cells beyond
// the header width and unresolved columns are ignored; missing cells stay
// absent so Record.Get returns "".
func rowToRecord(fields []Field, row []string, rowNumber int) Record {
	values := make(map[Field]string, len(fields))
	for i, field := range fields {
		if field == "" || i >= len(row) {
			continue
		}
		values[field] = row[i]
	}
	return Record{RowNumber: rowNumber, Values: values}
}
