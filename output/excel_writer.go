package output

import (
	"fmt"
	"sort"
	"strings"

	"github.com/xuri/excelize/v2"

	"guestlist/guest"
)

const (
	sheetGuests     = "Convidados"
	sheetSummary    = "Resumo"
	sheetDuplicates = "Duplicados"
)

var ageGroupOrder = []guest.AgeGroup{guest.AgeChild, guest.AgeTeen, guest.AgeAdult, guest.AgeElder}

// BuildReport renders the full event report: the guest table with the phone
// decomposed into DDI and local columns, a summary sheet with the aggregate
// statistics, and a duplicate-candidates sheet for human review. Guests
// without an invite name fall back to the event title.
func BuildReport(guests []guest.Guest, title, countryCode string) (*excelize.File, error) {
	file := excelize.NewFile()

	if err := file.SetSheetName(file.GetSheetName(0), sheetGuests); err != nil {
		return nil, fmt.Errorf("rename guest sheet: %w", err)
	}

	headerStyle, err := file.NewStyle(&excelize.Style{
		Font: &excelize.Font{Bold: true, Color: "FFFFFF"},
		Fill: excelize.Fill{Type: "pattern", Pattern: 1, Color: []string{"B8860B"}},
	})
	if err != nil {
		return nil, fmt.Errorf("create header style: %w", err)
	}
	sectionStyle, err := file.NewStyle(&excelize.Style{Font: &excelize.Font{Bold: true}})
	if err != nil {
		return nil, fmt.Errorf("create section style: %w", err)
	}

	if err := writeGuestSheet(file, guests, title, countryCode, headerStyle); err != nil {
		return nil, err
	}
	if err := writeSummarySheet(file, guest.Aggregate(guests), headerStyle, sectionStyle); err != nil {
		return nil, err
	}
	if err := writeDuplicateSheet(file, guest.FindDuplicates(guests), headerStyle); err != nil {
		return nil, err
	}

	return file, nil
}

// WriteReportFile builds the report and saves it to path.
func WriteReportFile(path string, guests []guest.Guest, title, countryCode string) error {
	file, err := BuildReport(guests, title, countryCode)
	if err != nil {
		return err
	}
	defer file.Close()

	if err := file.SaveAs(path); err != nil {
		return fmt.Errorf("save report %s: %w", path, err)
	}
	return nil
}

func writeGuestSheet(file *excelize.File, guests []guest.Guest, title, countryCode string, headerStyle int) error {
	headers := []any{"Nome", "Convite", "DDI", "DDD + Telefone", "Grupo", "Hospedagem", "Faixa Etária", "Status", "Sexta"}
	if err := file.SetSheetRow(sheetGuests, "A1", &headers); err != nil {
		return fmt.Errorf("write guest headers: %w", err)
	}
	if err := file.SetRowStyle(sheetGuests, 1, 1, headerStyle); err != nil {
		return fmt.Errorf("style guest headers: %w", err)
	}
	if err := file.SetColWidth(sheetGuests, "A", "I", 18); err != nil {
		return fmt.Errorf("size guest columns: %w", err)
	}

	for i, g := range guests {
		inviteName := g.InviteName
		if inviteName == "" {
			inviteName = title
		}
		parts := guest.SplitPhone(g.Phone, countryCode)

		row := []any{
			g.Name,
			inviteName,
			parts.CountryCode,
			parts.Local(),
			string(g.Group),
			g.Accommodation,
			string(g.AgeGroup),
			string(g.Status),
			string(g.Friday),
		}
		cell, err := excelize.CoordinatesToCellName(1, i+2)
		if err != nil {
			return fmt.Errorf("guest row cell: %w", err)
		}
		if err := file.SetSheetRow(sheetGuests, cell, &row); err != nil {
			return fmt.Errorf("write guest row %d: %w", i+2, err)
		}
	}

	return nil
}

func writeSummarySheet(file *excelize.File, stats guest.Stats, headerStyle, sectionStyle int) error {
	if _, err := file.NewSheet(sheetSummary); err != nil {
		return fmt.Errorf("create summary sheet: %w", err)
	}
	if err := file.SetColWidth(sheetSummary, "A", "A", 28); err != nil {
		return fmt.Errorf("size summary columns: %w", err)
	}

	rowNumber := 0
	writeRow := func(label string, value any) error {
		rowNumber++
		row := []any{label, value}
		cell, err := excelize.CoordinatesToCellName(1, rowNumber)
		if err != nil {
			return err
		}
		return file.SetSheetRow(sheetSummary, cell, &row)
	}
	writeSection := func(label string) error {
		rowNumber++ // blank spacer row
		if err := writeRow(label, nil); err != nil {
			return err
		}
		return file.SetRowStyle(sheetSummary, rowNumber, rowNumber, sectionStyle)
	}

	if err := writeRow("Resumo", nil); err != nil {
		return fmt.Errorf("write summary title: %w", err)
	}
	if err := file.SetRowStyle(sheetSummary, 1, 1, headerStyle); err != nil {
		return fmt.Errorf("style summary title: %w", err)
	}

	totals := []struct {
		label string
		value int
	}{
		{"Total de convidados", stats.Total},
		{"Confirmados", stats.Confirmed},
		{"Pendentes", stats.Pending},
		{"Não comparecerão", stats.NotAttending},
		{"Confirmados para sexta", stats.FridayConfirmed},
	}
	for _, total := range totals {
		if err := writeRow(total.label, total.value); err != nil {
			return fmt.Errorf("write summary row: %w", err)
		}
	}

	if err := writeSection("Por Grupo"); err != nil {
		return fmt.Errorf("write group section: %w", err)
	}
	for _, group := range []guest.Group{guest.GroupFamily, guest.GroupFriends} {
		if count, ok := stats.ByGroup[group]; ok {
			if err := writeRow(string(group), count); err != nil {
				return fmt.Errorf("write group row: %w", err)
			}
		}
	}

	if err := writeSection("Por Hospedagem"); err != nil {
		return fmt.Errorf("write accommodation section: %w", err)
	}
	for _, name := range sortedByCountDesc(stats.ByAccommodation) {
		if err := writeRow(name, stats.ByAccommodation[name]); err != nil {
			return fmt.Errorf("write accommodation row: %w", err)
		}
	}

	if err := writeSection("Por Faixa Etária"); err != nil {
		return fmt.Errorf("write age group section: %w", err)
	}
	for _, age := range ageGroupOrder {
		if count, ok := stats.ByAgeGroup[age]; ok {
			if err := writeRow(string(age), count); err != nil {
				return fmt.Errorf("write age group row: %w", err)
			}
		}
	}

	return nil
}

func writeDuplicateSheet(file *excelize.File, duplicates []guest.Duplicate, headerStyle int) error {
	if _, err := file.NewSheet(sheetDuplicates); err != nil {
		return fmt.Errorf("create duplicate sheet: %w", err)
	}

	headers := []any{"Nome", "Ocorrências", "Telefones"}
	if err := file.SetSheetRow(sheetDuplicates, "A1", &headers); err != nil {
		return fmt.Errorf("write duplicate headers: %w", err)
	}
	if err := file.SetRowStyle(sheetDuplicates, 1, 1, headerStyle); err != nil {
		return fmt.Errorf("style duplicate headers: %w", err)
	}
	if err := file.SetColWidth(sheetDuplicates, "A", "C", 24); err != nil {
		return fmt.Errorf("size duplicate columns: %w", err)
	}

	for i, duplicate := range duplicates {
		row := []any{duplicate.Name, duplicate.Count, strings.Join(duplicate.Phones, ", ")}
		cell, err := excelize.CoordinatesToCellName(1, i+2)
		if err != nil {
			return fmt.Errorf("duplicate row cell: %w", err)
		}
		if err := file.SetSheetRow(sheetDuplicates, cell, &row); err != nil {
			return fmt.Errorf("write duplicate row %d: %w", i+2, err)
		}
	}

	return nil
}

func sortedByCountDesc(counts map[string]int) []string {
	names := make([]string, 0, len(counts))
	for name := range counts {
		names = append(names, name)
	}
	sort.Slice(names, func(i, j int) bool {
		if counts[names[i]] != counts[names[j]] {
			return counts[names[i]] > counts[names[j]]
		}
		return names[i] < names[j]
	})
	return names
}
