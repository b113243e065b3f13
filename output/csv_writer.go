package output

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"

	"guestlist/guest"
)

// guestCSVHeaders are resolvable by the import header aliases, so a file
// produced here re-imports without loss.
var guestCSVHeaders = []string{"ID", "Nome", "Convite", "Telefone", "Grupo", "Hospedagem", "Faixa Etária", "Status", "Sexta"}

// WriteGuestsCSV streams the guest table as CSV.
func WriteGuestsCSV(w io.Writer, guests []guest.Guest) error {
	writer := csv.NewWriter(w)
	defer writer.Flush()

	if err := writer.Write(guestCSVHeaders); err != nil {
		return fmt.Errorf("write csv headers: %w", err)
	}

	for _, g := range guests {
		row := []string{
			g.ID,
			g.Name,
			g.InviteName,
			g.Phone,
			string(g.Group),
			g.Accommodation,
			string(g.AgeGroup),
			string(g.Status),
			string(g.Friday),
		}
		if err := writer.Write(row); err != nil {
			return fmt.Errorf("write csv row: %w", err)
		}
	}

	writer.Flush()
	if err := writer.Error(); err != nil {
		return fmt.Errorf("flush csv output: %w", err)
	}

	return nil
}

// WriteGuestsCSVFile writes the guest table to a file path.
func WriteGuestsCSVFile(path string, guests []guest.Guest) error {
	file, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create csv output %s: %w", path, err)
	}
	defer file.Close()

	if err := WriteGuestsCSV(file, guests); err != nil {
		return err
	}
	return file.Close()
}
