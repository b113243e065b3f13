package cmd

import (
	"fmt"
	"sort"
	"strings"

	"github.com/spf13/cobra"

	"guestlist/guest"
	"guestlist/storage"
)

var (
	statsDBPath         string
	statsShowDuplicates bool
)

var statsCmd = &cobra.Command{
	Use:   "stats",
	Short: "Print aggregate guest statistics",
	Long: `Print totals and confirmed-only breakdowns over the stored guest list.

Pending is derived: every guest that is neither confirmed nor declined counts
as pending, so the three buckets always add up to the total.`,
	Example: `
  # Print statistics
  guestlist stats --db ./guestlist.db

  # Include duplicate-name warnings
  guestlist stats --duplicates
`,
	RunE: func(cmd *cobra.Command, args []string) error {
		store, err := storage.OpenSQLite(statsDBPath)
		if err != nil {
			return err
		}
		defer store.Close()

		guests, err := store.ListGuests()
		if err != nil {
			return err
		}

		fmt.Print(formatStats(guest.Aggregate(guests)))

		if statsShowDuplicates {
			fmt.Print(formatDuplicates(guest.FindDuplicates(guests)))
		}
		return nil
	},
}

func formatStats(stats guest.Stats) string {
	var b strings.Builder

	fmt.Fprintf(&b, "Total: %d\n", stats.Total)
	fmt.Fprintf(&b, "Confirmados: %d\n", stats.Confirmed)
	fmt.Fprintf(&b, "Pendentes: %d\n", stats.Pending)
	fmt.Fprintf(&b, "Não comparecerão: %d\n", stats.NotAttending)
	fmt.Fprintf(&b, "Sexta-feira: %d\n", stats.FridayConfirmed)

	if len(stats.ByGroup) > 0 {
		fmt.Fprintln(&b, "Por grupo:")
		for _, group := range []guest.Group{guest.GroupFamily, guest.GroupFriends} {
			if count, ok := stats.ByGroup[group]; ok {
				fmt.Fprintf(&b, "  %s: %d\n", group, count)
			}
		}
	}

	if len(stats.ByAccommodation) > 0 {
		names := make([]string, 0, len(stats.ByAccommodation))
		for name := range stats.ByAccommodation {
			names = append(names, name)
		}
		sort.Strings(names)
		fmt.Fprintln(&b, "Por hospedagem:")
		for _, name := range names {
			fmt.Fprintf(&b, "  %s: %d\n", name, stats.ByAccommodation[name])
		}
	}

	if len(stats.ByAgeGroup) > 0 {
		fmt.Fprintln(&b, "Por faixa etária:")
		for _, age := range []guest.AgeGroup{guest.AgeChild, guest.AgeTeen, guest.AgeAdult, guest.AgeElder} {
			if count, ok := stats.ByAgeGroup[age]; ok {
				fmt.Fprintf(&b, "  %s: %d\n", age, count)
			}
		}
	}

	return b.String()
}

func formatDuplicates(duplicates []guest.Duplicate) string {
	if len(duplicates) == 0 {
		return "Nenhum nome duplicado.\n"
	}

	var b strings.Builder
	fmt.Fprintf(&b, "Nomes duplicados: %d\n", len(duplicates))
	for _, dup := range duplicates {
		fmt.Fprintf(&b, "  %s: %d ocorrências, telefones: %s\n", dup.Name, dup.Count, strings.Join(dup.Phones, ", "))
	}
	return b.String()
}

func init() {
	rootCmd.AddCommand(statsCmd)

	statsCmd.Flags().StringVar(&statsDBPath, "db", "./guestlist.db", "Path to local SQLite database")
	statsCmd.Flags().BoolVar(&statsShowDuplicates, "duplicates", false, "Also list names appearing more than once or with conflicting phones")
}
