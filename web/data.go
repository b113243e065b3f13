package web

import (
	"sort"
	"strings"

	"guestlist/guest"
	"guestlist/internal/textutil"
)

// GuestFilter narrows the list view. Empty fields match everything; the
// query matches name and invite name, accent- and case-insensitive.
type GuestFilter struct {
	Query         string
	Status        string
	Group         string
	Accommodation string
}

func (f GuestFilter) matches(g guest.Guest) bool {
	if query := textutil.Fold(f.Query); query != "" {
		name := textutil.Fold(g.Name)
		invite := textutil.Fold(g.InviteName)
		if !strings.Contains(name, query) && !strings.Contains(invite, query) {
			return false
		}
	}
	if f.Status != "" && string(g.Status) != f.Status {
		return false
	}
	if f.Group != "" && string(g.Group) != f.Group {
		return false
	}
	if f.Accommodation != "" && g.Accommodation != f.Accommodation {
		return false
	}
	return true
}

// FilterGuests returns the guests matching the filter, preserving order.
func FilterGuests(guests []guest.Guest, filter GuestFilter) []guest.Guest {
	filtered := make([]guest.Guest, 0, len(guests))
	for _, g := range guests {
		if filter.matches(g) {
			filtered = append(filtered, g)
		}
	}
	return filtered
}

type breakdownRow struct {
	Label string
	Count int
}

// accommodationRows orders the by-accommodation breakdown by count, then
// name, matching the dashboard chart ordering.
func accommodationRows(stats guest.Stats) []breakdownRow {
	rows := make([]breakdownRow, 0, len(stats.ByAccommodation))
	for name, count := range stats.ByAccommodation {
		rows = append(rows, breakdownRow{Label: name, Count: count})
	}
	sort.Slice(rows, func(i, j int) bool {
		if rows[i].Count != rows[j].Count {
			return rows[i].Count > rows[j].Count
		}
		return rows[i].Label < rows[j].Label
	})
	return rows
}

func groupRows(stats guest.Stats) []breakdownRow {
	rows := make([]breakdownRow, 0, 2)
	for _, group := range []guest.Group{guest.GroupFamily, guest.GroupFriends} {
		if count, ok := stats.ByGroup[group]; ok {
			rows = append(rows, breakdownRow{Label: string(group), Count: count})
		}
	}
	return rows
}

func ageGroupRows(stats guest.Stats) []breakdownRow {
	order := []guest.AgeGroup{guest.AgeChild, guest.AgeTeen, guest.AgeAdult, guest.AgeElder}
	rows := make([]breakdownRow, 0, len(order))
	for _, age := range order {
		if count, ok := stats.ByAgeGroup[age]; ok {
			rows = append(rows, breakdownRow{Label: string(age), Count: count})
		}
	}
	return rows
}
