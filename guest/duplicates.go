package guest

import (
	"sort"

	"guestlist/internal/textutil"
)

// Duplicate is a human-review signal: one display name that appears more
// than once, or with more than one distinct phone number. It is deliberately
// looser than the merge identity key, which pairs name with phone.
type Duplicate struct {
	Name   string
	Count  int
	Phones []string
}

// FindDuplicates groups guests by folded name and reports every name seen
// more than once or attached to more than one distinct phone. Phones are
// listed in first-seen order; results are sorted by folded name.
func FindDuplicates(guests []Guest) []Duplicate {
	type nameGroup struct {
		display string
		count   int
		phones  []string
		seen    map[string]struct{}
	}

	groups := make(map[string]*nameGroup)
	order := make([]string, 0, len(guests))

	for _, g := range guests {
		key := textutil.Fold(g.Name)
		if key == "" {
			continue
		}

		group, ok := groups[key]
		if !ok {
			group = &nameGroup{display: g.Name, seen: make(map[string]struct{})}
			groups[key] = group
			order = append(order, key)
		}
		group.count++

		phone := textutil.Digits(g.Phone)
		if phone == "" {
			continue
		}
		if _, dup := group.seen[phone]; dup {
			continue
		}
		group.seen[phone] = struct{}{}
		group.phones = append(group.phones, phone)
	}

	sort.Strings(order)

	duplicates := make([]Duplicate, 0, len(order))
	for _, key := range order {
		group := groups[key]
		if group.count <= 1 && len(group.phones) <= 1 {
			continue
		}
		duplicates = append(duplicates, Duplicate{
			Name:   group.display,
			Count:  group.count,
			Phones: group.phones,
		})
	}

	return duplicates
}
