package guest

// Stats aggregates derived counts over a guest collection. All "by" maps
// only consider confirmed guests.
type Stats struct {
	Total           int
	Confirmed       int
	Pending         int
	NotAttending    int
	FridayConfirmed int
	ByGroup         map[Group]int
	ByAccommodation map[string]int
	ByAgeGroup      map[AgeGroup]int
}

// Aggregate computes statistics over the collection. Pending is derived as
// total minus confirmed minus not-attending so guests holding any other
// status value fold into it, keeping confirmed+pending+notAttending == total.
// An unset age group counts as "Adulto" here without touching the record.
func Aggregate(guests []Guest) Stats {
	stats := Stats{
		ByGroup:         make(map[Group]int),
		ByAccommodation: make(map[string]int),
		ByAgeGroup:      make(map[AgeGroup]int),
	}
	stats.Total = len(guests)

	for _, g := range guests {
		switch g.Status {
		case StatusConfirmed:
			stats.Confirmed++
		case StatusNotAttending:
			stats.NotAttending++
		}
	}
	stats.Pending = stats.Total - stats.Confirmed - stats.NotAttending

	for _, g := range guests {
		if g.Status != StatusConfirmed {
			continue
		}

		stats.ByGroup[g.Group]++

		if g.Accommodation != "" {
			stats.ByAccommodation[g.Accommodation]++
		}

		age := g.AgeGroup
		if age == AgeUnset {
			age = AgeAdult
		}
		stats.ByAgeGroup[age]++

		if g.AttendsFriday() {
			stats.FridayConfirmed++
		}
	}

	return stats
}
