// Package reconcile merges an imported batch into an existing guest
// collection. Merge is pure: callers swap the old collection for
// Result.Merged in one step, so no partial state is ever observable.
package reconcile

import "guestlist/guest"

type Result struct {
	Merged  []guest.Guest
	Added   []guest.Guest
	Ignored []guest.Guest
}

// Merge deduplicates incoming guests against the existing collection by
// identity key. An incoming guest whose key is already present, either in
// the existing collection or earlier in the same batch, is ignored. Merged
// preserves existing order first, then added guests in batch order. Inputs
// are never mutated.
func Merge(existing, incoming []guest.Guest) Result {
	seen := make(map[string]struct{}, len(existing)+len(incoming))
	for _, g := range existing {
		seen[g.IdentityKey()] = struct{}{}
	}

	result := Result{
		Added:   make([]guest.Guest, 0, len(incoming)),
		Ignored: make([]guest.Guest, 0),
	}

	for _, g := range incoming {
		key := g.IdentityKey()
		if _, dup := seen[key]; dup {
			result.Ignored = append(result.Ignored, g)
			continue
		}
		seen[key] = struct{}{}
		result.Added = append(result.Added, g)
	}

	result.Merged = make([]guest.Guest, 0, len(existing)+len(result.Added))
	result.Merged = append(result.Merged, existing...)
	result.Merged = append(result.Merged, result.Added...)

	return result
}
