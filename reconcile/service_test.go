package reconcile

import (
	"testing"

	"guestlist/guest"
)

func TestMerge_DeduplicatesByIdentityKey(t *testing.T) {
	t.Parallel()

	existing := []guest.Guest{
		{ID: "1", Name: "Ana", Phone: "11999990000", Status: guest.StatusConfirmed},
	}
	incoming := []guest.Guest{
		{ID: "2", Name: "ana", Phone: "11999990000", Status: guest.StatusPending},
		{ID: "3", Name: "Bea", Phone: "11988880000"},
	}

	result := Merge(existing, incoming)

	if len(result.Added) != 1 || result.Added[0].Name != "Bea" {
		t.Fatalf("unexpected added: %+v", result.Added)
	}
	if len(result.Ignored) != 1 || result.Ignored[0].Name != "ana" {
		t.Fatalf("unexpected ignored: %+v", result.Ignored)
	}
	if len(result.Merged) != 2 {
		t.Fatalf("unexpected merged length: %d", len(result.Merged))
	}
	// Existing record wins; the colliding incoming one never replaces it.
	if result.Merged[0].Status != guest.StatusConfirmed {
		t.Fatalf("existing record was altered: %+v", result.Merged[0])
	}
}

func TestMerge_BatchInternalDuplicates(t *testing.T) {
	t.Parallel()

	incoming := []guest.Guest{
		{ID: "1", Name: "Ana", Phone: "11999990000"},
		{ID: "2", Name: "ANA ", Phone: "11999990000"},
		{ID: "3", Name: "Ana", Phone: "11999990000"},
	}

	result := Merge(nil, incoming)

	if len(result.Added) != 1 || result.Added[0].ID != "1" {
		t.Fatalf("only the first occurrence should be added: %+v", result.Added)
	}
	if len(result.Ignored) != 2 {
		t.Fatalf("repeats beyond the first must be ignored: %+v", result.Ignored)
	}
}

func TestMerge_CountsClose(t *testing.T) {
	t.Parallel()

	existing := []guest.Guest{
		{Name: "Ana", Phone: "1"},
		{Name: "Bea", Phone: "2"},
	}
	incoming := []guest.Guest{
		{Name: "Ana", Phone: "1"},
		{Name: "Caio", Phone: "3"},
		{Name: "caio", Phone: "3"},
		{Name: "Duda", Phone: "4"},
	}

	result := Merge(existing, incoming)

	if len(result.Merged) != len(existing)+len(result.Added) {
		t.Fatalf("merged length must equal existing plus added: %d vs %d+%d",
			len(result.Merged), len(existing), len(result.Added))
	}
	if len(result.Added)+len(result.Ignored) != len(incoming) {
		t.Fatalf("added plus ignored must cover the batch: %d+%d vs %d",
			len(result.Added), len(result.Ignored), len(incoming))
	}
}

func TestMerge_PreservesOrderAndInputs(t *testing.T) {
	t.Parallel()

	existing := []guest.Guest{
		{ID: "e1", Name: "Ana", Phone: "1"},
		{ID: "e2", Name: "Bea", Phone: "2"},
	}
	incoming := []guest.Guest{
		{ID: "i1", Name: "Caio", Phone: "3"},
		{ID: "i2", Name: "Duda", Phone: "4"},
	}

	result := Merge(existing, incoming)

	wantOrder := []string{"e1", "e2", "i1", "i2"}
	for i, id := range wantOrder {
		if result.Merged[i].ID != id {
			t.Fatalf("position %d: want %q, got %q", i, id, result.Merged[i].ID)
		}
	}

	// Appending to the result must not leak into the input slices.
	result.Merged[0].Name = "changed"
	if existing[0].Name != "Ana" {
		t.Fatalf("input slice was mutated")
	}
}

func TestMerge_EmptyInputs(t *testing.T) {
	t.Parallel()

	if result := Merge(nil, nil); len(result.Merged) != 0 {
		t.Fatalf("unexpected merged guests: %+v", result.Merged)
	}

	existing := []guest.Guest{{Name: "Ana", Phone: "1"}}
	result := Merge(existing, nil)
	if len(result.Merged) != 1 || len(result.Added) != 0 || len(result.Ignored) != 0 {
		t.Fatalf("unexpected result: %+v", result)
	}
}
