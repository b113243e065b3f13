package guest

import (
	"reflect"
	"testing"
)

func TestFindDuplicates(t *testing.T) {
	t.Parallel()

	guests := []Guest{
		{Name: "Ana Souza", Phone: "11999990000"},
		{Name: "ana souza", Phone: "11988880000"},
		{Name: "Bea", Phone: "11977770000"},
		{Name: "Caio", Phone: "11966660000"},
		{Name: "CAIO", Phone: "11966660000"},
	}

	duplicates := FindDuplicates(guests)
	if len(duplicates) != 2 {
		t.Fatalf("want 2 duplicate groups, got %d: %+v", len(duplicates), duplicates)
	}

	ana := duplicates[0]
	if ana.Name != "Ana Souza" || ana.Count != 2 {
		t.Fatalf("unexpected first group: %+v", ana)
	}
	if !reflect.DeepEqual(ana.Phones, []string{"11999990000", "11988880000"}) {
		t.Fatalf("unexpected phones: %v", ana.Phones)
	}

	caio := duplicates[1]
	if caio.Name != "Caio" || caio.Count != 2 {
		t.Fatalf("unexpected second group: %+v", caio)
	}
	// Same phone twice collapses to one distinct value.
	if !reflect.DeepEqual(caio.Phones, []string{"11966660000"}) {
		t.Fatalf("unexpected phones: %v", caio.Phones)
	}
}

func TestFindDuplicatesIgnoresAccents(t *testing.T) {
	t.Parallel()

	guests := []Guest{
		{Name: "João", Phone: "11999990000"},
		{Name: "Joao", Phone: "11999990000"},
	}

	duplicates := FindDuplicates(guests)
	if len(duplicates) != 1 {
		t.Fatalf("want 1 duplicate group, got %d", len(duplicates))
	}
	if duplicates[0].Count != 2 {
		t.Fatalf("want count 2, got %d", duplicates[0].Count)
	}
}

func TestFindDuplicatesNoneForDistinctNames(t *testing.T) {
	t.Parallel()

	guests := []Guest{
		{Name: "Ana", Phone: "11999990000"},
		{Name: "Bea", Phone: "11988880000"},
		{Name: ""},
	}

	if duplicates := FindDuplicates(guests); len(duplicates) != 0 {
		t.Fatalf("expected no duplicates, got %+v", duplicates)
	}
}
