package textutil

import "testing"

func TestFold(t *testing.T) {
	t.Parallel()

	cases := []struct {
		input string
		want  string
	}{
		{"Família", "familia"},
		{"  Não Comparecerá  ", "nao comparecera"},
		{"SÁBADO", "sabado"},
		{"faixa etária", "faixa etaria"},
		{"", ""},
		{"abc123", "abc123"},
	}

	for _, tc := range cases {
		t.Run(tc.input, func(t *testing.T) {
			if got := Fold(tc.input); got != tc.want {
				t.Fatalf("Fold(%q) = %q, want %q", tc.input, got, tc.want)
			}
		})
	}
}

func TestAlphanumeric(t *testing.T) {
	t.Parallel()

	if got := Alphanumeric("nome dos convidados *"); got != "nomedosconvidados" {
		t.Fatalf("unexpected result: %q", got)
	}
	if got := Alphanumeric("ddd-2"); got != "ddd2" {
		t.Fatalf("unexpected result: %q", got)
	}
}

func TestDigits(t *testing.T) {
	t.Parallel()

	if got := Digits("+55 (11) 99999-0000"); got != "5511999990000" {
		t.Fatalf("unexpected result: %q", got)
	}
	if got := Digits("sem telefone"); got != "" {
		t.Fatalf("unexpected result: %q", got)
	}
}
