package appointment

import "testing"

func TestIsValid(t *testing.T) {
	valid := []Status{
		StatusScheduled, StatusConfirmed, StatusInProgress,
		StatusCompleted, StatusCancelled, StatusNoShow,
	}
	for _, s := range valid {
		if !IsValid(s) {
			t.Errorf("expected %q to be valid", s)
		}
	}

	invalid := []Status{"", "pendente", "AGENDADO", "done"}
	for _, s := range invalid {
		if IsValid(s) {
			t.Errorf("expected %q to be invalid", s)
		}
	}
}

func TestIsTerminal(t *testing.T) {
	cases := map[Status]bool{
		StatusScheduled:  false,
		StatusConfirmed:  false,
		StatusInProgress: false,
		StatusCompleted:  true,
		StatusCancelled:  true,
		StatusNoShow:     true,
	}
	for s, want := range cases {
		if got := IsTerminal(s); got != want {
			t.Errorf("IsTerminal(%q) = %v, want %v", s, got, want)
		}
	}
}

func TestBlocksSlot(t *testing.T) {
	// Só o cancelamento libera o horário; no-show e concluído ainda ocupam.
	cases := map[Status]bool{
		StatusScheduled:  true,
		StatusConfirmed:  true,
		StatusInProgress: true,
		StatusCompleted:  true,
		StatusNoShow:     true,
		StatusCancelled:  false,
	}
	for s, want := range cases {
		if got := BlocksSlot(s); got != want {
			t.Errorf("BlocksSlot(%q) = %v, want %v", s, got, want)
		}
	}
}

func TestLoyaltyPoints(t *testing.T) {
	cases := []struct {
		value float64
		want  int
	}{
		{85.00, 8},
		{10.00, 1},
		{9.99, 0},
		{100.00, 10},
		{199.90, 19},
		{0, 0},
		{-50, 0},
	}
	for _, tc := range cases {
		if got := LoyaltyPoints(tc.value); got != tc.want {
			t.Errorf("LoyaltyPoints(%v) = %d, want %d", tc.value, got, tc.want)
		}
	}
}

func TestShouldAwardPoints(t *testing.T) {
	cases := []struct {
		previous Status
		next     Status
		want     bool
	}{
		{StatusScheduled, StatusCompleted, true},
		{StatusConfirmed, StatusCompleted, true},
		{StatusInProgress, StatusCompleted, true},
		{StatusCancelled, StatusCompleted, true},
		// Re-salvar um agendamento já concluído não pontua de novo.
		{StatusCompleted, StatusCompleted, false},
		{StatusScheduled, StatusCancelled, false},
		{StatusScheduled, StatusConfirmed, false},
		{StatusCompleted, StatusCancelled, false},
	}
	for _, tc := range cases {
		if got := ShouldAwardPoints(tc.previous, tc.next); got != tc.want {
			t.Errorf("ShouldAwardPoints(%q, %q) = %v, want %v", tc.previous, tc.next, got, tc.want)
		}
	}
}
