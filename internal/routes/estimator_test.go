package routes

import (
	"strings"
	"testing"
)

func TestEstimateDirectAndReversed(t *testing.T) {
	if got := Estimate("Colombo", "Kandy"); got != 115 {
		t.Fatalf("Colombo->Kandy = %d, want 115", got)
	}
	if got := Estimate("Kandy", "Colombo"); got != 115 {
		t.Fatalf("Kandy->Colombo = %d, want 115", got)
	}
	if got := Estimate("Colombo Airport", "Malabe"); got != 42 {
		t.Fatalf("Colombo Airport->Malabe = %d, want 42", got)
	}
}

func TestEstimateSymmetryOverWholeTable(t *testing.T) {
	// Every stored pair must estimate the same in both directions. Keys
	// concatenate normalized names with a hyphen, so any hyphen split of a
	// key rebuilds the same key on lookup.
	for key, km := range Table() {
		for i := 0; i < len(key); i++ {
			if key[i] != '-' {
				continue
			}
			from, to := key[:i], key[i+1:]
			if from == "" || to == "" {
				continue
			}
			fwd := Estimate(from, to)
			rev := Estimate(to, from)
			if fwd != rev {
				t.Fatalf("asymmetric estimate for %q split (%q,%q): %d vs %d", key, from, to, fwd, rev)
			}
			if fwd != km {
				t.Fatalf("estimate for %q = %d, want %d", key, fwd, km)
			}
		}
	}
}

func TestEstimateEmptyInput(t *testing.T) {
	if got := Estimate("", "anything"); got != 0 {
		t.Fatalf("empty pickup = %d, want 0", got)
	}
	if got := Estimate("anything", ""); got != 0 {
		t.Fatalf("empty dropoff = %d, want 0", got)
	}
	if got := Estimate("   ", "Kandy"); got != 0 {
		t.Fatalf("blank pickup = %d, want 0", got)
	}
	if got := Estimate("123!", "456?"); got != 0 {
		t.Fatalf("non-letter input = %d, want 0", got)
	}
}

func TestEstimateUnknownRoute(t *testing.T) {
	if got := Estimate("Atlantis", "El Dorado"); got != 0 {
		t.Fatalf("unknown route = %d, want 0", got)
	}
}

func TestEstimateTwoHopViaHub(t *testing.T) {
	// malabe-galle is not stored; colombo is the first hub completing both
	// legs: colombo-malabe (15) + colombo-galle (119).
	if got := Estimate("Malabe", "Galle"); got != 134 {
		t.Fatalf("Malabe->Galle via hub = %d, want 134", got)
	}
	if got := Estimate("Galle", "Malabe"); got != 134 {
		t.Fatalf("Galle->Malabe via hub = %d, want 134", got)
	}
	// hikkaduwa-matara only works through galle (19 + 45); colombo and
	// kandy cannot complete both legs and are skipped over.
	if got := Estimate("Hikkaduwa", "Matara"); got != 64 {
		t.Fatalf("Hikkaduwa->Matara via hub = %d, want 64", got)
	}
}

func TestEstimateFirstHubWins(t *testing.T) {
	// nuwara-eliya <-> malabe: colombo is the first hub in order and
	// completes both legs (colombo-nuwara-eliya 170 + colombo-malabe 15);
	// the search stops there rather than comparing against later hubs.
	if got := Estimate("Nuwara Eliya", "Malabe"); got != 185 {
		t.Fatalf("Nuwara Eliya->Malabe = %d, want 185 (first hub, no minimization)", got)
	}
}

func TestNormalizeKey(t *testing.T) {
	cases := []struct {
		in, want string
	}{
		{"Colombo", "colombo"},
		{"Colombo  Airport", "colombo-airport"},
		{"  Nuwara   Eliya ", "nuwara-eliya"},
		{"Galle!", "galle"},
		{"K4ndy", "kndy"},
		{"", ""},
	}
	for _, tc := range cases {
		if got := NormalizeKey(tc.in); got != tc.want {
			t.Errorf("NormalizeKey(%q) = %q, want %q", tc.in, got, tc.want)
		}
	}
}

func TestTableKeysAreNormalized(t *testing.T) {
	for key := range Table() {
		if NormalizeKey(key) != key {
			t.Errorf("table key %q is not in normalized form", key)
		}
		if strings.Contains(key, " ") {
			t.Errorf("table key %q contains a space", key)
		}
	}
}
