package pricing

import "testing"

func TestCalculatePriceWeddingIsFlat(t *testing.T) {
	for _, distance := range []int{0, 1, 10, 500} {
		for _, vehicle := range []string{"", "standard", "luxury", "premium", "nonsense"} {
			if got := CalculatePrice(ServiceWedding, distance, vehicle); got != 25000 {
				t.Fatalf("wedding distance=%d vehicle=%q = %d, want 25000", distance, vehicle, got)
			}
		}
	}
}

func TestCalculatePriceAirportIsFlat(t *testing.T) {
	for _, distance := range []int{0, 35, 400} {
		if got := CalculatePrice(ServiceAirport, distance, "van"); got != 2000 {
			t.Fatalf("airport distance=%d = %d, want 2000", distance, got)
		}
	}
}

func TestCalculatePriceCargo(t *testing.T) {
	if got := CalculatePrice(ServiceCargo, 10, "lorry"); got != 1200 {
		t.Fatalf("cargo 10km = %d, want 1200", got)
	}
	// vehicle choice never changes the cargo rate
	if got := CalculatePrice(ServiceCargo, 10, "truck"); got != 1200 {
		t.Fatalf("cargo 10km truck = %d, want 1200", got)
	}
	if got := CalculatePrice(ServiceCargo, 0, "lorry"); got != 0 {
		t.Fatalf("cargo 0km = %d, want 0", got)
	}
}

func TestCalculatePriceDaily(t *testing.T) {
	cases := []struct {
		vehicle string
		want    int64
	}{
		{"bike", 500},
		{"economy", 900},
		{"comfort", 1200},
		{"luxury", 1500},
		{"van", 1200},
		{"unknownType", 900}, // default rate 90
		{"", 900},
	}
	for _, tc := range cases {
		if got := CalculatePrice(ServiceDaily, 10, tc.vehicle); got != tc.want {
			t.Errorf("daily 10km %q = %d, want %d", tc.vehicle, got, tc.want)
		}
	}
}

func TestCalculatePriceIncompleteInput(t *testing.T) {
	if got := CalculatePrice("", 100, "luxury"); got != 0 {
		t.Fatalf("unset service = %d, want 0", got)
	}
	if got := CalculatePrice("submarine", 100, "luxury"); got != 0 {
		t.Fatalf("unknown service = %d, want 0", got)
	}
	if got := CalculatePrice(ServiceDaily, 0, "luxury"); got != 0 {
		t.Fatalf("daily 0km = %d, want 0", got)
	}
	if got := CalculatePrice(ServiceDaily, -5, "luxury"); got != 0 {
		t.Fatalf("daily negative km = %d, want 0", got)
	}
}

func TestCatalogListsAllServicesInOrder(t *testing.T) {
	defs := Services()
	if len(defs) != 4 {
		t.Fatalf("catalog has %d services, want 4", len(defs))
	}
	wantOrder := []ServiceType{ServiceWedding, ServiceAirport, ServiceCargo, ServiceDaily}
	for i, id := range wantOrder {
		if defs[i].ID != id {
			t.Fatalf("catalog[%d] = %s, want %s", i, defs[i].ID, id)
		}
		if len(defs[i].Vehicles) == 0 {
			t.Fatalf("service %s has no vehicle options", id)
		}
	}
}

func TestDailyRateDefault(t *testing.T) {
	if got := DailyRate("hovercraft"); got != 90 {
		t.Fatalf("default daily rate = %d, want 90", got)
	}
	if got := DailyRate("luxury"); got != 150 {
		t.Fatalf("luxury daily rate = %d, want 150", got)
	}
}
