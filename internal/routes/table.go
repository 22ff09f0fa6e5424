package routes

// Advisory distances in kilometers between well-known pickup points.
// Keys are NormalizeKey(origin) + "-" + NormalizeKey(destination); lookups
// tolerate either direction, so each pair is stored once.
//
// These figures are shown to the customer as an estimate only. The final
// distance (and price) is confirmed by staff before the contract is issued,
// so the table does not need to be exhaustive, just to cover the routes we
// actually get asked about.
var routeTable = map[string]int{
	// Colombo metro
	"colombo-malabe":          15,
	"colombo-negombo":         37,
	"colombo-mount-lavinia":   12,
	"colombo-moratuwa":        20,
	"colombo-kaduwela":        17,
	"colombo-airport":         35,
	"colombo-katunayake":      33,
	"malabe-kaduwela":         5,
	"colombo-airport-malabe":  42,
	"colombo-airport-negombo": 12,

	// Up-country
	"colombo-kandy":        115,
	"kandy-nuwara-eliya":   77,
	"kandy-matale":         26,
	"kandy-peradeniya":     6,
	"colombo-nuwara-eliya": 170,

	// Southern coast
	"colombo-galle":    119,
	"galle-matara":     45,
	"galle-hikkaduwa":  19,
	"galle-unawatuna":  6,
	"colombo-bentota":  65,
	"colombo-kalutara": 43,

	// Longer hauls
	"colombo-jaffna":       398,
	"colombo-trincomalee":  257,
	"colombo-anuradhapura": 200,
	"colombo-batticaloa":   303,
	"kandy-dambulla":       72,
	"kandy-sigiriya":       90,
	"galle-tangalle":       75,
}

// hubs are tried in order when no direct route exists; the first hub that
// completes both legs wins, even if a later hub would give a shorter total.
var hubs = []string{"colombo", "kandy", "galle"}

// Table returns a copy of the route table; callers must not rely on
// iteration order.
func Table() map[string]int {
	out := make(map[string]int, len(routeTable))
	for k, v := range routeTable {
		out[k] = v
	}
	return out
}
