package routes

import "strings"

// NormalizeKey lowercases a place name, collapses whitespace runs into a
// single hyphen and strips everything that is not a lowercase letter or a
// hyphen, so "Colombo  Airport" and "colombo airport!" key identically.
func NormalizeKey(name string) string {
	name = strings.ToLower(strings.TrimSpace(name))
	parts := strings.Fields(name)
	joined := strings.Join(parts, "-")

	var b strings.Builder
	b.Grow(len(joined))
	for _, r := range joined {
		if (r >= 'a' && r <= 'z') || r == '-' {
			b.WriteRune(r)
		}
	}
	return b.String()
}

// Estimate returns the advisory distance in km between pickup and dropoff.
// 0 means unknown, never negative. The table is logically undirected: both
// key directions are tried, then a two-hop composition through each hub in
// order. Empty input short-circuits to 0.
func Estimate(pickup, dropoff string) int {
	if strings.TrimSpace(pickup) == "" || strings.TrimSpace(dropoff) == "" {
		return 0
	}

	from := NormalizeKey(pickup)
	to := NormalizeKey(dropoff)
	if from == "" || to == "" {
		return 0
	}

	if km, ok := lookup(from, to); ok {
		return km
	}

	for _, hub := range hubs {
		if hub == from || hub == to {
			continue
		}
		first, ok := lookup(from, hub)
		if !ok {
			continue
		}
		second, ok := lookup(hub, to)
		if !ok {
			continue
		}
		return first + second
	}

	return 0
}

func lookup(from, to string) (int, bool) {
	if km, ok := routeTable[from+"-"+to]; ok {
		return km, true
	}
	if km, ok := routeTable[to+"-"+from]; ok {
		return km, true
	}
	return 0, false
}
