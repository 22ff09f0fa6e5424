package pricing

// CalculatePrice derives the advisory total in LKR for a booking draft.
// Wedding and airport hires are flat: the base price regardless of distance
// or vehicle choice (the wedding rate card shows per-vehicle adjustments,
// but the total has always been flat; the card is display-only). Cargo is
// billed per km at a single rate, daily hire per km at the vehicle's rate
// with 90/km when the vehicle is unset or unrecognized.
//
// Incomplete input never errors: an unset service type yields 0, and a
// per-km service with no positive distance yields 0.
func CalculatePrice(serviceType ServiceType, distanceKm int, vehicleType string) int64 {
	if serviceType == "" {
		return 0
	}
	def, ok := catalog[serviceType]
	if !ok {
		return 0
	}

	switch serviceType {
	case ServiceWedding, ServiceAirport:
		return def.BasePrice
	case ServiceCargo:
		if distanceKm <= 0 {
			return 0
		}
		return int64(distanceKm) * cargoRatePerKm
	case ServiceDaily:
		if distanceKm <= 0 {
			return 0
		}
		return int64(distanceKm) * DailyRate(vehicleType)
	default:
		return def.BasePrice
	}
}

// DailyRate returns the per-km rate for a daily-hire vehicle type.
func DailyRate(vehicleType string) int64 {
	if rate, ok := dailyRates[vehicleType]; ok {
		return rate
	}
	return defaultDailyRate
}
