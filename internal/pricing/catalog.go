package pricing

// ServiceType identifies one bookable transport category.
type ServiceType string

const (
	ServiceWedding ServiceType = "wedding"
	ServiceAirport ServiceType = "airport"
	ServiceCargo   ServiceType = "cargo"
	ServiceDaily   ServiceType = "daily"
)

// VehicleOption is one selectable vehicle type under a service. Adjustment
// is an additive delta on the base price shown in the rate card; it may be
// zero or negative.
type VehicleOption struct {
	Value      string `json:"value"`
	Label      string `json:"label"`
	Adjustment int64  `json:"adjustment"`
}

// ServiceDefinition describes one catalog entry. Rate card entries are what
// the customer sees next to the vehicle picker; the computed total follows
// the rules in CalculatePrice, which for flat-price services ignores the
// vehicle choice entirely.
type ServiceDefinition struct {
	ID        ServiceType     `json:"id"`
	Name      string          `json:"name"`
	BasePrice int64           `json:"basePrice"`
	PerKm     bool            `json:"perKm"`
	Vehicles  []VehicleOption `json:"vehicles"`
}

// Per-km rates for the daily hire service, keyed by vehicle value.
var dailyRates = map[string]int64{
	"bike":    50,
	"economy": 90,
	"comfort": 120,
	"luxury":  150,
	"van":     120,
}

const (
	defaultDailyRate = 90
	cargoRatePerKm   = 120
)

var catalog = map[ServiceType]ServiceDefinition{
	ServiceWedding: {
		ID:        ServiceWedding,
		Name:      "Wedding Hire",
		BasePrice: 25000,
		Vehicles: []VehicleOption{
			{Value: "standard", Label: "Standard Car", Adjustment: 0},
			{Value: "luxury", Label: "Luxury Car", Adjustment: 10000},
			// Premium package is discounted against the decorated rate;
			// the computed total stays flat regardless (see CalculatePrice).
			{Value: "premium", Label: "Premium Package", Adjustment: -5000},
		},
	},
	ServiceAirport: {
		ID:        ServiceAirport,
		Name:      "Airport Transfer",
		BasePrice: 2000,
		Vehicles: []VehicleOption{
			{Value: "economy", Label: "Economy Car", Adjustment: 0},
			{Value: "van", Label: "KDH Van", Adjustment: 1500},
		},
	},
	ServiceCargo: {
		ID:        ServiceCargo,
		Name:      "Cargo Transport",
		BasePrice: 0,
		PerKm:     true,
		Vehicles: []VehicleOption{
			{Value: "lorry", Label: "Lorry", Adjustment: 0},
			{Value: "truck", Label: "Truck", Adjustment: 0},
		},
	},
	ServiceDaily: {
		ID:        ServiceDaily,
		Name:      "Daily Hire",
		BasePrice: 0,
		PerKm:     true,
		Vehicles: []VehicleOption{
			{Value: "bike", Label: "Bike", Adjustment: 0},
			{Value: "economy", Label: "Economy Car", Adjustment: 0},
			{Value: "comfort", Label: "Comfort Car", Adjustment: 0},
			{Value: "luxury", Label: "Luxury Car", Adjustment: 0},
			{Value: "van", Label: "Van", Adjustment: 0},
		},
	},
}

// Service returns the catalog entry for id.
func Service(id ServiceType) (ServiceDefinition, bool) {
	def, ok := catalog[id]
	return def, ok
}

// Services lists the catalog in a stable order for the booking form.
func Services() []ServiceDefinition {
	order := []ServiceType{ServiceWedding, ServiceAirport, ServiceCargo, ServiceDaily}
	out := make([]ServiceDefinition, 0, len(order))
	for _, id := range order {
		out = append(out, catalog[id])
	}
	return out
}
