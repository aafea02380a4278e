// Package fleet holds the physical resources orders are routed to: warehouses and
// delivery drivers. Both are reference data records owned by fleet management
// systems; this module reads them to make routing decisions and never mutates them.
package fleet

// Warehouse describes a fulfillment facility and the industry verticals it can
// serve. Capabilities use the industry category strings (ecommerce, retail,
// food_delivery, manufacturing, 3pl).
type Warehouse struct {
	ID                    string
	Name                  string
	City                  string
	State                 string
	Capabilities          []string
	OperatingHours        string
	TemperatureControlled bool
}

// HasCapability reports whether the warehouse serves the given vertical.
func (w Warehouse) HasCapability(capability string) bool {
	for _, c := range w.Capabilities {
		if c == capability {
			return true
		}
	}
	return false
}

// Driver describes a delivery driver, their vehicle, qualifications, and current
// workload.
type Driver struct {
	ID              string
	Name            string
	VehicleType     string
	Certifications  []string
	Specializations []string
	CurrentLoad     int
	MaxLoad         int
	Rating          float64
}

// HasCertification reports whether the driver holds the given certification.
func (d Driver) HasCertification(certification string) bool {
	for _, c := range d.Certifications {
		if c == certification {
			return true
		}
	}
	return false
}

// HasSpecialization reports whether the driver specializes in the given vertical.
func (d Driver) HasSpecialization(specialization string) bool {
	for _, s := range d.Specializations {
		if s == specialization {
			return true
		}
	}
	return false
}
