package geodex

// UnitSystem selects the distance unit, and with it the sphere radius, used
// by an Engine.
type UnitSystem string

// Unit system constants.
const (
	Miles      UnitSystem = "miles"
	Kilometers UnitSystem = "kilometers"
)

// Mean sphere radius per unit system.
const (
	EarthRadiusMiles      = 3958.756
	EarthRadiusKilometers = 6371.0
)

// IsValid checks if the unit system is one of the supported values.
func (u UnitSystem) IsValid() bool {
	return u == Miles || u == Kilometers
}

// EarthRadius returns the sphere radius in the system's unit.
func (u UnitSystem) EarthRadius() float64 {
	if u == Kilometers {
		return EarthRadiusKilometers
	}
	return EarthRadiusMiles
}

// ParseUnitSystem maps a free-form unit indicator to a UnitSystem:
// Kilometers when the indicator starts with 'K' or 'k', Miles otherwise,
// including for the empty string.
func ParseUnitSystem(indicator string) UnitSystem {
	if len(indicator) > 0 && (indicator[0] == 'k' || indicator[0] == 'K') {
		return Kilometers
	}
	return Miles
}
