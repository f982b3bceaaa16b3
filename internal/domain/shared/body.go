package shared

import "fmt"

// Body represents a celestial body with a known surface gravity
type Body int

const (
	BodyEarth Body = iota
	BodyMoon
	BodyMars
)

type bodyConfig struct {
	Name    string
	Gravity float64 // m/s²
}

var bodyConfigs = map[Body]bodyConfig{
	BodyEarth: {"earth", 9.807},
	BodyMoon:  {"moon", 1.62},
	BodyMars:  {"mars", 3.711},
}

// Name returns the body identifier
func (b Body) Name() string {
	if config, ok := bodyConfigs[b]; ok {
		return config.Name
	}
	return "UNKNOWN"
}

// Gravity returns the surface gravity in m/s².
// Returns ok=false for values outside the known table.
func (b Body) Gravity() (float64, bool) {
	config, ok := bodyConfigs[b]
	return config.Gravity, ok
}

// IsKnown checks if the body belongs to the gravity table
func (b Body) IsKnown() bool {
	_, ok := bodyConfigs[b]
	return ok
}

func (b Body) String() string {
	return b.Name()
}

// AllBodies returns every known body in declaration order
func AllBodies() []Body {
	return []Body{BodyEarth, BodyMoon, BodyMars}
}

// IsValidBodyName checks if a body name string is valid
func IsValidBodyName(name string) bool {
	for _, config := range bodyConfigs {
		if config.Name == name {
			return true
		}
	}
	return false
}

// ParseBody parses a body name string into a Body
func ParseBody(name string) (Body, error) {
	for body, config := range bodyConfigs {
		if config.Name == name {
			return body, nil
		}
	}
	return BodyEarth, fmt.Errorf("unknown celestial body: %s", name)
}
