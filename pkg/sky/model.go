package sky

import (
	"fmt"
	"strings"
)

// Kind names a sky model.
type Kind string

// Available models.
const (
	KindOrbital    Kind = "orbital"
	KindSolarLunar Kind = "solar-lunar"
	KindEphemeris  Kind = "ephemeris"
)

// Kinds lists every model in a stable order.
var Kinds = []Kind{KindOrbital, KindSolarLunar, KindEphemeris}

// ParseKind resolves a model name, case-insensitively.
func ParseKind(s string) (Kind, error) {
	k := Kind(strings.ToLower(strings.TrimSpace(s)))
	for _, known := range Kinds {
		if k == known {
			return k, nil
		}
	}
	return "", fmt.Errorf("%w: %q", ErrUnknownModel, s)
}

// Model is one strategy for placing the sun and moon.
type Model interface {
	Kind() Kind
	Sun(c Clock, obs Observer) Result
	// Moon returns false when the model has no moon.
	Moon(c Clock, obs Observer) (Result, bool)
}

// OrbitalModel reads Clock.Days. The sun and an optional moon are two
// bodies on the same day count, each with its own orbit and bias.
type OrbitalModel struct {
	Orbit OrbitParams
	Bias  float64 // added to the day count

	MoonOrbit *OrbitParams // nil: no moon
	MoonBias  float64
}

// Kind implements Model.
func (OrbitalModel) Kind() Kind { return KindOrbital }

// Sun implements Model.
func (m OrbitalModel) Sun(c Clock, obs Observer) Result {
	return orbitalResult(c.Days, m.Bias, m.Orbit, obs)
}

// Moon implements Model. It reports false unless MoonOrbit is set.
func (m OrbitalModel) Moon(c Clock, obs Observer) (Result, bool) {
	if m.MoonOrbit == nil {
		return Result{}, false
	}
	return orbitalResult(c.Days, m.MoonBias, *m.MoonOrbit, obs), true
}

// SolarLunarModel reads Clock.Day and Clock.Hour.
type SolarLunarModel struct {
	Lunar LunarParams
}

// Kind implements Model.
func (SolarLunarModel) Kind() Kind { return KindSolarLunar }

// Sun implements Model.
func (m SolarLunarModel) Sun(c Clock, obs Observer) Result {
	return solarResult(c.Day, c.Hour, obs)
}

// Moon implements Model. The lunar orbit ignores the observer.
// A zero Lunar uses DefaultLunar.
func (m SolarLunarModel) Moon(c Clock, _ Observer) (Result, bool) {
	lunar := m.Lunar
	if lunar == (LunarParams{}) {
		lunar = DefaultLunar()
	}
	return lunar.result(c.Day, c.Hour), true
}

// ModelOptions carries per-model parameters for NewModel.
type ModelOptions struct {
	Orbit         OrbitParams
	Bias          float64
	MoonOrbit     *OrbitParams
	MoonBias      float64
	Lunar         LunarParams
	EphemerisYear int
}

// NewModel builds the model named by kind.
func NewModel(kind Kind, opts ModelOptions) (Model, error) {
	switch kind {
	case KindOrbital:
		return OrbitalModel{
			Orbit:     opts.Orbit,
			Bias:      opts.Bias,
			MoonOrbit: opts.MoonOrbit,
			MoonBias:  opts.MoonBias,
		}, nil
	case KindSolarLunar:
		return SolarLunarModel{Lunar: opts.Lunar}, nil
	case KindEphemeris:
		return EphemerisModel{Year: opts.EphemerisYear}, nil
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownModel, kind)
	}
}

// Calculator binds a model to an observer.
type Calculator struct {
	Model    Model
	Observer Observer
}

// NewCalculator validates the observer and returns a calculator.
func NewCalculator(m Model, obs Observer) (*Calculator, error) {
	if m == nil {
		return nil, fmt.Errorf("%w: nil model", ErrUnknownModel)
	}
	if err := obs.Validate(); err != nil {
		return nil, fmt.Errorf("invalid observer: %w", err)
	}
	return &Calculator{Model: m, Observer: obs}, nil
}

// Sun returns the sun direction at c.
func (c *Calculator) Sun(clk Clock) Result {
	return c.Model.Sun(clk, c.Observer)
}

// Moon returns the moon direction at c, if the model has one.
func (c *Calculator) Moon(clk Clock) (Result, bool) {
	return c.Model.Moon(clk, c.Observer)
}
