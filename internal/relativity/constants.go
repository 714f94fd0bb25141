package relativity

// Physical constants, SI units unless noted. Centralized here so every
// formula shares the same values.
const (
	G    = 6.67430e-11 // gravitational constant, m^3 kg^-1 s^-2
	C    = 299792458   // speed of light, m/s
	MSol = 1.98847e30  // solar mass, kg

	HBar   = 1.054571817e-34 // reduced Planck constant, J s
	KBoltz = 1.380649e-23    // Boltzmann constant, J/K

	EarthGravity = 9.81 // m/s^2

	AUKm        = 149597870.7 // astronomical unit, km
	LightYearKm = 9.461e12    // light-year, km
)
