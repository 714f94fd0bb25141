package relativity

import "math"

// SchwarzschildRadius returns the event-horizon radius in km for a
// non-rotating black hole of the given mass in solar masses.
// rs = 2GM/c^2. Zero mass gives zero radius; negative mass is the
// caller's problem.
func SchwarzschildRadius(massSolar float64) float64 {
	massKg := massSolar * MSol
	rsM := 2 * G * massKg / (C * C)
	return rsM / 1000
}

// TimeDilation returns sqrt(1 - rs/r), the ratio of proper time at radius
// rKm to coordinate time for a distant observer. At or inside the horizon
// the factor is clamped to exactly 0.
func TimeDilation(rKm, rsKm float64) float64 {
	if rKm <= rsKm {
		return 0
	}
	return math.Sqrt(1 - rsKm/rKm)
}

// EscapeVelocity returns sqrt(2GM/r) in m/s at radius rKm.
func EscapeVelocity(rKm, massSolar float64) (float64, error) {
	if rKm <= 0 {
		return 0, ErrNonPositiveRadius
	}
	if massSolar < 0 {
		return 0, ErrNegativeMass
	}
	massKg := massSolar * MSol
	rM := rKm * 1000
	return math.Sqrt(2 * G * massKg / rM), nil
}

// OrbitalVelocity returns the circular orbital speed sqrt(GM/r) in m/s.
func OrbitalVelocity(rKm, massSolar float64) (float64, error) {
	if rKm <= 0 {
		return 0, ErrNonPositiveRadius
	}
	if massSolar < 0 {
		return 0, ErrNegativeMass
	}
	massKg := massSolar * MSol
	rM := rKm * 1000
	return math.Sqrt(G * massKg / rM), nil
}

// OrbitalPeriod returns the Keplerian period 2*pi*sqrt(r^3/GM) in seconds.
func OrbitalPeriod(rKm, massSolar float64) (float64, error) {
	if rKm <= 0 {
		return 0, ErrNonPositiveRadius
	}
	if massSolar < 0 {
		return 0, ErrNegativeMass
	}
	massKg := massSolar * MSol
	rM := rKm * 1000
	return 2 * math.Pi * math.Sqrt(rM*rM*rM/(G*massKg)), nil
}

// GravitationalRedshift returns z = 1/sqrt(1 - rs/r) - 1 for light emitted
// at radius rKm. At or inside the horizon the redshift diverges and +Inf
// is returned.
func GravitationalRedshift(rKm, rsKm float64) float64 {
	if rKm <= rsKm {
		return math.Inf(1)
	}
	return 1/math.Sqrt(1-rsKm/rKm) - 1
}

// TidalForce returns the differential acceleration 2GMh/r^3 in m/s^2
// across an object of height objectSizeM at radius rKm.
func TidalForce(rKm, massSolar, objectSizeM float64) (float64, error) {
	if rKm <= 0 {
		return 0, ErrNonPositiveRadius
	}
	if massSolar < 0 {
		return 0, ErrNegativeMass
	}
	massKg := massSolar * MSol
	rM := rKm * 1000
	return 2 * G * massKg * objectSizeM / (rM * rM * rM), nil
}

// PhotonSphereRadius returns the radius in km at which light can orbit,
// 1.5 times the Schwarzschild radius.
func PhotonSphereRadius(massSolar float64) float64 {
	return 1.5 * SchwarzschildRadius(massSolar)
}

// InnermostStableOrbit returns the ISCO radius in km for a massive test
// particle, 3 times the Schwarzschild radius.
func InnermostStableOrbit(massSolar float64) float64 {
	return 3 * SchwarzschildRadius(massSolar)
}
