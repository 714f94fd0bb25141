package survey

import (
	"math"

	"github.com/san-kum/gravwell/internal/relativity"
)

// OrbitData sweeps numOrbits circular orbits from 1.5 Rs out to 10 Rs,
// evaluating velocity, period, and time dilation at each radius. Radii are
// ascending; both endpoints are included.
func OrbitData(massSolar float64, numOrbits int) ([]OrbitSample, error) {
	rs := relativity.SchwarzschildRadius(massSolar)

	radii := Linspace(1.5*rs, 10*rs, numOrbits)
	orbits := make([]OrbitSample, 0, len(radii))

	for _, r := range radii {
		factor := relativity.TimeDilation(r, rs)

		v, err := relativity.OrbitalVelocity(r, massSolar)
		if err != nil {
			return nil, err
		}
		period := 2 * math.Pi * r * 1000 / v

		perceived := math.Inf(1)
		perceivedStr := "infinite"
		if factor > 0 {
			perceived = period / factor
			perceivedStr = FormatTime(perceived)
		}

		orbits = append(orbits, OrbitSample{
			RadiusKm:                 r,
			RadiusRs:                 r / rs,
			TimeDilation:             factor,
			OrbitalVelocityMS:        v,
			OrbitalVelocityC:         v / relativity.C,
			OrbitalPeriodS:           period,
			PerceivedPeriodS:         perceived,
			OrbitalPeriodFormatted:   FormatTime(period),
			PerceivedPeriodFormatted: perceivedStr,
		})
	}

	return orbits, nil
}

// FallingTrajectory samples a radial plunge from initialRKm down to just
// above the horizon (1.01 Rs). Above the horizon the fall speed follows
// sqrt(2*G*MSol*(1/rs - 1/r)/1000); the expression keeps the reference
// implementation's unit treatment and is a display approximation, not an
// integrated geodesic. At or below the horizon the speed is clamped to c.
// Starting at or inside the horizon yields an empty trajectory.
func FallingTrajectory(initialRKm, rsKm float64, numPoints int) []FallSample {
	if initialRKm <= rsKm {
		return []FallSample{}
	}

	radii := Linspace(initialRKm, 1.01*rsKm, numPoints)
	trajectory := make([]FallSample, 0, len(radii))

	for i, r := range radii {
		factor := relativity.TimeDilation(r, rsKm)

		var vFall float64
		if r > rsKm {
			vFall = math.Sqrt(2 * relativity.G * relativity.MSol * (1/rsKm - 1/r) / 1000)
		} else {
			vFall = relativity.C
		}

		trajectory = append(trajectory, FallSample{
			Step:           i,
			RadiusKm:       r,
			RadiusRs:       r / rsKm,
			TimeDilation:   factor,
			FallVelocityMS: vFall,
			FallVelocityC:  vFall / relativity.C,
		})
	}

	return trajectory
}

// SpaghettificationDistance inverts the tidal-force formula to find the
// radius in km at which tidal acceleration on an object of the given
// height reaches the lethal threshold of 10 g.
func SpaghettificationDistance(massSolar, objectHeightM float64) float64 {
	massKg := massSolar * relativity.MSol
	lethal := 10 * relativity.EarthGravity

	rM := math.Cbrt(2 * relativity.G * massKg * objectHeightM / lethal)
	return rM / 1000
}

// SafeDistance returns a rule-of-thumb minimum approach radius in km,
// safetyFactor Schwarzschild radii out.
func SafeDistance(massSolar, safetyFactor float64) float64 {
	return relativity.SchwarzschildRadius(massSolar) * safetyFactor
}
