package survey

import (
	"fmt"
	"math"

	"github.com/san-kum/gravwell/internal/relativity"
)

// HorizonProps bundles the closed-form properties of the event horizon:
// geometry, surface gravity, and Hawking temperature.
func HorizonProps(massSolar float64) (HorizonProperties, error) {
	if massSolar < 0 {
		return HorizonProperties{}, relativity.ErrNegativeMass
	}

	rsKm := relativity.SchwarzschildRadius(massSolar)
	rsM := rsKm * 1000
	massKg := massSolar * relativity.MSol

	area := 4 * math.Pi * rsM * rsM

	c := float64(relativity.C)
	surfaceGravity := c * c * c * c / (4 * relativity.G * massKg)
	temperature := (relativity.HBar * c * c * c) / (8 * math.Pi * relativity.G * massKg * relativity.KBoltz)

	return HorizonProperties{
		SchwarzschildRadiusKm:        rsKm,
		HorizonAreaKm2:               area / 1e6,
		HorizonCircumferenceKm:       2 * math.Pi * rsKm,
		SurfaceGravityMS2:            surfaceGravity,
		SurfaceGravityG:              surfaceGravity / relativity.EarthGravity,
		HawkingTemperatureK:          temperature,
		SchwarzschildRadiusFormatted: FormatDistance(rsKm),
		HawkingTemperatureFormatted:  fmt.Sprintf("%.2e K", temperature),
	}, nil
}

// CompareTimePassages relates observerTimeHours of far-away time to the
// proper time elapsed at radius rKm.
func CompareTimePassages(rKm, rsKm, observerTimeHours float64) TimeComparison {
	factor := relativity.TimeDilation(rKm, rsKm)

	localTime := 0.0
	timeRatio := math.Inf(1)
	localFormatted := "time stopped"
	if factor > 0 {
		localTime = observerTimeHours * factor
		timeRatio = 1 / factor
		localFormatted = FormatTime(localTime * 3600)
	}

	distanceRs := math.Inf(1)
	if rsKm > 0 {
		distanceRs = rKm / rsKm
	}

	return TimeComparison{
		DistanceKm:            rKm,
		DistanceRs:            distanceRs,
		TimeDilationFactor:    factor,
		ObserverTimeHours:     observerTimeHours,
		LocalTimeHours:        localTime,
		TimeRatio:             timeRatio,
		ObserverTimeFormatted: FormatTime(observerTimeHours * 3600),
		LocalTimeFormatted:    localFormatted,
	}
}

// TimeToCrossHorizon estimates the coordinate time in seconds for an
// infalling observer released at rKm to reach the horizon. Zero at or
// inside the horizon.
func TimeToCrossHorizon(rKm, rsKm float64) float64 {
	if rKm <= rsKm {
		return 0
	}
	return (math.Pi / 2) * (rKm * 1000 / relativity.C) * math.Sqrt(rKm/rsKm)
}
