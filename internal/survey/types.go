package survey

// OrbitSample describes one circular orbit around the black hole.
type OrbitSample struct {
	RadiusKm          float64
	RadiusRs          float64
	TimeDilation      float64
	OrbitalVelocityMS float64
	OrbitalVelocityC  float64
	OrbitalPeriodS    float64
	// PerceivedPeriodS is the period as seen by a distant observer,
	// +Inf at the horizon.
	PerceivedPeriodS float64

	OrbitalPeriodFormatted   string
	PerceivedPeriodFormatted string
}

// FallSample is one checkpoint of a radial infall trajectory.
type FallSample struct {
	Step           int
	RadiusKm       float64
	RadiusRs       float64
	TimeDilation   float64
	FallVelocityMS float64
	FallVelocityC  float64
}

// TimeComparison contrasts elapsed time for a distant observer with local
// proper time at a fixed radius.
type TimeComparison struct {
	DistanceKm         float64
	DistanceRs         float64
	TimeDilationFactor float64
	ObserverTimeHours  float64
	LocalTimeHours     float64
	// TimeRatio is how many observer hours pass per local hour,
	// +Inf at the horizon.
	TimeRatio float64

	ObserverTimeFormatted string
	LocalTimeFormatted    string
}

// HorizonProperties summarizes the event horizon of a black hole.
type HorizonProperties struct {
	SchwarzschildRadiusKm  float64
	HorizonAreaKm2         float64
	HorizonCircumferenceKm float64
	SurfaceGravityMS2      float64
	SurfaceGravityG        float64
	HawkingTemperatureK    float64

	SchwarzschildRadiusFormatted string
	HawkingTemperatureFormatted  string
}
