package viz

import (
	"fmt"
	"strings"

	"github.com/san-kum/gravwell/internal/config"
	"github.com/san-kum/gravwell/internal/relativity"
	"github.com/san-kum/gravwell/internal/survey"
)

func header(title string) string {
	line := strings.Repeat("=", 70)
	return fmt.Sprintf("%s\n %s\n%s\n", line, titleStyle.Render(title), line)
}

// BasicReport summarizes the characteristic radii and escape velocities of
// a few representative black holes.
func BasicReport() string {
	var b strings.Builder
	b.WriteString(header("BASIC PHYSICS"))

	entries := []struct {
		mass float64
		desc string
	}{
		{3, "Minimal stellar black hole"},
		{10, "Typical stellar black hole"},
		{50, "Massive stellar black hole"},
		{4.3e6, "Sagittarius A* (galactic center)"},
	}

	for _, e := range entries {
		fmt.Fprintf(&b, "\n%s (%g solar masses)\n", accentStyle.Render(e.desc), e.mass)
		b.WriteString(strings.Repeat("-", 50) + "\n")

		rs := relativity.SchwarzschildRadius(e.mass)
		fmt.Fprintf(&b, "  Schwarzschild radius  %s\n", survey.FormatDistance(rs))
		fmt.Fprintf(&b, "  Photon sphere         %s\n", survey.FormatDistance(relativity.PhotonSphereRadius(e.mass)))
		fmt.Fprintf(&b, "  Innermost stable orbit %s\n", survey.FormatDistance(relativity.InnermostStableOrbit(e.mass)))

		for _, factor := range []float64{1.5, 3, 10} {
			v, err := relativity.EscapeVelocity(factor*rs, e.mass)
			if err != nil {
				continue
			}
			fmt.Fprintf(&b, "  Escape velocity at %4.1f Rs  %.3fc\n", factor, v/relativity.C)
		}
	}

	return b.String()
}

// DilationReport tabulates time dilation at fixed checkpoints for the
// given mass, alongside what one hour and one year of far-away time feel
// like locally.
func DilationReport(massSolar float64, distancesRs []float64) string {
	rs := relativity.SchwarzschildRadius(massSolar)

	var b strings.Builder
	b.WriteString(header("TIME DILATION"))
	fmt.Fprintf(&b, "Black hole of %g solar masses (Rs = %s)\n\n", massSolar, survey.FormatDistance(rs))
	fmt.Fprintf(&b, "%-12s %-14s %-22s %-22s\n", "Distance", "Dilation", "1h far away", "1 year far away")
	b.WriteString(strings.Repeat("-", 70) + "\n")

	for _, dRs := range distancesRs {
		factor := relativity.TimeDilation(dRs*rs, rs)

		hourStr, yearStr := "time stopped", "time stopped"
		if factor > 0 {
			hourStr = survey.FormatTime(factor * 3600)
			yearStr = survey.FormatTime(factor * 365.25 * 24 * 3600)
		}
		fmt.Fprintf(&b, "%-12.3f %-14.6f %-22s %-22s\n", dRs, factor, hourStr, yearStr)
	}

	return b.String()
}

// OrbitReport tabulates circular orbits between 1.5 Rs and 10 Rs.
func OrbitReport(massSolar float64, numOrbits int) (string, error) {
	orbits, err := survey.OrbitData(massSolar, numOrbits)
	if err != nil {
		return "", err
	}

	var b strings.Builder
	b.WriteString(header("ORBITAL MECHANICS"))
	fmt.Fprintf(&b, "Orbits around a black hole of %g solar masses\n\n", massSolar)
	fmt.Fprintf(&b, "%-10s %-22s %-14s %-12s\n", "Radius", "Period", "Velocity", "Dilation")
	b.WriteString(strings.Repeat("-", 60) + "\n")

	for _, o := range orbits {
		fmt.Fprintf(&b, "%-10.1f %-22s %-14s %-12.4f\n",
			o.RadiusRs,
			o.OrbitalPeriodFormatted,
			fmt.Sprintf("%.3fc", o.OrbitalVelocityC),
			o.TimeDilation,
		)
	}

	return b.String(), nil
}

// ExtremeReport covers tidal forces and spaghettification distances for a
// range of masses.
func ExtremeReport(objectHeightM float64) string {
	var b strings.Builder
	b.WriteString(header("EXTREME GRAVITY"))

	for _, mass := range []float64{10, 100, 1000} {
		rs := relativity.SchwarzschildRadius(mass)
		spaghetti := survey.SpaghettificationDistance(mass, objectHeightM)

		fmt.Fprintf(&b, "\nBlack hole of %g solar masses\n", mass)
		fmt.Fprintf(&b, "  Schwarzschild radius        %s\n", survey.FormatDistance(rs))
		fmt.Fprintf(&b, "  Spaghettification distance  %s\n", survey.FormatDistance(spaghetti))
		fmt.Fprintf(&b, "  Spaghettification / Rs      %.2f\n", spaghetti/rs)

		for _, factor := range []float64{1.5, 3, 10} {
			tidal, err := relativity.TidalForce(factor*rs, mass, objectHeightM)
			if err != nil {
				continue
			}
			fmt.Fprintf(&b, "  Tidal force at %4.1f Rs      %.2e m/s^2 (%.1fg)\n",
				factor, tidal, tidal/relativity.EarthGravity)
		}
	}

	return b.String()
}

// RedshiftReport tabulates gravitational redshift at fixed checkpoints.
func RedshiftReport(massSolar float64) string {
	rs := relativity.SchwarzschildRadius(massSolar)

	var b strings.Builder
	b.WriteString(header("GRAVITATIONAL REDSHIFT"))
	fmt.Fprintf(&b, "Black hole of %g solar masses\n\n", massSolar)
	fmt.Fprintf(&b, "%-12s %-15s %-20s\n", "Distance", "Redshift z", "Wavelength factor")
	b.WriteString(strings.Repeat("-", 50) + "\n")

	for _, dRs := range []float64{1.1, 1.5, 2, 3, 5, 10, 100} {
		z := relativity.GravitationalRedshift(dRs*rs, rs)
		fmt.Fprintf(&b, "%-12.1f %-15.3f x %.3f\n", dRs, z, 1+z)
	}

	return b.String()
}

// CompareReport lists known black holes from the preset table with their
// characteristic radii.
func CompareReport() string {
	var b strings.Builder
	b.WriteString(header("KNOWN BLACK HOLES"))
	fmt.Fprintf(&b, "%-30s %-12s %-20s %-20s\n", "Name", "Mass (Msun)", "Rs", "Photon sphere")
	b.WriteString(strings.Repeat("-", 85) + "\n")

	for _, slug := range config.ListPresets() {
		p := config.Presets[slug]

		massStr := fmt.Sprintf("%.0f", p.MassSolar)
		if p.MassSolar >= 1e6 {
			massStr = fmt.Sprintf("%.1e", p.MassSolar)
		}

		fmt.Fprintf(&b, "%-30s %-12s %-20s %-20s\n",
			p.Name,
			massStr,
			survey.FormatDistance(relativity.SchwarzschildRadius(p.MassSolar)),
			survey.FormatDistance(relativity.PhotonSphereRadius(p.MassSolar)),
		)
	}

	return b.String()
}

// FallReport renders an infall trajectory as checkpoints from startRs
// down to just above the horizon.
func FallReport(massSolar, startRs float64, numPoints int) string {
	rs := relativity.SchwarzschildRadius(massSolar)
	traj := survey.FallingTrajectory(startRs*rs, rs, numPoints)

	var b strings.Builder
	b.WriteString(header("FALLING IN"))

	if len(traj) == 0 {
		b.WriteString(warnStyle.Render("starting point is at or inside the horizon") + "\n")
		return b.String()
	}

	fmt.Fprintf(&b, "Plunge from %.1f Rs into a black hole of %g solar masses\n\n", startRs, massSolar)
	fmt.Fprintf(&b, "%-12s %-14s %-14s %-12s\n", "Distance", "Dilation", "Fall speed", "Crossing in")
	b.WriteString(strings.Repeat("-", 55) + "\n")

	for _, p := range traj {
		fmt.Fprintf(&b, "%-12.2f %-14.6f %-14s %-12s\n",
			p.RadiusRs,
			p.TimeDilation,
			fmt.Sprintf("%.3fc", p.FallVelocityC),
			survey.FormatTime(survey.TimeToCrossHorizon(p.RadiusKm, rs)),
		)
	}

	return b.String()
}

// HorizonReport prints the event-horizon property bundle plus the derived
// comfort distances.
func HorizonReport(massSolar, objectHeightM, observerHours float64) (string, error) {
	props, err := survey.HorizonProps(massSolar)
	if err != nil {
		return "", err
	}

	var b strings.Builder
	b.WriteString(header("EVENT HORIZON"))
	fmt.Fprintf(&b, "Black hole of %g solar masses\n\n", massSolar)

	b.WriteString(labelStyle.Render("radius") + valueStyle.Render(props.SchwarzschildRadiusFormatted) + "\n")
	b.WriteString(labelStyle.Render("circumference") + valueStyle.Render(survey.FormatDistance(props.HorizonCircumferenceKm)) + "\n")
	b.WriteString(labelStyle.Render("area") + valueStyle.Render(fmt.Sprintf("%.3e km^2", props.HorizonAreaKm2)) + "\n")
	b.WriteString(labelStyle.Render("surface gravity") + valueStyle.Render(fmt.Sprintf("%.3e m/s^2 (%.2eg)", props.SurfaceGravityMS2, props.SurfaceGravityG)) + "\n")
	b.WriteString(labelStyle.Render("Hawking temp") + valueStyle.Render(props.HawkingTemperatureFormatted) + "\n")

	rs := props.SchwarzschildRadiusKm
	b.WriteString("\n")
	b.WriteString(labelStyle.Render("safe distance") + valueStyle.Render(survey.FormatDistance(survey.SafeDistance(massSolar, 10))) + "\n")
	b.WriteString(labelStyle.Render("spaghettified at") + valueStyle.Render(survey.FormatDistance(survey.SpaghettificationDistance(massSolar, objectHeightM))) + "\n")

	cmp := survey.CompareTimePassages(2*rs, rs, observerHours)
	b.WriteString("\n")
	fmt.Fprintf(&b, "At 2 Rs, %s far away pass while %s pass locally (%.2fx slower).\n",
		cmp.ObserverTimeFormatted, cmp.LocalTimeFormatted, cmp.TimeRatio)

	return b.String(), nil
}
