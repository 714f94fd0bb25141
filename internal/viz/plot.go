package viz

import (
	"fmt"
	"math"
	"strings"

	"github.com/guptarohit/asciigraph"

	"github.com/san-kum/gravwell/internal/relativity"
	"github.com/san-kum/gravwell/internal/survey"
)

const plotSamples = 1000

// DilationPlot renders time dilation against distance from 1.01 Rs out to
// 10 Rs, with the characteristic radii annotated below the curve.
func DilationPlot(massSolar float64, width, height int) string {
	rs := relativity.SchwarzschildRadius(massSolar)

	radii := survey.Linspace(1.01*rs, 10*rs, plotSamples)
	data := make([]float64, len(radii))
	survey.ParallelFor(len(radii), 256, func(start, end int) {
		for i := start; i < end; i++ {
			data[i] = relativity.TimeDilation(radii[i], rs)
		}
	})

	graph := asciigraph.Plot(data,
		asciigraph.Height(height),
		asciigraph.Width(width),
		asciigraph.Caption(fmt.Sprintf("time dilation, 1.01-10 Rs (%g solar masses)", massSolar)),
	)

	return graph + "\n\n" + radiiLegend(massSolar)
}

// SlowdownPlot renders the observer-side slowdown 1/factor - 1 on a log10
// scale over the same sweep as DilationPlot.
func SlowdownPlot(massSolar float64, width, height int) string {
	rs := relativity.SchwarzschildRadius(massSolar)

	radii := survey.Linspace(1.01*rs, 10*rs, plotSamples)
	data := make([]float64, len(radii))
	survey.ParallelFor(len(radii), 256, func(start, end int) {
		for i := start; i < end; i++ {
			factor := relativity.TimeDilation(radii[i], rs)
			data[i] = math.Log10(1/factor - 1)
		}
	})

	return asciigraph.Plot(data,
		asciigraph.Height(height),
		asciigraph.Width(width),
		asciigraph.Caption("log10 slowdown factor, 1.01-10 Rs"),
	)
}

// MultiMassPlot overlays dilation curves for several masses. Distance is
// normalized to each hole's own Schwarzschild radius, so the curves
// coincide; the legend carries the absolute horizon sizes.
func MultiMassPlot(masses []float64, width, height int) string {
	if len(masses) == 0 {
		return ""
	}

	series := make([][]float64, len(masses))
	legends := make([]string, len(masses))
	for i, m := range masses {
		rs := relativity.SchwarzschildRadius(m)
		radii := survey.Linspace(1.01*rs, 10*rs, plotSamples/2)
		data := make([]float64, len(radii))
		survey.ParallelFor(len(radii), 256, func(start, end int) {
			for j := start; j < end; j++ {
				data[j] = relativity.TimeDilation(radii[j], rs)
			}
		})
		series[i] = data
		legends[i] = fmt.Sprintf("%g Msun (Rs %.0f km)", m, rs)
	}

	colors := []asciigraph.AnsiColor{
		asciigraph.Blue, asciigraph.Green, asciigraph.Red, asciigraph.Magenta, asciigraph.Yellow,
	}
	if len(masses) < len(colors) {
		colors = colors[:len(masses)]
	}

	return asciigraph.PlotMany(series,
		asciigraph.Height(height),
		asciigraph.Width(width),
		asciigraph.SeriesColors(colors...),
		asciigraph.SeriesLegends(legends...),
		asciigraph.Caption("time dilation vs distance in Schwarzschild radii"),
	)
}

// RedshiftPlot renders gravitational redshift z against distance.
func RedshiftPlot(massSolar float64, width, height int) string {
	rs := relativity.SchwarzschildRadius(massSolar)

	radii := survey.Linspace(1.1*rs, 10*rs, plotSamples)
	data := make([]float64, len(radii))
	survey.ParallelFor(len(radii), 256, func(start, end int) {
		for i := start; i < end; i++ {
			data[i] = relativity.GravitationalRedshift(radii[i], rs)
		}
	})

	return asciigraph.Plot(data,
		asciigraph.Height(height),
		asciigraph.Width(width),
		asciigraph.Caption(fmt.Sprintf("gravitational redshift z, 1.1-10 Rs (%g solar masses)", massSolar)),
	)
}

// FallPlot renders the fall speed as a fraction of c along an infall from
// startRs Schwarzschild radii.
func FallPlot(massSolar, startRs float64, width, height int) string {
	rs := relativity.SchwarzschildRadius(massSolar)
	traj := survey.FallingTrajectory(startRs*rs, rs, plotSamples/2)
	if len(traj) == 0 {
		return "starting point is at or inside the horizon, nothing to plot"
	}

	data := make([]float64, len(traj))
	for i, p := range traj {
		data[i] = p.FallVelocityC
	}

	return asciigraph.Plot(data,
		asciigraph.Height(height),
		asciigraph.Width(width),
		asciigraph.Caption(fmt.Sprintf("fall speed (fraction of c), %.1f Rs down to 1.01 Rs", startRs)),
	)
}

func radiiLegend(massSolar float64) string {
	rs := relativity.SchwarzschildRadius(massSolar)
	var b strings.Builder
	b.WriteString(labelStyle.Render("event horizon") + valueStyle.Render(survey.FormatDistance(rs)) + "\n")
	b.WriteString(labelStyle.Render("photon sphere") + valueStyle.Render(survey.FormatDistance(relativity.PhotonSphereRadius(massSolar))) + "\n")
	b.WriteString(labelStyle.Render("stable orbit") + valueStyle.Render(survey.FormatDistance(relativity.InnermostStableOrbit(massSolar))))
	return b.String()
}
