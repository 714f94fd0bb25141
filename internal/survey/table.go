package survey

import (
	"fmt"
	"strings"

	"github.com/san-kum/gravwell/internal/relativity"
)

// DataTable renders a fixed-width dilation table for the given distances,
// expressed in Schwarzschild radii.
func DataTable(massSolar float64, distancesRs []float64) string {
	rs := relativity.SchwarzschildRadius(massSolar)

	var b strings.Builder
	fmt.Fprintf(&b, "Black hole of %g solar masses (Rs = %.2f km)\n", massSolar, rs)
	b.WriteString(strings.Repeat("=", 70) + "\n")
	fmt.Fprintf(&b, "%-15s %-15s %-15s %-15s\n", "Distance", "Distance", "Time", "Relative")
	fmt.Fprintf(&b, "%-15s %-15s %-15s %-15s\n", "(Rs)", "(km)", "dilation", "time")
	b.WriteString(strings.Repeat("-", 70) + "\n")

	for _, dRs := range distancesRs {
		dKm := dRs * rs
		factor := relativity.TimeDilation(dKm, rs)

		timeStr := "infinite"
		if factor > 0 {
			timeStr = fmt.Sprintf("%.2fx slower", 1/factor)
		}

		fmt.Fprintf(&b, "%-15.2f %-15.0f %-15.6f %-15s\n", dRs, dKm, factor, timeStr)
	}

	return b.String()
}
