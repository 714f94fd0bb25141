package survey

import (
	"fmt"

	"github.com/san-kum/gravwell/internal/relativity"
)

// FormatTime renders a duration in seconds using the largest unit that
// keeps the value readable.
func FormatTime(seconds float64) string {
	switch {
	case seconds < 60:
		return fmt.Sprintf("%.2f seconds", seconds)
	case seconds < 3600:
		return fmt.Sprintf("%.2f minutes", seconds/60)
	case seconds < 86400:
		return fmt.Sprintf("%.2f hours", seconds/3600)
	case seconds < 31536000:
		return fmt.Sprintf("%.2f days", seconds/86400)
	default:
		return fmt.Sprintf("%.2f years", seconds/31536000)
	}
}

// FormatDistance renders a distance in km, stepping from meters up to
// light-years by magnitude.
func FormatDistance(km float64) string {
	switch {
	case km < 1:
		return fmt.Sprintf("%.2f m", km*1000)
	case km < 1000:
		return fmt.Sprintf("%.2f km", km)
	case km < relativity.AUKm:
		return fmt.Sprintf("%.2f thousand km", km/1000)
	default:
		au := km / relativity.AUKm
		if au < 1000 {
			return fmt.Sprintf("%.2f AU", au)
		}
		return fmt.Sprintf("%.2f light-years", km/relativity.LightYearKm)
	}
}
