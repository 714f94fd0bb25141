package viz

import (
	"fmt"

	"github.com/charmbracelet/lipgloss"
)

// DilationColor maps a time-dilation factor in [0,1] onto a red-to-cyan
// ramp: deep red where time nearly stops, through orange and yellow, to
// green-cyan far from the hole.
func DilationColor(factor float64) (r, g, b float64) {
	switch {
	case factor < 0.2:
		return 1.0, 0.0, 0.0
	case factor < 0.4:
		t := (factor - 0.2) / 0.2
		return 1.0, t * 0.5, 0.0
	case factor < 0.6:
		t := (factor - 0.4) / 0.2
		return 1.0, 0.5 + t*0.5, 0.0
	case factor < 0.8:
		t := (factor - 0.6) / 0.2
		return 1.0 - t*0.5, 1.0, 0.0
	default:
		t := (factor - 0.8) / 0.2
		return 0.0, 1.0 - t*0.5, t
	}
}

// DilationStyle returns a lipgloss style whose foreground encodes the
// dilation factor via DilationColor.
func DilationStyle(factor float64) lipgloss.Style {
	if factor < 0 {
		factor = 0
	}
	if factor > 1 {
		factor = 1
	}
	r, g, b := DilationColor(factor)
	hex := fmt.Sprintf("#%02x%02x%02x", int(r*255), int(g*255), int(b*255))
	return lipgloss.NewStyle().Foreground(lipgloss.Color(hex))
}
