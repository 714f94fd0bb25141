// Package viz renders black-hole physics for the terminal: asciigraph
// line plots of dilation and infall curves, formatted text reports, and a
// 3D wireframe orbit scene drawn on a braille canvas and driven by a
// Bubble Tea event loop.
package viz
