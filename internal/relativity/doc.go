// Package relativity provides closed-form Schwarzschild black-hole
// quantities: horizon radius, time dilation, escape velocity, orbital
// mechanics, gravitational redshift, and tidal acceleration.
//
// Every function is a pure evaluation of an analytic formula at a single
// point. Radii are in kilometers, mass in solar masses, everything else SI.
// Quantities that diverge at the horizon return sentinel values instead of
// errors: [TimeDilation] clamps to 0 and [GravitationalRedshift] returns
// +Inf for any radius at or inside the Schwarzschild radius, matching the
// physical interpretation (time stops, redshift diverges).
//
//	rs := relativity.SchwarzschildRadius(10) // ~29532.5 km
//	f := relativity.TimeDilation(2*rs, rs)   // ~0.7071
package relativity
