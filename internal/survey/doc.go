// Package survey builds ordered sample sequences and derived property
// bundles on top of the relativity formulas: circular orbit tables, radial
// infall trajectories, event-horizon summaries, and side-by-side time
// comparisons. It also carries the human-readable unit formatting the
// sample records embed.
//
// Sequences are plain slices produced by a finite linear sweep; order is
// meaningful and preserved for display and plotting. A generator handed a
// degenerate range (an infall starting at or below the horizon) returns an
// empty slice rather than an error.
package survey
