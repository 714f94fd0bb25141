package survey

// Linspace returns n evenly spaced values from start to stop, both
// endpoints included. n <= 0 yields an empty slice, n == 1 yields just
// start. start may exceed stop for a descending sweep.
func Linspace(start, stop float64, n int) []float64 {
	if n <= 0 {
		return []float64{}
	}
	if n == 1 {
		return []float64{start}
	}
	out := make([]float64, n)
	step := (stop - start) / float64(n-1)
	for i := range out {
		out[i] = start + float64(i)*step
	}
	out[n-1] = stop
	return out
}
