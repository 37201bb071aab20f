package xyreco

import "gonum.org/v1/gonum/stat"

// WeightedMeanVar returns the charge-weighted mean and the charge-weighted
// population variance of pos, computed independently per axis. The weights
// need not sum to 1. The result is undefined when pos is empty or the
// weights sum to zero; callers guard those cases (see Barycenter).
func WeightedMeanVar(pos []XY, qs []float64) (mean, variance XY) {
	xs := make([]float64, len(pos))
	ys := make([]float64, len(pos))
	for i, p := range pos {
		xs[i] = p.X
		ys[i] = p.Y
	}

	mean.X = stat.Mean(xs, qs)
	mean.Y = stat.Mean(ys, qs)
	variance.X = stat.MomentAbout(2, xs, mean.X, qs)
	variance.Y = stat.MomentAbout(2, ys, mean.Y, qs)
	return mean, variance
}
