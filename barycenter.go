package xyreco

import "gonum.org/v1/gonum/floats"

// Barycenter collapses a set of charge-weighted sensor positions into a
// single Cluster at their charge-weighted centroid. It fails with
// ErrEmptyInput when pos is empty and with ErrZeroCharge when the charges
// sum to exactly zero.
//
// For uniformity of interface, every clustering algorithm returns a list
// of clusters. Barycenter always produces exactly one, but it is still
// wrapped in a slice.
func Barycenter(pos []XY, qs []float64) ([]Cluster, error) {
	if len(pos) == 0 {
		return nil, ErrEmptyInput
	}

	q := floats.Sum(qs)
	if q == 0 {
		return nil, ErrZeroCharge
	}

	mean, variance := WeightedMeanVar(pos, qs)
	return []Cluster{{Q: q, Pos: mean, Var: variance, NSensors: len(qs)}}, nil
}
