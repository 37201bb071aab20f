package xyreco

import "errors"

// Failure kinds reported by the clustering algorithms. All are terminal:
// a failed call produces no partial result and nothing is retried
// internally. Callers branch on them with errors.Is, most importantly to
// separate "no data" (ErrEmptyInput, ErrZeroCharge) from "no data
// survives thresholding" (ErrEmptyAboveThreshold,
// ErrZeroChargeAboveThreshold) from "no physically meaningful cluster"
// (ErrNoClustersFound).
var (
	// ErrEmptyInput reports that no sensors were supplied, or that an
	// intermediate region of sensors came out empty.
	ErrEmptyInput = errors.New("xyreco: no sensors supplied")

	// ErrZeroCharge reports that the supplied charges sum to exactly zero.
	ErrZeroCharge = errors.New("xyreco: total sensor charge is zero")

	// ErrEmptyAboveThreshold reports that no sensor survived the QThr cut.
	ErrEmptyAboveThreshold = errors.New("xyreco: no sensors above charge threshold")

	// ErrZeroChargeAboveThreshold reports that the sensors surviving the
	// QThr cut carry exactly zero total charge.
	ErrZeroChargeAboveThreshold = errors.New("xyreco: zero total charge above threshold")

	// ErrNoClustersFound reports that the algorithm ran to completion but
	// accepted no region.
	ErrNoClustersFound = errors.New("xyreco: no clusters found")

	// ErrUnknownAlgorithm reports an algorithm name that matches no
	// registered clustering strategy.
	ErrUnknownAlgorithm = errors.New("xyreco: unknown clustering algorithm")
)
