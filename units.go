package xyreco

// Units for scaling configuration magnitudes before they reach the
// clustering core. Positions and radii are millimeter-based; charge is
// counted in photoelectron equivalents. The algorithms themselves are
// unit-agnostic — these constants only keep configuration files honest.
const (
	Millimeter = 1.0
	Centimeter = 10 * Millimeter
	Meter      = 1000 * Millimeter

	// PES is one photoelectron equivalent of SiPM charge.
	PES = 1.0
)
