package xyreco

import "fmt"

// Algorithm identifies a clustering strategy.
type Algorithm string

const (
	AlgorithmBarycenter Algorithm = "barycenter"
	AlgorithmCorona     Algorithm = "corona"
)

// ResolveAlgorithm maps a configuration name to a concrete Algorithm,
// failing with ErrUnknownAlgorithm when the name matches no registered
// strategy. Resolve once at configuration-load time rather than per
// event, so bad configuration fails fast.
func ResolveAlgorithm(name string) (Algorithm, error) {
	switch a := Algorithm(name); a {
	case AlgorithmBarycenter, AlgorithmCorona:
		return a, nil
	default:
		return "", fmt.Errorf("%w: %q", ErrUnknownAlgorithm, name)
	}
}

// Cluster runs the strategy on one event. AlgorithmBarycenter ignores
// the sensor table and every CoronaConfig knob; AlgorithmCorona uses
// all of them.
func (a Algorithm) Cluster(pos []XY, qs []float64, sensors *SensorTable, cfg CoronaConfig) ([]Cluster, error) {
	switch a {
	case AlgorithmBarycenter:
		return Barycenter(pos, qs)
	case AlgorithmCorona:
		return Corona(pos, qs, sensors, cfg)
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownAlgorithm, string(a))
	}
}
