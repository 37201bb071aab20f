package xyreco

// XY is a point on the detector plane.
type XY struct {
	X float64
	Y float64
}

// Cluster summarizes one reconstructed light deposition. It is a value
// record: algorithms create it once and never modify it afterwards.
type Cluster struct {
	// Q is the total charge collected by the contributing sensors.
	Q float64

	// Pos is the charge-weighted centroid of the contributing sensors.
	Pos XY

	// Var is the charge-weighted variance of the sensor positions about
	// the centroid, per axis.
	Var XY

	// NSensors is the number of sensors that contributed charge.
	NSensors int
}
