package xyreco

// SensorTable describes every physical SiPM in the detector, one row per
// sensor: position columns X and Y and an Active flag. Masked channels
// are rows with Active == false.
//
// Row indices are a separate key space from an event's position/charge
// slices — an event only contains the sensors that fired. Corona relates
// the two by position, never by index.
type SensorTable struct {
	X      []float64
	Y      []float64
	Active []bool
}

// Len returns the number of rows in the table.
func (t *SensorTable) Len() int { return len(t.X) }

// Positions materializes the table's position columns as a point slice,
// indexed like the table rows.
func (t *SensorTable) Positions() []XY {
	pos := make([]XY, len(t.X))
	for i := range pos {
		pos[i] = XY{X: t.X[i], Y: t.Y[i]}
	}
	return pos
}
