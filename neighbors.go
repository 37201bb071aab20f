package xyreco

// NearbyIndices returns the indices of every candidate position within
// radius of center (Euclidean, boundary inclusive), preserving candidate
// order. A radius of 0 selects exact-position matches only.
func NearbyIndices(center XY, radius float64, pos []XY) []int {
	// Compare squared distances to skip the sqrt.
	r2 := radius * radius
	var inds []int
	for i, p := range pos {
		dx := p.X - center.X
		dy := p.Y - center.Y
		if dx*dx+dy*dy <= r2 {
			inds = append(inds, i)
		}
	}
	return inds
}

// CountMaskedNearby counts the inactive sensors within radius of center
// in the full detector table. active is the table-aligned activity
// column; a nil active column disables masking and the count is 0.
func CountMaskedNearby(center XY, radius float64, sensors *SensorTable, active []bool) int {
	if active == nil {
		return 0
	}

	n := 0
	for _, i := range NearbyIndices(center, radius, sensors.Positions()) {
		if !active[i] {
			n++
		}
	}
	return n
}

// selectAt gathers the position/charge pairs at inds into fresh slices.
func selectAt(pos []XY, qs []float64, inds []int) ([]XY, []float64) {
	sp := make([]XY, len(inds))
	sq := make([]float64, len(inds))
	for k, i := range inds {
		sp[k] = pos[i]
		sq[k] = qs[i]
	}
	return sp, sq
}

// discardAt returns copies of pos and qs with the entries at inds
// removed. inds must be sorted ascending, which NearbyIndices guarantees.
func discardAt(pos []XY, qs []float64, inds []int) ([]XY, []float64) {
	kp := make([]XY, 0, len(pos)-len(inds))
	kq := make([]float64, 0, len(qs)-len(inds))
	k := 0
	for i := range pos {
		if k < len(inds) && inds[k] == i {
			k++
			continue
		}
		kp = append(kp, pos[i])
		kq = append(kq, qs[i])
	}
	return kp, kq
}
