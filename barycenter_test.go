package xyreco

import (
	"errors"
	"math"
	"testing"
)

func TestBarycenterConservation(t *testing.T) {
	pos := []XY{{0, 0}, {2, 0}, {0, 2}}
	qs := []float64{1, 2, 3}

	clusters, err := Barycenter(pos, qs)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(clusters) != 1 {
		t.Fatalf("expected exactly one cluster, got %d", len(clusters))
	}

	c := clusters[0]
	if c.Q != 6 {
		t.Errorf("Q: got %v, want 6", c.Q)
	}
	if c.NSensors != 3 {
		t.Errorf("NSensors: got %d, want 3", c.NSensors)
	}
}

func TestBarycenterCentroid(t *testing.T) {
	pos := []XY{{0, 0}, {2, 0}}
	qs := []float64{1, 3}

	clusters, err := Barycenter(pos, qs)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	c := clusters[0]
	if math.Abs(c.Pos.X-1.5) > 1e-12 || c.Pos.Y != 0 {
		t.Errorf("Pos: got (%v, %v), want (1.5, 0)", c.Pos.X, c.Pos.Y)
	}
	// 0.25*1.5^2 + 0.75*0.5^2 = 0.75
	if math.Abs(c.Var.X-0.75) > 1e-12 || c.Var.Y != 0 {
		t.Errorf("Var: got (%v, %v), want (0.75, 0)", c.Var.X, c.Var.Y)
	}
}

func TestBarycenterPermutationInvariance(t *testing.T) {
	pos := []XY{{0, 0}, {3, 1}, {-2, 4}, {1, 1}}
	qs := []float64{4, 1, 2.5, 3}

	perm := []int{2, 0, 3, 1}
	ppos := make([]XY, len(pos))
	pqs := make([]float64, len(qs))
	for k, i := range perm {
		ppos[k] = pos[i]
		pqs[k] = qs[i]
	}

	a, err := Barycenter(pos, qs)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	b, err := Barycenter(ppos, pqs)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	const tol = 1e-12
	if math.Abs(a[0].Q-b[0].Q) > tol ||
		math.Abs(a[0].Pos.X-b[0].Pos.X) > tol ||
		math.Abs(a[0].Pos.Y-b[0].Pos.Y) > tol ||
		math.Abs(a[0].Var.X-b[0].Var.X) > tol ||
		math.Abs(a[0].Var.Y-b[0].Var.Y) > tol ||
		a[0].NSensors != b[0].NSensors {
		t.Errorf("permuted input changed the cluster: %+v vs %+v", a[0], b[0])
	}
}

func TestBarycenterEmptyInput(t *testing.T) {
	_, err := Barycenter(nil, nil)
	if !errors.Is(err, ErrEmptyInput) {
		t.Errorf("got %v, want ErrEmptyInput", err)
	}
}

func TestBarycenterZeroCharge(t *testing.T) {
	_, err := Barycenter([]XY{{0, 0}, {1, 1}}, []float64{0, 0})
	if !errors.Is(err, ErrZeroCharge) {
		t.Errorf("got %v, want ErrZeroCharge", err)
	}
}
