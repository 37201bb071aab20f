package xyreco

import (
	"math/rand"
	"testing"
)

// generateEvent lays sensors on a square grid with 10 mm pitch and gives
// each one a random charge, with a hot blob in one corner so corona
// always finds at least one cluster.
func generateEvent(n int) ([]XY, []float64) {
	rng := rand.New(rand.NewSource(42))
	side := 1
	for side*side < n {
		side++
	}

	pos := make([]XY, n)
	qs := make([]float64, n)
	for i := 0; i < n; i++ {
		pos[i] = XY{
			X: float64(i%side) * 10 * Millimeter,
			Y: float64(i/side) * 10 * Millimeter,
		}
		qs[i] = rng.Float64() * 5 * PES
	}
	// Hot blob around the first sensor.
	for i := 0; i < n && i < 4; i++ {
		qs[i] += 50 * PES
	}
	return pos, qs
}

func benchCorona(b *testing.B, n int) {
	b.Helper()
	pos, qs := generateEvent(n)
	cfg := CoronaConfig{
		QThr:        1 * PES,
		QLM:         5 * PES,
		NewLMRadius: 15 * Millimeter,
		MinSensors:  2,
	}
	sensors := &SensorTable{}

	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := Corona(pos, qs, sensors, cfg); err != nil {
			b.Fatal(err)
		}
	}
}

func BenchmarkCorona_100(b *testing.B)  { benchCorona(b, 100) }
func BenchmarkCorona_500(b *testing.B)  { benchCorona(b, 500) }
func BenchmarkCorona_1000(b *testing.B) { benchCorona(b, 1000) }

func BenchmarkBarycenter_1000(b *testing.B) {
	pos, qs := generateEvent(1000)
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := Barycenter(pos, qs); err != nil {
			b.Fatal(err)
		}
	}
}
