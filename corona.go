package xyreco

import (
	"fmt"

	"gonum.org/v1/gonum/floats"
)

// CoronaConfig controls Corona's peak-clustering loop.
// Start with [DefaultCoronaConfig] and override the fields you need.
// Radii share units with the event positions; charges share units with
// the event charges (see units.go).
type CoronaConfig struct {
	// QThr drops every sensor with charge strictly below this floor
	// before any peak search. Default: 0 (keep everything).
	QThr float64

	// QLM is the minimum charge the hottest remaining sensor must carry
	// to seed a new cluster. Once every remaining sensor is below it the
	// loop ends normally. Default: 0.
	QLM float64

	// LMRadius is the peak-refinement radius: the barycenter of the
	// sensors within it of the hottest sensor becomes the refined peak
	// position. 0 pins the peak to the hottest sensor itself; a value
	// slightly above the sensor pitch (or pitch*sqrt(2)) lets the peak
	// settle between several comparably hot neighbors. Must be >= 0.
	// Default: 0.
	LMRadius float64

	// NewLMRadius is the cluster-growth radius: every remaining sensor
	// within it of the refined peak joins the cluster. Must be >= 0.
	// Default: 0.
	NewLMRadius float64

	// MinSensors is the minimum number of sensors a region must contain
	// to be accepted as a cluster. Default: 1.
	MinSensors int

	// ConsiderMasked credits inactive detector sensors near the peak
	// toward MinSensors, so that masked channels do not veto otherwise
	// valid clusters. Default: false.
	ConsiderMasked bool
}

// DefaultCoronaConfig returns a CoronaConfig with reasonable defaults.
func DefaultCoronaConfig() CoronaConfig {
	return CoronaConfig{
		MinSensors: 1,
	}
}

// validateCoronaConfig checks the configuration preconditions. These are
// contract violations, reported as plain errors distinct from the
// runtime failure kinds in errors.go.
func validateCoronaConfig(cfg *CoronaConfig) error {
	if cfg.LMRadius < 0 {
		return fmt.Errorf("xyreco: LMRadius must be non-negative, got %v", cfg.LMRadius)
	}
	if cfg.NewLMRadius < 0 {
		return fmt.Errorf("xyreco: NewLMRadius must be non-negative, got %v", cfg.NewLMRadius)
	}
	return nil
}

// Corona reconstructs one cluster per charge peak. Each iteration:
//
//  1. takes the hottest remaining sensor, stopping once its charge drops
//     below QLM;
//  2. refines the peak position as the barycenter of the sensors within
//     LMRadius of the hottest sensor;
//  3. grows a region from every remaining sensor within NewLMRadius of
//     the refined peak, and counts inactive detector sensors near the
//     peak when ConsiderMasked is set;
//  4. accepts the region as a cluster if it holds at least
//     MinSensors - maskedNeighbors sensors;
//  5. removes the region's sensors from further consideration whether or
//     not it was accepted.
//
// Clusters are returned in discovery order, hottest peak first. The
// masked-neighbor credit is applied without a lower floor, so a heavily
// masked neighborhood can accept a region of fewer than MinSensors live
// sensors.
//
// The caller's slices and the sensor table are never mutated; the loop
// works on a local copy that only ever shrinks, so it terminates in at
// most len(pos) iterations.
func Corona(pos []XY, qs []float64, sensors *SensorTable, cfg CoronaConfig) ([]Cluster, error) {
	if err := validateCoronaConfig(&cfg); err != nil {
		return nil, err
	}

	if len(pos) == 0 {
		return nil, ErrEmptyInput
	}
	if floats.Sum(qs) == 0 {
		return nil, ErrZeroCharge
	}

	var active []bool
	if cfg.ConsiderMasked {
		active = sensors.Active
	}

	// Working copies: the QThr cut builds fresh slices and every removal
	// below rebuilds them, so the caller's arrays stay untouched.
	wpos := make([]XY, 0, len(pos))
	wqs := make([]float64, 0, len(qs))
	for i, q := range qs {
		if q >= cfg.QThr {
			wpos = append(wpos, pos[i])
			wqs = append(wqs, q)
		}
	}

	if len(wpos) == 0 {
		return nil, ErrEmptyAboveThreshold
	}
	if floats.Sum(wqs) == 0 {
		return nil, ErrZeroChargeAboveThreshold
	}

	var clusters []Cluster
	for len(wqs) > 0 {
		hottest := floats.MaxIdx(wqs)
		if wqs[hottest] < cfg.QLM {
			break // largest remaining charge is negligible
		}

		// Refine the peak position among the sensors near the hottest one.
		withinLM := NearbyIndices(wpos[hottest], cfg.LMRadius, wpos)
		lmPos, lmQs := selectAt(wpos, wqs, withinLM)
		refined, err := Barycenter(lmPos, lmQs)
		if err != nil {
			return nil, err
		}
		peak := refined[0].Pos

		// Grow the cluster region around the refined peak. An empty region
		// means the peak migrated beyond NewLMRadius of every remaining
		// sensor; without this check the loop would never shrink.
		region := NearbyIndices(peak, cfg.NewLMRadius, wpos)
		if len(region) == 0 {
			return nil, fmt.Errorf("%w: no sensors within NewLMRadius of refined peak", ErrEmptyInput)
		}
		nMasked := CountMaskedNearby(peak, cfg.NewLMRadius, sensors, active)

		if len(region) >= cfg.MinSensors-nMasked {
			rpos, rqs := selectAt(wpos, wqs, region)
			cl, err := Barycenter(rpos, rqs)
			if err != nil {
				return nil, err
			}
			clusters = append(clusters, cl...)
		}

		// The region's sensors are spent either way: they cannot seed or
		// join a later cluster in this run.
		wpos, wqs = discardAt(wpos, wqs, region)
	}

	if len(clusters) == 0 {
		return nil, ErrNoClustersFound
	}
	return clusters, nil
}
