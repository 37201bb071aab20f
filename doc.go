// Package xyreco reconstructs the transverse (x, y) position of light
// depositions from the charge pattern recorded on a sparse plane of
// silicon photomultipliers (SiPMs).
//
// Each event supplies two parallel slices: the positions of the SiPMs
// that fired and the charge each one collected. A clustering algorithm
// reduces them to one or more Cluster records, each carrying the total
// charge, the charge-weighted centroid, the per-axis centroid variance
// and the number of contributing sensors.
//
// Two algorithms are provided. Barycenter collapses the whole event into
// a single cluster. Corona finds one cluster per charge peak: it seeds on
// the hottest remaining sensor, refines the peak position among its
// neighbors, grows a region around the refined peak, and removes the
// region before searching for the next peak.
//
// Basic usage:
//
//	cfg := xyreco.DefaultCoronaConfig()
//	cfg.QLM = 5 * xyreco.PES
//	cfg.NewLMRadius = 15 * xyreco.Millimeter
//	cfg.MinSensors = 3
//	clusters, err := xyreco.Corona(pos, qs, sensors, cfg)
//
// To select an algorithm from configuration by name, resolve it once at
// load time:
//
//	algo, err := xyreco.ResolveAlgorithm(name) // ErrUnknownAlgorithm if unrecognized
//	clusters, err := algo.Cluster(pos, qs, sensors, cfg)
//
// # Radius knobs
//
// Corona's two radii are independent. LMRadius decides where the peak
// sits: with LMRadius = 0 the peak is pinned to the hottest sensor, while
// a value slightly above the sensor pitch lets it settle between several
// comparably hot neighbors. NewLMRadius decides what the cluster absorbs
// once the peak position is fixed.
//
// All functions are pure: the caller's slices and the sensor table are
// never mutated, and concurrent calls over different events are safe.
package xyreco
