// Package aero implements the aerodynamic model for a gliding body:
// wing geometry, the per-tick lift/drag evaluation, and the empirical
// attitude corrections (banked turn, stall) that approximate flight
// dynamics not captured by force integration alone.
package aero

// MinExposure is the floor applied to wing exposure values. A fully
// retracted wing would have zero area, and several force formulas divide
// by the exposed area.
const MinExposure = 0.01

// DefaultBaseDrag is the zero-incidence term of the drag polar.
const DefaultBaseDrag = 0.025

// Wing holds the geometry of a single pair of wings. Chord and Span are in
// meters, Weight in kilograms (informational, not applied by this model).
// It is built once per body and lives for the body's lifetime; only the
// exposure values change afterwards, via SetExposure.
type Wing struct {
	Chord      float64
	Span       float64
	BaseDrag   float64
	Efficiency float64
	Weight     float64

	leftExposure  float64
	rightExposure float64
}

// WingStats contains the construction parameters for a wing.
type WingStats struct {
	Chord      float64
	Span       float64
	BaseDrag   float64
	Efficiency float64
	Weight     float64
}

// NewWing creates a wing with both sides fully exposed.
func NewWing(stats WingStats) *Wing {
	baseDrag := stats.BaseDrag
	if baseDrag == 0 {
		baseDrag = DefaultBaseDrag
	}
	return &Wing{
		Chord:         stats.Chord,
		Span:          stats.Span,
		BaseDrag:      baseDrag,
		Efficiency:    stats.Efficiency,
		Weight:        stats.Weight,
		leftExposure:  1.0,
		rightExposure: 1.0,
	}
}

// Area returns the full planform area, chord * span.
func (w *Wing) Area() float64 {
	return w.Chord * w.Span
}

// AspectRatio returns span / chord.
func (w *Wing) AspectRatio() float64 {
	return w.Span / w.Chord
}

// ExposedArea returns the area currently presented to the airflow,
// averaging the two per-side exposure fractions.
func (w *Wing) ExposedArea() float64 {
	return w.Span * w.Chord * (w.leftExposure + w.rightExposure) / 2
}

// SetExposure stores new per-side exposure fractions. An argument of
// exactly 0 is replaced by MinExposure before storage; other values are
// stored verbatim. Always succeeds.
func (w *Wing) SetExposure(left, right float64) {
	if left == 0 {
		left = MinExposure
	}
	if right == 0 {
		right = MinExposure
	}
	w.leftExposure = left
	w.rightExposure = right
}

// LeftExposure returns the stored left-side exposure fraction.
func (w *Wing) LeftExposure() float64 {
	return w.leftExposure
}

// RightExposure returns the stored right-side exposure fraction.
func (w *Wing) RightExposure() float64 {
	return w.rightExposure
}

// WingsOpen reports whether both sides are fully exposed. Exposures are
// stored verbatim, so with both sides at exactly 1.0 the exposed area is
// bit-identical to Area and exact float equality is reliable here.
func (w *Wing) WingsOpen() bool {
	return w.ExposedArea() == w.Area()
}
