package beam

import (
	"github.com/op/go-logging"
)

var log = logging.MustGetLogger("beam")

// ClampedClampedBeamUnderPointForce returns the deflection, rotation and
// bending moment of a beam clamped at both ends, loaded by a single
// concentrated force.
//
// Only the left of load expressions are closed-form here. Positions right
// of the load are mirrored, evaluated with the roles of a and b swapped and
// mapped back, with the rotation changing sign.
//
// Reference: Figure 25, AWC DA6 Beam Design Formulas with Shear and Moment
// Diagrams (2007).
func ClampedClampedBeamUnderPointForce(
	positionFromLeftEnd []float64,
	loadIntensity float64,
	loadPositionFromLeftEnd float64,
	spanLength float64,
	flexuralStiffness []float64,
) (*Response, error) {
	r, err := newResponse(positionFromLeftEnd, flexuralStiffness)
	if err != nil {
		return nil, err
	}

	p := loadIntensity
	span := spanLength
	a := loadPositionFromLeftEnd
	b := span - a

	// Bending moment, fixed end moments are hogging
	m1 := p * a * b * b / (span * span)
	m2 := p * a * a * b / (span * span)
	ma := 2 * p * a * a * b * b / (span * span * span)
	r.fillMoment(wholeSpan(positionFromLeftEnd), momentProfile(
		[]float64{0, a, span},
		[]float64{-m1, ma, -m2},
	))

	left, right := splitAtLoad(positionFromLeftEnd, a)

	// Left of the load
	seg, br := clampedLeftOfLoad(left, p, a, b, span)
	r.fill(seg, br)

	// Right of the load
	seg, br = clampedLeftOfLoad(right.mirror(span), p, b, a, span)
	r.fill(seg, br.negated())

	return r, nil
}

// clampedLeftOfLoad returns the deflection and rotation expressions of a
// clamped-clamped beam between the left support and a load at a. Positions
// beyond the load are not covered by these expressions; they are dropped
// from the returned segment and reported.
func clampedLeftOfLoad(seg segment, p, a, b, span float64) (segment, branch) {
	kept, dropped := seg.keep(func(x float64) bool { return x <= a })
	if dropped > 0 {
		log.Warningf("%d positions greater than the load position %g are ignored", dropped, a)
	}

	span3 := span * span * span
	return kept, branch{
		deflection: func(x, ei float64) float64 {
			return p * b * b * x * x * (3*a*span - 3*a*x - b*x) / (6 * ei * span3)
		},
		rotation: func(x, ei float64) float64 {
			return p * b * b * (6*a*span*x - 9*a*x*x - 3*b*x*x) / (6 * ei * span3)
		},
	}
}
