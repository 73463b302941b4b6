// Package beam evaluates closed-form Euler-Bernoulli responses of single
// span beams with idealized supports.
//
// Every function takes m query positions and n flexural stiffness values
// and returns a Response with three n x m grids (deflection, rotation and
// bending moment). A scalar position or stiffness is passed as a one
// element slice. Inputs are not range checked: positions outside the
// span, a load outside the span or a non-positive span or stiffness are
// evaluated as is.
//
// Sign convention: a positive force acts downward and produces positive
// (downward) deflection and positive (sagging) bending moment.
package beam

// HingedHingedBeamUnderPointForce returns the deflection, rotation and
// bending moment of a hinged-hinged beam loaded by a single concentrated
// force.
//
// Reference: Figure 8, AWC DA6 Beam Design Formulas with Shear and Moment
// Diagrams (2007).
func HingedHingedBeamUnderPointForce(
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

	// Bending moment
	ma := p * a * b / span
	r.fillMoment(wholeSpan(positionFromLeftEnd), momentProfile(
		[]float64{0, a, span},
		[]float64{0, ma, 0},
	))

	left, right := splitAtLoad(positionFromLeftEnd, a)

	// Deflection and rotation left of the load
	r.fill(left, branch{
		deflection: func(x, ei float64) float64 {
			return p * b * x * (span*span - b*b - x*x) / (6 * ei * span)
		},
		rotation: func(x, ei float64) float64 {
			return p * b * (span*span - b*b - 3*x*x) / (6 * ei * span)
		},
	})

	// Right of the load
	r.fill(right, branch{
		deflection: func(x, ei float64) float64 {
			return p * a * (span - x) * (2*span*x - x*x - a*a) / (6 * ei * span)
		},
		rotation: func(x, ei float64) float64 {
			return p * a * (2*span*span - 6*span*x + 3*x*x + a*a) / (6 * ei * span)
		},
	})

	return r, nil
}

// HingedHingedBeamUnderEndMoment returns the deflection, rotation and
// bending moment of a hinged-hinged beam loaded by a moment at one of its
// ends.
//
// The closed-form expressions are written for a moment at the left end.
// For the right end the positions are reflected about midspan, the left
// end expressions are evaluated there and the values are stored at the
// original positions.
//
// Reference: https://mechanicalc.com/reference/beam-deflection-tables
func HingedHingedBeamUnderEndMoment(
	positionFromLeftEnd []float64,
	loadedEnd LoadedEnd,
	loadIntensity float64,
	spanLength float64,
	flexuralStiffness []float64,
) (*Response, error) {
	if err := loadedEnd.validate(); err != nil {
		return nil, err
	}
	r, err := newResponse(positionFromLeftEnd, flexuralStiffness)
	if err != nil {
		return nil, err
	}

	m0 := loadIntensity
	span := spanLength

	seg := wholeSpan(positionFromLeftEnd)
	if loadedEnd == RightEnd {
		seg = seg.mirror(span)
	}

	r.fillMoment(seg, func(x float64) float64 {
		return m0 * (span - x) / span
	})
	r.fill(seg, branch{
		deflection: func(x, ei float64) float64 {
			return m0 * x * (2*span*span - 3*span*x + x*x) / (6 * ei * span)
		},
		rotation: func(x, ei float64) float64 {
			return m0 * (2*span*span - 6*span*x + 3*x*x) / (6 * ei * span)
		},
	})

	return r, nil
}
