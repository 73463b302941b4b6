package beam

// HingedClampedBeamUnderPointForce returns the deflection, rotation and
// bending moment of a beam hinged at the left end and clamped at the right
// end, loaded by a single concentrated force.
//
// Reference: Figure 17, AWC DA6 Beam Design Formulas with Shear and Moment
// Diagrams (2007).
func HingedClampedBeamUnderPointForce(
	positionFromHingedEnd []float64,
	loadIntensity float64,
	loadPositionFromHingedEnd float64,
	spanLength float64,
	flexuralStiffness []float64,
) (*Response, error) {
	r, err := newResponse(positionFromHingedEnd, flexuralStiffness)
	if err != nil {
		return nil, err
	}

	p := loadIntensity
	span := spanLength
	a := loadPositionFromHingedEnd
	b := span - a
	span3 := span * span * span

	// Vertical reaction at the hinged support
	r1 := p * b * b / (2 * span3) * (a + 2*span)

	// Bending moment, hogging at the clamped end
	m1 := r1 * a
	m2 := p * a * b / (2 * span * span) * (a + span)
	r.fillMoment(wholeSpan(positionFromHingedEnd), momentProfile(
		[]float64{0, a, span},
		[]float64{0, m1, -m2},
	))

	left, right := splitAtLoad(positionFromHingedEnd, a)

	r.fill(left, branch{
		deflection: func(x, ei float64) float64 {
			return p * b * b * x * (3*a*span*span - 2*span*x*x - a*x*x) / (12 * ei * span3)
		},
		rotation: func(x, ei float64) float64 {
			return p * b * b * (3*a*span*span - 6*span*x*x - 3*a*x*x) / (12 * ei * span3)
		},
	})

	r.fill(right, branch{
		deflection: func(x, ei float64) float64 {
			lx := span - x
			return p * a * lx * lx * (3*span*span*x - a*a*x - 2*a*a*span) / (12 * ei * span3)
		},
		rotation: func(x, ei float64) float64 {
			lx := span - x
			return p * a * 3 * lx * (span*span*(span-3*x) + a*a*(span+x)) / (12 * ei * span3)
		},
	})

	return r, nil
}
