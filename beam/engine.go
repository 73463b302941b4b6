package beam

import (
	"sort"

	"gonum.org/v1/gonum/interp"
	"gonum.org/v1/gonum/mat"
)

// segment is a subsequence of the query positions tagged with the
// column each position occupies in the result grids
type segment struct {
	cols []int
	x    []float64
}

func (s segment) len() int {
	return len(s.x)
}

// wholeSpan tags every query position with its own column
func wholeSpan(x []float64) segment {
	s := segment{cols: make([]int, len(x)), x: make([]float64, len(x))}
	for j, xj := range x {
		s.cols[j] = j
		s.x[j] = xj
	}
	return s
}

// splitAtLoad partitions the query positions at the load position.
// A position equal to the load position belongs to the left segment.
func splitAtLoad(x []float64, a float64) (left, right segment) {
	for j, xj := range x {
		if xj <= a {
			left.cols = append(left.cols, j)
			left.x = append(left.x, xj)
		} else {
			right.cols = append(right.cols, j)
			right.x = append(right.x, xj)
		}
	}
	return left, right
}

// mirror reflects every position about midspan (x' = L - x). Column tags
// are kept, so values computed on the mirrored segment land in the
// columns of the original positions.
func (s segment) mirror(span float64) segment {
	m := segment{cols: make([]int, len(s.cols)), x: make([]float64, len(s.x))}
	copy(m.cols, s.cols)
	for k, xk := range s.x {
		m.x[k] = span - xk
	}
	return m
}

// keep returns the positions satisfying ok and the number of positions dropped
func (s segment) keep(ok func(x float64) bool) (segment, int) {
	var kept segment
	for k, xk := range s.x {
		if ok(xk) {
			kept.cols = append(kept.cols, s.cols[k])
			kept.x = append(kept.x, xk)
		}
	}
	return kept, s.len() - kept.len()
}

// branch holds the closed-form deflection and rotation expressions that
// apply to one segment of the span
type branch struct {
	deflection func(x, ei float64) float64
	rotation   func(x, ei float64) float64
}

// negated flips the sign of the rotation, which is how a slope computed in
// mirrored coordinates maps back onto the original axis
func (br branch) negated() branch {
	rot := br.rotation
	return branch{
		deflection: br.deflection,
		rotation: func(x, ei float64) float64 {
			return -rot(x, ei)
		},
	}
}

// fill evaluates the branch for every stiffness row and every position of
// the segment and stores the values in the tagged columns
func (r *Response) fill(seg segment, br branch) {
	for i, ei := range r.FlexuralStiffness {
		for k, xk := range seg.x {
			j := seg.cols[k]
			r.Deflection.Set(i, j, br.deflection(xk, ei))
			r.Rotation.Set(i, j, br.rotation(xk, ei))
		}
	}
}

// fillMoment evaluates the bending moment over a segment. The moment does
// not depend on the stiffness, so every row receives the same value.
func (r *Response) fillMoment(seg segment, moment func(x float64) float64) {
	n, _ := r.Moment.Dims()
	for k, xk := range seg.x {
		j := seg.cols[k]
		m := moment(xk)
		for i := 0; i < n; i++ {
			r.Moment.Set(i, j, m)
		}
	}
}

// momentProfile returns the piecewise-linear bending moment through the
// control points (xs[k], ms[k]). Outside the control points the end values
// are held constant.
func momentProfile(xs, ms []float64) func(x float64) float64 {
	type point struct{ x, m float64 }
	pts := make([]point, len(xs))
	for k := range xs {
		pts[k] = point{xs[k], ms[k]}
	}
	sort.SliceStable(pts, func(i, j int) bool { return pts[i].x < pts[j].x })

	// Coincident control points occur for a load at a support; the
	// moment is zero there for every case, so keeping the first is enough.
	var px, pm []float64
	for _, p := range pts {
		if len(px) > 0 && p.x == px[len(px)-1] {
			continue
		}
		px = append(px, p.x)
		pm = append(pm, p.m)
	}

	if len(px) < 2 {
		m := pm[0]
		return func(float64) float64 { return m }
	}

	var pl interp.PiecewiseLinear
	if err := pl.Fit(px, pm); err != nil {
		// px is strictly increasing and matches pm in length
		panic(err)
	}
	return pl.Predict
}

// newResponse allocates the three n x m grids of a single evaluation
func newResponse(positions, flexuralStiffness []float64) (*Response, error) {
	if len(positions) == 0 {
		return nil, &ArgumentError{Name: "position", Err: ErrNoPositions}
	}
	if len(flexuralStiffness) == 0 {
		return nil, &ArgumentError{Name: "flexural_stiffness", Err: ErrNoStiffness}
	}

	n, m := len(flexuralStiffness), len(positions)
	r := &Response{
		Positions:         append([]float64(nil), positions...),
		FlexuralStiffness: append([]float64(nil), flexuralStiffness...),
		Deflection:        mat.NewDense(n, m, nil),
		Rotation:          mat.NewDense(n, m, nil),
		Moment:            mat.NewDense(n, m, nil),
	}
	return r, nil
}
