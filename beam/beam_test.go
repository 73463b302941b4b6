package beam

import (
	"errors"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/mat"
)

const tol = 1e-9

type pointForceFunc func(x []float64, p, a, span float64, ei []float64) (*Response, error)

var pointForceCases = []struct {
	name string
	fn   pointForceFunc
}{
	{"hinged-hinged", HingedHingedBeamUnderPointForce},
	{"hinged-clamped", HingedClampedBeamUnderPointForce},
	{"clamped-clamped", ClampedClampedBeamUnderPointForce},
}

func TestHingedHingedBeamUnderPointForce(t *testing.T) {
	span, ei, p := 10.0, 3.0, 2.0
	a := span / 2

	r, err := HingedHingedBeamUnderPointForce([]float64{a}, p, a, span, []float64{ei})
	require.NoError(t, err)

	assert.InDelta(t, p*math.Pow(span, 3)/(48*ei), r.Deflection.At(0, 0), tol)
	assert.InDelta(t, p*span/4, r.Moment.At(0, 0), tol)
	assert.InDelta(t, 0, r.Rotation.At(0, 0), tol)
}

func TestHingedClampedBeamUnderPointForce(t *testing.T) {
	span, ei, p := 10.0, 3.0, 2.0
	a := span / 2

	r, err := HingedClampedBeamUnderPointForce([]float64{0, a, span}, p, a, span, []float64{ei})
	require.NoError(t, err)

	assert.InDelta(t, 7*p*math.Pow(span, 3)/(768*ei), r.Deflection.At(0, 1), tol)
	assert.InDelta(t, 5*p*span/32, r.Moment.At(0, 1), tol)

	// Hinged end: free rotation, no moment. Clamped end: no rotation.
	assert.InDelta(t, 0, r.Moment.At(0, 0), tol)
	assert.InDelta(t, 0, r.Rotation.At(0, 2), tol)
	assert.InDelta(t, -3*p*span/16, r.Moment.At(0, 2), tol)
}

func TestClampedClampedBeamUnderPointForce(t *testing.T) {
	span, ei, p := 10.0, 3.0, 2.0
	a := span / 2

	r, err := ClampedClampedBeamUnderPointForce([]float64{0, a, span}, p, a, span, []float64{ei})
	require.NoError(t, err)

	assert.InDelta(t, p*math.Pow(span, 3)/(192*ei), r.Deflection.At(0, 1), tol)
	assert.InDelta(t, p*span/8, r.Moment.At(0, 1), tol)
	assert.InDelta(t, -p*span/8, r.Moment.At(0, 0), tol)
	assert.InDelta(t, -p*span/8, r.Moment.At(0, 2), tol)

	for _, j := range []int{0, 2} {
		assert.InDelta(t, 0, r.Deflection.At(0, j), tol)
		assert.InDelta(t, 0, r.Rotation.At(0, j), tol)
	}
}

func TestClampedClampedOffCentre(t *testing.T) {
	span, ei, p, a := 8.0, 2.5, 4.0, 2.0
	b := span - a

	r, err := ClampedClampedBeamUnderPointForce([]float64{a, span - 1}, p, a, span, []float64{ei})
	require.NoError(t, err)

	// Deflection under the load, AWC figure 25
	assert.InDelta(t, p*math.Pow(a, 3)*math.Pow(b, 3)/(3*ei*math.Pow(span, 3)), r.Deflection.At(0, 0), tol)
	assert.InDelta(t, 2*p*a*a*b*b/math.Pow(span, 3), r.Moment.At(0, 0), tol)

	// Right of the load the helper runs on mirrored coordinates
	x := span - 1
	xm := span - x
	want := p * a * a * xm * xm * (3*b*span - 3*b*xm - a*xm) / (6 * ei * math.Pow(span, 3))
	assert.InDelta(t, want, r.Deflection.At(0, 1), tol)
}

func TestSymmetryAtMidspan(t *testing.T) {
	span, p := 12.0, 3.0
	ei := []float64{1.5, 40}
	x := Stations(span, 25)

	for _, tc := range []struct {
		name string
		fn   pointForceFunc
	}{
		{"hinged-hinged", HingedHingedBeamUnderPointForce},
		{"clamped-clamped", ClampedClampedBeamUnderPointForce},
	} {
		t.Run(tc.name, func(t *testing.T) {
			r, err := tc.fn(x, p, span/2, span, ei)
			require.NoError(t, err)

			m := len(x)
			for i := range ei {
				for j := 0; j < m; j++ {
					k := m - 1 - j
					assert.InDelta(t, r.Deflection.At(i, j), r.Deflection.At(i, k), tol)
					assert.InDelta(t, r.Moment.At(i, j), r.Moment.At(i, k), tol)
					assert.InDelta(t, r.Rotation.At(i, j), -r.Rotation.At(i, k), tol)
				}
			}
		})
	}
}

func TestHingedHingedBeamUnderEndMoment(t *testing.T) {
	span, ei, m0 := 6.0, 2.0, 5.0

	r, err := HingedHingedBeamUnderEndMoment([]float64{0, span / 2, span}, LeftEnd, m0, span, []float64{ei})
	require.NoError(t, err)

	assert.InDelta(t, m0, r.Moment.At(0, 0), tol)
	assert.InDelta(t, m0/2, r.Moment.At(0, 1), tol)
	assert.InDelta(t, 0, r.Moment.At(0, 2), tol)

	assert.InDelta(t, 0, r.Deflection.At(0, 0), tol)
	assert.InDelta(t, m0*span*span/(16*ei), r.Deflection.At(0, 1), tol)
	assert.InDelta(t, 0, r.Deflection.At(0, 2), tol)

	// End slopes: M0 L / 3EI at the loaded end, M0 L / 6EI at the far end
	assert.InDelta(t, m0*span/(3*ei), r.Rotation.At(0, 0), tol)
	assert.InDelta(t, -m0*span/(6*ei), r.Rotation.At(0, 2), tol)
}

func TestEndMomentMirroring(t *testing.T) {
	span, m0 := 9.0, -2.5
	ei := []float64{1, 7, 30}
	// unordered on purpose
	x := []float64{4.5, 0, 7.25, 1, 9, 2.5}

	mirrored := make([]float64, len(x))
	for j, xj := range x {
		mirrored[j] = span - xj
	}

	right, err := HingedHingedBeamUnderEndMoment(x, RightEnd, m0, span, ei)
	require.NoError(t, err)
	left, err := HingedHingedBeamUnderEndMoment(mirrored, LeftEnd, m0, span, ei)
	require.NoError(t, err)

	assert.True(t, mat.EqualApprox(right.Deflection, left.Deflection, tol))
	assert.True(t, mat.EqualApprox(right.Rotation, left.Rotation, tol))
	assert.True(t, mat.EqualApprox(right.Moment, left.Moment, tol))

	// Moment at the loaded end
	assert.InDelta(t, m0, right.Moment.At(0, 4), tol)
	assert.InDelta(t, 0, right.Moment.At(0, 1), tol)

	// Positions are reported in caller order
	assert.Equal(t, x, right.Positions)
}

func TestInvalidLoadedEnd(t *testing.T) {
	r, err := HingedHingedBeamUnderEndMoment([]float64{1}, LoadedEnd("middle"), 1, 2, []float64{1})
	assert.Nil(t, r)
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrInvalidLoadedEnd))

	var argErr *ArgumentError
	require.True(t, errors.As(err, &argErr))
	assert.Contains(t, argErr.Name, "middle")

	end, err := ParseLoadedEnd("right")
	require.NoError(t, err)
	assert.Equal(t, RightEnd, end)

	_, err = ParseLoadedEnd("Left")
	assert.ErrorIs(t, err, ErrInvalidLoadedEnd)
}

func TestShape(t *testing.T) {
	span := 5.0
	x := []float64{0, 1, 2, 3, 4, 5, 2.5}
	ei := []float64{1, 2, 3}

	for _, tc := range pointForceCases {
		t.Run(tc.name, func(t *testing.T) {
			r, err := tc.fn(x, 1, 2, span, ei)
			require.NoError(t, err)
			assertDims(t, r, len(ei), len(x))
		})
	}

	r, err := HingedHingedBeamUnderEndMoment(x, RightEnd, 1, span, ei)
	require.NoError(t, err)
	assertDims(t, r, len(ei), len(x))

	// Scalars are one element slices
	r, err = HingedHingedBeamUnderPointForce([]float64{1}, 1, 2, span, []float64{4})
	require.NoError(t, err)
	assertDims(t, r, 1, 1)
}

func assertDims(t *testing.T, r *Response, n, m int) {
	t.Helper()
	for _, g := range []*mat.Dense{r.Deflection, r.Rotation, r.Moment} {
		rows, cols := g.Dims()
		assert.Equal(t, n, rows)
		assert.Equal(t, m, cols)
	}
	rows, cols := r.Dims()
	assert.Equal(t, n, rows)
	assert.Equal(t, m, cols)
}

func TestStiffnessRows(t *testing.T) {
	ei := []float64{1, 2, 4}
	for _, tc := range pointForceCases {
		t.Run(tc.name, func(t *testing.T) {
			r, err := tc.fn([]float64{1, 3, 5.5}, 2, 3.5, 7, ei)
			require.NoError(t, err)

			for i := range ei {
				for j := 0; j < 3; j++ {
					// deflection scales with 1/EI, moment does not depend on EI
					assert.InDelta(t, r.Deflection.At(0, j)/ei[i], r.Deflection.At(i, j), tol)
					assert.InDelta(t, r.Rotation.At(0, j)/ei[i], r.Rotation.At(i, j), tol)
					assert.Equal(t, r.Moment.At(0, j), r.Moment.At(i, j))
				}
			}
		})
	}
}

func TestContinuityAtLoad(t *testing.T) {
	span, p, a := 7.0, 3.0, 2.2
	ei := []float64{1.7}
	x := []float64{a, math.Nextafter(a, math.Inf(1))}

	for _, tc := range pointForceCases {
		t.Run(tc.name, func(t *testing.T) {
			r, err := tc.fn(x, p, a, span, ei)
			require.NoError(t, err)

			assert.InDelta(t, r.Deflection.At(0, 0), r.Deflection.At(0, 1), 1e-8)
			assert.InDelta(t, r.Rotation.At(0, 0), r.Rotation.At(0, 1), 1e-8)
			assert.InDelta(t, r.Moment.At(0, 0), r.Moment.At(0, 1), 1e-8)
		})
	}
}

func TestSupportsDoNotDeflect(t *testing.T) {
	span := 4.0
	for _, tc := range pointForceCases {
		t.Run(tc.name, func(t *testing.T) {
			r, err := tc.fn([]float64{0, span}, 10, 1.25, span, []float64{3})
			require.NoError(t, err)
			assert.InDelta(t, 0, r.Deflection.At(0, 0), tol)
			assert.InDelta(t, 0, r.Deflection.At(0, 1), tol)
		})
	}
}

func TestLoadAtSupport(t *testing.T) {
	span := 4.0
	for _, tc := range pointForceCases {
		for _, a := range []float64{0, span} {
			r, err := tc.fn([]float64{0, 1, 2, 4}, 10, a, span, []float64{3})
			require.NoError(t, err, tc.name)
			for j := 0; j < 4; j++ {
				assert.InDelta(t, 0, r.Deflection.At(0, j), tol, tc.name)
				assert.InDelta(t, 0, r.Moment.At(0, j), tol, tc.name)
			}
		}
	}
}

func TestEmptyInputs(t *testing.T) {
	for _, tc := range pointForceCases {
		_, err := tc.fn(nil, 1, 1, 2, []float64{1})
		assert.ErrorIs(t, err, ErrNoPositions, tc.name)

		_, err = tc.fn([]float64{1}, 1, 1, 2, nil)
		assert.ErrorIs(t, err, ErrNoStiffness, tc.name)
	}

	_, err := HingedHingedBeamUnderEndMoment(nil, LeftEnd, 1, 2, []float64{1})
	assert.ErrorIs(t, err, ErrNoPositions)
}

func TestMomentOutsideSpan(t *testing.T) {
	// End values are held outside the span
	r, err := ClampedClampedBeamUnderPointForce([]float64{-1, 11}, 2, 5, 10, []float64{1})
	require.NoError(t, err)
	assert.InDelta(t, -2.5, r.Moment.At(0, 0), tol)
	assert.InDelta(t, -2.5, r.Moment.At(0, 1), tol)
}

func TestCallsDoNotShareState(t *testing.T) {
	x := []float64{1, 2}
	ei := []float64{1}

	r1, err := HingedHingedBeamUnderPointForce(x, 1, 1, 3, ei)
	require.NoError(t, err)
	before := mat.DenseCopyOf(r1.Deflection)

	x[0] = 2.5
	ei[0] = 100
	_, err = HingedHingedBeamUnderPointForce(x, 5, 2, 3, ei)
	require.NoError(t, err)

	assert.True(t, mat.Equal(before, r1.Deflection))
	assert.Equal(t, []float64{1, 2}, r1.Positions)
	assert.Equal(t, []float64{1}, r1.FlexuralStiffness)
}

func TestExtremes(t *testing.T) {
	span, p := 10.0, 2.0
	r, err := ClampedClampedBeamUnderPointForce(Stations(span, 11), p, span/2, span, []float64{3, 6})
	require.NoError(t, err)

	ext := r.Extremes(1)
	assert.Equal(t, 6.0, ext.FlexuralStiffness)
	assert.InDelta(t, p*math.Pow(span, 3)/(192*6), ext.Deflection.Value, tol)
	assert.InDelta(t, 5, ext.Deflection.Position, tol)
	// |M| peaks at the first station where the end moment equals the span moment
	assert.InDelta(t, -p*span/8, ext.Moment.Value, tol)
	assert.InDelta(t, 0, ext.Moment.Position, tol)
}

func TestStations(t *testing.T) {
	assert.Equal(t, []float64{0, 2.5, 5, 7.5, 10}, Stations(10, 5))
	assert.Equal(t, []float64{0}, Stations(10, 1))
	assert.Nil(t, Stations(10, 0))
}
