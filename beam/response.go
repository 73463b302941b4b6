package beam

import (
	"errors"
	"fmt"
	"math"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/mat"
)

var (
	// ErrInvalidLoadedEnd is returned when the loaded end is neither "left" nor "right"
	ErrInvalidLoadedEnd = errors.New("loaded end must be either 'left' or 'right'")

	// ErrNoPositions is returned when no query position is given
	ErrNoPositions = errors.New("at least one position is required")

	// ErrNoStiffness is returned when no flexural stiffness value is given
	ErrNoStiffness = errors.New("at least one flexural stiffness value is required")
)

// ArgumentError reports an invalid argument of a response function
type ArgumentError struct {
	Name string
	Err  error
}

func (e *ArgumentError) Error() string {
	return fmt.Sprintf("invalid %s: %v", e.Name, e.Err)
}

func (e *ArgumentError) Unwrap() error {
	return e.Err
}

// LoadedEnd selects the end of the span an end moment is applied to
type LoadedEnd string

const (
	LeftEnd  LoadedEnd = "left"
	RightEnd LoadedEnd = "right"
)

// ParseLoadedEnd converts a user supplied string into a LoadedEnd
func ParseLoadedEnd(s string) (LoadedEnd, error) {
	end := LoadedEnd(s)
	if err := end.validate(); err != nil {
		return "", err
	}
	return end, nil
}

func (e LoadedEnd) validate() error {
	if e != LeftEnd && e != RightEnd {
		return &ArgumentError{Name: fmt.Sprintf("loaded_end %q", string(e)), Err: ErrInvalidLoadedEnd}
	}
	return nil
}

// Response holds the structural responses of a single evaluation.
//
// Each grid has one row per flexural stiffness value and one column per
// query position: Deflection.At(i, j) is the deflection at Positions[j]
// for FlexuralStiffness[i].
type Response struct {
	Positions         []float64
	FlexuralStiffness []float64

	Deflection *mat.Dense // vertical translation, positive downward
	Rotation   *mat.Dense // slope of the deflection line
	Moment     *mat.Dense // bending moment, positive sagging
}

// Dims returns the number of stiffness values (rows) and positions (columns)
func (r *Response) Dims() (n, m int) {
	return r.Deflection.Dims()
}

// Peak is the largest absolute value of a response and where it occurs
type Peak struct {
	Value    float64
	Position float64
}

// Extremes holds the peaks of the three responses for one stiffness value
type Extremes struct {
	FlexuralStiffness float64
	Deflection        Peak
	Rotation          Peak
	Moment            Peak
}

// Extremes returns the peak responses of stiffness row i
func (r *Response) Extremes(i int) Extremes {
	return Extremes{
		FlexuralStiffness: r.FlexuralStiffness[i],
		Deflection:        r.peak(r.Deflection, i),
		Rotation:          r.peak(r.Rotation, i),
		Moment:            r.peak(r.Moment, i),
	}
}

func (r *Response) peak(g *mat.Dense, i int) Peak {
	row := mat.Row(nil, i, g)
	abs := make([]float64, len(row))
	for j, v := range row {
		abs[j] = math.Abs(v)
	}
	j := floats.MaxIdx(abs)
	return Peak{Value: row[j], Position: r.Positions[j]}
}

// Stations returns count evenly spaced positions from 0 to spanLength,
// both ends included
func Stations(spanLength float64, count int) []float64 {
	switch {
	case count <= 0:
		return nil
	case count == 1:
		return []float64{0}
	}
	return floats.Span(make([]float64, count), 0, spanLength)
}
