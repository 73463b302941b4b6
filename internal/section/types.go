package section

import "fmt"

// Section represents a prismatic beam cross-section defined by vertices
// The section is defined in a local coordinate system where:
// - Y-axis points upward
// - X-axis points to the right
// - Origin can be at any convenient location
type Section struct {
	Name        string `json:"name" yaml:"name"`
	Description string `json:"description,omitempty" yaml:"description,omitempty"`

	// Material properties, either the modulus or f'c to derive it from
	Modulus float64 `json:"modulus,omitempty" yaml:"modulus,omitempty"` // Modulus of elasticity (MPa)
	Fc      float64 `json:"fc,omitempty" yaml:"fc,omitempty"`           // Concrete compressive strength (MPa)

	// Section geometry defined by vertices (in mm)
	// Vertices should be defined counter-clockwise for the outer boundary
	// The section is assumed to be a simple polygon (no holes)
	Vertices []Point `json:"vertices" yaml:"vertices"`
}

// Point represents a 2D coordinate
type Point struct {
	X float64 `json:"x" yaml:"x"` // mm
	Y float64 `json:"y" yaml:"y"` // mm
}

// Rectangle returns a width x height section with its origin at the
// bottom-left corner
func Rectangle(width, height float64) *Section {
	return &Section{
		Name: fmt.Sprintf("%.0f x %.0f", width, height),
		Vertices: []Point{
			{X: 0, Y: 0},
			{X: width, Y: 0},
			{X: width, Y: height},
			{X: 0, Y: height},
		},
	}
}

// SectionProperties holds calculated geometric properties
type SectionProperties struct {
	// Overall dimensions
	Width  float64 // Maximum width (mm)
	Height float64 // Total height (mm)
	Area   float64 // Gross area (mm²)

	// Centroid location
	CentroidX float64 // mm
	CentroidY float64 // mm

	// Second moment of area about the horizontal centroidal axis (mm⁴)
	Ixx float64

	// Bounding box
	MinX float64
	MaxX float64
	MinY float64
	MaxY float64
}

// Validate checks if the section definition is valid
func (s *Section) Validate() error {
	if len(s.Vertices) < 3 {
		return &ValidationError{"section must have at least 3 vertices"}
	}
	if s.Modulus < 0 {
		return &ValidationError{"modulus must be positive"}
	}
	if s.Modulus == 0 && s.Fc <= 0 {
		return &ValidationError{"either modulus or f'c must be positive"}
	}
	if s.Modulus > 0 && s.Fc > 0 {
		return &ValidationError{"give either modulus or f'c, not both"}
	}
	for i, v := range s.Vertices {
		j := (i + 1) % len(s.Vertices)
		if v == s.Vertices[j] {
			return &ValidationError{msg: fmt.Sprintf("vertex %d repeats vertex %d", j+1, i+1)}
		}
	}
	if s.CalculateProperties().Area == 0 {
		return &ValidationError{"section has zero area"}
	}
	return nil
}

// ValidationError represents a section validation error
type ValidationError struct {
	msg string
}

func (e *ValidationError) Error() string {
	return e.msg
}
