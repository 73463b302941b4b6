package section

import (
	"math"

	"github.com/rozsasarpi/zandbak/internal/nscp"
)

// CalculateProperties computes geometric properties of the section
func (s *Section) CalculateProperties() *SectionProperties {
	props := &SectionProperties{}

	if len(s.Vertices) < 3 {
		return props
	}

	// Find bounding box
	props.MinX, props.MaxX = s.Vertices[0].X, s.Vertices[0].X
	props.MinY, props.MaxY = s.Vertices[0].Y, s.Vertices[0].Y

	for _, v := range s.Vertices {
		props.MinX = math.Min(props.MinX, v.X)
		props.MaxX = math.Max(props.MaxX, v.X)
		props.MinY = math.Min(props.MinY, v.Y)
		props.MaxY = math.Max(props.MaxY, v.Y)
	}

	props.Width = props.MaxX - props.MinX
	props.Height = props.MaxY - props.MinY

	// Calculate area, centroid and inertia using the shoelace formula
	props.Area, props.CentroidX, props.CentroidY, props.Ixx = s.calculateAreaAndInertia()

	return props
}

// calculateAreaAndInertia uses the shoelace formula. The second moment of
// area is taken about the origin first and moved to the centroid.
func (s *Section) calculateAreaAndInertia() (area, cx, cy, ixx float64) {
	n := len(s.Vertices)
	if n < 3 {
		return 0, 0, 0, 0
	}

	var signedArea float64
	var sumX, sumY, sumIxx float64

	for i := 0; i < n; i++ {
		j := (i + 1) % n
		vi, vj := s.Vertices[i], s.Vertices[j]
		cross := vi.X*vj.Y - vj.X*vi.Y
		signedArea += cross
		sumX += (vi.X + vj.X) * cross
		sumY += (vi.Y + vj.Y) * cross
		sumIxx += (vi.Y*vi.Y + vi.Y*vj.Y + vj.Y*vj.Y) * cross
	}

	signedArea /= 2
	area = math.Abs(signedArea)

	if area == 0 {
		return 0, 0, 0, 0
	}

	cx = sumX / (6 * signedArea)
	cy = sumY / (6 * signedArea)

	// Clockwise vertices flip the sign of every sum
	ixxOrigin := sumIxx / 12
	if signedArea < 0 {
		ixxOrigin = -ixxOrigin
	}
	ixx = ixxOrigin - area*cy*cy

	return area, cx, cy, ixx
}

// ElasticModulus returns the given modulus, or the NSCP concrete modulus
// when only f'c is known
func (s *Section) ElasticModulus() float64 {
	if s.Modulus > 0 {
		return s.Modulus
	}
	return nscp.ConcreteModulus(s.Fc)
}

// FlexuralStiffness returns E·Ixx of the gross section in kN·m²
func (s *Section) FlexuralStiffness() float64 {
	props := s.CalculateProperties()
	return nscp.FlexuralStiffness(s.ElasticModulus(), props.Ixx)
}
