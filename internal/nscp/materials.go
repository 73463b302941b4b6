package nscp

import "math"

// NSCP 2015 Material Constants

const (
	// Modulus of elasticity for steel (Section 420.2.2)
	Es = 200000.0 // MPa

	// Normal weight concrete modulus factor, Ec = 4700√f'c (Section 419.2.2.1)
	EcFactor = 4700.0
)

// ConcreteModulus returns the modulus of elasticity of normal weight
// concrete in MPa
// NSCP 2015 Section 419.2.2.1
func ConcreteModulus(fc float64) float64 {
	return EcFactor * math.Sqrt(fc)
}

// FlexuralStiffness converts a modulus (MPa) and a second moment of area
// (mm⁴) into a flexural stiffness in kN·m²
func FlexuralStiffness(e, i float64) float64 {
	// N·mm² → kN·m²
	return e * i / 1e9
}
