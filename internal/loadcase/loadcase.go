package loadcase

import (
	"fmt"
	"os"

	"github.com/op/go-logging"
	"github.com/rozsasarpi/zandbak/beam"
	"github.com/rozsasarpi/zandbak/internal/nscp"
	"github.com/rozsasarpi/zandbak/internal/section"
	yaml "gopkg.in/yaml.v2"
)

var log = logging.MustGetLogger("loadcase")

// Support conditions at the left and right ends
const (
	HingedHinged   = "hinged-hinged"
	HingedClamped  = "hinged-clamped"
	ClampedClamped = "clamped-clamped"
)

// Load types
const (
	Force  = "force"
	Moment = "moment"
)

// DefaultStations is the number of evaluation points used when a case
// gives neither positions nor stations
const DefaultStations = 21

// Case is a single beam evaluation stored in a YAML file
type Case struct {
	Name    string   `yaml:"name"`
	Support string   `yaml:"support"`
	Span    float64  `yaml:"span"`
	Load    CaseLoad `yaml:"load"`

	FlexuralStiffness []float64        `yaml:"stiffness"`
	Section           *section.Section `yaml:"section"`

	Positions []float64 `yaml:"positions"`
	Stations  int       `yaml:"stations"`
}

// CaseLoad is the concentrated force or end moment of a case
type CaseLoad struct {
	Type        string       `yaml:"type"`
	Intensity   float64      `yaml:"intensity"`
	Position    float64      `yaml:"position"`
	End         string       `yaml:"end"`
	Combination *Combination `yaml:"combination"`
}

// Combination derives the intensity from unfactored load types
type Combination struct {
	nscp.LoadIntensities `yaml:",inline"`
	Simplified           bool `yaml:"simplified"`
}

// ValidationError represents a case validation error
type ValidationError struct {
	Field string
	msg   string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("%s: %s", e.Field, e.msg)
}

// Load reads a case from a YAML file
func Load(path string) (*Case, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	c, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return c, nil
}

// Parse decodes and validates a case
func Parse(data []byte) (*Case, error) {
	var c Case
	if err := yaml.UnmarshalStrict(data, &c); err != nil {
		return nil, err
	}
	if err := c.Validate(); err != nil {
		return nil, err
	}
	return &c, nil
}

// Validate checks the case is complete. Ranges are not checked: a load or
// position outside the span is evaluated as given.
func (c *Case) Validate() error {
	switch c.Support {
	case HingedHinged, HingedClamped, ClampedClamped:
	case "":
		return &ValidationError{"support", "is required"}
	default:
		return &ValidationError{"support", fmt.Sprintf("unknown support %q", c.Support)}
	}

	if c.Span == 0 {
		return &ValidationError{"span", "is required"}
	}

	switch c.Load.Type {
	case Force:
		if c.Load.End != "" {
			return &ValidationError{"load.end", "applies to moments only"}
		}
	case Moment:
		if c.Support != HingedHinged {
			return &ValidationError{"load.type", "end moments are available for hinged-hinged beams only"}
		}
		if _, err := beam.ParseLoadedEnd(c.Load.End); err != nil {
			return &ValidationError{"load.end", err.Error()}
		}
	default:
		return &ValidationError{"load.type", fmt.Sprintf("must be %q or %q", Force, Moment)}
	}

	if cb := c.Load.Combination; cb != nil {
		if c.Load.Intensity != 0 {
			return &ValidationError{"load", "give either intensity or combination, not both"}
		}
		if cb.IsZero() {
			return &ValidationError{"load.combination", "has no load"}
		}
	}

	switch {
	case len(c.FlexuralStiffness) == 0 && c.Section == nil:
		return &ValidationError{"stiffness", "either stiffness or section is required"}
	case len(c.FlexuralStiffness) > 0 && c.Section != nil:
		return &ValidationError{"stiffness", "give either stiffness or section, not both"}
	case c.Section != nil:
		if err := c.Section.Validate(); err != nil {
			return &ValidationError{"section", err.Error()}
		}
	}

	if len(c.Positions) > 0 && c.Stations > 0 {
		return &ValidationError{"positions", "give either positions or stations, not both"}
	}
	if c.Stations < 0 {
		return &ValidationError{"stations", "must be positive"}
	}

	return nil
}

// Intensity returns the load intensity, factored by the governing
// combination when the case gives unfactored loads
func (c *Case) Intensity() (float64, *nscp.LoadCombination) {
	cb := c.Load.Combination
	if cb == nil {
		return c.Load.Intensity, nil
	}

	combinations := nscp.LoadCombinations
	if cb.Simplified {
		combinations = nscp.SimplifiedCombinations
	}
	f, combo := nscp.GoverningLoad(cb.LoadIntensities, combinations)
	log.Debugf("load combination %s (%s) governs: %g", combo.ID, combo.Description, f)
	return f, &combo
}

// Stiffness returns the flexural stiffness values of the case
func (c *Case) Stiffness() []float64 {
	if c.Section != nil {
		return []float64{c.Section.FlexuralStiffness()}
	}
	return c.FlexuralStiffness
}

// QueryPositions returns the explicit positions or evenly spaced stations
func (c *Case) QueryPositions() []float64 {
	if len(c.Positions) > 0 {
		return c.Positions
	}
	n := c.Stations
	if n == 0 {
		n = DefaultStations
	}
	return beam.Stations(c.Span, n)
}

// Evaluate computes the responses of the case
func (c *Case) Evaluate() (*beam.Response, error) {
	p, _ := c.Intensity()
	x := c.QueryPositions()
	ei := c.Stiffness()

	if c.Load.Type == Moment {
		end, err := beam.ParseLoadedEnd(c.Load.End)
		if err != nil {
			return nil, err
		}
		return beam.HingedHingedBeamUnderEndMoment(x, end, p, c.Span, ei)
	}

	switch c.Support {
	case HingedHinged:
		return beam.HingedHingedBeamUnderPointForce(x, p, c.Load.Position, c.Span, ei)
	case HingedClamped:
		return beam.HingedClampedBeamUnderPointForce(x, p, c.Load.Position, c.Span, ei)
	case ClampedClamped:
		return beam.ClampedClampedBeamUnderPointForce(x, p, c.Load.Position, c.Span, ei)
	}
	return nil, &ValidationError{"support", fmt.Sprintf("unknown support %q", c.Support)}
}
