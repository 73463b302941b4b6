package section

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRectangleProperties(t *testing.T) {
	s := Rectangle(300, 500)
	props := s.CalculateProperties()

	assert.InDelta(t, 150000, props.Area, 1e-6)
	assert.InDelta(t, 150, props.CentroidX, 1e-9)
	assert.InDelta(t, 250, props.CentroidY, 1e-9)
	assert.InDelta(t, 300.0*500*500*500/12, props.Ixx, 1e-3)
	assert.Equal(t, 300.0, props.Width)
	assert.Equal(t, 500.0, props.Height)
}

func TestClockwiseVertices(t *testing.T) {
	ccw := Rectangle(200, 400)
	cw := &Section{Vertices: []Point{{0, 0}, {0, 400}, {200, 400}, {200, 0}}}

	assert.InDelta(t, ccw.CalculateProperties().Ixx, cw.CalculateProperties().Ixx, 1e-3)
}

func TestTeeSection(t *testing.T) {
	// 600 x 100 flange on a 200 x 400 web
	s := &Section{
		Modulus: 25000,
		Vertices: []Point{
			{200, 0}, {400, 0}, {400, 400}, {600, 400},
			{600, 500}, {0, 500}, {0, 400}, {200, 400},
		},
	}
	require.NoError(t, s.Validate())

	props := s.CalculateProperties()
	// flange 60000 mm² at y=450, web 80000 mm² at y=200
	cy := (60000*450.0 + 80000*200.0) / 140000
	ixx := 600.0*100*100*100/12 + 60000*(450-cy)*(450-cy) +
		200.0*400*400*400/12 + 80000*(200-cy)*(200-cy)

	assert.InDelta(t, 140000, props.Area, 1e-6)
	assert.InDelta(t, cy, props.CentroidY, 1e-9)
	assert.InDelta(t, ixx, props.Ixx, 1e-3)
	assert.InDelta(t, 25000*ixx/1e9, s.FlexuralStiffness(), 1e-9)
}

func TestFlexuralStiffnessFromFc(t *testing.T) {
	s := Rectangle(300, 500)
	s.Fc = 28

	ig := 300.0 * 500 * 500 * 500 / 12
	assert.InDelta(t, 4700*5.291502622129181*ig/1e9, s.FlexuralStiffness(), 1e-6)
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		section *Section
		wantErr string
	}{
		{"too few vertices", &Section{Modulus: 1, Vertices: []Point{{0, 0}, {1, 1}}}, "at least 3 vertices"},
		{"no material", Rectangle(100, 100), "either modulus or f'c"},
		{"both materials", &Section{Modulus: 1, Fc: 28, Vertices: Rectangle(1, 1).Vertices}, "not both"},
		{"repeated vertex", &Section{Modulus: 1, Vertices: []Point{{0, 0}, {1, 0}, {1, 0}, {0, 1}}}, "repeats"},
		{"collinear", &Section{Modulus: 1, Vertices: []Point{{0, 0}, {1, 0}, {2, 0}}}, "zero area"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.section.Validate()
			require.Error(t, err)
			var vErr *ValidationError
			assert.ErrorAs(t, err, &vErr)
			assert.Contains(t, err.Error(), tt.wantErr)
		})
	}
}

func TestLoadFromFile(t *testing.T) {
	dir := t.TempDir()

	jsonPath := filepath.Join(dir, "r.json")
	require.NoError(t, os.WriteFile(jsonPath, []byte(`{
  "name": "R300x500",
  "modulus": 25000,
  "vertices": [{"x": 0, "y": 0}, {"x": 300, "y": 0}, {"x": 300, "y": 500}, {"x": 0, "y": 500}]
}`), 0644))

	yamlPath := filepath.Join(dir, "r.yaml")
	require.NoError(t, os.WriteFile(yamlPath, []byte(`
name: R300x500
modulus: 25000
vertices:
  - {x: 0, y: 0}
  - {x: 300, y: 0}
  - {x: 300, y: 500}
  - {x: 0, y: 500}
`), 0644))

	for _, path := range []string{jsonPath, yamlPath} {
		s, err := LoadFromFile(path)
		require.NoError(t, err, path)
		assert.Equal(t, "R300x500", s.Name)
		assert.InDelta(t, 150000, s.CalculateProperties().Area, 1e-9)
	}
}

func TestLoadFromFileInvalid(t *testing.T) {
	path := filepath.Join(t.TempDir(), "bad.yaml")
	require.NoError(t, os.WriteFile(path, []byte("modulus: 25000\nvertices: [{x: 0, y: 0}]\n"), 0644))

	_, err := LoadFromFile(path)
	var vErr *ValidationError
	assert.ErrorAs(t, err, &vErr)
}
