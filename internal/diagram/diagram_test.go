package diagram

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/rozsasarpi/zandbak/beam"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testResponse(t *testing.T) *beam.Response {
	t.Helper()
	r, err := beam.HingedClampedBeamUnderPointForce(
		[]float64{10, 0, 2.5, 5, 7.5}, 2, 5, 10, []float64{3, 6})
	require.NoError(t, err)
	return r
}

func TestDrawASCIIResponseDiagrams(t *testing.T) {
	out := DrawASCIIResponseDiagrams(testResponse(t))

	assert.Contains(t, out, "DEFLECTION")
	assert.Contains(t, out, "ROTATION")
	assert.Contains(t, out, "BENDING MOMENT")
	assert.Equal(t, 3, strings.Count(out, "x = 0 ... 10, EI = 3, 6"))
}

func TestDrawASCIISinglePosition(t *testing.T) {
	r, err := beam.HingedHingedBeamUnderPointForce([]float64{5}, 2, 5, 10, []float64{3})
	require.NoError(t, err)

	out := DrawASCIIResponseDiagrams(r)
	assert.Equal(t, 3, strings.Count(out, "single position"))
}

func TestPositionOrder(t *testing.T) {
	assert.Equal(t, []int{1, 2, 0, 3}, positionOrder([]float64{5, 0, 2, 9}))
}

func TestDrawSummaryBox(t *testing.T) {
	out := DrawSummaryBox("PEAKS", []string{"δ = 1.25", "M = -3.75"})
	lines := strings.Split(strings.TrimRight(out, "\n"), "\n")

	require.Len(t, lines, 6)
	width := len([]rune(lines[0]))
	for _, l := range lines {
		assert.Equal(t, width, len([]rune(l)), l)
	}
}

func TestExportResponseDiagrams(t *testing.T) {
	dir := t.TempDir()

	files, err := ExportResponseDiagrams(testResponse(t), filepath.Join(dir, "out", "hc.svg"))
	require.NoError(t, err)

	assert.Equal(t, []string{
		filepath.Join(dir, "out", "hc-deflection.svg"),
		filepath.Join(dir, "out", "hc-rotation.svg"),
		filepath.Join(dir, "out", "hc-moment.svg"),
	}, files)
	for _, f := range files {
		info, err := os.Stat(f)
		require.NoError(t, err)
		assert.NotZero(t, info.Size())
	}
}

func TestExportResponseDiagramsDefaultsToPNG(t *testing.T) {
	dir := t.TempDir()

	files, err := ExportResponseDiagrams(testResponse(t), filepath.Join(dir, "hc"))
	require.NoError(t, err)
	require.Len(t, files, 3)
	assert.Equal(t, ".png", filepath.Ext(files[0]))
}

func TestExportSectionDiagram(t *testing.T) {
	dir := t.TempDir()
	name := filepath.Join(dir, "section.png")

	err := ExportSectionDiagram([]Point{{0, 0}, {300, 0}, {300, 500}, {0, 500}}, 250, name)
	require.NoError(t, err)
	_, err = os.Stat(name)
	assert.NoError(t, err)

	assert.Error(t, ExportSectionDiagram([]Point{{0, 0}}, 0, name))
}
