package report

import (
	"fmt"
	"time"

	"github.com/phpdave11/gofpdf"
	"github.com/rozsasarpi/zandbak/beam"
)

// Sheet describes the calculation being reported
type Sheet struct {
	Title  string
	Inputs [][2]string // label, value
}

// WritePDF saves a calculation sheet with the inputs and the peak
// responses of every stiffness value
func WritePDF(s Sheet, r *beam.Response, path string) error {
	if s.Title == "" {
		s.Title = "Beam Response"
	}

	pdf := gofpdf.New("P", "mm", "A4", "")
	pdf.SetTitle(s.Title, true)
	pdf.AddPage()
	// core fonts are cp1252, unit labels carry ² and ·
	tr := pdf.UnicodeTranslatorFromDescriptor("")

	pdf.SetFont("Helvetica", "B", 16)
	pdf.Cell(0, 10, tr(s.Title))
	pdf.Ln(12)
	pdf.SetFont("Helvetica", "", 10)
	pdf.Cell(0, 6, fmt.Sprintf("Date: %s", time.Now().Format("2006-01-02")))
	pdf.Ln(10)

	// Input data
	pdf.SetFont("Helvetica", "B", 12)
	pdf.Cell(0, 8, "Input data")
	pdf.Ln(8)
	pdf.SetFont("Helvetica", "", 10)
	for _, in := range s.Inputs {
		pdf.CellFormat(70, 6, tr(in[0]), "", 0, "L", false, 0, "")
		pdf.CellFormat(0, 6, tr(in[1]), "", 1, "L", false, 0, "")
	}
	pdf.Ln(6)

	// Peak responses
	pdf.SetFont("Helvetica", "B", 12)
	pdf.Cell(0, 8, "Peak responses")
	pdf.Ln(8)

	widths := []float64{30, 25, 25, 25, 25, 25, 25}
	header := []string{"EI", "max |d|", "at x", "max |phi|", "at x", "max |M|", "at x"}
	pdf.SetFont("Helvetica", "B", 9)
	pdf.SetFillColor(230, 230, 230)
	for k, h := range header {
		pdf.CellFormat(widths[k], 7, h, "1", 0, "C", true, 0, "")
	}
	pdf.Ln(-1)

	pdf.SetFont("Helvetica", "", 9)
	n, _ := r.Dims()
	for i := 0; i < n; i++ {
		e := r.Extremes(i)
		cells := []string{
			fmt.Sprintf("%g", e.FlexuralStiffness),
			fmt.Sprintf("%.5g", e.Deflection.Value),
			fmt.Sprintf("%g", e.Deflection.Position),
			fmt.Sprintf("%.5g", e.Rotation.Value),
			fmt.Sprintf("%g", e.Rotation.Position),
			fmt.Sprintf("%.5g", e.Moment.Value),
			fmt.Sprintf("%g", e.Moment.Position),
		}
		for k, c := range cells {
			pdf.CellFormat(widths[k], 6, c, "1", 0, "R", false, 0, "")
		}
		pdf.Ln(-1)
	}

	return pdf.OutputFileAndClose(path)
}
