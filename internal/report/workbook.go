package report

import (
	"fmt"

	"github.com/rozsasarpi/zandbak/beam"
	"github.com/xuri/excelize/v2"
	"gonum.org/v1/gonum/mat"
)

// Sheet names of the workbook, one per response grid
const (
	SheetDeflection = "Deflection"
	SheetRotation   = "Rotation"
	SheetMoment     = "Moment"
)

// WriteWorkbook saves the three response grids of r to an xlsx workbook.
// Each sheet has the positions in the first row and one row per flexural
// stiffness value, the stiffness in column A.
func WriteWorkbook(r *beam.Response, path string) error {
	f := excelize.NewFile()
	defer f.Close()

	sheets := []struct {
		name string
		grid *mat.Dense
	}{
		{SheetDeflection, r.Deflection},
		{SheetRotation, r.Rotation},
		{SheetMoment, r.Moment},
	}

	for k, s := range sheets {
		if k == 0 {
			if err := f.SetSheetName("Sheet1", s.name); err != nil {
				return err
			}
		} else if _, err := f.NewSheet(s.name); err != nil {
			return err
		}
		if err := writeGrid(f, s.name, r.Positions, r.FlexuralStiffness, s.grid); err != nil {
			return fmt.Errorf("sheet %s: %w", s.name, err)
		}
	}

	return f.SaveAs(path)
}

func writeGrid(f *excelize.File, sheet string, positions, stiffness []float64, g *mat.Dense) error {
	header := make([]interface{}, 0, len(positions)+1)
	header = append(header, "EI \\ x")
	for _, x := range positions {
		header = append(header, x)
	}
	if err := f.SetSheetRow(sheet, "A1", &header); err != nil {
		return err
	}

	for i, ei := range stiffness {
		row := make([]interface{}, 0, len(positions)+1)
		row = append(row, ei)
		for j := range positions {
			row = append(row, g.At(i, j))
		}
		cell, err := excelize.CoordinatesToCellName(1, i+2)
		if err != nil {
			return err
		}
		if err := f.SetSheetRow(sheet, cell, &row); err != nil {
			return err
		}
	}

	return f.SetPanes(sheet, &excelize.Panes{
		Freeze:      true,
		XSplit:      1,
		YSplit:      1,
		TopLeftCell: "B2",
		ActivePane:  "bottomRight",
	})
}
