// Package export writes batch analysis results as spreadsheets.
package export

import (
	"fmt"
	"io"

	"github.com/jonathan/candidate-screener/internal/analysis"
	"github.com/xuri/excelize/v2"
)

// SheetName is the worksheet holding batch results.
const SheetName = "Candidates"

var headers = []string{
	"File",
	"Name",
	"Email",
	"Phone",
	"Overall",
	"Technical",
	"Experience",
	"Education",
	"Cultural Fit",
	"Error",
}

// WriteBatchXLSX writes one row per result in input order. Score columns are
// left blank for results without a score.
func WriteBatchXLSX(w io.Writer, results []analysis.BatchResult) error {
	f := excelize.NewFile()
	defer f.Close()

	if err := f.SetSheetName("Sheet1", SheetName); err != nil {
		return fmt.Errorf("xlsx sheet: %w", err)
	}

	for i, h := range headers {
		cell, _ := excelize.CoordinatesToCellName(i+1, 1)
		_ = f.SetCellValue(SheetName, cell, h)
	}

	for i, r := range results {
		row := i + 2
		write := func(col int, v any) {
			cell, _ := excelize.CoordinatesToCellName(col, row)
			_ = f.SetCellValue(SheetName, cell, v)
		}

		write(1, r.Filename)
		if a := r.Analysis; a != nil {
			write(2, a.Profile.Name)
			write(3, a.Profile.Email)
			write(4, a.Profile.Phone)
			if s := a.Score; s != nil {
				write(5, s.OverallScore)
				write(6, s.Components.TechnicalSkills.Score)
				write(7, s.Components.Experience.Score)
				write(8, s.Components.Education.Score)
				write(9, s.Components.CulturalFit.Score)
			}
		}
		if r.Error != "" {
			write(10, r.Error)
		}
	}

	_ = f.SetColWidth(SheetName, "A", "A", 28) // file
	_ = f.SetColWidth(SheetName, "B", "B", 24) // name
	_ = f.SetColWidth(SheetName, "C", "D", 26) // contact
	_ = f.SetColWidth(SheetName, "E", "I", 12) // scores
	_ = f.SetColWidth(SheetName, "J", "J", 48) // error
	_ = f.SetPanes(SheetName, &excelize.Panes{Freeze: true, YSplit: 1, TopLeftCell: "A2", ActivePane: "bottomLeft"})

	if err := f.Write(w); err != nil {
		return fmt.Errorf("xlsx write: %w", err)
	}
	return nil
}
