package report

import (
	"io"

	"github.com/xuri/excelize/v2"
)

const (
	QuarterlySheet    = "Quarterly Hires"
	AboveAverageSheet = "Above Average"
)

var (
	quarterlyHeaders    = []interface{}{"department", "job", "Q1", "Q2", "Q3", "Q4"}
	aboveAverageHeaders = []interface{}{"id", "department", "hired"}
)

func writeWorkbook(w io.Writer, quarterly []QuarterlyHires, above []DepartmentHires) error {
	f := excelize.NewFile()
	defer f.Close()

	if err := f.SetSheetName("Sheet1", QuarterlySheet); err != nil {
		return err
	}
	if _, err := f.NewSheet(AboveAverageSheet); err != nil {
		return err
	}

	bold, err := f.NewStyle(&excelize.Style{Font: &excelize.Font{Bold: true}})
	if err != nil {
		return err
	}

	if err := f.SetSheetRow(QuarterlySheet, "A1", &quarterlyHeaders); err != nil {
		return err
	}
	if err := f.SetCellStyle(QuarterlySheet, "A1", "F1", bold); err != nil {
		return err
	}
	for i, q := range quarterly {
		cell, _ := excelize.CoordinatesToCellName(1, i+2)
		row := []interface{}{q.Department, q.Job, q.Q1, q.Q2, q.Q3, q.Q4}
		if err := f.SetSheetRow(QuarterlySheet, cell, &row); err != nil {
			return err
		}
	}
	f.SetColWidth(QuarterlySheet, "A", "B", 28)

	if err := f.SetSheetRow(AboveAverageSheet, "A1", &aboveAverageHeaders); err != nil {
		return err
	}
	if err := f.SetCellStyle(AboveAverageSheet, "A1", "C1", bold); err != nil {
		return err
	}
	for i, d := range above {
		cell, _ := excelize.CoordinatesToCellName(1, i+2)
		row := []interface{}{d.ID, d.Department, d.Hired}
		if err := f.SetSheetRow(AboveAverageSheet, cell, &row); err != nil {
			return err
		}
	}
	f.SetColWidth(AboveAverageSheet, "B", "B", 28)

	return f.Write(w)
}
