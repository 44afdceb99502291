package main

import (
	"encoding/json"
	"fmt"
	"io"
	"strconv"

	"github.com/gnat1399/globant-data-engineering-challenge-gn/internal/report"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
)

var (
	titleStyle  = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("12"))
	headerStyle = lipgloss.NewStyle().Bold(true).Padding(0, 1)
	cellStyle   = lipgloss.NewStyle().Padding(0, 1)
)

type output struct {
	Year                    int                      `json:"year"`
	QuarterlyHires          []report.QuarterlyHires  `json:"quarterly_hires"`
	DepartmentsAboveAverage []report.DepartmentHires `json:"departments_above_average"`
}

func writeJSON(w io.Writer, year int, quarterly []report.QuarterlyHires, above []report.DepartmentHires) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(output{Year: year, QuarterlyHires: quarterly, DepartmentsAboveAverage: above})
}

func newTable(headers ...string) *table.Table {
	return table.New().
		Border(lipgloss.NormalBorder()).
		Headers(headers...).
		StyleFunc(func(row, _ int) lipgloss.Style {
			if row == table.HeaderRow {
				return headerStyle
			}
			return cellStyle
		})
}

func writeTables(w io.Writer, year int, quarterly []report.QuarterlyHires, above []report.DepartmentHires) error {
	qt := newTable("department", "job", "Q1", "Q2", "Q3", "Q4")
	for _, q := range quarterly {
		qt.Row(q.Department, q.Job, itoa(q.Q1), itoa(q.Q2), itoa(q.Q3), itoa(q.Q4))
	}

	at := newTable("id", "department", "hired")
	for _, d := range above {
		at.Row(itoa(d.ID), d.Department, itoa(d.Hired))
	}

	_, err := fmt.Fprintf(w, "%s\n%s\n\n%s\n%s\n",
		titleStyle.Render(fmt.Sprintf("Hires per job and department by quarter, %d", year)),
		qt.String(),
		titleStyle.Render(fmt.Sprintf("Departments hiring above the %d mean", year)),
		at.String(),
	)
	return err
}

func itoa(n int64) string {
	return strconv.FormatInt(n, 10)
}
