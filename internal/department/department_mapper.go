package department

import (
	"strconv"
	"strings"

	"github.com/gnat1399/globant-data-engineering-challenge-gn/internal/csvreader"
	"github.com/gnat1399/globant-data-engineering-challenge-gn/internal/shared/apperror"
)

// Columns is the positional layout of departments.csv.
var Columns = []string{"id", "department"}

func FromRow(row csvreader.Row) (Department, error) {
	rawID := row.Get("id")
	if rawID == "" {
		return Department{}, apperror.RequiredField("id")
	}
	id, err := strconv.ParseInt(rawID, 10, 64)
	if err != nil || id <= 0 {
		return Department{}, apperror.InvalidField("id")
	}

	name := row.Get("department")
	if name == "" {
		return Department{}, apperror.RequiredField("department")
	}

	return Department{ID: id, Name: name}, nil
}

func FromRecord(rec BatchRecord) Department {
	return Department{ID: rec.ID, Name: strings.TrimSpace(rec.Department)}
}

func mapToResponse(d Department) DepartmentResponse {
	return DepartmentResponse{ID: d.ID, Department: d.Name}
}

func mapToListResponse(depts []Department) []DepartmentResponse {
	out := make([]DepartmentResponse, 0, len(depts))
	for _, d := range depts {
		out = append(out, mapToResponse(d))
	}
	return out
}
