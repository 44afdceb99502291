package hiredemployee

import (
	"strconv"
	"strings"
	"time"

	"github.com/gnat1399/globant-data-engineering-challenge-gn/internal/csvreader"
	"github.com/gnat1399/globant-data-engineering-challenge-gn/internal/hiredate"
	"github.com/gnat1399/globant-data-engineering-challenge-gn/internal/shared/apperror"
)

// Columns is the positional layout of hired_employees.csv.
var Columns = []string{"id", "name", "hire_datetime", "department_id", "job_id"}

// DateColumn is normalized by the csv reader before FromRow sees it.
const DateColumn = "hire_datetime"

// FromRow validates one csv row. An empty hire_datetime yields a nil
// HireDatetime; whether such a record is kept is the caller's decision.
func FromRow(row csvreader.Row) (HiredEmployee, error) {
	id, err := requiredID(row.Get("id"), "id")
	if err != nil {
		return HiredEmployee{}, err
	}

	name := row.Get("name")
	if name == "" {
		return HiredEmployee{}, apperror.RequiredField("name")
	}

	hired, err := canonicalDate(row.Get(DateColumn))
	if err != nil {
		return HiredEmployee{}, err
	}

	deptID, err := requiredID(row.Get("department_id"), "department_id")
	if err != nil {
		return HiredEmployee{}, err
	}

	var jobID *int64
	if raw := row.Get("job_id"); raw != "" {
		id, err := requiredID(raw, "job_id")
		if err != nil {
			return HiredEmployee{}, err
		}
		jobID = &id
	}

	return HiredEmployee{
		ID:           id,
		Name:         name,
		HireDatetime: hired,
		DepartmentID: deptID,
		JobID:        jobID,
	}, nil
}

// FromRecord converts a JSON batch record, normalizing its external date.
func FromRecord(rec BatchRecord, dates csvreader.DateNormalizer) (HiredEmployee, error) {
	var hired *time.Time
	if raw := strings.TrimSpace(rec.HireDatetime); raw != "" {
		if canonical, ok := dates.Normalize(raw, DateColumn); ok {
			t, err := canonicalDate(canonical)
			if err != nil {
				return HiredEmployee{}, err
			}
			hired = t
		}
	}

	return HiredEmployee{
		ID:           rec.ID,
		Name:         strings.TrimSpace(rec.Name),
		HireDatetime: hired,
		DepartmentID: rec.DepartmentID,
		JobID:        rec.JobID,
	}, nil
}

func requiredID(raw, field string) (int64, error) {
	if raw == "" {
		return 0, apperror.RequiredField(field)
	}
	id, err := strconv.ParseInt(raw, 10, 64)
	if err != nil || id <= 0 {
		return 0, apperror.InvalidField(field)
	}
	return id, nil
}

func canonicalDate(value string) (*time.Time, error) {
	if value == "" {
		return nil, nil
	}
	t, err := hiredate.Parse(value)
	if err != nil {
		return nil, apperror.InvalidField(DateColumn)
	}
	return &t, nil
}

func mapToResponse(e HiredEmployee) HiredEmployeeResponse {
	resp := HiredEmployeeResponse{
		ID:           e.ID,
		Name:         e.Name,
		DepartmentID: e.DepartmentID,
		JobID:        e.JobID,
	}
	if e.HireDatetime != nil {
		s := e.HireDatetime.Format(hiredate.CanonicalLayout)
		resp.HireDatetime = &s
	}
	return resp
}

func mapToListResponse(rows []HiredEmployee) []HiredEmployeeResponse {
	out := make([]HiredEmployeeResponse, 0, len(rows))
	for _, e := range rows {
		out = append(out, mapToResponse(e))
	}
	return out
}
