package job

import (
	"strconv"
	"strings"

	"github.com/gnat1399/globant-data-engineering-challenge-gn/internal/csvreader"
	"github.com/gnat1399/globant-data-engineering-challenge-gn/internal/shared/apperror"
)

// Columns is the positional layout of jobs.csv.
var Columns = []string{"id", "job"}

func FromRow(row csvreader.Row) (Job, error) {
	rawID := row.Get("id")
	if rawID == "" {
		return Job{}, apperror.RequiredField("id")
	}
	id, err := strconv.ParseInt(rawID, 10, 64)
	if err != nil || id <= 0 {
		return Job{}, apperror.InvalidField("id")
	}

	title := row.Get("job")
	if title == "" {
		return Job{}, apperror.RequiredField("job")
	}

	return Job{ID: id, Title: title}, nil
}

func FromRecord(rec BatchRecord) Job {
	return Job{ID: rec.ID, Title: strings.TrimSpace(rec.Job)}
}

func mapToResponse(j Job) JobResponse {
	return JobResponse{ID: j.ID, Job: j.Title}
}

func mapToListResponse(jobs []Job) []JobResponse {
	out := make([]JobResponse, 0, len(jobs))
	for _, j := range jobs {
		out = append(out, mapToResponse(j))
	}
	return out
}
