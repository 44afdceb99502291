package ingest

import "encoding/json"

const (
	TableDepartments    = "departments"
	TableJobs           = "jobs"
	TableHiredEmployees = "hired_employees"
)

// Paths are csv files already stored on local disk.
type Paths struct {
	Departments    string
	Jobs           string
	HiredEmployees string
}

// FileResult reports one file or one table of a batch. Error holds the
// reason an input could not be loaded; the other inputs are still processed.
type FileResult struct {
	Source   string `json:"source,omitempty"`
	Rows     int    `json:"rows"`
	Skipped  int    `json:"skipped"`
	Inserted int    `json:"inserted"`
	Updated  int    `json:"updated"`
	Error    string `json:"error,omitempty"`
}

type Result struct {
	Departments    FileResult `json:"departments"`
	Jobs           FileResult `json:"jobs"`
	HiredEmployees FileResult `json:"hired_employees"`
}

type BatchRequest struct {
	Table string          `json:"table" binding:"required,oneof=departments jobs hired_employees"`
	Data  json.RawMessage `json:"data" binding:"required"`
}
