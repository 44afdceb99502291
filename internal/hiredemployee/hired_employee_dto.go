package hiredemployee

// BatchRecord is one hire in a JSON batch insert. HireDatetime uses the
// external YYYY-MM-DDTHH:MM:SSZ format.
type BatchRecord struct {
	ID           int64  `json:"id" validate:"required,gt=0"`
	Name         string `json:"name" validate:"required"`
	HireDatetime string `json:"hire_datetime"`
	DepartmentID int64  `json:"department_id" validate:"required,gt=0"`
	JobID        *int64 `json:"job_id" validate:"omitempty,gt=0"`
}

type ListFilter struct {
	DepartmentID *int64
	JobID        *int64
}

type HiredEmployeeResponse struct {
	ID           int64   `json:"id"`
	Name         string  `json:"name"`
	HireDatetime *string `json:"hire_datetime"`
	DepartmentID int64   `json:"department_id"`
	JobID        *int64  `json:"job_id"`
}
