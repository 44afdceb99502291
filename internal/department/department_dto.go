package department

// BatchRecord is one department in a JSON batch insert.
type BatchRecord struct {
	ID         int64  `json:"id" validate:"required,gt=0"`
	Department string `json:"department" validate:"required"`
}

type DepartmentResponse struct {
	ID         int64  `json:"id"`
	Department string `json:"department"`
}
