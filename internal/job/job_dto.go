package job

type BatchRecord struct {
	ID  int64  `json:"id" validate:"required,gt=0"`
	Job string `json:"job" validate:"required"`
}

type JobResponse struct {
	ID  int64  `json:"id"`
	Job string `json:"job"`
}
