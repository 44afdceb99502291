package report

// MonthlyHires is one aggregate row of hires per department, job and month.
type MonthlyHires struct {
	Department string `gorm:"column:department"`
	Job        string `gorm:"column:job"`
	Month      int    `gorm:"column:month"`
	Hired      int64  `gorm:"column:hired"`
}

type QuarterlyHires struct {
	Department string `json:"department"`
	Job        string `json:"job"`
	Q1         int64  `json:"Q1"`
	Q2         int64  `json:"Q2"`
	Q3         int64  `json:"Q3"`
	Q4         int64  `json:"Q4"`
}

type DepartmentHires struct {
	ID         int64  `json:"id" gorm:"column:id"`
	Department string `json:"department" gorm:"column:department"`
	Hired      int64  `json:"hired" gorm:"column:hired"`
}
