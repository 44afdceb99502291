package hiredemployee

import (
	"time"

	"github.com/gnat1399/globant-data-engineering-challenge-gn/internal/reconcile"
)

var Kind = reconcile.Kind{
	Name:                 "hired_employees",
	Table:                "hired_employees",
	PrimaryKeyConstraint: "hired_employees_pkey",
}

// HiredEmployee references departments and jobs by id only; the references
// are not checked when rows are loaded.
type HiredEmployee struct {
	ID           int64      `gorm:"column:id;primaryKey;autoIncrement:false"`
	Name         string     `gorm:"column:name;size:255;not null"`
	HireDatetime *time.Time `gorm:"column:hire_datetime"`
	DepartmentID int64      `gorm:"column:department_id;not null"`
	JobID        *int64     `gorm:"column:job_id"`
}

func (HiredEmployee) TableName() string {
	return Kind.Table
}

func (e HiredEmployee) PrimaryKey() int64 {
	return e.ID
}

// Replace overwrites every column of dst with src, including NULLs.
func Replace(dst *HiredEmployee, src HiredEmployee) {
	dst.ID = src.ID
	dst.Name = src.Name
	dst.HireDatetime = src.HireDatetime
	dst.DepartmentID = src.DepartmentID
	dst.JobID = src.JobID
}
