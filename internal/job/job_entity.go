package job

import "github.com/gnat1399/globant-data-engineering-challenge-gn/internal/reconcile"

var Kind = reconcile.Kind{
	Name:                 "jobs",
	Table:                "jobs",
	PrimaryKeyConstraint: "jobs_pkey",
}

type Job struct {
	ID    int64  `gorm:"column:id;primaryKey;autoIncrement:false"`
	Title string `gorm:"column:job;size:255;not null"`
}

func (Job) TableName() string {
	return Kind.Table
}

func (j Job) PrimaryKey() int64 {
	return j.ID
}

func Replace(dst *Job, src Job) {
	dst.ID = src.ID
	dst.Title = src.Title
}
