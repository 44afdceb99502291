package department

import "github.com/gnat1399/globant-data-engineering-challenge-gn/internal/reconcile"

var Kind = reconcile.Kind{
	Name:                 "departments",
	Table:                "departments",
	PrimaryKeyConstraint: "departments_pkey",
}

type Department struct {
	ID   int64  `gorm:"column:id;primaryKey;autoIncrement:false"`
	Name string `gorm:"column:department;size:255;not null"`
}

func (Department) TableName() string {
	return Kind.Table
}

func (d Department) PrimaryKey() int64 {
	return d.ID
}

// Replace overwrites every column of dst with src.
func Replace(dst *Department, src Department) {
	dst.ID = src.ID
	dst.Name = src.Name
}
