package hiredemployee

import (
	"context"
	"database/sql"

	"github.com/gnat1399/globant-data-engineering-challenge-gn/internal/reconcile"
	"github.com/gnat1399/globant-data-engineering-challenge-gn/internal/shared/connection"

	"gorm.io/gorm"
)

// Postgres caps bind parameters at 65535; five columns per row.
const bulkInsertSize = 1000

//go:generate mockgen -source=hired_employee_repo.go -destination=mock/hired_employee_repo_mock.go -package=mock
type Repository interface {
	reconcile.Repository[HiredEmployee]
	CountFiltered(ctx context.Context, filter ListFilter) (int64, error)
	FindPage(ctx context.Context, filter ListFilter, offset, limit int) ([]HiredEmployee, error)
}

type repository struct {
	db *gorm.DB
	tx *sql.Tx
}

func NewRepository(db *gorm.DB) Repository {
	return &repository{db: db}
}

func (r *repository) WithTx(tx *sql.Tx) reconcile.Repository[HiredEmployee] {
	return &repository{db: r.db, tx: tx}
}

func (r *repository) conn(ctx context.Context) *gorm.DB {
	return connection.WithTx(r.db, r.tx).WithContext(ctx)
}

func (r *repository) BulkCreate(ctx context.Context, rows []HiredEmployee) error {
	return r.conn(ctx).CreateInBatches(&rows, bulkInsertSize).Error
}

func (r *repository) FindByID(ctx context.Context, id int64) (*HiredEmployee, error) {
	var e HiredEmployee
	if err := r.conn(ctx).First(&e, "id = ?", id).Error; err != nil {
		return nil, err
	}
	return &e, nil
}

func (r *repository) Create(ctx context.Context, e *HiredEmployee) error {
	return r.conn(ctx).Create(e).Error
}

// Update writes every column, so a NULL hire_datetime or job_id replaces a stored value.
func (r *repository) Update(ctx context.Context, e *HiredEmployee) error {
	return r.conn(ctx).Save(e).Error
}

func (r *repository) Count(ctx context.Context) (int64, error) {
	return r.CountFiltered(ctx, ListFilter{})
}

func (r *repository) CountFiltered(ctx context.Context, filter ListFilter) (int64, error) {
	var total int64
	err := r.conn(ctx).Model(&HiredEmployee{}).Scopes(filterScope(filter)).Count(&total).Error
	return total, err
}

func (r *repository) FindPage(ctx context.Context, filter ListFilter, offset, limit int) ([]HiredEmployee, error) {
	var rows []HiredEmployee
	err := r.conn(ctx).
		Scopes(filterScope(filter)).
		Order("id").
		Offset(offset).
		Limit(limit).
		Find(&rows).Error
	return rows, err
}

func filterScope(filter ListFilter) func(*gorm.DB) *gorm.DB {
	return func(db *gorm.DB) *gorm.DB {
		if filter.DepartmentID != nil {
			db = db.Where("department_id = ?", *filter.DepartmentID)
		}
		if filter.JobID != nil {
			db = db.Where("job_id = ?", *filter.JobID)
		}
		return db
	}
}
