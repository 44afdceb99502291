package job

import (
	"context"
	"database/sql"

	"github.com/gnat1399/globant-data-engineering-challenge-gn/internal/reconcile"
	"github.com/gnat1399/globant-data-engineering-challenge-gn/internal/shared/connection"

	"gorm.io/gorm"
)

const bulkInsertSize = 500

//go:generate mockgen -source=job_repo.go -destination=mock/job_repo_mock.go -package=mock
type Repository interface {
	reconcile.Repository[Job]
	FindPage(ctx context.Context, offset, limit int) ([]Job, error)
}

type repository struct {
	db *gorm.DB
	tx *sql.Tx
}

func NewRepository(db *gorm.DB) Repository {
	return &repository{db: db}
}

func (r *repository) WithTx(tx *sql.Tx) reconcile.Repository[Job] {
	return &repository{db: r.db, tx: tx}
}

func (r *repository) conn(ctx context.Context) *gorm.DB {
	return connection.WithTx(r.db, r.tx).WithContext(ctx)
}

func (r *repository) BulkCreate(ctx context.Context, jobs []Job) error {
	return r.conn(ctx).CreateInBatches(&jobs, bulkInsertSize).Error
}

func (r *repository) FindByID(ctx context.Context, id int64) (*Job, error) {
	var j Job
	if err := r.conn(ctx).First(&j, "id = ?", id).Error; err != nil {
		return nil, err
	}
	return &j, nil
}

func (r *repository) Create(ctx context.Context, j *Job) error {
	return r.conn(ctx).Create(j).Error
}

func (r *repository) Update(ctx context.Context, j *Job) error {
	return r.conn(ctx).Save(j).Error
}

func (r *repository) Count(ctx context.Context) (int64, error) {
	var total int64
	err := r.conn(ctx).Model(&Job{}).Count(&total).Error
	return total, err
}

func (r *repository) FindPage(ctx context.Context, offset, limit int) ([]Job, error) {
	var jobs []Job
	err := r.conn(ctx).Order("id").Offset(offset).Limit(limit).Find(&jobs).Error
	return jobs, err
}
