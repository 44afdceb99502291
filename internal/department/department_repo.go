package department

import (
	"context"
	"database/sql"

	"github.com/gnat1399/globant-data-engineering-challenge-gn/internal/reconcile"
	"github.com/gnat1399/globant-data-engineering-challenge-gn/internal/shared/connection"

	"gorm.io/gorm"
)

const bulkInsertSize = 500

//go:generate mockgen -source=department_repo.go -destination=mock/department_repo_mock.go -package=mock
type Repository interface {
	reconcile.Repository[Department]
	FindPage(ctx context.Context, offset, limit int) ([]Department, error)
}

type repository struct {
	db *gorm.DB
	tx *sql.Tx
}

func NewRepository(db *gorm.DB) Repository {
	return &repository{db: db}
}

func (r *repository) WithTx(tx *sql.Tx) reconcile.Repository[Department] {
	return &repository{
		db: r.db,
		tx: tx,
	}
}

func (r *repository) conn(ctx context.Context) *gorm.DB {
	return connection.WithTx(r.db, r.tx).WithContext(ctx)
}

func (r *repository) BulkCreate(ctx context.Context, depts []Department) error {
	return r.conn(ctx).CreateInBatches(&depts, bulkInsertSize).Error
}

func (r *repository) FindByID(ctx context.Context, id int64) (*Department, error) {
	var dept Department
	if err := r.conn(ctx).First(&dept, "id = ?", id).Error; err != nil {
		return nil, err
	}
	return &dept, nil
}

func (r *repository) Create(ctx context.Context, dept *Department) error {
	return r.conn(ctx).Create(dept).Error
}

func (r *repository) Update(ctx context.Context, dept *Department) error {
	return r.conn(ctx).Save(dept).Error
}

func (r *repository) Count(ctx context.Context) (int64, error) {
	var total int64
	err := r.conn(ctx).Model(&Department{}).Count(&total).Error
	return total, err
}

func (r *repository) FindPage(ctx context.Context, offset, limit int) ([]Department, error) {
	var depts []Department
	err := r.conn(ctx).
		Order("id").
		Offset(offset).
		Limit(limit).
		Find(&depts).Error
	return depts, err
}
