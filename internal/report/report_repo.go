package report

import (
	"context"

	sq "github.com/Masterminds/squirrel"
	"gorm.io/gorm"
)

//go:generate mockgen -source=report_repo.go -destination=mock/report_repo_mock.go -package=mock
type Repository interface {
	HiresByMonth(ctx context.Context, year int) ([]MonthlyHires, error)
	HiresByDepartment(ctx context.Context, year int) ([]DepartmentHires, error)
}

type repository struct {
	db *gorm.DB
}

func NewRepository(db *gorm.DB) Repository {
	return &repository{db: db}
}

func hiredInYear(year int) sq.Sqlizer {
	return sq.Expr("EXTRACT(YEAR FROM he.hire_datetime) = ?", year)
}

func (r *repository) HiresByMonth(ctx context.Context, year int) ([]MonthlyHires, error) {
	psql := sq.StatementBuilder.PlaceholderFormat(sq.Dollar)
	query, args, err := psql.
		Select(
			"d.department",
			"j.job",
			"CAST(EXTRACT(MONTH FROM he.hire_datetime) AS INTEGER) AS month",
			"COUNT(*) AS hired",
		).
		From("hired_employees he").
		Join("departments d ON d.id = he.department_id").
		Join("jobs j ON j.id = he.job_id").
		Where(hiredInYear(year)).
		GroupBy("d.department", "j.job", "month").
		ToSql()
	if err != nil {
		return nil, err
	}

	var rows []MonthlyHires
	if err := r.db.WithContext(ctx).Raw(query, args...).Scan(&rows).Error; err != nil {
		return nil, err
	}
	return rows, nil
}

func (r *repository) HiresByDepartment(ctx context.Context, year int) ([]DepartmentHires, error) {
	psql := sq.StatementBuilder.PlaceholderFormat(sq.Dollar)
	query, args, err := psql.
		Select("d.id", "d.department", "COUNT(*) AS hired").
		From("hired_employees he").
		Join("departments d ON d.id = he.department_id").
		Where(hiredInYear(year)).
		GroupBy("d.id", "d.department").
		ToSql()
	if err != nil {
		return nil, err
	}

	var rows []DepartmentHires
	if err := r.db.WithContext(ctx).Raw(query, args...).Scan(&rows).Error; err != nil {
		return nil, err
	}
	return rows, nil
}
