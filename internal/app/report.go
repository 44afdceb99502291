package app

import (
	"context"

	"github.com/gnat1399/globant-data-engineering-challenge-gn/internal/config"
	"github.com/gnat1399/globant-data-engineering-challenge-gn/internal/report"

	"go.uber.org/zap"
)

// Reports computes both reports for year straight from the database.
func Reports(ctx context.Context, cfg config.Config, year int, logger *zap.Logger) ([]report.QuarterlyHires, []report.DepartmentHires, error) {
	cfg.RedisAddr = ""
	deps, err := connect(ctx, cfg, logger)
	if err != nil {
		return nil, nil, err
	}
	defer deps.Close()

	svc := newReportService(deps.gormDB, nil, 0, logger)

	quarterly, err := svc.QuarterlyHires(ctx, year)
	if err != nil {
		return nil, nil, err
	}
	above, err := svc.DepartmentsAboveAverage(ctx, year)
	if err != nil {
		return nil, nil, err
	}
	return quarterly, above, nil
}
