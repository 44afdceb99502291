package department

import (
	"context"
	"strconv"

	departmenterrors "github.com/gnat1399/globant-data-engineering-challenge-gn/internal/department/errors"
)

//go:generate mockgen -source=department_service.go -destination=mock/department_service_mock.go -package=mock
type Service interface {
	GetAll(ctx context.Context, page, pageSize int) ([]DepartmentResponse, int64, error)
	GetByID(ctx context.Context, id string) (DepartmentResponse, error)
}

type service struct {
	repo Repository
}

func NewService(repo Repository) Service {
	return &service{repo: repo}
}

func (s *service) GetAll(ctx context.Context, page, pageSize int) ([]DepartmentResponse, int64, error) {
	total, err := s.repo.Count(ctx)
	if err != nil {
		return nil, 0, err
	}

	depts, err := s.repo.FindPage(ctx, (page-1)*pageSize, pageSize)
	if err != nil {
		return nil, 0, err
	}

	return mapToListResponse(depts), total, nil
}

func (s *service) GetByID(ctx context.Context, id string) (DepartmentResponse, error) {
	deptID, err := strconv.ParseInt(id, 10, 64)
	if err != nil || deptID <= 0 {
		return DepartmentResponse{}, departmenterrors.ErrInvalidDepartmentID
	}

	dept, err := s.repo.FindByID(ctx, deptID)
	if err != nil {
		return DepartmentResponse{}, mapRepositoryError(err)
	}

	return mapToResponse(*dept), nil
}
