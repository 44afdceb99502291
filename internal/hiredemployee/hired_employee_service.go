package hiredemployee

import (
	"context"
	"errors"
	"strconv"

	hiredemployeeerrors "github.com/gnat1399/globant-data-engineering-challenge-gn/internal/hiredemployee/errors"

	"gorm.io/gorm"
)

//go:generate mockgen -source=hired_employee_service.go -destination=mock/hired_employee_service_mock.go -package=mock
type Service interface {
	GetAll(ctx context.Context, filter ListFilter, page, pageSize int) ([]HiredEmployeeResponse, int64, error)
	GetByID(ctx context.Context, id string) (HiredEmployeeResponse, error)
}

type service struct {
	repo Repository
}

func NewService(repo Repository) Service {
	return &service{repo: repo}
}

func (s *service) GetAll(ctx context.Context, filter ListFilter, page, pageSize int) ([]HiredEmployeeResponse, int64, error) {
	total, err := s.repo.CountFiltered(ctx, filter)
	if err != nil {
		return nil, 0, err
	}
	if total == 0 {
		return []HiredEmployeeResponse{}, 0, nil
	}

	rows, err := s.repo.FindPage(ctx, filter, (page-1)*pageSize, pageSize)
	if err != nil {
		return nil, 0, err
	}

	return mapToListResponse(rows), total, nil
}

func (s *service) GetByID(ctx context.Context, id string) (HiredEmployeeResponse, error) {
	empID, err := strconv.ParseInt(id, 10, 64)
	if err != nil || empID <= 0 {
		return HiredEmployeeResponse{}, hiredemployeeerrors.ErrInvalidHiredEmployeeID
	}

	e, err := s.repo.FindByID(ctx, empID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return HiredEmployeeResponse{}, hiredemployeeerrors.ErrHiredEmployeeNotFound
		}
		return HiredEmployeeResponse{}, err
	}

	return mapToResponse(*e), nil
}
