package job

import (
	"context"
	"errors"
	"strconv"

	joberrors "github.com/gnat1399/globant-data-engineering-challenge-gn/internal/job/errors"

	"gorm.io/gorm"
)

//go:generate mockgen -source=job_service.go -destination=mock/job_service_mock.go -package=mock
type Service interface {
	GetAll(ctx context.Context, page, pageSize int) ([]JobResponse, int64, error)
	GetByID(ctx context.Context, id string) (JobResponse, error)
}

type service struct {
	repo Repository
}

func NewService(repo Repository) Service {
	return &service{repo: repo}
}

func (s *service) GetAll(ctx context.Context, page, pageSize int) ([]JobResponse, int64, error) {
	total, err := s.repo.Count(ctx)
	if err != nil {
		return nil, 0, err
	}

	jobs, err := s.repo.FindPage(ctx, (page-1)*pageSize, pageSize)
	if err != nil {
		return nil, 0, err
	}

	return mapToListResponse(jobs), total, nil
}

func (s *service) GetByID(ctx context.Context, id string) (JobResponse, error) {
	jobID, err := strconv.ParseInt(id, 10, 64)
	if err != nil || jobID <= 0 {
		return JobResponse{}, joberrors.ErrInvalidJobID
	}

	j, err := s.repo.FindByID(ctx, jobID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return JobResponse{}, joberrors.ErrJobNotFound
		}
		return JobResponse{}, err
	}

	return mapToResponse(*j), nil
}
