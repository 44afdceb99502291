package job_test

import (
	"context"
	"errors"
	"testing"

	"github.com/gnat1399/globant-data-engineering-challenge-gn/internal/job"
	joberrors "github.com/gnat1399/globant-data-engineering-challenge-gn/internal/job/errors"
	jobMock "github.com/gnat1399/globant-data-engineering-challenge-gn/internal/job/mock"

	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"
	"gorm.io/gorm"
)

func TestJobService_GetAll(t *testing.T) {
	ctrl := gomock.NewController(t)
	repo := jobMock.NewMockRepository(ctrl)
	svc := job.NewService(repo)

	repo.EXPECT().Count(gomock.Any()).Return(int64(2), nil)
	repo.EXPECT().FindPage(gomock.Any(), 0, 10).Return([]job.Job{{ID: 1, Title: "A"}, {ID: 2, Title: "B"}}, nil)

	resp, total, err := svc.GetAll(context.Background(), 1, 10)

	assert.NoError(t, err)
	assert.Equal(t, int64(2), total)
	assert.Equal(t, []job.JobResponse{{ID: 1, Job: "A"}, {ID: 2, Job: "B"}}, resp)
}

func TestJobService_GetByID(t *testing.T) {
	tests := []struct {
		name    string
		id      string
		setup   func(repo *jobMock.MockRepository)
		want    job.JobResponse
		wantErr error
	}{
		{
			name: "found",
			id:   "5",
			setup: func(repo *jobMock.MockRepository) {
				repo.EXPECT().FindByID(gomock.Any(), int64(5)).Return(&job.Job{ID: 5, Title: "Recruiter"}, nil)
			},
			want: job.JobResponse{ID: 5, Job: "Recruiter"},
		},
		{
			name:    "invalid id",
			id:      "five",
			setup:   func(*jobMock.MockRepository) {},
			wantErr: joberrors.ErrInvalidJobID,
		},
		{
			name: "not found",
			id:   "6",
			setup: func(repo *jobMock.MockRepository) {
				repo.EXPECT().FindByID(gomock.Any(), int64(6)).Return(nil, gorm.ErrRecordNotFound)
			},
			wantErr: joberrors.ErrJobNotFound,
		},
		{
			name: "store failure passes through",
			id:   "7",
			setup: func(repo *jobMock.MockRepository) {
				repo.EXPECT().FindByID(gomock.Any(), int64(7)).Return(nil, errors.New("timeout"))
			},
			wantErr: errors.New("timeout"),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			repo := jobMock.NewMockRepository(ctrl)
			tt.setup(repo)

			got, err := job.NewService(repo).GetByID(context.Background(), tt.id)
			if tt.wantErr != nil {
				assert.EqualError(t, err, tt.wantErr.Error())
				return
			}
			assert.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}
