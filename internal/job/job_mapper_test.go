package job_test

import (
	"testing"

	"github.com/gnat1399/globant-data-engineering-challenge-gn/internal/csvreader"
	"github.com/gnat1399/globant-data-engineering-challenge-gn/internal/job"
	"github.com/gnat1399/globant-data-engineering-challenge-gn/internal/shared/apperror"

	"github.com/stretchr/testify/assert"
)

func TestFromRow(t *testing.T) {
	tests := []struct {
		name    string
		fields  map[string]string
		want    job.Job
		wantErr error
	}{
		{"valid", map[string]string{"id": "1", "job": "Marketing Assistant"}, job.Job{ID: 1, Title: "Marketing Assistant"}, nil},
		{"missing id", map[string]string{"id": "", "job": "Engineer"}, job.Job{}, apperror.RequiredField("id")},
		{"negative id", map[string]string{"id": "-3", "job": "Engineer"}, job.Job{}, apperror.InvalidField("id")},
		{"missing title", map[string]string{"id": "9", "job": ""}, job.Job{}, apperror.RequiredField("job")},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := job.FromRow(csvreader.Row{Line: 1, Fields: tt.fields})
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				return
			}
			assert.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestReplace(t *testing.T) {
	dst := &job.Job{ID: 4, Title: "Analyst"}
	job.Replace(dst, job.Job{ID: 4, Title: "Senior Analyst"})
	assert.Equal(t, "Senior Analyst", dst.Title)
}
