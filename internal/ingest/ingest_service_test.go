package ingest_test

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"os"
	"path/filepath"
	"testing"

	"github.com/gnat1399/globant-data-engineering-challenge-gn/internal/config"
	"github.com/gnat1399/globant-data-engineering-challenge-gn/internal/csvreader"
	"github.com/gnat1399/globant-data-engineering-challenge-gn/internal/department"
	"github.com/gnat1399/globant-data-engineering-challenge-gn/internal/hiredate"
	"github.com/gnat1399/globant-data-engineering-challenge-gn/internal/hiredemployee"
	"github.com/gnat1399/globant-data-engineering-challenge-gn/internal/ingest"
	ingestMock "github.com/gnat1399/globant-data-engineering-challenge-gn/internal/ingest/mock"
	"github.com/gnat1399/globant-data-engineering-challenge-gn/internal/job"
	"github.com/gnat1399/globant-data-engineering-challenge-gn/internal/reconcile"
	"github.com/gnat1399/globant-data-engineering-challenge-gn/internal/shared/apperror"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
	"go.uber.org/zap"
)

type serviceDeps struct {
	depts *ingestMock.MockWriter[department.Department]
	jobs  *ingestMock.MockWriter[job.Job]
	hires *ingestMock.MockWriter[hiredemployee.HiredEmployee]
	cache *ingestMock.MockCacheInvalidator
}

func setupService(t *testing.T, policy config.DatePolicy) (ingest.Service, *serviceDeps) {
	ctrl := gomock.NewController(t)
	deps := &serviceDeps{
		depts: ingestMock.NewMockWriter[department.Department](ctrl),
		jobs:  ingestMock.NewMockWriter[job.Job](ctrl),
		hires: ingestMock.NewMockWriter[hiredemployee.HiredEmployee](ctrl),
		cache: ingestMock.NewMockCacheInvalidator(ctrl),
	}

	dates := hiredate.NewNormalizer(zap.NewNop())
	svc := ingest.NewService(
		csvreader.NewReader(dates, zap.NewNop()),
		dates,
		ingest.Writers{Departments: deps.depts, Jobs: deps.jobs, HiredEmployees: deps.hires},
		deps.cache,
		policy,
		zap.NewNop(),
	)
	return svc, deps
}

func writeFile(t *testing.T, dir, name, content string) string {
	t.Helper()
	p := filepath.Join(dir, name)
	require.NoError(t, os.WriteFile(p, []byte(content), 0o600))
	return p
}

func samplePaths(t *testing.T) ingest.Paths {
	dir := t.TempDir()
	return ingest.Paths{
		Departments: writeFile(t, dir, "departments.csv", "1,Product Management\n2,Sales\nx,Broken\n"),
		Jobs:        writeFile(t, dir, "jobs.csv", "1,Marketing Assistant\n2,VP Sales\n"),
		HiredEmployees: writeFile(t, dir, "hired_employees.csv",
			"1,Harold Vogt,2021-11-07T02:48:42Z,2,96\n"+
				"2,Ty Hofer,2021-05-30T05:43:46Z,8,\n"+
				"3,Lyman Hadye,not-a-date,5,52\n"+
				"4,,2021-01-01T00:00:00Z,5,52\n"),
	}
}

func TestIngest_DropPolicy(t *testing.T) {
	svc, deps := setupService(t, config.DatePolicyDrop)

	gomock.InOrder(
		deps.depts.EXPECT().Reconcile(gomock.Any(), []department.Department{
			{ID: 1, Name: "Product Management"},
			{ID: 2, Name: "Sales"},
		}).Return(reconcile.Result{Inserted: 2}, nil),
		deps.jobs.EXPECT().Reconcile(gomock.Any(), gomock.Len(2)).Return(reconcile.Result{Inserted: 1, Updated: 1}, nil),
		deps.hires.EXPECT().Reconcile(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, recs []hiredemployee.HiredEmployee) (reconcile.Result, error) {
				require.Len(t, recs, 2)
				assert.Equal(t, int64(1), recs[0].ID)
				assert.Nil(t, recs[1].JobID)
				return reconcile.Result{Inserted: 2}, nil
			}),
	)
	deps.cache.EXPECT().Invalidate(gomock.Any()).Return(nil)

	res, err := svc.Ingest(context.Background(), samplePaths(t))

	require.NoError(t, err)
	assert.Equal(t, 3, res.Departments.Rows)
	assert.Equal(t, 1, res.Departments.Skipped)
	assert.Equal(t, 2, res.Departments.Inserted)
	assert.Equal(t, 1, res.Jobs.Updated)
	assert.Equal(t, 4, res.HiredEmployees.Rows)
	assert.Equal(t, 2, res.HiredEmployees.Skipped)
}

func TestIngest_NullPolicyKeepsUndatedRows(t *testing.T) {
	svc, deps := setupService(t, config.DatePolicyNull)

	deps.depts.EXPECT().Reconcile(gomock.Any(), gomock.Any()).Return(reconcile.Result{}, nil)
	deps.jobs.EXPECT().Reconcile(gomock.Any(), gomock.Any()).Return(reconcile.Result{}, nil)
	deps.hires.EXPECT().Reconcile(gomock.Any(), gomock.Any()).DoAndReturn(
		func(_ context.Context, recs []hiredemployee.HiredEmployee) (reconcile.Result, error) {
			require.Len(t, recs, 3)
			assert.Nil(t, recs[2].HireDatetime)
			return reconcile.Result{Inserted: 3}, nil
		})
	deps.cache.EXPECT().Invalidate(gomock.Any()).Return(nil)

	res, err := svc.Ingest(context.Background(), samplePaths(t))

	require.NoError(t, err)
	assert.Equal(t, 1, res.HiredEmployees.Skipped)
}

func TestIngest_UnloadableFileDoesNotStopOthers(t *testing.T) {
	svc, deps := setupService(t, config.DatePolicyDrop)
	paths := samplePaths(t)
	paths.Departments = filepath.Join(t.TempDir(), "missing.csv")
	paths.Jobs = writeFile(t, t.TempDir(), "jobs.csv", "\n\n")

	deps.hires.EXPECT().Reconcile(gomock.Any(), gomock.Any()).Return(reconcile.Result{Inserted: 2}, nil)
	deps.cache.EXPECT().Invalidate(gomock.Any()).Return(nil)

	res, err := svc.Ingest(context.Background(), paths)

	require.NoError(t, err)
	assert.Equal(t, "could not load: file not found", res.Departments.Error)
	assert.Equal(t, "could not load: file has no data rows", res.Jobs.Error)
	assert.Equal(t, 2, res.HiredEmployees.Inserted)
}

func TestIngest_ReconcileFailureIsFatal(t *testing.T) {
	svc, deps := setupService(t, config.DatePolicyDrop)
	boom := errors.New("connection refused")

	deps.depts.EXPECT().Reconcile(gomock.Any(), gomock.Any()).Return(reconcile.Result{Inserted: 2}, nil)
	deps.jobs.EXPECT().Reconcile(gomock.Any(), gomock.Any()).Return(reconcile.Result{}, boom)
	deps.cache.EXPECT().Invalidate(gomock.Any()).Return(errors.New("redis down"))

	res, err := svc.Ingest(context.Background(), samplePaths(t))

	assert.ErrorIs(t, err, boom)
	assert.Contains(t, err.Error(), "reconcile jobs")
	assert.Equal(t, 2, res.Departments.Inserted)
}

func TestIngest_NoChangesSkipsInvalidation(t *testing.T) {
	svc, deps := setupService(t, config.DatePolicyDrop)

	deps.depts.EXPECT().Reconcile(gomock.Any(), gomock.Any()).Return(reconcile.Result{}, nil)
	deps.jobs.EXPECT().Reconcile(gomock.Any(), gomock.Any()).Return(reconcile.Result{}, nil)
	deps.hires.EXPECT().Reconcile(gomock.Any(), gomock.Any()).Return(reconcile.Result{}, nil)

	_, err := svc.Ingest(context.Background(), samplePaths(t))
	assert.NoError(t, err)
}

func TestInsertBatch(t *testing.T) {
	t.Run("groups records by table", func(t *testing.T) {
		svc, deps := setupService(t, config.DatePolicyDrop)

		deps.depts.EXPECT().Reconcile(gomock.Any(), []department.Department{{ID: 9, Name: "Legal"}}).
			Return(reconcile.Result{Inserted: 1}, nil)
		deps.jobs.EXPECT().Reconcile(gomock.Any(), gomock.Len(0)).Return(reconcile.Result{}, nil)
		deps.hires.EXPECT().Reconcile(gomock.Any(), gomock.Len(1)).Return(reconcile.Result{Updated: 1}, nil)
		deps.cache.EXPECT().Invalidate(gomock.Any()).Return(nil)

		res, err := svc.InsertBatch(context.Background(), []ingest.BatchRequest{
			{Table: "departments", Data: json.RawMessage(`[{"id":9,"department":"Legal"}]`)},
			{Table: "hired_employees", Data: json.RawMessage(`[
				{"id":1,"name":"Ann","hire_datetime":"2021-02-15T10:00:00Z","department_id":9},
				{"id":2,"name":"Bob","hire_datetime":"garbage","department_id":9}
			]`)},
		})

		require.NoError(t, err)
		assert.Equal(t, 1, res.Departments.Inserted)
		assert.Equal(t, 2, res.HiredEmployees.Rows)
		assert.Equal(t, 1, res.HiredEmployees.Skipped)
		assert.Equal(t, 1, res.HiredEmployees.Updated)
	})

	t.Run("unknown table", func(t *testing.T) {
		svc, _ := setupService(t, config.DatePolicyDrop)

		_, err := svc.InsertBatch(context.Background(), []ingest.BatchRequest{
			{Table: "payroll", Data: json.RawMessage(`[]`)},
		})

		assert.ErrorIs(t, err, ingest.ErrUnknownTable)
		assert.Equal(t, http.StatusBadRequest, apperror.ToHTTP(err).Status)
	})

	t.Run("invalid record rejects the whole batch", func(t *testing.T) {
		svc, _ := setupService(t, config.DatePolicyDrop)

		_, err := svc.InsertBatch(context.Background(), []ingest.BatchRequest{
			{Table: "jobs", Data: json.RawMessage(`[{"id":1,"job":"A"},{"id":2}]`)},
		})

		httpErr := apperror.ToHTTP(err)
		assert.Equal(t, http.StatusBadRequest, httpErr.Status)
		assert.Equal(t, "batch item 0: Job is required", httpErr.Message)
	})

	t.Run("data is not a list", func(t *testing.T) {
		svc, _ := setupService(t, config.DatePolicyDrop)

		_, err := svc.InsertBatch(context.Background(), []ingest.BatchRequest{
			{Table: "departments", Data: json.RawMessage(`{"id":1}`)},
		})

		assert.Equal(t, http.StatusBadRequest, apperror.ToHTTP(err).Status)
	})
}
