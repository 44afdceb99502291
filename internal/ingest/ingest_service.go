// Package ingest loads the departments, jobs and hired employees inputs and
// hands each batch to its reconciler.
package ingest

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"reflect"
	"strings"

	"github.com/gnat1399/globant-data-engineering-challenge-gn/internal/config"
	"github.com/gnat1399/globant-data-engineering-challenge-gn/internal/csvreader"
	"github.com/gnat1399/globant-data-engineering-challenge-gn/internal/department"
	"github.com/gnat1399/globant-data-engineering-challenge-gn/internal/hiredemployee"
	"github.com/gnat1399/globant-data-engineering-challenge-gn/internal/job"
	"github.com/gnat1399/globant-data-engineering-challenge-gn/internal/reconcile"
	"github.com/gnat1399/globant-data-engineering-challenge-gn/internal/shared/apperror"
	"github.com/gnat1399/globant-data-engineering-challenge-gn/internal/shared/contextutil"

	"github.com/go-playground/validator/v10"
	"go.uber.org/zap"
)

var ErrUnknownTable = apperror.New(
	apperror.CodeInvalidInput,
	"table must be one of: departments, jobs, hired_employees",
	http.StatusBadRequest,
)

// Writer is satisfied by *reconcile.Reconciler[T].
type Writer[T any] interface {
	Reconcile(ctx context.Context, records []T) (reconcile.Result, error)
}

// CacheInvalidator drops derived data after a successful write.
type CacheInvalidator interface {
	Invalidate(ctx context.Context) error
}

type Parser interface {
	Parse(path string, opts csvreader.Options) ([]csvreader.Row, error)
}

//go:generate mockgen -source=ingest_service.go -destination=mock/ingest_service_mock.go -package=mock
type Service interface {
	Ingest(ctx context.Context, paths Paths) (Result, error)
	InsertBatch(ctx context.Context, batches []BatchRequest) (Result, error)
}

type Writers struct {
	Departments    Writer[department.Department]
	Jobs           Writer[job.Job]
	HiredEmployees Writer[hiredemployee.HiredEmployee]
}

type service struct {
	parser     Parser
	dates      csvreader.DateNormalizer
	writers    Writers
	cache      CacheInvalidator
	datePolicy config.DatePolicy
	validate   *validator.Validate
	logger     *zap.Logger
}

func NewService(
	parser Parser,
	dates csvreader.DateNormalizer,
	writers Writers,
	cache CacheInvalidator,
	datePolicy config.DatePolicy,
	logger *zap.Logger,
) Service {
	if logger == nil {
		logger = zap.NewNop()
	}

	v := validator.New(validator.WithRequiredStructEnabled())
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		return strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
	})

	return &service{
		parser:     parser,
		dates:      dates,
		writers:    writers,
		cache:      cache,
		datePolicy: datePolicy,
		validate:   v,
		logger:     logger.Named("ingest"),
	}
}

// Ingest processes departments, then jobs, then hired employees. A file that
// cannot be loaded is reported in its FileResult and skipped. A failed
// reconciliation stops the run; files committed before it stay committed.
func (s *service) Ingest(ctx context.Context, paths Paths) (Result, error) {
	log := contextutil.GetLogger(ctx, s.logger)
	var res Result
	var changed bool

	defer func() {
		if changed {
			s.invalidate(ctx)
		}
	}()

	var err error
	res.Departments, err = ingestFile(ctx, s, department.Kind.Name, paths.Departments, csvreader.Options{Columns: department.Columns},
		department.FromRow, keepAll[department.Department], s.writers.Departments)
	changed = changed || res.Departments.Inserted+res.Departments.Updated > 0
	if err != nil {
		return res, err
	}

	res.Jobs, err = ingestFile(ctx, s, job.Kind.Name, paths.Jobs, csvreader.Options{Columns: job.Columns},
		job.FromRow, keepAll[job.Job], s.writers.Jobs)
	changed = changed || res.Jobs.Inserted+res.Jobs.Updated > 0
	if err != nil {
		return res, err
	}

	res.HiredEmployees, err = ingestFile(ctx, s, hiredemployee.Kind.Name, paths.HiredEmployees,
		csvreader.Options{Columns: hiredemployee.Columns, DateColumns: []string{hiredemployee.DateColumn}},
		hiredemployee.FromRow, s.keepHire, s.writers.HiredEmployees)
	changed = changed || res.HiredEmployees.Inserted+res.HiredEmployees.Updated > 0
	if err != nil {
		return res, err
	}

	log.Info("ingest finished",
		zap.Any("departments", res.Departments),
		zap.Any("jobs", res.Jobs),
		zap.Any("hired_employees", res.HiredEmployees),
	)
	return res, nil
}

// InsertBatch reconciles JSON records grouped by table. Every item is
// decoded and validated before anything is written.
func (s *service) InsertBatch(ctx context.Context, batches []BatchRequest) (Result, error) {
	var (
		depts []department.Department
		jobs  []job.Job
		hires []hiredemployee.HiredEmployee
		res   Result
	)

	for i, b := range batches {
		switch b.Table {
		case TableDepartments:
			var recs []department.BatchRecord
			if err := s.decode(b.Data, &recs); err != nil {
				return Result{}, batchError(i, err)
			}
			for _, r := range recs {
				depts = append(depts, department.FromRecord(r))
			}
			res.Departments.Rows += len(recs)

		case TableJobs:
			var recs []job.BatchRecord
			if err := s.decode(b.Data, &recs); err != nil {
				return Result{}, batchError(i, err)
			}
			for _, r := range recs {
				jobs = append(jobs, job.FromRecord(r))
			}
			res.Jobs.Rows += len(recs)

		case TableHiredEmployees:
			var recs []hiredemployee.BatchRecord
			if err := s.decode(b.Data, &recs); err != nil {
				return Result{}, batchError(i, err)
			}
			for _, r := range recs {
				e, err := hiredemployee.FromRecord(r, s.dates)
				if err != nil {
					return Result{}, batchError(i, err)
				}
				if !s.keepHire(e) {
					res.HiredEmployees.Skipped++
					continue
				}
				hires = append(hires, e)
			}
			res.HiredEmployees.Rows += len(recs)

		default:
			return Result{}, batchError(i, ErrUnknownTable)
		}
	}

	var changed bool
	defer func() {
		if changed {
			s.invalidate(ctx)
		}
	}()

	if err := write(ctx, s.writers.Departments, depts, &res.Departments, department.Kind.Name); err != nil {
		return res, err
	}
	changed = res.Departments.Inserted+res.Departments.Updated > 0

	if err := write(ctx, s.writers.Jobs, jobs, &res.Jobs, job.Kind.Name); err != nil {
		return res, err
	}
	changed = changed || res.Jobs.Inserted+res.Jobs.Updated > 0

	if err := write(ctx, s.writers.HiredEmployees, hires, &res.HiredEmployees, hiredemployee.Kind.Name); err != nil {
		return res, err
	}
	changed = changed || res.HiredEmployees.Inserted+res.HiredEmployees.Updated > 0

	return res, nil
}

func (s *service) decode(data json.RawMessage, dst any) error {
	if err := json.Unmarshal(data, dst); err != nil {
		return apperror.Wrap(err, apperror.CodeInvalidInput, "data must be a list of records", http.StatusBadRequest)
	}
	if err := s.validate.Var(dst, "required,dive"); err != nil {
		return apperror.MapValidationError(err)
	}
	return nil
}

// keepHire applies the configured policy to records without a usable hire date.
func (s *service) keepHire(e hiredemployee.HiredEmployee) bool {
	if e.HireDatetime != nil {
		return true
	}
	return s.datePolicy == config.DatePolicyNull
}

func (s *service) invalidate(ctx context.Context) {
	if s.cache == nil {
		return
	}
	if err := s.cache.Invalidate(ctx); err != nil {
		contextutil.GetLogger(ctx, s.logger).Warn("report cache invalidation failed", zap.Error(err))
	}
}

func ingestFile[T any](
	ctx context.Context,
	s *service,
	kind string,
	path string,
	opts csvreader.Options,
	fromRow func(csvreader.Row) (T, error),
	keep func(T) bool,
	w Writer[T],
) (FileResult, error) {
	log := contextutil.GetLogger(ctx, s.logger).With(zap.String("kind", kind), zap.String("file", path))
	fr := FileResult{Source: path}

	rows, err := s.parser.Parse(path, opts)
	if err != nil {
		log.Error("could not load file", zap.Error(err))
		fr.Error = "could not load: " + loadReason(err)
		return fr, nil
	}
	fr.Rows = len(rows)

	records := make([]T, 0, len(rows))
	for _, row := range rows {
		rec, err := fromRow(row)
		if err != nil {
			log.Warn("invalid row skipped", zap.Int("line", row.Line), zap.Error(err))
			fr.Skipped++
			continue
		}
		if !keep(rec) {
			log.Warn("row without hire date dropped", zap.Int("line", row.Line))
			fr.Skipped++
			continue
		}
		records = append(records, rec)
	}

	res, err := w.Reconcile(ctx, records)
	if err != nil {
		return fr, fmt.Errorf("reconcile %s: %w", kind, err)
	}
	fr.Inserted = res.Inserted
	fr.Updated = res.Updated
	return fr, nil
}

func write[T any](ctx context.Context, w Writer[T], records []T, fr *FileResult, kind string) error {
	res, err := w.Reconcile(ctx, records)
	if err != nil {
		return fmt.Errorf("reconcile %s: %w", kind, err)
	}
	fr.Inserted = res.Inserted
	fr.Updated = res.Updated
	return nil
}

func keepAll[T any](T) bool { return true }

func loadReason(err error) string {
	switch {
	case errors.Is(err, csvreader.ErrFileNotFound):
		return "file not found"
	case errors.Is(err, csvreader.ErrEmptyFile):
		return "file has no data rows"
	case errors.Is(err, csvreader.ErrEncoding):
		return "file is not valid UTF-8"
	default:
		return err.Error()
	}
}

func batchError(index int, err error) error {
	var appErr *apperror.AppError
	if errors.As(err, &appErr) {
		return apperror.Wrap(err, appErr.Code, fmt.Sprintf("batch item %d: %s", index, appErr.Message), appErr.HTTPStatus)
	}
	return apperror.Wrap(err, apperror.CodeInvalidInput, fmt.Sprintf("batch item %d is invalid", index), http.StatusBadRequest)
}
