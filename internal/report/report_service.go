package report

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"sort"
	"time"

	reporterrors "github.com/gnat1399/globant-data-engineering-challenge-gn/internal/report/errors"

	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
	"golang.org/x/sync/singleflight"
)

const (
	QuarterlyKeyPrefix    = "reports:quarterly:"
	AboveAverageKeyPrefix = "reports:above-average:"
	// GenerationKey is bumped by Invalidate. Report keys embed the
	// generation, so entries written under an older one are never read again.
	GenerationKey = "reports:gen"

	minYear = 1900
	maxYear = 9999
)

func QuarterlyKey(gen int64, year int) string {
	return fmt.Sprintf("%s%d:%d", QuarterlyKeyPrefix, gen, year)
}

func AboveAverageKey(gen int64, year int) string {
	return fmt.Sprintf("%s%d:%d", AboveAverageKeyPrefix, gen, year)
}

//go:generate mockgen -source=report_service.go -destination=mock/report_service_mock.go -package=mock
type Service interface {
	QuarterlyHires(ctx context.Context, year int) ([]QuarterlyHires, error)
	DepartmentsAboveAverage(ctx context.Context, year int) ([]DepartmentHires, error)
	ExportXLSX(ctx context.Context, year int, w io.Writer) error
	Invalidate(ctx context.Context) error
	Warm(ctx context.Context, year int) error
}

type service struct {
	repo   Repository
	rdb    *redis.Client
	ttl    time.Duration
	sf     *singleflight.Group
	logger *zap.Logger
}

// NewService builds the report service. A nil rdb disables caching.
func NewService(repo Repository, rdb *redis.Client, ttl time.Duration, logger ...*zap.Logger) Service {
	l := zap.L().Named("report.service")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("report.service")
	}
	return &service{
		repo:   repo,
		rdb:    rdb,
		ttl:    ttl,
		sf:     &singleflight.Group{},
		logger: l,
	}
}

func validateYear(year int) error {
	if year < minYear || year > maxYear {
		return reporterrors.ErrInvalidYear
	}
	return nil
}

// generation reads the current cache generation. ok is false when redis
// cannot be read, in which case callers bypass the cache.
func (s *service) generation(ctx context.Context) (int64, bool) {
	gen, err := s.rdb.Get(ctx, GenerationKey).Int64()
	switch {
	case err == nil:
		return gen, true
	case errors.Is(err, redis.Nil):
		return 0, true
	default:
		s.logger.Warn("report cache generation read failed", zap.Error(err))
		return 0, false
	}
}

func cached[T any](
	ctx context.Context,
	s *service,
	keyFor func(gen int64) string,
	load func(context.Context) (T, error),
) (T, error) {
	if s.rdb == nil {
		return load(ctx)
	}

	gen, ok := s.generation(ctx)
	if !ok {
		return load(ctx)
	}
	key := keyFor(gen)

	raw, err := s.rdb.Get(ctx, key).Result()
	switch {
	case err == nil:
		var resp T
		if json.Unmarshal([]byte(raw), &resp) == nil {
			return resp, nil
		}
		s.logger.Warn("discarding unreadable cached report", zap.String("key", key))
	case !errors.Is(err, redis.Nil):
		s.logger.Warn("report cache read failed", zap.String("key", key), zap.Error(err))
	}

	v, err, _ := s.sf.Do(key, func() (interface{}, error) {
		resp, err := load(ctx)
		if err != nil {
			return nil, err
		}

		// An Invalidate during the load means resp may predate the write.
		if now, ok := s.generation(ctx); !ok || now != gen {
			s.logger.Debug("report cache generation moved, not storing", zap.String("key", key))
			return resp, nil
		}

		if jsonData, err := json.Marshal(resp); err == nil {
			if err := s.rdb.Set(ctx, key, jsonData, s.ttl).Err(); err != nil {
				s.logger.Warn("report cache write failed", zap.String("key", key), zap.Error(err))
			}
		}

		return resp, nil
	})
	if err != nil {
		var zero T
		return zero, err
	}

	return v.(T), nil
}

func (s *service) QuarterlyHires(ctx context.Context, year int) ([]QuarterlyHires, error) {
	if err := validateYear(year); err != nil {
		return nil, err
	}

	return cached(ctx, s, func(gen int64) string { return QuarterlyKey(gen, year) }, func(ctx context.Context) ([]QuarterlyHires, error) {
		rows, err := s.repo.HiresByMonth(ctx, year)
		if err != nil {
			s.logger.Error("quarterly hires query failed", zap.Int("year", year), zap.Error(err))
			return nil, err
		}
		return pivotQuarters(rows), nil
	})
}

func (s *service) DepartmentsAboveAverage(ctx context.Context, year int) ([]DepartmentHires, error) {
	if err := validateYear(year); err != nil {
		return nil, err
	}

	return cached(ctx, s, func(gen int64) string { return AboveAverageKey(gen, year) }, func(ctx context.Context) ([]DepartmentHires, error) {
		rows, err := s.repo.HiresByDepartment(ctx, year)
		if err != nil {
			s.logger.Error("hires by department query failed", zap.Int("year", year), zap.Error(err))
			return nil, err
		}
		return aboveAverage(rows), nil
	})
}

// Invalidate moves the cache to a new generation. Entries of older
// generations are left to expire.
func (s *service) Invalidate(ctx context.Context) error {
	if s.rdb == nil {
		return nil
	}

	gen, err := s.rdb.Incr(ctx, GenerationKey).Result()
	if err != nil {
		return err
	}

	s.logger.Debug("report cache invalidated", zap.Int64("generation", gen))
	return nil
}

// Warm drops every cached report and recomputes both reports for year.
func (s *service) Warm(ctx context.Context, year int) error {
	if err := s.Invalidate(ctx); err != nil {
		return err
	}
	if _, err := s.QuarterlyHires(ctx, year); err != nil {
		return err
	}
	if _, err := s.DepartmentsAboveAverage(ctx, year); err != nil {
		return err
	}

	s.logger.Info("report cache warmed", zap.Int("year", year))
	return nil
}

func (s *service) ExportXLSX(ctx context.Context, year int, w io.Writer) error {
	quarterly, err := s.QuarterlyHires(ctx, year)
	if err != nil {
		return err
	}
	above, err := s.DepartmentsAboveAverage(ctx, year)
	if err != nil {
		return err
	}
	return writeWorkbook(w, quarterly, above)
}

func pivotQuarters(rows []MonthlyHires) []QuarterlyHires {
	type pair struct{ department, job string }

	byPair := make(map[pair]*QuarterlyHires)
	for _, row := range rows {
		if row.Month < 1 || row.Month > 12 {
			continue
		}

		k := pair{row.Department, row.Job}
		q, ok := byPair[k]
		if !ok {
			q = &QuarterlyHires{Department: row.Department, Job: row.Job}
			byPair[k] = q
		}

		switch (row.Month-1)/3 + 1 {
		case 1:
			q.Q1 += row.Hired
		case 2:
			q.Q2 += row.Hired
		case 3:
			q.Q3 += row.Hired
		case 4:
			q.Q4 += row.Hired
		}
	}

	out := make([]QuarterlyHires, 0, len(byPair))
	for _, q := range byPair {
		out = append(out, *q)
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].Department != out[j].Department {
			return out[i].Department < out[j].Department
		}
		return out[i].Job < out[j].Job
	})
	return out
}

func aboveAverage(rows []DepartmentHires) []DepartmentHires {
	out := make([]DepartmentHires, 0)
	if len(rows) == 0 {
		return out
	}

	var total int64
	for _, row := range rows {
		total += row.Hired
	}
	mean := float64(total) / float64(len(rows))

	for _, row := range rows {
		if float64(row.Hired) > mean {
			out = append(out, row)
		}
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].Hired != out[j].Hired {
			return out[i].Hired > out[j].Hired
		}
		return out[i].ID < out[j].ID
	})
	return out
}
