// Package reconcile writes batches of externally keyed records, resolving
// primary-key collisions with update-or-insert inside a single transaction.
package reconcile

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"sync"
	"time"

	"github.com/gnat1399/globant-data-engineering-challenge-gn/internal/events"
	"github.com/gnat1399/globant-data-engineering-challenge-gn/internal/messaging/kafka"
	"github.com/gnat1399/globant-data-engineering-challenge-gn/internal/shared/contextutil"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgconn"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

const bulkSavepoint = "reconcile_bulk"

// Kind names the table a reconciler writes to.
type Kind struct {
	Name                 string
	Table                string
	PrimaryKeyConstraint string
}

type Entity interface {
	PrimaryKey() int64
}

// Repository is the storage a reconciler needs for one entity kind.
// FindByID returns gorm.ErrRecordNotFound when the id is absent.
//
//go:generate mockgen -source=reconcile.go -destination=mock/reconcile_mock.go -package=mock
type Repository[T any] interface {
	WithTx(tx *sql.Tx) Repository[T]
	BulkCreate(ctx context.Context, records []T) error
	FindByID(ctx context.Context, id int64) (*T, error)
	Create(ctx context.Context, record *T) error
	Update(ctx context.Context, record *T) error
	Count(ctx context.Context) (int64, error)
}

// ReplaceFunc overwrites every column of dst with the values of src.
type ReplaceFunc[T any] func(dst *T, src T)

type Result struct {
	Inserted int  `json:"inserted"`
	Updated  int  `json:"updated"`
	Fallback bool `json:"fallback"`
}

type Reconciler[T Entity] struct {
	kind    Kind
	db      *sql.DB
	repo    Repository[T]
	replace ReplaceFunc[T]
	outbox  kafka.OutboxRepository
	logger  *zap.Logger

	// serializes batches of this kind
	mu sync.Mutex
}

func New[T Entity](
	kind Kind,
	db *sql.DB,
	repo Repository[T],
	replace ReplaceFunc[T],
	logger *zap.Logger,
) *Reconciler[T] {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Reconciler[T]{
		kind:    kind,
		db:      db,
		repo:    repo,
		replace: replace,
		logger:  logger.Named("reconcile").With(zap.String("kind", kind.Name)),
	}
}

// WithOutbox makes every committed batch also record a BatchReconciledEvent
// in the same transaction.
func (r *Reconciler[T]) WithOutbox(outbox kafka.OutboxRepository) *Reconciler[T] {
	r.outbox = outbox
	return r
}

func (r *Reconciler[T]) Kind() Kind {
	return r.kind
}

// Reconcile inserts records, switching to row-by-row update-or-insert when
// the bulk insert hits an existing primary key. Either every change of the
// pass is committed or none is.
func (r *Reconciler[T]) Reconcile(ctx context.Context, records []T) (Result, error) {
	log := contextutil.GetLogger(ctx, r.logger).With(zap.String("kind", r.kind.Name))

	if len(records) == 0 {
		log.Info("empty batch, nothing to reconcile")
		return Result{}, nil
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return Result{}, fmt.Errorf("begin %s transaction: %w", r.kind.Name, err)
	}
	defer tx.Rollback()

	qtx := r.repo.WithTx(tx)

	if _, err := tx.ExecContext(ctx, "SAVEPOINT "+bulkSavepoint); err != nil {
		return Result{}, fmt.Errorf("savepoint %s: %w", r.kind.Name, err)
	}

	var res Result
	err = qtx.BulkCreate(ctx, records)
	switch {
	case err == nil:
		res.Inserted = len(records)

	case r.isPrimaryKeyConflict(err):
		log.Warn("primary key conflict on bulk insert, reconciling row by row",
			zap.Int("records", len(records)),
			zap.Error(err),
		)
		if _, err := tx.ExecContext(ctx, "ROLLBACK TO SAVEPOINT "+bulkSavepoint); err != nil {
			return Result{}, fmt.Errorf("rollback to savepoint %s: %w", r.kind.Name, err)
		}

		res, err = r.reconcileRows(ctx, qtx, records)
		if err != nil {
			log.Error("row reconciliation failed, batch rolled back", zap.Error(err))
			return Result{}, err
		}

	default:
		log.Error("bulk insert failed, batch rolled back", zap.Error(err))
		return Result{}, fmt.Errorf("bulk insert %s: %w", r.kind.Name, err)
	}

	if r.outbox != nil {
		if err := r.recordEvent(ctx, tx, res); err != nil {
			return Result{}, fmt.Errorf("record %s event: %w", r.kind.Name, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return Result{}, fmt.Errorf("commit %s: %w", r.kind.Name, err)
	}

	log.Info("batch reconciled",
		zap.Int("inserted", res.Inserted),
		zap.Int("updated", res.Updated),
		zap.Bool("fallback", res.Fallback),
	)

	if total, err := r.repo.Count(ctx); err != nil {
		log.Warn("verification read-back failed", zap.Error(err))
	} else {
		log.Info("verification read-back", zap.String("table", r.kind.Table), zap.Int64("rows", total))
	}

	return res, nil
}

func (r *Reconciler[T]) reconcileRows(ctx context.Context, qtx Repository[T], records []T) (Result, error) {
	res := Result{Fallback: true}

	for _, rec := range records {
		existing, err := qtx.FindByID(ctx, rec.PrimaryKey())
		switch {
		case err == nil:
			r.replace(existing, rec)
			if err := qtx.Update(ctx, existing); err != nil {
				return Result{}, fmt.Errorf("update %s id=%d: %w", r.kind.Name, rec.PrimaryKey(), err)
			}
			res.Updated++

		case errors.Is(err, gorm.ErrRecordNotFound):
			fresh := rec
			if err := qtx.Create(ctx, &fresh); err != nil {
				return Result{}, fmt.Errorf("insert %s id=%d: %w", r.kind.Name, rec.PrimaryKey(), err)
			}
			res.Inserted++

		default:
			return Result{}, fmt.Errorf("find %s id=%d: %w", r.kind.Name, rec.PrimaryKey(), err)
		}
	}

	return res, nil
}

func (r *Reconciler[T]) recordEvent(ctx context.Context, tx *sql.Tx, res Result) error {
	rid := contextutil.GetRequestID(ctx)

	payload, err := json.Marshal(events.BatchReconciledEvent{
		EventType:  events.BatchReconciledEventType,
		RequestID:  rid,
		Kind:       r.kind.Name,
		Inserted:   res.Inserted,
		Updated:    res.Updated,
		OccurredAt: time.Now().UTC(),
	})
	if err != nil {
		return err
	}

	return r.outbox.WithTx(tx).Create(ctx, kafka.OutboxEvent{
		ID:            uuid.NewString(),
		RequestID:     rid,
		AggregateType: r.kind.Name,
		AggregateID:   r.kind.Table,
		EventType:     events.BatchReconciledEventType,
		Topic:         events.BatchReconciledTopic,
		Payload:       payload,
		Status:        kafka.OutboxStatusPending,
	})
}

func (r *Reconciler[T]) isPrimaryKeyConflict(err error) bool {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		return pgErr.Code == "23505" && pgErr.ConstraintName == r.kind.PrimaryKeyConstraint
	}

	errMsg := err.Error()
	return strings.Contains(errMsg, "duplicate key value") && strings.Contains(errMsg, r.kind.PrimaryKeyConstraint)
}
