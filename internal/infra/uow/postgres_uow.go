package uow

import (
	"context"
	"crypto/rand"
	"encoding/binary"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"hotel-booking-core/internal/infra/query"
	"hotel-booking-core/internal/infra/repository"
	"hotel-booking-core/internal/pkg/errs"
	"hotel-booking-core/internal/usecase/shared"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
)

const (
	pgErrCodeSerializationFailure = "40001"
	pgErrCodeDeadlockDetected     = "40P01"
)

var (
	errTransactionBegin   = errs.New("failed to begin transaction")
	errTransactionCommit  = errs.New("failed to commit transaction")
	errMaxRetriesExceeded = errs.New("transaction failed after max retries")
)

type txKey struct{}

type PostgresUoW struct {
	pool        *pgxpool.Pool
	q           *query.Queries
	lockTimeout time.Duration
}

func NewPostgresUoW(pool *pgxpool.Pool, q *query.Queries, lockTimeout time.Duration) *PostgresUoW {
	return &PostgresUoW{
		pool:        pool,
		q:           q,
		lockTimeout: lockTimeout,
	}
}

// ReadCommitted prevents dirty reads while allowing concurrent writes.
// Oversell protection comes from FOR UPDATE on the allotment rows.
func (u *PostgresUoW) Within(ctx context.Context, fn func(ctx context.Context, tx shared.Tx) error) error {
	if outer, ok := ctx.Value(txKey{}).(*pgTx); ok && outer.uow == u {
		return fn(ctx, outer)
	}
	return u.runInTxWithOptions(ctx, pgx.TxOptions{IsoLevel: pgx.ReadCommitted}, fn)
}

// Read-only transaction for consistent multi-table snapshots
func (u *PostgresUoW) WithinReadOnly(ctx context.Context, fn func(ctx context.Context, tx shared.ReadTx) error) error {
	if outer, ok := ctx.Value(txKey{}).(*pgTx); ok && outer.uow == u {
		return fn(ctx, &pgReadTx{tx: outer})
	}
	return u.runReadOnlyTx(ctx, pgx.TxOptions{AccessMode: pgx.ReadOnly}, fn)
}

// Avoids defer accumulation in retry loops to prevent connection leaks
func (u *PostgresUoW) runInTxWithOptions(ctx context.Context, options pgx.TxOptions, fn func(ctx context.Context, tx shared.Tx) error) error {
	const maxRetries = 3
	base := 100 * time.Millisecond

	for attempt := 0; attempt <= maxRetries; attempt++ {
		pgxTx, err := u.pool.BeginTx(ctx, options)
		if err != nil {
			return errs.Mark(err, errTransactionBegin)
		}

		tx := &pgTx{
			dbtx: pgxTx,
			uow:  u,
		}

		err = u.applyLockTimeout(ctx, pgxTx)
		if err == nil {
			err = fn(context.WithValue(ctx, txKey{}, tx), tx)
		}
		if err == nil {
			if err = pgxTx.Commit(ctx); err == nil {
				tx.runAfterEnd()
				return nil
			}
			err = errs.Mark(err, errTransactionCommit)
		}

		if rollbackErr := pgxTx.Rollback(ctx); rollbackErr != nil {
			if !errors.Is(rollbackErr, pgx.ErrTxClosed) {
				slog.Warn("rollback failed", "attempt", attempt+1, "error", rollbackErr.Error())
			}
		}
		tx.runAfterEnd()

		if !shouldRetry(err, attempt, maxRetries) {
			if attempt == maxRetries && isRetryableError(err) {
				slog.Error("transaction failed after max retries",
					"attempts", attempt+1,
					"error", err.Error())
				return errs.Mark(err, errMaxRetriesExceeded)
			}
			return err
		}

		waitTime := calculateBackoff(attempt, base)

		slog.Warn("retrying transaction due to retryable error",
			"attempt", attempt+1,
			"wait_ms", waitTime.Milliseconds(),
			"error", err.Error())

		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-time.After(waitTime):
		}
	}

	return errMaxRetriesExceeded
}

func (u *PostgresUoW) runReadOnlyTx(ctx context.Context, options pgx.TxOptions, fn func(ctx context.Context, tx shared.ReadTx) error) error {
	pgxTx, err := u.pool.BeginTx(ctx, options)
	if err != nil {
		return errs.Mark(err, errTransactionBegin)
	}

	defer func() {
		if rollbackErr := pgxTx.Rollback(ctx); rollbackErr != nil {
			if !errors.Is(rollbackErr, pgx.ErrTxClosed) {
				slog.Warn("failed to rollback read-only transaction", "error", rollbackErr.Error())
			}
		}
	}()

	if err := fn(ctx, &pgReadTx{tx: &pgTx{dbtx: pgxTx, uow: u}}); err != nil {
		return err
	}

	return pgxTx.Commit(ctx)
}

// applyLockTimeout bounds the wait on FOR UPDATE row locks; a timeout
// surfaces as SQLSTATE 55P03.
func (u *PostgresUoW) applyLockTimeout(ctx context.Context, db query.DBTX) error {
	if u.lockTimeout <= 0 {
		return nil
	}
	return u.q.SetLockTimeout(ctx, db, fmt.Sprintf("%dms", u.lockTimeout.Milliseconds()))
}

func shouldRetry(err error, attempt, maxRetries int) bool {
	return isRetryableError(err) && attempt < maxRetries
}

func calculateBackoff(attempt int, base time.Duration) time.Duration {
	waitTime := time.Duration(1<<attempt) * base
	jitter := cryptoRandInt63n(int64(waitTime / 5))
	return waitTime + time.Duration(jitter)
}

func cryptoRandInt63n(n int64) int64 {
	if n <= 0 {
		return 0
	}
	var buf [8]byte
	if _, err := rand.Read(buf[:]); err != nil {
		return 0
	}
	// Mask high bit to ensure positive int64
	uval := binary.BigEndian.Uint64(buf[:]) & 0x7FFFFFFFFFFFFFFF
	// #nosec G115 -- Intentionally safe conversion after masking
	return int64(uval) % n
}

func isRetryableError(err error) bool {
	var pgErr *pgconn.PgError
	if !errors.As(err, &pgErr) {
		return false
	}

	switch pgErr.Code {
	case pgErrCodeSerializationFailure, pgErrCodeDeadlockDetected:
		return true
	default:
		return false
	}
}

type pgTx struct {
	dbtx query.DBTX
	uow  *PostgresUoW

	afterEnd []func()

	// Lazy-initialized repositories
	bookingRepo   *repository.BookingRepository
	inventoryRepo *repository.InventoryRepository
}

func (t *pgTx) Bookings() shared.BookingRepository {
	if t.bookingRepo == nil {
		t.bookingRepo = repository.NewBookingRepository(t.uow.q, t.dbtx)
	}
	return t.bookingRepo
}

func (t *pgTx) Inventory() shared.InventoryRepository {
	if t.inventoryRepo == nil {
		t.inventoryRepo = repository.NewInventoryRepository(t.uow.q, t.dbtx)
	}
	return t.inventoryRepo
}

func (t *pgTx) AfterEnd(fn func()) {
	t.afterEnd = append(t.afterEnd, fn)
}

// Hooks run in reverse registration order.
func (t *pgTx) runAfterEnd() {
	for i := len(t.afterEnd) - 1; i >= 0; i-- {
		t.afterEnd[i]()
	}
	t.afterEnd = nil
}

type pgReadTx struct {
	tx *pgTx
}

func (r *pgReadTx) Bookings() shared.BookingReader {
	return r.tx.Bookings()
}

func (r *pgReadTx) Inventory() shared.InventoryReader {
	return r.tx.Inventory()
}
