package simpletxmanager

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/lib/pq"

	"github.com/carhive/FleetTimeline-Service/pkg/dbmetrics"
	"github.com/carhive/FleetTimeline-Service/pkg/txmanager"
)

var (
	// ErrBeginTx возвращается при ошибке открытия транзакции
	ErrBeginTx = errors.New("simpletxmanager: failed to begin transaction")

	// ErrCommitTx возвращается при ошибке фиксации транзакции
	ErrCommitTx = errors.New("simpletxmanager: failed to commit transaction")

	// ErrSerialization возвращается после исчерпания повторов
	// сериализуемой транзакции. Ошибка retryable.
	// Общий sentinel с txmanager: хендлеры сопоставляют ошибку с 503
	// одной проверкой независимо от того, какой менеджер собран в main
	ErrSerialization = txmanager.ErrSerialization
)

const (
	maxAttempts  = 3
	retryBackoff = 50 * time.Millisecond
)

// TransactionManager менеджер сериализуемых транзакций поверх *sql.DB
// Используется, когда метрики отключены (без обёртки dbmetrics)
type TransactionManager struct {
	db *sql.DB
}

// NewTransactionManager создает новый менеджер транзакций
func NewTransactionManager(db *sql.DB) *TransactionManager {
	return &TransactionManager{db: db}
}

// DoSerializable выполняет fn внутри SERIALIZABLE транзакции
// Семантика идентична txmanager.DoSerializable
func (m *TransactionManager) DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error {
	var lastErr error

	for attempt := 1; attempt <= maxAttempts; attempt++ {
		err := m.runOnce(ctx, fn)
		if err == nil {
			return nil
		}

		if !isRetryable(err) {
			return err
		}

		lastErr = err

		select {
		case <-time.After(retryBackoff * time.Duration(attempt)):
		case <-ctx.Done():
			return ctx.Err()
		}
	}

	return fmt.Errorf("%w: %v", ErrSerialization, lastErr)
}

func (m *TransactionManager) runOnce(ctx context.Context, fn func(ctx context.Context) error) error {
	tx, err := m.db.BeginTx(ctx, &sql.TxOptions{Isolation: sql.LevelSerializable})
	if err != nil {
		return fmt.Errorf("%w: %v", ErrBeginTx, err)
	}

	// *sql.Tx удовлетворяет dbmetrics.TxExecutor
	txCtx := dbmetrics.WithExecutor(ctx, tx)

	if err := fn(txCtx); err != nil {
		_ = tx.Rollback()
		return err
	}

	if err := tx.Commit(); err != nil {
		_ = tx.Rollback()
		if isRetryable(err) {
			return err
		}
		return fmt.Errorf("%w: %v", ErrCommitTx, err)
	}

	return nil
}

func isRetryable(err error) bool {
	var pqErr *pq.Error
	if !errors.As(err, &pqErr) {
		return false
	}

	switch string(pqErr.Code) {
	case "40001", "40P01", "55P03":
		return true
	default:
		return false
	}
}
