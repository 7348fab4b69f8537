package txmanager

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/lib/pq"

	"github.com/carhive/FleetTimeline-Service/pkg/dbmetrics"
)

var (
	// ErrBeginTx возвращается при ошибке открытия транзакции
	ErrBeginTx = errors.New("txmanager: failed to begin transaction")

	// ErrCommitTx возвращается при ошибке фиксации транзакции
	ErrCommitTx = errors.New("txmanager: failed to commit transaction")

	// ErrSerialization возвращается, когда сериализуемая транзакция
	// не смогла завершиться за maxAttempts попыток из-за конкурентного
	// доступа. Ошибка retryable - вызывающая сторона может повторить запрос
	ErrSerialization = errors.New("txmanager: serialization failure, retry the request")
)

const (
	maxAttempts  = 3
	retryBackoff = 50 * time.Millisecond
)

// PostgreSQL коды ошибок конкурентного доступа
const (
	pqSerializationFailure = "40001"
	pqDeadlockDetected     = "40P01"
	pqLockNotAvailable     = "55P03"
)

// TransactionManager менеджер сериализуемых транзакций поверх dbmetrics.DB
type TransactionManager struct {
	db *dbmetrics.DB
}

// NewTransactionManager создает новый менеджер транзакций
func NewTransactionManager(db *dbmetrics.DB) *TransactionManager {
	return &TransactionManager{db: db}
}

// DoSerializable выполняет fn внутри транзакции с уровнем изоляции SERIALIZABLE.
// Активная транзакция передается через контекст (dbmetrics.WithExecutor),
// репозитории подхватывают её через dbmetrics.GetExecutor.
//
// При serialization failure или deadlock транзакция повторяется
// до maxAttempts раз. После исчерпания попыток возвращается ErrSerialization.
// Любая ошибка fn откатывает транзакцию целиком.
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

// isRetryable возвращает true для ошибок конкурентного доступа PostgreSQL
func isRetryable(err error) bool {
	var pqErr *pq.Error
	if !errors.As(err, &pqErr) {
		return false
	}

	switch string(pqErr.Code) {
	case pqSerializationFailure, pqDeadlockDetected, pqLockNotAvailable:
		return true
	default:
		return false
	}
}
