package mysql

import (
	"context"

	"gorm.io/gorm"

	apperrors "github.com/adilzhan/libra/pkg/errors"
)

// TxManager runs a function inside a database transaction. The transactional
// *gorm.DB travels in the context; every repository method resolves it via
// getDB, so all repository calls made with the inner context share the
// transaction. fn returning an error rolls the transaction back.
type TxManager struct {
	db *gorm.DB
}

// NewTxManager creates the transaction manager.
func NewTxManager(db *gorm.DB) *TxManager {
	return &TxManager{db: db}
}

// Transaction executes fn atomically. Deadlocks and lock wait timeouts are
// returned as ErrTxConflict so use cases can retry the whole unit of work;
// by then the failed transaction has already been rolled back.
func (m *TxManager) Transaction(ctx context.Context, fn func(ctx context.Context) error) error {
	err := m.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return fn(withTx(ctx, tx))
	})
	if err != nil && isSerializationFailure(err) {
		return &apperrors.AppError{
			Code:    apperrors.ErrCodeTxConflict,
			Message: "transaction conflict, please retry",
			Err:     err,
		}
	}
	return err
}
