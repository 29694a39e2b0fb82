package simpletxmanager

import (
	"context"
	"database/sql"
)

// TransactionManager заглушка без реальных транзакций
// Выполняет fn напрямую: проверка доступности и вставка не изолированы
// друг от друга, параллельные запросы могут пройти проверку одновременно
type TransactionManager struct {
	db *sql.DB
}

// NewTransactionManager создает transaction manager без изоляции
func NewTransactionManager(db *sql.DB) *TransactionManager {
	return &TransactionManager{db: db}
}

// DoSerializable выполняет fn без транзакции
// Сигнатура совместима с txmanager.TransactionManager
func (m *TransactionManager) DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error {
	return fn(ctx)
}
