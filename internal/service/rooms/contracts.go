package rooms

import (
	"context"

	"github.com/m04kA/SMC-HotelService/internal/domain"
)

// RoomRepository интерфейс репозитория номеров
type RoomRepository interface {
	Create(ctx context.Context, room *domain.Room) (*domain.Room, error)
	GetByID(ctx context.Context, id int64) (*domain.Room, error)
	List(ctx context.Context, sortKey domain.RoomSortKey) ([]*domain.Room, error)
	Delete(ctx context.Context, id int64) (int64, error)
}

// BookingRepository интерфейс репозитория броней
// Нужен для каскадного удаления броней вместе с номером
type BookingRepository interface {
	DeleteByRoom(ctx context.Context, roomID int64) (int64, error)
}

// TransactionManager интерфейс для управления транзакциями
// Каскадное удаление (брони + номер) должно быть атомарным
type TransactionManager interface {
	DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
