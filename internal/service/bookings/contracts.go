package bookings

import (
	"context"

	"github.com/m04kA/SMC-HotelService/internal/domain"
)

// BookingRepository интерфейс репозитория броней
type BookingRepository interface {
	GetByID(ctx context.Context, id int64) (*domain.Booking, error)
	ListByRoom(ctx context.Context, roomID int64) ([]*domain.Booking, error)
	Delete(ctx context.Context, id int64) (int64, error)
}

// RoomRepository интерфейс репозитория номеров
// Нужен для проверки существования номера при листинге броней
type RoomRepository interface {
	GetByID(ctx context.Context, id int64) (*domain.Room, error)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
