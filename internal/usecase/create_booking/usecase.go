package create_booking

import (
	"context"
	"errors"
	"fmt"

	"github.com/m04kA/SMC-HotelService/internal/domain"
	roomRepo "github.com/m04kA/SMC-HotelService/internal/infra/storage/room"
)

// UseCase use case создания брони с проверкой пересечений
//
// Проверка и вставка выполняются внутри txManager.DoSerializable.
// В strict-режиме это сериализуемая транзакция, брони номера читаются
// с блокировкой FOR UPDATE, поэтому параллельные запросы на
// пересекающиеся даты не могут пройти проверку одновременно.
// В best-effort режиме транзакции нет и гонка проверка-вставка
// сохраняется (легаси-поведение исходной системы).
type UseCase struct {
	bookingRepo BookingRepository
	roomRepo    RoomRepository
	txManager   TransactionManager
	logger      Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(
	bookingRepo BookingRepository,
	roomRepo RoomRepository,
	txManager TransactionManager,
	logger Logger,
) *UseCase {
	return &UseCase{
		bookingRepo: bookingRepo,
		roomRepo:    roomRepo,
		txManager:   txManager,
		logger:      logger,
	}
}

// Execute выполняет use case создания брони
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("CreateBooking: room=%d, date_start=%s, date_end=%s",
		req.RoomID, req.DateStart.Format(domain.DateFormat), req.DateEnd.Format(domain.DateFormat))

	// 1. Валидация входных данных
	if err := validateRequest(req); err != nil {
		uc.logger.Warn("CreateBooking: validation failed: %v", err)
		return nil, err
	}

	// 2. Проверка диапазона дат: заезд строго раньше выезда
	if err := validateDateRange(req.DateStart, req.DateEnd); err != nil {
		uc.logger.Warn("CreateBooking: invalid date range for room=%d: %v", req.RoomID, err)
		return nil, err
	}

	var result *domain.Booking

	// 3. Проверка пересечений и вставка как одна единица работы
	err := uc.txManager.DoSerializable(ctx, func(txCtx context.Context) error {
		// 3.1. Номер должен существовать
		if _, err := uc.roomRepo.GetByID(txCtx, req.RoomID); err != nil {
			if errors.Is(err, roomRepo.ErrRoomNotFound) {
				uc.logger.Warn("CreateBooking: room id=%d not found", req.RoomID)
				return ErrRoomNotFound
			}
			uc.logger.Error("CreateBooking: failed to get room id=%d: %v", req.RoomID, err)
			return fmt.Errorf("%w: failed to get room: %v", ErrInternal, err)
		}

		// 3.2. Получаем существующие брони номера (FOR UPDATE внутри транзакции)
		existing, err := uc.bookingRepo.ListByRoom(txCtx, req.RoomID)
		if err != nil {
			uc.logger.Error("CreateBooking: failed to list bookings for room id=%d: %v", req.RoomID, err)
			return fmt.Errorf("%w: failed to list bookings: %v", ErrInternal, err)
		}

		// 3.3. Проверяем пересечение с каждой существующей бронью
		if conflict := findConflict(req.DateStart, req.DateEnd, existing); conflict != nil {
			uc.logger.Warn("CreateBooking: room id=%d already booked, conflict with booking id=%d [%s, %s)",
				req.RoomID, conflict.ID,
				conflict.DateStart.Format(domain.DateFormat), conflict.DateEnd.Format(domain.DateFormat))
			return ErrBookingConflict
		}

		// 3.4. Создаем бронь
		booking := &domain.Booking{
			RoomID:    req.RoomID,
			DateStart: req.DateStart,
			DateEnd:   req.DateEnd,
		}

		created, err := uc.bookingRepo.Create(txCtx, booking)
		if err != nil {
			uc.logger.Error("CreateBooking: failed to create booking for room id=%d: %v", req.RoomID, err)
			return fmt.Errorf("%w: failed to create booking: %v", ErrInternal, err)
		}

		result = created
		return nil
	})

	if err != nil {
		return nil, err
	}

	uc.logger.Info("CreateBooking: successfully created booking id=%d for room id=%d", result.ID, result.RoomID)

	return &Response{
		ID:        result.ID,
		RoomID:    result.RoomID,
		DateStart: result.DateStart,
		DateEnd:   result.DateEnd,
		CreatedAt: result.CreatedAt,
	}, nil
}
