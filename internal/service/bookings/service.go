package bookings

import (
	"context"
	"errors"
	"fmt"

	bookingRepo "github.com/m04kA/SMC-HotelService/internal/infra/storage/booking"
	roomRepo "github.com/m04kA/SMC-HotelService/internal/infra/storage/room"
	"github.com/m04kA/SMC-HotelService/internal/service/bookings/models"
)

// Service сервис для работы с бронями
// Создание броней живет в usecase create_booking: там проверка
// пересечений и транзакция, здесь только чтение и удаление
type Service struct {
	bookingRepo BookingRepository
	roomRepo    RoomRepository
	logger      Logger
}

// NewService создает новый экземпляр сервиса броней
func NewService(
	bookingRepo BookingRepository,
	roomRepo RoomRepository,
	logger Logger,
) *Service {
	return &Service{
		bookingRepo: bookingRepo,
		roomRepo:    roomRepo,
		logger:      logger,
	}
}

// Delete удаляет бронь по ID
// Репозиторий удаляет идемпотентно; 404 на границе обеспечивается
// предварительной проверкой существования
func (s *Service) Delete(ctx context.Context, bookingID int64) error {
	s.logger.Info("DeleteBooking: deleting booking id=%d", bookingID)

	if _, err := s.bookingRepo.GetByID(ctx, bookingID); err != nil {
		if errors.Is(err, bookingRepo.ErrBookingNotFound) {
			s.logger.Warn("DeleteBooking: booking id=%d not found", bookingID)
			return ErrBookingNotFound
		}
		s.logger.Error("DeleteBooking: repository error for booking id=%d: %v", bookingID, err)
		return fmt.Errorf("%w: Delete - repository error: %v", ErrInternal, err)
	}

	if _, err := s.bookingRepo.Delete(ctx, bookingID); err != nil {
		s.logger.Error("DeleteBooking: failed to delete booking id=%d: %v", bookingID, err)
		return fmt.Errorf("%w: Delete - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("DeleteBooking: successfully deleted booking id=%d", bookingID)
	return nil
}

// ListByRoom возвращает брони номера, отсортированные по дате заезда
// Если номер не существует, возвращает ErrRoomNotFound
func (s *Service) ListByRoom(ctx context.Context, roomID int64) (*models.BookingListResponse, error) {
	s.logger.Info("ListRoomBookings: fetching bookings for room id=%d", roomID)

	if _, err := s.roomRepo.GetByID(ctx, roomID); err != nil {
		if errors.Is(err, roomRepo.ErrRoomNotFound) {
			s.logger.Warn("ListRoomBookings: room id=%d not found", roomID)
			return nil, ErrRoomNotFound
		}
		s.logger.Error("ListRoomBookings: repository error for room id=%d: %v", roomID, err)
		return nil, fmt.Errorf("%w: ListByRoom - repository error: %v", ErrInternal, err)
	}

	bookingsList, err := s.bookingRepo.ListByRoom(ctx, roomID)
	if err != nil {
		s.logger.Error("ListRoomBookings: repository error for room id=%d: %v", roomID, err)
		return nil, fmt.Errorf("%w: ListByRoom - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("ListRoomBookings: successfully fetched %d bookings for room id=%d", len(bookingsList), roomID)
	return models.FromDomainBookingList(bookingsList), nil
}
