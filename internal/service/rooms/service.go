package rooms

import (
	"context"
	"errors"
	"fmt"
	"math"
	"strings"

	"github.com/m04kA/SMC-HotelService/internal/domain"
	roomRepo "github.com/m04kA/SMC-HotelService/internal/infra/storage/room"
	"github.com/m04kA/SMC-HotelService/internal/service/rooms/models"
)

// Service сервис для работы с номерами отеля
type Service struct {
	roomRepo    RoomRepository
	bookingRepo BookingRepository
	txManager   TransactionManager
	logger      Logger
}

// NewService создает новый экземпляр сервиса номеров
func NewService(
	roomRepo RoomRepository,
	bookingRepo BookingRepository,
	txManager TransactionManager,
	logger Logger,
) *Service {
	return &Service{
		roomRepo:    roomRepo,
		bookingRepo: bookingRepo,
		txManager:   txManager,
		logger:      logger,
	}
}

// Create создает новый номер
// Валидация полей выполняется здесь; при ошибках возвращается
// *ValidationError с сообщениями по каждому полю
func (s *Service) Create(ctx context.Context, req *models.CreateRoomRequest) (*models.RoomResponse, error) {
	s.logger.Info("CreateRoom: description_len=%d, price=%.2f", len(req.Description), req.Price)

	if err := validateCreateRequest(req); err != nil {
		s.logger.Warn("CreateRoom: validation failed: %v", err)
		return nil, err
	}

	room := &domain.Room{
		Description: strings.TrimSpace(req.Description),
		Price:       req.Price,
	}

	created, err := s.roomRepo.Create(ctx, room)
	if err != nil {
		s.logger.Error("CreateRoom: repository error: %v", err)
		return nil, fmt.Errorf("%w: Create - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("CreateRoom: successfully created room id=%d", created.ID)
	return models.FromDomainRoom(created), nil
}

// Delete удаляет номер вместе со всеми его бронями
// Каскад выполняется явно двумя шагами внутри одной транзакции:
// сначала брони, затем номер — либо оба шага, либо ни одного
func (s *Service) Delete(ctx context.Context, roomID int64) error {
	s.logger.Info("DeleteRoom: deleting room id=%d", roomID)

	// Проверяем существование номера: на границе отсутствие — это 404
	if _, err := s.roomRepo.GetByID(ctx, roomID); err != nil {
		if errors.Is(err, roomRepo.ErrRoomNotFound) {
			s.logger.Warn("DeleteRoom: room id=%d not found", roomID)
			return ErrRoomNotFound
		}
		s.logger.Error("DeleteRoom: repository error for room id=%d: %v", roomID, err)
		return fmt.Errorf("%w: Delete - repository error: %v", ErrInternal, err)
	}

	err := s.txManager.DoSerializable(ctx, func(txCtx context.Context) error {
		deletedBookings, err := s.bookingRepo.DeleteByRoom(txCtx, roomID)
		if err != nil {
			return fmt.Errorf("%w: Delete - delete bookings: %v", ErrInternal, err)
		}

		if _, err := s.roomRepo.Delete(txCtx, roomID); err != nil {
			return fmt.Errorf("%w: Delete - delete room: %v", ErrInternal, err)
		}

		s.logger.Info("DeleteRoom: cascade removed %d bookings for room id=%d", deletedBookings, roomID)
		return nil
	})

	if err != nil {
		s.logger.Error("DeleteRoom: failed to delete room id=%d: %v", roomID, err)
		return err
	}

	s.logger.Info("DeleteRoom: successfully deleted room id=%d", roomID)
	return nil
}

// List возвращает список номеров с сортировкой
// Неизвестные значения sortBy откатываются к сортировке по умолчанию
// (новые сверху), ошибки нет
func (s *Service) List(ctx context.Context, sortBy string) (*models.RoomListResponse, error) {
	sortKey := domain.ParseRoomSortKey(sortBy)
	s.logger.Info("ListRooms: fetching rooms, sort_by=%q (key=%q)", sortBy, sortKey)

	roomsList, err := s.roomRepo.List(ctx, sortKey)
	if err != nil {
		s.logger.Error("ListRooms: repository error: %v", err)
		return nil, fmt.Errorf("%w: List - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("ListRooms: successfully fetched %d rooms", len(roomsList))
	return models.FromDomainRoomList(roomsList), nil
}

// validateCreateRequest валидирует поля запроса на создание номера
func validateCreateRequest(req *models.CreateRoomRequest) error {
	verr := NewValidationError()

	if strings.TrimSpace(req.Description) == "" {
		verr.Add("description", "описание не может быть пустым")
	}
	if len(req.Description) > domain.MaxDescriptionLength {
		verr.Add("description", fmt.Sprintf("описание не может быть длиннее %d символов", domain.MaxDescriptionLength))
	}

	if req.Price <= 0 {
		verr.Add("price", "цена должна быть положительной")
	} else {
		if req.Price > domain.MaxRoomPrice {
			verr.Add("price", fmt.Sprintf("цена не может превышать %d", int64(domain.MaxRoomPrice)))
		}
		// Цена хранится с точностью до копеек
		cents := req.Price * 100
		if math.Abs(cents-math.Round(cents)) > 1e-9 {
			verr.Add("price", "цена не может содержать больше двух знаков после запятой")
		}
	}

	if verr.HasErrors() {
		return verr
	}
	return nil
}
