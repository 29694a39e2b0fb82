package create_booking

import (
	"errors"
	"net/http"

	"github.com/m04kA/SMC-HotelService/internal/api/handlers"
	createBooking "github.com/m04kA/SMC-HotelService/internal/usecase/create_booking"
)

const (
	msgInvalidRequestBody = "некорректное тело запроса"
	msgRoomNotFound       = "номер с указанным ID не существует"
	msgInvalidDateRange   = "дата окончания должна быть позже даты начала"
	msgBookingConflict    = "номер уже забронирован на указанные даты"
)

type Handler struct {
	useCase CreateBookingUseCase
	logger  Logger
}

func NewHandler(useCase CreateBookingUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle POST /bookings/create/
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	var req CreateBookingRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /bookings/create - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	// Полевые проверки: отсутствующие поля и неверный формат дат
	if fields := req.FieldErrors(); fields != nil {
		h.logger.Warn("POST /bookings/create - Field validation failed: %v", fields)
		handlers.RespondFieldErrors(w, fields)
		return
	}

	useCaseReq, err := req.ToUseCaseRequest()
	if err != nil {
		h.logger.Warn("POST /bookings/create - Failed to parse request: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	result, err := h.useCase.Execute(r.Context(), useCaseReq)
	if err != nil {
		// Бизнес-ошибки отдаются как {"error": "..."} со статусом 400,
		// как это делала исходная система
		switch {
		case errors.Is(err, createBooking.ErrBookingConflict):
			h.logger.Warn("POST /bookings/create - Booking conflict: room=%d, dates=[%s, %s)",
				req.Room, req.DateStart, req.DateEnd)
			handlers.RespondBadRequest(w, msgBookingConflict)

		case errors.Is(err, createBooking.ErrRoomNotFound):
			h.logger.Warn("POST /bookings/create - Room not found: room=%d", req.Room)
			handlers.RespondBadRequest(w, msgRoomNotFound)

		case errors.Is(err, createBooking.ErrInvalidDateRange):
			h.logger.Warn("POST /bookings/create - Invalid date range: room=%d, dates=[%s, %s)",
				req.Room, req.DateStart, req.DateEnd)
			handlers.RespondBadRequest(w, msgInvalidDateRange)

		case errors.Is(err, createBooking.ErrInvalidInput):
			h.logger.Warn("POST /bookings/create - Invalid input: %v", err)
			handlers.RespondBadRequest(w, msgInvalidRequestBody)

		default:
			h.logger.Error("POST /bookings/create - Failed to create booking: room=%d, error=%v", req.Room, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("POST /bookings/create - Booking created successfully: booking_id=%d, room=%d",
		result.ID, req.Room)
	handlers.RespondJSON(w, http.StatusCreated, CreateBookingResponse{BookingID: result.ID})
}
