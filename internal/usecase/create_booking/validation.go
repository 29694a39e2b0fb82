package create_booking

import (
	"fmt"
	"time"

	"github.com/m04kA/SMC-HotelService/internal/domain"
)

// validateRequest валидирует входные данные запроса
func validateRequest(req *Request) error {
	if req.RoomID <= 0 {
		return fmt.Errorf("%w: roomID must be positive", ErrInvalidInput)
	}

	if req.DateStart.IsZero() {
		return fmt.Errorf("%w: dateStart is required", ErrInvalidInput)
	}

	if req.DateEnd.IsZero() {
		return fmt.Errorf("%w: dateEnd is required", ErrInvalidInput)
	}

	return nil
}

// validateDateRange проверяет, что дата заезда строго раньше даты выезда
// Равные даты отклоняются: диапазон [d, d) пуст
func validateDateRange(dateStart, dateEnd time.Time) error {
	if !dateStart.Before(dateEnd) {
		return ErrInvalidDateRange
	}
	return nil
}

// findConflict возвращает первую бронь, пересекающуюся с диапазоном
// [dateStart, dateEnd), или nil, если пересечений нет
//
// Интервалы полуоткрытые: бронь, заканчивающаяся в день dateStart,
// и бронь, начинающаяся в день dateEnd, не конфликтуют
func findConflict(dateStart, dateEnd time.Time, bookings []*domain.Booking) *domain.Booking {
	for _, booking := range bookings {
		if booking.Overlaps(dateStart, dateEnd) {
			return booking
		}
	}
	return nil
}
