package create_booking

import (
	"time"

	"github.com/m04kA/SMC-HotelService/internal/domain"
	createBooking "github.com/m04kA/SMC-HotelService/internal/usecase/create_booking"
)

// CreateBookingRequest HTTP request model
// Имена полей повторяют публичный контракт API: номер передается
// в поле "room"
type CreateBookingRequest struct {
	Room      int64  `json:"room"`
	DateStart string `json:"date_start"` // "2025-10-15"
	DateEnd   string `json:"date_end"`   // "2025-10-18"
}

// CreateBookingResponse HTTP response model: ID созданной брони
type CreateBookingResponse struct {
	BookingID int64 `json:"booking_id"`
}

// FieldErrors валидирует присутствие и формат полей запроса
// Возвращает ошибки по полям в формате границы API или nil
func (r *CreateBookingRequest) FieldErrors() map[string][]string {
	fields := make(map[string][]string)

	if r.Room == 0 {
		fields["room"] = append(fields["room"], "обязательное поле")
	}

	checkDate := func(name, value string) {
		if value == "" {
			fields[name] = append(fields[name], "обязательное поле")
			return
		}
		if _, err := time.Parse(domain.DateFormat, value); err != nil {
			fields[name] = append(fields[name], "некорректный формат даты, ожидается YYYY-MM-DD")
		}
	}
	checkDate("date_start", r.DateStart)
	checkDate("date_end", r.DateEnd)

	if len(fields) == 0 {
		return nil
	}
	return fields
}

// ToUseCaseRequest конвертирует HTTP запрос в модель use case
// Вызывается после FieldErrors, даты уже прошли проверку формата
func (r *CreateBookingRequest) ToUseCaseRequest() (*createBooking.Request, error) {
	dateStart, err := time.Parse(domain.DateFormat, r.DateStart)
	if err != nil {
		return nil, err
	}

	dateEnd, err := time.Parse(domain.DateFormat, r.DateEnd)
	if err != nil {
		return nil, err
	}

	return &createBooking.Request{
		RoomID:    r.Room,
		DateStart: dateStart,
		DateEnd:   dateEnd,
	}, nil
}
