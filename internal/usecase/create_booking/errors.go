package create_booking

import "errors"

var (
	// ErrRoomNotFound возвращается, когда номер не найден
	ErrRoomNotFound = errors.New("create_booking: room not found")

	// ErrInvalidDateRange возвращается, когда дата заезда не раньше даты выезда
	ErrInvalidDateRange = errors.New("create_booking: date_start must be before date_end")

	// ErrBookingConflict возвращается, когда диапазон дат пересекается
	// с существующей бронью этого номера
	ErrBookingConflict = errors.New("create_booking: room is already booked for these dates")

	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("create_booking: invalid input data")

	// ErrInternal возвращается при внутренних ошибках usecase
	ErrInternal = errors.New("create_booking: internal error")
)
