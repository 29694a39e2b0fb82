package domain

import "time"

// Booking represents a room reservation for a date range
// Диапазон дат полуоткрытый: [DateStart, DateEnd), день выезда не занят
type Booking struct {
	ID        int64
	RoomID    int64
	DateStart time.Time // Дата заезда (только дата, без времени)
	DateEnd   time.Time // Дата выезда (только дата, без времени)
	CreatedAt time.Time
}

// Overlaps returns true if the booking intersects the half-open range [start, end)
// Строгие неравенства: бронь, заканчивающаяся в день start, не пересекается
func (b *Booking) Overlaps(start, end time.Time) bool {
	return b.DateStart.Before(end) && start.Before(b.DateEnd)
}
