package domain

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func day(n int) time.Time {
	return time.Date(2025, 10, 1, 0, 0, 0, 0, time.UTC).AddDate(0, 0, n)
}

func TestBookingOverlaps(t *testing.T) {
	// Существующая бронь [day0, day3)
	booking := &Booking{RoomID: 1, DateStart: day(0), DateEnd: day(3)}

	tests := []struct {
		name  string
		start time.Time
		end   time.Time
		want  bool
	}{
		{"полное совпадение", day(0), day(3), true},
		{"пересечение внутри", day(1), day(2), true},
		{"пересечение слева", day(-2), day(1), true},
		{"пересечение справа", day(2), day(5), true},
		{"охватывающий диапазон", day(-1), day(4), true},
		{"смежный справа: выезд и заезд в один день", day(3), day(5), false},
		{"смежный слева", day(-2), day(0), false},
		{"полностью до", day(-5), day(-1), false},
		{"полностью после", day(4), day(6), false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, booking.Overlaps(tt.start, tt.end))
		})
	}
}

func TestParseRoomSortKey(t *testing.T) {
	tests := []struct {
		input string
		want  RoomSortKey
	}{
		{"price_asc", SortPriceAsc},
		{"price_desc", SortPriceDesc},
		{"date_asc", SortDateAsc},
		{"date_desc", SortDateDesc},
		{"", SortDefault},
		// Неизвестные значения откатываются к сортировке по умолчанию
		{"price", SortDefault},
		{"PRICE_ASC", SortDefault},
		{"random", SortDefault},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, ParseRoomSortKey(tt.input), "input=%q", tt.input)
	}
}

func TestParseConflictMode(t *testing.T) {
	assert.Equal(t, ConflictModeBestEffort, ParseConflictMode("best-effort"))
	assert.Equal(t, ConflictModeStrict, ParseConflictMode("strict"))
	assert.Equal(t, ConflictModeStrict, ParseConflictMode(""))
	assert.Equal(t, ConflictModeStrict, ParseConflictMode("unknown"))
}
