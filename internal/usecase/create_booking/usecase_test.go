package create_booking

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-HotelService/internal/domain"
	roomRepo "github.com/m04kA/SMC-HotelService/internal/infra/storage/room"
)

// fakeBookingRepo in-memory репозиторий броней для тестов
type fakeBookingRepo struct {
	bookings []*domain.Booking
	nextID   int64

	createErr error
	listErr   error
}

func (f *fakeBookingRepo) Create(_ context.Context, booking *domain.Booking) (*domain.Booking, error) {
	if f.createErr != nil {
		return nil, f.createErr
	}
	f.nextID++
	booking.ID = f.nextID
	booking.CreatedAt = time.Now()
	f.bookings = append(f.bookings, booking)
	return booking, nil
}

func (f *fakeBookingRepo) ListByRoom(_ context.Context, roomID int64) ([]*domain.Booking, error) {
	if f.listErr != nil {
		return nil, f.listErr
	}
	result := make([]*domain.Booking, 0)
	for _, b := range f.bookings {
		if b.RoomID == roomID {
			result = append(result, b)
		}
	}
	return result, nil
}

// fakeRoomRepo in-memory репозиторий номеров для тестов
type fakeRoomRepo struct {
	rooms map[int64]*domain.Room
}

func (f *fakeRoomRepo) GetByID(_ context.Context, id int64) (*domain.Room, error) {
	room, ok := f.rooms[id]
	if !ok {
		return nil, roomRepo.ErrRoomNotFound
	}
	return room, nil
}

// fakeTxManager выполняет функцию напрямую, как simpletxmanager
type fakeTxManager struct {
	calls int
}

func (f *fakeTxManager) DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error {
	f.calls++
	return fn(ctx)
}

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

func day(n int) time.Time {
	return time.Date(2025, 10, 1, 0, 0, 0, 0, time.UTC).AddDate(0, 0, n)
}

func newTestUseCase(bookingRepo *fakeBookingRepo, rooms ...int64) (*UseCase, *fakeTxManager) {
	roomsRepo := &fakeRoomRepo{rooms: make(map[int64]*domain.Room)}
	for _, id := range rooms {
		roomsRepo.rooms[id] = &domain.Room{ID: id, Description: "Тестовый номер", Price: 2500.00}
	}
	txManager := &fakeTxManager{}
	return NewUseCase(bookingRepo, roomsRepo, txManager, nopLogger{}), txManager
}

func TestExecuteCreatesBooking(t *testing.T) {
	repo := &fakeBookingRepo{}
	uc, tx := newTestUseCase(repo, 1)

	resp, err := uc.Execute(context.Background(), &Request{
		RoomID:    1,
		DateStart: day(0),
		DateEnd:   day(3),
	})

	require.NoError(t, err)
	assert.Equal(t, int64(1), resp.ID)
	assert.Equal(t, int64(1), resp.RoomID)
	assert.Equal(t, day(0), resp.DateStart)
	assert.Equal(t, day(3), resp.DateEnd)
	assert.False(t, resp.CreatedAt.IsZero())
	// Проверка и вставка обязаны идти через transaction manager
	assert.Equal(t, 1, tx.calls)
}

func TestExecuteRejectsInvalidDateRange(t *testing.T) {
	tests := []struct {
		name  string
		start time.Time
		end   time.Time
	}{
		{"равные даты", day(1), day(1)},
		{"выезд раньше заезда", day(3), day(1)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo := &fakeBookingRepo{}
			uc, _ := newTestUseCase(repo, 1)

			_, err := uc.Execute(context.Background(), &Request{
				RoomID:    1,
				DateStart: tt.start,
				DateEnd:   tt.end,
			})

			assert.ErrorIs(t, err, ErrInvalidDateRange)
			assert.Empty(t, repo.bookings)
		})
	}
}

func TestExecuteRejectsInvalidInput(t *testing.T) {
	tests := []struct {
		name string
		req  *Request
	}{
		{"нулевой roomID", &Request{RoomID: 0, DateStart: day(0), DateEnd: day(1)}},
		{"отрицательный roomID", &Request{RoomID: -5, DateStart: day(0), DateEnd: day(1)}},
		{"нет даты заезда", &Request{RoomID: 1, DateEnd: day(1)}},
		{"нет даты выезда", &Request{RoomID: 1, DateStart: day(0)}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			uc, _ := newTestUseCase(&fakeBookingRepo{}, 1)
			_, err := uc.Execute(context.Background(), tt.req)
			assert.ErrorIs(t, err, ErrInvalidInput)
		})
	}
}

func TestExecuteRoomNotFound(t *testing.T) {
	uc, _ := newTestUseCase(&fakeBookingRepo{}, 1)

	_, err := uc.Execute(context.Background(), &Request{
		RoomID:    42,
		DateStart: day(0),
		DateEnd:   day(2),
	})

	assert.ErrorIs(t, err, ErrRoomNotFound)
}

func TestExecuteConflictDetection(t *testing.T) {
	// Существующая бронь [day0, day3)
	existing := &domain.Booking{ID: 100, RoomID: 1, DateStart: day(0), DateEnd: day(3)}

	tests := []struct {
		name    string
		start   time.Time
		end     time.Time
		wantErr error
	}{
		{"смежная бронь: заезд в день выезда", day(3), day(5), nil},
		{"смежная бронь слева", day(-2), day(0), nil},
		{"пересечение внутри", day(1), day(4), ErrBookingConflict},
		{"полное совпадение", day(0), day(3), ErrBookingConflict},
		{"охватывающий диапазон", day(-1), day(5), ErrBookingConflict},
		{"пересечение одним днем", day(2), day(3), ErrBookingConflict},
		{"полностью после", day(5), day(7), nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo := &fakeBookingRepo{bookings: []*domain.Booking{existing}, nextID: 100}
			uc, _ := newTestUseCase(repo, 1)

			resp, err := uc.Execute(context.Background(), &Request{
				RoomID:    1,
				DateStart: tt.start,
				DateEnd:   tt.end,
			})

			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				assert.Len(t, repo.bookings, 1, "бронь не должна создаваться при конфликте")
			} else {
				require.NoError(t, err)
				assert.NotZero(t, resp.ID)
			}
		})
	}
}

func TestExecuteConflictOnlyWithinSameRoom(t *testing.T) {
	// Бронь в другом номере не мешает
	repo := &fakeBookingRepo{
		bookings: []*domain.Booking{
			{ID: 1, RoomID: 2, DateStart: day(0), DateEnd: day(5)},
		},
		nextID: 1,
	}
	uc, _ := newTestUseCase(repo, 1, 2)

	_, err := uc.Execute(context.Background(), &Request{
		RoomID:    1,
		DateStart: day(1),
		DateEnd:   day(3),
	})

	require.NoError(t, err)
}

func TestExecuteAdjacentScenario(t *testing.T) {
	// Сценарий из постановки: бронь1 [day0, day3), бронь2 [day3, day5)
	// проходит, бронь3 [day1, day4) конфликтует
	repo := &fakeBookingRepo{}
	uc, _ := newTestUseCase(repo, 1)

	_, err := uc.Execute(context.Background(), &Request{RoomID: 1, DateStart: day(0), DateEnd: day(3)})
	require.NoError(t, err)

	_, err = uc.Execute(context.Background(), &Request{RoomID: 1, DateStart: day(3), DateEnd: day(5)})
	require.NoError(t, err)

	_, err = uc.Execute(context.Background(), &Request{RoomID: 1, DateStart: day(1), DateEnd: day(4)})
	assert.ErrorIs(t, err, ErrBookingConflict)

	assert.Len(t, repo.bookings, 2)
}

func TestExecuteWrapsRepositoryErrors(t *testing.T) {
	repo := &fakeBookingRepo{listErr: errors.New("connection refused")}
	uc, _ := newTestUseCase(repo, 1)

	_, err := uc.Execute(context.Background(), &Request{
		RoomID:    1,
		DateStart: day(0),
		DateEnd:   day(2),
	})

	assert.ErrorIs(t, err, ErrInternal)
}
