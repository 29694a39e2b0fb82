package list_rooms

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-HotelService/internal/service/rooms/models"
)

type stubRoomService struct {
	resp      *models.RoomListResponse
	err       error
	gotSortBy string
}

func (s *stubRoomService) List(_ context.Context, sortBy string) (*models.RoomListResponse, error) {
	s.gotSortBy = sortBy
	return s.resp, s.err
}

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

func TestHandleList(t *testing.T) {
	svc := &stubRoomService{resp: &models.RoomListResponse{
		Rooms: []*models.RoomResponse{
			{ID: 1, Description: "Номер", Price: "2500.00", CreatedAt: "2025-10-01T00:00:00Z"},
		},
	}}
	h := NewHandler(svc, nopLogger{})

	req := httptest.NewRequest(http.MethodGet, "/rooms/list/?sort_by=price_asc", nil)
	rec := httptest.NewRecorder()

	h.Handle(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "price_asc", svc.gotSortBy)

	// Ответ — массив, цена строкой с двумя знаками
	var rooms []map[string]interface{}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &rooms))
	require.Len(t, rooms, 1)
	assert.Equal(t, "2500.00", rooms[0]["price"])
}

func TestHandleEmptyList(t *testing.T) {
	svc := &stubRoomService{resp: &models.RoomListResponse{Rooms: []*models.RoomResponse{}}}
	h := NewHandler(svc, nopLogger{})

	req := httptest.NewRequest(http.MethodGet, "/rooms/list/", nil)
	rec := httptest.NewRecorder()

	h.Handle(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, "[]", rec.Body.String())
}

func TestHandleServiceError(t *testing.T) {
	h := NewHandler(&stubRoomService{err: errors.New("boom")}, nopLogger{})

	req := httptest.NewRequest(http.MethodGet, "/rooms/list/", nil)
	rec := httptest.NewRecorder()

	h.Handle(rec, req)

	assert.Equal(t, http.StatusInternalServerError, rec.Code)
}
