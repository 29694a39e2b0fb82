package delete_booking

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gorilla/mux"
	"github.com/stretchr/testify/assert"

	"github.com/m04kA/SMC-HotelService/internal/service/bookings"
)

type stubBookingService struct {
	err error
	got int64
}

func (s *stubBookingService) Delete(_ context.Context, bookingID int64) error {
	s.got = bookingID
	return s.err
}

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

func doDelete(h *Handler, path string) *httptest.ResponseRecorder {
	r := mux.NewRouter()
	r.HandleFunc("/bookings/delete/{bookingId}/", h.Handle).Methods(http.MethodDelete)

	req := httptest.NewRequest(http.MethodDelete, path, nil)
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, req)
	return rec
}

func TestHandleDeleted(t *testing.T) {
	svc := &stubBookingService{}
	h := NewHandler(svc, nopLogger{})

	rec := doDelete(h, "/bookings/delete/11/")

	assert.Equal(t, http.StatusNoContent, rec.Code)
	assert.Equal(t, int64(11), svc.got)
}

func TestHandleNotFound(t *testing.T) {
	h := NewHandler(&stubBookingService{err: bookings.ErrBookingNotFound}, nopLogger{})

	rec := doDelete(h, "/bookings/delete/99/")

	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.Contains(t, rec.Body.String(), "error")
}

func TestHandleInvalidID(t *testing.T) {
	h := NewHandler(&stubBookingService{}, nopLogger{})

	rec := doDelete(h, "/bookings/delete/xyz/")

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}
