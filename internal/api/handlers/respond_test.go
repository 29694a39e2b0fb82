package handlers

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDecodeJSON(t *testing.T) {
	type payload struct {
		Name string `json:"name"`
	}

	t.Run("валидное тело", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodPost, "/", strings.NewReader(`{"name": "номер"}`))
		var dst payload
		require.NoError(t, DecodeJSON(req, &dst))
		assert.Equal(t, "номер", dst.Name)
	})

	t.Run("битый JSON", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodPost, "/", strings.NewReader(`{broken`))
		var dst payload
		assert.Error(t, DecodeJSON(req, &dst))
	})

	t.Run("мусор после объекта", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodPost, "/", strings.NewReader(`{"name": "a"} {"name": "b"}`))
		var dst payload
		assert.Error(t, DecodeJSON(req, &dst))
	})
}

func TestRespondError(t *testing.T) {
	rec := httptest.NewRecorder()
	RespondNotFound(rec, "бронь не найдена")

	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.JSONEq(t, `{"error": "бронь не найдена"}`, rec.Body.String())
	assert.Contains(t, rec.Header().Get("Content-Type"), "application/json")
}

func TestRespondFieldErrors(t *testing.T) {
	rec := httptest.NewRecorder()
	RespondFieldErrors(rec, map[string][]string{
		"price": {"цена должна быть положительной"},
	})

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.JSONEq(t, `{"price": ["цена должна быть положительной"]}`, rec.Body.String())
}

func TestRespondNoContent(t *testing.T) {
	rec := httptest.NewRecorder()
	RespondNoContent(rec)

	assert.Equal(t, http.StatusNoContent, rec.Code)
	assert.Empty(t, rec.Body.String())
}
