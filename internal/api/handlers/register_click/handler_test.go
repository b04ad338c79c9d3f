package register_click

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gorilla/mux"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	registerClick "github.com/jazyl-tech/JZL-BookingService/internal/usecase/register_click"
)

type stubLogger struct{}

func (stubLogger) Info(format string, v ...interface{})  {}
func (stubLogger) Warn(format string, v ...interface{})  {}
func (stubLogger) Error(format string, v ...interface{}) {}

type stubUseCase struct {
	gotReq *registerClick.Request
	err    error
}

func (s *stubUseCase) Execute(ctx context.Context, req *registerClick.Request) error {
	s.gotReq = req
	return s.err
}

func newServer(uc *stubUseCase) http.Handler {
	handler := NewHandler(uc, stubLogger{})
	r := mux.NewRouter()
	r.HandleFunc("/api/v1/catalog/salons/{salonId}/click", handler.Handle).Methods(http.MethodPost)
	return r
}

func TestHandle_NoContent(t *testing.T) {
	uc := &stubUseCase{}

	req := httptest.NewRequest(http.MethodPost, "/api/v1/catalog/salons/5/click", nil)
	rec := httptest.NewRecorder()
	newServer(uc).ServeHTTP(rec, req)

	assert.Equal(t, http.StatusNoContent, rec.Code)
	require.NotNil(t, uc.gotReq)
	assert.Equal(t, int64(5), uc.gotReq.SalonID)
	assert.Nil(t, uc.gotReq.SessionID)
}

func TestHandle_SessionIDFromBody(t *testing.T) {
	uc := &stubUseCase{}

	req := httptest.NewRequest(http.MethodPost, "/api/v1/catalog/salons/5/click",
		strings.NewReader(`{"session_id": "sess-1"}`))
	rec := httptest.NewRecorder()
	newServer(uc).ServeHTTP(rec, req)

	assert.Equal(t, http.StatusNoContent, rec.Code)
	require.NotNil(t, uc.gotReq)
	require.NotNil(t, uc.gotReq.SessionID)
	assert.Equal(t, "sess-1", *uc.gotReq.SessionID)
}

func TestHandle_SalonNotFound(t *testing.T) {
	uc := &stubUseCase{err: registerClick.ErrSalonNotFound}

	req := httptest.NewRequest(http.MethodPost, "/api/v1/catalog/salons/99/click", nil)
	rec := httptest.NewRecorder()
	newServer(uc).ServeHTTP(rec, req)

	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestHandle_InvalidSalonID(t *testing.T) {
	uc := &stubUseCase{}

	req := httptest.NewRequest(http.MethodPost, "/api/v1/catalog/salons/abc/click", nil)
	rec := httptest.NewRecorder()
	newServer(uc).ServeHTTP(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Nil(t, uc.gotReq)
}
