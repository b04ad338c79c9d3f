package get_catalog

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gorilla/mux"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jazyl-tech/JZL-BookingService/internal/domain"
	getCatalog "github.com/jazyl-tech/JZL-BookingService/internal/usecase/get_catalog"
)

type stubLogger struct{}

func (stubLogger) Info(format string, v ...interface{})  {}
func (stubLogger) Warn(format string, v ...interface{})  {}
func (stubLogger) Error(format string, v ...interface{}) {}

type stubUseCase struct {
	gotReq *getCatalog.Request
	resp   *getCatalog.Response
	err    error
}

func (s *stubUseCase) Execute(ctx context.Context, req *getCatalog.Request) (*getCatalog.Response, error) {
	s.gotReq = req
	return s.resp, s.err
}

func newServer(uc *stubUseCase) http.Handler {
	handler := NewHandler(uc, stubLogger{})
	r := mux.NewRouter()
	r.HandleFunc("/api/v1/catalog/salons", handler.Handle).Methods(http.MethodGet)
	return r
}

func TestHandle_OK(t *testing.T) {
	uc := &stubUseCase{
		resp: &getCatalog.Response{
			Items: []getCatalog.Item{
				{ID: 1, Name: "Люкс", City: "Москва", Rating: 4.9, TotalReviews: 200, IsPromoted: true, Position: 1},
				{ID: 2, Name: "Обычный", City: "Москва", Rating: 4.2, TotalReviews: 50, Position: 2},
			},
			Total:      2,
			Page:       1,
			PerPage:    20,
			TotalPages: 1,
		},
	}

	req := httptest.NewRequest(http.MethodGet,
		"/api/v1/catalog/salons?category_id=5&city=Москва&sort=rating&page=1&per_page=20", nil)
	rec := httptest.NewRecorder()
	newServer(uc).ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)

	require.NotNil(t, uc.gotReq)
	assert.Equal(t, int64(5), uc.gotReq.CategoryID)
	require.NotNil(t, uc.gotReq.City)
	assert.Equal(t, "Москва", *uc.gotReq.City)
	assert.Equal(t, domain.SortRating, uc.gotReq.Sort)

	body := rec.Body.String()
	assert.Contains(t, body, `"is_promoted":true`)
	assert.Contains(t, body, `"total_pages":1`)
	assert.Contains(t, body, `"per_page":20`)
}

func TestHandle_DefaultPagination(t *testing.T) {
	uc := &stubUseCase{resp: &getCatalog.Response{Items: []getCatalog.Item{}, Page: 1, PerPage: 20, TotalPages: 0}}

	req := httptest.NewRequest(http.MethodGet, "/api/v1/catalog/salons?category_id=5", nil)
	rec := httptest.NewRecorder()
	newServer(uc).ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	require.NotNil(t, uc.gotReq)
	assert.Equal(t, 1, uc.gotReq.Page)
	assert.Equal(t, domain.DefaultPerPage, uc.gotReq.PerPage)
}

func TestHandle_MissingCategoryID(t *testing.T) {
	uc := &stubUseCase{}

	req := httptest.NewRequest(http.MethodGet, "/api/v1/catalog/salons", nil)
	rec := httptest.NewRecorder()
	newServer(uc).ServeHTTP(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Nil(t, uc.gotReq)
}

func TestHandle_InvalidSort(t *testing.T) {
	uc := &stubUseCase{err: getCatalog.ErrInvalidInput}

	req := httptest.NewRequest(http.MethodGet, "/api/v1/catalog/salons?category_id=5&sort=price", nil)
	rec := httptest.NewRecorder()
	newServer(uc).ServeHTTP(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestHandle_NonNumericParams(t *testing.T) {
	uc := &stubUseCase{}

	req := httptest.NewRequest(http.MethodGet, "/api/v1/catalog/salons?category_id=abc", nil)
	rec := httptest.NewRecorder()
	newServer(uc).ServeHTTP(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Nil(t, uc.gotReq)
}
