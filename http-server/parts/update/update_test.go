package update

import (
	"context"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"aerotrack/internal/storage"
)

type MockUpdater struct {
	mock.Mock
}

func (m *MockUpdater) UpdatePart(ctx context.Context, name string, u storage.PartUpdate) (*storage.Part, error) {
	args := m.Called(ctx, name, u)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*storage.Part), args.Error(1)
}

func serve(m *MockUpdater, path, body string) *httptest.ResponseRecorder {
	r := chi.NewRouter()
	r.Put("/api/pecas/{nome}", UpdatePart(slog.Default(), m))

	rr := httptest.NewRecorder()
	r.ServeHTTP(rr, httptest.NewRequest(http.MethodPut, path, strings.NewReader(body)))
	return rr
}

func TestUpdatePart_StatusOnly(t *testing.T) {
	m := new(MockUpdater)
	ready := storage.PartReady
	m.On("UpdatePart", mock.Anything, "Motor Turbina", storage.PartUpdate{Status: &ready}).
		Return(&storage.Part{Name: "Motor Turbina", Status: ready}, nil)

	rr := serve(m, "/api/pecas/Motor%20Turbina", `{"status":"pronta"}`)

	assert.Equal(t, http.StatusOK, rr.Code)
	assert.Contains(t, rr.Body.String(), `"status":"PRONTA"`)
	m.AssertExpectations(t)
}

func TestUpdatePart_NotFound(t *testing.T) {
	m := new(MockUpdater)
	m.On("UpdatePart", mock.Anything, "Asa", mock.Anything).Return(nil, storage.ErrPartNotFound)

	rr := serve(m, "/api/pecas/Asa", `{"fornecedor":"Embraer"}`)

	assert.Equal(t, http.StatusNotFound, rr.Code)
}

func TestUpdatePart_BadStatus(t *testing.T) {
	m := new(MockUpdater)

	rr := serve(m, "/api/pecas/Asa", `{"status":"QUEBRADA"}`)

	assert.Equal(t, http.StatusBadRequest, rr.Code)
	m.AssertNotCalled(t, "UpdatePart", mock.Anything, mock.Anything, mock.Anything)
}
