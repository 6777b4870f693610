package remove

import (
	"context"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"aerotrack/internal/middleware/auth"
	"aerotrack/internal/storage"
)

type MockRemover struct {
	mock.Mock
}

func (m *MockRemover) DeleteEmployee(ctx context.Context, id string) error {
	return m.Called(ctx, id).Error(0)
}

func serve(m *MockRemover, me *storage.Employee, id string) *httptest.ResponseRecorder {
	r := chi.NewRouter()
	r.Delete("/api/funcionarios/{id}", RemoveEmployee(slog.Default(), m))

	req := httptest.NewRequest(http.MethodDelete, "/api/funcionarios/"+id, nil)
	req = req.WithContext(auth.WithEmployee(req.Context(), me))

	rr := httptest.NewRecorder()
	r.ServeHTTP(rr, req)
	return rr
}

func TestRemoveEmployee_Success(t *testing.T) {
	m := new(MockRemover)
	m.On("DeleteEmployee", mock.Anything, "F002").Return(nil)

	rr := serve(m, &storage.Employee{ID: "F001"}, "F002")

	assert.Equal(t, http.StatusOK, rr.Code)
	assert.Contains(t, rr.Body.String(), "Funcionário excluído com sucesso")
	m.AssertExpectations(t)
}

func TestRemoveEmployee_Self(t *testing.T) {
	m := new(MockRemover)

	rr := serve(m, &storage.Employee{ID: "F001"}, "F001")

	assert.Equal(t, http.StatusBadRequest, rr.Code)
	m.AssertNotCalled(t, "DeleteEmployee", mock.Anything, mock.Anything)
}

func TestRemoveEmployee_NotFound(t *testing.T) {
	m := new(MockRemover)
	m.On("DeleteEmployee", mock.Anything, "F404").Return(storage.ErrEmployeeNotFound)

	rr := serve(m, &storage.Employee{ID: "F001"}, "F404")

	assert.Equal(t, http.StatusNotFound, rr.Code)
}
