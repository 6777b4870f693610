package associate

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

// MockAssigner реализует EmployeeAssigner
type MockAssigner struct {
	mock.Mock
}

func (m *MockAssigner) AssignEmployee(ctx context.Context, stageName, employeeID string) (*storage.Stage, error) {
	args := m.Called(ctx, stageName, employeeID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*storage.Stage), args.Error(1)
}

func (m *MockAssigner) UnassignEmployee(ctx context.Context, stageName, employeeID string) (*storage.Stage, error) {
	args := m.Called(ctx, stageName, employeeID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*storage.Stage), args.Error(1)
}

func router(m *MockAssigner) http.Handler {
	r := chi.NewRouter()
	r.Post("/api/etapas/{nome}/funcionarios", AssignEmployee(slog.Default(), m))
	r.Delete("/api/etapas/{nome}/funcionarios/{id}", UnassignEmployee(slog.Default(), m))
	return r
}

func TestAssignEmployee_Success(t *testing.T) {
	m := new(MockAssigner)
	m.On("AssignEmployee", mock.Anything, "Montagem", "F001").Return(&storage.Stage{
		Name:      "Montagem",
		Status:    storage.StagePending,
		Employees: []*storage.Employee{{ID: "F001", Name: "Ana", PasswordHash: "abc", Salt: "def"}},
	}, nil)

	rr := httptest.NewRecorder()
	router(m).ServeHTTP(rr, httptest.NewRequest(http.MethodPost, "/api/etapas/Montagem/funcionarios", strings.NewReader(`{"idFuncionario":"F001"}`)))

	assert.Equal(t, http.StatusOK, rr.Code)
	assert.Contains(t, rr.Body.String(), `"id":"F001"`)
	assert.NotContains(t, rr.Body.String(), "abc")
	m.AssertExpectations(t)
}

func TestAssignEmployee_Duplicate(t *testing.T) {
	m := new(MockAssigner)
	m.On("AssignEmployee", mock.Anything, "Montagem", "F001").Return(nil, storage.ErrEmployeeLinked)

	rr := httptest.NewRecorder()
	router(m).ServeHTTP(rr, httptest.NewRequest(http.MethodPost, "/api/etapas/Montagem/funcionarios", strings.NewReader(`{"idFuncionario":"F001"}`)))

	assert.Equal(t, http.StatusBadRequest, rr.Code)
}

func TestUnassignEmployee_UnknownStage(t *testing.T) {
	m := new(MockAssigner)
	m.On("UnassignEmployee", mock.Anything, "Pintura", "F001").Return(nil, storage.ErrStageNotFound)

	rr := httptest.NewRecorder()
	router(m).ServeHTTP(rr, httptest.NewRequest(http.MethodDelete, "/api/etapas/Pintura/funcionarios/F001", nil))

	assert.Equal(t, http.StatusNotFound, rr.Code)
}
