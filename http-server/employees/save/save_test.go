package save

import (
	"context"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"aerotrack/internal/service/credential"
	"aerotrack/internal/storage"
)

// MockSaver реализует EmployeeSaver
type MockSaver struct {
	mock.Mock
}

func (m *MockSaver) CreateEmployee(ctx context.Context, e storage.Employee) (*storage.Employee, error) {
	args := m.Called(ctx, e)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*storage.Employee), args.Error(1)
}

const body = `{"id":"F001","nome":"Ana","telefone":"1199","endereco":"Rua A","usuario":"ana","senha":"123456","nivelPermissao":"engenheiro"}`

func TestSaveEmployee_HashesPassword(t *testing.T) {
	m := new(MockSaver)
	m.On("CreateEmployee", mock.Anything, mock.MatchedBy(func(e storage.Employee) bool {
		return e.ID == "F001" &&
			e.Permission == storage.PermissionEngineer &&
			e.PasswordHash != "123456" &&
			credential.VerifyPassword("123456", e.PasswordHash, e.Salt)
	})).Return(&storage.Employee{ID: "F001", Name: "Ana", Username: "ana", PasswordHash: "x", Salt: "y", Permission: storage.PermissionEngineer}, nil)

	rr := httptest.NewRecorder()
	SaveEmployee(slog.Default(), m).ServeHTTP(rr, httptest.NewRequest(http.MethodPost, "/api/funcionarios", strings.NewReader(body)))

	assert.Equal(t, http.StatusCreated, rr.Code)
	assert.Contains(t, rr.Body.String(), `"nivelPermissao":"ENGENHEIRO"`)
	assert.NotContains(t, rr.Body.String(), "senha")
	assert.NotContains(t, rr.Body.String(), "salt")
	m.AssertExpectations(t)
}

func TestSaveEmployee_UsernameTaken(t *testing.T) {
	m := new(MockSaver)
	m.On("CreateEmployee", mock.Anything, mock.Anything).Return(nil, storage.ErrUsernameExists)

	rr := httptest.NewRecorder()
	SaveEmployee(slog.Default(), m).ServeHTTP(rr, httptest.NewRequest(http.MethodPost, "/api/funcionarios", strings.NewReader(body)))

	assert.Equal(t, http.StatusBadRequest, rr.Code)
	assert.Contains(t, rr.Body.String(), "Usuário já existe")
}

func TestSaveEmployee_MissingPassword(t *testing.T) {
	m := new(MockSaver)

	rr := httptest.NewRecorder()
	SaveEmployee(slog.Default(), m).ServeHTTP(rr, httptest.NewRequest(http.MethodPost, "/api/funcionarios",
		strings.NewReader(`{"id":"F002","nome":"Bia","usuario":"bia","nivelPermissao":"OPERADOR"}`)))

	assert.Equal(t, http.StatusBadRequest, rr.Code)
	m.AssertNotCalled(t, "CreateEmployee", mock.Anything, mock.Anything)
}
