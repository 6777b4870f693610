package auth

import (
	"context"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"aerotrack/internal/lib/token"
	"aerotrack/internal/storage"
)

// MockEmployees реализует EmployeeProvider
type MockEmployees struct {
	mock.Mock
}

func (m *MockEmployees) GetEmployee(ctx context.Context, id string) (*storage.Employee, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*storage.Employee), args.Error(1)
}

const secret = "segredo"

func protected(t *testing.T, employees EmployeeProvider, mw ...func(http.Handler) http.Handler) http.Handler {
	t.Helper()
	var h http.Handler = http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		e, ok := EmployeeFromContext(r.Context())
		require.True(t, ok)
		w.Write([]byte(e.ID))
	})
	for i := len(mw) - 1; i >= 0; i-- {
		h = mw[i](h)
	}
	return BearerAuth(slog.Default(), secret, employees)(h)
}

func TestBearerAuth_MissingToken(t *testing.T) {
	m := new(MockEmployees)
	rr := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/aeronaves", nil)

	protected(t, m).ServeHTTP(rr, req)

	assert.Equal(t, http.StatusUnauthorized, rr.Code)
	assert.Contains(t, rr.Body.String(), "Token de acesso requerido")
	m.AssertNotCalled(t, "GetEmployee", mock.Anything, mock.Anything)
}

func TestBearerAuth_InvalidToken(t *testing.T) {
	m := new(MockEmployees)
	rr := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/aeronaves", nil)
	req.Header.Set("Authorization", "Bearer user-1700000000000")

	protected(t, m).ServeHTTP(rr, req)

	assert.Equal(t, http.StatusUnauthorized, rr.Code)
	assert.Contains(t, rr.Body.String(), "Token inválido")
}

func TestBearerAuth_UnknownEmployee(t *testing.T) {
	m := new(MockEmployees)
	m.On("GetEmployee", mock.Anything, "F404").Return(nil, storage.ErrEmployeeNotFound)

	tok, err := token.Issue(secret, "F404", time.Hour)
	require.NoError(t, err)

	rr := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/aeronaves", nil)
	req.Header.Set("Authorization", "Bearer "+tok)

	protected(t, m).ServeHTTP(rr, req)

	assert.Equal(t, http.StatusUnauthorized, rr.Code)
	m.AssertExpectations(t)
}

func TestBearerAuth_OK(t *testing.T) {
	m := new(MockEmployees)
	m.On("GetEmployee", mock.Anything, "F001").Return(&storage.Employee{ID: "F001", Permission: storage.PermissionOperator}, nil)

	tok, err := token.Issue(secret, "F001", time.Hour)
	require.NoError(t, err)

	rr := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/aeronaves", nil)
	req.Header.Set("Authorization", "Bearer "+tok)

	protected(t, m).ServeHTTP(rr, req)

	assert.Equal(t, http.StatusOK, rr.Code)
	assert.Equal(t, "F001", rr.Body.String())
}

func TestRequirePermission(t *testing.T) {
	tests := []struct {
		level storage.PermissionLevel
		want  int
	}{
		{storage.PermissionAdmin, http.StatusOK},
		{storage.PermissionEngineer, http.StatusOK},
		{storage.PermissionOperator, http.StatusForbidden},
	}

	for _, tt := range tests {
		t.Run(string(tt.level), func(t *testing.T) {
			m := new(MockEmployees)
			m.On("GetEmployee", mock.Anything, "F001").Return(&storage.Employee{ID: "F001", Permission: tt.level}, nil)

			tok, err := token.Issue(secret, "F001", time.Hour)
			require.NoError(t, err)

			rr := httptest.NewRecorder()
			req := httptest.NewRequest(http.MethodPost, "/api/aeronaves/AER001/relatorio", nil)
			req.Header.Set("Authorization", "Bearer "+tok)

			protected(t, m, RequirePermission(storage.PermissionAdmin, storage.PermissionEngineer)).ServeHTTP(rr, req)

			assert.Equal(t, tt.want, rr.Code)
		})
	}
}
