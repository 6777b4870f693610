package generate

import (
	"context"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/render"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"aerotrack/internal/middleware/auth"
	"aerotrack/internal/service/report"
	"aerotrack/internal/storage"
)

// MockGenerator реализует ReportGenerator
type MockGenerator struct {
	mock.Mock
}

func (m *MockGenerator) Generate(ctx context.Context, by *storage.Employee, req report.Request) (*storage.Report, error) {
	args := m.Called(ctx, by, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*storage.Report), args.Error(1)
}

func serve(m *MockGenerator, me *storage.Employee, body string) *httptest.ResponseRecorder {
	r := chi.NewRouter()
	r.Post("/api/aeronaves/{codigo}/relatorio", GenerateReport(slog.Default(), m))

	req := httptest.NewRequest(http.MethodPost, "/api/aeronaves/AER001/relatorio", strings.NewReader(body))
	if me != nil {
		req = req.WithContext(auth.WithEmployee(req.Context(), me))
	}

	rr := httptest.NewRecorder()
	r.ServeHTTP(rr, req)
	return rr
}

func TestGenerateReport_Success(t *testing.T) {
	m := new(MockGenerator)
	me := &storage.Employee{ID: "F001", Permission: storage.PermissionEngineer}
	rep := &storage.Report{
		ID:           "r1",
		AircraftCode: "AER001",
		Client:       "Acme",
		File:         "relatorio_AER001_1.txt",
		Content:      "RELATÓRIO FINAL DE ENTREGA DE AERONAVE",
	}
	m.On("Generate", mock.Anything, me, report.Request{AircraftCode: "AER001", Client: "Acme", DeliveryDate: "2025-01-01"}).
		Return(rep, nil)

	rr := serve(m, me, `{"cliente":"Acme","dataEntrega":"2025-01-01"}`)

	assert.Equal(t, http.StatusOK, rr.Code)
	var resp Response
	require.NoError(t, render.DecodeJSON(strings.NewReader(rr.Body.String()), &resp))
	assert.Equal(t, rep.Content, resp.Message)
	assert.Equal(t, rep.Content, resp.Content)
	assert.Equal(t, rep.File, resp.File)
	require.NotNil(t, resp.Report)
	assert.Equal(t, "r1", resp.Report.ID)
	m.AssertExpectations(t)
}

func TestGenerateReport_EmptyBody(t *testing.T) {
	m := new(MockGenerator)
	me := &storage.Employee{ID: "F001", Permission: storage.PermissionAdmin}
	m.On("Generate", mock.Anything, me, report.Request{AircraftCode: "AER001"}).
		Return(&storage.Report{ID: "r1"}, nil)

	rr := serve(m, me, "")

	assert.Equal(t, http.StatusOK, rr.Code)
	m.AssertExpectations(t)
}

func TestGenerateReport_Forbidden(t *testing.T) {
	m := new(MockGenerator)
	me := &storage.Employee{ID: "F003", Permission: storage.PermissionOperator}
	m.On("Generate", mock.Anything, me, mock.Anything).Return(nil, report.ErrForbidden)

	rr := serve(m, me, `{}`)

	assert.Equal(t, http.StatusForbidden, rr.Code)
	assert.Contains(t, rr.Body.String(), "Permissão insuficiente")
}

func TestGenerateReport_NoEmployee(t *testing.T) {
	m := new(MockGenerator)

	rr := serve(m, nil, `{}`)

	assert.Equal(t, http.StatusUnauthorized, rr.Code)
	m.AssertNotCalled(t, "Generate", mock.Anything, mock.Anything, mock.Anything)
}
