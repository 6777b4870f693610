package associate

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

	"aerotrack/internal/storage"
)

// MockLinker реализует AircraftLinker
type MockLinker struct {
	mock.Mock
}

func (m *MockLinker) result(args mock.Arguments) (*storage.Aircraft, error) {
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*storage.Aircraft), args.Error(1)
}

func (m *MockLinker) AttachPart(ctx context.Context, code, partName string) (*storage.Aircraft, error) {
	return m.result(m.Called(ctx, code, partName))
}

func (m *MockLinker) DetachPart(ctx context.Context, code, partName string) (*storage.Aircraft, error) {
	return m.result(m.Called(ctx, code, partName))
}

func (m *MockLinker) AttachStage(ctx context.Context, code, stageName string) (*storage.Aircraft, error) {
	return m.result(m.Called(ctx, code, stageName))
}

func (m *MockLinker) DetachStage(ctx context.Context, code, stageName string) (*storage.Aircraft, error) {
	return m.result(m.Called(ctx, code, stageName))
}

func (m *MockLinker) AttachTest(ctx context.Context, code, testID string) (*storage.Aircraft, error) {
	return m.result(m.Called(ctx, code, testID))
}

func (m *MockLinker) DetachTest(ctx context.Context, code, testID string) (*storage.Aircraft, error) {
	return m.result(m.Called(ctx, code, testID))
}

func (m *MockLinker) AddAircraftTest(ctx context.Context, code string, t storage.Test) (*storage.Aircraft, error) {
	return m.result(m.Called(ctx, code, t))
}

func router(m *MockLinker) http.Handler {
	log := slog.Default()
	r := chi.NewRouter()
	r.Post("/api/aeronaves/{codigo}/pecas", AssociatePart(log, m))
	r.Delete("/api/aeronaves/{codigo}/pecas/{nome}", DissociatePart(log, m))
	r.Post("/api/aeronaves/{codigo}/etapas", AssociateStage(log, m))
	r.Post("/api/aeronaves/{codigo}/testes", AddTest(log, m))
	r.Post("/api/aeronaves/{codigo}/testes/{id}", AssociateTest(log, m))
	return r
}

func TestAssociatePart_Success(t *testing.T) {
	m := new(MockLinker)
	part := &storage.Part{Name: "Motor Turbina", Type: storage.PartImported, Supplier: "Rolls-Royce", Status: storage.PartReady}
	m.On("AttachPart", mock.Anything, "AER001", "Motor Turbina").
		Return(&storage.Aircraft{Code: "AER001", Parts: []*storage.Part{part}}, nil)

	req := httptest.NewRequest(http.MethodPost, "/api/aeronaves/AER001/pecas", strings.NewReader(`{"nomePeca":"Motor Turbina"}`))
	rr := httptest.NewRecorder()
	router(m).ServeHTTP(rr, req)

	assert.Equal(t, http.StatusOK, rr.Code)
	var resp storage.Aircraft
	require.NoError(t, render.DecodeJSON(strings.NewReader(rr.Body.String()), &resp))
	require.Len(t, resp.Parts, 1)
	assert.Equal(t, "Motor Turbina", resp.Parts[0].Name)
	m.AssertExpectations(t)
}

func TestAssociatePart_AlreadyLinked(t *testing.T) {
	m := new(MockLinker)
	m.On("AttachPart", mock.Anything, "AER001", "Motor Turbina").Return(nil, storage.ErrPartLinked)

	req := httptest.NewRequest(http.MethodPost, "/api/aeronaves/AER001/pecas", strings.NewReader(`{"nomePeca":"Motor Turbina"}`))
	rr := httptest.NewRecorder()
	router(m).ServeHTTP(rr, req)

	assert.Equal(t, http.StatusBadRequest, rr.Code)
	assert.Contains(t, rr.Body.String(), "Peça já associada")
}

func TestAssociatePart_EmptyName(t *testing.T) {
	m := new(MockLinker)

	req := httptest.NewRequest(http.MethodPost, "/api/aeronaves/AER001/pecas", strings.NewReader(`{"nomePeca":"  "}`))
	rr := httptest.NewRecorder()
	router(m).ServeHTTP(rr, req)

	assert.Equal(t, http.StatusBadRequest, rr.Code)
	m.AssertNotCalled(t, "AttachPart", mock.Anything, mock.Anything, mock.Anything)
}

func TestDissociatePart_NotLinked(t *testing.T) {
	m := new(MockLinker)
	m.On("DetachPart", mock.Anything, "AER001", "Trem").Return(nil, storage.ErrPartNotLinked)

	req := httptest.NewRequest(http.MethodDelete, "/api/aeronaves/AER001/pecas/Trem", nil)
	rr := httptest.NewRecorder()
	router(m).ServeHTTP(rr, req)

	assert.Equal(t, http.StatusNotFound, rr.Code)
	m.AssertExpectations(t)
}

func TestAddTest_NormalizesEnums(t *testing.T) {
	m := new(MockLinker)
	m.On("AddAircraftTest", mock.Anything, "AER001", storage.Test{Type: storage.TestElectrical, Result: storage.TestApproved}).
		Return(&storage.Aircraft{Code: "AER001"}, nil)

	req := httptest.NewRequest(http.MethodPost, "/api/aeronaves/AER001/testes", strings.NewReader(`{"tipoTeste":"eletrico","resultado":"aprovado"}`))
	rr := httptest.NewRecorder()
	router(m).ServeHTTP(rr, req)

	assert.Equal(t, http.StatusOK, rr.Code)
	m.AssertExpectations(t)
}

func TestAddTest_InvalidType(t *testing.T) {
	m := new(MockLinker)

	req := httptest.NewRequest(http.MethodPost, "/api/aeronaves/AER001/testes", strings.NewReader(`{"tipoTeste":"SONORO"}`))
	rr := httptest.NewRecorder()
	router(m).ServeHTTP(rr, req)

	assert.Equal(t, http.StatusBadRequest, rr.Code)
}

func TestAssociateTest_ByID(t *testing.T) {
	m := new(MockLinker)
	m.On("AttachTest", mock.Anything, "AER001", "t-1").Return(&storage.Aircraft{Code: "AER001"}, nil)

	req := httptest.NewRequest(http.MethodPost, "/api/aeronaves/AER001/testes/t-1", nil)
	rr := httptest.NewRecorder()
	router(m).ServeHTTP(rr, req)

	assert.Equal(t, http.StatusOK, rr.Code)
	m.AssertExpectations(t)
}
