package report

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"aerotrack/internal/common"
	"aerotrack/internal/storage"
)

type MockAircraftProvider struct {
	mock.Mock
}

func (m *MockAircraftProvider) GetAircraft(ctx context.Context, code string) (*storage.Aircraft, error) {
	args := m.Called(ctx, code)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*storage.Aircraft), args.Error(1)
}

type MockIndex struct {
	mock.Mock
}

func (m *MockIndex) SaveReport(ctx context.Context, r storage.Report) error {
	return m.Called(ctx, r).Error(0)
}

type MockArtifacts struct {
	mock.Mock
}

func (m *MockArtifacts) Put(ctx context.Context, key string, content []byte) error {
	return m.Called(ctx, key, content).Error(0)
}

func (m *MockArtifacts) Get(ctx context.Context, key string) ([]byte, error) {
	args := m.Called(ctx, key)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]byte), args.Error(1)
}

func scenarioAircraft() *storage.Aircraft {
	return &storage.Aircraft{
		Code:     "AER001",
		Model:    "Boeing 737",
		Type:     storage.AircraftCommercial,
		Capacity: 180,
		Range:    5000,
		Parts: []*storage.Part{
			{Name: "Motor Turbina", Type: storage.PartImported, Supplier: "Rolls-Royce", Status: storage.PartInProduction},
		},
		Stages: []*storage.Stage{},
		Tests:  []*storage.Test{},
	}
}

func TestRender_Scenario(t *testing.T) {
	out := Render(scenarioAircraft(), "Acme", "2025-01-01", time.Date(2025, 2, 3, 10, 0, 0, 0, time.UTC))

	assert.Contains(t, out, "\n- Motor Turbina (Fornecedor: Rolls-Royce, Tipo: IMPORTADA)\n")
	assert.Contains(t, out, "Data de Geração: 03/02/2025")
	assert.Contains(t, out, "Cliente: Acme")
	assert.Contains(t, out, "Capacidade: 180 passageiros")
	assert.Contains(t, out, "Alcance: 5000 km")
	assert.Contains(t, out, "Nenhuma etapa realizada.")
	assert.Contains(t, out, "Nenhum teste realizado.")
	assert.True(t, strings.HasPrefix(out, "===================================="))
	assert.True(t, strings.HasSuffix(out, "========================================"))
}

func TestRender_StagesAndTests(t *testing.T) {
	a := scenarioAircraft()
	a.Parts = nil
	a.Stages = []*storage.Stage{
		{Name: "Montagem", Deadline: "2025-03-01", Status: storage.StageInProgress,
			Employees: []*storage.Employee{{ID: "F1", Name: "Ana", Permission: storage.PermissionEngineer}}},
		{Name: "Pintura", Deadline: "2025-04-01", Status: storage.StagePending},
	}
	a.Tests = []*storage.Test{{ID: "t1", Type: storage.TestElectrical, Result: storage.TestApproved}}

	out := Render(a, "Acme", "2025-05-01", time.Now())

	assert.Contains(t, out, "Nenhuma peça utilizada.")
	assert.Contains(t, out, "- Montagem\n      Prazo: 2025-03-01\n      Status: ANDAMENTO\n      Funcionários:\n      - F1: Ana (ENGENHEIRO)\n")
	assert.Contains(t, out, "- Pintura\n      Prazo: 2025-04-01\n      Status: PENDENTE\n      Funcionários:\n      (Nenhum funcionário associado)\n")
	assert.Contains(t, out, "- Teste ELETRICO: APROVADO")
}

func TestRender_DeterministicExceptDate(t *testing.T) {
	a := scenarioAircraft()
	first := Render(a, "Acme", "2025-01-01", time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC))
	second := Render(a, "Acme", "2025-01-01", time.Date(2026, 6, 7, 0, 0, 0, 0, time.UTC))

	strip := func(s string) string {
		var lines []string
		for _, l := range strings.Split(s, "\n") {
			if !strings.HasPrefix(l, "Data de Geração:") {
				lines = append(lines, l)
			}
		}
		return strings.Join(lines, "\n")
	}

	assert.NotEqual(t, first, second)
	assert.Equal(t, strip(first), strip(second))
	assert.Equal(t, first, Render(a, "Acme", "2025-01-01", time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)))
}

func TestGenerate_Success(t *testing.T) {
	at := time.Date(2025, 2, 3, 10, 0, 0, 0, time.UTC)
	aircraft := new(MockAircraftProvider)
	index := new(MockIndex)
	artifacts := new(MockArtifacts)

	aircraft.On("GetAircraft", mock.Anything, "AER001").Return(scenarioAircraft(), nil)
	artifacts.On("Put", mock.Anything, FileName("AER001", at), mock.MatchedBy(func(b []byte) bool {
		return strings.Contains(string(b), "Cliente: Cliente não informado")
	})).Return(nil)
	index.On("SaveReport", mock.Anything, mock.MatchedBy(func(r storage.Report) bool {
		return r.AircraftCode == "AER001" && r.DeliveryDate == DefaultDeliveryDate && r.Kind == "entrega" && r.ID != ""
	})).Return(nil)

	svc := NewService(aircraft, index, artifacts)
	svc.now = func() time.Time { return at }

	r, err := svc.Generate(context.Background(), &storage.Employee{ID: "F1", Permission: storage.PermissionEngineer}, Request{AircraftCode: "AER001"})
	require.NoError(t, err)

	assert.Equal(t, "relatorio_AER001_1738576800000.txt", r.File)
	assert.Equal(t, "2025-02-03", r.GeneratedAt)
	assert.Equal(t, DefaultClient, r.Client)
	aircraft.AssertExpectations(t)
	artifacts.AssertExpectations(t)
	index.AssertExpectations(t)
}

func TestGenerate_OperatorIsForbidden(t *testing.T) {
	aircraft := new(MockAircraftProvider)
	svc := NewService(aircraft, new(MockIndex), new(MockArtifacts))

	_, err := svc.Generate(context.Background(), &storage.Employee{Permission: storage.PermissionOperator}, Request{AircraftCode: "AER001"})

	assert.ErrorIs(t, err, common.ErrForbidden)
	aircraft.AssertNotCalled(t, "GetAircraft")
}

func TestGenerate_UnknownAircraft(t *testing.T) {
	aircraft := new(MockAircraftProvider)
	aircraft.On("GetAircraft", mock.Anything, "X").Return(nil, storage.ErrAircraftNotFound)
	artifacts := new(MockArtifacts)

	svc := NewService(aircraft, new(MockIndex), artifacts)
	_, err := svc.Generate(context.Background(), &storage.Employee{Permission: storage.PermissionAdmin}, Request{AircraftCode: "X"})

	assert.ErrorIs(t, err, common.ErrNotFound)
	artifacts.AssertNotCalled(t, "Put")
}

func TestContent_FallsBackToIndex(t *testing.T) {
	artifacts := new(MockArtifacts)
	artifacts.On("Get", mock.Anything, "relatorio_A_1.txt").Return(nil, errors.New("no such file"))

	svc := NewService(new(MockAircraftProvider), new(MockIndex), artifacts)

	data, err := svc.Content(context.Background(), &storage.Report{File: "relatorio_A_1.txt", Content: "texto"})
	require.NoError(t, err)
	assert.Equal(t, "texto", string(data))

	_, err = svc.Content(context.Background(), &storage.Report{})
	assert.ErrorIs(t, err, common.ErrNotFound)
}

func TestPreview_DoesNotPersist(t *testing.T) {
	aircraft := new(MockAircraftProvider)
	aircraft.On("GetAircraft", mock.Anything, "AER001").Return(scenarioAircraft(), nil)
	index, artifacts := new(MockIndex), new(MockArtifacts)

	svc := NewService(aircraft, index, artifacts)
	text, err := svc.Preview(context.Background(), &storage.Employee{Permission: storage.PermissionAdmin}, Request{AircraftCode: "AER001", Client: " Acme "})
	require.NoError(t, err)

	assert.Contains(t, text, "Cliente: Acme\n")
	index.AssertNotCalled(t, "SaveReport", mock.Anything, mock.Anything)
	artifacts.AssertNotCalled(t, "Put", mock.Anything, mock.Anything, mock.Anything)
}
