package storage

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"aerotrack/internal/common"
)

func TestParseEnums(t *testing.T) {
	at, err := ParseAircraftType(" militar ")
	require.NoError(t, err)
	assert.Equal(t, AircraftMilitary, at)

	st, err := ParseStageStatus("pendente")
	require.NoError(t, err)
	assert.Equal(t, StagePending, st)

	_, err = ParsePartStatus("quebrada")
	assert.ErrorIs(t, err, common.ErrValidation)

	_, err = ParseTestResult("")
	assert.ErrorIs(t, err, common.ErrValidation)
}

func TestAircraftValidate(t *testing.T) {
	a := &Aircraft{Code: "AER001", Model: "Boeing 737", Type: AircraftCommercial, Capacity: 180, Range: 5000}
	assert.NoError(t, a.Validate())

	a.Capacity = -1
	assert.ErrorIs(t, a.Validate(), common.ErrValidation)

	a.Capacity = 10
	a.Type = "ZEPPELIN"
	assert.ErrorIs(t, a.Validate(), common.ErrValidation)
}

func TestAircraftApplyTouchesOnlyGivenFields(t *testing.T) {
	a := &Aircraft{Code: "AER001", Model: "Boeing 737", Type: AircraftCommercial, Capacity: 180, Range: 5000}
	capacity := 200

	a.Apply(AircraftUpdate{Capacity: &capacity})

	assert.Equal(t, 200, a.Capacity)
	assert.Equal(t, "Boeing 737", a.Model)
	assert.Equal(t, 5000, a.Range)
}

func TestAircraftCloneIsDetached(t *testing.T) {
	e := &Employee{ID: "F1", Name: "Ana", Permission: PermissionEngineer}
	a := &Aircraft{
		Code:   "AER001",
		Parts:  []*Part{{Name: "Motor", Type: PartImported, Status: PartReady}},
		Stages: []*Stage{{Name: "Montagem", Status: StagePending, Employees: []*Employee{e}}},
		Tests:  []*Test{{ID: "t1", Type: TestElectrical, Result: TestApproved}},
	}

	c := a.Clone()
	c.Parts[0].Name = "Asa"
	c.Stages[0].Employees[0].Name = "Bruno"

	assert.Equal(t, "Motor", a.Parts[0].Name)
	assert.Equal(t, "Ana", e.Name)
	assert.True(t, a.HasTest("t1"))
	assert.False(t, a.HasStage("Pintura"))
}

func TestEmployeeApplyPassword(t *testing.T) {
	e := &Employee{ID: "F1", PasswordHash: "old", Salt: "s0"}
	hash, salt := "new", "s1"

	e.Apply(EmployeeUpdate{PasswordHash: &hash})
	assert.Equal(t, "old", e.PasswordHash)

	e.Apply(EmployeeUpdate{PasswordHash: &hash, Salt: &salt})
	assert.Equal(t, "new", e.PasswordHash)
	assert.Equal(t, "s1", e.Salt)
}

func TestCanGenerateReports(t *testing.T) {
	assert.True(t, (&Employee{Permission: PermissionAdmin}).CanGenerateReports())
	assert.True(t, (&Employee{Permission: PermissionEngineer}).CanGenerateReports())
	assert.False(t, (&Employee{Permission: PermissionOperator}).CanGenerateReports())
}
