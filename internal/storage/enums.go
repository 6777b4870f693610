package storage

import (
	"fmt"
	"strings"

	"aerotrack/internal/common"
)

type AircraftType string

const (
	AircraftCommercial AircraftType = "COMERCIAL"
	AircraftMilitary   AircraftType = "MILITAR"
)

type PartType string

const (
	PartNational PartType = "NACIONAL"
	PartImported PartType = "IMPORTADA"
)

type PartStatus string

const (
	PartInProduction PartStatus = "EM_PRODUCAO"
	PartInTransit    PartStatus = "EM_TRANSPORTE"
	PartReady        PartStatus = "PRONTA"
)

type StageStatus string

const (
	StagePending    StageStatus = "PENDENTE"
	StageInProgress StageStatus = "ANDAMENTO"
	StageDone       StageStatus = "CONCLUIDA"
)

type PermissionLevel string

const (
	PermissionAdmin    PermissionLevel = "ADMINISTRADOR"
	PermissionEngineer PermissionLevel = "ENGENHEIRO"
	PermissionOperator PermissionLevel = "OPERADOR"
)

type TestType string

const (
	TestElectrical  TestType = "ELETRICO"
	TestHydraulic   TestType = "HIDRAULICO"
	TestAerodynamic TestType = "AERODINAMICO"
)

type TestResult string

const (
	TestApproved TestResult = "APROVADO"
	TestRejected TestResult = "REPROVADO"
)

// NormalizeEnum приводит строковое значение перечисления к каноническому виду.
func NormalizeEnum(s string) string {
	return strings.ToUpper(strings.TrimSpace(s))
}

func parseEnum[T ~string](field, value string, allowed ...T) (T, error) {
	v := T(NormalizeEnum(value))
	for _, a := range allowed {
		if v == a {
			return v, nil
		}
	}

	names := make([]string, len(allowed))
	for i, a := range allowed {
		names[i] = string(a)
	}

	return "", common.Validation(fmt.Sprintf("Valor inválido para %s: %q (permitidos: %s)", field, value, strings.Join(names, ", ")))
}

func ParseAircraftType(s string) (AircraftType, error) {
	return parseEnum("tipo", s, AircraftCommercial, AircraftMilitary)
}

func ParsePartType(s string) (PartType, error) {
	return parseEnum("tipo", s, PartNational, PartImported)
}

func ParsePartStatus(s string) (PartStatus, error) {
	return parseEnum("status", s, PartInProduction, PartInTransit, PartReady)
}

func ParseStageStatus(s string) (StageStatus, error) {
	return parseEnum("status", s, StagePending, StageInProgress, StageDone)
}

func ParsePermissionLevel(s string) (PermissionLevel, error) {
	return parseEnum("nivelPermissao", s, PermissionAdmin, PermissionEngineer, PermissionOperator)
}

func ParseTestType(s string) (TestType, error) {
	return parseEnum("tipo", s, TestElectrical, TestHydraulic, TestAerodynamic)
}

func ParseTestResult(s string) (TestResult, error) {
	return parseEnum("resultado", s, TestApproved, TestRejected)
}
