package storage

import "aerotrack/internal/common"

var (
	ErrAircraftNotFound = common.NotFound("Aeronave não encontrada")
	ErrAircraftExists   = common.Conflict("Código já existe")

	ErrPartNotFound   = common.NotFound("Peça não encontrada")
	ErrPartExists     = common.Conflict("Peça já existe")
	ErrPartLinked     = common.Conflict("Peça já associada")
	ErrPartNotLinked  = common.NotFound("Peça não associada a esta aeronave")
	ErrStageNotFound  = common.NotFound("Etapa não encontrada")
	ErrStageExists    = common.Conflict("Etapa já existe")
	ErrStageLinked    = common.Conflict("Etapa já associada")
	ErrStageNotLinked = common.NotFound("Etapa não associada a esta aeronave")

	ErrEmployeeNotFound  = common.NotFound("Funcionário não encontrado")
	ErrEmployeeIDExists  = common.Conflict("ID já existe")
	ErrUsernameExists    = common.Conflict("Usuário já existe")
	ErrEmailInUse        = common.Conflict("Email já está em uso")
	ErrEmployeeLinked    = common.Conflict("Funcionário já associado")
	ErrEmployeeNotLinked = common.NotFound("Funcionário não associado a esta etapa")

	ErrTestNotFound  = common.NotFound("Teste não encontrado")
	ErrTestExists    = common.Conflict("Teste já existe")
	ErrTestLinked    = common.Conflict("Teste já associado")
	ErrTestNotLinked = common.NotFound("Teste não associado a esta aeronave")

	ErrReportNotFound = common.NotFound("Relatório não encontrado")
	ErrReportExists   = common.Conflict("Relatório já existe")
)
