package storage

import (
	"strings"

	"aerotrack/internal/common"
)

// Employee - сотрудник. Хеш и соль в ответы API не попадают.
type Employee struct {
	ID           string          `json:"id"`
	Name         string          `json:"nome"`
	Phone        string          `json:"telefone"`
	Address      string          `json:"endereco"`
	Username     string          `json:"usuario"`
	PasswordHash string          `json:"-"`
	Salt         string          `json:"-"`
	Permission   PermissionLevel `json:"nivelPermissao"`
}

type EmployeeUpdate struct {
	Name         *string
	Phone        *string
	Address      *string
	Username     *string
	PasswordHash *string
	Salt         *string
	Permission   *PermissionLevel
}

func (e *Employee) Validate() error {
	if strings.TrimSpace(e.ID) == "" {
		return common.Validation("ID é obrigatório")
	}
	if strings.TrimSpace(e.Name) == "" {
		return common.Validation("Nome é obrigatório")
	}
	if strings.TrimSpace(e.Username) == "" {
		return common.Validation("Usuário é obrigatório")
	}
	if _, err := ParsePermissionLevel(string(e.Permission)); err != nil {
		return err
	}

	return nil
}

func (e *Employee) Apply(u EmployeeUpdate) {
	if u.Name != nil {
		e.Name = *u.Name
	}
	if u.Phone != nil {
		e.Phone = *u.Phone
	}
	if u.Address != nil {
		e.Address = *u.Address
	}
	if u.Username != nil {
		e.Username = *u.Username
	}
	if u.PasswordHash != nil && u.Salt != nil {
		e.PasswordHash = *u.PasswordHash
		e.Salt = *u.Salt
	}
	if u.Permission != nil {
		e.Permission = *u.Permission
	}
}

func (e *Employee) Clone() *Employee {
	c := *e
	return &c
}

// CanGenerateReports - отчёты формируют только администратор и инженер.
func (e *Employee) CanGenerateReports() bool {
	return e.Permission == PermissionAdmin || e.Permission == PermissionEngineer
}
