package storage

import (
	"strings"

	"aerotrack/internal/common"
)

type Stage struct {
	Name      string      `json:"nome"`
	Deadline  string      `json:"prazo"`
	Status    StageStatus `json:"status"`
	Employees []*Employee `json:"funcionarios"`
}

type StageUpdate struct {
	Deadline *string
	Status   *StageStatus
}

func (s *Stage) Validate() error {
	if strings.TrimSpace(s.Name) == "" {
		return common.Validation("Nome da etapa é obrigatório")
	}
	if _, err := ParseStageStatus(string(s.Status)); err != nil {
		return err
	}

	return nil
}

func (s *Stage) Apply(u StageUpdate) {
	if u.Deadline != nil {
		s.Deadline = *u.Deadline
	}
	if u.Status != nil {
		s.Status = *u.Status
	}
}

func (s *Stage) Clone() *Stage {
	c := *s
	c.Employees = make([]*Employee, len(s.Employees))
	for i, e := range s.Employees {
		c.Employees[i] = e.Clone()
	}
	return &c
}

func (s *Stage) HasEmployee(id string) bool {
	for _, e := range s.Employees {
		if e.ID == id {
			return true
		}
	}
	return false
}
