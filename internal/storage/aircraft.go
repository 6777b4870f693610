package storage

import (
	"strings"

	"aerotrack/internal/common"
)

// Aircraft - самолёт со связанными деталями, этапами и испытаниями.
// Связанные записи разделяются с их коллекциями (один экземпляр на ключ).
type Aircraft struct {
	Code     string       `json:"codigo"`
	Model    string       `json:"modelo"`
	Type     AircraftType `json:"tipo"`
	Capacity int          `json:"capacidade"`
	Range    int          `json:"alcance"`
	Parts    []*Part      `json:"pecas"`
	Stages   []*Stage     `json:"etapas"`
	Tests    []*Test      `json:"testes"`
}

type AircraftUpdate struct {
	Model    *string
	Type     *AircraftType
	Capacity *int
	Range    *int
}

func (a *Aircraft) Validate() error {
	if strings.TrimSpace(a.Code) == "" {
		return common.Validation("Código é obrigatório")
	}
	if strings.TrimSpace(a.Model) == "" {
		return common.Validation("Modelo é obrigatório")
	}
	if _, err := ParseAircraftType(string(a.Type)); err != nil {
		return err
	}
	if a.Capacity < 0 {
		return common.Validation("Capacidade não pode ser negativa")
	}
	if a.Range < 0 {
		return common.Validation("Alcance não pode ser negativo")
	}

	return nil
}

func (a *Aircraft) Apply(u AircraftUpdate) {
	if u.Model != nil {
		a.Model = *u.Model
	}
	if u.Type != nil {
		a.Type = *u.Type
	}
	if u.Capacity != nil {
		a.Capacity = *u.Capacity
	}
	if u.Range != nil {
		a.Range = *u.Range
	}
}

// Clone возвращает глубокую копию, не связанную с хранилищем.
func (a *Aircraft) Clone() *Aircraft {
	c := *a

	c.Parts = make([]*Part, len(a.Parts))
	for i, p := range a.Parts {
		c.Parts[i] = p.Clone()
	}

	c.Stages = make([]*Stage, len(a.Stages))
	for i, s := range a.Stages {
		c.Stages[i] = s.Clone()
	}

	c.Tests = make([]*Test, len(a.Tests))
	for i, t := range a.Tests {
		c.Tests[i] = t.Clone()
	}

	return &c
}

func (a *Aircraft) HasPart(name string) bool {
	for _, p := range a.Parts {
		if p.Name == name {
			return true
		}
	}
	return false
}

func (a *Aircraft) HasStage(name string) bool {
	for _, s := range a.Stages {
		if s.Name == name {
			return true
		}
	}
	return false
}

func (a *Aircraft) HasTest(id string) bool {
	for _, t := range a.Tests {
		if t.ID == id {
			return true
		}
	}
	return false
}
