package storage

import (
	"strings"

	"aerotrack/internal/common"
)

type Part struct {
	Name     string     `json:"nome"`
	Type     PartType   `json:"tipo"`
	Supplier string     `json:"fornecedor"`
	Status   PartStatus `json:"status"`
}

type PartUpdate struct {
	Type     *PartType
	Supplier *string
	Status   *PartStatus
}

func (p *Part) Validate() error {
	if strings.TrimSpace(p.Name) == "" {
		return common.Validation("Nome da peça é obrigatório")
	}
	if _, err := ParsePartType(string(p.Type)); err != nil {
		return err
	}
	if _, err := ParsePartStatus(string(p.Status)); err != nil {
		return err
	}

	return nil
}

func (p *Part) Apply(u PartUpdate) {
	if u.Type != nil {
		p.Type = *u.Type
	}
	if u.Supplier != nil {
		p.Supplier = *u.Supplier
	}
	if u.Status != nil {
		p.Status = *u.Status
	}
}

func (p *Part) Clone() *Part {
	c := *p
	return &c
}
