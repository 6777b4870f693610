package report

import (
	"fmt"
	"strings"
	"time"

	"aerotrack/internal/storage"
)

const (
	rule       = "========================================"
	dateLayout = "02/01/2006"
)

// Render формирует текст отчёта о сдаче самолёта. От вызова к вызову
// при тех же данных меняется только строка с датой формирования.
func Render(a *storage.Aircraft, client, deliveryDate string, generatedAt time.Time) string {
	var b strings.Builder

	b.WriteString(rule + "\n")
	b.WriteString("RELATÓRIO FINAL DE ENTREGA DE AERONAVE\n")
	b.WriteString(rule + "\n")
	fmt.Fprintf(&b, "Data de Geração: %s\n", generatedAt.Format(dateLayout))

	b.WriteString("\n--- DADOS DO CLIENTE ---\n")
	fmt.Fprintf(&b, "Cliente: %s\n", client)
	fmt.Fprintf(&b, "Data de Entrega Prevista: %s\n", deliveryDate)

	b.WriteString("\n--- DADOS DA AERONAVE ---\n")
	fmt.Fprintf(&b, "Código: %s\n", a.Code)
	fmt.Fprintf(&b, "Modelo: %s\n", a.Model)
	fmt.Fprintf(&b, "Tipo: %s\n", a.Type)
	fmt.Fprintf(&b, "Capacidade: %d passageiros\n", a.Capacity)
	fmt.Fprintf(&b, "Alcance: %d km\n", a.Range)

	b.WriteString("\n--- PEÇAS UTILIZADAS ---\n")
	if len(a.Parts) == 0 {
		b.WriteString("Nenhuma peça utilizada.\n")
	}
	for _, p := range a.Parts {
		fmt.Fprintf(&b, "- %s (Fornecedor: %s, Tipo: %s)\n", p.Name, p.Supplier, p.Type)
	}

	b.WriteString("\n--- ETAPAS DE PRODUÇÃO REALIZADAS ---\n")
	if len(a.Stages) == 0 {
		b.WriteString("Nenhuma etapa realizada.\n")
	}
	for _, s := range a.Stages {
		fmt.Fprintf(&b, "- %s\n", s.Name)
		fmt.Fprintf(&b, "      Prazo: %s\n", s.Deadline)
		fmt.Fprintf(&b, "      Status: %s\n", s.Status)
		b.WriteString("      Funcionários:\n")
		if len(s.Employees) == 0 {
			b.WriteString("      (Nenhum funcionário associado)\n")
		}
		for _, e := range s.Employees {
			fmt.Fprintf(&b, "      - %s: %s (%s)\n", e.ID, e.Name, e.Permission)
		}
	}

	b.WriteString("\n--- RESULTADOS DOS TESTES ---\n")
	if len(a.Tests) == 0 {
		b.WriteString("Nenhum teste realizado.\n")
	}
	for _, t := range a.Tests {
		fmt.Fprintf(&b, "- Teste %s: %s\n", t.Type, t.Result)
	}

	b.WriteString("\n" + rule + "\n")

	return strings.TrimSpace(b.String())
}
