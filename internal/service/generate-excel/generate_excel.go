package generate_excel

import (
	"context"
	"fmt"

	"github.com/xuri/excelize/v2"

	"aerotrack/internal/storage"
)

type AircraftProvider interface {
	GetAircraft(ctx context.Context, code string) (*storage.Aircraft, error)
}

type GenerateExcelService struct {
	storage AircraftProvider
}

func NewGenerateService(storage AircraftProvider) *GenerateExcelService {
	return &GenerateExcelService{storage: storage}
}

const (
	sheetAircraft = "Aeronave"
	sheetParts    = "Pecas"
	sheetStages   = "Etapas"
	sheetTests    = "Testes"
)

// GenerateExcel выгружает состояние самолёта в книгу xlsx, по листу на раздел.
func (g *GenerateExcelService) GenerateExcel(ctx context.Context, code string) ([]byte, error) {
	const op = "service.generate_excel.GenerateExcel"

	a, err := g.storage.GetAircraft(ctx, code)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	f := excelize.NewFile()
	defer f.Close()

	if err := f.SetSheetName("Sheet1", sheetAircraft); err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	for _, name := range []string{sheetParts, sheetStages, sheetTests} {
		if _, err := f.NewSheet(name); err != nil {
			return nil, fmt.Errorf("%s: %w", op, err)
		}
	}

	// жирная шапка с заливкой
	headerStyle, err := f.NewStyle(&excelize.Style{
		Font:   &excelize.Font{Bold: true},
		Fill:   excelize.Fill{Type: "pattern", Color: []string{"E0E0E0"}, Pattern: 1},
		Border: []excelize.Border{{Type: "bottom", Color: "000000", Style: 2}},
	})
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	aircraftRows := [][]any{
		{a.Code, a.Model, string(a.Type), a.Capacity, a.Range, len(a.Parts), len(a.Stages), len(a.Tests)},
	}
	if err := writeSheet(f, sheetAircraft, headerStyle,
		[]string{"Código", "Modelo", "Tipo", "Capacidade", "Alcance (km)", "Peças", "Etapas", "Testes"}, aircraftRows); err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	partRows := make([][]any, 0, len(a.Parts))
	for _, p := range a.Parts {
		partRows = append(partRows, []any{p.Name, p.Supplier, string(p.Type), string(p.Status)})
	}
	if err := writeSheet(f, sheetParts, headerStyle, []string{"Nome", "Fornecedor", "Tipo", "Status"}, partRows); err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	// один сотрудник - одна строка, этап без сотрудников - одна строка с пустыми ячейками
	stageRows := make([][]any, 0, len(a.Stages))
	for _, s := range a.Stages {
		if len(s.Employees) == 0 {
			stageRows = append(stageRows, []any{s.Name, s.Deadline, string(s.Status), "", "", ""})
			continue
		}
		for _, e := range s.Employees {
			stageRows = append(stageRows, []any{s.Name, s.Deadline, string(s.Status), e.ID, e.Name, string(e.Permission)})
		}
	}
	if err := writeSheet(f, sheetStages, headerStyle,
		[]string{"Etapa", "Prazo", "Status", "ID Funcionário", "Funcionário", "Nível"}, stageRows); err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	testRows := make([][]any, 0, len(a.Tests))
	for _, t := range a.Tests {
		testRows = append(testRows, []any{t.ID, string(t.Type), string(t.Result)})
	}
	if err := writeSheet(f, sheetTests, headerStyle, []string{"ID", "Tipo", "Resultado"}, testRows); err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	buf, err := f.WriteToBuffer()
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	return buf.Bytes(), nil
}

func writeSheet(f *excelize.File, sheet string, style int, headers []string, rows [][]any) error {
	for i, name := range headers {
		if err := setCell(f, sheet, i+1, 1, name); err != nil {
			return err
		}
	}

	last, err := excelize.CoordinatesToCellName(len(headers), 1)
	if err != nil {
		return fmt.Errorf("%s: %w", sheet, err)
	}
	if err := f.SetCellStyle(sheet, "A1", last, style); err != nil {
		return fmt.Errorf("%s: estilo do cabeçalho: %w", sheet, err)
	}

	for r, row := range rows {
		for c, val := range row {
			if err := setCell(f, sheet, c+1, r+2, val); err != nil {
				return err
			}
		}
	}

	// закрепляем первую строку
	if err := f.SetPanes(sheet, &excelize.Panes{
		Freeze:      true,
		YSplit:      1,
		TopLeftCell: "A2",
	}); err != nil {
		return fmt.Errorf("%s: %w", sheet, err)
	}

	lastCol, err := excelize.ColumnNumberToName(len(headers))
	if err != nil {
		return fmt.Errorf("%s: %w", sheet, err)
	}
	if err := f.SetColWidth(sheet, "A", lastCol, 18); err != nil {
		return fmt.Errorf("%s: %w", sheet, err)
	}
	return nil
}

func setCell(f *excelize.File, sheet string, col, row int, val any) error {
	cell, err := excelize.CoordinatesToCellName(col, row)
	if err != nil {
		return fmt.Errorf("%s: %w", sheet, err)
	}
	if err := f.SetCellValue(sheet, cell, val); err != nil {
		return fmt.Errorf("%s!%s: %w", sheet, cell, err)
	}
	return nil
}
