package mysql

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"

	"github.com/go-sql-driver/mysql"

	"aerotrack/internal/storage"
)

const errDuplicateEntry = 1062

const selectReport = `SELECT id, aeronave_codigo, aeronave_modelo, cliente, data_entrega, data_geracao, tipo, arquivo, conteudo FROM relatorios`

func (s *Storage) ListReports(ctx context.Context) ([]storage.Report, error) {
	const op = "storage.mysql.ListReports"

	rows, err := s.db.QueryContext(ctx, selectReport+` ORDER BY created_at, id`)
	if err != nil {
		return nil, fmt.Errorf("%s: ошибка получения отчётов: %w", op, err)
	}
	defer rows.Close()

	reports := []storage.Report{}
	for rows.Next() {
		var r storage.Report
		if err := scanReport(rows, &r); err != nil {
			return nil, fmt.Errorf("%s: ошибка сканирования строки отчёта: %w", op, err)
		}
		reports = append(reports, r)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	return reports, nil
}

func (s *Storage) GetReport(ctx context.Context, id string) (*storage.Report, error) {
	const op = "storage.mysql.GetReport"

	var r storage.Report
	err := scanReport(s.db.QueryRowContext(ctx, selectReport+` WHERE id = ?`, id), &r)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("%s: %w", op, storage.ErrReportNotFound)
	}
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	return &r, nil
}

func (s *Storage) SaveReport(ctx context.Context, r storage.Report) error {
	const op = "storage.mysql.SaveReport"

	_, err := s.db.ExecContext(ctx, `
        INSERT INTO relatorios (id, aeronave_codigo, aeronave_modelo, cliente, data_entrega, data_geracao, tipo, arquivo, conteudo)
        VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		r.ID, r.AircraftCode, r.AircraftModel, r.Client, r.DeliveryDate, r.GeneratedAt, r.Kind, r.File, r.Content,
	)
	if err != nil {
		var me *mysql.MySQLError
		if errors.As(err, &me) && me.Number == errDuplicateEntry {
			return fmt.Errorf("%s: %w", op, storage.ErrReportExists)
		}
		return fmt.Errorf("%s: ошибка сохранения отчёта: %w", op, err)
	}

	return nil
}

func (s *Storage) UpdateReport(ctx context.Context, id string, u storage.ReportUpdate) (*storage.Report, error) {
	const op = "storage.mysql.UpdateReport"

	var sets []string
	var args []interface{}
	add := func(col string, v *string) {
		if v != nil {
			sets = append(sets, col+" = ?")
			args = append(args, *v)
		}
	}
	add("cliente", u.Client)
	add("data_entrega", u.DeliveryDate)
	add("tipo", u.Kind)
	add("arquivo", u.File)
	add("conteudo", u.Content)

	if len(sets) > 0 {
		args = append(args, id)
		res, err := s.db.ExecContext(ctx, `UPDATE relatorios SET `+strings.Join(sets, ", ")+` WHERE id = ?`, args...)
		if err != nil {
			return nil, fmt.Errorf("%s: ошибка обновления отчёта: %w", op, err)
		}
		// MySQL не считает строку затронутой, если значения не изменились
		if n, err := res.RowsAffected(); err == nil && n == 0 {
			if _, err := s.GetReport(ctx, id); err != nil {
				return nil, fmt.Errorf("%s: %w", op, err)
			}
		}
	}

	r, err := s.GetReport(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	return r, nil
}

func (s *Storage) DeleteReport(ctx context.Context, id string) error {
	const op = "storage.mysql.DeleteReport"

	res, err := s.db.ExecContext(ctx, `DELETE FROM relatorios WHERE id = ?`, id)
	if err != nil {
		return fmt.Errorf("%s: ошибка удаления отчёта: %w", op, err)
	}

	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}
	if n == 0 {
		return fmt.Errorf("%s: %w", op, storage.ErrReportNotFound)
	}

	return nil
}

type scanner interface {
	Scan(dest ...any) error
}

func scanReport(row scanner, r *storage.Report) error {
	return row.Scan(&r.ID, &r.AircraftCode, &r.AircraftModel, &r.Client, &r.DeliveryDate, &r.GeneratedAt, &r.Kind, &r.File, &r.Content)
}
