package jsonfile

import (
	"context"
	"fmt"

	"aerotrack/internal/storage"
)

// Методы ниже - индекс отчётов в relatorios.json.

func (s *Storage) ListReports(ctx context.Context) ([]storage.Report, error) {
	unlock, err := s.lock(ctx)
	if err != nil {
		return nil, err
	}
	defer unlock()

	out := make([]storage.Report, len(s.reports))
	for i, r := range s.reports {
		out[i] = *r
	}
	return out, nil
}

func (s *Storage) GetReport(ctx context.Context, id string) (*storage.Report, error) {
	const op = "storage.jsonfile.GetReport"

	unlock, err := s.lock(ctx)
	if err != nil {
		return nil, err
	}
	defer unlock()

	_, r := s.findReport(id)
	if r == nil {
		return nil, fmt.Errorf("%s: %w", op, storage.ErrReportNotFound)
	}
	c := *r
	return &c, nil
}

func (s *Storage) SaveReport(ctx context.Context, r storage.Report) error {
	const op = "storage.jsonfile.SaveReport"

	unlock, err := s.lock(ctx)
	if err != nil {
		return err
	}
	defer unlock()
	cp := s.checkpoint()

	if _, dup := s.findReport(r.ID); dup != nil {
		return fmt.Errorf("%s: %w", op, storage.ErrReportExists)
	}
	s.reports = append(s.reports, &r)

	if err := s.commit(cp, fileReports); err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}
	return nil
}

func (s *Storage) UpdateReport(ctx context.Context, id string, u storage.ReportUpdate) (*storage.Report, error) {
	const op = "storage.jsonfile.UpdateReport"

	unlock, err := s.lock(ctx)
	if err != nil {
		return nil, err
	}
	defer unlock()
	cp := s.checkpoint()

	_, r := s.findReport(id)
	if r == nil {
		return nil, fmt.Errorf("%s: %w", op, storage.ErrReportNotFound)
	}
	r.Apply(u)

	if err := s.commit(cp, fileReports); err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	c := *r
	return &c, nil
}

func (s *Storage) DeleteReport(ctx context.Context, id string) error {
	const op = "storage.jsonfile.DeleteReport"

	unlock, err := s.lock(ctx)
	if err != nil {
		return err
	}
	defer unlock()
	cp := s.checkpoint()

	i, _ := s.findReport(id)
	if i < 0 {
		return fmt.Errorf("%s: %w", op, storage.ErrReportNotFound)
	}
	s.reports = append(s.reports[:i], s.reports[i+1:]...)

	if err := s.commit(cp, fileReports); err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}
	return nil
}

func (s *Storage) findReport(id string) (int, *storage.Report) {
	for i, r := range s.reports {
		if r.ID == id {
			return i, r
		}
	}
	return -1, nil
}
