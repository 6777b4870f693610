package report

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"aerotrack/internal/common"
	"aerotrack/internal/storage"
)

const (
	DefaultClient       = "Cliente não informado"
	DefaultDeliveryDate = "Não informada"
)

var ErrForbidden = common.Forbidden("Permissão insuficiente")

type AircraftProvider interface {
	GetAircraft(ctx context.Context, code string) (*storage.Aircraft, error)
}

type Index interface {
	SaveReport(ctx context.Context, r storage.Report) error
}

// ArtifactStore хранит готовые тексты отчётов (диск или S3).
type ArtifactStore interface {
	Put(ctx context.Context, key string, content []byte) error
	Get(ctx context.Context, key string) ([]byte, error)
}

type Request struct {
	AircraftCode string
	Client       string
	DeliveryDate string
}

type Service struct {
	aircraft  AircraftProvider
	index     Index
	artifacts ArtifactStore
	now       func() time.Time
}

func NewService(aircraft AircraftProvider, index Index, artifacts ArtifactStore) *Service {
	return &Service{
		aircraft:  aircraft,
		index:     index,
		artifacts: artifacts,
		now:       time.Now,
	}
}

// Generate формирует отчёт, сохраняет его текст и запись в индексе.
// Формировать отчёты могут только администратор и инженер.
func (s *Service) Generate(ctx context.Context, by *storage.Employee, req Request) (*storage.Report, error) {
	const op = "service.report.Generate"

	r, err := s.build(ctx, by, req)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	if err := s.artifacts.Put(ctx, r.File, []byte(r.Content)); err != nil {
		return nil, fmt.Errorf("%s: ошибка сохранения файла отчёта: %w", op, err)
	}
	if err := s.index.SaveReport(ctx, *r); err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	return r, nil
}

// Preview формирует текст отчёта, ничего не сохраняя.
func (s *Service) Preview(ctx context.Context, by *storage.Employee, req Request) (string, error) {
	const op = "service.report.Preview"

	r, err := s.build(ctx, by, req)
	if err != nil {
		return "", fmt.Errorf("%s: %w", op, err)
	}
	return r.Content, nil
}

func (s *Service) build(ctx context.Context, by *storage.Employee, req Request) (*storage.Report, error) {
	if by == nil || !by.CanGenerateReports() {
		return nil, ErrForbidden
	}

	a, err := s.aircraft.GetAircraft(ctx, req.AircraftCode)
	if err != nil {
		return nil, err
	}

	client := strings.TrimSpace(req.Client)
	if client == "" {
		client = DefaultClient
	}
	delivery := strings.TrimSpace(req.DeliveryDate)
	if delivery == "" {
		delivery = DefaultDeliveryDate
	}

	now := s.now()
	return &storage.Report{
		ID:            uuid.NewString(),
		AircraftCode:  a.Code,
		AircraftModel: a.Model,
		Client:        client,
		DeliveryDate:  delivery,
		GeneratedAt:   now.Format(time.DateOnly),
		Kind:          storage.ReportKindDelivery,
		File:          FileName(a.Code, now),
		Content:       Render(a, client, delivery, now),
	}, nil
}

// Content возвращает текст отчёта: из хранилища файлов, а если файла нет - из индекса.
func (s *Service) Content(ctx context.Context, r *storage.Report) ([]byte, error) {
	const op = "service.report.Content"

	if r.File != "" {
		data, err := s.artifacts.Get(ctx, r.File)
		if err == nil {
			return data, nil
		}
		if r.Content == "" {
			return nil, fmt.Errorf("%s: %w", op, err)
		}
	}
	if r.Content == "" {
		return nil, fmt.Errorf("%s: %w", op, common.NotFound("Conteúdo do relatório não disponível"))
	}
	return []byte(r.Content), nil
}

func FileName(code string, at time.Time) string {
	return fmt.Sprintf("relatorio_%s_%d.txt", code, at.UnixMilli())
}
