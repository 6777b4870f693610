package save

import (
	"context"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"github.com/go-chi/render"
	"github.com/google/uuid"

	"aerotrack/internal/common"
	"aerotrack/internal/lib/api/response"
	"aerotrack/internal/storage"
)

type Request struct {
	AircraftCode  string `json:"aeronaveCodigo"`
	AircraftModel string `json:"aeronaveModelo"`
	Client        string `json:"cliente"`
	DeliveryDate  string `json:"dataEntrega"`
	Kind          string `json:"tipo"`
	File          string `json:"arquivo"`
	Content       string `json:"message"`
}

type ReportSaver interface {
	SaveReport(ctx context.Context, r storage.Report) error
}

// SaveReport заводит запись об отчёте вручную, без формирования текста.
func SaveReport(log *slog.Logger, saver ReportSaver) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		const op = "handlers.reports.SaveReport"

		var req Request
		if err := render.DecodeJSON(r.Body, &req); err != nil {
			response.BadRequest(log, w, r, op, err)
			return
		}
		if strings.TrimSpace(req.AircraftCode) == "" {
			response.Fail(log, w, r, op, common.Validation("Código da aeronave é obrigatório"))
			return
		}

		rep := storage.Report{
			ID:            uuid.NewString(),
			AircraftCode:  strings.TrimSpace(req.AircraftCode),
			AircraftModel: req.AircraftModel,
			Client:        req.Client,
			DeliveryDate:  req.DeliveryDate,
			GeneratedAt:   time.Now().Format(time.DateOnly),
			Kind:          req.Kind,
			File:          req.File,
			Content:       req.Content,
		}
		if rep.Kind == "" {
			rep.Kind = storage.ReportKindDelivery
		}

		ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
		defer cancel()

		if err := saver.SaveReport(ctx, rep); err != nil {
			response.Fail(log, w, r, op, err)
			return
		}

		log.Info("report saved", slog.String("op", op), slog.String("id", rep.ID))

		render.Status(r, http.StatusCreated)
		render.JSON(w, r, rep)
	}
}
