package update

import (
	"context"
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/render"

	"aerotrack/internal/lib/api/response"
	"aerotrack/internal/storage"
)

type Request struct {
	Client       *string `json:"cliente"`
	DeliveryDate *string `json:"dataEntrega"`
	Kind         *string `json:"tipo"`
	File         *string `json:"arquivo"`
	Content      *string `json:"message"`
}

type ReportUpdater interface {
	UpdateReport(ctx context.Context, id string, u storage.ReportUpdate) (*storage.Report, error)
}

func UpdateReport(log *slog.Logger, updater ReportUpdater) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		const op = "handlers.reports.UpdateReport"

		id := chi.URLParam(r, "id")

		var req Request
		if err := render.DecodeJSON(r.Body, &req); err != nil {
			response.BadRequest(log, w, r, op, err)
			return
		}

		ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
		defer cancel()

		rep, err := updater.UpdateReport(ctx, id, storage.ReportUpdate{
			Client:       req.Client,
			DeliveryDate: req.DeliveryDate,
			Kind:         req.Kind,
			File:         req.File,
			Content:      req.Content,
		})
		if err != nil {
			response.Fail(log, w, r, op, err)
			return
		}

		log.Info("report updated", slog.String("op", op), slog.String("id", id))

		render.JSON(w, r, rep)
	}
}
