package remove

import (
	"context"
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/render"

	"aerotrack/internal/lib/api/response"
)

type ReportRemover interface {
	DeleteReport(ctx context.Context, id string) error
}

func RemoveReport(log *slog.Logger, remover ReportRemover) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		const op = "handlers.reports.RemoveReport"

		id := chi.URLParam(r, "id")

		ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
		defer cancel()

		if err := remover.DeleteReport(ctx, id); err != nil {
			response.Fail(log, w, r, op, err)
			return
		}

		log.Info("report deleted", slog.String("op", op), slog.String("id", id))

		render.JSON(w, r, response.Message("Relatório excluído com sucesso"))
	}
}
