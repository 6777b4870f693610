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

type AircraftRemover interface {
	DeleteAircraft(ctx context.Context, code string) error
}

func RemoveAircraft(log *slog.Logger, remover AircraftRemover) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		const op = "handlers.aircraft.RemoveAircraft"

		code := chi.URLParam(r, "codigo")

		ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
		defer cancel()

		if err := remover.DeleteAircraft(ctx, code); err != nil {
			response.Fail(log, w, r, op, err)
			return
		}

		log.Info("aircraft deleted", slog.String("op", op), slog.String("codigo", code))

		render.JSON(w, r, response.Message("Aeronave excluída com sucesso"))
	}
}
