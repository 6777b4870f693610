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

// Request - все поля необязательные, меняются только переданные.
type Request struct {
	Model    *string `json:"modelo"`
	Type     *string `json:"tipo"`
	Capacity *int    `json:"capacidade"`
	Range    *int    `json:"alcance"`
}

type AircraftUpdater interface {
	UpdateAircraft(ctx context.Context, code string, u storage.AircraftUpdate) (*storage.Aircraft, error)
}

func UpdateAircraft(log *slog.Logger, updater AircraftUpdater) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		const op = "handlers.aircraft.UpdateAircraft"

		log := log.With(slog.String("op", op))
		code := chi.URLParam(r, "codigo")

		var req Request
		if err := render.DecodeJSON(r.Body, &req); err != nil {
			response.BadRequest(log, w, r, op, err)
			return
		}

		u := storage.AircraftUpdate{
			Model:    req.Model,
			Capacity: req.Capacity,
			Range:    req.Range,
		}
		if req.Type != nil {
			kind, err := storage.ParseAircraftType(*req.Type)
			if err != nil {
				response.Fail(log, w, r, op, err)
				return
			}
			u.Type = &kind
		}

		ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
		defer cancel()

		a, err := updater.UpdateAircraft(ctx, code, u)
		if err != nil {
			response.Fail(log, w, r, op, err)
			return
		}

		log.Info("aircraft updated", slog.String("codigo", code))

		render.JSON(w, r, a)
	}
}
