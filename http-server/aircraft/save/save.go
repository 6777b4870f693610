package save

import (
	"context"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"github.com/go-chi/render"

	"aerotrack/internal/lib/api/response"
	"aerotrack/internal/storage"
)

type Request struct {
	Code     string `json:"codigo"`
	Model    string `json:"modelo"`
	Type     string `json:"tipo"`
	Capacity int    `json:"capacidade"`
	Range    int    `json:"alcance"`
}

type AircraftSaver interface {
	CreateAircraft(ctx context.Context, a storage.Aircraft) (*storage.Aircraft, error)
}

func SaveAircraft(log *slog.Logger, saver AircraftSaver) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		const op = "handlers.aircraft.SaveAircraft"

		log := log.With(slog.String("op", op))

		var req Request
		if err := render.DecodeJSON(r.Body, &req); err != nil {
			response.BadRequest(log, w, r, op, err)
			return
		}

		kind, err := storage.ParseAircraftType(req.Type)
		if err != nil {
			response.Fail(log, w, r, op, err)
			return
		}

		ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
		defer cancel()

		a, err := saver.CreateAircraft(ctx, storage.Aircraft{
			Code:     strings.TrimSpace(req.Code),
			Model:    strings.TrimSpace(req.Model),
			Type:     kind,
			Capacity: req.Capacity,
			Range:    req.Range,
		})
		if err != nil {
			response.Fail(log, w, r, op, err)
			return
		}

		log.Info("aircraft created", slog.String("codigo", a.Code))

		render.Status(r, http.StatusCreated)
		render.JSON(w, r, a)
	}
}
