package get

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

type AircraftGetter interface {
	ListAircraft(ctx context.Context) ([]*storage.Aircraft, error)
	GetAircraft(ctx context.Context, code string) (*storage.Aircraft, error)
}

func GetAllAircraft(log *slog.Logger, getter AircraftGetter) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		const op = "handlers.aircraft.GetAllAircraft"

		ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
		defer cancel()

		list, err := getter.ListAircraft(ctx)
		if err != nil {
			response.Fail(log, w, r, op, err)
			return
		}

		log.Debug("aircraft listed", slog.String("op", op), slog.Int("count", len(list)))

		render.JSON(w, r, list)
	}
}

func GetAircraft(log *slog.Logger, getter AircraftGetter) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		const op = "handlers.aircraft.GetAircraft"

		a, ok := load(log, w, r, op, getter)
		if !ok {
			return
		}

		render.JSON(w, r, a)
	}
}

// GetAircraftParts - детали, связанные с самолётом.
func GetAircraftParts(log *slog.Logger, getter AircraftGetter) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		const op = "handlers.aircraft.GetAircraftParts"

		a, ok := load(log, w, r, op, getter)
		if !ok {
			return
		}

		render.JSON(w, r, a.Parts)
	}
}

func GetAircraftStages(log *slog.Logger, getter AircraftGetter) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		const op = "handlers.aircraft.GetAircraftStages"

		a, ok := load(log, w, r, op, getter)
		if !ok {
			return
		}

		render.JSON(w, r, a.Stages)
	}
}

func load(log *slog.Logger, w http.ResponseWriter, r *http.Request, op string, getter AircraftGetter) (*storage.Aircraft, bool) {
	code := chi.URLParam(r, "codigo")

	ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
	defer cancel()

	a, err := getter.GetAircraft(ctx, code)
	if err != nil {
		response.Fail(log, w, r, op, err)
		return nil, false
	}
	return a, true
}
