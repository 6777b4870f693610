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

type PartGetter interface {
	ListParts(ctx context.Context) ([]*storage.Part, error)
	GetPart(ctx context.Context, name string) (*storage.Part, error)
	ListAircraftByPart(ctx context.Context, partName string) ([]*storage.Aircraft, error)
}

func GetParts(log *slog.Logger, getter PartGetter) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		const op = "handlers.parts.GetParts"

		ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
		defer cancel()

		parts, err := getter.ListParts(ctx)
		if err != nil {
			response.Fail(log, w, r, op, err)
			return
		}

		render.JSON(w, r, parts)
	}
}

func GetPart(log *slog.Logger, getter PartGetter) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		const op = "handlers.parts.GetPart"

		ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
		defer cancel()

		p, err := getter.GetPart(ctx, chi.URLParam(r, "nome"))
		if err != nil {
			response.Fail(log, w, r, op, err)
			return
		}

		render.JSON(w, r, p)
	}
}

// GetPartAircraft - самолёты, в которых используется деталь.
func GetPartAircraft(log *slog.Logger, getter PartGetter) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		const op = "handlers.parts.GetPartAircraft"

		name := chi.URLParam(r, "nome")

		ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
		defer cancel()

		if _, err := getter.GetPart(ctx, name); err != nil {
			response.Fail(log, w, r, op, err)
			return
		}

		list, err := getter.ListAircraftByPart(ctx, name)
		if err != nil {
			response.Fail(log, w, r, op, err)
			return
		}

		render.JSON(w, r, list)
	}
}
