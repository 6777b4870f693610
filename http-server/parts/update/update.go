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
	Type     *string `json:"tipo"`
	Supplier *string `json:"fornecedor"`
	Status   *string `json:"status"`
}

type PartUpdater interface {
	UpdatePart(ctx context.Context, name string, u storage.PartUpdate) (*storage.Part, error)
}

func UpdatePart(log *slog.Logger, updater PartUpdater) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		const op = "handlers.parts.UpdatePart"

		name := chi.URLParam(r, "nome")

		var req Request
		if err := render.DecodeJSON(r.Body, &req); err != nil {
			response.BadRequest(log, w, r, op, err)
			return
		}

		u := storage.PartUpdate{Supplier: req.Supplier}
		if req.Type != nil {
			v, err := storage.ParsePartType(*req.Type)
			if err != nil {
				response.Fail(log, w, r, op, err)
				return
			}
			u.Type = &v
		}
		if req.Status != nil {
			v, err := storage.ParsePartStatus(*req.Status)
			if err != nil {
				response.Fail(log, w, r, op, err)
				return
			}
			u.Status = &v
		}

		ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
		defer cancel()

		p, err := updater.UpdatePart(ctx, name, u)
		if err != nil {
			response.Fail(log, w, r, op, err)
			return
		}

		log.Info("part updated", slog.String("op", op), slog.String("nome", name))

		render.JSON(w, r, p)
	}
}
