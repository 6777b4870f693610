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
	Deadline *string `json:"prazo"`
	Status   *string `json:"status"`
}

type StageUpdater interface {
	UpdateStage(ctx context.Context, name string, u storage.StageUpdate) (*storage.Stage, error)
}

// UpdateStage меняет срок и статус этапа (например, PENDENTE -> ANDAMENTO).
func UpdateStage(log *slog.Logger, updater StageUpdater) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		const op = "handlers.stages.UpdateStage"

		name := chi.URLParam(r, "nome")

		var req Request
		if err := render.DecodeJSON(r.Body, &req); err != nil {
			response.BadRequest(log, w, r, op, err)
			return
		}

		u := storage.StageUpdate{Deadline: req.Deadline}
		if req.Status != nil {
			v, err := storage.ParseStageStatus(*req.Status)
			if err != nil {
				response.Fail(log, w, r, op, err)
				return
			}
			u.Status = &v
		}

		ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
		defer cancel()

		st, err := updater.UpdateStage(ctx, name, u)
		if err != nil {
			response.Fail(log, w, r, op, err)
			return
		}

		log.Info("stage updated", slog.String("op", op), slog.String("nome", name), slog.String("status", string(st.Status)))

		render.JSON(w, r, st)
	}
}
