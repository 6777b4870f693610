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

type StageRemover interface {
	DeleteStage(ctx context.Context, name string) error
}

func RemoveStage(log *slog.Logger, remover StageRemover) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		const op = "handlers.stages.RemoveStage"

		name := chi.URLParam(r, "nome")

		ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
		defer cancel()

		if err := remover.DeleteStage(ctx, name); err != nil {
			response.Fail(log, w, r, op, err)
			return
		}

		log.Info("stage deleted", slog.String("op", op), slog.String("nome", name))

		render.JSON(w, r, response.Message("Etapa excluída com sucesso"))
	}
}
