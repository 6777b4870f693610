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

type PartRemover interface {
	DeletePart(ctx context.Context, name string) error
}

func RemovePart(log *slog.Logger, remover PartRemover) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		const op = "handlers.parts.RemovePart"

		name := chi.URLParam(r, "nome")

		ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
		defer cancel()

		if err := remover.DeletePart(ctx, name); err != nil {
			response.Fail(log, w, r, op, err)
			return
		}

		log.Info("part deleted", slog.String("op", op), slog.String("nome", name))

		render.JSON(w, r, response.Message("Peça excluída com sucesso"))
	}
}
