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

type TestRemover interface {
	DeleteTest(ctx context.Context, id string) error
}

func RemoveTest(log *slog.Logger, remover TestRemover) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		const op = "handlers.tests.RemoveTest"

		id := chi.URLParam(r, "id")

		ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
		defer cancel()

		if err := remover.DeleteTest(ctx, id); err != nil {
			response.Fail(log, w, r, op, err)
			return
		}

		log.Info("test deleted", slog.String("op", op), slog.String("id", id))

		render.JSON(w, r, response.Message("Teste excluído com sucesso"))
	}
}
