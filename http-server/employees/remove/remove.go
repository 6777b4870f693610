package remove

import (
	"context"
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/render"

	"aerotrack/internal/common"
	"aerotrack/internal/lib/api/response"
	"aerotrack/internal/middleware/auth"
)

type EmployeeRemover interface {
	DeleteEmployee(ctx context.Context, id string) error
}

func RemoveEmployee(log *slog.Logger, remover EmployeeRemover) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		const op = "handlers.employees.RemoveEmployee"

		id := chi.URLParam(r, "id")

		if me, ok := auth.EmployeeFromContext(r.Context()); ok && me.ID == id {
			response.Fail(log, w, r, op, common.Validation("Não é possível excluir o próprio usuário"))
			return
		}

		ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
		defer cancel()

		if err := remover.DeleteEmployee(ctx, id); err != nil {
			response.Fail(log, w, r, op, err)
			return
		}

		log.Info("employee deleted", slog.String("op", op), slog.String("id", id))

		render.JSON(w, r, response.Message("Funcionário excluído com sucesso"))
	}
}
