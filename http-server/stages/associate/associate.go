package associate

import (
	"context"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/render"

	"aerotrack/internal/common"
	"aerotrack/internal/lib/api/response"
	"aerotrack/internal/storage"
)

type Request struct {
	EmployeeID string `json:"idFuncionario"`
}

type EmployeeAssigner interface {
	AssignEmployee(ctx context.Context, stageName, employeeID string) (*storage.Stage, error)
	UnassignEmployee(ctx context.Context, stageName, employeeID string) (*storage.Stage, error)
}

func AssignEmployee(log *slog.Logger, assigner EmployeeAssigner) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		const op = "handlers.stages.AssignEmployee"

		stage := chi.URLParam(r, "nome")

		var req Request
		if err := render.DecodeJSON(r.Body, &req); err != nil {
			response.BadRequest(log, w, r, op, err)
			return
		}
		id := strings.TrimSpace(req.EmployeeID)
		if id == "" {
			response.Fail(log, w, r, op, common.Validation("ID do funcionário é obrigatório"))
			return
		}

		ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
		defer cancel()

		st, err := assigner.AssignEmployee(ctx, stage, id)
		if err != nil {
			response.Fail(log, w, r, op, err)
			return
		}

		log.Info("employee assigned", slog.String("op", op), slog.String("etapa", stage), slog.String("funcionario", id))

		render.JSON(w, r, st)
	}
}

func UnassignEmployee(log *slog.Logger, assigner EmployeeAssigner) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		const op = "handlers.stages.UnassignEmployee"

		stage := chi.URLParam(r, "nome")
		id := chi.URLParam(r, "id")

		ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
		defer cancel()

		st, err := assigner.UnassignEmployee(ctx, stage, id)
		if err != nil {
			response.Fail(log, w, r, op, err)
			return
		}

		log.Info("employee unassigned", slog.String("op", op), slog.String("etapa", stage), slog.String("funcionario", id))

		render.JSON(w, r, st)
	}
}
