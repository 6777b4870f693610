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

type StageGetter interface {
	ListStages(ctx context.Context) ([]*storage.Stage, error)
	GetStage(ctx context.Context, name string) (*storage.Stage, error)
}

func GetStages(log *slog.Logger, getter StageGetter) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		const op = "handlers.stages.GetStages"

		ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
		defer cancel()

		stages, err := getter.ListStages(ctx)
		if err != nil {
			response.Fail(log, w, r, op, err)
			return
		}

		render.JSON(w, r, stages)
	}
}

func GetStage(log *slog.Logger, getter StageGetter) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		const op = "handlers.stages.GetStage"

		ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
		defer cancel()

		st, err := getter.GetStage(ctx, chi.URLParam(r, "nome"))
		if err != nil {
			response.Fail(log, w, r, op, err)
			return
		}

		render.JSON(w, r, st)
	}
}

// GetStageEmployees - сотрудники, назначенные на этап.
func GetStageEmployees(log *slog.Logger, getter StageGetter) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		const op = "handlers.stages.GetStageEmployees"

		ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
		defer cancel()

		st, err := getter.GetStage(ctx, chi.URLParam(r, "nome"))
		if err != nil {
			response.Fail(log, w, r, op, err)
			return
		}

		render.JSON(w, r, st.Employees)
	}
}
