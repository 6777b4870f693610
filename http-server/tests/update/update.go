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
	Type   *string `json:"tipo"`
	Result *string `json:"resultado"`
}

type TestUpdater interface {
	UpdateTest(ctx context.Context, id string, u storage.TestUpdate) (*storage.Test, error)
}

func UpdateTest(log *slog.Logger, updater TestUpdater) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		const op = "handlers.tests.UpdateTest"

		id := chi.URLParam(r, "id")

		var req Request
		if err := render.DecodeJSON(r.Body, &req); err != nil {
			response.BadRequest(log, w, r, op, err)
			return
		}

		var u storage.TestUpdate
		if req.Type != nil {
			v, err := storage.ParseTestType(*req.Type)
			if err != nil {
				response.Fail(log, w, r, op, err)
				return
			}
			u.Type = &v
		}
		if req.Result != nil {
			v, err := storage.ParseTestResult(*req.Result)
			if err != nil {
				response.Fail(log, w, r, op, err)
				return
			}
			u.Result = &v
		}

		ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
		defer cancel()

		t, err := updater.UpdateTest(ctx, id, u)
		if err != nil {
			response.Fail(log, w, r, op, err)
			return
		}

		log.Info("test updated", slog.String("op", op), slog.String("id", id))

		render.JSON(w, r, t)
	}
}
