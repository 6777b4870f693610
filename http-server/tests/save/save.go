package save

import (
	"context"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"github.com/go-chi/render"

	"aerotrack/internal/lib/api/response"
	"aerotrack/internal/storage"
)

// Request - id можно не передавать, тогда он будет сгенерирован.
type Request struct {
	ID     string `json:"id,omitempty"`
	Type   string `json:"tipo"`
	Result string `json:"resultado,omitempty"`
}

type TestSaver interface {
	CreateTest(ctx context.Context, t storage.Test) (*storage.Test, error)
}

func SaveTest(log *slog.Logger, saver TestSaver) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		const op = "handlers.tests.SaveTest"

		var req Request
		if err := render.DecodeJSON(r.Body, &req); err != nil {
			response.BadRequest(log, w, r, op, err)
			return
		}

		t := storage.Test{ID: strings.TrimSpace(req.ID)}
		var err error
		if t.Type, err = storage.ParseTestType(req.Type); err != nil {
			response.Fail(log, w, r, op, err)
			return
		}
		if req.Result != "" {
			if t.Result, err = storage.ParseTestResult(req.Result); err != nil {
				response.Fail(log, w, r, op, err)
				return
			}
		}

		ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
		defer cancel()

		created, err := saver.CreateTest(ctx, t)
		if err != nil {
			response.Fail(log, w, r, op, err)
			return
		}

		log.Info("test created", slog.String("op", op), slog.String("id", created.ID))

		render.Status(r, http.StatusCreated)
		render.JSON(w, r, created)
	}
}
