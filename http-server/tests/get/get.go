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

type TestGetter interface {
	ListTests(ctx context.Context) ([]*storage.Test, error)
	GetTest(ctx context.Context, id string) (*storage.Test, error)
}

func GetTests(log *slog.Logger, getter TestGetter) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		const op = "handlers.tests.GetTests"

		ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
		defer cancel()

		tests, err := getter.ListTests(ctx)
		if err != nil {
			response.Fail(log, w, r, op, err)
			return
		}

		render.JSON(w, r, tests)
	}
}

func GetTest(log *slog.Logger, getter TestGetter) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		const op = "handlers.tests.GetTest"

		ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
		defer cancel()

		t, err := getter.GetTest(ctx, chi.URLParam(r, "id"))
		if err != nil {
			response.Fail(log, w, r, op, err)
			return
		}

		render.JSON(w, r, t)
	}
}
