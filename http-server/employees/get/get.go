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

type EmployeeGetter interface {
	ListEmployees(ctx context.Context) ([]*storage.Employee, error)
	GetEmployee(ctx context.Context, id string) (*storage.Employee, error)
}

func GetEmployees(log *slog.Logger, getter EmployeeGetter) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		const op = "handlers.employees.GetEmployees"

		ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
		defer cancel()

		employees, err := getter.ListEmployees(ctx)
		if err != nil {
			response.Fail(log, w, r, op, err)
			return
		}

		render.JSON(w, r, employees)
	}
}

func GetEmployee(log *slog.Logger, getter EmployeeGetter) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		const op = "handlers.employees.GetEmployee"

		ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
		defer cancel()

		e, err := getter.GetEmployee(ctx, chi.URLParam(r, "id"))
		if err != nil {
			response.Fail(log, w, r, op, err)
			return
		}

		render.JSON(w, r, e)
	}
}
