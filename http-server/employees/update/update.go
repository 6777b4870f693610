package update

import (
	"context"
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/render"

	"aerotrack/internal/lib/api/response"
	"aerotrack/internal/service/credential"
	"aerotrack/internal/storage"
)

type Request struct {
	Name       *string `json:"nome"`
	Phone      *string `json:"telefone"`
	Address    *string `json:"endereco"`
	Username   *string `json:"usuario"`
	Password   *string `json:"senha"`
	Permission *string `json:"nivelPermissao"`
}

type EmployeeUpdater interface {
	UpdateEmployee(ctx context.Context, id string, u storage.EmployeeUpdate) (*storage.Employee, error)
}

func UpdateEmployee(log *slog.Logger, updater EmployeeUpdater) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		const op = "handlers.employees.UpdateEmployee"

		id := chi.URLParam(r, "id")

		var req Request
		if err := render.DecodeJSON(r.Body, &req); err != nil {
			response.BadRequest(log, w, r, op, err)
			return
		}

		u := storage.EmployeeUpdate{
			Name:     req.Name,
			Phone:    req.Phone,
			Address:  req.Address,
			Username: req.Username,
		}
		if req.Permission != nil {
			level, err := storage.ParsePermissionLevel(*req.Permission)
			if err != nil {
				response.Fail(log, w, r, op, err)
				return
			}
			u.Permission = &level
		}
		// пустая строка пароля означает "не менять"
		if req.Password != nil && *req.Password != "" {
			h, err := credential.GenerateHash(*req.Password)
			if err != nil {
				response.Fail(log, w, r, op, err)
				return
			}
			u.PasswordHash, u.Salt = &h.Hash, &h.Salt
		}

		ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
		defer cancel()

		e, err := updater.UpdateEmployee(ctx, id, u)
		if err != nil {
			response.Fail(log, w, r, op, err)
			return
		}

		log.Info("employee updated", slog.String("op", op), slog.String("id", id))

		render.JSON(w, r, e)
	}
}
