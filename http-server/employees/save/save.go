package save

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"github.com/go-chi/render"

	"aerotrack/internal/common"
	"aerotrack/internal/lib/api/response"
	"aerotrack/internal/service/credential"
	"aerotrack/internal/storage"
)

type Request struct {
	ID         string `json:"id"`
	Name       string `json:"nome"`
	Phone      string `json:"telefone"`
	Address    string `json:"endereco"`
	Username   string `json:"usuario"`
	Password   string `json:"senha"`
	Permission string `json:"nivelPermissao"`
}

type EmployeeSaver interface {
	CreateEmployee(ctx context.Context, e storage.Employee) (*storage.Employee, error)
}

func SaveEmployee(log *slog.Logger, saver EmployeeSaver) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		const op = "handlers.employees.SaveEmployee"

		log := log.With(slog.String("op", op))

		var req Request
		if err := render.DecodeJSON(r.Body, &req); err != nil {
			response.BadRequest(log, w, r, op, err)
			return
		}

		e, err := req.toEmployee()
		if err != nil {
			response.Fail(log, w, r, op, err)
			return
		}

		ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
		defer cancel()

		created, err := saver.CreateEmployee(ctx, e)
		if err != nil {
			response.Fail(log, w, r, op, err)
			return
		}

		log.Info("employee created", slog.String("id", created.ID), slog.String("nivel", string(created.Permission)))

		render.Status(r, http.StatusCreated)
		render.JSON(w, r, created)
	}
}

func (req Request) toEmployee() (storage.Employee, error) {
	if req.Password == "" {
		return storage.Employee{}, common.Validation("Senha é obrigatória")
	}

	level, err := storage.ParsePermissionLevel(req.Permission)
	if err != nil {
		return storage.Employee{}, err
	}

	h, err := credential.GenerateHash(req.Password)
	if err != nil {
		return storage.Employee{}, fmt.Errorf("hash password: %w", err)
	}

	return storage.Employee{
		ID:           strings.TrimSpace(req.ID),
		Name:         strings.TrimSpace(req.Name),
		Phone:        strings.TrimSpace(req.Phone),
		Address:      strings.TrimSpace(req.Address),
		Username:     strings.TrimSpace(req.Username),
		PasswordHash: h.Hash,
		Salt:         h.Salt,
		Permission:   level,
	}, nil
}
