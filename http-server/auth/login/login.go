package login

import (
	"context"
	"errors"
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

var ErrInvalidCredentials = common.Unauthorized("Credenciais inválidas")

type Request struct {
	Username string `json:"usuario"`
	Password string `json:"senha"`
}

type Response struct {
	Token string           `json:"token"`
	User  response.Profile `json:"usuario"`
}

type EmployeeFinder interface {
	GetEmployeeByUsername(ctx context.Context, username string) (*storage.Employee, error)
}

type TokenIssuer interface {
	Issue(employeeID string) (string, error)
}

func Login(log *slog.Logger, finder EmployeeFinder, issuer TokenIssuer) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		const op = "handlers.auth.Login"

		log := log.With(slog.String("op", op))

		var req Request
		if err := render.DecodeJSON(r.Body, &req); err != nil {
			response.BadRequest(log, w, r, op, err)
			return
		}

		ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
		defer cancel()

		e, err := finder.GetEmployeeByUsername(ctx, strings.TrimSpace(req.Username))
		if err != nil {
			if errors.Is(err, common.ErrNotFound) {
				err = ErrInvalidCredentials
			}
			response.Fail(log, w, r, op, err)
			return
		}

		if !credential.VerifyPassword(req.Password, e.PasswordHash, e.Salt) {
			response.Fail(log, w, r, op, ErrInvalidCredentials)
			return
		}

		tok, err := issuer.Issue(e.ID)
		if err != nil {
			response.Fail(log, w, r, op, err)
			return
		}

		log.Info("employee logged in", slog.String("id", e.ID))

		render.JSON(w, r, Response{Token: tok, User: response.ProfileOf(e)})
	}
}
