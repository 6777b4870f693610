package register

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"github.com/go-chi/render"
	"github.com/google/uuid"

	"aerotrack/internal/common"
	"aerotrack/internal/lib/api/response"
	"aerotrack/internal/service/credential"
	"aerotrack/internal/storage"
)

const (
	defaultPhone   = "(00) 00000-0000"
	defaultAddress = "Não informado"
)

type Request struct {
	Name     string `json:"nome"`
	Email    string `json:"email"`
	Password string `json:"senha"`
}

type Response struct {
	Message string           `json:"message"`
	Token   string           `json:"token"`
	User    response.Profile `json:"usuario"`
}

type EmployeeCreator interface {
	GetEmployeeByUsername(ctx context.Context, username string) (*storage.Employee, error)
	CreateEmployee(ctx context.Context, e storage.Employee) (*storage.Employee, error)
}

type TokenIssuer interface {
	Issue(employeeID string) (string, error)
}

// Register - самостоятельная регистрация. Новый сотрудник всегда получает
// уровень OPERADOR, логином служит email.
func Register(log *slog.Logger, creator EmployeeCreator, issuer TokenIssuer) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		const op = "handlers.auth.Register"

		log := log.With(slog.String("op", op))

		var req Request
		if err := render.DecodeJSON(r.Body, &req); err != nil {
			response.BadRequest(log, w, r, op, err)
			return
		}

		name := strings.TrimSpace(req.Name)
		email := strings.TrimSpace(req.Email)
		if name == "" || email == "" || req.Password == "" {
			response.Fail(log, w, r, op, common.Validation("Nome, email e senha são obrigatórios"))
			return
		}

		ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
		defer cancel()

		if _, err := creator.GetEmployeeByUsername(ctx, email); err == nil {
			response.Fail(log, w, r, op, storage.ErrEmailInUse)
			return
		} else if !errors.Is(err, common.ErrNotFound) {
			response.Fail(log, w, r, op, err)
			return
		}

		h, err := credential.GenerateHash(req.Password)
		if err != nil {
			response.Fail(log, w, r, op, err)
			return
		}

		e, err := creator.CreateEmployee(ctx, storage.Employee{
			ID:           newEmployeeID(time.Now()),
			Name:         name,
			Phone:        defaultPhone,
			Address:      defaultAddress,
			Username:     email,
			PasswordHash: h.Hash,
			Salt:         h.Salt,
			Permission:   storage.PermissionOperator,
		})
		if err != nil {
			if errors.Is(err, storage.ErrUsernameExists) {
				err = storage.ErrEmailInUse
			}
			response.Fail(log, w, r, op, err)
			return
		}

		tok, err := issuer.Issue(e.ID)
		if err != nil {
			response.Fail(log, w, r, op, err)
			return
		}

		log.Info("employee registered", slog.String("id", e.ID))

		render.Status(r, http.StatusCreated)
		render.JSON(w, r, Response{
			Message: "Conta criada com sucesso",
			Token:   tok,
			User:    response.ProfileOf(e),
		})
	}
}

// newEmployeeID - user-<unix ms>-<8 hex>, суффикс различает регистрации в одну миллисекунду.
func newEmployeeID(at time.Time) string {
	return fmt.Sprintf("user-%d-%s", at.UnixMilli(), uuid.NewString()[:8])
}
