package auth

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"slices"
	"strings"

	"github.com/go-chi/render"

	"aerotrack/internal/common"
	"aerotrack/internal/lib/api/response"
	"aerotrack/internal/lib/token"
	"aerotrack/internal/storage"
)

type ctxKey struct{}

type EmployeeProvider interface {
	GetEmployee(ctx context.Context, id string) (*storage.Employee, error)
}

// BearerAuth проверяет токен из заголовка Authorization и кладёт
// сотрудника в контекст запроса.
func BearerAuth(log *slog.Logger, secret string, employees EmployeeProvider) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			const op = "middleware.auth.BearerAuth"

			authHeader := r.Header.Get("Authorization")
			raw, ok := strings.CutPrefix(authHeader, "Bearer ")
			if !ok || strings.TrimSpace(raw) == "" {
				deny(w, r, http.StatusUnauthorized, "Token de acesso requerido")
				return
			}

			id, err := token.Parse(strings.TrimSpace(raw), secret)
			if err != nil {
				log.Debug("token rejected", slog.String("op", op), slog.String("error", err.Error()))
				deny(w, r, http.StatusUnauthorized, "Token inválido")
				return
			}

			e, err := employees.GetEmployee(r.Context(), id)
			if err != nil {
				if errors.Is(err, common.ErrNotFound) {
					deny(w, r, http.StatusUnauthorized, "Token inválido")
					return
				}
				response.Fail(log, w, r, op, err)
				return
			}

			next.ServeHTTP(w, r.WithContext(WithEmployee(r.Context(), e)))
		})
	}
}

// RequirePermission пропускает только сотрудников с одним из уровней доступа.
func RequirePermission(levels ...storage.PermissionLevel) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			e, ok := EmployeeFromContext(r.Context())
			if !ok {
				deny(w, r, http.StatusUnauthorized, "Token de acesso requerido")
				return
			}
			if !slices.Contains(levels, e.Permission) {
				deny(w, r, http.StatusForbidden, "Permissão insuficiente")
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}

func WithEmployee(ctx context.Context, e *storage.Employee) context.Context {
	return context.WithValue(ctx, ctxKey{}, e)
}

func EmployeeFromContext(ctx context.Context) (*storage.Employee, bool) {
	e, ok := ctx.Value(ctxKey{}).(*storage.Employee)
	return e, ok && e != nil
}

func deny(w http.ResponseWriter, r *http.Request, status int, msg string) {
	render.Status(r, status)
	render.JSON(w, r, response.Error(msg))
}
