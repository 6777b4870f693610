package response

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/go-chi/render"

	"aerotrack/internal/common"
	"aerotrack/internal/storage"
)

const internalError = "Erro interno do servidor"

type ErrorResponse struct {
	Error string `json:"error"`
}

type MessageResponse struct {
	Message string `json:"message"`
}

func Error(msg string) ErrorResponse {
	return ErrorResponse{Error: msg}
}

func Message(msg string) MessageResponse {
	return MessageResponse{Message: msg}
}

// Status подбирает http-статус по виду ошибки.
func Status(err error) int {
	switch {
	case errors.Is(err, common.ErrValidation), errors.Is(err, common.ErrConflict):
		return http.StatusBadRequest
	case errors.Is(err, common.ErrNotFound):
		return http.StatusNotFound
	case errors.Is(err, common.ErrUnauthorized):
		return http.StatusUnauthorized
	case errors.Is(err, common.ErrForbidden):
		return http.StatusForbidden
	default:
		return http.StatusInternalServerError
	}
}

// Fail пишет ошибку клиенту. Для неизвестных ошибок наружу уходит только
// общее сообщение, подробности остаются в логе.
func Fail(log *slog.Logger, w http.ResponseWriter, r *http.Request, op string, err error) {
	status := Status(err)

	msg := internalError
	var ce *common.Error
	if status != http.StatusInternalServerError && errors.As(err, &ce) {
		msg = ce.Msg
	}

	if status == http.StatusInternalServerError {
		log.Error("request failed", slog.String("op", op), slog.String("error", err.Error()))
	} else {
		log.Warn("request rejected", slog.String("op", op), slog.Int("status", status), slog.String("error", err.Error()))
	}

	render.Status(r, status)
	render.JSON(w, r, Error(msg))
}

// BadRequest - ответ на тело запроса, которое не удалось разобрать.
func BadRequest(log *slog.Logger, w http.ResponseWriter, r *http.Request, op string, err error) {
	log.Error("Invalid JSON", slog.String("op", op), slog.String("error", err.Error()))
	render.Status(r, http.StatusBadRequest)
	render.JSON(w, r, Error("JSON inválido"))
}

// Profile - краткие данные сотрудника для ответов авторизации.
type Profile struct {
	ID         string                  `json:"id"`
	Name       string                  `json:"nome"`
	Permission storage.PermissionLevel `json:"nivelPermissao"`
}

func ProfileOf(e *storage.Employee) Profile {
	return Profile{ID: e.ID, Name: e.Name, Permission: e.Permission}
}
