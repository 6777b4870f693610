package me

import (
	"log/slog"
	"net/http"

	"github.com/go-chi/render"

	"aerotrack/internal/common"
	"aerotrack/internal/lib/api/response"
	"aerotrack/internal/middleware/auth"
)

func Me(log *slog.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		const op = "handlers.auth.Me"

		e, ok := auth.EmployeeFromContext(r.Context())
		if !ok {
			response.Fail(log, w, r, op, common.Unauthorized("Token de acesso requerido"))
			return
		}

		render.JSON(w, r, response.ProfileOf(e))
	}
}

// Logout ничего не хранит на сервере: токен просто забывает клиент.
func Logout(log *slog.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		log.Debug("logout", slog.String("op", "handlers.auth.Logout"))
		render.JSON(w, r, response.Message("Logout realizado com sucesso"))
	}
}
