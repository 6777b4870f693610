package generate

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/render"

	"aerotrack/internal/common"
	"aerotrack/internal/lib/api/response"
	"aerotrack/internal/middleware/auth"
	"aerotrack/internal/service/report"
	"aerotrack/internal/storage"
)

type Request struct {
	Client       string `json:"cliente"`
	DeliveryDate string `json:"dataEntrega"`
}

type Response struct {
	Message string          `json:"message"`
	Content string          `json:"conteudo"`
	File    string          `json:"arquivo"`
	Report  *storage.Report `json:"relatorio"`
}

type ReportGenerator interface {
	Generate(ctx context.Context, by *storage.Employee, req report.Request) (*storage.Report, error)
}

func GenerateReport(log *slog.Logger, gen ReportGenerator) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		const op = "handlers.reports.GenerateReport"

		log := log.With(slog.String("op", op))
		code := chi.URLParam(r, "codigo")

		me, ok := auth.EmployeeFromContext(r.Context())
		if !ok {
			response.Fail(log, w, r, op, common.Unauthorized("Token de acesso requerido"))
			return
		}

		// тело необязательно: без него подставятся значения по умолчанию
		var req Request
		if err := render.DecodeJSON(r.Body, &req); err != nil && !errors.Is(err, io.EOF) {
			response.BadRequest(log, w, r, op, err)
			return
		}

		ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
		defer cancel()

		rep, err := gen.Generate(ctx, me, report.Request{
			AircraftCode: code,
			Client:       req.Client,
			DeliveryDate: req.DeliveryDate,
		})
		if err != nil {
			response.Fail(log, w, r, op, err)
			return
		}

		log.Info("report generated",
			slog.String("codigo", code),
			slog.String("arquivo", rep.File),
			slog.String("by", me.ID),
		)

		render.JSON(w, r, Response{
			Message: rep.Content,
			Content: rep.Content,
			File:    rep.File,
			Report:  rep,
		})
	}
}
