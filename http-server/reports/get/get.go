package get

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/render"

	"aerotrack/internal/lib/api/response"
	"aerotrack/internal/storage"
)

type ReportGetter interface {
	ListReports(ctx context.Context) ([]storage.Report, error)
	GetReport(ctx context.Context, id string) (*storage.Report, error)
}

type ContentReader interface {
	Content(ctx context.Context, r *storage.Report) ([]byte, error)
}

func GetReports(log *slog.Logger, getter ReportGetter) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		const op = "handlers.reports.GetReports"

		ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
		defer cancel()

		reports, err := getter.ListReports(ctx)
		if err != nil {
			response.Fail(log, w, r, op, err)
			return
		}

		render.JSON(w, r, reports)
	}
}

func GetReport(log *slog.Logger, getter ReportGetter) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		const op = "handlers.reports.GetReport"

		ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
		defer cancel()

		rep, err := getter.GetReport(ctx, chi.URLParam(r, "id"))
		if err != nil {
			response.Fail(log, w, r, op, err)
			return
		}

		render.JSON(w, r, rep)
	}
}

// DownloadReport отдаёт текст отчёта файлом.
func DownloadReport(log *slog.Logger, getter ReportGetter, reader ContentReader) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		const op = "handlers.reports.DownloadReport"

		ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
		defer cancel()

		rep, err := getter.GetReport(ctx, chi.URLParam(r, "id"))
		if err != nil {
			response.Fail(log, w, r, op, err)
			return
		}

		content, err := reader.Content(ctx, rep)
		if err != nil {
			response.Fail(log, w, r, op, err)
			return
		}

		fileName := rep.File
		if fileName == "" {
			fileName = fmt.Sprintf("relatorio_%s.txt", rep.ID)
		}

		w.Header().Set("Content-Type", "text/plain; charset=utf-8")
		w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=%q", fileName))
		if _, err := w.Write(content); err != nil {
			log.Error("failed to write report", slog.String("op", op), slog.String("error", err.Error()))
		}
	}
}
