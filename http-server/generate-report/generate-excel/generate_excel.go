package generate_excel

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"

	"aerotrack/internal/lib/api/response"
)

type GenerateExcelHandler interface {
	GenerateExcel(ctx context.Context, code string) ([]byte, error)
}

// GenerateReportExcel отдаёт сводку по самолёту в виде xlsx.
func GenerateReportExcel(log *slog.Logger, gen GenerateExcelHandler) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		const op = "handler.aircraft.GenerateReportExcel"

		code := chi.URLParam(r, "codigo")

		ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second) // на Excel можно побольше времени
		defer cancel()

		excelBytes, err := gen.GenerateExcel(ctx, code)
		if err != nil {
			response.Fail(log, w, r, op, err)
			return
		}

		fileName := fmt.Sprintf("Aeronave_%s_%s.xlsx", code, time.Now().Format("2006-01-02_150405"))

		w.Header().Set("Content-Type", "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
		w.Header().Set("Content-Disposition", "attachment; filename="+fileName)
		if _, err := w.Write(excelBytes); err != nil {
			log.Error("failed to write excel", slog.String("op", op), slog.String("error", err.Error()))
		}
	}
}
