package save

import (
	"context"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"github.com/go-chi/render"

	"aerotrack/internal/lib/api/response"
	"aerotrack/internal/storage"
)

type Request struct {
	Name     string `json:"nome"`
	Deadline string `json:"prazo"`
	Status   string `json:"status,omitempty"`
}

type StageSaver interface {
	CreateStage(ctx context.Context, st storage.Stage) (*storage.Stage, error)
}

func SaveStage(log *slog.Logger, saver StageSaver) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		const op = "handlers.stages.SaveStage"

		log := log.With(slog.String("op", op))

		var req Request
		if err := render.DecodeJSON(r.Body, &req); err != nil {
			response.BadRequest(log, w, r, op, err)
			return
		}

		st := storage.Stage{
			Name:     strings.TrimSpace(req.Name),
			Deadline: strings.TrimSpace(req.Deadline),
		}
		if req.Status != "" {
			var err error
			if st.Status, err = storage.ParseStageStatus(req.Status); err != nil {
				response.Fail(log, w, r, op, err)
				return
			}
		}

		ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
		defer cancel()

		created, err := saver.CreateStage(ctx, st)
		if err != nil {
			response.Fail(log, w, r, op, err)
			return
		}

		log.Info("stage created", slog.String("nome", created.Name))

		render.Status(r, http.StatusCreated)
		render.JSON(w, r, created)
	}
}
