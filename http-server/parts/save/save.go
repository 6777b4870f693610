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
	Type     string `json:"tipo"`
	Supplier string `json:"fornecedor"`
	Status   string `json:"status,omitempty"`
}

type PartSaver interface {
	CreatePart(ctx context.Context, p storage.Part) (*storage.Part, error)
}

func SavePart(log *slog.Logger, saver PartSaver) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		const op = "handlers.parts.SavePart"

		log := log.With(slog.String("op", op))

		var req Request
		if err := render.DecodeJSON(r.Body, &req); err != nil {
			response.BadRequest(log, w, r, op, err)
			return
		}

		p := storage.Part{
			Name:     strings.TrimSpace(req.Name),
			Supplier: strings.TrimSpace(req.Supplier),
		}
		var err error
		if p.Type, err = storage.ParsePartType(req.Type); err != nil {
			response.Fail(log, w, r, op, err)
			return
		}
		// без статуса деталь считается находящейся в производстве
		if req.Status != "" {
			if p.Status, err = storage.ParsePartStatus(req.Status); err != nil {
				response.Fail(log, w, r, op, err)
				return
			}
		}

		ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
		defer cancel()

		created, err := saver.CreatePart(ctx, p)
		if err != nil {
			response.Fail(log, w, r, op, err)
			return
		}

		log.Info("part created", slog.String("nome", created.Name))

		render.Status(r, http.StatusCreated)
		render.JSON(w, r, created)
	}
}
