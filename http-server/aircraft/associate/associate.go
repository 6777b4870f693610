package associate

import (
	"context"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/render"

	"aerotrack/internal/common"
	"aerotrack/internal/lib/api/response"
	"aerotrack/internal/storage"
)

type PartRequest struct {
	PartName string `json:"nomePeca"`
}

type StageRequest struct {
	StageName string `json:"nomeEtapa"`
}

type TestRequest struct {
	Type   string `json:"tipoTeste"`
	Result string `json:"resultado"`
}

type AircraftLinker interface {
	AttachPart(ctx context.Context, code, partName string) (*storage.Aircraft, error)
	DetachPart(ctx context.Context, code, partName string) (*storage.Aircraft, error)
	AttachStage(ctx context.Context, code, stageName string) (*storage.Aircraft, error)
	DetachStage(ctx context.Context, code, stageName string) (*storage.Aircraft, error)
	AttachTest(ctx context.Context, code, testID string) (*storage.Aircraft, error)
	DetachTest(ctx context.Context, code, testID string) (*storage.Aircraft, error)
	AddAircraftTest(ctx context.Context, code string, t storage.Test) (*storage.Aircraft, error)
}

type linkFunc func(ctx context.Context, code, key string) (*storage.Aircraft, error)

func AssociatePart(log *slog.Logger, linker AircraftLinker) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		const op = "handlers.aircraft.AssociatePart"

		var req PartRequest
		if err := render.DecodeJSON(r.Body, &req); err != nil {
			response.BadRequest(log, w, r, op, err)
			return
		}
		if strings.TrimSpace(req.PartName) == "" {
			response.Fail(log, w, r, op, common.Validation("Nome da peça é obrigatório"))
			return
		}

		link(log, w, r, op, linker.AttachPart, req.PartName)
	}
}

func DissociatePart(log *slog.Logger, linker AircraftLinker) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		link(log, w, r, "handlers.aircraft.DissociatePart", linker.DetachPart, chi.URLParam(r, "nome"))
	}
}

func AssociateStage(log *slog.Logger, linker AircraftLinker) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		const op = "handlers.aircraft.AssociateStage"

		var req StageRequest
		if err := render.DecodeJSON(r.Body, &req); err != nil {
			response.BadRequest(log, w, r, op, err)
			return
		}
		if strings.TrimSpace(req.StageName) == "" {
			response.Fail(log, w, r, op, common.Validation("Nome da etapa é obrigatório"))
			return
		}

		link(log, w, r, op, linker.AttachStage, req.StageName)
	}
}

func DissociateStage(log *slog.Logger, linker AircraftLinker) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		link(log, w, r, "handlers.aircraft.DissociateStage", linker.DetachStage, chi.URLParam(r, "nome"))
	}
}

// AssociateTest связывает с самолётом уже существующее испытание.
func AssociateTest(log *slog.Logger, linker AircraftLinker) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		link(log, w, r, "handlers.aircraft.AssociateTest", linker.AttachTest, chi.URLParam(r, "id"))
	}
}

func DissociateTest(log *slog.Logger, linker AircraftLinker) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		link(log, w, r, "handlers.aircraft.DissociateTest", linker.DetachTest, chi.URLParam(r, "id"))
	}
}

// AddTest создаёт новое испытание и сразу связывает его с самолётом.
func AddTest(log *slog.Logger, linker AircraftLinker) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		const op = "handlers.aircraft.AddTest"

		var req TestRequest
		if err := render.DecodeJSON(r.Body, &req); err != nil {
			response.BadRequest(log, w, r, op, err)
			return
		}

		kind, err := storage.ParseTestType(req.Type)
		if err != nil {
			response.Fail(log, w, r, op, err)
			return
		}
		t := storage.Test{Type: kind}
		if req.Result != "" {
			if t.Result, err = storage.ParseTestResult(req.Result); err != nil {
				response.Fail(log, w, r, op, err)
				return
			}
		}

		link(log, w, r, op, func(ctx context.Context, code, _ string) (*storage.Aircraft, error) {
			return linker.AddAircraftTest(ctx, code, t)
		}, "")
	}
}

func link(log *slog.Logger, w http.ResponseWriter, r *http.Request, op string, fn linkFunc, key string) {
	code := chi.URLParam(r, "codigo")

	ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
	defer cancel()

	a, err := fn(ctx, code, strings.TrimSpace(key))
	if err != nil {
		response.Fail(log, w, r, op, err)
		return
	}

	log.Info("aircraft links changed", slog.String("op", op), slog.String("codigo", code), slog.String("key", key))

	render.JSON(w, r, a)
}
