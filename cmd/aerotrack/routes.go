package main

import (
	"context"
	"log/slog"
	"net/http"
	"os"
	"path/filepath"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/render"
	"github.com/rs/cors"

	aircraftlink "aerotrack/http-server/aircraft/associate"
	getaircraft "aerotrack/http-server/aircraft/get"
	removeaircraft "aerotrack/http-server/aircraft/remove"
	saveaircraft "aerotrack/http-server/aircraft/save"
	upaircraft "aerotrack/http-server/aircraft/update"
	"aerotrack/http-server/auth/login"
	"aerotrack/http-server/auth/me"
	"aerotrack/http-server/auth/register"
	getemployees "aerotrack/http-server/employees/get"
	removeemployee "aerotrack/http-server/employees/remove"
	saveemployee "aerotrack/http-server/employees/save"
	upemployee "aerotrack/http-server/employees/update"
	generate_excel "aerotrack/http-server/generate-report/generate-excel"
	getparts "aerotrack/http-server/parts/get"
	removepart "aerotrack/http-server/parts/remove"
	savepart "aerotrack/http-server/parts/save"
	uppart "aerotrack/http-server/parts/update"
	"aerotrack/http-server/reports/generate"
	getreports "aerotrack/http-server/reports/get"
	removereport "aerotrack/http-server/reports/remove"
	savereport "aerotrack/http-server/reports/save"
	upreport "aerotrack/http-server/reports/update"
	stagelink "aerotrack/http-server/stages/associate"
	getstages "aerotrack/http-server/stages/get"
	removestage "aerotrack/http-server/stages/remove"
	savestage "aerotrack/http-server/stages/save"
	upstage "aerotrack/http-server/stages/update"
	gettests "aerotrack/http-server/tests/get"
	removetest "aerotrack/http-server/tests/remove"
	savetest "aerotrack/http-server/tests/save"
	uptest "aerotrack/http-server/tests/update"
	"aerotrack/internal/config"
	"aerotrack/internal/lib/token"
	"aerotrack/internal/middleware/auth"
	generate_excel2 "aerotrack/internal/service/generate-excel"
	"aerotrack/internal/service/report"
	"aerotrack/internal/storage"
	"aerotrack/internal/storage/jsonfile"
)

type reportIndex interface {
	ListReports(ctx context.Context) ([]storage.Report, error)
	GetReport(ctx context.Context, id string) (*storage.Report, error)
	SaveReport(ctx context.Context, r storage.Report) error
	UpdateReport(ctx context.Context, id string, u storage.ReportUpdate) (*storage.Report, error)
	DeleteReport(ctx context.Context, id string) error
}

type dependencies struct {
	store   *jsonfile.Storage
	index   reportIndex
	reports *report.Service
	excel   *generate_excel2.GenerateExcelService
}

func routes(cfg config.Config, log *slog.Logger, deps dependencies) *chi.Mux {
	router := chi.NewRouter()

	corsHandler := cors.New(cors.Options{
		AllowedOrigins:   cfg.CORS.AllowedOrigins,
		AllowedMethods:   []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type"},
		AllowCredentials: true,
	})

	router.Use(corsHandler.Handler)
	router.Use(middleware.RequestID)
	router.Use(middleware.RealIP)
	router.Use(middleware.Logger)
	router.Use(middleware.Recoverer)

	router.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		render.JSON(w, r, map[string]string{"status": "OK"})
	})

	store := deps.store
	issuer := token.Issuer{Secret: cfg.Auth.TokenSecret, TTL: cfg.Auth.TokenTTL}

	router.Route("/api", func(api chi.Router) {
		api.Post("/auth/register", register.Register(log, store, issuer))
		api.Post("/auth/login", login.Login(log, store, issuer))
		api.Post("/auth/logout", me.Logout(log))

		api.Group(func(r chi.Router) {
			r.Use(auth.BearerAuth(log, cfg.Auth.TokenSecret, store))

			r.Get("/auth/me", me.Me(log))

			// самолёты
			r.Get("/aeronaves", getaircraft.GetAllAircraft(log, store))
			r.Post("/aeronaves", saveaircraft.SaveAircraft(log, store))
			r.Get("/aeronaves/{codigo}", getaircraft.GetAircraft(log, store))
			r.Put("/aeronaves/{codigo}", upaircraft.UpdateAircraft(log, store))
			r.Delete("/aeronaves/{codigo}", removeaircraft.RemoveAircraft(log, store))

			r.Get("/aeronaves/{codigo}/pecas", getaircraft.GetAircraftParts(log, store))
			r.Post("/aeronaves/{codigo}/pecas", aircraftlink.AssociatePart(log, store))
			r.Delete("/aeronaves/{codigo}/pecas/{nome}", aircraftlink.DissociatePart(log, store))
			r.Get("/aeronaves/{codigo}/etapas", getaircraft.GetAircraftStages(log, store))
			r.Post("/aeronaves/{codigo}/etapas", aircraftlink.AssociateStage(log, store))
			r.Delete("/aeronaves/{codigo}/etapas/{nome}", aircraftlink.DissociateStage(log, store))
			r.Post("/aeronaves/{codigo}/testes", aircraftlink.AddTest(log, store))
			r.Post("/aeronaves/{codigo}/testes/{id}", aircraftlink.AssociateTest(log, store))
			r.Delete("/aeronaves/{codigo}/testes/{id}", aircraftlink.DissociateTest(log, store))

			r.With(auth.RequirePermission(storage.PermissionAdmin, storage.PermissionEngineer)).
				Post("/aeronaves/{codigo}/relatorio", generate.GenerateReport(log, deps.reports))
			r.Get("/aeronaves/{codigo}/relatorio/excel", generate_excel.GenerateReportExcel(log, deps.excel))

			// детали
			r.Get("/pecas", getparts.GetParts(log, store))
			r.Post("/pecas", savepart.SavePart(log, store))
			r.Get("/pecas/{nome}", getparts.GetPart(log, store))
			r.Get("/pecas/{nome}/aeronaves", getparts.GetPartAircraft(log, store))
			r.Put("/pecas/{nome}", uppart.UpdatePart(log, store))
			r.Delete("/pecas/{nome}", removepart.RemovePart(log, store))

			// этапы
			r.Get("/etapas", getstages.GetStages(log, store))
			r.Post("/etapas", savestage.SaveStage(log, store))
			r.Get("/etapas/{nome}", getstages.GetStage(log, store))
			r.Put("/etapas/{nome}", upstage.UpdateStage(log, store))
			r.Delete("/etapas/{nome}", removestage.RemoveStage(log, store))
			r.Get("/etapas/{nome}/funcionarios", getstages.GetStageEmployees(log, store))
			r.Post("/etapas/{nome}/funcionarios", stagelink.AssignEmployee(log, store))
			r.Delete("/etapas/{nome}/funcionarios/{id}", stagelink.UnassignEmployee(log, store))

			// сотрудники
			r.Get("/funcionarios", getemployees.GetEmployees(log, store))
			r.Post("/funcionarios", saveemployee.SaveEmployee(log, store))
			r.Get("/funcionarios/{id}", getemployees.GetEmployee(log, store))
			r.Put("/funcionarios/{id}", upemployee.UpdateEmployee(log, store))
			r.Delete("/funcionarios/{id}", removeemployee.RemoveEmployee(log, store))

			// испытания
			r.Get("/testes", gettests.GetTests(log, store))
			r.Post("/testes", savetest.SaveTest(log, store))
			r.Get("/testes/{id}", gettests.GetTest(log, store))
			r.Put("/testes/{id}", uptest.UpdateTest(log, store))
			r.Delete("/testes/{id}", removetest.RemoveTest(log, store))

			// отчёты
			r.Get("/relatorios", getreports.GetReports(log, deps.index))
			r.Post("/relatorios", savereport.SaveReport(log, deps.index))
			r.Get("/relatorios/{id}", getreports.GetReport(log, deps.index))
			r.Put("/relatorios/{id}", upreport.UpdateReport(log, deps.index))
			r.Delete("/relatorios/{id}", removereport.RemoveReport(log, deps.index))
			r.Get("/relatorios/{id}/download", getreports.DownloadReport(log, deps.index, deps.reports))
		})
	})

	mountFrontend(router, log, cfg.FrontendDir)

	return router
}

// mountFrontend раздаёт собранный SPA, если папка есть.
func mountFrontend(router *chi.Mux, log *slog.Logger, frontendDir string) {
	if info, err := os.Stat(frontendDir); err != nil || !info.IsDir() {
		log.Warn("Папка фронтенда не найдена, статика не раздаётся", slog.String("path", frontendDir))
		return
	}

	fileServer := http.FileServer(http.Dir(frontendDir))
	router.Handle("/assets/*", fileServer)

	// SPA fallback: любой другой путь -> index.html
	router.HandleFunc("/*", func(w http.ResponseWriter, r *http.Request) {
		path := filepath.Join(frontendDir, filepath.Clean("/"+r.URL.Path))
		if info, err := os.Stat(path); err == nil && !info.IsDir() {
			http.ServeFile(w, r, path)
			return
		}
		http.ServeFile(w, r, filepath.Join(frontendDir, "index.html"))
	})
}
