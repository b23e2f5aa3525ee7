package http

import (
	"log/slog"
	"os"

	"github.com/go-chi/chi/v5"
	chiMiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/go-chi/httplog/v3"
)

func NewRouter(staffHandler StaffHandler, branchHandler BranchHandler, leaveHandler LeaveHandler, rotaHandler RotaHandler) *chi.Mux {
	r := chi.NewRouter()
	logFormat := httplog.SchemaECS.Concise(false)
	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		ReplaceAttr: logFormat.ReplaceAttr,
	})).With(
		slog.String("app", "clinicops-rota"),
		slog.String("version", "v1.0.0"),
	)

	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   []string{"http://localhost:3000"},
		AllowCredentials: true,
		AllowedMethods:   []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type"},
		ExposedHeaders:   []string{"Link"},
		MaxAge:           300,
	}))

	r.Use(httplog.RequestLogger(logger, &httplog.Options{
		Level:  slog.LevelDebug,
		Schema: httplog.SchemaECS,
	}))

	r.Use(chiMiddleware.AllowContentEncoding("application/json"))
	r.Use(chiMiddleware.CleanPath)
	r.Use(chiMiddleware.Recoverer)
	r.Use(chiMiddleware.Heartbeat("/"))

	r.Route("/api/v1", func(r chi.Router) {

		r.Route("/staff", func(r chi.Router) {
			r.Get("/", staffHandler.List)
			r.Post("/", staffHandler.Create)
			r.Route("/{id}", func(r chi.Router) {
				r.Get("/", staffHandler.Get)
				r.Put("/", staffHandler.Update)
				r.Delete("/", staffHandler.Delete)

				r.Route("/leave", func(r chi.Router) {
					r.Get("/", leaveHandler.GetForStaff)
					r.Put("/", leaveHandler.SetForStaff)
				})
			})
		})

		r.Route("/branches", func(r chi.Router) {
			r.Get("/", branchHandler.List)
			r.Get("/{id}", branchHandler.Get)
		})

		r.Get("/leave", leaveHandler.GetAll)

		r.Route("/rota", func(r chi.Router) {
			r.Get("/pay-cycle/{start}/hours", rotaHandler.PayCycleHours)

			r.Route("/{week}", func(r chi.Router) {
				r.Get("/", rotaHandler.GetWeek)
				r.Post("/auto", rotaHandler.AutoSchedule)
				r.Post("/clear", rotaHandler.ClearWeek)
				r.Get("/validation", rotaHandler.Validation)
				r.Get("/hours", rotaHandler.WeeklyHours)
				r.Get("/slots", rotaHandler.TimeSlots)

				r.Route("/assignments", func(r chi.Router) {
					r.Post("/", rotaHandler.PlaceAssignment)
					r.Post("/remove", rotaHandler.RemoveAssignment)
					r.Post("/lock", rotaHandler.ToggleLock)
					r.Post("/move", rotaHandler.MoveAssignment)
				})

				r.Route("/requests", func(r chi.Router) {
					r.Get("/", leaveHandler.GetShiftRequests)
					r.Put("/{id}", leaveHandler.SetShiftRequests)
				})
			})
		})
	})
	return r
}
