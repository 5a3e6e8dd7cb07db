package http

import (
	"log/slog"
	"os"

	"github.com/go-chi/chi/v5"
	chiMiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/go-chi/httplog/v3"
)

func NewRouter(env string, attendanceHandler AttendanceHandler, teacherHandler TeacherHandler) *chi.Mux {
	r := chi.NewRouter()
	logFormat := httplog.SchemaECS.Concise(false)
	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		ReplaceAttr: logFormat.ReplaceAttr,
	})).With(
		slog.String("app", "edutrack-backend"),
		slog.String("version", "v1.0.0"),
		slog.String("env", env),
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

		r.Route("/attendance", func(r chi.Router) {
			r.Get("/dashboard", attendanceHandler.Dashboard)
			r.Get("/{uid}/day-sheet", attendanceHandler.DaySheet)
			r.Get("/{uid}/hours", attendanceHandler.HoursReport)
			r.Post("/reset-day", attendanceHandler.ResetDay)
		})

		// The hardware terminal posts taps here.
		r.Route("/scans", func(r chi.Router) {
			r.Post("/", attendanceHandler.RecordScan)
		})
		r.Get("/terminal-log", attendanceHandler.TerminalLog)

		r.Route("/teachers", func(r chi.Router) {
			r.Get("/", teacherHandler.List)
			r.Post("/", teacherHandler.Register)
			r.Delete("/{uid}", teacherHandler.Remove)
		})

		r.Route("/enrollment", func(r chi.Router) {
			r.Get("/", teacherHandler.EnrollmentState)
			r.Post("/start", teacherHandler.StartEnrollment)
			r.Post("/cancel", teacherHandler.CancelEnrollment)
		})
	})
	return r
}
