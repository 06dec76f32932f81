package main

import (
	"context"
	"log"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"

	"github.com/faraday-ai/faraday/internal/ai"
	api "github.com/faraday-ai/faraday/internal/api/http"
	"github.com/faraday-ai/faraday/internal/assessment"
	auth "github.com/faraday-ai/faraday/internal/auth/middleware"
	"github.com/faraday-ai/faraday/internal/config"
	"github.com/faraday-ai/faraday/internal/curriculum"
	"github.com/faraday-ai/faraday/internal/db"
	"github.com/faraday-ai/faraday/internal/eventlog"
	"github.com/faraday-ai/faraday/internal/rbac"
	"github.com/faraday-ai/faraday/internal/storage"
)

func main() {
	cfg := config.FromEnv()

	// --- DB ---
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	dbh, err := db.Open(ctx, db.Driver(cfg.DBDriver), cfg.DBDSN)
	if err != nil {
		log.Fatalf("db open failed: %v", err)
	}

	if err := ensureAdmin(ctx, dbh, cfg); err != nil {
		log.Fatalf("admin bootstrap: %v", err)
	}

	events := eventlog.NewSQLSink(dbh, cfg.SiteID)
	activities := curriculum.NewSQLStore(dbh, cfg.DBDriver)
	assessments := assessment.NewSQLStore(dbh, cfg.DBDriver, events)

	// --- Auth ---
	authSvc := auth.NewAuthService(cfg.AuthHMACSecret)

	// --- AI stubs (placeholder until LLM integration) ---
	chatSvc := ai.NewStubChat(ai.DefaultPrompts())
	translator := ai.NewStubTranslator()

	// --- Router ---
	r := chi.NewRouter()
	r.Use(middleware.RequestID, middleware.RealIP, middleware.Logger, middleware.Recoverer)
	r.Use(middleware.Timeout(30 * time.Second))
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   cfg.CORSOrigins(),
		AllowedMethods:   []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Authorization", "Content-Type"},
		ExposedHeaders:   []string{"Content-Length"},
		AllowCredentials: true,
		MaxAge:           300,
	}))

	r.Post("/auth/login", auth.LoginHandler(authSvc, dbh, cfg.AllowDevLogin))

	bs, err := storage.NewFSStore(cfg.BlobBasePath)
	if err != nil {
		log.Fatalf("blob store: %v", err)
	}

	// Protected API (JWT → identity in context → DB role override → RBAC)
	r.Group(func(pr chi.Router) {
		pr.Use(auth.JWTMiddleware(authSvc))
		pr.Use(auth.AttachRoleFromDB(dbh, cfg.Mode == config.ModeOffline))

		// Curriculum
		pr.With(rbac.Require("activity:create")).
			Post("/activities", api.UploadActivityHandler(activities))
		pr.With(rbac.Require("activity:view")).
			Get("/activities", api.ListActivitiesHandler(activities))
		pr.With(rbac.Require("activity:view")).
			Get("/activities/{activityID}", api.GetActivityHandler(activities))
		pr.With(rbac.Require("activity:delete")).
			Delete("/activities/{activityID}", api.DeleteActivityHandler(activities))

		// Assessments
		pr.With(rbac.Require("assessment:create")).
			Post("/assessments", api.CreateAssessmentHandler(assessments))
		pr.With(rbac.Require("assessment:save")).
			Post("/assessments/{assessmentID}/observations", api.SaveObservationsHandler(assessments))
		pr.With(rbac.Require("assessment:submit")).
			Post("/assessments/{assessmentID}/submit", api.SubmitAssessmentHandler(assessments))
		pr.With(rbac.RequireAny("assessment:view-own", "assessment:view-all")).
			Get("/assessments/{assessmentID}", api.GetAssessmentHandler(assessments))
		pr.With(rbac.RequireAny("assessment:view-own", "assessment:view-all")).
			Get("/assessments", api.ListAssessmentsHandler(assessments))

		// AI services
		pr.With(rbac.Require("ai:chat")).
			Post("/ai/chat", api.ChatHandler(chatSvc))
		pr.With(rbac.Require("ai:translate")).
			Post("/ai/translate", api.TranslateHandler(translator))

		// Users (teacher/admin)
		pr.With(rbac.Require("users:bulk_upsert")).
			Post("/users/bulk", api.BulkUpsertUsersHandler(dbh))
		pr.With(rbac.Require("users:list")).
			Get("/users", api.ListUsersHandler(dbh))
		pr.Post("/users/change-password", api.ChangePasswordHandler(dbh))

		// Demonstration media
		pr.Route("/assets", func(ar chi.Router) {
			api.MountAssets(ar, bs)
		})
	})

	r.Get("/healthz", func(w http.ResponseWriter, r *http.Request) { w.WriteHeader(200) })
	r.Get("/readyz", func(w http.ResponseWriter, r *http.Request) { w.WriteHeader(200) })

	log.Printf("listening on %s (mode=%s, db=%s)", cfg.HTTPAddr, cfg.Mode, cfg.DBDriver)
	log.Fatal(http.ListenAndServe(cfg.HTTPAddr, r))
}
