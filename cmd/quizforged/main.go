package main

import (
	"context"
	"flag"
	"log"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"

	api "github.com/moderras/quizforge/internal/api/http"
	"github.com/moderras/quizforge/internal/auth"
	"github.com/moderras/quizforge/internal/config"
	"github.com/moderras/quizforge/internal/db"
	"github.com/moderras/quizforge/internal/exam"
	"github.com/moderras/quizforge/internal/paper"
	"github.com/moderras/quizforge/internal/templates"
)

func main() {
	cfgPath := flag.String("config", "", "path to YAML config (optional; env is the default)")
	flag.Parse()

	cfg, err := config.Load(*cfgPath)
	if err != nil {
		log.Fatalf("config: %v", err)
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	dbh, err := db.Open(ctx, db.Driver(cfg.DBDriver), cfg.DBDSN)
	if err != nil {
		log.Fatalf("db open failed: %v", err)
	}
	store := exam.NewSQLStore(dbh)

	var source *templates.Source
	if cfg.TemplateDir != "" {
		source, err = templates.NewSourceFromDir(cfg.TemplateDir)
	} else {
		source, err = templates.NewSource()
	}
	if err != nil {
		log.Fatalf("templates: %v", err)
	}

	gen := paper.NewGenerator(store, store, exam.NewProcessor(time.Now().UnixNano()), source)
	authSvc := auth.NewService(cfg.AuthSecret)

	r := chi.NewRouter()
	r.Use(middleware.RequestID, middleware.RealIP, middleware.Logger, middleware.Recoverer)
	r.Use(middleware.Timeout(30 * time.Second))
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   cfg.CORSOrigins,
		AllowedMethods:   []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Authorization", "Content-Type"},
		ExposedHeaders:   []string{"Content-Length"},
		AllowCredentials: true,
		MaxAge:           300,
	}))

	r.Post("/auth/login", auth.LoginHandler(authSvc, cfg.AdminUser, cfg.AdminPassHash))

	r.Group(func(pr chi.Router) {
		pr.Use(auth.Middleware(authSvc))

		pr.Put("/templates", api.PutTemplateHandler(store))
		pr.Get("/templates", api.ListTemplatesHandler(store))
		pr.Get("/templates/{templateID}", api.GetTemplateHandler(store))

		pr.Put("/banks", api.PutBankHandler(store))
		pr.Get("/banks", api.ListBanksHandler(store))
		pr.Get("/banks/{bankID}", api.GetBankHandler(store))

		pr.Post("/generate", api.GenerateHandler(gen))
	})

	log.Printf("quizforged listening on %s", cfg.HTTPAddr)
	log.Fatal(http.ListenAndServe(cfg.HTTPAddr, r))
}
