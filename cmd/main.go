// @title WanderIndia Backend API
// @version 1.0
// @description Travel-content backend: destinations, trip planning with generated itineraries, reviews, vlogs
// @host localhost:8080
// @BasePath /
// @schemes http https

package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/rs/cors"

	"WANDERINDIA_BACK-END/internal/config"
	"WANDERINDIA_BACK-END/internal/database"
	"WANDERINDIA_BACK-END/internal/handlers"
	"WANDERINDIA_BACK-END/internal/planner"
	"WANDERINDIA_BACK-END/internal/routes"
	"WANDERINDIA_BACK-END/internal/store/pg"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("load config: %v", err)
	}

	// pgxpool + simple protocol (needed behind PgBouncer)
	poolCfg, err := pgxpool.ParseConfig(cfg.GetDSN())
	if err != nil {
		log.Fatalf("parse dsn: %v", err)
	}
	poolCfg.ConnConfig.DefaultQueryExecMode = pgx.QueryExecModeSimpleProtocol
	poolCfg.ConnConfig.RuntimeParams["application_name"] = "wanderindia-backend"
	poolCfg.MaxConns = cfg.Database.MaxConns
	poolCfg.MinConns = cfg.Database.MinConns
	poolCfg.MaxConnLifetime = cfg.Database.MaxLifetime

	pool, err := pgxpool.NewWithConfig(context.Background(), poolCfg)
	if err != nil {
		log.Fatalf("connect: %v", err)
	}
	defer pool.Close()

	{
		ctx, cancel := context.WithTimeout(context.Background(), 20*time.Second)
		defer cancel()
		if err := pool.Ping(ctx); err != nil {
			log.Fatalf("ping: %v", err)
		}
	}

	if err := database.RunMigrations(pool); err != nil {
		log.Fatalf("migrate: %v", err)
	}

	// --- HTTP Handlers ---
	tripStore := pg.NewTripStore(pool)
	destinationStore := pg.NewDestinationStore(pool)
	manager := planner.NewManager(tripStore)
	generator := planner.NewGenerator(tripStore)

	routes.SetupRoutes(routes.Handlers{
		Health:       handlers.NewHealthHandler(pool),
		Planner:      handlers.NewPlannerHandler(manager, generator, destinationStore),
		Trips:        handlers.NewTripsHandler(manager, tripStore, destinationStore),
		Destinations: handlers.NewDestinationsHandler(destinationStore),
		Reviews:      handlers.NewReviewsHandler(pool),
		Vlogs:        handlers.NewVlogsHandler(pool),
		Contact:      handlers.NewContactHandler(pool),
	}, &cfg.JWT)

	// --- HTTP Server + Graceful Shutdown ---
	c := cors.New(cors.Options{
		AllowedOrigins:   cfg.CORS.AllowedOrigins,
		AllowedMethods:   cfg.CORS.AllowedMethods,
		AllowedHeaders:   cfg.CORS.AllowedHeaders,
		AllowCredentials: cfg.CORS.AllowCredentials,
	})
	handler := c.Handler(http.DefaultServeMux)

	srv := &http.Server{
		Addr:              ":" + cfg.Server.Port,
		Handler:           handler,
		ReadHeaderTimeout: 5 * time.Second,
		ReadTimeout:       cfg.Server.ReadTimeout,
		WriteTimeout:      cfg.Server.WriteTimeout,
		IdleTimeout:       cfg.Server.IdleTimeout,
	}

	go func() {
		log.Printf("HTTP server listening on :%s", cfg.Server.Port)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("ListenAndServe: %v", err)
		}
	}()

	// Wait for SIGINT to shut down gracefully
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt)
	<-quit
	log.Println("Shutting down server...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Printf("Server shutdown error: %v", err)
	}
	log.Println("Server stopped.")
}
