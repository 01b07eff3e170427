package main

import (
	"context"
	"net/http"
	"os"

	"github.com/jackc/pgx/v5/pgxpool"
	_ "github.com/lib/pq"
	"github.com/tcp_snm/raffle/internal/api"
	"github.com/tcp_snm/raffle/internal/database"
	"github.com/tcp_snm/raffle/internal/email"
	"github.com/tcp_snm/raffle/internal/service"
	"github.com/tcp_snm/raffle/internal/service/auth_service"
	"github.com/tcp_snm/raffle/internal/service/entry_service"
	"github.com/tcp_snm/raffle/internal/service/lottery_service"
	"github.com/tcp_snm/raffle/internal/service/prize_service"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/cors"
	"github.com/joho/godotenv"
	log "github.com/sirupsen/logrus"
)

var (
	apiConfig *api.Api
)

func initDatabase() (*database.Queries, *pgxpool.Pool) {
	// get the database url
	dbURL := os.Getenv(service.KeyDBURL)
	if dbURL == "" {
		panic("dbURL not found")
	}

	// create a conneciton to the database
	pool, err := pgxpool.New(context.Background(), dbURL)
	if err != nil {
		panic(err)
	}

	// get the query tool with this connection
	return database.New(pool), pool
}

func initApi(db *database.Queries, pool *pgxpool.Pool) *api.Api {
	log.Info("initializing api config")

	as, err := auth_service.New()
	if err != nil {
		panic(err)
	}
	log.Info("auth service created")

	ps := &prize_service.PrizeService{
		DB:   db,
		Pool: pool,
	}
	log.Info("prize service created")

	es := &entry_service.EntryService{
		DB:     db,
		Pool:   pool,
		Config: entry_service.DefaultImportConfig(),
	}
	log.Info("entry service created")

	ls := lottery_service.New(db)
	log.Info("lottery service created")

	return &api.Api{
		AuthServiceConfig:    as,
		PrizeServiceConfig:   ps,
		EntryServiceConfig:   es,
		LotteryServiceConfig: ls,
	}
}

func setup() {
	godotenv.Load()
	service.InitializeServices()
	db, pool := initDatabase()
	apiConfig = initApi(db, pool)
	email.StartEmailWorkers(1)
}

func setCors(router *chi.Mux) {
	router.Use(
		cors.Handler(
			cors.Options{
				AllowedOrigins:   []string{"https://*", "http://*"},
				AllowedMethods:   []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
				AllowedHeaders:   []string{"*"},
				AllowCredentials: false,
				ExposedHeaders:   []string{"Link"},
				MaxAge:           300,
			},
		),
	)
	log.Info("cors options has been set")
}

func main() {
	setup()

	// initialize a new router
	router := chi.NewRouter()
	setCors(router)

	// mount v1 router
	v1router := NewV1Router()
	router.Mount("/v1", v1router)
	log.Info("v1 router has been mounted")

	// find port for the server to start
	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
		log.Warnf("port not found in environment. using default port %s", port)
	}

	// find the address to start the server
	apiAddress := os.Getenv("API_URL") + ":" + port

	log.Info("starting server")
	// create a server object to listen to all requests
	srv := http.Server{
		Handler: router,
		Addr:    apiAddress,
	}
	err := srv.ListenAndServe()
	if err != nil {
		log.Fatalf("Server cannot be started. Error: %v", err)
		return
	}
}
