package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"

	"fitvibe/internal/cache"
	"fitvibe/internal/config"
	httpx "fitvibe/internal/http"
	"fitvibe/internal/logger"
	"fitvibe/internal/repo"
	"fitvibe/internal/service"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic(err)
	}
	log := logger.New("fitvibe-api", cfg.Common.LogLevel)

	ctxDB, cancelDB := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancelDB()

	db, err := pgxpool.New(ctxDB, cfg.Postgres.DSN)
	if err != nil {
		log.Fatal().Err(err).Msg("pg connect failed")
	}
	defer db.Close()

	var cacheClient *cache.Client
	if cfg.Redis.Addr != "" {
		cacheClient, err = cache.New(cfg.Redis.Addr)
		if err != nil {
			log.Fatal().Err(err).Msg("redis connect failed")
		}
		defer func() { _ = cacheClient.Close() }()
	} else {
		log.Info().Msg("catalog cache disabled (REDIS_ADDR empty)")
	}

	store := repo.NewPG(db)

	auth := service.NewAuth(store, cfg.Auth.JWTSecret, cfg.Auth.TokenTTL)
	cart := service.NewCart(store)
	orders := service.NewOrders(store, log)

	router := httpx.NewRouter(&httpx.Handlers{
		Auth:  &httpx.AuthHandler{Auth: auth, Log: log},
		Cart:  &httpx.CartHandler{Cart: cart, Log: log},
		Order: &httpx.OrderHandler{Orders: orders, Log: log},
		Catalog: &httpx.CatalogHandler{
			Products: store.Products(),
			Cache:    cacheClient,
			CacheTTL: cfg.Redis.CacheTTL,
			Log:      log,
		},
		Content: &httpx.ContentHandler{
			Challenges: store.Challenges(),
			Activities: store.Activities(),
			Log:        log,
		},
		Profile:     &httpx.ProfileHandler{Users: store.Users(), Log: log},
		RequireAuth: httpx.RequireAuth(auth, log),
	})

	srv := &http.Server{
		Addr:              cfg.HTTP.Addr,
		Handler:           router,
		ReadHeaderTimeout: 5 * time.Second,
	}

	go func() {
		log.Info().Str("addr", srv.Addr).Msg("http started")
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatal().Err(err).Msg("http failed")
		}
	}()

	sig := make(chan os.Signal, 1)
	signal.Notify(sig, syscall.SIGINT, syscall.SIGTERM)
	<-sig

	log.Info().Msg("shutdown...")
	shCtx, shCancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer shCancel()
	_ = srv.Shutdown(shCtx)
}
