package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"

	authrepo "github.com/cinefeed/cinefeed/internal/auth/repo"
	"github.com/cinefeed/cinefeed/internal/router"
	"github.com/cinefeed/cinefeed/internal/token"
	"github.com/cinefeed/cinefeed/pkg/database"
	"github.com/cinefeed/cinefeed/pkg/utilities"
)

func main() {
	// load .env file if present so os.Getenv picks values from it
	// this is best-effort: if no .env exists, continue (use defaults or real env)
	_ = godotenv.Load()

	// init logger
	lg, err := utilities.InitLogger(utilities.LogConfigFromEnv())
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to init logger: %v\n", err)
		os.Exit(1)
	}
	defer lg.Sync()

	sugar := lg.Sugar()
	sugar.Info("starting cinefeed api")

	// relational store
	db, err := database.Connect(database.ConfigFromEnv())
	if err != nil {
		sugar.Fatalf("db connect: %v", err)
	}
	defer db.Close()

	if err := database.Migrate(db); err != nil {
		sugar.Fatalf("db migrate: %v", err)
	}

	// document store
	mongoClient, err := database.ConnectMongo(database.MongoURIFromEnv())
	if err != nil {
		sugar.Fatalf("mongo connect: %v", err)
	}
	defer func() {
		_ = mongoClient.Disconnect(context.Background())
	}()
	docs := mongoClient.Database("epita")

	idxCtx, idxCancel := context.WithTimeout(context.Background(), 10*time.Second)
	if err := authrepo.NewAccountRepo(docs).EnsureIndexes(idxCtx); err != nil {
		sugar.Warnf("ensure account indexes: %v", err)
	}
	idxCancel()

	secret := os.Getenv("JWT_SECRET_KEY")
	if secret == "" {
		sugar.Fatal("JWT_SECRET_KEY is required")
	}
	tokens := token.NewManager(secret, time.Hour)

	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}

	// graceful shutdown
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	handler := router.RegisterRoutes(sugar, db, docs, tokens)
	srv := &http.Server{
		Addr:         "0.0.0.0:" + port,
		Handler:      handler,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	go func() {
		sugar.Infow("listening", "addr", srv.Addr)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			sugar.Fatalf("http server failed: %v", err)
		}
	}()

	<-ctx.Done()

	sugar.Info("shutting down")

	doneCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := db.PingContext(doneCtx); err != nil {
		sugar.Warnf("db ping on shutdown failed: %v", err)
	}
	if err := srv.Shutdown(doneCtx); err != nil {
		sugar.Warnf("http server shutdown failed: %v", err)
	}

	sugar.Info("goodbye")
}
