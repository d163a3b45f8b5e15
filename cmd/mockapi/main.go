package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/joho/godotenv"
	"github.com/mehmetcc/oseek/internal/mockapi"
	"go.uber.org/zap"
)

func main() {
	// init logger
	logger, err := zap.NewProduction()
	if err != nil {
		panic("failed to initialize logger: " + err.Error())
	}
	defer logger.Sync() //nolint:errcheck

	// load dotenv file
	if err := godotenv.Load(); err != nil {
		logger.Debug("no .env file loaded", zap.Error(err))
	}

	addr := os.Getenv("OSEEK_MOCK_ADDR")
	if addr == "" {
		addr = ":8080"
	}
	secret := os.Getenv("OSEEK_MOCK_SECRET")
	if secret == "" {
		secret = "dev-only-not-a-secret"
	}

	mock := mockapi.New(secret, logger)

	root := chi.NewRouter()
	root.Mount("/api", mock.Routes())

	srv := &http.Server{
		Addr:              addr,
		Handler:           root,
		ReadHeaderTimeout: 5 * time.Second,
	}

	go func() {
		logger.Info("mock backend listening", zap.String("addr", addr))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Fatal("server stopped", zap.Error(err))
		}
	}()

	stop := make(chan os.Signal, 1)
	signal.Notify(stop, syscall.SIGINT, syscall.SIGTERM)
	<-stop

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		logger.Error("shutdown did not finish cleanly", zap.Error(err))
	}
	logger.Info("bye")
}
