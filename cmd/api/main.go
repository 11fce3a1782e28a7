package main

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-intake-sheets/internal/config"
	"github.com/go-intake-sheets/internal/infrastructure/cookie"
	"github.com/go-intake-sheets/internal/infrastructure/memstore"
	"github.com/go-intake-sheets/internal/infrastructure/sheets"
	"github.com/go-intake-sheets/internal/infrastructure/smtp"
	transporthttp "github.com/go-intake-sheets/internal/transport/http"
	"github.com/joho/godotenv"
)

func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, reading from environment")
	}

	cfg := config.Load()
	cfg.CheckStartup()

	rootCtx, stop := context.WithCancel(context.Background())
	defer stop()

	// Session store with background idle sweep.
	sessions := memstore.NewSessionStore(cfg.SessionIdleTTL)
	sessions.StartSweeper(rootCtx, time.Hour)

	cookies := cookie.NewProvider(cfg.SessionSecret, cfg.SessionIdleTTL)

	// SMTP mailer (degrades when no sender account is configured).
	var mailer smtp.Mailer
	if cfg.SMTPEmail != "" {
		mailer = smtp.NewMailer(cfg)
	} else {
		log.Println("WARN: SMTP sender not configured, verification codes cannot be delivered")
	}

	// Sheets ledger (optional — graceful fallback if credentials are missing).
	var ledger sheets.Ledger
	if l, err := sheets.NewLedger(rootCtx, cfg); err == nil {
		ledger = l
	} else {
		log.Printf("WARN: ledger not available: %v", err)
	}

	deps := &transporthttp.Deps{
		Sessions: sessions,
		Cookies:  cookies,
		Mailer:   mailer,
		Ledger:   ledger,
	}

	router := transporthttp.NewRouter(cfg, deps)

	srv := &http.Server{
		Addr:         fmt.Sprintf(":%s", cfg.AppPort),
		Handler:      router,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	go func() {
		log.Printf("Server starting on :%s (env=%s)", cfg.AppPort, cfg.AppEnv)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("server error: %v", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Println("Shutting down server...")
	stop()
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		log.Fatalf("forced shutdown: %v", err)
	}
	log.Println("Server stopped")
}
