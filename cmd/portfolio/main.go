package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"portfolio/internal/auth"
	"portfolio/internal/chatbot"
	"portfolio/internal/config"
	"portfolio/internal/db"
	httpx "portfolio/internal/http"
	"portfolio/internal/jobs"
	"portfolio/internal/mailer"
	"portfolio/internal/respond"
)

func main() {
	cfg := config.Load()

	respond.SetDebug(!cfg.Production())

	gdb, err := db.Connect(cfg.DatabaseURL)
	if err != nil {
		log.Fatal(err)
	}
	if err := db.AutoMigrateAndIndexes(gdb); err != nil {
		log.Fatal(err)
	}

	jwtSvc := auth.NewJWT(cfg.JWTSecret)

	authSvc := &auth.Service{DB: gdb, JWT: jwtSvc}
	if err := authSvc.Bootstrap(context.Background(), cfg.AdminEmail, cfg.AdminPassword); err != nil {
		log.Fatal(err)
	}

	var m mailer.Mailer = mailer.Log{}
	if cfg.SMTPAddr != "" {
		m = &mailer.SMTP{Addr: cfg.SMTPAddr, From: cfg.SMTPFrom, User: cfg.SMTPUser, Pass: cfg.SMTPPass}
	}

	ctx, cancel := context.WithCancel(context.Background())

	bot := chatbot.NewResponder()
	if cfg.ChatbotScript != "" {
		if err := bot.LoadFile(cfg.ChatbotScript); err != nil {
			log.Printf("chatbot script load failed, using built-in: %v\n", err)
		} else if err := bot.Watch(ctx, cfg.ChatbotScript); err != nil {
			log.Printf("chatbot script watch failed: %v\n", err)
		}
	}

	r := httpx.NewRouter(cfg, gdb, jwtSvc, m, bot)

	// email worker
	worker := &jobs.Worker{ID: "worker-1", Repo: &jobs.Repo{DB: gdb}, Mailer: m}
	go worker.Run(ctx)

	srv := &http.Server{
		Addr:              cfg.HTTPAddr,
		Handler:           r,
		ReadHeaderTimeout: 5 * time.Second,
	}

	go func() {
		log.Printf("listening on %s\n", cfg.HTTPAddr)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatal(err)
		}
	}()

	// graceful shutdown
	ch := make(chan os.Signal, 1)
	signal.Notify(ch, syscall.SIGINT, syscall.SIGTERM)
	<-ch

	cancel()
	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer shutdownCancel()
	_ = srv.Shutdown(shutdownCtx)
}
