package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"biccshop.org/internal/account"
	"biccshop.org/internal/auth"
	"biccshop.org/internal/catalog"
	"biccshop.org/internal/config"
	"biccshop.org/internal/httpapi"
	"biccshop.org/internal/mail"
	"biccshop.org/internal/obs"
	"biccshop.org/internal/order"
	"biccshop.org/internal/report"
	"biccshop.org/internal/store/pg"
	"biccshop.org/internal/wishlist"
)

var (
	version = "1.2.0"
	commit  = "dev"
)

func main() {
	obs.Init()
	obs.InitBuildInfo(version, commit)

	cfg, err := config.FromEnv()
	if err != nil {
		log.Fatalf("config: %v", err)
	}
	if cfg.PGDSN == "" {
		log.Fatal("config: BICC_PG_DSN is required")
	}

	db, err := pg.Open(cfg.PGDSN)
	if err != nil {
		log.Fatalf("open db: %v", err)
	}
	if err := pg.Ping(context.Background(), db, 5*time.Second); err != nil {
		log.Fatalf("ping db: %v", err)
	}

	tokens, err := auth.NewTokenService(cfg.JWTSecret, auth.WithTTL(cfg.TokenTTL))
	if err != nil {
		log.Fatalf("token service: %v", err)
	}

	mailer := mail.FromConfig(cfg.Mail)

	accounts := account.NewPGStore(db)
	products := catalog.NewPGStore(db)
	orderStore := order.NewPGStore(db)
	stats := report.NewPGStore(db)

	api := httpapi.New(httpapi.Deps{
		Auth:       auth.NewService(accounts, tokens, mailer),
		Tokens:     tokens,
		Accounts:   accounts,
		Catalog:    products,
		Orders:     order.NewService(orderStore, accounts, mailer),
		OrderStore: orderStore,
		Wishlist:   wishlist.NewPGStore(db),
		Reports:    report.NewService(stats),
		Stats:      stats,
		Mailer:     mailer,
		AdminEmail: cfg.AdminEmail,
		CORSOrigin: cfg.CORSOrigin,
		ReadyProbe: httpapi.ReadyProbe{DB: db},
		Version:    version,
	})

	srv := &http.Server{
		Addr:              cfg.Addr,
		Handler:           api.Handler(),
		ReadTimeout:       15 * time.Second,
		ReadHeaderTimeout: 15 * time.Second,
		WriteTimeout:      15 * time.Second,
		IdleTimeout:       60 * time.Second,
	}

	log.Printf("Starting bicc-api %s on %s", version, srv.Addr)

	go func() {
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("listen: %v", err)
		}
	}()

	stop := make(chan os.Signal, 1)
	signal.Notify(stop, os.Interrupt, syscall.SIGTERM)

	<-stop
	log.Println("Shutting down...")

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	_ = srv.Shutdown(ctx)
	_ = db.Close()
	log.Println("Stopped")
}
