package main

import (
	"context"
	"errors"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"partymenu/internal/config"
	"partymenu/internal/db"
	"partymenu/internal/httpserver"
	cartlinerepo "partymenu/internal/repository/cartline"
	categoryrepo "partymenu/internal/repository/category"
	menuitemrepo "partymenu/internal/repository/menuitem"
	menutyperepo "partymenu/internal/repository/menutype"
	tokenrepo "partymenu/internal/repository/token"
	userrepo "partymenu/internal/repository/user"
	anonymoussvc "partymenu/internal/service/anonymous"
	cartsvc "partymenu/internal/service/cart"
	cartmergesvc "partymenu/internal/service/cartmerge"
	menusvc "partymenu/internal/service/menu"
	usersvc "partymenu/internal/service/user"
)

func main() {
	cfg := config.FromEnv()
	logger := log.New(os.Stdout, "[api] ", log.LstdFlags|log.LUTC|log.Lshortfile)

	ctx := context.Background()
	dbpool, err := db.Connect(ctx, cfg.DBConnString)
	if err != nil {
		logger.Fatalf("connect to db: %v", err)
	}
	defer dbpool.Close()

	itemRepo := menuitemrepo.NewPostgres(dbpool, logger)
	categoryRepo := categoryrepo.NewPostgres(dbpool)
	menuTypeRepo := menutyperepo.NewPostgres(dbpool)
	cartLineRepo := cartlinerepo.NewPostgres(dbpool)
	userRepo := userrepo.NewPostgres(dbpool, logger)
	tokenRepo := tokenrepo.NewPostgres(dbpool)

	menuService := menusvc.New(itemRepo, categoryRepo, menuTypeRepo)
	cartService := cartsvc.New(cartLineRepo, itemRepo)
	mergeService := cartmergesvc.New(cartLineRepo, logger)
	userService := usersvc.New(userRepo, tokenRepo)
	sessionService := anonymoussvc.New()

	srv, err := httpserver.New(cfg.HTTPAddr, logger, dbpool, httpserver.Deps{
		CartSvc:    cartService,
		MergeSvc:   mergeService,
		MenuSvc:    menuService,
		UserSvc:    userService,
		SessionSvc: sessionService,
	})
	if err != nil {
		logger.Fatalf("init server: %v", err)
	}

	sweepCtx, stopSweep := context.WithCancel(ctx)
	defer stopSweep()
	if cfg.CartRetention > 0 {
		go sweepAbandonedCarts(sweepCtx, logger, cartService, cfg.CartRetention, cfg.CartSweepInterval)
	}

	serverErr := make(chan error, 1)
	go func() {
		logger.Printf("starting http server on %s", cfg.HTTPAddr)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			serverErr <- err
		}
	}()

	stopCh := make(chan os.Signal, 1)
	signal.Notify(stopCh, syscall.SIGINT, syscall.SIGTERM)

	select {
	case sig := <-stopCh:
		logger.Printf("received signal %s, shutting down", sig)
	case err := <-serverErr:
		logger.Printf("server error: %v", err)
	}

	stopSweep()
	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.ShutdownTimeout)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Printf("graceful shutdown failed: %v", err)
	} else {
		logger.Printf("server stopped")
	}
}

// sweepAbandonedCarts periodically deletes session carts older than the
// retention window. Account carts are never touched.
func sweepAbandonedCarts(ctx context.Context, logger *log.Logger, carts *cartsvc.Service, retention, interval time.Duration) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			purged, err := carts.PurgeAbandonedSessions(ctx, retention)
			if err != nil {
				logger.Printf("cart retention sweep failed: %v", err)
				continue
			}
			if purged > 0 {
				logger.Printf("cart retention sweep removed %d lines", purged)
			}
		}
	}
}
