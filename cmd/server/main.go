package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"careerease/internal/app"
	"careerease/internal/config"
	"careerease/internal/scheduler"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("failed to load config: %v", err)
	}

	bootstrap, cleanup, err := app.Bootstrap(cfg)
	if err != nil {
		log.Fatalf("failed to bootstrap app: %v", err)
	}
	defer func() {
		if err := cleanup(); err != nil {
			log.Printf("cleanup error: %v", err)
		}
	}()
	c := bootstrap.Container

	prepCtx, prepCancel := context.WithTimeout(context.Background(), 2*time.Minute)
	err = c.Prepare(prepCtx)
	prepCancel()
	if err != nil {
		log.Fatalf("failed to prepare database: %v", err)
	}

	rootCtx, stop := context.WithCancel(context.Background())
	defer stop()

	go func() {
		ctx, cancel := context.WithTimeout(rootCtx, 3*time.Minute)
		defer cancel()
		c.Catalog.Initialize(ctx)
	}()

	var sched *scheduler.Scheduler
	if cfg.Scheduler.RefreshIntervalHours > 0 {
		sched, err = scheduler.New(c.Catalog, cfg.Scheduler.RefreshIntervalHours, c.Logger)
		if err != nil {
			log.Fatalf("failed to create scheduler: %v", err)
		}
		if err := sched.Start(rootCtx); err != nil {
			log.Fatalf("failed to start scheduler: %v", err)
		}
	}

	addr, err := app.ListenAddr(cfg.App.HTTPPort)
	if err != nil {
		log.Fatalf("invalid HTTP port: %v", err)
	}

	errCh := make(chan error, 1)
	go func() {
		errCh <- bootstrap.Fiber.Listen(addr)
	}()

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)

	select {
	case err := <-errCh:
		if err != nil {
			log.Printf("server error: %v", err)
		}
	case <-sigCh:
		ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		if err := bootstrap.Fiber.ShutdownWithContext(ctx); err != nil {
			log.Printf("shutdown error: %v", err)
		}
	}

	stop()
	if sched != nil {
		sched.Stop()
	}
}
