package main

import (
	"context"
	"flag"
	"log"
	"strings"
	"time"

	"careerease/internal/app"
	"careerease/internal/config"
)

func main() {
	what := flag.String("what", "all", "comma-separated: locations, skills, jobs, all")
	timeout := flag.Duration("timeout", 5*time.Minute, "overall timeout")
	flag.Parse()

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("failed to load config: %v", err)
	}

	c, err := app.NewContainer(cfg)
	if err != nil {
		log.Fatalf("failed to init container: %v", err)
	}
	defer func() {
		_ = c.Close()
	}()

	ctx, cancel := context.WithTimeout(context.Background(), *timeout)
	defer cancel()

	if err := c.Prepare(ctx); err != nil {
		log.Fatalf("failed to prepare database: %v", err)
	}

	steps := map[string]func(context.Context) (int, error){
		"locations": c.Catalog.RefreshLocations,
		"skills":    c.Catalog.RefreshSkills,
		"jobs":      c.Catalog.RefreshJobSnapshot,
	}
	order := []string{"locations", "skills", "jobs"}

	selected := map[string]bool{}
	for _, w := range strings.Split(*what, ",") {
		w = strings.ToLower(strings.TrimSpace(w))
		if w == "all" {
			for _, k := range order {
				selected[k] = true
			}
			continue
		}
		if _, ok := steps[w]; !ok {
			log.Fatalf("unknown sync target %q", w)
		}
		selected[w] = true
	}

	failed := false
	for _, k := range order {
		if !selected[k] {
			continue
		}
		n, err := steps[k](ctx)
		if err != nil {
			log.Printf("sync %s failed: %v", k, err)
			failed = true
			continue
		}
		log.Printf("sync %s stored=%d", k, n)
	}
	if failed {
		log.Fatalf("sync finished with errors")
	}
}
