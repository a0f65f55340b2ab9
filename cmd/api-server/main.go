package main

import (
	"context"
	"log"
	"net/http"

	"github.com/Omiixx-nova/Bloom-Heaven/internal/api"
	"github.com/Omiixx-nova/Bloom-Heaven/internal/di"
)

func main() {
	//step-1
	//wire figures out the whole dependency graph: config, store backend,
	//token manager, services, upload backend, router
	app, err := di.InitializeApplication()
	if err != nil {
		log.Fatalf("Failed to initialize application: %v", err)
	}
	cfg := app.Config
	log.Println("Dependencies wired Successfully")

	//step-2
	//seed the demo account so a fresh process has something to show
	origin := cfg.Server.PublicBaseURL
	if origin == "" {
		origin = "http://localhost:" + cfg.Server.Port
	}
	if err := api.Seed(context.Background(), app.Auth, app.Bouquets, origin); err != nil {
		log.Printf("Seed warning: %v", err)
	}

	//step-3
	//serve REST + uploaded assets from one listener
	addr := cfg.Server.Host + ":" + cfg.Server.Port
	log.Printf("🚀 Bloom Heaven API listening on %s", addr)

	if err := http.ListenAndServe(addr, app.Server.Router()); err != nil {
		log.Fatalf("Failed to start server: %v", err)
	}
}
