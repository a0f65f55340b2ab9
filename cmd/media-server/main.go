package main

import (
	"context"
	"log"
	"net/http"

	"github.com/Omiixx-nova/Bloom-Heaven/internal/config"
	"github.com/Omiixx-nova/Bloom-Heaven/internal/dbmongo"
	"github.com/Omiixx-nova/Bloom-Heaven/internal/media"
)

// Standalone file server for the gridfs upload backend. The disk backend
// does not need this binary, the API server serves /uploads/ itself.
func main() {
	cfg := config.LoadConfig()

	mongoClient, err := dbmongo.NewMongoConnection(cfg)
	if err != nil {
		log.Fatal("Failed to connect to MongoDB:", err)
	}
	defer mongoClient.Close(context.Background())

	mediaServer := media.NewHTTPServer(mongoClient)

	addr := ":" + cfg.Server.MediaServerPort
	log.Printf("🚀 Media HTTP Server starting on %s", addr)
	log.Printf("📂 Serving files at: http://localhost%s/media/{fileId}", addr)

	if err := http.ListenAndServe(addr, mediaServer); err != nil {
		log.Fatal("Failed to start server:", err)
	}
}
