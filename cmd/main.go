package main

import (
	"log"

	"caltrack/config"
	"caltrack/routes"
)

func main() {
	cfg := config.Load()

	db, err := config.OpenDB(cfg)
	if err != nil {
		log.Fatalf("Failed to open database: %v", err)
	}

	r := routes.SetupRouter(db, []byte(cfg.SessionSecret))
	if err := r.Run(cfg.Addr); err != nil {
		log.Fatalf("Server stopped: %v", err)
	}
}
