package main

import (
	"fmt"
	"log"

	"proposaldesk/internal/config"
	"proposaldesk/internal/database"
	"proposaldesk/internal/repository"
	"proposaldesk/internal/server"
)

func main() {
	cfg := config.Load()

	db, err := database.Open(cfg.DBDSN)
	if err != nil {
		log.Fatalf("database error: %v", err)
	}

	store := repository.New(db)
	r := server.NewRouter(cfg, store)

	addr := fmt.Sprintf(":%s", cfg.ServerPort)
	log.Printf("starting server on %s", addr)
	if err := r.Run(addr); err != nil {
		log.Fatalf("server error: %v", err)
	}
}
