package main

import (
	"fmt"
	"log"

	"crm-integrator/internal/config"
	"crm-integrator/internal/database"
	"crm-integrator/internal/genesys"
	"crm-integrator/internal/handlers"
	"crm-integrator/internal/server"
	"crm-integrator/internal/store"
	"crm-integrator/internal/sync"
)

func main() {
	cfg := config.Load()
	database.Init(cfg.DBDSN, cfg.DataDir)

	recordStore, err := store.New(cfg.DataDir)
	if err != nil {
		log.Fatalf("failed to open record store: %v", err)
	}

	client := genesys.NewClient(genesys.Config{
		ClientID:     cfg.GenesysClientID,
		ClientSecret: cfg.GenesysClientSecret,
		Region:       cfg.GenesysRegion,
	})
	if !client.IsConfigured() {
		log.Println("Genesys Cloud integration not configured, sync endpoints will return errors")
	}

	handlers.Setup(recordStore, sync.NewMapper(recordStore, client), client)

	r := server.NewRouter(cfg)

	addr := fmt.Sprintf(":%s", cfg.ServerPort)
	log.Printf("starting server on %s", addr)
	if err := r.Run(addr); err != nil {
		log.Fatalf("server error: %v", err)
	}
}
