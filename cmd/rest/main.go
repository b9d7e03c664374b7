package main

import (
	"context"
	"log"

	"ai-humanizer-be/internal/bootstrap"
	"ai-humanizer-be/internal/config"
	"ai-humanizer-be/internal/repository/unitofwork"
	"ai-humanizer-be/internal/server"
	"ai-humanizer-be/internal/tracer"
	"ai-humanizer-be/pkg/database"
)

func main() {
	shutdownTracer := tracer.InitTracer()
	defer shutdownTracer(context.Background())

	cfg := config.Load()

	gormDB, err := database.NewGormDBFromDSN(cfg.Database.Connection)
	if err != nil {
		log.Panicf("Unable to connect to GORM DB: %v", err)
	}

	uowFactory := unitofwork.NewRepositoryFactory(gormDB)
	container := bootstrap.NewContainer(uowFactory, cfg)

	go func() {
		log.Println("Background: Starting Audit Consumer...")
		if err := container.ConsumerService.Consume(context.Background()); err != nil {
			log.Printf("Background Consumer Error: %v", err)
		}
	}()

	srv := server.New(cfg, container)
	log.Fatal(srv.Run())
}
