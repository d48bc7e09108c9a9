package main

import (
	"context"
	"fmt"
	"log"

	"gateway/configs"
	"gateway/middlewares"
	"gateway/routes"
	"gateway/services"
	"gateway/upstream"
	"gateway/ws"

	"github.com/gin-gonic/gin"
)

func main() {
	cfg := configs.LoadConfig()

	// DB (staff accounts only)
	configs.ConnectionDB(cfg.DBSource)
	configs.SetupDatabase()
	if err := configs.SeedStaff(); err != nil {
		log.Fatalf("seed staff failed: %v", err)
	}

	// Kitchen feed: poller + hub
	client := upstream.New(cfg.UpstreamBaseURL)
	hub := ws.NewKitchenHub(services.NewOrderService(client), cfg.KitchenPoll)
	go hub.Run()
	go hub.Poll(context.Background())

	// HTTP
	r := gin.Default()
	r.Use(middlewares.CORSMiddleware())
	routes.RegisterRoutes(r, cfg, hub)

	addr := fmt.Sprintf(":%s", cfg.Port)
	log.Println("gateway running at", addr)
	if err := r.Run(addr); err != nil {
		log.Fatal(err)
	}
}
