package main

import (
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/gin-gonic/gin"

	"layovermeet/backend/internal/api/handler"
	"layovermeet/backend/internal/chathub"
	"layovermeet/backend/internal/config"
	"layovermeet/backend/internal/store"
	"layovermeet/backend/internal/travelcode"
)

func main() {
	log.Println("Starting LayoverMeet backend...")

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	// 1. Core wiring: store, live-event hub, itinerary parser.
	s := store.NewService(cfg.Store)
	hub := chathub.NewManagerService()
	s.SetNotifier(hub.Notify)
	parser := travelcode.NewParser(cfg.Store.MinLayover, cfg.Store.MaxLayover)

	// 2. Background goroutines.
	go hub.Run()
	s.Start()

	// 3. Gin routing.
	r := gin.Default()
	h := handler.NewHandler(s, parser, hub)

	r.POST("/travelers", h.RegisterTraveler)
	r.GET("/travelers", h.FindTravelerByNickname)
	r.GET("/travelers/:id", h.GetTraveler)
	r.GET("/travelers/:id/matches", h.GetMatches)
	r.POST("/travelers/:id/matches/refresh", h.RefreshMatches)
	r.GET("/travelers/:id/chats", h.ListPrivateChats)
	r.GET("/travelers/:id/groups", h.ListGroupChats)
	r.POST("/chats", h.CreatePrivateChat)
	r.POST("/chats/:id/keep", h.SetKeepChat)
	r.POST("/messages", h.SendMessage)
	r.GET("/stats", h.GetStats)
	r.GET("/ws", h.ServeWebSocket)

	server := &http.Server{
		Addr:           fmt.Sprintf("%s:%d", cfg.Server.Host, cfg.Server.Port),
		Handler:        r,
		ReadTimeout:    cfg.Server.ReadTimeout,
		WriteTimeout:   cfg.Server.WriteTimeout,
		MaxHeaderBytes: 1 << 20,
	}

	go func() {
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("HTTP server error: %v", err)
		}
	}()
	log.Printf("Listening on %s", server.Addr)

	// 4. Orderly shutdown: stop the sweeper and the hub, no dangling timers.
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Println("Shutting down...")
	s.Stop()
	hub.Stop()
	server.Close()
}
