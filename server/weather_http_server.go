package server

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gorilla/mux"
)

type WeatherHttpServer struct {
	router          *Router
	muxRouter       *mux.Router
	addr            string
	shutdownTimeout time.Duration
}

func NewWeatherHttpServer(router *Router, muxRouter *mux.Router, port string, shutdownTimeout time.Duration) *WeatherHttpServer {
	return &WeatherHttpServer{
		router:          router,
		muxRouter:       muxRouter,
		addr:            ":" + port,
		shutdownTimeout: shutdownTimeout,
	}
}

// Handler registers the routes and returns the root handler.
func (s *WeatherHttpServer) Handler() http.Handler {
	s.router.RegisterRoutes()
	return s.muxRouter
}

// Start serves until SIGINT/SIGTERM, then shuts down gracefully.
// In-flight resolutions are cancelled through their request contexts.
func (s *WeatherHttpServer) Start() {
	srv := &http.Server{
		Addr:              s.addr,
		Handler:           s.Handler(),
		ReadHeaderTimeout: 5 * time.Second,
	}

	// Channel to listen for interrupt or termination signals
	stop := make(chan os.Signal, 1)
	signal.Notify(stop, os.Interrupt, syscall.SIGTERM)

	// Start the server in a goroutine so it doesn't block
	go func() {
		log.Printf("[WeatherHttpServer] Starting server on %s", s.addr)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("ListenAndServe(): %v", err)
		}
	}()

	// Wait for a signal to shut down
	<-stop
	log.Println("[WeatherHttpServer] Shutting down the server...")

	ctx, cancel := context.WithTimeout(context.Background(), s.shutdownTimeout)
	defer cancel()

	// Attempt graceful shutdown
	if err := srv.Shutdown(ctx); err != nil {
		log.Printf("[WeatherHttpServer] Server forced to shutdown: %v", err)
	}

	log.Println("[WeatherHttpServer] Server exiting")
}
