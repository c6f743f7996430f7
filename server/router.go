package server

import (
	"net/http"

	"github.com/gorilla/mux"
)

// RouteHandler is what the router dispatches to.
type RouteHandler interface {
	GetWeather(w http.ResponseWriter, r *http.Request)
	Ping(w http.ResponseWriter, r *http.Request)
}

type Router struct {
	handler RouteHandler
	router  *mux.Router
}

// NewRouter creates a router with the app’s routes.
func NewRouter(handler RouteHandler, router *mux.Router) *Router {
	return &Router{
		handler: handler,
		router:  router,
	}
}

func (r *Router) RegisterRoutes() {
	// expects ?city={city name}
	r.router.HandleFunc("/v1/weather", r.handler.GetWeather).Methods("GET")

	r.router.HandleFunc("/ping", r.handler.Ping).Methods("GET")
}
