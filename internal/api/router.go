package api

import (
	"net/http"
	"trip-planner-service/internal/api/handlers"
	"trip-planner-service/internal/ports"
)

// NewRouter wires HTTP handlers with their dependencies and returns an http.Handler.
// This is the API composition root (handlers stay unaware of concrete adapters).
func NewRouter(repo ports.DestinationRepository, graph ports.TransportGraph, activities ports.ActivityProvider) http.Handler {
	mux := http.NewServeMux()

	destHandler := &handlers.DestinationHandler{Repo: repo}
	recHandler := &handlers.RecommendationHandler{Repo: repo}
	itinHandler := &handlers.ItineraryHandler{
		Repo:       repo,
		Graph:      graph,
		Activities: activities,
	}

	mux.HandleFunc("/health", handlers.Health)
	mux.HandleFunc("/destinations", destHandler.List)
	mux.HandleFunc("/recommendations", recHandler.Recommend)
	mux.HandleFunc("/itineraries", itinHandler.Generate)

	return requestIDMiddleware(loggingMiddleware(mux))
}
