package handlers

import (
	"log"
	"net/http"
	"trip-planner-service/internal/api/dto"
	"trip-planner-service/internal/domain"
	"trip-planner-service/internal/ports"
)

// DestinationHandler exposes read-only catalog retrieval endpoints.
type DestinationHandler struct {
	Repo ports.DestinationRepository
}

func (h *DestinationHandler) List(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		w.Header().Set("Allow", http.MethodGet)
		writeError(w, r, http.StatusMethodNotAllowed, "method not allowed")
		return
	}

	destinations, err := h.Repo.ListDestinations(r.Context())
	if err != nil {
		log.Printf("list destinations failed: %v", err)
		writeError(w, r, http.StatusInternalServerError, "internal server error")
		return
	}

	res := dto.ListDestinationsResponse{
		Destinations: make([]dto.DestinationResponse, 0, len(destinations)),
	}
	for _, d := range destinations {
		res.Destinations = append(res.Destinations, toDestinationResponse(d))
	}

	writeJSON(w, r, http.StatusOK, res)
}

func toDestinationResponse(d domain.Destination) dto.DestinationResponse {
	paces := make([]string, 0, len(d.SuitablePace))
	for _, p := range d.SuitablePace {
		paces = append(paces, string(p))
	}

	return dto.DestinationResponse{
		ID:               d.ID,
		Name:             d.Name,
		Region:           string(d.Region),
		Interests:        d.Interests,
		SuitablePace:     paces,
		MinimumDays:      d.MinimumDays,
		WeatherSensitive: d.WeatherSensitive,
	}
}
