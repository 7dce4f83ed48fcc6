package handlers

import (
	"encoding/json"
	"io"
	"log"
	"net/http"
	"trip-planner-service/internal/api/dto"
	"trip-planner-service/internal/ports"
	"trip-planner-service/internal/services"
)

// RecommendationHandler runs the destination ranker over the catalog.
type RecommendationHandler struct {
	Repo ports.DestinationRepository
}

func (h *RecommendationHandler) Recommend(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		w.Header().Set("Allow", http.MethodPost)
		writeError(w, r, http.StatusMethodNotAllowed, "method not allowed")
		return
	}

	var req dto.RecommendRequest

	dec := json.NewDecoder(r.Body)
	defer r.Body.Close()
	dec.DisallowUnknownFields()

	if err := dec.Decode(&req); err != nil {
		writeError(w, r, http.StatusBadRequest, "invalid json body")
		return
	}
	if err := dec.Decode(&struct{}{}); err != io.EOF {
		writeError(w, r, http.StatusBadRequest, "body must contain only one JSON object")
		return
	}

	inputs, problem := parseUserInputs(req.UserInputsRequest, false)
	if problem != "" {
		writeError(w, r, http.StatusBadRequest, problem)
		return
	}

	result, err := services.RecommendDestinations(r.Context(), inputs, h.Repo)
	if err != nil {
		log.Printf("recommend destinations failed: %v", err)
		writeError(w, r, http.StatusInternalServerError, "internal server error")
		return
	}

	res := dto.RecommendResponse{
		Destinations:  make([]dto.RecommendedDestinationResponse, 0, len(result.Destinations)),
		RelaxedFilter: result.Relaxed,
		Message:       result.Message,
	}
	for _, d := range result.Destinations {
		res.Destinations = append(res.Destinations, dto.RecommendedDestinationResponse{
			DestinationResponse: toDestinationResponse(d),
			InterestMatches:     d.MatchedInterests(inputs.Interests),
			WhyThisFits:         services.ExplainFit(d, inputs),
		})
	}

	writeJSON(w, r, http.StatusOK, res)
}
