package handlers

import (
	"encoding/json"
	"errors"
	"io"
	"log"
	"net/http"
	"time"
	"trip-planner-service/internal/api/dto"
	"trip-planner-service/internal/domain"
	"trip-planner-service/internal/ports"
	"trip-planner-service/internal/services"
)

// ItineraryHandler orchestrates itinerary generation for the destinations a
// traveler marked interested. It coordinates catalog resolution, transport
// prefetching, and the plan generator.
type ItineraryHandler struct {
	Repo       ports.DestinationRepository
	Graph      ports.TransportGraph
	Activities ports.ActivityProvider
}

func (h *ItineraryHandler) Generate(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		w.Header().Set("Allow", http.MethodPost)
		writeError(w, r, http.StatusMethodNotAllowed, "method not allowed")
		return
	}

	var req dto.GenerateItinerariesRequest

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

	inputs, problem := parseUserInputs(req.UserInputsRequest, true)
	if problem != "" {
		writeError(w, r, http.StatusBadRequest, problem)
		return
	}

	svcReq := services.PlanItinerariesRequest{
		DestinationIDs: req.DestinationIDs,
		Inputs:         inputs,
		Now:            time.Now(),
	}

	result, err := services.PlanItineraries(r.Context(), svcReq, h.Repo, h.Graph, h.Activities)
	if err != nil {
		if errors.Is(err, ports.ErrUnknownDestination) {
			writeError(w, r, http.StatusBadRequest, "one or more destination ids are not in the catalog")
			return
		}
		log.Printf("plan itineraries failed: %v", err)
		writeError(w, r, http.StatusInternalServerError, "internal server error")
		return
	}

	res := dto.GenerateItinerariesResponse{
		Itineraries: make([]dto.ItineraryPlanResponse, 0, len(result.Itineraries)),
		Message:     result.Message,
		Warnings:    result.Warnings,
	}
	for _, plan := range result.Itineraries {
		res.Itineraries = append(res.Itineraries, toItineraryPlanResponse(plan))
	}

	writeJSON(w, r, http.StatusOK, res)
}

func toItineraryPlanResponse(plan domain.ItineraryPlan) dto.ItineraryPlanResponse {
	route := make([]dto.RouteSegmentResponse, 0, len(plan.Route))
	for _, segment := range plan.Route {
		route = append(route, toRouteSegmentResponse(segment))
	}

	paces := make([]string, 0, len(plan.BestFor.Paces))
	for _, p := range plan.BestFor.Paces {
		paces = append(paces, string(p))
	}

	return dto.ItineraryPlanResponse{
		ID:             plan.ID,
		Name:           plan.Name,
		Theme:          string(plan.Theme),
		Tagline:        plan.Tagline,
		TotalDays:      plan.TotalDays,
		TotalNights:    plan.TotalNights,
		DestinationIDs: plan.DestinationIDs,
		Route:          route,
		BestFor: dto.BestForResponse{
			Paces:         paces,
			Interests:     plan.BestFor.Interests,
			TripLengthMin: plan.BestFor.TripLengthMin,
			TripLengthMax: plan.BestFor.TripLengthMax,
		},
		Tradeoffs: plan.Tradeoffs,
		Stats: dto.PlanStatsResponse{
			TotalFlights:    plan.Stats.TotalFlights,
			TotalTrainRides: plan.Stats.TotalTrainRides,
			LightDays:       plan.Stats.LightDays,
			ModerateDays:    plan.Stats.ModerateDays,
			PackedDays:      plan.Stats.PackedDays,
			TravelDays:      plan.Stats.TravelDays,
		},
	}
}

func toRouteSegmentResponse(segment domain.RouteSegment) dto.RouteSegmentResponse {
	days := make([]dto.DayPlanResponse, 0, len(segment.Days))
	for _, day := range segment.Days {
		days = append(days, toDayPlanResponse(day))
	}

	res := dto.RouteSegmentResponse{
		DestinationID:   segment.DestinationID,
		DestinationName: segment.DestinationName,
		Nights:          segment.Nights,
		ArrivalDay:      segment.ArrivalDay,
		DepartureDay:    segment.DepartureDay,
		Role:            string(segment.Role),
		Days:            days,
	}

	if segment.NextTransport != nil {
		res.NextTransport = &dto.TransportConnectionResponse{
			Method:    string(segment.NextTransport.Method),
			Duration:  segment.NextTransport.Duration,
			TravelDay: segment.NextTransport.TravelDay,
		}
	}

	return res
}

func toDayPlanResponse(day domain.DayPlan) dto.DayPlanResponse {
	res := dto.DayPlanResponse{
		DayNumber: day.DayNumber,
		LocalDay:  day.LocalDay,
		Theme:     day.Theme,
		Intent:    day.Intent,
		Items:     day.Items,
		Pace:      string(day.Pace),
		Notes:     day.Notes,
	}

	for _, item := range day.StructuredItems {
		itemRes := dto.ItineraryItemResponse{
			Order:            item.Order,
			Category:         string(item.Category),
			Title:            item.Title,
			ShortDescription: item.ShortDescription,
		}
		if item.Connection != nil {
			itemRes.Connection = &dto.ItemConnectionResponse{
				DistanceKm:  item.Connection.DistanceKm,
				DurationMin: item.Connection.DurationMin,
				Mode:        item.Connection.Mode,
			}
		}
		res.StructuredItems = append(res.StructuredItems, itemRes)
	}

	return res
}
