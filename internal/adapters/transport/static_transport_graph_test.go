package transport

import (
	"context"
	"testing"
	"trip-planner-service/internal/domain"
)

func TestStaticTransportGraphLookups(t *testing.T) {
	graph := NewStaticTransportGraph([]Edge{
		{From: "beijing", To: "xian", Method: domain.MethodHighSpeedTrain, Duration: "5h"},
		{From: "shanghai", To: "suzhou", Method: domain.MethodHighSpeedTrain, Duration: "30min"},
	})

	conn, err := graph.GetConnection(context.Background(), "beijing", "xian")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if conn == nil || conn.Method != domain.MethodHighSpeedTrain || conn.Duration != "5h" {
		t.Fatalf("unexpected connection: %+v", conn)
	}

	// Edges are directed: the reverse lookup has no entry and is not an error.
	conn, err = graph.GetConnection(context.Background(), "xian", "beijing")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if conn != nil {
		t.Fatalf("expected nil for missing reverse edge, got %+v", conn)
	}
}

func TestStaticTransportGraphBatchedLookup(t *testing.T) {
	graph := NewStaticTransportGraph([]Edge{
		{From: "beijing", To: "xian", Method: domain.MethodHighSpeedTrain, Duration: "5h"},
		{From: "beijing", To: "chengdu", Method: domain.MethodFlight, Duration: "3h"},
	})

	results, err := graph.GetConnections(context.Background(), "beijing", []string{"xian", "chengdu", "guilin"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if len(results) != 2 {
		t.Fatalf("expected 2 connections, got %d", len(results))
	}
	if results["xian"].Method != domain.MethodHighSpeedTrain {
		t.Fatalf("xian method = %q", results["xian"].Method)
	}
	if results["chengdu"].Method != domain.MethodFlight {
		t.Fatalf("chengdu method = %q", results["chengdu"].Method)
	}
	if _, ok := results["guilin"]; ok {
		t.Fatalf("missing edge should not appear in results")
	}
}

func TestStaticTransportGraphReturnsCopies(t *testing.T) {
	graph := NewStaticTransportGraph([]Edge{
		{From: "beijing", To: "xian", Method: domain.MethodHighSpeedTrain, Duration: "5h"},
	})

	first, _ := graph.GetConnection(context.Background(), "beijing", "xian")
	first.TravelDay = 7

	second, _ := graph.GetConnection(context.Background(), "beijing", "xian")
	if second.TravelDay != 0 {
		t.Fatalf("caller mutation leaked into the graph: TravelDay = %d", second.TravelDay)
	}
}
