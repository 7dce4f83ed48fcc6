package transport

import (
	"context"
	"trip-planner-service/internal/domain"
)

// Directed edge used to seed a StaticTransportGraph.
type Edge struct {
	From, To string
	Method   domain.TransportMethod
	Duration string
}

// StaticTransportGraph is an in-memory transport lookup seeded from a fixed
// edge list. It backs tests and no-database runs; lookups behave exactly
// like the SQL graph, including nil results for missing edges.
type StaticTransportGraph struct {
	m map[string]domain.TransportConnection
}

func NewStaticTransportGraph(edges []Edge) *StaticTransportGraph {
	m := make(map[string]domain.TransportConnection, len(edges))
	for _, e := range edges {
		m[e.From+"|"+e.To] = domain.TransportConnection{Method: e.Method, Duration: e.Duration}
	}
	return &StaticTransportGraph{m: m}
}

func (g *StaticTransportGraph) GetConnection(ctx context.Context, origin, destination string) (*domain.TransportConnection, error) {
	conn, ok := g.m[origin+"|"+destination]
	if !ok {
		return nil, nil
	}

	c := conn
	return &c, nil
}

func (g *StaticTransportGraph) GetConnections(
	ctx context.Context,
	origin string,
	destinations []string,
) (map[string]*domain.TransportConnection, error) {
	results := make(map[string]*domain.TransportConnection, len(destinations))
	for _, d := range destinations {
		conn, ok := g.m[origin+"|"+d]
		if !ok {
			continue
		}
		c := conn
		results[d] = &c
	}

	return results, nil
}
