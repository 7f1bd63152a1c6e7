package service

import (
	"sync"

	"github.com/company-sales-api/internal/graph"
	"github.com/company-sales-api/internal/metrics"
)

// GraphStore охраняет граф: один писатель или много читателей
type GraphStore struct {
	mu sync.RWMutex
	g  *graph.Graph
}

// NewGraphStore оборачивает уже построенный граф
func NewGraphStore(g *graph.Graph) *GraphStore {
	metrics.ObserveGraph(g.Stats())
	return &GraphStore{g: g}
}

// Read выполняет fn под блокировкой чтения
func (s *GraphStore) Read(fn func(g *graph.Graph)) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	fn(s.g)
}

// Write выполняет fn под эксклюзивной блокировкой
func (s *GraphStore) Write(fn func(g *graph.Graph) error) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	err := fn(s.g)
	metrics.ObserveGraph(s.g.Stats())
	return err
}
