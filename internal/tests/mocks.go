package tests

import (
	"context"
	"sync"
	"sync/atomic"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"taxi/internal/domain"
	"taxi/internal/repository"
)

// ──────────────────────────────────────────────
// MOCK PRICING REPOSITORY
// ──────────────────────────────────────────────

// MockPricingRepository is a mock implementation of repository.PricingRepository.
type MockPricingRepository struct {
	mu       sync.RWMutex
	pricings map[string]*domain.Pricing

	// Counters for verification
	UpsertCallCount int32

	// Error injection
	GetAllError error
	UpsertError error
}

// NewMockPricingRepository creates a new mock pricing repository.
func NewMockPricingRepository() *MockPricingRepository {
	return &MockPricingRepository{
		pricings: make(map[string]*domain.Pricing),
	}
}

// AddPricing adds a pricing record to the mock repository.
func (m *MockPricingRepository) AddPricing(pricing *domain.Pricing) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.pricings[pricing.Category] = pricing
}

func (m *MockPricingRepository) GetAll(ctx context.Context) ([]*domain.Pricing, error) {
	if m.GetAllError != nil {
		return nil, m.GetAllError
	}
	m.mu.RLock()
	defer m.mu.RUnlock()
	pricings := make([]*domain.Pricing, 0, len(m.pricings))
	for _, p := range m.pricings {
		pricings = append(pricings, p)
	}
	return pricings, nil
}

func (m *MockPricingRepository) GetByCategory(ctx context.Context, category string) (*domain.Pricing, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	pricing, ok := m.pricings[category]
	if !ok {
		return nil, repository.ErrNotFound
	}
	return pricing, nil
}

func (m *MockPricingRepository) Upsert(ctx context.Context, pricing *domain.Pricing) (*domain.Pricing, error) {
	atomic.AddInt32(&m.UpsertCallCount, 1)
	if m.UpsertError != nil {
		return nil, m.UpsertError
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	m.pricings[pricing.Category] = pricing
	return pricing, nil
}

// ──────────────────────────────────────────────
// MOCK ROUTE REPOSITORY
// ──────────────────────────────────────────────

// MockRouteRepository is a mock implementation of repository.RouteRepository.
type MockRouteRepository struct {
	mu     sync.RWMutex
	routes map[string]*domain.Route

	// Counters for verification
	CreateCallCount int32
	UpdateCallCount int32
	DeleteCallCount int32

	// Error injection
	CreateError error
	GetAllError error
}

// NewMockRouteRepository creates a new mock route repository.
func NewMockRouteRepository() *MockRouteRepository {
	return &MockRouteRepository{
		routes: make(map[string]*domain.Route),
	}
}

// AddRoute adds a route to the mock repository.
func (m *MockRouteRepository) AddRoute(route *domain.Route) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if route.ID.IsZero() {
		route.ID = primitive.NewObjectID()
	}
	m.routes[route.ID.Hex()] = route
}

func (m *MockRouteRepository) GetAll(ctx context.Context) ([]*domain.Route, error) {
	if m.GetAllError != nil {
		return nil, m.GetAllError
	}
	m.mu.RLock()
	defer m.mu.RUnlock()
	routes := make([]*domain.Route, 0, len(m.routes))
	for _, r := range m.routes {
		routes = append(routes, r)
	}
	return routes, nil
}

func (m *MockRouteRepository) GetByID(ctx context.Context, id string) (*domain.Route, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	route, ok := m.routes[id]
	if !ok {
		return nil, repository.ErrNotFound
	}
	return route, nil
}

func (m *MockRouteRepository) Create(ctx context.Context, route *domain.Route) (*domain.Route, error) {
	atomic.AddInt32(&m.CreateCallCount, 1)
	if m.CreateError != nil {
		return nil, m.CreateError
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	route.ID = primitive.NewObjectID()
	m.routes[route.ID.Hex()] = route
	return route, nil
}

func (m *MockRouteRepository) Update(ctx context.Context, id string, route *domain.Route) (*domain.Route, error) {
	atomic.AddInt32(&m.UpdateCallCount, 1)
	m.mu.Lock()
	defer m.mu.Unlock()
	existing, ok := m.routes[id]
	if !ok {
		return nil, repository.ErrNotFound
	}
	route.ID = existing.ID
	m.routes[id] = route
	return route, nil
}

func (m *MockRouteRepository) Delete(ctx context.Context, id string) error {
	atomic.AddInt32(&m.DeleteCallCount, 1)
	m.mu.Lock()
	defer m.mu.Unlock()
	if _, ok := m.routes[id]; !ok {
		return repository.ErrNotFound
	}
	delete(m.routes, id)
	return nil
}

// ──────────────────────────────────────────────
// MOCK DISTANCE LOOKUP
// ──────────────────────────────────────────────

// MockDistanceLookup is a mock implementation of service.DistanceLookup.
type MockDistanceLookup struct {
	Km   float64
	Text string

	// Counters for verification
	CallCount int32

	// Error injection
	Err error
}

func (m *MockDistanceLookup) Distance(ctx context.Context, origin, destination string) (float64, string, error) {
	atomic.AddInt32(&m.CallCount, 1)
	if m.Err != nil {
		return 0, "", m.Err
	}
	return m.Km, m.Text, nil
}
