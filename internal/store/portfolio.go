package store

import (
	"sync"

	"github.com/quantfolio/portfolio-analytics/pkg/models"
	"github.com/quantfolio/portfolio-analytics/pkg/utils/errors"
	"github.com/quantfolio/portfolio-analytics/pkg/utils/logger"
)

// userScenarioBaseID keeps user-created scenario ids disjoint from the
// generated baseline scenarios (ids 1-5).
const userScenarioBaseID = 1000

// PortfolioStore holds generated portfolio records in memory and tracks
// the single active selection. Records themselves are immutable; scenario
// changes replace the stored record rather than mutating it in place.
type PortfolioStore struct {
	portfolios map[string]*models.Portfolio
	order      []string
	activeID   string
	nextScenID int
	mu         sync.RWMutex
	log        *logger.Logger
}

// NewPortfolioStore creates an empty store.
func NewPortfolioStore() *PortfolioStore {
	return &PortfolioStore{
		portfolios: make(map[string]*models.Portfolio),
		nextScenID: userScenarioBaseID,
		log:        logger.GetLogger("store.portfolio"),
	}
}

// Get retrieves a portfolio by id.
func (s *PortfolioStore) Get(id string) (*models.Portfolio, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	p, ok := s.portfolios[id]
	if !ok {
		return nil, errors.NotFound("portfolio not found: " + id)
	}
	return p, nil
}

// List returns all stored portfolios in insertion order.
func (s *PortfolioStore) List() []*models.Portfolio {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]*models.Portfolio, 0, len(s.order))
	for _, id := range s.order {
		out = append(out, s.portfolios[id])
	}
	return out
}

// Save stores a portfolio. The first saved portfolio becomes active.
func (s *PortfolioStore) Save(p *models.Portfolio) error {
	if p == nil {
		return errors.InvalidArgument("cannot save nil portfolio")
	}
	if p.ID == "" {
		return errors.InvalidArgument("portfolio ID cannot be empty")
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if _, exists := s.portfolios[p.ID]; !exists {
		s.order = append(s.order, p.ID)
	}
	s.portfolios[p.ID] = p
	if s.activeID == "" {
		s.activeID = p.ID
	}
	return nil
}

// Delete removes a portfolio. Deleting the active portfolio shifts the
// selection to the oldest remaining one.
func (s *PortfolioStore) Delete(id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.portfolios[id]; !ok {
		return errors.NotFound("portfolio not found: " + id)
	}
	delete(s.portfolios, id)
	for i, oid := range s.order {
		if oid == id {
			s.order = append(s.order[:i], s.order[i+1:]...)
			break
		}
	}
	if s.activeID == id {
		s.activeID = ""
		if len(s.order) > 0 {
			s.activeID = s.order[0]
		}
	}
	return nil
}

// Active returns the currently selected portfolio.
func (s *PortfolioStore) Active() (*models.Portfolio, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if s.activeID == "" {
		return nil, errors.NotFound("no active portfolio")
	}
	return s.portfolios[s.activeID], nil
}

// SetActive switches the active selection.
func (s *PortfolioStore) SetActive(id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.portfolios[id]; !ok {
		return errors.NotFound("portfolio not found: " + id)
	}
	s.activeID = id
	return nil
}

// AddScenario appends a user-created stress scenario, assigning it an id
// from the user range, and returns the stored scenario.
func (s *PortfolioStore) AddScenario(portfolioID string, scenario models.StressScenario) (models.StressScenario, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	p, ok := s.portfolios[portfolioID]
	if !ok {
		return models.StressScenario{}, errors.NotFound("portfolio not found: " + portfolioID)
	}

	scenario.ID = s.nextScenID
	s.nextScenID++

	updated := *p
	updated.StressScenarios = append(append([]models.StressScenario(nil), p.StressScenarios...), scenario)
	s.portfolios[portfolioID] = &updated

	s.log.Infof("Added stress scenario %d (%s) to portfolio %s", scenario.ID, scenario.Name, portfolioID)
	return scenario, nil
}

// RemoveScenario deletes a stress scenario by id. Baseline scenarios can
// be removed like user-created ones; regeneration restores them.
func (s *PortfolioStore) RemoveScenario(portfolioID string, scenarioID int) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	p, ok := s.portfolios[portfolioID]
	if !ok {
		return errors.NotFound("portfolio not found: " + portfolioID)
	}

	for i, sc := range p.StressScenarios {
		if sc.ID == scenarioID {
			updated := *p
			updated.StressScenarios = append(
				append([]models.StressScenario(nil), p.StressScenarios[:i]...),
				p.StressScenarios[i+1:]...,
			)
			s.portfolios[portfolioID] = &updated
			return nil
		}
	}
	return errors.NotFound("stress scenario not found")
}
