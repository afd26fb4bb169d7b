package store

import (
	"strings"

	"homefix-backend-go/internal/models"
)

type CreateApplianceParams struct {
	Name      string
	Brand     string
	Model     string
	Type      models.ApplianceType
	YearStart *int
	YearEnd   *int
	ImageURL  *string
}

func (s *Store) GetAppliance(id int) (models.Appliance, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.appliances.get(id)
}

func (s *Store) GetAllAppliances() []models.Appliance {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.appliances.all()
}

func (s *Store) GetAppliancesByType(kind models.ApplianceType) []models.Appliance {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.appliances.where(func(a models.Appliance) bool {
		return a.Type == kind
	})
}

// SearchAppliances matches query as a case-insensitive substring of name,
// brand or model. A blank query matches nothing.
func (s *Store) SearchAppliances(query string) []models.Appliance {
	query = strings.ToLower(strings.TrimSpace(query))
	if query == "" {
		return []models.Appliance{}
	}
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.appliances.where(func(a models.Appliance) bool {
		return strings.Contains(strings.ToLower(a.Name), query) ||
			strings.Contains(strings.ToLower(a.Brand), query) ||
			strings.Contains(strings.ToLower(a.Model), query)
	})
}

func (s *Store) CreateAppliance(p CreateApplianceParams) models.Appliance {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.appliances.insert(func(id int) models.Appliance {
		return models.Appliance{
			ID:        id,
			Name:      p.Name,
			Brand:     p.Brand,
			Model:     p.Model,
			Type:      p.Type,
			YearStart: p.YearStart,
			YearEnd:   p.YearEnd,
			ImageURL:  p.ImageURL,
		}
	})
}
