package store

import (
	"fmt"

	"adalicious/internal/models"
)

// ListMenu returns every orderable dish in insertion order.
func (s *Store) ListMenu() ([]models.MenuItem, error) {
	var items []models.MenuItem
	if err := s.db.Order("id").Find(&items).Error; err != nil {
		return nil, fmt.Errorf("failed to list menu: %w", err)
	}
	return items, nil
}
