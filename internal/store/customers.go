package store

import (
	"fmt"
	"strings"

	"github.com/jinzhu/gorm"

	"adalicious/internal/models"
)

// ResolveCustomer maps a first name to a stable customer, creating the
// row on first use. Resolving the same name twice returns the same
// customer. A racing insert of the same name loses against the unique
// index on firstname; the loser re-reads and returns the winner's row.
func (s *Store) ResolveCustomer(firstname string) (*models.Customer, error) {
	firstname = strings.TrimSpace(firstname)
	if firstname == "" {
		return nil, fmt.Errorf("%w: firstname vide", ErrValidation)
	}

	var customer models.Customer
	err := s.db.Where("firstname = ?", firstname).First(&customer).Error
	if err == nil {
		return &customer, nil
	}
	if !gorm.IsRecordNotFoundError(err) {
		return nil, fmt.Errorf("failed to look up customer: %w", err)
	}

	customer = models.Customer{Firstname: firstname}
	if createErr := s.db.Create(&customer).Error; createErr != nil {
		// Most likely the unique index fired because another request
		// created the same name first. Re-read before giving up.
		var existing models.Customer
		if retryErr := s.db.Where("firstname = ?", firstname).First(&existing).Error; retryErr == nil {
			return &existing, nil
		}
		return nil, fmt.Errorf("failed to create customer: %w", createErr)
	}
	return &customer, nil
}

// ListCustomers returns all customers, newest first.
func (s *Store) ListCustomers() ([]models.Customer, error) {
	var customers []models.Customer
	if err := s.db.Order("id desc").Find(&customers).Error; err != nil {
		return nil, fmt.Errorf("failed to list customers: %w", err)
	}
	return customers, nil
}
