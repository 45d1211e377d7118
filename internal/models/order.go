package models

import (
	"errors"
	"fmt"
	"time"
)

// Order represents a customer order for a single menu item.
// Status is only ever changed through UpdateOrderStatus on the store,
// which runs the requested value through ValidateTransition first.
type Order struct {
	ID            uint        `gorm:"primary_key" json:"id"`
	UserID        uint        `gorm:"not null" json:"user_id"`
	MenuID        uint        `gorm:"not null" json:"menu_id"`
	OrderStatusID OrderStatus `gorm:"not null" json:"order_status_id"`
	CreatedAt     time.Time   `json:"created_at"`
}

// TableName keeps the historical table name.
func (Order) TableName() string { return "orders" }

// OrderStatus represents the possible states of an order.
type OrderStatus int

const (
	StatusPreparing OrderStatus = 1 // initial status of every new order
	StatusReady     OrderStatus = 2
	StatusDelivered OrderStatus = 3 // terminal
)

// ErrInvalidStatus is returned when a requested status is outside the
// three defined values.
var ErrInvalidStatus = errors.New("invalid order status")

// Valid reports whether s is one of the three defined statuses.
func (s OrderStatus) Valid() bool {
	switch s {
	case StatusPreparing, StatusReady, StatusDelivered:
		return true
	}
	return false
}

// Label returns the status label shown to customers and kitchen staff.
func (s OrderStatus) Label() string {
	switch s {
	case StatusPreparing:
		return "En préparation"
	case StatusReady:
		return "Prête"
	case StatusDelivered:
		return "Livrée"
	default:
		return "Inconnu"
	}
}

// ValidateTransition checks a requested status change against the
// current one. Any of the three enumerated statuses may be requested
// from any current status: the kitchen is trusted to move an order
// back when it was advanced by mistake. Values outside the enumeration
// are always rejected.
func ValidateTransition(current, requested OrderStatus) error {
	if !requested.Valid() {
		return fmt.Errorf("%w: %d (doit être 1, 2 ou 3)", ErrInvalidStatus, requested)
	}
	return nil
}
