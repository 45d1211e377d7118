package models

import "time"

// OrderProjection is the denormalized view of an order joined with its
// customer and menu item, consumed by the confirmation screen and the
// kitchen dashboard. It is rebuilt on every read and never persisted,
// so the kitchen always sees current data.
type OrderProjection struct {
	ID            uint        `json:"id"`
	UserID        uint        `json:"user_id"`
	MenuID        uint        `json:"menu_id"`
	OrderStatusID OrderStatus `json:"order_status_id"`
	CreatedAt     time.Time   `json:"created_at"`
	Firstname     string      `json:"firstname"`
	PlateName     string      `json:"plate_name"`
	Image         string      `json:"image"`
	Description   string      `json:"description"`
	StatusName    string      `json:"status_name"`
}

// Project assembles the flat projection for one order. Pure function:
// the caller is responsible for having resolved customer and item.
func Project(order Order, customer Customer, item MenuItem) OrderProjection {
	return OrderProjection{
		ID:            order.ID,
		UserID:        order.UserID,
		MenuID:        order.MenuID,
		OrderStatusID: order.OrderStatusID,
		CreatedAt:     order.CreatedAt,
		Firstname:     customer.Firstname,
		PlateName:     item.PlateName,
		Image:         item.Image,
		Description:   item.Description,
		StatusName:    order.OrderStatusID.Label(),
	}
}
