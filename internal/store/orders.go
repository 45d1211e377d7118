package store

import (
	"fmt"

	"github.com/jinzhu/gorm"

	"adalicious/internal/models"
)

// CreateOrder inserts a new order for customerID and menuID with the
// initial Preparing status. Both references are verified inside the
// transaction; nothing is persisted when either is missing.
func (s *Store) CreateOrder(customerID, menuID uint) (*models.OrderProjection, error) {
	var (
		customer models.Customer
		item     models.MenuItem
		order    models.Order
	)

	tx := s.db.Begin()
	if tx.Error != nil {
		return nil, fmt.Errorf("failed to begin transaction: %w", tx.Error)
	}
	defer func() {
		if r := recover(); r != nil {
			tx.Rollback()
			panic(r)
		}
	}()

	if err := tx.First(&customer, customerID).Error; err != nil {
		tx.Rollback()
		if gorm.IsRecordNotFoundError(err) {
			return nil, fmt.Errorf("%w: client %d", ErrNotFound, customerID)
		}
		return nil, fmt.Errorf("failed to load customer: %w", err)
	}
	if err := tx.First(&item, menuID).Error; err != nil {
		tx.Rollback()
		if gorm.IsRecordNotFoundError(err) {
			return nil, fmt.Errorf("%w: plat %d", ErrNotFound, menuID)
		}
		return nil, fmt.Errorf("failed to load menu item: %w", err)
	}

	order = models.Order{
		UserID:        customer.ID,
		MenuID:        item.ID,
		OrderStatusID: models.StatusPreparing,
	}
	if err := tx.Create(&order).Error; err != nil {
		tx.Rollback()
		return nil, fmt.Errorf("failed to create order: %w", err)
	}
	if err := tx.Commit().Error; err != nil {
		return nil, fmt.Errorf("failed to commit order: %w", err)
	}

	projection := models.Project(order, customer, item)
	return &projection, nil
}

// ListOrders returns every order joined with its customer and menu
// item, newest first. The kitchen dashboard depends on this ordering.
func (s *Store) ListOrders() ([]models.OrderProjection, error) {
	var orders []models.Order
	if err := s.db.Order("id desc").Find(&orders).Error; err != nil {
		return nil, fmt.Errorf("failed to list orders: %w", err)
	}

	customers, items, err := s.referencedEntities(orders)
	if err != nil {
		return nil, err
	}

	projections := make([]models.OrderProjection, 0, len(orders))
	for _, order := range orders {
		projections = append(projections, models.Project(order, customers[order.UserID], items[order.MenuID]))
	}
	return projections, nil
}

// GetOrder returns the projection for a single order.
func (s *Store) GetOrder(id uint) (*models.OrderProjection, error) {
	var order models.Order
	if err := s.db.First(&order, id).Error; err != nil {
		if gorm.IsRecordNotFoundError(err) {
			return nil, fmt.Errorf("%w: commande %d", ErrNotFound, id)
		}
		return nil, fmt.Errorf("failed to load order: %w", err)
	}
	return s.projectOrder(order)
}

// UpdateOrderStatus applies a status change after running it through
// the transition validation. An invalid status leaves the stored row
// untouched.
func (s *Store) UpdateOrderStatus(id uint, status models.OrderStatus) (*models.OrderProjection, error) {
	var order models.Order
	if err := s.db.First(&order, id).Error; err != nil {
		if gorm.IsRecordNotFoundError(err) {
			return nil, fmt.Errorf("%w: commande %d", ErrNotFound, id)
		}
		return nil, fmt.Errorf("failed to load order: %w", err)
	}

	if err := models.ValidateTransition(order.OrderStatusID, status); err != nil {
		return nil, err
	}

	// Single atomic write on one row.
	if err := s.db.Model(&order).Update("order_status_id", status).Error; err != nil {
		return nil, fmt.Errorf("failed to update order status: %w", err)
	}
	order.OrderStatusID = status
	return s.projectOrder(order)
}

// projectOrder loads the referenced customer and menu item and builds
// the projection for one order.
func (s *Store) projectOrder(order models.Order) (*models.OrderProjection, error) {
	var (
		customer models.Customer
		item     models.MenuItem
	)
	if err := s.db.First(&customer, order.UserID).Error; err != nil {
		return nil, fmt.Errorf("failed to load customer %d: %w", order.UserID, err)
	}
	if err := s.db.First(&item, order.MenuID).Error; err != nil {
		return nil, fmt.Errorf("failed to load menu item %d: %w", order.MenuID, err)
	}
	projection := models.Project(order, customer, item)
	return &projection, nil
}

// referencedEntities bulk-loads the customers and menu items referenced
// by orders, keyed by id. Customers and menu items are never deleted,
// so an order can never be returned with an unresolved reference.
func (s *Store) referencedEntities(orders []models.Order) (map[uint]models.Customer, map[uint]models.MenuItem, error) {
	userIDs := make([]uint, 0, len(orders))
	menuIDs := make([]uint, 0, len(orders))
	for _, order := range orders {
		userIDs = append(userIDs, order.UserID)
		menuIDs = append(menuIDs, order.MenuID)
	}

	customers := make(map[uint]models.Customer)
	items := make(map[uint]models.MenuItem)
	if len(orders) == 0 {
		return customers, items, nil
	}

	var customerRows []models.Customer
	if err := s.db.Where("id in (?)", userIDs).Find(&customerRows).Error; err != nil {
		return nil, nil, fmt.Errorf("failed to load customers: %w", err)
	}
	for _, c := range customerRows {
		customers[c.ID] = c
	}

	var itemRows []models.MenuItem
	if err := s.db.Where("id in (?)", menuIDs).Find(&itemRows).Error; err != nil {
		return nil, nil, fmt.Errorf("failed to load menu items: %w", err)
	}
	for _, item := range itemRows {
		items[item.ID] = item
	}
	return customers, items, nil
}
