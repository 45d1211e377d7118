package main

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"os"
	"time"
)

// ApiClient handles requests to the Adalicious API.
type ApiClient struct {
	httpClient *http.Client
	BaseURL    string
}

// NewApiClient creates a new API client. The server address comes from
// ADALICIOUS_API_URL, defaulting to the local dev server.
func NewApiClient() *ApiClient {
	baseURL := os.Getenv("ADALICIOUS_API_URL")
	if baseURL == "" {
		baseURL = "http://localhost:3000"
	}

	return &ApiClient{
		httpClient: &http.Client{
			Timeout: time.Second * 10,
		},
		BaseURL: baseURL,
	}
}

// MenuItem represents a dish on the menu.
type MenuItem struct {
	ID          uint   `json:"id"`
	PlateName   string `json:"plate_name"`
	Description string `json:"description"`
	Image       string `json:"image"`
}

// Order represents one order as returned by GET /orders: the order row
// joined with customer and menu data.
type Order struct {
	ID            uint      `json:"id"`
	UserID        uint      `json:"user_id"`
	MenuID        uint      `json:"menu_id"`
	OrderStatusID int       `json:"order_status_id"`
	CreatedAt     time.Time `json:"created_at"`
	Firstname     string    `json:"firstname"`
	PlateName     string    `json:"plate_name"`
	Image         string    `json:"image"`
	Description   string    `json:"description"`
	StatusName    string    `json:"status_name"`
}

// Order lifecycle statuses as numbered by the API.
const (
	StatusPreparing = 1
	StatusReady     = 2
	StatusDelivered = 3
)

// Board is the kitchen view of all orders, partitioned by status.
type Board struct {
	Preparing []Order
	Ready     []Order
	Delivered []Order
}

// PartitionOrders splits an order list into the three kitchen columns,
// preserving the server's newest-first ordering inside each column.
func PartitionOrders(orders []Order) Board {
	var board Board
	for _, order := range orders {
		switch order.OrderStatusID {
		case StatusPreparing:
			board.Preparing = append(board.Preparing, order)
		case StatusReady:
			board.Ready = append(board.Ready, order)
		case StatusDelivered:
			board.Delivered = append(board.Delivered, order)
		}
	}
	return board
}

// GetMenu retrieves the menu.
func (c *ApiClient) GetMenu() ([]MenuItem, error) {
	resp, err := c.httpClient.Get(c.BaseURL + "/menu")
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("failed to get menu with status code: %d", resp.StatusCode)
	}

	var items []MenuItem
	if err := json.NewDecoder(resp.Body).Decode(&items); err != nil {
		return nil, err
	}
	return items, nil
}

// GetOrders retrieves all orders, newest first.
func (c *ApiClient) GetOrders() ([]Order, error) {
	resp, err := c.httpClient.Get(c.BaseURL + "/orders")
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("failed to get orders with status code: %d", resp.StatusCode)
	}

	var orders []Order
	if err := json.NewDecoder(resp.Body).Decode(&orders); err != nil {
		return nil, err
	}
	return orders, nil
}

// CreateOrder places an order for a menu item under a client name.
func (c *ApiClient) CreateOrder(menuID uint, clientName string) (*Order, error) {
	data, err := json.Marshal(map[string]interface{}{
		"menu_id":    menuID,
		"clientName": clientName,
	})
	if err != nil {
		return nil, err
	}

	resp, err := c.httpClient.Post(c.BaseURL+"/orders", "application/json", bytes.NewBuffer(data))
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusCreated {
		body, _ := io.ReadAll(resp.Body)
		return nil, fmt.Errorf("failed to create order: %s", string(body))
	}

	var reply struct {
		Ok      bool   `json:"ok"`
		Message string `json:"message"`
		Order   Order  `json:"order"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&reply); err != nil {
		return nil, err
	}
	return &reply.Order, nil
}

// UpdateOrderStatus moves an order to a new lifecycle status.
func (c *ApiClient) UpdateOrderStatus(id uint, statusID int) (*Order, error) {
	data, err := json.Marshal(map[string]int{"status_id": statusID})
	if err != nil {
		return nil, err
	}

	req, err := http.NewRequest(http.MethodPatch, fmt.Sprintf("%s/orders/%d/status", c.BaseURL, id), bytes.NewBuffer(data))
	if err != nil {
		return nil, err
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(resp.Body)
		return nil, fmt.Errorf("failed to update order status: %s", string(body))
	}

	var reply struct {
		Ok      bool   `json:"ok"`
		Message string `json:"message"`
		Order   Order  `json:"order"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&reply); err != nil {
		return nil, err
	}
	return &reply.Order, nil
}

// NextStatus returns the usual forward step for an order, or 0 when the
// order is already delivered.
func NextStatus(statusID int) int {
	switch statusID {
	case StatusPreparing:
		return StatusReady
	case StatusReady:
		return StatusDelivered
	default:
		return 0
	}
}
