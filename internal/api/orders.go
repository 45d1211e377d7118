package api

import (
	"errors"
	"fmt"
	"log"
	"net/http"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"

	"adalicious/internal/metrics"
	"adalicious/internal/models"
	"adalicious/internal/store"
)

// GetOrders returns all orders joined with customer and menu data,
// newest first. The kitchen view polls this endpoint.
func (s *Server) GetOrders(c *gin.Context) {
	orders, err := s.store.ListOrders()
	if err != nil {
		log.Printf("[GET /orders] %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Erreur serveur"})
		return
	}
	c.JSON(http.StatusOK, orders)
}

// GetOrder returns the projection for one order, so the confirmation
// screen can follow its own order without pulling the whole board.
func (s *Server) GetOrder(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Commande non trouvée"})
		return
	}

	order, err := s.store.GetOrder(uint(id))
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Commande non trouvée"})
			return
		}
		log.Printf("[GET /orders/%d] %v", id, err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Erreur serveur"})
		return
	}
	c.JSON(http.StatusOK, order)
}

// CreateOrder places an order for a menu item under a client's first
// name, creating the customer on first use.
func (s *Server) CreateOrder(c *gin.Context) {
	var req struct {
		MenuID     uint   `json:"menu_id"`
		ClientName string `json:"clientName"`
	}
	if err := c.ShouldBindJSON(&req); err != nil || req.MenuID == 0 || strings.TrimSpace(req.ClientName) == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "menu_id et clientName sont requis"})
		return
	}

	customer, err := s.store.ResolveCustomer(req.ClientName)
	if err != nil {
		if errors.Is(err, store.ErrValidation) {
			c.JSON(http.StatusBadRequest, gin.H{"error": "menu_id et clientName sont requis"})
			return
		}
		log.Printf("[POST /orders] %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Erreur lors de la création de la commande"})
		return
	}

	order, err := s.store.CreateOrder(customer.ID, req.MenuID)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Plat non trouvé"})
			return
		}
		log.Printf("[POST /orders] %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Erreur lors de la création de la commande"})
		return
	}

	metrics.OrdersCreated.Inc()
	c.JSON(http.StatusCreated, gin.H{
		"ok":      true,
		"message": fmt.Sprintf("Commande reçue : %s pour %s", order.PlateName, customer.Firstname),
		"order":   order,
	})
}

// UpdateOrderStatus advances (or rewinds) an order's lifecycle status.
func (s *Server) UpdateOrderStatus(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Commande non trouvée"})
		return
	}

	var req struct {
		StatusID *int `json:"status_id"`
	}
	if err := c.ShouldBindJSON(&req); err != nil || req.StatusID == nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "status_id invalide (doit être 1, 2 ou 3)"})
		return
	}

	status := models.OrderStatus(*req.StatusID)
	order, err := s.store.UpdateOrderStatus(uint(id), status)
	if err != nil {
		switch {
		case errors.Is(err, models.ErrInvalidStatus):
			c.JSON(http.StatusBadRequest, gin.H{"error": "status_id invalide (doit être 1, 2 ou 3)"})
		case errors.Is(err, store.ErrNotFound):
			c.JSON(http.StatusNotFound, gin.H{"error": "Commande non trouvée"})
		default:
			log.Printf("[PATCH /orders/%d/status] %v", id, err)
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Erreur lors de la mise à jour"})
		}
		return
	}

	metrics.StatusUpdates.WithLabelValues(status.Label()).Inc()
	c.JSON(http.StatusOK, gin.H{
		"ok":      true,
		"message": "Statut mis à jour avec succès",
		"order":   order,
	})
}
