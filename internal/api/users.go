package api

import (
	"errors"
	"log"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"adalicious/internal/store"
)

// GetUsers returns every known customer, newest first.
func (s *Server) GetUsers(c *gin.Context) {
	customers, err := s.store.ListCustomers()
	if err != nil {
		log.Printf("[GET /users] %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Erreur serveur"})
		return
	}
	c.JSON(http.StatusOK, customers)
}

// CreateUser registers a customer by first name. Resolution is
// idempotent: posting a name that already exists returns the existing
// customer instead of a duplicate row.
func (s *Server) CreateUser(c *gin.Context) {
	var req struct {
		Firstname string `json:"firstname"`
	}
	if err := c.ShouldBindJSON(&req); err != nil || strings.TrimSpace(req.Firstname) == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "firstname est requis"})
		return
	}

	customer, err := s.store.ResolveCustomer(req.Firstname)
	if err != nil {
		if errors.Is(err, store.ErrValidation) {
			c.JSON(http.StatusBadRequest, gin.H{"error": "firstname est requis"})
			return
		}
		log.Printf("[POST /users] %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Erreur lors de la création de l'utilisateur"})
		return
	}

	c.JSON(http.StatusCreated, customer)
}
