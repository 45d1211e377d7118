package api

import (
	"log"
	"net/http"

	"github.com/gin-gonic/gin"
)

// GetMenu returns every orderable dish.
func (s *Server) GetMenu(c *gin.Context) {
	items, err := s.store.ListMenu()
	if err != nil {
		log.Printf("[GET /menu] %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Erreur lors de la récupération du menu"})
		return
	}
	c.JSON(http.StatusOK, items)
}
