package api

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"adalicious/internal/metrics"
	"adalicious/internal/models"
)

// Store is the persistence interface the API serves from. The gorm
// implementation lives in internal/store; tests may substitute
// their own.
type Store interface {
	ListMenu() ([]models.MenuItem, error)
	ListCustomers() ([]models.Customer, error)
	ResolveCustomer(firstname string) (*models.Customer, error)
	CreateOrder(customerID, menuID uint) (*models.OrderProjection, error)
	ListOrders() ([]models.OrderProjection, error)
	GetOrder(id uint) (*models.OrderProjection, error)
	UpdateOrderStatus(id uint, status models.OrderStatus) (*models.OrderProjection, error)
}

// Server exposes the order-tracking HTTP API.
type Server struct {
	router *gin.Engine
	store  Store
}

// NewServer builds the router and wires all endpoints.
func NewServer(store Store) *Server {
	router := gin.Default()

	s := &Server{
		router: router,
		store:  store,
	}
	s.setupRoutes()
	return s
}

// Router returns the underlying gin engine.
func (s *Server) Router() *gin.Engine { return s.router }

// setupRoutes configures all API endpoints.
func (s *Server) setupRoutes() {
	s.router.Use(metrics.Middleware())
	s.router.Use(corsMiddleware())

	s.router.GET("/", func(c *gin.Context) {
		c.String(http.StatusOK, "Accueil - API Adalicious")
	})
	s.router.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok", "message": "Adalicious API is running"})
	})

	// Menu
	s.router.GET("/menu", s.GetMenu)

	// Orders
	s.router.GET("/orders", s.GetOrders)
	s.router.GET("/orders/:id", s.GetOrder)
	s.router.POST("/orders", s.CreateOrder)
	s.router.PATCH("/orders/:id/status", s.UpdateOrderStatus)

	// Users
	s.router.GET("/users", s.GetUsers)
	s.router.POST("/users", s.CreateUser)
}

// corsMiddleware lets the browser front end call the API from another
// origin. The pages are plain static files, so a blanket allow is fine.
func corsMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Header("Access-Control-Allow-Origin", "*")
		c.Header("Access-Control-Allow-Methods", "GET, POST, PATCH, OPTIONS")
		c.Header("Access-Control-Allow-Headers", "Content-Type")
		if c.Request.Method == http.MethodOptions {
			c.AbortWithStatus(http.StatusNoContent)
			return
		}
		c.Next()
	}
}
