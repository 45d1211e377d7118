package database

import (
	"fmt"
	"time"

	"github.com/jinzhu/gorm"
	_ "github.com/jinzhu/gorm/dialects/postgres" // PostgreSQL driver
	_ "github.com/jinzhu/gorm/dialects/sqlite"   // SQLite driver

	"adalicious/internal/models"
)

// Open connects to the database and configures the connection pool.
// The returned handle is passed down explicitly; there is no package
// level connection.
func Open(driver, dsn string) (*gorm.DB, error) {
	db, err := gorm.Open(driver, dsn)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	db.DB().SetMaxIdleConns(10)
	db.DB().SetMaxOpenConns(100)
	db.DB().SetConnMaxLifetime(time.Hour)

	return db, nil
}

// Migrate creates or updates the schema for customers, menu items and
// orders. SQLite cannot add constraints after table creation, so the
// foreign keys are only declared on PostgreSQL; the store verifies
// references on insert either way.
func Migrate(db *gorm.DB) error {
	if err := db.AutoMigrate(
		&models.Customer{},
		&models.MenuItem{},
		&models.Order{},
	).Error; err != nil {
		return fmt.Errorf("failed to migrate schema: %w", err)
	}

	if db.Dialect().GetName() == "postgres" {
		db.Model(&models.Order{}).AddForeignKey("user_id", "users(id)", "RESTRICT", "RESTRICT")
		db.Model(&models.Order{}).AddForeignKey("menu_id", "menus(id)", "RESTRICT", "RESTRICT")
	}
	return nil
}

// Seed ensures the menu has dishes to order. Runs only against an
// empty menu table so existing data is never touched.
func Seed(db *gorm.DB) error {
	var count int64
	if err := db.Model(&models.MenuItem{}).Count(&count).Error; err != nil {
		return fmt.Errorf("failed to count menu items: %w", err)
	}
	if count > 0 {
		return nil
	}

	defaultMenu := []models.MenuItem{
		{PlateName: "Burger Ada", Description: "Steak haché, cheddar affiné, sauce maison", Image: "🍔"},
		{PlateName: "Pizza Lovelace", Description: "Tomate, mozzarella, basilic frais", Image: "🍕"},
		{PlateName: "Salade Turing", Description: "Poulet grillé, parmesan, croûtons", Image: "🥗"},
		{PlateName: "Pâtes Hopper", Description: "Linguine, crème, lardons fumés", Image: "🍝"},
		{PlateName: "Crêpe Curie", Description: "Sucre, citron, chantilly", Image: "🥞"},
	}
	for _, item := range defaultMenu {
		if err := db.Create(&item).Error; err != nil {
			return fmt.Errorf("failed to seed menu item %q: %w", item.PlateName, err)
		}
	}
	return nil
}
