package models

// MenuItem represents a dish on the menu. Items are seeded at startup
// and read-only from the service's perspective.
type MenuItem struct {
	ID          uint   `gorm:"primary_key" json:"id"`
	PlateName   string `gorm:"not null" json:"plate_name"`
	Description string `json:"description"`
	Image       string `json:"image"`
}

// TableName keeps the historical table name.
func (MenuItem) TableName() string { return "menus" }
