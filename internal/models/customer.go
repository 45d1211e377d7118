package models

import "time"

// Customer is one client of the restaurant, identified by first name.
// The unique index on Firstname is the correctness backstop for the
// get-or-create path: two racing inserts of the same name cannot both
// succeed, the loser re-reads the winner's row.
type Customer struct {
	ID        uint      `gorm:"primary_key" json:"id"`
	Firstname string    `gorm:"type:varchar(100);unique_index;not null" json:"firstname"`
	CreatedAt time.Time `json:"created_at"`
}

// TableName keeps the historical table name.
func (Customer) TableName() string { return "users" }
