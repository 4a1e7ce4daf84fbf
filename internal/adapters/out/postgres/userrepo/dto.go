// Package userrepo holds the persistence shape of the users collection.
// Orders reference buyers by ID; the only read this service performs against
// users is the best-effort display-name lookup in the query layer.
package userrepo

import "github.com/google/uuid"

// UserDTO represents the database structure for buyer records.
type UserDTO struct {
	ID    uuid.UUID `gorm:"type:uuid;primaryKey"`
	Name  string
	Email string `gorm:"uniqueIndex"`
}

// TableName specifies the database table name for user records.
func (UserDTO) TableName() string {
	return "users"
}
