package entity

import (
	"database/sql/driver"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
)

// User represents a registered pharmacist account
type User struct {
	ID               uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()" json:"id"`
	PharmacistID     string    `gorm:"type:varchar(64);uniqueIndex;not null" json:"pharmacist_id"`
	Name             string    `gorm:"type:varchar(255);not null" json:"name"`
	Surname          string    `gorm:"type:varchar(255);not null" json:"surname"`
	Email            string    `gorm:"type:varchar(255);uniqueIndex;not null" json:"email"`
	Phone            *string   `gorm:"type:varchar(32);uniqueIndex" json:"phone,omitempty"`
	PasswordHash     string    `gorm:"type:text;not null" json:"-"`
	Role             string    `gorm:"type:varchar(32);not null;default:pharmacist;index" json:"role"`
	Address          Address   `gorm:"type:jsonb" json:"address"`
	Latitude         float64   `gorm:"not null" json:"latitude"`
	Longitude        float64   `gorm:"not null" json:"longitude"`
	IsActive         *bool     `gorm:"not null;default:true;index" json:"is_active"`
	TwoFactorEnabled bool      `gorm:"not null;default:false" json:"two_factor_enabled"`
	CreatedAt        time.Time `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt        time.Time `gorm:"autoUpdateTime" json:"updated_at"`
}

func (User) TableName() string {
	return "users"
}

// Active treats a missing flag as active, matching the column default.
func (u *User) Active() bool {
	return u.IsActive == nil || *u.IsActive
}

// Address is the pharmacist's postal address, stored as JSONB.
// All sub-fields are optional.
type Address struct {
	Street     string `json:"street,omitempty"`
	City       string `json:"city,omitempty"`
	District   string `json:"district,omitempty"`
	PostalCode string `json:"postal_code,omitempty"`
}

// Value returns json value, implements driver.Valuer interface
func (a Address) Value() (driver.Value, error) {
	return json.Marshal(a)
}

// Scan scans value into Address, implements sql.Scanner interface
func (a *Address) Scan(value interface{}) error {
	if value == nil {
		*a = Address{}
		return nil
	}
	var bytes []byte
	switch v := value.(type) {
	case []byte:
		bytes = v
	case string:
		bytes = []byte(v)
	default:
		return errors.New(fmt.Sprint("Failed to unmarshal JSONB value:", value))
	}
	return json.Unmarshal(bytes, a)
}
