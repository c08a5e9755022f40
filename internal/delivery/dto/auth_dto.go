package dto

import (
	"github.com/google/uuid"
)

// Request DTOs

type AddressRequest struct {
	Street     string `json:"street" validate:"omitempty"`
	City       string `json:"city" validate:"omitempty"`
	District   string `json:"district" validate:"omitempty"`
	PostalCode string `json:"postalCode" validate:"omitempty"`
}

type LocationRequest struct {
	Latitude  *float64 `json:"latitude" validate:"required,latitude"`
	Longitude *float64 `json:"longitude" validate:"required,longitude"`
}

type RegisterRequest struct {
	PharmacistID string           `json:"pharmacistId" validate:"required"`
	Name         string           `json:"name" validate:"required"`
	Surname      string           `json:"surname" validate:"required"`
	Email        string           `json:"email" validate:"required,email"`
	Phone        string           `json:"phone" validate:"required"`
	Password     string           `json:"password" validate:"required,min=6"`
	Address      *AddressRequest  `json:"address" validate:"required"`
	Location     *LocationRequest `json:"location" validate:"required"`
}

type LoginRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

// Response DTOs

// UserResponse is the public projection of a user; it never carries the
// password hash.
type UserResponse struct {
	ID           uuid.UUID `json:"id"`
	PharmacistID string    `json:"pharmacistId"`
	Name         string    `json:"name"`
	Email        string    `json:"email"`
	Role         string    `json:"role"`
}

// AuthResult bundles what a successful register or login produces.
type AuthResult struct {
	Token string
	User  UserResponse
}

// AuthSuccessResponse is the wire shape for register (201) and login (200).
type AuthSuccessResponse struct {
	Message string       `json:"message"`
	Token   string       `json:"token"`
	User    UserResponse `json:"user"`
}
