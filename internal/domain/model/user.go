package model

import "time"

// User represents a registered customer of the storefront.
type User struct {
	ID           int64
	Email        string
	Name         string
	PasswordHash string
	IsAdmin      bool
	CreatedAt    time.Time
}

// Address is a shipping destination owned by a user.
type Address struct {
	ID         int64
	UserID     int64
	Recipient  string
	Line1      string
	Line2      string
	City       string
	PostalCode string
	Phone      string
	CreatedAt  time.Time
}
