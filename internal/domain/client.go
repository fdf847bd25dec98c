package domain

import "time"

// Client represents a customer of the shop
type Client struct {
	ID           int64
	Name         string
	Phone        string
	Email        string
	Address      *string
	Observations *string

	CreatedAt time.Time
	UpdatedAt time.Time
}
