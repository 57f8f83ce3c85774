package domain

import "time"

// Customer represents a customer record managed through the admin dashboard
type Customer struct {
	ID    int64
	Name  string
	Email string
	Phone *string

	CreatedAt time.Time
	UpdatedAt time.Time
}
