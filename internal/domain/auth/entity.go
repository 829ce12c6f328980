package auth

import "time"

// Clerk is a payroll operator account. There is a single role; every
// authenticated clerk can do everything the API offers.
type Clerk struct {
	ID           string
	Username     string
	PasswordHash string
	Name         string
	CreatedAt    time.Time
	UpdatedAt    time.Time
}
