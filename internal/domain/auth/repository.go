package auth

import "context"

type ClerkRepository interface {
	GetByUsername(ctx context.Context, username string) (Clerk, error)
	GetByID(ctx context.Context, id string) (Clerk, error)
}
