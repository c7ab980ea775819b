package users

import (
	"context"

	"github.com/dmitrijs2005/portfolio-backend/internal/server/models"
)

// Repository reads admin user rows for login.
type Repository interface {
	GetByEmail(ctx context.Context, email string) (*models.User, error)
}
